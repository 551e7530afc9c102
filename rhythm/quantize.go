// Package rhythm turns inter-onset intervals into the four canonical
// note lengths.
package rhythm

import (
	"errors"
	"math"

	"github.com/jsphweid/melodex/model"
)

var ErrBadTempo = errors.New("tempo must be a positive finite BPM")

// Quantizer classifies inter-onset gaps on a beat grid. Fallback is the
// length assigned to the final onset, which has no following boundary
// to measure against.
type Quantizer struct {
	Fallback model.Duration
}

func NewQuantizer() Quantizer {
	return Quantizer{Fallback: model.Quarter}
}

// Quantize maps the gap between onset and next (both seconds) at bpm to
// a duration category. next == nil means onset is the last of the
// timeline and Fallback wins regardless of tempo. The thresholds are
// fixed in beat units; tempo only enters through the seconds-to-beats
// conversion.
func (q Quantizer) Quantize(onset float64, next *float64, bpm float64) (model.Duration, error) {
	if bpm <= 0 || math.IsInf(bpm, 0) || math.IsNaN(bpm) {
		return 0, ErrBadTempo
	}
	if next == nil {
		return q.Fallback, nil
	}

	beats := (*next - onset) * bpm / 60
	switch {
	case beats >= 3:
		return model.Whole, nil
	case beats >= 1.5:
		return model.Half, nil
	case beats >= 0.75:
		return model.Quarter, nil
	default:
		return model.Eighth, nil
	}
}
