// Package note maps raw frequencies onto the 12-tone equal-tempered
// grid and owns the engine's private pitch-letter alphabet.
package note

import (
	"fmt"
	"math"

	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/model"
)

// Names are the chromatic pitch classes starting at C. Sharps only; the
// engine never produces flat spellings.
var Names = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// FromFrequency maps hz (> 0) to its nearest equal-tempered pitch,
// A4 = MIDI 69 = 440 Hz. Callers must guard the hz <= 0 case.
func FromFrequency(hz float64) model.Observation {
	m := int(math.Round(69 + 12*math.Log2(hz/constants.ConcertPitchHz)))
	class := ((m % 12) + 12) % 12
	octave := int(math.Floor(float64(m)/12)) - 1
	return model.Observation{
		Frequency: hz,
		MIDI:      m,
		Class:     class,
		Octave:    octave,
	}
}

// Name renders a MIDI number as a conventional name like "A#3". Display
// only; the rendering side never sees these.
func Name(midi int) string {
	class := ((midi % 12) + 12) % 12
	octave := int(math.Floor(float64(midi)/12)) - 1
	return fmt.Sprintf("%s%d", Names[class], octave)
}
