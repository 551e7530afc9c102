// Package transcribe walks an onset timeline over a decoded recording
// and assembles the quantized note sequence.
package transcribe

import (
	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/note"
	"github.com/jsphweid/melodex/pitch"
	"github.com/jsphweid/melodex/rhythm"
	"github.com/jsphweid/melodex/util"
)

// Run transcribes with the default quantizer (quarter-note fallback for
// the final onset).
func Run(buf model.AudioBuffer, onsets []float64, bpm float64) ([]model.NoteEvent, error) {
	return RunWith(rhythm.NewQuantizer(), buf, onsets, bpm)
}

// RunWith processes onsets strictly in order. Each onset owns the
// samples up to the next onset (or the end of the buffer for the last
// one). Segments under constants.MinSegmentSamples and segments with no
// detectable pitch are skipped, so the result can be shorter than the
// timeline, but it is never reordered or merged. The duration is
// computed before the length check on purpose: a discarded segment
// discards its duration with it.
func RunWith(q rhythm.Quantizer, buf model.AudioBuffer, onsets []float64, bpm float64) ([]model.NoteEvent, error) {
	var notes []model.NoteEvent

	for i, onset := range onsets {
		var next *float64
		if i+1 < len(onsets) {
			next = &onsets[i+1]
		}

		duration, err := q.Quantize(onset, next, bpm)
		if err != nil {
			return nil, err
		}

		start := util.Clamp(int(onset*float64(buf.SampleRate)), 0, len(buf.Samples))
		end := len(buf.Samples)
		if next != nil {
			end = util.Clamp(int(*next*float64(buf.SampleRate)), start, len(buf.Samples))
		}

		segment := buf.Samples[start:end]
		if len(segment) < constants.MinSegmentSamples {
			continue
		}

		hz := pitch.Estimate(segment, buf.SampleRate)
		if hz <= 0 {
			continue
		}

		obs := note.FromFrequency(hz)
		notes = append(notes, model.NoteEvent{
			Duration: duration,
			Code:     note.Code(obs.Class),
			Octave:   obs.Octave,
		})
	}

	return notes, nil
}
