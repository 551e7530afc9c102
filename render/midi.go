// Package render is the rendering collaborator: it owns the inverse of
// the engine's private pitch alphabet and turns note sequences into
// artifacts (standard MIDI files, LilyPond scores).
package render

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/note"
	"github.com/jsphweid/melodex/util"
)

const midiVelocity = 100

// Key returns the MIDI key number for an event, inverting the letter
// code back through the shared alphabet.
func Key(n model.NoteEvent) (uint8, error) {
	class, ok := note.ClassOf(n.Code)
	if !ok {
		return 0, fmt.Errorf("unknown pitch code %q", string(n.Code))
	}
	key := (n.Octave+1)*12 + class
	if key < 0 || key > 127 {
		return 0, fmt.Errorf("note out of MIDI range: %v", n.Token())
	}
	return uint8(key), nil
}

// Midi builds a single-track SMF from the sequence, one NoteOn/NoteOff
// pair per event with tick deltas taken from the beat durations.
func Midi(notes []model.NoteEvent, bpm float64) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))
	for _, n := range notes {
		key, err := Key(n)
		if err != nil {
			return nil, err
		}
		ticks := uint32(float64(constants.TicksPerQuarter) * float64(n.Duration))
		tr.Add(0, midi.NoteOn(0, key, midiVelocity))
		tr.Add(ticks, midi.NoteOff(0, key))
	}
	tr.Close(0)

	if err := s.Add(tr); err != nil {
		return nil, err
	}
	return s, nil
}

// WriteMidi renders notes and saves them under the output dir with a
// fresh uuid name, returning the path written.
func WriteMidi(notes []model.NoteEvent, bpm float64) (string, error) {
	s, err := Midi(notes, bpm)
	if err != nil {
		return "", err
	}
	util.EnsureOutputDir(constants.GetOutputDir())
	path := filepath.Join(constants.GetOutputDir(), uuid.New().String()+".mid")
	if err := s.WriteFile(path); err != nil {
		return "", err
	}
	return path, nil
}
