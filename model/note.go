package model

import "fmt"

// Duration is a quantized note length in beat units, not seconds.
type Duration float64

const (
	Eighth  Duration = 0.5
	Quarter Duration = 1.0
	Half    Duration = 2.0
	Whole   Duration = 4.0
)

// Observation is what the pitch stage derives from one segment.
// A Frequency of 0 means no detectable pitch.
type Observation struct {
	Frequency float64
	MIDI      int
	Class     int // 0 = C ... 11 = B
	Octave    int
}

// NoteEvent is the unit handed to the rendering side. Code is one of
// the 12 private letters 'a'..'l', never a conventional pitch name.
type NoteEvent struct {
	Duration Duration
	Code     byte
	Octave   int
}

// Token renders the event in the original "duration,code,octave" text
// form, e.g. "2,j,4" for a half-note A4.
func (n NoteEvent) Token() string {
	return fmt.Sprintf("%v,%c,%v", float64(n.Duration), n.Code, n.Octave)
}
