package model

import "time"

// TranscriptionResult is what the store persists for one run.
type TranscriptionResult struct {
	Id         string
	SourceFile string
	Tempo      float64
	Notes      []NoteEvent
	CreatedAt  time.Time
}
