package model

type TranscribeRequestBody struct {
	Samples    []float64 `json:"samples"`
	SampleRate int       `json:"sample_rate"`
	Onsets     []float64 `json:"onsets"`
	Tempo      float64   `json:"tempo"`
}

type NoteResponse struct {
	Duration float64 `json:"duration"`
	Code     string  `json:"code"`
	Octave   int     `json:"octave"`
	Token    string  `json:"token"`
}

type TranscribeResponse struct {
	Tempo float64        `json:"tempo"`
	Notes []NoteResponse `json:"notes"`
}

type TranscriptionOverview struct {
	Id         string `json:"id"`
	SourceFile string `json:"source_file"`
	NumNotes   int    `json:"num_notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
