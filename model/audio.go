package model

// AudioBuffer is a mono PCM signal already decoded by the audio loader.
// The engine only ever reads it.
type AudioBuffer struct {
	Samples    []float64
	SampleRate int
}

// Seconds is the buffer length in seconds.
func (b AudioBuffer) Seconds() float64 {
	if b.SampleRate == 0 {
		return 0
	}
	return float64(len(b.Samples)) / float64(b.SampleRate)
}

type RecordingMetadata struct {
	Artist  string
	Title   string
	Release string
	Year    uint
}
