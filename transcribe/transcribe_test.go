package transcribe

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/rhythm"
)

const testRate = 44100

func toneBuffer(freq float64, seconds float64) model.AudioBuffer {
	n := int(seconds * testRate)
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * freq * float64(i) / testRate)
	}
	return model.AudioBuffer{Samples: samples, SampleRate: testRate}
}

func TestSingleToneEndToEnd(t *testing.T) {
	assert := assert.New(t)

	// one second of A440 with an onset at each end: the first onset's
	// gap is 1.0s = 2 beats at 120 BPM, the second onset owns an empty
	// segment and is discarded
	buf := toneBuffer(440, 1.0)
	notes, err := Run(buf, []float64{0.0, 1.0}, 120)

	assert.NoError(err)
	assert.Equal(1, len(notes))
	assert.Equal(model.Half, notes[0].Duration)
	assert.Equal(byte('j'), notes[0].Code) // private code for A
	assert.Equal(4, notes[0].Octave)
	assert.Equal("2,j,4", notes[0].Token())
}

func TestFinalOnsetGetsQuarterFallback(t *testing.T) {
	assert := assert.New(t)

	buf := toneBuffer(440, 2.0)
	notes, err := Run(buf, []float64{0.0, 1.0}, 120)

	assert.NoError(err)
	assert.Equal(2, len(notes))
	assert.Equal(model.Half, notes[0].Duration)
	// last onset runs to end of buffer but has no measurable gap
	assert.Equal(model.Quarter, notes[1].Duration)
}

func TestShortSegmentIsSkippedWithoutDisturbingNeighbors(t *testing.T) {
	assert := assert.New(t)

	buf := toneBuffer(220, 1.0)
	// the gap 0.0..0.01 is 441 samples, under the 512 floor
	notes, err := Run(buf, []float64{0.0, 0.01, 1.0}, 120)

	assert.NoError(err)
	assert.Equal(1, len(notes))
	// the surviving note spans 0.01..1.0 = 1.98 beats
	assert.Equal(model.Half, notes[0].Duration)
	assert.Equal(byte('j'), notes[0].Code)
	assert.Equal(3, notes[0].Octave)
}

func TestSilenceProducesNoNotes(t *testing.T) {
	assert := assert.New(t)

	buf := model.AudioBuffer{Samples: make([]float64, testRate), SampleRate: testRate}
	notes, err := Run(buf, []float64{0.0, 0.5}, 120)

	assert.NoError(err)
	assert.Empty(notes)
}

func TestEmptyTimelineProducesEmptySequence(t *testing.T) {
	assert := assert.New(t)

	buf := toneBuffer(440, 1.0)
	notes, err := Run(buf, nil, 120)

	assert.NoError(err)
	assert.Empty(notes)
}

func TestMalformedTempoIsRejected(t *testing.T) {
	buf := toneBuffer(440, 1.0)
	_, err := Run(buf, []float64{0.0, 0.5}, 0)
	assert.ErrorIs(t, err, rhythm.ErrBadTempo)

	_, err = Run(buf, []float64{0.0, 0.5}, math.NaN())
	assert.ErrorIs(t, err, rhythm.ErrBadTempo)
}

func TestOnsetBeyondBufferIsDiscarded(t *testing.T) {
	assert := assert.New(t)

	buf := toneBuffer(440, 1.0)
	notes, err := Run(buf, []float64{0.0, 5.0}, 120)

	assert.NoError(err)
	// first onset still spans to the (clamped) end of buffer
	assert.Equal(1, len(notes))
	assert.Equal(byte('j'), notes[0].Code)
}

func TestTranscriptionIsIdempotent(t *testing.T) {
	assert := assert.New(t)

	buf := toneBuffer(329.63, 1.5) // E4
	onsets := []float64{0.0, 0.4, 0.9}

	first, err1 := Run(buf, onsets, 100)
	second, err2 := Run(buf, onsets, 100)

	assert.NoError(err1)
	assert.NoError(err2)
	assert.Equal(first, second)
}

func TestCustomFallbackDuration(t *testing.T) {
	assert := assert.New(t)

	q := rhythm.Quantizer{Fallback: model.Whole}
	buf := toneBuffer(440, 1.0)
	notes, err := RunWith(q, buf, []float64{0.0}, 120)

	assert.NoError(err)
	assert.Equal(1, len(notes))
	assert.Equal(model.Whole, notes[0].Duration)
}
