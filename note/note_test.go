package note

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromFrequencyConcertPitchOctaves(t *testing.T) {
	cases := []struct {
		hz     float64
		midi   int
		octave int
	}{
		{440.0, 69, 4},
		{880.0, 81, 5},
		{220.0, 57, 3},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%vhz", c.hz), func(t *testing.T) {
			assert := assert.New(t)
			obs := FromFrequency(c.hz)
			assert.Equal(c.midi, obs.MIDI)
			assert.Equal("A", Names[obs.Class])
			assert.Equal(c.octave, obs.Octave)
		})
	}
}

func TestFromFrequencyMiddleC(t *testing.T) {
	assert := assert.New(t)
	obs := FromFrequency(261.63)
	assert.Equal(60, obs.MIDI)
	assert.Equal("C", Names[obs.Class])
	assert.Equal(4, obs.Octave)
}

func TestFromFrequencySnapsDetunedTone(t *testing.T) {
	// 30 cents sharp of A4 still rounds to A4
	obs := FromFrequency(447.7)
	assert.Equal(t, 69, obs.MIDI)
}

func TestCodeIsInjectiveOnPitchClass(t *testing.T) {
	assert := assert.New(t)
	seen := make(map[byte]bool)
	for class := 0; class < 12; class++ {
		seen[Code(class)] = true
	}
	assert.Equal(12, len(seen))
}

func TestClassOfInvertsCode(t *testing.T) {
	assert := assert.New(t)
	for class := 0; class < 12; class++ {
		got, ok := ClassOf(Code(class))
		assert.True(ok)
		assert.Equal(class, got)
	}
}

func TestClassOfRejectsUnknownBytes(t *testing.T) {
	assert := assert.New(t)
	for _, b := range []byte{'m', 'z', 'A', '0', ' '} {
		_, ok := ClassOf(b)
		assert.False(ok)
	}
}

func TestName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("A4", Name(69))
	assert.Equal("C4", Name(60))
	assert.Equal("A#3", Name(58))
	assert.Equal("B8", Name(119))
}
