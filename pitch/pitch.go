// Package pitch picks the dominant frequency out of a single note
// segment via spectral peak picking.
package pitch

import (
	"math"
	"math/cmplx"
)

// Estimate returns the dominant frequency in Hz of a mono segment, or 0
// when nothing tonal stands out (an all-zero segment peaks at the DC
// bin). Callers are expected to skip segments shorter than
// constants.MinSegmentSamples before calling; the spectrum of anything
// that short is too coarse to trust.
func Estimate(segment []float64, sampleRate int) float64 {
	n := len(segment)
	if n == 0 || sampleRate <= 0 {
		return 0
	}

	windowed := make([]complex128, n)
	for i, s := range segment {
		windowed[i] = complex(s*hann(i, n), 0)
	}

	spectrum := DFT(windowed)

	// only the lower half carries distinct frequencies (0..Nyquist)
	half := n / 2
	if half < 1 {
		half = 1
	}
	var peakBin int
	var peakMag float64
	for i := 0; i < half; i++ {
		if mag := cmplx.Abs(spectrum[i]); mag > peakMag {
			peakMag = mag
			peakBin = i
		}
	}

	return math.Abs(float64(peakBin) * float64(sampleRate) / float64(n))
}

// hann is the raised-cosine window, symmetric like np.hanning.
func hann(i, n int) float64 {
	if n == 1 {
		return 1
	}
	return 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(n-1))
}
