package constants

import "os"

func GetOutputDir() string {
	path := os.Getenv("OUTPUT_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetFFmpegBin() string {
	if bin := os.Getenv("MELODEX_FFMPEG"); bin != "" {
		return bin
	}
	return "ffmpeg"
}

func GetFFprobeBin() string {
	if bin := os.Getenv("MELODEX_FFPROBE"); bin != "" {
		return bin
	}
	return "ffprobe"
}

func GetAubioBin() string {
	if bin := os.Getenv("MELODEX_AUBIO"); bin != "" {
		return bin
	}
	return "aubio"
}

// MinSegmentSamples is the smallest segment worth analyzing. Anything
// shorter gives a spectrum too coarse to pick a fundamental from.
const MinSegmentSamples = 512

// ConcertPitchHz anchors equal temperament: A4 = MIDI 69.
const ConcertPitchHz = 440.0

// TicksPerQuarter is the SMF resolution used when rendering MIDI.
const TicksPerQuarter = 960
