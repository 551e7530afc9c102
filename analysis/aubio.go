// Package analysis wraps the aubio CLI for onset and tempo extraction.
// The transcription engine itself never does onset detection; it only
// consumes the timeline produced here.
package analysis

import (
	"bufio"
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/util"
)

var ErrAubioMissing = errors.New("aubio not found on PATH")

var bpmRe = regexp.MustCompile(`([0-9]+(\.[0-9]+)?)\s*bpm`)

// DetectOnsets returns the onset timestamps of path in seconds,
// strictly increasing.
func DetectOnsets(path string) ([]float64, error) {
	if err := util.MustHave(constants.GetAubioBin()); err != nil {
		return nil, ErrAubioMissing
	}
	out, err := util.RunCmd(constants.GetAubioBin(), "onset", "-i", path)
	if err != nil && out == "" {
		return nil, fmt.Errorf("aubio onset failed: %v", err)
	}

	var onsets []float64
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		t, err := strconv.ParseFloat(strings.Fields(line)[0], 64)
		if err != nil {
			continue
		}
		if len(onsets) > 0 && t <= onsets[len(onsets)-1] {
			return nil, fmt.Errorf("onsets out of order at %v", t)
		}
		onsets = append(onsets, t)
	}
	return onsets, nil
}

// TrackTempo estimates a single BPM for the whole recording: aubio
// reports a series of local estimates and the median is the stable
// choice among them.
func TrackTempo(path string) (float64, error) {
	if err := util.MustHave(constants.GetAubioBin()); err != nil {
		return 0, ErrAubioMissing
	}
	out, err := util.RunCmd(constants.GetAubioBin(), "tempo", "-i", path)
	if err != nil && out == "" {
		return 0, fmt.Errorf("aubio tempo failed: %v", err)
	}

	var series []float64
	sc := bufio.NewScanner(strings.NewReader(strings.ToLower(out)))
	for sc.Scan() {
		if m := bpmRe.FindStringSubmatch(sc.Text()); len(m) >= 2 {
			series = append(series, util.ParseFloat(m[1]))
		}
	}
	if len(series) == 0 {
		return 0, fmt.Errorf("no bpm estimates for %v", path)
	}

	sort.Float64s(series)
	return series[len(series)/2], nil
}
