// Package audio decodes recordings into mono float64 PCM by shelling
// out to ffmpeg/ffprobe, the same way the rest of the pipeline treats
// decoding as somebody else's problem.
package audio

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"os/exec"

	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/util"
)

func probeSampleRate(path string) (int, error) {
	out, err := util.RunCmd(constants.GetFFprobeBin(),
		"-v", "error", "-select_streams", "a:0", "-show_streams", "-of", "json", path)
	if err != nil {
		return 0, fmt.Errorf("ffprobe failed for %v: %v", path, err)
	}

	var ff struct {
		Streams []struct {
			SampleRate string `json:"sample_rate"`
		} `json:"streams"`
	}
	if err := json.Unmarshal([]byte(out), &ff); err != nil {
		return 0, fmt.Errorf("could not parse ffprobe output: %v", err)
	}
	if len(ff.Streams) == 0 {
		return 0, fmt.Errorf("no audio stream in %v", path)
	}

	sr := util.ParseInt(ff.Streams[0].SampleRate)
	if sr <= 0 {
		return 0, fmt.Errorf("bad sample rate %q in %v", ff.Streams[0].SampleRate, path)
	}
	return sr, nil
}

// Load decodes path to a mono buffer at the file's native sample rate.
func Load(path string) (model.AudioBuffer, error) {
	var blank model.AudioBuffer

	if _, err := os.Stat(path); err != nil {
		return blank, err
	}
	sr, err := probeSampleRate(path)
	if err != nil {
		return blank, err
	}

	// raw little-endian float64, downmixed to one channel
	cmd := exec.Command(constants.GetFFmpegBin(),
		"-hide_banner", "-nostats", "-i", path,
		"-f", "f64le", "-acodec", "pcm_f64le", "-ac", "1", "pipe:1")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return blank, fmt.Errorf("ffmpeg decode failed: %v: %v", err, stderr.String())
	}

	raw := stdout.Bytes()
	samples := make([]float64, len(raw)/8)
	for i := range samples {
		bits := binary.LittleEndian.Uint64(raw[i*8:])
		samples[i] = math.Float64frombits(bits)
	}

	return model.AudioBuffer{Samples: samples, SampleRate: sr}, nil
}
