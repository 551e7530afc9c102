package util

import (
	"os"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// EnsureOutputDir makes sure dir exists before anything writes into it.
func EnsureOutputDir(dir string) {
	if err := os.MkdirAll(dir, 0777); err != nil {
		panic("Could not create output dir: " + err.Error())
	}
}

// MustHave reports whether bin is on PATH.
func MustHave(bin string) error {
	_, err := exec.LookPath(bin)
	return err
}

// RunCmd runs bin with args and returns combined stdout/stderr. Used for
// the external tools whose text output we parse (aubio, lilypond).
func RunCmd(bin string, args ...string) (string, error) {
	cmd := exec.Command(bin, args...)
	cmd.Env = append(os.Environ(), "LC_ALL=C")
	out, err := cmd.CombinedOutput()
	return string(out), err
}

func ParseFloat(s string) float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return f
}

func ParseInt(s string) int {
	i, _ := strconv.Atoi(strings.TrimSpace(s))
	return i
}

func Clamp[A constraints.Ordered](v A, lo A, hi A) A {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
