package render

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/util"
)

var ErrLilypondMissing = errors.New("lilypond not found; install it or set LILYPOND_PATH")

// codeToPitch is the renderer-owned inverse of the engine alphabet,
// spelled the LilyPond way (cs = C sharp).
var codeToPitch = map[byte]string{
	'a': "c", 'b': "cs", 'c': "d", 'd': "ds",
	'e': "e", 'f': "f", 'g': "fs", 'h': "g",
	'i': "gs", 'j': "a", 'k': "as", 'l': "b",
}

// durationDenom maps beat values to LilyPond duration denominators.
var durationDenom = map[model.Duration]int{
	model.Whole:   1,
	model.Half:    2,
	model.Quarter: 4,
	model.Eighth:  8,
}

// lilyNote spells one event in absolute-octave LilyPond syntax, where
// c' is middle C (octave 4).
func lilyNote(n model.NoteEvent) (string, error) {
	pitch, ok := codeToPitch[n.Code]
	if !ok {
		return "", fmt.Errorf("unknown pitch code %q", string(n.Code))
	}
	denom, ok := durationDenom[n.Duration]
	if !ok {
		return "", fmt.Errorf("unknown duration %v", n.Duration)
	}

	var marks string
	switch {
	case n.Octave >= 3:
		marks = strings.Repeat("'", n.Octave-3)
	default:
		marks = strings.Repeat(",", 3-n.Octave)
	}
	return fmt.Sprintf("%s%s%d", pitch, marks, denom), nil
}

// Lilypond emits a complete compilable score source.
func Lilypond(notes []model.NoteEvent, title string) (string, error) {
	var body []string
	for _, n := range notes {
		s, err := lilyNote(n)
		if err != nil {
			return "", err
		}
		body = append(body, s)
	}

	var b strings.Builder
	b.WriteString("\\version \"2.24.0\"\n")
	b.WriteString(fmt.Sprintf("\\header { title = %q }\n", title))
	b.WriteString("\\score {\n  \\new Staff { " + strings.Join(body, " ") + " }\n  \\layout { }\n}\n")
	return b.String(), nil
}

// FindLilypond locates the typesetter, preferring LILYPOND_PATH.
func FindLilypond() (string, error) {
	if bin := os.Getenv("LILYPOND_PATH"); bin != "" {
		if _, err := os.Stat(bin); err == nil {
			return bin, nil
		}
		return "", ErrLilypondMissing
	}
	if err := util.MustHave("lilypond"); err != nil {
		return "", ErrLilypondMissing
	}
	return "lilypond", nil
}

// Typeset writes source to the output dir and compiles it to PDF,
// returning the PDF path.
func Typeset(source string) (string, error) {
	bin, err := FindLilypond()
	if err != nil {
		return "", err
	}

	util.EnsureOutputDir(constants.GetOutputDir())
	base := filepath.Join(constants.GetOutputDir(), "score")
	if err := os.WriteFile(base+".ly", []byte(source), 0666); err != nil {
		return "", err
	}

	cmd := exec.Command(bin, "-o", base, base+".ly")
	if out, err := cmd.CombinedOutput(); err != nil {
		return "", fmt.Errorf("lilypond failed: %v: %s", err, out)
	}
	return base + ".pdf", nil
}
