// Package store persists transcription results as gob binaries under
// the output dir, one uuid-named file each.
package store

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/jsphweid/melodex/constants"
	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/util"
)

var resultFileRe = regexp.MustCompile(`^[0-9a-fA-F]{8}-([0-9a-fA-F]{4}-){3}[0-9a-fA-F]{12}\.dat$`)

// Save writes res to disk, assigning an id and timestamp if missing,
// and returns the id.
func Save(res model.TranscriptionResult) (string, error) {
	if res.Id == "" {
		res.Id = uuid.New().String()
	}
	if res.CreatedAt.IsZero() {
		res.CreatedAt = time.Now()
	}

	util.EnsureOutputDir(constants.GetOutputDir())
	path := filepath.Join(constants.GetOutputDir(), res.Id+".dat")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("could not create result file: %v", err)
	}
	defer f.Close()

	if err := gob.NewEncoder(f).Encode(res); err != nil {
		return "", fmt.Errorf("could not encode result: %v", err)
	}
	return res.Id, nil
}

// Load reads one result back by id.
func Load(id string) (model.TranscriptionResult, error) {
	var res model.TranscriptionResult
	path := filepath.Join(constants.GetOutputDir(), id+".dat")
	f, err := os.Open(path)
	if err != nil {
		return res, fmt.Errorf("no stored transcription %v: %v", id, err)
	}
	defer f.Close()

	if err := gob.NewDecoder(f).Decode(&res); err != nil {
		return res, fmt.Errorf("could not decode %v: %v", id, err)
	}
	return res, nil
}

// List summarizes every stored result in the output dir.
func List() ([]model.TranscriptionOverview, error) {
	entries, err := os.ReadDir(constants.GetOutputDir())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var overviews []model.TranscriptionOverview
	for _, e := range entries {
		if !resultFileRe.MatchString(e.Name()) {
			continue
		}
		id := e.Name()[:len(e.Name())-len(".dat")]
		res, err := Load(id)
		if err != nil {
			continue
		}
		overviews = append(overviews, model.TranscriptionOverview{
			Id:         res.Id,
			SourceFile: res.SourceFile,
			NumNotes:   len(res.Notes),
		})
	}
	return overviews, nil
}
