//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/jsphweid/melodex/cmd"
	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/store"
)

var savedId string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "melodex-e2e")
	if err != nil {
		panic(err.Error())
	}
	os.Setenv("OUTPUT_PATH", dir)

	savedId, err = store.Save(model.TranscriptionResult{
		SourceFile: "lala.mp3",
		Tempo:      120,
		Notes: []model.NoteEvent{
			{Duration: model.Half, Code: 'j', Octave: 4},
		},
	})
	if err != nil {
		panic(err.Error())
	}

	exitVal := m.Run()
	os.RemoveAll(dir)
	os.Exit(exitVal)
}

func tone(freq float64, sampleRate int, n int) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * freq * float64(i) / float64(sampleRate))
	}
	return samples
}

func TestTranscribeA440E2E(t *testing.T) {
	assert := assert.New(t)

	body, err := json.Marshal(model.TranscribeRequestBody{
		Samples:    tone(440, 44100, 44100),
		SampleRate: 44100,
		Onsets:     []float64{0.0, 1.0},
		Tempo:      120,
	})
	assert.NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/transcribe", bytes.NewReader(body))
	w := httptest.NewRecorder()
	cmd.HandleTranscribe(w, req)

	resp := w.Result()
	respBody, _ := io.ReadAll(resp.Body)
	assert.Equal(200, resp.StatusCode)

	var out model.TranscribeResponse
	assert.NoError(json.Unmarshal(respBody, &out))
	assert.Equal(model.TranscribeResponse{
		Tempo: 120,
		Notes: []model.NoteResponse{
			{Duration: 2, Code: "j", Octave: 4, Token: "2,j,4"},
		},
	}, out)
}

func TestListAndFetchStoredTranscriptionE2E(t *testing.T) {
	assert := assert.New(t)

	req := httptest.NewRequest(http.MethodGet, "/transcriptions", nil)
	w := httptest.NewRecorder()
	cmd.HandleListTranscriptions(w, req)
	assert.Equal(200, w.Result().StatusCode)

	var overviews []model.TranscriptionOverview
	assert.NoError(json.NewDecoder(w.Result().Body).Decode(&overviews))
	assert.Equal(1, len(overviews))
	assert.Equal(savedId, overviews[0].Id)
	assert.Equal("lala.mp3", overviews[0].SourceFile)

	req = httptest.NewRequest(http.MethodGet, "/transcriptions/"+savedId, nil)
	req = mux.SetURLVars(req, map[string]string{"id": savedId})
	w = httptest.NewRecorder()
	cmd.HandleGetTranscription(w, req)
	assert.Equal(200, w.Result().StatusCode)

	var out model.TranscribeResponse
	assert.NoError(json.NewDecoder(w.Result().Body).Decode(&out))
	assert.Equal(120.0, out.Tempo)
	assert.Equal("2,j,4", out.Notes[0].Token)
}
