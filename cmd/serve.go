package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/rhythm"
	"github.com/jsphweid/melodex/store"
	"github.com/jsphweid/melodex/transcribe"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the transcription API",
	Long:  `Serves the transcription API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func toNoteResponses(notes []model.NoteEvent) []model.NoteResponse {
	res := make([]model.NoteResponse, 0, len(notes))
	for _, n := range notes {
		res = append(res, model.NoteResponse{
			Duration: float64(n.Duration),
			Code:     string(n.Code),
			Octave:   n.Octave,
			Token:    n.Token(),
		})
	}
	return res
}

func HandleTranscribe(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "could not read request body")
		return
	}

	var input model.TranscribeRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "could not unmarshal request body: "+err.Error())
		return
	}
	if input.SampleRate <= 0 {
		writeError(w, 400, "sample_rate must be positive")
		return
	}

	buf := model.AudioBuffer{Samples: input.Samples, SampleRate: input.SampleRate}
	notes, err := transcribe.Run(buf, input.Onsets, input.Tempo)
	if err != nil {
		if errors.Is(err, rhythm.ErrBadTempo) {
			writeError(w, 400, err.Error())
			return
		}
		writeError(w, 500, err.Error())
		return
	}

	json.NewEncoder(w).Encode(model.TranscribeResponse{
		Tempo: input.Tempo,
		Notes: toNoteResponses(notes),
	})
}

func HandleListTranscriptions(w http.ResponseWriter, r *http.Request) {
	overviews, err := store.List()
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	if overviews == nil {
		overviews = make([]model.TranscriptionOverview, 0)
	}
	json.NewEncoder(w).Encode(overviews)
}

func HandleGetTranscription(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	res, err := store.Load(id)
	if err != nil {
		writeError(w, 404, err.Error())
		return
	}
	json.NewEncoder(w).Encode(model.TranscribeResponse{
		Tempo: res.Tempo,
		Notes: toNoteResponses(res.Notes),
	})
}

func newRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/transcribe", HandleTranscribe).Methods("POST")
	router.HandleFunc("/transcriptions", HandleListTranscriptions).Methods("GET")
	router.HandleFunc("/transcriptions/{id}", HandleGetTranscription).Methods("GET")
	return cors.Default().Handler(router)
}

func serve() {
	fmt.Println("Serving on :8080")
	log.Fatal(http.ListenAndServe(":8080", newRouter()))
}
