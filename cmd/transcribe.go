package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jsphweid/melodex/analysis"
	"github.com/jsphweid/melodex/audio"
	"github.com/jsphweid/melodex/db"
	"github.com/jsphweid/melodex/model"
	"github.com/jsphweid/melodex/render"
	"github.com/jsphweid/melodex/store"
	"github.com/jsphweid/melodex/transcribe"
)

var (
	flagTempo    float64
	flagTitle    string
	flagMidi     bool
	flagLy       bool
	flagPdf      bool
	flagSave     bool
	flagMetadata bool
)

func init() {
	transcribeCmd.Flags().Float64Var(&flagTempo, "tempo", 0, "override the detected tempo (BPM)")
	transcribeCmd.Flags().StringVar(&flagTitle, "title", "", "score title")
	transcribeCmd.Flags().BoolVar(&flagMidi, "midi", false, "write a .mid file")
	transcribeCmd.Flags().BoolVar(&flagLy, "ly", false, "print LilyPond source")
	transcribeCmd.Flags().BoolVar(&flagPdf, "pdf", false, "typeset a PDF score (requires lilypond)")
	transcribeCmd.Flags().BoolVar(&flagSave, "save", false, "persist the result to the output dir")
	transcribeCmd.Flags().BoolVar(&flagMetadata, "lookup-metadata", false, "fetch title/artist from the metadata db")
	rootCmd.AddCommand(transcribeCmd)
}

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <audiofile>",
	Short: "Transcribes a recording",
	Long:  `Transcribes a recording into note tokens`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runTranscribe(args[0])
	},
}

func scoreTitle(path string) string {
	if flagTitle != "" {
		return flagTitle
	}
	if flagMetadata {
		filename := filepath.Base(path)
		metadatas, err := db.GetRecordingMetadatas([]string{filename})
		if err != nil {
			fmt.Printf("Skipping metadata lookup because: %v\n", err)
		} else if m, ok := metadatas[filename]; ok && m.Title != "" {
			return m.Title
		}
	}
	return "Generated Composition"
}

func runTranscribe(path string) {
	fmt.Println("Extracting notes from the audio file...")

	buf, err := audio.Load(path)
	if err != nil {
		panic("Could not load audio: " + err.Error())
	}

	onsets, err := analysis.DetectOnsets(path)
	if err != nil {
		panic("Could not detect onsets: " + err.Error())
	}

	bpm := flagTempo
	if bpm == 0 {
		bpm, err = analysis.TrackTempo(path)
		if err != nil {
			panic("Could not estimate tempo: " + err.Error())
		}
	}

	notes, err := transcribe.Run(buf, onsets, bpm)
	if err != nil {
		panic("Transcription failed: " + err.Error())
	}
	if len(notes) == 0 {
		fmt.Println("No notes detected.")
		return
	}

	fmt.Printf("Transcribed %v notes at %.1f BPM\n", len(notes), bpm)
	for _, n := range notes {
		fmt.Println(n.Token())
	}

	if flagSave {
		id, err := store.Save(model.TranscriptionResult{
			SourceFile: filepath.Base(path),
			Tempo:      bpm,
			Notes:      notes,
		})
		if err != nil {
			panic("Could not save result: " + err.Error())
		}
		fmt.Printf("Saved transcription %v\n", id)
	}

	if flagMidi {
		out, err := render.WriteMidi(notes, bpm)
		if err != nil {
			panic("Could not write midi: " + err.Error())
		}
		fmt.Printf("MIDI saved as: %v\n", out)
	}

	if flagLy || flagPdf {
		source, err := render.Lilypond(notes, scoreTitle(path))
		if err != nil {
			panic("Could not render score: " + err.Error())
		}
		if flagLy {
			fmt.Println(source)
		}
		if flagPdf {
			pdf, err := render.Typeset(source)
			if err != nil {
				panic("Could not typeset score: " + err.Error())
			}
			fmt.Printf("Sheet music saved as: %v\n", pdf)
		}
	}
}
