package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "melodex",
	Short: "Monophonic audio to note transcription",
	Long:  `Turns a recording of a single melodic line into quantized note events and optionally renders them as MIDI or sheet music.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
