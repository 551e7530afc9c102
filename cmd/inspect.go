package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsphweid/melodex/store"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <id>",
	Short: "Inspects a stored transcription",
	Long:  `Inspects a stored transcription`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		inspect(args[0])
	},
}

func inspect(id string) {
	res, err := store.Load(id)
	if err != nil {
		panic(err.Error())
	}
	fmt.Printf("source: %v\n", res.SourceFile)
	fmt.Printf("tempo: %v\n", res.Tempo)
	fmt.Printf("created: %v\n", res.CreatedAt)
	for _, n := range res.Notes {
		fmt.Println(n.Token())
	}
}
