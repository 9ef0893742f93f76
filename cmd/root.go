package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lstm-melody",
	Short: "Melody-RNN tooling",
	Long:  `Encodes monophonic melodies into the Melody-RNN format and exports trained models for the web runtime.`,
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
