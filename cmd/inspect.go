package cmd

import (
	"fmt"

	"github.com/JamesXYZT/lstm-melody/export"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <artifact.json>",
	Short: "Inspects an exported artifact",
	Long:  `Inspects an exported artifact`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		inspect(args[0])
	},
}

func inspect(path string) {
	artifact, err := export.Read(path)
	if err != nil {
		panic("Could not read artifact: " + err.Error())
	}
	buf, err := export.Weights(artifact)
	if err != nil {
		panic("Could not decode weights: " + err.Error())
	}

	fmt.Printf("model_name: %v\n", artifact.ModelName)
	for _, layer := range artifact.LayersConfig.Layers {
		fmt.Printf("layer: %v config: %v\n", layer.ClassName, layer.Config)
	}
	fmt.Printf("weights: %v bytes (%v float32 values)\n", len(buf), len(buf)/4)
}
