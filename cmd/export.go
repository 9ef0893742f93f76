package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JamesXYZT/lstm-melody/constants"
	"github.com/JamesXYZT/lstm-melody/export"
	"github.com/JamesXYZT/lstm-melody/layercfg"
	"github.com/JamesXYZT/lstm-melody/model"
	"github.com/JamesXYZT/lstm-melody/weights"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <model-dump.json>",
	Short: "Exports a training dump as a runtime artifact",
	Long:  `Exports a training dump as a runtime artifact`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		exportModel(args[0])
	},
}

func exportModel(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		panic("Could not read training dump: " + err.Error())
	}
	var dump model.TrainingDump
	if err := json.Unmarshal(data, &dump); err != nil {
		panic("Could not parse training dump: " + err.Error())
	}

	layers := make([]weights.Layer, 0, len(dump.Weights))
	for _, groups := range dump.Weights {
		var layer weights.StaticLayer
		for _, group := range groups {
			flat, err := weights.Flatten(group)
			if err != nil {
				panic("Could not flatten weights: " + err.Error())
			}
			layer.Groups = append(layer.Groups, flat)
		}
		layers = append(layers, layer)
	}

	buf, err := weights.Pack(layers)
	if err != nil {
		panic("Could not pack weights: " + err.Error())
	}
	artifact := export.Assemble(constants.ModelName, layercfg.Compress(dump.ModelConfig), buf)

	out := filepath.Join(constants.GetOutputDir(), "model.json")
	if err := export.Write(out, artifact); err != nil {
		panic("Could not write artifact: " + err.Error())
	}
	fmt.Printf("Wrote %v (%v layers, %v weight bytes)\n", out, len(artifact.LayersConfig.Layers), len(buf))
}
