package cmd

import (
	"fmt"
	"strconv"

	"github.com/JamesXYZT/lstm-melody/constants"
	"github.com/JamesXYZT/lstm-melody/dataset"
	"github.com/JamesXYZT/lstm-melody/file"
	"github.com/JamesXYZT/lstm-melody/melody"
	"github.com/JamesXYZT/lstm-melody/midi"
	"github.com/JamesXYZT/lstm-melody/util"
	"github.com/spf13/cobra"
)

var sequenceLength int

func init() {
	prepareCmd.Flags().IntVar(&sequenceLength, "sequence-length", constants.DefaultSequenceLength, "window length fed to the model")
	rootCmd.AddCommand(prepareCmd)
}

var prepareCmd = &cobra.Command{
	Use:   "prepare [maxNum]",
	Short: "Prepares training windows from a midi directory",
	Long:  `Prepares training windows from a midi directory`,
	Run: func(cmd *cobra.Command, args []string) {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				panic(err)
			}
			maxNum = arg1
		}

		prepare(maxNum)
	},
}

func prepare(maxNum int) {
	util.RecreateOutputDir()
	paths := util.GatherAllMidiPaths(constants.GetDataDir(), maxNum)
	fileNumMap := file.CreateFileNumMap(paths)

	outDir := constants.GetOutputDir()
	var pending []dataset.Window
	var shards []string
	for i, path := range paths {
		fmt.Printf("Processing %v of %v midi files\n", i+1, len(paths))
		windows, err := windowsForFile(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		pending = append(pending, windows...)

		if len(pending) > constants.PreferredShardWindows {
			shards = append(shards, dataset.WriteShard(outDir, pending))
			pending = pending[:0]
		}
	}
	if len(pending) > 0 {
		shards = append(shards, dataset.WriteShard(outDir, pending))
	}

	// provenance map for the training side, see file.CreateFileNumMap
	util.CreateBinary(outDir+"/fileNumMap.dat", fileNumMap)
	fmt.Printf("Wrote %v shards from %v files\n", len(shards), len(paths))
}

func windowsForFile(path string) ([]dataset.Window, error) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		return nil, err
	}
	timeline, err := midi.Timeline(parsed)
	if err != nil {
		return nil, err
	}
	seq, err := melody.Encode(timeline)
	if err != nil {
		return nil, err
	}
	return dataset.Windows(seq, sequenceLength), nil
}
