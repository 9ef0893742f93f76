package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/JamesXYZT/lstm-melody/constants"
	"github.com/JamesXYZT/lstm-melody/melody"
	"github.com/JamesXYZT/lstm-melody/midi"
	"github.com/JamesXYZT/lstm-melody/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(encodeCmd)
}

var encodeCmd = &cobra.Command{
	Use:   "encode <midi-file>",
	Short: "Encodes a midi file into a Melody-RNN sequence",
	Long:  `Encodes a midi file into a Melody-RNN sequence`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		encode(args[0])
	},
}

func encode(path string) {
	parsed, err := midi.ReadMidiFile(path)
	if err != nil {
		panic("Could not read midi file: " + err.Error())
	}
	timeline, err := midi.Timeline(parsed)
	if err != nil {
		panic("Could not build timeline: " + err.Error())
	}
	seq, err := melody.Encode(timeline)
	if err != nil {
		panic("Could not encode timeline: " + err.Error())
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(constants.GetOutputDir(), base+".dat")
	util.CreateBinary(out, seq)
	fmt.Printf("Encoded %v notes into %v events: %v\n", len(timeline), len(seq), out)
}
