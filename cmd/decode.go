package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/JamesXYZT/lstm-melody/constants"
	"github.com/JamesXYZT/lstm-melody/melody"
	"github.com/JamesXYZT/lstm-melody/midi"
	"github.com/JamesXYZT/lstm-melody/model"
	"github.com/JamesXYZT/lstm-melody/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(decodeCmd)
}

var decodeCmd = &cobra.Command{
	Use:   "decode <sequence.dat>",
	Short: "Decodes a Melody-RNN sequence back into a midi file",
	Long:  `Decodes a Melody-RNN sequence back into a midi file`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		decode(args[0])
	},
}

func decode(path string) {
	seq := util.ReadBinaryOrPanic[model.Sequence](path)
	frames := melody.Decode(seq)
	rendered := midi.FromFrames(frames)

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	out := filepath.Join(constants.GetOutputDir(), base+".mid")
	if err := rendered.WriteFile(out); err != nil {
		panic("Could not write midi file: " + err.Error())
	}
	fmt.Printf("Decoded %v events into %v frames: %v\n", len(seq), len(frames), out)
}
