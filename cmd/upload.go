package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/JamesXYZT/lstm-melody/storage"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(uploadCmd)
}

var uploadCmd = &cobra.Command{
	Use:   "upload <artifact.json>",
	Short: "Uploads an exported artifact to the artifact bucket",
	Long:  `Uploads an exported artifact to the artifact bucket`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			panic("Need 1 arg...")
		}
		upload(args[0])
	},
}

func upload(path string) {
	key := filepath.Base(path)
	if err := storage.UploadArtifact(path, key); err != nil {
		panic("Could not upload artifact: " + err.Error())
	}
	fmt.Printf("Uploaded %v as %v\n", path, key)
}
