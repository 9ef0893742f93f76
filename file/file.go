package file

import (
	"github.com/JamesXYZT/lstm-melody/model"
)

// CreateFileNumMap numbers the gathered midi paths. The map is written next
// to the shards for the training side, which reports per-file provenance;
// nothing in this repo reads it back.
func CreateFileNumMap(paths []string) model.FileNumToMidiPath {
	res := make(model.FileNumToMidiPath)
	for i, v := range paths {
		res[uint32(i)] = v
	}
	return res
}
