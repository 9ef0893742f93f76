package dataset

import (
	"path/filepath"
	"sort"

	"github.com/JamesXYZT/lstm-melody/model"
	"github.com/JamesXYZT/lstm-melody/util"
	"github.com/google/uuid"
)

// Window pairs one input sequence with the event that follows it, the unit
// the training side consumes.
type Window struct {
	Input  model.Sequence
	Target model.Event
}

// Windows slides a fixed-length window over seq, one step at a time. A
// sequence shorter than length+1 yields nothing.
func Windows(seq model.Sequence, length int) []Window {
	var res []Window
	for i := 0; i+length < len(seq); i++ {
		input := make(model.Sequence, length)
		copy(input, seq[i:i+length])
		res = append(res, Window{Input: input, Target: seq[i+length]})
	}
	return res
}

// Vocab assigns dense integer ids to the distinct pitch names, in sorted
// order so the mapping is stable across runs.
func Vocab(pitches []string) map[string]int {
	seen := make(map[string]bool)
	for _, p := range pitches {
		seen[p] = true
	}
	names := util.GetKeys(seen)
	sort.Strings(names)

	res := make(map[string]int, len(names))
	for i, name := range names {
		res[name] = i
	}
	return res
}

// WriteShard saves windows to a freshly named gob file in dir and returns
// the filename.
func WriteShard(dir string, windows []Window) string {
	filename := uuid.New().String() + ".dat"
	util.CreateBinary(filepath.Join(dir, filename), windows)
	return filename
}

func ReadShard(path string) []Window {
	return util.ReadBinaryOrPanic[[]Window](path)
}
