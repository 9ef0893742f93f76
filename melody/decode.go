package melody

import (
	"github.com/JamesXYZT/lstm-melody/constants"
	"github.com/JamesXYZT/lstm-melody/model"
)

type boundary struct {
	index int
	code  model.Event
}

// Decode collapses a Melody-RNN sequence back into (code, duration) rows by
// dropping NoEvent ticks and taking backward differences between the
// remaining indexes. The final row always gets one grid unit since its true
// duration is not recoverable from the sequence alone. A leading run of
// NoEvent carries no boundary and is lost.
func Decode(seq model.Sequence) []model.NoteFrame {
	var bounds []boundary
	for i, code := range seq {
		if code != constants.NoEvent {
			bounds = append(bounds, boundary{index: i, code: code})
		}
	}

	frames := make([]model.NoteFrame, 0, len(bounds))
	for i, b := range bounds {
		duration := float64(constants.GridUnit)
		if i+1 < len(bounds) {
			duration = float64(bounds[i+1].index-b.index) * constants.GridUnit
		}
		frames = append(frames, model.NoteFrame{Code: b.code, Duration: duration})
	}
	return frames
}
