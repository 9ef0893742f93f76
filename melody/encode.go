package melody

import (
	"errors"
	"fmt"
	"sort"

	"github.com/JamesXYZT/lstm-melody/constants"
	"github.com/JamesXYZT/lstm-melody/grid"
	"github.com/JamesXYZT/lstm-melody/model"
)

var ErrInvalidPitch = errors.New("invalid pitch value")

type gridNote struct {
	pos   int
	dur   int
	pitch uint8
}

// Encode converts a timeline of pitched notes into the fixed-rate Melody-RNN
// sequence, one event per sixteenth note. Simultaneous onsets collapse to the
// highest pitch. The result has length totalTicks+1; an empty timeline yields
// a single NoEvent element.
func Encode(timeline []model.TimedNote) (model.Sequence, error) {
	var end float64
	for _, n := range timeline {
		if t := n.Onset + n.Duration; t > end {
			end = t
		}
	}
	total, err := grid.Quantize(end, constants.GridUnit)
	if err != nil {
		return nil, err
	}

	notes := make([]gridNote, 0, len(timeline))
	for _, n := range timeline {
		// pitches above 127 would collide with the NoteOff/NoEvent codes
		if n.Pitch > 127 {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPitch, n.Pitch)
		}
		pos, err := grid.Quantize(n.Onset, constants.GridUnit)
		if err != nil {
			return nil, err
		}
		dur, err := grid.Quantize(n.Duration, constants.GridUnit)
		if err != nil {
			return nil, err
		}
		notes = append(notes, gridNote{pos: pos, dur: dur, pitch: n.Pitch})
	}

	// earliest onset first, highest pitch first within one onset
	sort.SliceStable(notes, func(i, j int) bool {
		if notes[i].pos != notes[j].pos {
			return notes[i].pos < notes[j].pos
		}
		return notes[i].pitch > notes[j].pitch
	})

	out := make(model.Sequence, total+1)
	for i := range out {
		out[i] = constants.NoEvent
	}

	prevPos := -1
	for _, n := range notes {
		if n.pos == prevPos {
			// conflicting onset, only the highest pitch survives
			continue
		}
		prevPos = n.pos
		if n.pos >= total {
			continue
		}
		// note-off is written after note-on so a zero-tick note ends up as
		// a bare NoteOff at its own onset
		out[n.pos] = model.Event(n.pitch)
		off := n.pos + n.dur
		if off > total {
			off = total
		}
		out[off] = constants.NoteOff
	}

	return out, nil
}
