package model

// Event is one Melody-RNN code: 0-127 note-on, 128 note-off, 129 no event.
type Event = int16

// Sequence is a fixed-rate melody, one Event per sixteenth note.
type Sequence = []Event

// TimedNote is one pitched note on the symbolic timeline, with onset and
// duration in quarter-note beats. Chords are represented by their highest
// pitch only.
type TimedNote struct {
	Onset    float64 `json:"onset"`
	Duration float64 `json:"duration"`
	Pitch    uint8   `json:"pitch"`
}

// NoteFrame is one decoded row: a note-on or note-off code and how long it
// holds, in quarter-note beats.
type NoteFrame struct {
	Code     Event   `json:"code"`
	Duration float64 `json:"duration"`
}

type FileNumToMidiPath = map[uint32]string
