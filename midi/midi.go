package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/JamesXYZT/lstm-melody/model"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// Timeline projects an SMF into timed notes with onsets and durations in
// quarter-note beats. Note-ons are paired with the next note-off (or zero
// velocity note-on) of the same pitch within the track.
func Timeline(s *smf.SMF) ([]model.TimedNote, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("unsupported time format: %v", s.TimeFormat)
	}
	resolution := float64(ticks.Resolution())

	var notes []model.TimedNote
	for _, events := range s.Tracks {
		var absTicks int64
		pressed := make(map[uint8]int64)
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel uint8
			var key uint8
			var velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
				pressed[key] = absTicks
			case event.Message.GetNoteOff(&channel, &key, &velocity),
				event.Message.GetNoteOn(&channel, &key, &velocity):
				onTicks, ok := pressed[key]
				if !ok {
					continue
				}
				delete(pressed, key)
				notes = append(notes, model.TimedNote{
					Onset:    float64(onTicks) / resolution,
					Duration: float64(absTicks-onTicks) / resolution,
					Pitch:    key,
				})
			}
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		return notes[i].Onset < notes[j].Onset
	})
	return notes, nil
}

// FromFrames renders decoded frames back into a single-track SMF for
// playback. Note-off and stray no-event codes become gaps.
func FromFrames(frames []model.NoteFrame) *smf.SMF {
	ticks := smf.MetricTicks(960)
	resolution := float64(ticks.Resolution())

	var res smf.SMF
	res.TimeFormat = ticks

	var track smf.Track
	var gap uint32
	for _, frame := range frames {
		durTicks := uint32(frame.Duration * resolution)
		if frame.Code >= 0 && frame.Code <= 127 {
			track.Add(gap, gomidi.NoteOn(0, uint8(frame.Code), 100))
			track.Add(durTicks, gomidi.NoteOff(0, uint8(frame.Code)))
			gap = 0
		} else {
			gap += durTicks
		}
	}
	track.Close(gap)
	res.Tracks = append(res.Tracks, track)
	return &res
}
