package constants

import "os"

// Melody-RNN event codes. Values 0-127 mean note-on at that MIDI pitch;
// each element of a sequence lasts one sixteenth note.
const (
	NoteOff    = 128 // stop playing all previous notes
	NoEvent    = 129 // no change from previous event
	MelodySize = 130
)

// GridUnit is the length of one grid tick in quarter-note beats.
const GridUnit = 0.25

const ModelName = "musicnetgen"

const DefaultSequenceLength = 20

// PreferredShardWindows caps how many training windows go into one shard file.
const PreferredShardWindows = 64 * 1024

func GetDataDir() string {
	if path := os.Getenv("DATA_PATH"); path != "" {
		return path
	}
	return "./data"
}

func GetOutputDir() string {
	if path := os.Getenv("OUTPUT_PATH"); path != "" {
		return path
	}
	return "./outputs"
}

func GetArtifactBucket() string {
	bucket := os.Getenv("ARTIFACT_BUCKET")
	if bucket == "" {
		panic("ARTIFACT_BUCKET environment variable is not set!")
	}
	return bucket
}
