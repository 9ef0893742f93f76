package dataset

import (
	"path/filepath"
	"testing"

	"github.com/JamesXYZT/lstm-melody/model"
	"github.com/stretchr/testify/assert"
)

func TestWindows(t *testing.T) {
	seq := model.Sequence{60, 129, 129, 128, 62}
	windows := Windows(seq, 3)

	assert := assert.New(t)
	assert.Len(windows, 2)
	assert.Equal(model.Sequence{60, 129, 129}, windows[0].Input)
	assert.Equal(model.Event(128), windows[0].Target)
	assert.Equal(model.Sequence{129, 129, 128}, windows[1].Input)
	assert.Equal(model.Event(62), windows[1].Target)
}

func TestWindowsTooShortSequence(t *testing.T) {
	windows := Windows(model.Sequence{60, 128}, 2)
	assert.Empty(t, windows)
}

func TestWindowsCopiesInput(t *testing.T) {
	seq := model.Sequence{60, 129, 128}
	windows := Windows(seq, 2)
	seq[0] = 72

	assert.Equal(t, model.Sequence{60, 129}, windows[0].Input)
}

func TestVocabIsSortedAndDeduplicated(t *testing.T) {
	vocab := Vocab([]string{"G4", "C4", "E4", "C4", "G4"})

	assert := assert.New(t)
	assert.Len(vocab, 3)
	assert.Equal(0, vocab["C4"])
	assert.Equal(1, vocab["E4"])
	assert.Equal(2, vocab["G4"])
}

func TestShardRoundTrip(t *testing.T) {
	dir := t.TempDir()
	windows := Windows(model.Sequence{60, 129, 129, 128, 62, 129}, 3)

	filename := WriteShard(dir, windows)
	loaded := ReadShard(filepath.Join(dir, filename))

	assert.Equal(t, windows, loaded)
}
