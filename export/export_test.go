package export

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/JamesXYZT/lstm-melody/constants"
	"github.com/JamesXYZT/lstm-melody/layercfg"
	"github.com/JamesXYZT/lstm-melody/model"
	"github.com/JamesXYZT/lstm-melody/weights"
	"github.com/stretchr/testify/assert"
)

func smallModel() (model.CompressedConfig, []byte) {
	var cfg model.ModelConfig
	// numeric values as float64 so the struct survives a JSON round trip
	cfg.Config.Layers = []model.RawLayer{
		{ClassName: "Embedding", Config: map[string]any{"input_dim": float64(130), "output_dim": float64(4)}},
		{ClassName: "Dense", Config: map[string]any{"units": float64(130), "activation": "linear"}},
	}
	compressed := layercfg.Compress(cfg)

	buf, err := weights.Pack([]weights.Layer{
		weights.StaticLayer{Groups: [][]float64{{0.1, 0.2, 0.3, 0.4}}},
		weights.StaticLayer{Groups: [][]float64{{1, 2}, {0.5}}},
	})
	if err != nil {
		panic(err.Error())
	}
	return compressed, buf
}

func TestAssembleAndRoundTrip(t *testing.T) {
	compressed, buf := smallModel()
	artifact := Assemble(constants.ModelName, compressed, buf)

	path := filepath.Join(t.TempDir(), "model.json")

	assert := assert.New(t)
	assert.NoError(Write(path, artifact))

	parsed, err := Read(path)
	assert.NoError(err)
	assert.Equal(artifact, parsed)
	assert.Equal("musicnetgen", parsed.ModelName)
	assert.Equal(compressed, parsed.LayersConfig)

	decoded, err := Weights(parsed)
	assert.NoError(err)
	assert.Equal(buf, decoded)
	assert.Len(decoded, 4*7)
}

func TestArtifactJSONLayout(t *testing.T) {
	compressed, buf := smallModel()
	artifact := Assemble(constants.ModelName, compressed, buf)

	data, err := json.Marshal(artifact)

	assert := assert.New(t)
	assert.NoError(err)

	var raw map[string]json.RawMessage
	assert.NoError(json.Unmarshal(data, &raw))
	assert.Contains(raw, "model_name")
	assert.Contains(raw, "layers_config")
	assert.Contains(raw, "weight_b64")

	var layersConfig map[string]json.RawMessage
	assert.NoError(json.Unmarshal(raw["layers_config"], &layersConfig))
	assert.Contains(layersConfig, "layers")
}

func TestWriteFailsOnMissingDir(t *testing.T) {
	compressed, buf := smallModel()
	artifact := Assemble(constants.ModelName, compressed, buf)

	err := Write(filepath.Join(t.TempDir(), "nope", "model.json"), artifact)
	assert.Error(t, err)
}
