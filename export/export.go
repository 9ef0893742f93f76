package export

import (
	"encoding/base64"
	"encoding/json"
	"os"

	"github.com/JamesXYZT/lstm-melody/model"
)

// Assemble combines a compressed layer config and a packed weight buffer
// into one artifact, base64-encoding the buffer.
func Assemble(name string, cfg model.CompressedConfig, weightBuf []byte) model.Artifact {
	return model.Artifact{
		ModelName:    name,
		LayersConfig: cfg,
		WeightB64:    base64.StdEncoding.EncodeToString(weightBuf),
	}
}

// Write serializes the artifact as JSON to path. One attempt, errors go
// straight back to the caller.
func Write(path string, artifact model.Artifact) error {
	data, err := json.Marshal(artifact)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0666)
}

func Read(path string) (model.Artifact, error) {
	var artifact model.Artifact
	data, err := os.ReadFile(path)
	if err != nil {
		return artifact, err
	}
	err = json.Unmarshal(data, &artifact)
	return artifact, err
}

// Weights decodes the packed weight buffer back out of an artifact.
func Weights(artifact model.Artifact) ([]byte, error) {
	return base64.StdEncoding.DecodeString(artifact.WeightB64)
}
