package model

// ModelConfig is the full framework description of a trained model, as the
// training side dumps it: config.layers[].{class_name, config}.
type ModelConfig struct {
	Config struct {
		Layers []RawLayer `json:"layers"`
	} `json:"config"`
}

type RawLayer struct {
	ClassName string         `json:"class_name"`
	Config    map[string]any `json:"config"`
}

// LayerConfig is the reduced form of one layer: its kind plus only the
// whitelisted keys. Unrecognized kinds carry no config at all.
type LayerConfig struct {
	ClassName string         `json:"class_name"`
	Config    map[string]any `json:"config,omitempty"`
}

type CompressedConfig struct {
	Layers []LayerConfig `json:"layers"`
}

// TrainingDump is the file the training side writes for export: the full
// model config plus every layer's parameter groups as nested arrays.
type TrainingDump struct {
	ModelConfig
	Weights [][]any `json:"weights"`
}

// Artifact is the self-describing export unit written to disk: reduced
// layer configs plus the packed weight buffer as base64 text.
type Artifact struct {
	ModelName    string           `json:"model_name"`
	LayersConfig CompressedConfig `json:"layers_config"`
	WeightB64    string           `json:"weight_b64"`
}
