package layercfg

import "github.com/JamesXYZT/lstm-melody/model"

// keys retained per recognized layer kind, everything else the framework
// stuffs into a layer config is dropped
var kindKeys = map[string][]string{
	"InputLayer":   {"batch_input_shape"},
	"Rescaling":    {"scale", "offset"},
	"Dense":        {"units", "activation"},
	"Conv2D":       {"filters", "kernel_size", "strides", "activation", "padding"},
	"MaxPooling2D": {"pool_size", "strides", "padding"},
	"Embedding":    {"input_dim", "output_dim"},
	"SimpleRNN":    {"units", "activation"},
	"LSTM":         {"units", "activation", "recurrent_activation"},
}

// Compress reduces a full model description to per-layer whitelisted keys.
// Unrecognized kinds are kept as a bare class_name entry rather than
// rejected, so newer layer kinds still export.
func Compress(cfg model.ModelConfig) model.CompressedConfig {
	layers := make([]model.LayerConfig, 0, len(cfg.Config.Layers))
	for _, layer := range cfg.Config.Layers {
		reduced := model.LayerConfig{ClassName: layer.ClassName}
		if keys, ok := kindKeys[layer.ClassName]; ok {
			config := make(map[string]any, len(keys))
			for _, key := range keys {
				if value, ok := layer.Config[key]; ok {
					config[key] = value
				}
			}
			reduced.Config = config
		}
		layers = append(layers, reduced)
	}
	return model.CompressedConfig{Layers: layers}
}
