package layercfg

import (
	"testing"

	"github.com/JamesXYZT/lstm-melody/model"
	"github.com/stretchr/testify/assert"
)

func rawLayer(className string, config map[string]any) model.RawLayer {
	// every framework layer drags along keys we never want exported
	config["name"] = "layer_0"
	config["dtype"] = "float32"
	config["trainable"] = true
	return model.RawLayer{ClassName: className, Config: config}
}

func compressOne(layer model.RawLayer) model.LayerConfig {
	var cfg model.ModelConfig
	cfg.Config.Layers = []model.RawLayer{layer}
	return Compress(cfg).Layers[0]
}

func TestCompressKeepsExactlyWhitelistedKeys(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		layer    model.RawLayer
		expected map[string]any
	}{
		{
			rawLayer("InputLayer", map[string]any{"batch_input_shape": []any{float64(32), nil}}),
			map[string]any{"batch_input_shape": []any{float64(32), nil}},
		},
		{
			rawLayer("Rescaling", map[string]any{"scale": 0.00392, "offset": 0.0}),
			map[string]any{"scale": 0.00392, "offset": 0.0},
		},
		{
			rawLayer("Dense", map[string]any{"units": 130, "activation": "linear", "use_bias": true}),
			map[string]any{"units": 130, "activation": "linear"},
		},
		{
			rawLayer("Conv2D", map[string]any{
				"filters": 8, "kernel_size": []any{3, 3}, "strides": []any{1, 1},
				"activation": "relu", "padding": "same", "dilation_rate": []any{1, 1},
			}),
			map[string]any{
				"filters": 8, "kernel_size": []any{3, 3}, "strides": []any{1, 1},
				"activation": "relu", "padding": "same",
			},
		},
		{
			rawLayer("MaxPooling2D", map[string]any{"pool_size": []any{2, 2}, "strides": []any{2, 2}, "padding": "valid"}),
			map[string]any{"pool_size": []any{2, 2}, "strides": []any{2, 2}, "padding": "valid"},
		},
		{
			rawLayer("Embedding", map[string]any{"input_dim": 130, "output_dim": 256, "embeddings_initializer": "uniform"}),
			map[string]any{"input_dim": 130, "output_dim": 256},
		},
		{
			rawLayer("SimpleRNN", map[string]any{"units": 512, "activation": "tanh", "dropout": 0.0}),
			map[string]any{"units": 512, "activation": "tanh"},
		},
		{
			rawLayer("LSTM", map[string]any{
				"units": 512, "activation": "tanh", "recurrent_activation": "sigmoid",
				"stateful": true, "return_sequences": true,
			}),
			map[string]any{"units": 512, "activation": "tanh", "recurrent_activation": "sigmoid"},
		},
	}

	for _, c := range cases {
		reduced := compressOne(c.layer)
		assert.Equal(c.layer.ClassName, reduced.ClassName)
		assert.Equal(c.expected, reduced.Config)
	}
}

func TestCompressUnknownKindHasNoConfig(t *testing.T) {
	reduced := compressOne(rawLayer("Activation", map[string]any{"activation": "softmax"}))

	assert := assert.New(t)
	assert.Equal("Activation", reduced.ClassName)
	assert.Nil(reduced.Config)
}

func TestCompressPreservesLayerOrder(t *testing.T) {
	var cfg model.ModelConfig
	cfg.Config.Layers = []model.RawLayer{
		rawLayer("Embedding", map[string]any{"input_dim": 130, "output_dim": 256}),
		rawLayer("LSTM", map[string]any{"units": 512, "activation": "tanh", "recurrent_activation": "sigmoid"}),
		rawLayer("LSTM", map[string]any{"units": 512, "activation": "tanh", "recurrent_activation": "sigmoid"}),
		rawLayer("Dense", map[string]any{"units": 130, "activation": "linear"}),
		rawLayer("Activation", map[string]any{"activation": "softmax"}),
	}

	compressed := Compress(cfg)

	assert := assert.New(t)
	assert.Len(compressed.Layers, 5)
	assert.Equal("Embedding", compressed.Layers[0].ClassName)
	assert.Equal("Dense", compressed.Layers[3].ClassName)
	assert.Nil(compressed.Layers[4].Config)
}
