package requestmanager

import "github.com/mugiliam/hatchcatalogctl/pkg/types"

type OptionsConfig struct {
	Validate           bool
	ExistingProperties types.PropertyMap
}

type Options func(*OptionsConfig)

// NewOptionsConfig applies opts over the defaults. Payload validation is on unless turned off.
func NewOptionsConfig(opts ...Options) *OptionsConfig {
	cfg := &OptionsConfig{Validate: true}
	for _, o := range opts {
		o(cfg)
	}
	return cfg
}

func WithValidation(validate ...bool) Options {
	return func(cfg *OptionsConfig) {
		if len(validate) > 0 {
			cfg.Validate = validate[0]
		} else {
			cfg.Validate = true
		}
	}
}

// WithExistingProperties supplies the current properties of the resource an update command
// targets. The map is copied.
func WithExistingProperties(props types.PropertyMap) Options {
	return func(cfg *OptionsConfig) {
		cfg.ExistingProperties = props.Clone()
	}
}
