package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
)

// configBuilder collects config sources in priority order and merges them.
type configBuilder struct {
	configs []*StructuredConfig
	args    []string
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
		args:    os.Args[1:],
	}
}

// build merges the collected sources, each overriding the non-zero fields
// of the ones before it, and validates the result.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg, err := parseEnv[StructuredConfig]()
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := parseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("error parsing flags: %w", err))
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withJSON appends the JSON file named by the last source that set one.
func (b *configBuilder) withJSON() *configBuilder {
	if b.err != nil {
		return b
	}

	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, jsonCfg)

	return b
}
