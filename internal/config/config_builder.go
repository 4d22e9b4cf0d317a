package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configuration layers and merges them in order of
// precedence: defaults, then the JSON file, then every other layer in the
// order it was added. Non-zero fields of a later layer win.
type configBuilder struct {
	defaults *StructuredConfig
	file     *StructuredConfig
	layers   []*StructuredConfig
	err      error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, layer := range b.ordered() {
		if err := mergo.Merge(merged, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return merged, nil
}

func (b *configBuilder) ordered() []*StructuredConfig {
	out := make([]*StructuredConfig, 0, len(b.layers)+2)
	for _, cfg := range []*StructuredConfig{b.defaults, b.file} {
		if cfg != nil {
			out = append(out, cfg)
		}
	}
	return append(out, b.layers...)
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	if cfg != nil {
		b.layers = append(b.layers, cfg)
	}
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.defaults = defaultConfig()
	return b
}

// withDotEnv loads the .env file into the process environment. It adds no
// layer of its own; withEnv picks the values up.
func (b *configBuilder) withDotEnv(path string) *configBuilder {
	return b.add(nil, loadDotEnv(path))
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := new(StructuredConfig)
	if err := parseEnv(cfg); err != nil {
		return b.add(nil, err)
	}
	return b.add(cfg, nil)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(ParseFlags(args))
}

// withOverrides adds a layer assembled by the caller, e.g. from the
// client's command line.
func (b *configBuilder) withOverrides(cfg *StructuredConfig) *configBuilder {
	return b.add(cfg, nil)
}

// withJSON reads the file named by the last layer that sets a path. The
// file ranks above the defaults and below every other source.
func (b *configBuilder) withJSON() *configBuilder {
	var path string
	for _, cfg := range b.layers {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	if err != nil {
		return b.add(nil, err)
	}
	b.file = cfg
	return b
}
