// Package config loads jsxc settings from YAML.
//
//	factory: Roact
//	create_element: createElement
//	key_attribute: Key
//	element_sentinels: [props, component]
//	intrinsics:
//	  frame: Frame
//	indent: "    "
//	debug: false
//
// Omitted fields keep their defaults. Intrinsics are merged over the
// default table. Unknown fields are rejected.
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/jsx-luau/errors"
	"github.com/wippyai/jsx-luau/jsx"
)

type Config struct {
	Intrinsics       map[string]string `yaml:"intrinsics"`
	Factory          string            `yaml:"factory"`
	CreateElement    string            `yaml:"create_element"`
	KeyAttribute     string            `yaml:"key_attribute"`
	RefAttribute     string            `yaml:"ref_attribute"`
	EventAttribute   string            `yaml:"event_attribute"`
	ChangeAttribute  string            `yaml:"change_attribute"`
	Indent           string            `yaml:"indent"`
	ElementSentinels []string          `yaml:"element_sentinels"`
	Debug            bool              `yaml:"debug"`
}

// Default returns the configuration matching jsx.DefaultOptions.
func Default() *Config {
	o := jsx.DefaultOptions()
	return &Config{
		Intrinsics:       o.Intrinsics,
		Factory:          o.Factory,
		CreateElement:    o.CreateElement,
		KeyAttribute:     o.KeyAttribute,
		RefAttribute:     o.RefAttribute,
		EventAttribute:   o.EventAttribute,
		ChangeAttribute:  o.ChangeAttribute,
		ElementSentinels: o.ElementSentinels,
		Indent:           "\t",
	}
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.NotFound(errors.PhaseLoad, "config file", path, err)
		}
		return nil, errors.Load("read config "+path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	defaults := cfg.Intrinsics
	cfg.Intrinsics = nil

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "decode yaml")
	}

	merged := make(map[string]string, len(defaults)+len(cfg.Intrinsics))
	for tag, class := range defaults {
		merged[tag] = class
	}
	for tag, class := range cfg.Intrinsics {
		merged[tag] = class
	}
	cfg.Intrinsics = merged

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the lowering options and the printer settings.
func (c *Config) Validate() error {
	if err := c.JSXOptions().Validate(); err != nil {
		return err
	}
	if strings.Trim(c.Indent, " \t") != "" {
		return errors.InvalidData(errors.PhaseConfig, []string{"indent"}, "must contain only spaces and tabs")
	}
	for tag := range c.Intrinsics {
		if tag == "" || strings.ToLower(tag[:1]) != tag[:1] {
			return errors.InvalidData(errors.PhaseConfig, []string{"intrinsics", tag}, "intrinsic tags must start with a lowercase letter")
		}
	}
	return nil
}

// JSXOptions converts the configuration to lowering options.
func (c *Config) JSXOptions() jsx.Options {
	return jsx.Options{
		Intrinsics:       c.Intrinsics,
		Factory:          c.Factory,
		CreateElement:    c.CreateElement,
		KeyAttribute:     c.KeyAttribute,
		RefAttribute:     c.RefAttribute,
		EventAttribute:   c.EventAttribute,
		ChangeAttribute:  c.ChangeAttribute,
		ElementSentinels: c.ElementSentinels,
	}
}
