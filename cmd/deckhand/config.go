package main

import (
	"fmt"
	"os"
	"regexp"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the optional deckhand configuration file.
type Config struct {
	DeckName  string        `hcl:"deck_name,optional"`
	OutputDir string        `hcl:"output_dir,optional"`
	Tags      []string      `hcl:"tags,optional"`
	Colors    []ColorConfig `hcl:"color,block"`
}

// ColorConfig assigns a light/dark color pair to a range action, used
// when a scenario file does not specify its own.
type ColorConfig struct {
	Action string `hcl:"action,label"`
	Light  string `hcl:"light"`
	Dark   string `hcl:"dark,optional"`
}

var configColorPattern = regexp.MustCompile(`(^#[0-9A-Fa-f]{6}$)|(^[a-zA-Z]+$)`)

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		DeckName:  "PokerStudy",
		OutputDir: ".",
	}
}

// LoadConfig loads configuration from an HCL file. A missing file is
// not an error; defaults apply.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if config.DeckName == "" {
		config.DeckName = "PokerStudy"
	}
	if config.OutputDir == "" {
		config.OutputDir = "."
	}
	for i := range config.Colors {
		if config.Colors[i].Dark == "" {
			config.Colors[i].Dark = config.Colors[i].Light
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the configuration for obvious mistakes.
func (c *Config) Validate() error {
	seen := make(map[string]bool)
	for _, col := range c.Colors {
		if seen[col.Action] {
			return fmt.Errorf("duplicate color block for action %q", col.Action)
		}
		seen[col.Action] = true
		for _, v := range []string{col.Light, col.Dark} {
			if !configColorPattern.MatchString(v) {
				return fmt.Errorf("%q is an invalid color for action %q", v, col.Action)
			}
		}
	}
	return nil
}

const exampleConfig = `# deckhand configuration. All settings are optional.

# Name of the generated deck.
deck_name = "PokerStudy"

# Directory the deck zip is written to.
output_dir = "."

# Tags attached to every generated note.
tags = ["poker"]

# Default colors for range actions, used when a scenario file does not
# set its own range_colors. Colors are either named ("lightblue") or
# hex ("#A7FF12"); dark is used in dark mode and defaults to light.
color "Raise" {
  light = "lightgreen"
  dark  = "darkgreen"
}

color "Call" {
  light = "lightblue"
  dark  = "darkblue"
}
`
