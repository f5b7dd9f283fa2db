package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/pokerstudy/deckhand/internal/deck"
	"github.com/pokerstudy/deckhand/internal/scenario"
)

type RangeCmd struct {
	Scenarios string   `help:"Preflop scenario YAML file" required:"" type:"existingfile"`
	Out       string   `help:"Output zip path (default <output_dir>/<deck_name>-ranges.zip)"`
	Tag       []string `help:"Extra tags for the generated notes"`
	Config    string   `help:"Config file" default:"deckhand.hcl"`
}

func (c *RangeCmd) Run() error {
	config, err := LoadConfig(c.Config)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(c.Scenarios)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Scenarios, err)
	}
	scenarios, err := scenario.Parse(content)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Scenarios, err)
	}
	if len(scenarios) == 0 {
		return fmt.Errorf("%s contains no scenarios", c.Scenarios)
	}
	log.Debug("parsed scenarios", "file", c.Scenarios, "count", len(scenarios))

	applyConfigColors(scenarios, config.Colors)

	tags := append(append([]string{}, config.Tags...), c.Tag...)
	packager := deck.NewPackager(nil)
	d := packager.NewDeck(config.DeckName + "::Preflop")
	for _, s := range scenarios {
		d.Add(deck.NoteFromScenario(s, tags))
	}

	out := c.Out
	if out == "" {
		out = filepath.Join(config.OutputDir, config.DeckName+"-ranges.zip")
	}
	if err := packager.WriteFile(out, d, nil); err != nil {
		return err
	}
	log.Info("wrote deck", "path", out, "notes", len(d.Notes))
	return nil
}

// applyConfigColors fills in color pairs from the config for actions
// the scenario file itself does not color.
func applyConfigColors(scenarios []*scenario.PreflopScenario, colors []ColorConfig) {
	for _, s := range scenarios {
		for _, col := range colors {
			if _, ok := s.Ranges[col.Action]; !ok {
				continue
			}
			if _, ok := s.Colors[col.Action]; ok {
				continue
			}
			if s.Colors == nil {
				s.Colors = make(map[string][2]string)
			}
			s.Colors[col.Action] = [2]string{col.Light, col.Dark}
		}
	}
}
