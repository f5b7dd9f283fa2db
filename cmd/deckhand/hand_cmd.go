package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/pokerstudy/deckhand/internal/deck"
	"github.com/pokerstudy/deckhand/internal/hand"
	"github.com/pokerstudy/deckhand/internal/render"
)

type HandCmd struct {
	Files   []string `arg:"" help:"PHH hand history files" type:"existingfile"`
	Out     string   `help:"Output zip path (default <output_dir>/<deck_name>-hands.zip)"`
	Tag     []string `help:"Extra tags for the generated notes"`
	Preview bool     `help:"Print the parsed hands to the terminal instead of packaging"`
	Config  string   `help:"Config file" default:"deckhand.hcl"`
}

func (c *HandCmd) Run() error {
	config, err := LoadConfig(c.Config)
	if err != nil {
		return err
	}

	// Parse in parallel but keep the output in argument order.
	hands := make([]*hand.Hand, len(c.Files))
	var g errgroup.Group
	for i, file := range c.Files {
		g.Go(func() error {
			content, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("reading %s: %w", file, err)
			}
			h, err := hand.Parse(string(content))
			if err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			log.Debug("parsed hand", "file", file,
				"players", len(h.Players), "streets", len(h.Streets))
			hands[i] = h
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if c.Preview {
		for i, h := range hands {
			if i > 0 {
				fmt.Println()
			}
			fmt.Print(render.Preview(h))
		}
		return nil
	}

	tags := append(append([]string{}, config.Tags...), c.Tag...)
	packager := deck.NewPackager(nil)
	d := packager.NewDeck(config.DeckName + "::HandHistory")
	allMedia := make(map[string]bool)
	for i, h := range hands {
		note, media, err := deck.NoteFromHand(h, tags)
		if err != nil {
			return fmt.Errorf("%s: %w", c.Files[i], err)
		}
		d.Add(note)
		for _, m := range media {
			allMedia[m] = true
		}
	}

	out := c.Out
	if out == "" {
		out = filepath.Join(config.OutputDir, config.DeckName+"-hands.zip")
	}
	if err := packager.WriteFile(out, d, sortedKeys(allMedia)); err != nil {
		return err
	}
	log.Info("wrote deck", "path", out, "notes", len(d.Notes), "media", len(allMedia))
	return nil
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
