package main

import (
	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Debug   bool             `help:"Enable debug logging"`

	Hand    HandCmd    `cmd:"" help:"Generate a study deck from PHH hand history files"`
	Range   RangeCmd   `cmd:"" help:"Generate a study deck from a preflop scenario file"`
	Example ExampleCmd `cmd:"" help:"Write commented example input files"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("deckhand"),
		kong.Description("Poker study flashcard generator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	if cli.Debug {
		log.SetLevel(log.DebugLevel)
	}
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
