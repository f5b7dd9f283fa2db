package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
)

type ExampleCmd struct {
	Config    string `help:"Write an example config file to this path" xor:"target"`
	Scenarios string `help:"Write an example scenario file to this path" xor:"target"`
	Hand      string `help:"Write an example PHH hand history to this path" xor:"target"`
}

func (c *ExampleCmd) Run() error {
	switch {
	case c.Config != "":
		return writeExample(c.Config, exampleConfig)
	case c.Scenarios != "":
		return writeExample(c.Scenarios, exampleScenarios)
	case c.Hand != "":
		return writeExample(c.Hand, exampleHand)
	default:
		return fmt.Errorf("specify one of --config, --scenarios or --hand")
	}
}

// writeExample refuses to overwrite: examples are starting points, not
// something to clobber user edits with.
func writeExample(path, content string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, not overwriting", path)
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return err
	}
	log.Info("wrote example file", "path", path)
	return nil
}

const exampleScenarios = `## The scenario file is a list of scenarios. Each scenario is a
## dictionary with the keys game, position, scenario, ranges,
## range_colors, notes and source.
##
## ranges maps actions to hand ranges. Most common is to have Raise,
## Call and Fold, but any name works. All hands that are not specified
## default to 'Fold'.

- game: "Cash 100BB 6P"
  position: "LJ"
  scenario: "Opening"
  ranges:
    Raise: "A2s+, K5s+, Q9s+, JTs, T9s, ATo+, KJo+, QJo+, 77+"
  source: pokertrainer.se

- game: "Cash 100BB 6P"
  position: "HJ"
  scenario: "Opening"
  ranges:
    Raise: "A2s+, K5s+, Q8s+, J9s+, T9s, A9o+, KTo+, QTo+, 66+"
  source: pokertrainer.se

## You can specify one DEFAULT scenario that sets the default values
## for all fields the other scenarios do not specify:
#
# - DEFAULT: true
#   source: "https://example.com/"
#   game: "Cash 100BB 6P"
#
## Ranges can also carry colors, one for light mode and one for dark:
#
# - game: "Las Vegas Tournament 22"
#   position: "Under the gun"
#   scenario: "Facing a 3bet"
#   ranges:
#     Raise: "A2s+"
#     Call: "77+"
#   range_colors:
#     Raise:
#       - lightblue
#       - darkblue
#   notes: "Remember that Bob always folds to 3bets."
`

const exampleHand = `# An example PHH hand history. Lines starting with '#' are comments.
variant = "NT"
antes = [0, 0, 0]
blinds_or_straddles = [2, 4, 0]
min_bet = 2
starting_stacks = [110, 420, 450]
actions = [
  "d dh p1 ????",
  "d dh p2 Th8c",
  "d dh p3 ????",
  "p3 cbr 12",
  "p1 f",
  # Mark a spot worth studying with 'apm study'. An inline answer is
  # optional; without one the action taken becomes the answer.
  "p2 cc # apm study: call, the price is right",
  "d db AhTs8h",
  "p2 cc",
  "p3 cbr 20",
  "p2 cc",
  "d db 4s",
  "p2 cbr 40",
  "p3 cc",
]
players = ["Naima", "Chao", "Ben"]

# Optional tool-specific metadata:
_apm_source = "Weekly home game"
_apm_context = "Online game. Fairly tight."
_apm_notes = "Review the turn sizing."
`
