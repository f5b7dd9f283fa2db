package hand

import (
	"fmt"
	"strings"
)

// QuestionText is the fixed prompt attached to every study spot.
const QuestionText = "What do you do?"

// Player is one seat at the table. The last seat is always the dealer.
type Player struct {
	Name     string
	IsDealer bool
	IsHero   bool
}

// Question is a study spot inside a street. Row and Column identify the
// cell of the street's action table the question refers to, in acting
// order (row 0 is whoever acts first).
type Question struct {
	Question string
	Answer   string
	Row      int
	Column   int
}

// Street is one betting round. Actions is indexed by acting-order
// position, not absolute seat: row r holds the actions of seat
// (r + FirstPlayerActions) mod player count.
type Street struct {
	Name               string
	Board              []string // cards dealt for this street, empty preflop
	InitialPots        []int
	InitialPlayers     []bool
	InitialStacks      []int
	FirstPlayerActions int
	Actions            [][]Action
	Questions          []Question

	// defaultQuestions collects one candidate per hero action; they are
	// promoted at finalize time only if no explicit study marker appeared
	// anywhere in the hand.
	defaultQuestions []Question
}

// Row returns the action-table row for an absolute seat.
func (s *Street) Row(seat int) int {
	n := len(s.Actions)
	return ((seat-s.FirstPlayerActions)%n + n) % n
}

// Seat returns the absolute seat for an action-table row.
func (s *Street) Seat(row int) int {
	return (row + s.FirstPlayerActions) % len(s.Actions)
}

// Hand is the fully parsed, queryable model of one hand history.
type Hand struct {
	Title     string
	Players   []Player
	HeroCards []string
	Streets   []*Street
	Notes     string
	Source    string
	Context   string
	Answers   []string
}

// Hero returns the hero player, or ok=false if none is marked.
func (h *Hand) Hero() (Player, bool) {
	for _, p := range h.Players {
		if p.IsHero {
			return p, true
		}
	}
	return Player{}, false
}

// QuestionCount returns the total number of questions across streets.
func (h *Hand) QuestionCount() int {
	count := 0
	for _, s := range h.Streets {
		count += len(s.Questions)
	}
	return count
}

// Validate checks the structural invariants: exactly one hero, exactly
// one dealer, and action tables sized to the player count.
func (h *Hand) Validate() error {
	var heroes, dealers []string
	for _, p := range h.Players {
		if p.IsHero {
			heroes = append(heroes, p.Name)
		}
		if p.IsDealer {
			dealers = append(dealers, p.Name)
		}
	}
	if len(heroes) == 0 {
		return Validationf("there is no hero")
	}
	if len(heroes) > 1 {
		return Validationf("there are multiple heroes, namely %s", strings.Join(heroes, ", "))
	}
	if len(dealers) == 0 {
		return Validationf("there is no dealer")
	}
	if len(dealers) > 1 {
		return Validationf("there are multiple dealers, namely %s", strings.Join(dealers, ", "))
	}

	n := len(h.Players)
	for _, s := range h.Streets {
		if len(s.Actions) != n || len(s.InitialPlayers) != n || len(s.InitialStacks) != n {
			return Validationf("street %s tables do not match the player count %d", s.Name, n)
		}
	}
	return nil
}

// title derives the game/stake summary, e.g. "NLHE 2/4".
func title(variant string, blinds, antes []int) string {
	game := "NLHE"
	if variant == "FT" {
		game = "FLHE"
	}

	var stakes []string
	for _, b := range blinds {
		if b > 0 {
			stakes = append(stakes, fmt.Sprintf("%d", b))
		}
	}
	out := game
	if len(stakes) > 0 {
		out += " " + strings.Join(stakes, "/")
	}
	maxAnte := 0
	for _, a := range antes {
		if a > maxAnte {
			maxAnte = a
		}
	}
	if maxAnte > 0 {
		out += fmt.Sprintf(" ante %d", maxAnte)
	}
	return out
}
