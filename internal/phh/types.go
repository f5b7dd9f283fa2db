package phh

import "fmt"

// Supported variant codes. Anything else (pot-limit, split-pot, short
// deck) is rejected up front.
const (
	VariantNoLimitHoldem string = "NT"
	VariantLimitHoldem   string = "FT"
)

// HandHistory represents a single poker hand encoded in PHH format.
type HandHistory struct {
	Variant           string   `toml:"variant"`
	Table             string   `toml:"table,omitempty"`
	SeatCount         int      `toml:"seat_count,omitempty"`
	Seats             []int    `toml:"seats,omitempty"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	MinBet            int      `toml:"min_bet"`
	StartingStacks    []int    `toml:"starting_stacks"`
	FinishingStacks   []int    `toml:"finishing_stacks,omitempty"`
	Winnings          []int    `toml:"winnings,omitempty"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	HandID            string   `toml:"hand,omitempty"`
	Event             string   `toml:"event,omitempty"`
	Author            string   `toml:"author,omitempty"`
	Currency          string   `toml:"currency,omitempty"`
	Year              int      `toml:"year,omitempty"`

	// Raw holds every top-level key with its dynamic TOML value. Tool
	// metadata keys (the "_apm_" prefix) are only reachable through it.
	Raw map[string]any `toml:"-"`
}

// PlayerCount returns the number of seats in the hand, preferring the
// explicit player list and falling back to the stack list.
func (h *HandHistory) PlayerCount() int {
	if n := len(h.Players); n > 0 {
		return n
	}
	return len(h.StartingStacks)
}

// PlayerName returns the recorded name for a seat, or a synthetic
// "p<seat>" name when no player list was supplied.
func (h *HandHistory) PlayerName(seat int) string {
	if seat >= 0 && seat < len(h.Players) {
		return h.Players[seat]
	}
	return fmt.Sprintf("p%d", seat+1)
}
