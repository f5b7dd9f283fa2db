// Package replay turns a decoded PHH hand into an ordered stream of
// primitive operations, each paired with a snapshot of the game state
// after the operation was applied. The stream is finite and can only be
// walked once.
package replay

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pokerstudy/deckhand/internal/phh"
)

// Kind identifies a primitive hand operation.
type Kind int

const (
	HoleDeal Kind = iota
	BoardDeal
	CheckCall
	BetRaise
	Fold
)

func (k Kind) String() string {
	switch k {
	case HoleDeal:
		return "hole-deal"
	case BoardDeal:
		return "board-deal"
	case CheckCall:
		return "check-call"
	case BetRaise:
		return "bet-raise"
	case Fold:
		return "fold"
	default:
		return "unknown"
	}
}

// Operation is a single primitive step of the hand.
type Operation struct {
	Kind  Kind
	Seat  int      // acting or dealt-to seat, -1 for board deals
	Cards []string // hole cards or newly dealt board cards
	To    int      // total street commitment for BetRaise
	// Commentary is the free text following "#" inside the action string.
	Commentary string
}

// Snapshot captures the table state after an operation. Slices are owned
// by the snapshot; later operations never mutate them.
type Snapshot struct {
	Pots   []int  // side-pot breakdown including committed chips
	Stacks []int  // remaining chips per seat
	Active []bool // seat still dealt into the hand
}

// Event pairs an operation with the state it produced.
type Event struct {
	Op    Operation
	State Snapshot
}

// Stream yields the hand's events in order. It is not restartable.
type Stream struct {
	events []Event
	next   int
}

// Next returns the next event, or ok=false once the stream is exhausted.
func (s *Stream) Next() (Event, bool) {
	if s.next >= len(s.events) {
		return Event{}, false
	}
	ev := s.events[s.next]
	s.next++
	return ev, true
}

// table is the mutable simulation state while building the stream.
type table struct {
	stacks        []int
	invested      []int // total chips committed across the whole hand
	contributions []int // chips committed on the current street
	active        []bool
	currentBet    int
}

// NewStream replays the hand's action list and materializes the event
// stream. Blinds and antes are posted before the first event, so the
// snapshot of the first operation already reflects them.
func NewStream(hand *phh.HandHistory) (*Stream, error) {
	playerCount := hand.PlayerCount()
	if playerCount == 0 {
		return nil, fmt.Errorf("hand has no players")
	}
	if len(hand.StartingStacks) != playerCount {
		return nil, fmt.Errorf("hand has %d starting stacks for %d players",
			len(hand.StartingStacks), playerCount)
	}

	t := &table{
		stacks:        append([]int(nil), hand.StartingStacks...),
		invested:      make([]int, playerCount),
		contributions: make([]int, playerCount),
		active:        make([]bool, playerCount),
	}
	for i := range t.active {
		t.active[i] = true
	}
	for seat := 0; seat < playerCount && seat < len(hand.Antes); seat++ {
		t.pay(seat, hand.Antes[seat])
	}
	for seat := 0; seat < playerCount && seat < len(hand.BlindsOrStraddles); seat++ {
		blind := hand.BlindsOrStraddles[seat]
		if blind <= 0 {
			continue
		}
		paid := t.pay(seat, blind)
		t.contributions[seat] = paid
		if paid > t.currentBet {
			t.currentBet = paid
		}
	}

	events := make([]Event, 0, len(hand.Actions))
	for _, raw := range hand.Actions {
		action, commentary := splitCommentary(raw)
		if action == "" {
			continue
		}
		op, ok, err := t.apply(action, playerCount)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		op.Commentary = commentary
		events = append(events, Event{Op: op, State: t.snapshot()})
	}
	return &Stream{events: events}, nil
}

// apply executes one action string against the table. ok=false means the
// action carries no operation (e.g. showdown reveals).
func (t *table) apply(action string, playerCount int) (Operation, bool, error) {
	parts := strings.Fields(action)
	if len(parts) < 2 {
		return Operation{}, false, fmt.Errorf("invalid action %q", action)
	}

	if parts[0] == "d" {
		switch parts[1] {
		case "dh":
			if len(parts) < 4 {
				return Operation{}, false, fmt.Errorf("invalid action %q", action)
			}
			seat := parseSeat(parts[2])
			if seat < 0 || seat >= playerCount {
				return Operation{}, false, fmt.Errorf("invalid seat in %q", action)
			}
			return Operation{Kind: HoleDeal, Seat: seat, Cards: phh.SplitRun(parts[3])}, true, nil
		case "db":
			if len(parts) < 3 {
				return Operation{}, false, fmt.Errorf("invalid action %q", action)
			}
			// New street: betting state resets.
			t.contributions = make([]int, len(t.contributions))
			t.currentBet = 0
			return Operation{Kind: BoardDeal, Seat: -1, Cards: phh.SplitRun(parts[2])}, true, nil
		default:
			return Operation{}, false, fmt.Errorf("unsupported action code %q", action)
		}
	}

	seat := parseSeat(parts[0])
	if seat < 0 || seat >= playerCount {
		return Operation{}, false, fmt.Errorf("invalid seat in %q", action)
	}

	switch parts[1] {
	case "f":
		t.active[seat] = false
		return Operation{Kind: Fold, Seat: seat}, true, nil
	case "cc":
		toCall := t.currentBet - t.contributions[seat]
		paid := t.pay(seat, toCall)
		t.contributions[seat] += paid
		return Operation{Kind: CheckCall, Seat: seat}, true, nil
	case "cbr":
		if len(parts) < 3 {
			return Operation{}, false, fmt.Errorf("missing amount in %q", action)
		}
		to, err := strconv.Atoi(parts[2])
		if err != nil {
			return Operation{}, false, fmt.Errorf("invalid amount in %q", action)
		}
		paid := t.pay(seat, to-t.contributions[seat])
		t.contributions[seat] += paid
		if t.contributions[seat] > t.currentBet {
			t.currentBet = t.contributions[seat]
		}
		return Operation{Kind: BetRaise, Seat: seat, To: to}, true, nil
	case "sm":
		// Showdown reveal, no effect on the replayed state.
		return Operation{}, false, nil
	default:
		return Operation{}, false, fmt.Errorf("unsupported action code %q", action)
	}
}

// pay moves up to amount chips from the seat's stack into the pot and
// returns how much was actually paid.
func (t *table) pay(seat, amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > t.stacks[seat] {
		amount = t.stacks[seat]
	}
	t.stacks[seat] -= amount
	t.invested[seat] += amount
	return amount
}

func (t *table) snapshot() Snapshot {
	return Snapshot{
		Pots:   sidePots(t.invested, t.stacks),
		Stacks: append([]int(nil), t.stacks...),
		Active: append([]bool(nil), t.active...),
	}
}

// sidePots breaks the total committed chips into pot amounts. With no
// all-in there is a single pot; otherwise one pot per all-in level plus
// a final pot for chips above the highest level.
func sidePots(invested, stacks []int) []int {
	total := 0
	maxInvested := 0
	var levels []int
	for seat, amount := range invested {
		total += amount
		if amount > maxInvested {
			maxInvested = amount
		}
		if stacks[seat] == 0 && amount > 0 {
			levels = append(levels, amount)
		}
	}
	if len(levels) == 0 {
		return []int{total}
	}

	sort.Ints(levels)
	levels = dedupeInts(levels)
	if levels[len(levels)-1] < maxInvested {
		levels = append(levels, maxInvested)
	}

	pots := make([]int, 0, len(levels))
	prev := 0
	for _, level := range levels {
		pot := 0
		for _, amount := range invested {
			slice := min(amount, level) - min(amount, prev)
			if slice > 0 {
				pot += slice
			}
		}
		if pot > 0 {
			pots = append(pots, pot)
		}
		prev = level
	}
	if len(pots) == 0 {
		return []int{total}
	}
	return pots
}

func splitCommentary(raw string) (string, string) {
	action := strings.TrimSpace(raw)
	if idx := strings.Index(action, "#"); idx >= 0 {
		return strings.TrimSpace(action[:idx]), strings.TrimSpace(action[idx+1:])
	}
	return action, ""
}

func parseSeat(token string) int {
	if strings.HasPrefix(token, "p") {
		if v, err := strconv.Atoi(token[1:]); err == nil {
			return v - 1
		}
	}
	return -1
}

func dedupeInts(sorted []int) []int {
	out := sorted[:0]
	for i, v := range sorted {
		if i == 0 || v != sorted[i-1] {
			out = append(out, v)
		}
	}
	return out
}
