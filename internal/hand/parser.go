package hand

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/pokerstudy/deckhand/internal/phh"
	"github.com/pokerstudy/deckhand/internal/replay"
)

// studyMarker flags an action's commentary as an explicit study spot.
// Case-insensitive, optionally followed by ":" and an inline answer.
const studyMarker = "apm study"

// Source yields the replay events of one hand in order. The replay
// engine satisfies it; tests substitute synthetic streams.
type Source interface {
	Next() (replay.Event, bool)
}

// Parse converts raw PHH text into a Hand. All failures come back as a
// ValidationError; no partial hand is ever returned.
func Parse(content string) (*Hand, error) {
	hh, err := phh.Decode(content)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	stream, err := replay.NewStream(hh)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}
	return ParseHand(hh, stream)
}

// ParseHand runs the state machine over an event source.
func ParseHand(hh *phh.HandHistory, src Source) (*Hand, error) {
	m, err := newMachine(hh)
	if err != nil {
		return nil, err
	}
	for {
		ev, ok := src.Next()
		if !ok {
			break
		}
		// A handler that declines an event hands it to the next state.
		for {
			advance, err := m.dispatch(ev)
			if err != nil {
				return nil, err
			}
			if advance {
				break
			}
		}
	}
	if err := m.finalize(); err != nil {
		return nil, err
	}
	log.Debug("parsed hand", "players", len(m.hand.Players), "streets", len(m.hand.Streets),
		"questions", m.hand.QuestionCount())
	return m.hand, nil
}

// The streets of a hold'em hand form a fixed linear sequence, so the
// machine never moves backwards: each betting state is ended by the
// board deal that opens the next one.
type state int

const (
	stateSetup state = iota
	stateEndSetup
	statePreflop
	stateEndPreflop
	stateFlop
	stateEndFlop
	stateTurn
	stateEndTurn
	stateRiver
	stateFinalize
)

type machine struct {
	hand   *Hand
	custom customFields
	state  state

	holeCards [][]string
	dealt     int
	heroSeat  int

	betOccurred bool
	explicit    bool // at least one explicit study marker seen
	answerIdx   int  // next unconsumed _apm_answers entry
}

func newMachine(hh *phh.HandHistory) (*machine, error) {
	playerCount := hh.PlayerCount()
	if playerCount == 0 {
		return nil, Validationf("the hand has no players")
	}

	custom, err := extractCustomFields(hh.Raw, playerCount)
	if err != nil {
		return nil, err
	}

	h := &Hand{
		Title:   title(hh.Variant, hh.BlindsOrStraddles, hh.Antes),
		Notes:   custom.notes,
		Source:  custom.source,
		Context: custom.context,
		Answers: custom.answers,
	}
	for seat := 0; seat < playerCount; seat++ {
		h.Players = append(h.Players, Player{
			Name:     hh.PlayerName(seat),
			IsDealer: seat == playerCount-1,
		})
	}

	return &machine{
		hand:      h,
		custom:    custom,
		holeCards: make([][]string, playerCount),
	}, nil
}

func (m *machine) dispatch(ev replay.Event) (bool, error) {
	switch m.state {
	case stateSetup:
		return m.handleSetup(ev)
	case stateEndSetup:
		return m.handleEndSetup(ev)
	case statePreflop:
		return m.handleBetting(ev, stateEndPreflop)
	case stateEndPreflop:
		return m.handleEndStreet(ev, "Flop", stateFlop)
	case stateFlop:
		return m.handleBetting(ev, stateEndFlop)
	case stateEndFlop:
		return m.handleEndStreet(ev, "Turn", stateTurn)
	case stateTurn:
		return m.handleBetting(ev, stateEndTurn)
	case stateEndTurn:
		return m.handleEndStreet(ev, "River", stateRiver)
	case stateRiver:
		return m.handleBetting(ev, stateFinalize)
	default:
		// Terminal: anything after the river betting is irrelevant.
		return true, nil
	}
}

// handleSetup counts hole-card deals; once every seat has cards the same
// event is re-dispatched to end the setup phase.
func (m *machine) handleSetup(ev replay.Event) (bool, error) {
	if ev.Op.Kind != replay.HoleDeal {
		return true, nil
	}
	m.holeCards[ev.Op.Seat] = ev.Op.Cards
	m.dealt++
	if m.dealt == len(m.hand.Players) {
		m.state = stateEndSetup
		return false, nil
	}
	return true, nil
}

// handleEndSetup resolves the hero and opens the Preflop street. The
// event's snapshot already includes posted blinds and antes, so its pot
// breakdown and stacks seed the street directly.
func (m *machine) handleEndSetup(ev replay.Event) (bool, error) {
	seat, err := resolveHero(m.holeCards, m.custom.hero, m.custom.heroSet)
	if err != nil {
		return false, err
	}
	m.heroSeat = seat
	m.hand.Players[seat].IsHero = true
	m.hand.HeroCards = m.holeCards[seat]

	// Seats 0 and 1 have posted the blinds, so preflop action starts two
	// seats past the small blind.
	m.pushStreet("Preflop", nil, ev.State, 2)
	m.state = statePreflop
	return true, nil
}

// handleBetting processes one betting round. A board deal means the
// round is over: the event is not consumed and moves the machine to the
// street's end state instead.
func (m *machine) handleBetting(ev replay.Event, endState state) (bool, error) {
	street := m.hand.Streets[len(m.hand.Streets)-1]

	var action Action
	switch ev.Op.Kind {
	case replay.BoardDeal:
		m.state = endState
		return false, nil
	case replay.CheckCall:
		if m.betOccurred {
			action = CallAction(ev.State.Stacks[ev.Op.Seat] == 0)
		} else {
			action = CheckAction()
		}
	case replay.BetRaise:
		if m.betOccurred {
			action = RaiseAction(ev.Op.To, ev.State.Stacks[ev.Op.Seat] == 0)
		} else {
			action = BetAction(ev.Op.To, ev.State.Stacks[ev.Op.Seat] == 0)
		}
		m.betOccurred = true
	case replay.Fold:
		action = FoldAction()
	default:
		return true, nil
	}

	row := street.Row(ev.Op.Seat)
	street.Actions[row] = append(street.Actions[row], action)
	column := len(street.Actions[row]) - 1

	m.deriveQuestion(street, ev, action, row, column)
	return true, nil
}

// deriveQuestion records a study spot for the action just appended: an
// explicit one when the commentary carries the marker, otherwise a
// default candidate for every hero action.
func (m *machine) deriveQuestion(street *Street, ev replay.Event, action Action, row, column int) {
	if answer, inline, ok := parseStudyMarker(ev.Op.Commentary); ok {
		if !inline {
			if supplied, found := m.nextAnswer(); found {
				answer = supplied
			} else {
				answer = action.String()
			}
		}
		street.Questions = append(street.Questions, Question{
			Question: QuestionText,
			Answer:   answer,
			Row:      row,
			Column:   column,
		})
		m.explicit = true
		return
	}
	if ev.Op.Seat == m.heroSeat {
		street.defaultQuestions = append(street.defaultQuestions, Question{
			Question: QuestionText,
			Answer:   action.String(),
			Row:      row,
			Column:   column,
		})
	}
}

// handleEndStreet opens the next street from a board-dealing event.
func (m *machine) handleEndStreet(ev replay.Event, name string, next state) (bool, error) {
	m.pushStreet(name, ev.Op.Cards, ev.State, 0)
	m.betOccurred = false
	m.state = next
	return true, nil
}

func (m *machine) pushStreet(name string, board []string, snap replay.Snapshot, firstPlayer int) {
	m.hand.Streets = append(m.hand.Streets, &Street{
		Name:               name,
		Board:              board,
		InitialPots:        append([]int(nil), snap.Pots...),
		InitialPlayers:     append([]bool(nil), snap.Active...),
		InitialStacks:      append([]int(nil), snap.Stacks...),
		FirstPlayerActions: firstPlayer,
		Actions:            make([][]Action, len(m.hand.Players)),
	})
}

// finalize runs the hand-level post-processing: promoting default
// questions when no explicit marker appeared, re-answering promoted
// questions from the supplied answer list, and checking the counts.
func (m *machine) finalize() error {
	if !m.explicit {
		for _, street := range m.hand.Streets {
			street.Questions = street.defaultQuestions
		}
		if len(m.hand.Answers) > 0 {
			idx := 0
			for _, street := range m.hand.Streets {
				for i := range street.Questions {
					if idx < len(m.hand.Answers) {
						street.Questions[i].Answer = m.hand.Answers[idx]
					}
					idx++
				}
			}
		}
	}
	for _, street := range m.hand.Streets {
		street.defaultQuestions = nil
	}

	if n := len(m.hand.Answers); n > 0 && n != m.hand.QuestionCount() {
		return Validationf("%s contains %d answers but %d questions are asked",
			keyAnswers, n, m.hand.QuestionCount())
	}

	return m.hand.Validate()
}

func (m *machine) nextAnswer() (string, bool) {
	if m.answerIdx >= len(m.hand.Answers) {
		return "", false
	}
	answer := m.hand.Answers[m.answerIdx]
	m.answerIdx++
	return answer, true
}

// parseStudyMarker recognizes "apm study" commentary, case-insensitive,
// optionally followed by ":" and an inline answer.
func parseStudyMarker(commentary string) (answer string, inline, ok bool) {
	trimmed := strings.TrimSpace(commentary)
	if len(trimmed) < len(studyMarker) {
		return "", false, false
	}
	if !strings.EqualFold(trimmed[:len(studyMarker)], studyMarker) {
		return "", false, false
	}
	rest := strings.TrimSpace(trimmed[len(studyMarker):])
	if rest == "" {
		return "", false, true
	}
	if !strings.HasPrefix(rest, ":") {
		return "", false, false
	}
	answer = strings.TrimSpace(rest[1:])
	return answer, answer != "", true
}
