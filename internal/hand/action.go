package hand

import "fmt"

// ActionKind tags the variant of a betting action.
type ActionKind int

const (
	ActionFold ActionKind = iota
	ActionCheck
	ActionCall
	ActionBet
	ActionRaise
)

// Action is a single betting action as it appears in a street's action
// table. It is a value type; equality is structural.
type Action struct {
	Kind   ActionKind
	Amount int // total street commitment for Bet/Raise, zero otherwise
	AllIn  bool
}

// FoldAction returns a fold.
func FoldAction() Action { return Action{Kind: ActionFold} }

// CheckAction returns a check.
func CheckAction() Action { return Action{Kind: ActionCheck} }

// CallAction returns a call, all-in when the call empties the stack.
func CallAction(allIn bool) Action { return Action{Kind: ActionCall, AllIn: allIn} }

// BetAction returns the street's opening wager.
func BetAction(amount int, allIn bool) Action {
	return Action{Kind: ActionBet, Amount: amount, AllIn: allIn}
}

// RaiseAction returns a raise to the given total.
func RaiseAction(amount int, allIn bool) Action {
	return Action{Kind: ActionRaise, Amount: amount, AllIn: allIn}
}

// String renders the canonical short form: F, X, C, "B 12", "R 40",
// with an "(AI)" suffix for all-in actions.
func (a Action) String() string {
	var s string
	switch a.Kind {
	case ActionFold:
		s = "F"
	case ActionCheck:
		s = "X"
	case ActionCall:
		s = "C"
	case ActionBet:
		s = fmt.Sprintf("B %d", a.Amount)
	case ActionRaise:
		s = fmt.Sprintf("R %d", a.Amount)
	default:
		s = "?"
	}
	if a.AllIn {
		s += " (AI)"
	}
	return s
}
