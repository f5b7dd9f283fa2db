// Package scenario parses declarative preflop-range scenario files: a
// YAML list of game/position/scenario entries whose ranges are written
// in the usual shorthand ("A2s+, KTs+, 22+").
package scenario

import (
	"sort"
	"strings"

	"github.com/pokerstudy/deckhand/internal/hand"
)

// ranks from strongest to weakest; grid rows and columns follow it.
const ranks = "AKQJT98765432"

func rankIndex(r byte) int {
	return strings.IndexByte(ranks, r)
}

// Range is a set of canonical two-card combos ("AA", "AKs", "T9o").
type Range struct {
	combos map[string]bool
}

// ParseRange expands a comma-separated range expression.
func ParseRange(expr string) (*Range, error) {
	r := &Range{combos: make(map[string]bool)}
	for _, part := range strings.Split(expr, ",") {
		token := strings.TrimSpace(part)
		if token == "" {
			continue
		}
		if err := r.addToken(token); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// addToken expands one range token into combos. Supported forms: "XX"
// for all hands, pairs ("22", "TT+", "66-", "TT-77"), and two-rank
// hands with an optional s/o suffix ("AKs", "QJ", "A2s+", "J8o-",
// "QT-Q7"). A trailing "+" walks the second rank up to just below the
// first; "-" walks it down to deuce.
func (r *Range) addToken(token string) error {
	upper := normalizeToken(token)
	if upper == "XX" {
		r.addAll()
		return nil
	}

	base := upper
	direction := byte(0)
	if strings.HasSuffix(base, "+") || strings.HasSuffix(base, "-") {
		direction = base[len(base)-1]
		base = base[:len(base)-1]
	}

	if lo, hi, ok := splitSpan(base); ok {
		if direction != 0 {
			return hand.Validationf("the range token '%s' mixes a span with +/-", token)
		}
		return r.addSpan(lo, hi, token)
	}

	first, second, suit, err := splitCombo(base, token)
	if err != nil {
		return err
	}

	switch direction {
	case 0:
		r.addCombo(first, second, suit)
	case '+':
		if first == second {
			for hi := rankIndex(first); hi >= 0; hi-- {
				r.addCombo(ranks[hi], ranks[hi], suit)
			}
		} else {
			for lo := rankIndex(second); lo > rankIndex(first); lo-- {
				r.addCombo(first, ranks[lo], suit)
			}
		}
	case '-':
		if first == second {
			for hi := rankIndex(first); hi < len(ranks); hi++ {
				r.addCombo(ranks[hi], ranks[hi], suit)
			}
		} else {
			for lo := rankIndex(second); lo < len(ranks); lo++ {
				r.addCombo(first, ranks[lo], suit)
			}
		}
	}
	return nil
}

// addSpan handles explicit spans such as "TT-77" and "QT-Q7".
func (r *Range) addSpan(lo, hi string, token string) error {
	firstA, secondA, suitA, err := splitCombo(lo, token)
	if err != nil {
		return err
	}
	firstB, secondB, suitB, err := splitCombo(hi, token)
	if err != nil {
		return err
	}
	if firstA == secondA && firstB == secondB {
		// Pair span such as "TT-77".
		from, to := rankIndex(firstA), rankIndex(firstB)
		if from > to {
			from, to = to, from
		}
		for i := from; i <= to; i++ {
			r.addCombo(ranks[i], ranks[i], 0)
		}
		return nil
	}
	if firstA != firstB || suitA != suitB {
		return hand.Validationf("the range span '%s' is not well-formed", token)
	}
	from, to := rankIndex(secondA), rankIndex(secondB)
	if from > to {
		from, to = to, from
	}
	for i := from; i <= to; i++ {
		r.addCombo(firstA, ranks[i], suitA)
	}
	return nil
}

// suit markers: 's' suited only, 'o' offsuit only, 0 both.
func splitCombo(base, token string) (first, second, suit byte, err error) {
	suit = 0
	if len(base) == 3 {
		switch base[2] {
		case 'S':
			suit = 's'
		case 'O':
			suit = 'o'
		default:
			return 0, 0, 0, hand.Validationf("the range token '%s' is not recognized", token)
		}
		base = base[:2]
	}
	if len(base) != 2 || rankIndex(base[0]) < 0 || rankIndex(base[1]) < 0 {
		return 0, 0, 0, hand.Validationf("the range token '%s' is not recognized", token)
	}
	first, second = base[0], base[1]
	if rankIndex(first) > rankIndex(second) {
		first, second = second, first
	}
	if first == second && suit != 0 {
		return 0, 0, 0, hand.Validationf("the pair '%s' cannot be suited or offsuit", token)
	}
	return first, second, suit, nil
}

func (r *Range) addCombo(first, second, suit byte) {
	if first == second {
		r.combos[string([]byte{first, second})] = true
		return
	}
	if suit == 0 || suit == 's' {
		r.combos[string([]byte{first, second, 's'})] = true
	}
	if suit == 0 || suit == 'o' {
		r.combos[string([]byte{first, second, 'o'})] = true
	}
}

func (r *Range) addAll() {
	for i := 0; i < len(ranks); i++ {
		for j := i; j < len(ranks); j++ {
			if i == j {
				r.addCombo(ranks[i], ranks[j], 0)
			} else {
				r.addCombo(ranks[i], ranks[j], 's')
				r.addCombo(ranks[i], ranks[j], 'o')
			}
		}
	}
}

// Contains reports whether the canonical combo is in the range.
func (r *Range) Contains(combo string) bool {
	return r.combos[combo]
}

// Len returns the number of combos in the range.
func (r *Range) Len() int {
	return len(r.combos)
}

// Hands returns the combos sorted strongest-first.
func (r *Range) Hands() []string {
	out := make([]string, 0, len(r.combos))
	for c := range r.combos {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if ai, bi := rankIndex(a[0]), rankIndex(b[0]); ai != bi {
			return ai < bi
		}
		if ai, bi := rankIndex(a[1]), rankIndex(b[1]); ai != bi {
			return ai < bi
		}
		return a < b
	})
	return out
}

// subtract removes every combo of other from r.
func (r *Range) subtract(other *Range) {
	for c := range other.combos {
		delete(r.combos, c)
	}
}

// splitSpan recognizes "TT-77" and "QT-Q7" style tokens.
func splitSpan(base string) (lo, hi string, ok bool) {
	i := strings.IndexByte(base, '-')
	if i <= 0 || i == len(base)-1 {
		return "", "", false
	}
	return base[:i], base[i+1:], true
}

func normalizeToken(token string) string {
	up := strings.ToUpper(strings.TrimSpace(token))
	// Suit markers stay lowercase in canonical combos but the grammar
	// is case-insensitive, so work on the uppercase form throughout.
	return up
}

// allCombos returns the full 169-combo range.
func allCombos() *Range {
	r := &Range{combos: make(map[string]bool)}
	r.addAll()
	return r
}
