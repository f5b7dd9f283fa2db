package hand

import "github.com/pokerstudy/deckhand/internal/phh"

// resolveHero determines which seat the study questions are framed for.
// With an explicit override that seat's cards must be fully known.
// Without one, exactly one seat with fully known hole cards must exist.
func resolveHero(holeCards [][]string, override int, overrideSet bool) (int, error) {
	if overrideSet {
		seat := override - 1
		if seat < 0 || seat >= len(holeCards) || !phh.KnownCards(holeCards[seat]) {
			return 0, Validationf("the hole cards of the hero must be known")
		}
		return seat, nil
	}

	candidate := -1
	for seat, cards := range holeCards {
		if !phh.KnownCards(cards) {
			continue
		}
		if candidate >= 0 {
			return 0, Validationf("unclear who the hero is; set %s", keyHero)
		}
		candidate = seat
	}
	if candidate < 0 {
		return 0, Validationf("the hole cards of the hero must be known")
	}
	return candidate, nil
}
