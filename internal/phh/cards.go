package phh

import "strings"

var rankMap = map[string]string{
	"a":  "A",
	"k":  "K",
	"q":  "Q",
	"j":  "J",
	"10": "T",
	"t":  "T",
	"9":  "9",
	"8":  "8",
	"7":  "7",
	"6":  "6",
	"5":  "5",
	"4":  "4",
	"3":  "3",
	"2":  "2",
}

// UnknownCard is the placeholder for a hole card that was never revealed.
const UnknownCard = "??"

// NormalizeCard converts loose notation (e.g. 10h) to PHH notation (Th).
func NormalizeCard(card string) string {
	card = strings.TrimSpace(card)
	if card == "" {
		return ""
	}
	lowered := strings.ToLower(card)
	if lowered == "??" {
		return UnknownCard
	}
	if len(lowered) < 2 {
		return strings.ToUpper(lowered)
	}

	suit := lowered[len(lowered)-1:]
	rankPart := lowered[:len(lowered)-1]
	rank, ok := rankMap[rankPart]
	if !ok {
		rank = strings.ToUpper(rankPart[:1])
	}

	return rank + suit
}

// SplitRun splits a card run like "AhTs8h" or "????" into individual
// two-character cards.
func SplitRun(run string) []string {
	run = strings.TrimSpace(run)
	if run == "" {
		return nil
	}
	cards := make([]string, 0, len(run)/2)
	for i := 0; i < len(run); i += 2 {
		end := i + 2
		if end > len(run) {
			end = len(run)
		}
		cards = append(cards, NormalizeCard(run[i:end]))
	}
	return cards
}

// KnownCards reports whether every card in the slice is fully revealed.
// An empty slice is not considered known.
func KnownCards(cards []string) bool {
	if len(cards) == 0 {
		return false
	}
	for _, c := range cards {
		if c == UnknownCard || c == "" {
			return false
		}
	}
	return true
}
