// Package render produces the presentation of a parsed hand: the HTML
// question side of a flashcard, truncated exactly at the study spot so
// nothing after it leaks, and a styled terminal preview.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pokerstudy/deckhand/internal/hand"
)

// CardImagePrefix is the naming scheme of the bundled card images.
const CardImagePrefix = "apm-card-small-"

// CardImage returns the media file name for a card.
func CardImage(card string) string {
	return CardImagePrefix + card + ".png"
}

// Question renders the HTML for the question identified by street and
// question index. Earlier streets appear in full; the target street's
// action table stops at the question's cell, which is shown as "?".
func Question(h *hand.Hand, streetIdx, questionIdx int) (string, error) {
	if err := validateTarget(h, streetIdx, questionIdx); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("<div class=\"hand-history\">\n")
	fmt.Fprintf(&b, "<h1>%s</h1>\n", h.Title)
	if h.Context != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", h.Context)
	}
	b.WriteString("<div class=\"pocket-cards\">\n")
	for _, c := range h.HeroCards {
		writeCardImage(&b, c)
	}
	b.WriteString("</div>\n")
	hero, _ := h.Hero()
	fmt.Fprintf(&b, "<p><strong>Hero:</strong> %s</p>\n", hero.Name)

	question := h.Streets[streetIdx].Questions[questionIdx]
	for i, street := range h.Streets {
		if i > streetIdx {
			break
		}
		writeStreet(&b, h, street, i == streetIdx, question)
	}

	fmt.Fprintf(&b, "<p>\n<strong>%s</strong>\n</p>\n", question.Question)
	b.WriteString("</div>\n")
	return b.String(), nil
}

// Answer returns the answer text of the identified question, after the
// same validation as Question.
func Answer(h *hand.Hand, streetIdx, questionIdx int) (string, error) {
	if err := validateTarget(h, streetIdx, questionIdx); err != nil {
		return "", err
	}
	return h.Streets[streetIdx].Questions[questionIdx].Answer, nil
}

func validateTarget(h *hand.Hand, streetIdx, questionIdx int) error {
	if err := h.Validate(); err != nil {
		return err
	}
	if streetIdx < 0 || streetIdx >= len(h.Streets) {
		return hand.Validationf("there is no street with index %d", streetIdx)
	}
	street := h.Streets[streetIdx]
	if questionIdx < 0 || questionIdx >= len(street.Questions) {
		return hand.Validationf("there is no question with index %d in street %s",
			questionIdx, street.Name)
	}
	return nil
}

func writeStreet(b *strings.Builder, h *hand.Hand, street *hand.Street, isTarget bool, question hand.Question) {
	maxActions := question.Column + 1
	if !isTarget {
		maxActions = 0
		for _, row := range street.Actions {
			if len(row) > maxActions {
				maxActions = len(row)
			}
		}
	}

	fmt.Fprintf(b, "<h2>%s</h2>\n", street.Name)
	fmt.Fprintf(b, "<p>Pot: %s</p>\n", formatPots(street.InitialPots))
	if len(street.Board) > 0 {
		b.WriteString("<div class=\"board\">\n")
		for _, c := range street.Board {
			writeCardImage(b, c)
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("<table class=\"player-actions\">\n")
	b.WriteString("<thead>\n<tr>\n<th>Player</th>\n<th>Stack</th>\n")
	fmt.Fprintf(b, "<th colspan=\"%d\">Actions</th>\n</tr></thead>\n<tbody>\n", maxActions)

	for i := range street.Actions {
		playerIdx := street.Seat(i)
		player := h.Players[playerIdx]

		var classes []string
		if player.IsHero {
			classes = append(classes, "hero")
		}
		if !street.InitialPlayers[playerIdx] {
			classes = append(classes, "not-playing")
		}
		if len(classes) > 0 {
			fmt.Fprintf(b, "<tr class=\"%s\">\n", strings.Join(classes, ", "))
		} else {
			b.WriteString("<tr>\n")
		}
		fmt.Fprintf(b, "<td>%s", player.Name)
		if player.IsDealer {
			b.WriteString(" <span class=\"dealerbtn\">D</span>")
		}
		b.WriteString("</td>\n")
		fmt.Fprintf(b, "<td>%s</td>\n", FormatAmount(street.InitialStacks[playerIdx]))

		for j := 0; j < maxActions; j++ {
			var cell string
			if isTarget {
				// Nothing past the question's column: no hints about
				// how many more actions are to come.
				if j > question.Column {
					break
				}
				switch {
				case question.Row == i && question.Column == j:
					cell = "?"
				case j < len(street.Actions[i]) && (j < question.Column || i < question.Row):
					cell = street.Actions[i][j].String()
				}
			} else if j < len(street.Actions[i]) {
				cell = street.Actions[i][j].String()
			}
			fmt.Fprintf(b, "<td>%s</td>", cell)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
}

func writeCardImage(b *strings.Builder, card string) {
	fmt.Fprintf(b, "<img src=\"%s\" alt=\"%s\" title=\"%s\">\n", CardImage(card), card, card)
}

func formatPots(pots []int) string {
	if len(pots) == 1 {
		return FormatAmount(pots[0])
	}
	parts := make([]string, len(pots))
	for i, p := range pots {
		parts[i] = FormatAmount(p)
	}
	return "[ " + strings.Join(parts, " | ") + " ]"
}

// FormatAmount renders a chip count with thousands separators.
func FormatAmount(n int) string {
	s := strconv.Itoa(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
