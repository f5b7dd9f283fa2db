package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pokerstudy/deckhand/internal/hand"
)

// PreviewStyles contains styling for the terminal preview.
type PreviewStyles struct {
	Title    lipgloss.Style
	Street   lipgloss.Style
	Hero     lipgloss.Style
	Pot      lipgloss.Style
	Question lipgloss.Style
	Muted    lipgloss.Style
}

// NewPreviewStyles creates the default preview styles.
func NewPreviewStyles() *PreviewStyles {
	return &PreviewStyles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Street: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Hero: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Pot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		Question: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")).
			Bold(true),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// Preview renders a whole hand for the terminal, including every action
// and every question with its answer. It is a review aid, not a card:
// nothing is hidden.
func Preview(h *hand.Hand) string {
	styles := NewPreviewStyles()
	var b strings.Builder

	b.WriteString(styles.Title.Render(h.Title))
	b.WriteString("\n")
	if h.Context != "" {
		b.WriteString(styles.Muted.Render(h.Context))
		b.WriteString("\n")
	}
	hero, ok := h.Hero()
	if ok {
		fmt.Fprintf(&b, "%s %s\n",
			styles.Hero.Render("Hero: "+hero.Name),
			strings.Join(h.HeroCards, " "))
	}

	for _, street := range h.Streets {
		b.WriteString("\n")
		header := street.Name
		if len(street.Board) > 0 {
			header += "  " + strings.Join(street.Board, " ")
		}
		b.WriteString(styles.Street.Render(header))
		b.WriteString("  ")
		b.WriteString(styles.Pot.Render("pot " + formatPots(street.InitialPots)))
		b.WriteString("\n")

		for row := range street.Actions {
			seat := street.Seat(row)
			player := h.Players[seat]
			name := player.Name
			if player.IsDealer {
				name += " (D)"
			}
			if player.IsHero {
				name = styles.Hero.Render(name)
			}
			if !street.InitialPlayers[seat] {
				name = styles.Muted.Render(name)
			}
			cells := make([]string, len(street.Actions[row]))
			for i, a := range street.Actions[row] {
				cells[i] = a.String()
			}
			fmt.Fprintf(&b, "  %s [%s]  %s\n", name,
				FormatAmount(street.InitialStacks[seat]), strings.Join(cells, ", "))
		}

		for _, q := range street.Questions {
			fmt.Fprintf(&b, "  %s %s\n",
				styles.Question.Render(q.Question),
				styles.Muted.Render("→ "+q.Answer))
		}
	}
	return b.String()
}
