// Package deck turns parsed hands and preflop scenarios into notes and
// packages them for import into a spaced-repetition app.
package deck

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"github.com/pokerstudy/deckhand/internal/hand"
	"github.com/pokerstudy/deckhand/internal/render"
	"github.com/pokerstudy/deckhand/internal/scenario"
)

// MaxQuestions is the number of question/answer slots on a hand note.
// Hands with more study spots must be split by the user.
const MaxQuestions = 20

// QA is one question/answer pair on a note.
type QA struct {
	Question string
	Answer   string
}

// Note is one flashcard-to-be. QAs is always padded to MaxQuestions so
// every note has the same shape; Dedupe identifies the content so
// re-imports do not create duplicates.
type Note struct {
	Dedupe    string
	Title     string
	Context   string
	HeroCards string
	HeroName  string
	QAs       []QA
	Notes     string
	Source    string
	Tags      []string
}

// NoteFromHand renders every question of the hand and returns the note
// plus the media file names the note's HTML refers to.
func NoteFromHand(h *hand.Hand, tags []string) (*Note, []string, error) {
	if err := h.Validate(); err != nil {
		return nil, nil, err
	}

	media := make(map[string]bool)
	for _, c := range h.HeroCards {
		media[render.CardImage(c)] = true
	}

	var heroCards strings.Builder
	for _, c := range h.HeroCards {
		fmt.Fprintf(&heroCards, "<img src=%q alt=%q title=%q>\n",
			render.CardImage(c), c, c)
	}

	var qas []QA
	for i, street := range h.Streets {
		for _, c := range street.Board {
			media[render.CardImage(c)] = true
		}
		for j := range street.Questions {
			question, err := render.Question(h, i, j)
			if err != nil {
				return nil, nil, err
			}
			answer, err := render.Answer(h, i, j)
			if err != nil {
				return nil, nil, err
			}
			qas = append(qas, QA{Question: question, Answer: answer})
		}
	}
	if len(qas) > MaxQuestions {
		return nil, nil, hand.Validationf(
			"this hand has too many study spots (%d); you must split it into multiple hands",
			len(qas))
	}

	hasher := sha256.New()
	for _, qa := range qas {
		hasher.Write([]byte(qa.Question))
		hasher.Write([]byte(qa.Answer))
	}
	for len(qas) < MaxQuestions {
		qas = append(qas, QA{})
	}

	hero, _ := h.Hero()
	note := &Note{
		Dedupe:    hex.EncodeToString(hasher.Sum(nil)),
		Title:     h.Title,
		Context:   h.Context,
		HeroCards: heroCards.String(),
		HeroName:  hero.Name,
		QAs:       qas,
		Notes:     h.Notes,
		Source:    h.Source,
		Tags:      tags,
	}
	return note, sortedKeys(media), nil
}

// NoteFromScenario builds a note quizzing the whole scenario: the
// question names the spot, the answer lists each range.
func NoteFromScenario(s *scenario.PreflopScenario, tags []string) *Note {
	title := fmt.Sprintf("%s / %s / %s", s.Game, s.Name, s.Position)

	var question strings.Builder
	question.WriteString("<div class=\"scenario\">\n")
	fmt.Fprintf(&question, "<b>Game:</b> %s<br>\n", s.Game)
	fmt.Fprintf(&question, "<b>Scenario:</b> %s<br>\n", s.Name)
	fmt.Fprintf(&question, "<b>Position:</b> %s<br>\n", s.Position)
	question.WriteString("</div>\n")

	var answer strings.Builder
	for _, action := range s.Actions() {
		fmt.Fprintf(&answer, "<b>%s:</b> %s<br>\n",
			action, strings.Join(s.Ranges[action].Hands(), ", "))
	}

	qas := []QA{{Question: question.String(), Answer: answer.String()}}

	hasher := sha256.New()
	hasher.Write([]byte(qas[0].Question))
	hasher.Write([]byte(qas[0].Answer))
	for len(qas) < MaxQuestions {
		qas = append(qas, QA{})
	}

	return &Note{
		Dedupe: hex.EncodeToString(hasher.Sum(nil)),
		Title:  title,
		QAs:    qas,
		Notes:  s.Notes,
		Source: s.Source,
		Tags:   tags,
	}
}

// fields returns the note's columns in their fixed order.
func (n *Note) fields() []string {
	out := make([]string, 0, 7+2*MaxQuestions+1)
	out = append(out, n.Dedupe, n.Title, n.Context, n.HeroCards, n.HeroName)
	for _, qa := range n.QAs {
		out = append(out, qa.Question, qa.Answer)
	}
	out = append(out, n.Notes, n.Source, strings.Join(n.Tags, " "))
	return out
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
