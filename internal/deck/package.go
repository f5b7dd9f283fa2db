package deck

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/coder/quartz"
)

// Deck is a named collection of notes.
type Deck struct {
	ID    int64
	Name  string
	Notes []*Note
}

// Packager assembles decks and writes them out. The clock drives deck
// ID generation, so tests can pin it.
type Packager struct {
	clock quartz.Clock
}

// NewPackager creates a Packager. A nil clock means the real one.
func NewPackager(clock quartz.Clock) *Packager {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Packager{clock: clock}
}

// deck IDs live in [2^30, 2^31), like the import side expects.
func (p *Packager) deckID() int64 {
	const span = int64(1) << 30
	return span + p.clock.Now().UnixNano()%span
}

// NewDeck creates an empty deck with a clock-derived ID.
func (p *Packager) NewDeck(name string) *Deck {
	return &Deck{ID: p.deckID(), Name: name}
}

// Add appends a note to the deck.
func (d *Deck) Add(n *Note) {
	d.Notes = append(d.Notes, n)
}

// Write packages the deck as a zip: deck.tsv with one row per note and
// media.json mapping column indices to the media file names the notes
// reference.
func (p *Packager) Write(w io.Writer, d *Deck, media []string) error {
	zw := zip.NewWriter(w)

	tsv, err := zw.Create("deck.tsv")
	if err != nil {
		return fmt.Errorf("creating deck.tsv: %w", err)
	}
	for _, n := range d.Notes {
		cells := n.fields()
		for i, c := range cells {
			cells[i] = escapeCell(c)
		}
		if _, err := io.WriteString(tsv, strings.Join(cells, "\t")+"\n"); err != nil {
			return fmt.Errorf("writing deck.tsv: %w", err)
		}
	}

	manifest := make(map[string]string, len(media))
	for i, name := range media {
		manifest[strconv.Itoa(i)] = name
	}
	mw, err := zw.Create("media.json")
	if err != nil {
		return fmt.Errorf("creating media.json: %w", err)
	}
	enc := json.NewEncoder(mw)
	if err := enc.Encode(manifest); err != nil {
		return fmt.Errorf("writing media.json: %w", err)
	}

	return zw.Close()
}

// WriteFile packages the deck into a zip file at path.
func (p *Packager) WriteFile(path string, d *Deck, media []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := p.Write(f, d, media); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// escapeCell keeps the TSV one line per note. HTML content carries
// newlines, so they become <br> and literal tabs become spaces.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\t", " ")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", "<br>")
}
