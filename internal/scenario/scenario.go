package scenario

import (
	"regexp"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/pokerstudy/deckhand/internal/hand"
)

// FoldAction is the implicit catch-all range name.
const FoldAction = "Fold"

// PreflopScenario is one study spot: a game, a position, a situation,
// and the ranges to memorize for it. Combos not covered by any range
// belong to the synthesized Fold range.
type PreflopScenario struct {
	Game     string
	Position string
	Name     string
	Ranges   map[string]*Range
	Colors   map[string][2]string
	Notes    string
	Source   string
}

type rawScenario struct {
	Default  bool              `yaml:"DEFAULT"`
	Game     string            `yaml:"game"`
	Position string            `yaml:"position"`
	Scenario string            `yaml:"scenario"`
	Ranges   map[string]string `yaml:"ranges"`
	Colors   map[string]any    `yaml:"range_colors"`
	Notes    string            `yaml:"notes"`
	Source   string            `yaml:"source"`
}

var colorPattern = regexp.MustCompile(`(^#[0-9A-Fa-f]{6}$)|(^[a-zA-Z]+$)`)

// Parse reads a scenario file. At most one entry may carry
// "DEFAULT: true"; its fields fill in whatever the other entries omit.
func Parse(data []byte) ([]*PreflopScenario, error) {
	var raw []rawScenario
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, hand.Validationf("error validating the scenarios file: %v", err)
	}

	var defaults *rawScenario
	entries := make([]rawScenario, 0, len(raw))
	for _, r := range raw {
		if r.Default {
			if defaults != nil {
				return nil, hand.Validationf("there can only be one DEFAULT scenario")
			}
			d := r
			defaults = &d
			continue
		}
		entries = append(entries, r)
	}

	out := make([]*PreflopScenario, 0, len(entries))
	for _, r := range entries {
		if defaults != nil {
			r.merge(defaults)
		}
		s, err := convert(r)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *rawScenario) merge(d *rawScenario) {
	if r.Game == "" {
		r.Game = d.Game
	}
	if r.Position == "" {
		r.Position = d.Position
	}
	if r.Scenario == "" {
		r.Scenario = d.Scenario
	}
	if r.Ranges == nil {
		r.Ranges = d.Ranges
	}
	if r.Colors == nil {
		r.Colors = d.Colors
	}
	if r.Notes == "" {
		r.Notes = d.Notes
	}
	if r.Source == "" {
		r.Source = d.Source
	}
}

func convert(r rawScenario) (*PreflopScenario, error) {
	if r.Game == "" || r.Position == "" || r.Scenario == "" {
		return nil, hand.Validationf(
			"every scenario needs game, position and scenario set")
	}
	if len(r.Ranges) == 0 {
		return nil, hand.Validationf(
			"the scenario '%s / %s / %s' has no ranges",
			r.Game, r.Scenario, r.Position)
	}

	s := &PreflopScenario{
		Game:     r.Game,
		Position: r.Position,
		Name:     r.Scenario,
		Ranges:   make(map[string]*Range, len(r.Ranges)+1),
		Notes:    r.Notes,
		Source:   r.Source,
	}
	for action, expr := range r.Ranges {
		if expr == "" {
			return nil, hand.Validationf("range can't be empty or null")
		}
		rng, err := ParseRange(expr)
		if err != nil {
			return nil, err
		}
		s.Ranges[action] = rng
	}
	if err := s.checkOverlaps(); err != nil {
		return nil, err
	}
	s.completeFold()

	colors, err := convertColors(r.Colors, s.Ranges)
	if err != nil {
		return nil, err
	}
	s.Colors = colors
	return s, nil
}

// checkOverlaps rejects scenarios where a combo lands in two ranges.
func (s *PreflopScenario) checkOverlaps() error {
	for _, a := range s.actionNames() {
		for _, b := range s.actionNames() {
			if a >= b {
				continue
			}
			for combo := range s.Ranges[a].combos {
				if s.Ranges[b].Contains(combo) {
					return hand.Validationf(
						"range for action '%s' overlaps with range for action '%s' in scenario '%s / %s / %s'",
						a, b, s.Game, s.Name, s.Position)
				}
			}
		}
	}
	return nil
}

// completeFold assigns every unclaimed combo to the Fold range. An
// explicitly specified Fold range is extended, not replaced.
func (s *PreflopScenario) completeFold() {
	rest := allCombos()
	for _, r := range s.Ranges {
		rest.subtract(r)
	}
	if rest.Len() == 0 {
		return
	}
	if existing, ok := s.Ranges[FoldAction]; ok {
		for c := range rest.combos {
			existing.combos[c] = true
		}
		return
	}
	s.Ranges[FoldAction] = rest
}

func convertColors(raw map[string]any, ranges map[string]*Range) (map[string][2]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	out := make(map[string][2]string, len(raw))
	for action, v := range raw {
		if _, ok := ranges[action]; !ok {
			return nil, hand.Validationf(
				"range color defined for action '%s', but no range is defined for that action", action)
		}
		switch c := v.(type) {
		case string:
			if !colorPattern.MatchString(c) {
				return nil, hand.Validationf("'%s' is an invalid color", c)
			}
			out[action] = [2]string{c, c}
		case []any:
			if len(c) != 2 {
				return nil, hand.Validationf(
					"range color for action '%s' must be one color or a light/dark pair", action)
			}
			var pair [2]string
			for i, e := range c {
				str, ok := e.(string)
				if !ok || !colorPattern.MatchString(str) {
					return nil, hand.Validationf("'%v' is an invalid color", e)
				}
				pair[i] = str
			}
			out[action] = pair
		default:
			return nil, hand.Validationf(
				"range color for action '%s' must be one color or a light/dark pair", action)
		}
	}
	return out, nil
}

// Actions returns the range names in presentation order: sorted, with
// Fold always last.
func (s *PreflopScenario) Actions() []string {
	return s.actionNames()
}

// actionNames returns the range names sorted, with Fold always last.
func (s *PreflopScenario) actionNames() []string {
	names := make([]string, 0, len(s.Ranges))
	for name := range s.Ranges {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if names[i] == FoldAction {
			return false
		}
		if names[j] == FoldAction {
			return true
		}
		return names[i] < names[j]
	})
	return names
}
