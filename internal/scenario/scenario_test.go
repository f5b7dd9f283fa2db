package scenario_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerstudy/deckhand/internal/hand"
	"github.com/pokerstudy/deckhand/internal/scenario"
)

func TestParseRangeTokens(t *testing.T) {
	tests := []struct {
		expr string
		want []string
	}{
		{"AA", []string{"AA"}},
		{"TT+", []string{"AA", "KK", "QQ", "JJ", "TT"}},
		{"66-", []string{"66", "55", "44", "33", "22"}},
		{"TT-77", []string{"TT", "99", "88", "77"}},
		{"AKs", []string{"AKs"}},
		{"KQo", []string{"KQo"}},
		{"QJ", []string{"QJs", "QJo"}},
		{"QT-Q7", []string{"QTs", "QTo", "Q9s", "Q9o", "Q8s", "Q8o", "Q7s", "Q7o"}},
	}
	for _, tt := range tests {
		r, err := scenario.ParseRange(tt.expr)
		require.NoError(t, err, tt.expr)
		assert.ElementsMatch(t, tt.want, r.Hands(), tt.expr)
	}
}

func TestParseRangePlusWalksTheKicker(t *testing.T) {
	r, err := scenario.ParseRange("A2s+")
	require.NoError(t, err)
	assert.Equal(t, 12, r.Len())
	assert.True(t, r.Contains("A2s"))
	assert.True(t, r.Contains("ATs"))
	assert.True(t, r.Contains("AKs"))
	assert.False(t, r.Contains("A2o"))

	r, err = scenario.ParseRange("J8o-")
	require.NoError(t, err)
	assert.True(t, r.Contains("J8o"))
	assert.True(t, r.Contains("J2o"))
	assert.False(t, r.Contains("J9o"))
}

func TestParseRangeUnion(t *testing.T) {
	r, err := scenario.ParseRange("A2s+, KTs+, QJs, ATo+, KQo, 77+")
	require.NoError(t, err)
	// 12 + 3 + 1 + 4 + 1 + 8
	assert.Equal(t, 29, r.Len())
}

func TestParseRangeEverything(t *testing.T) {
	r, err := scenario.ParseRange("XX")
	require.NoError(t, err)
	assert.Equal(t, 169, r.Len())
}

func TestParseRangeIsCaseInsensitive(t *testing.T) {
	a, err := scenario.ParseRange("a2S+, kqO, tt+")
	require.NoError(t, err)
	b, err := scenario.ParseRange("A2s+, KQo, TT+")
	require.NoError(t, err)
	assert.ElementsMatch(t, b.Hands(), a.Hands())
}

func TestParseRangeRejectsJunk(t *testing.T) {
	for _, expr := range []string{"A2x", "hello", "1T+", "AAs", "QT-J7"} {
		_, err := scenario.ParseRange(expr)
		require.Error(t, err, expr)
		assert.True(t, hand.IsValidation(err), expr)
	}
}

const sampleScenarios = `
- game: "Cash 100BB 6P"
  position: "LJ"
  scenario: "Opening"
  ranges:
    Raise: "A2s+, K5s+, Q9s+, JTs, T9s, ATo+, KJo+, QJo+, 77+"
  source: pokertrainer.se
`

func TestParseScenarioFile(t *testing.T) {
	scenarios, err := scenario.Parse([]byte(sampleScenarios))
	require.NoError(t, err)
	require.Len(t, scenarios, 1)

	s := scenarios[0]
	assert.Equal(t, "Cash 100BB 6P", s.Game)
	assert.Equal(t, "LJ", s.Position)
	assert.Equal(t, "Opening", s.Name)
	assert.Equal(t, "pokertrainer.se", s.Source)
	require.Contains(t, s.Ranges, "Raise")
	require.Contains(t, s.Ranges, "Fold")
	// Fold is everything the raise range does not claim.
	assert.Equal(t, 169, s.Ranges["Raise"].Len()+s.Ranges["Fold"].Len())
}

func TestParseScenarioDefaultEntry(t *testing.T) {
	input := `
- DEFAULT: true
  game: "Cash 100BB 6P"
  source: "https://example.com/"

- position: "HJ"
  scenario: "Opening"
  ranges:
    Raise: "22+"

- game: "Tournament"
  position: "CO"
  scenario: "Opening"
  ranges:
    Raise: "55+"
`
	scenarios, err := scenario.Parse([]byte(input))
	require.NoError(t, err)
	require.Len(t, scenarios, 2)
	assert.Equal(t, "Cash 100BB 6P", scenarios[0].Game)
	assert.Equal(t, "https://example.com/", scenarios[0].Source)
	// Explicit values beat the defaults.
	assert.Equal(t, "Tournament", scenarios[1].Game)
}

func TestParseScenarioRejectsTwoDefaults(t *testing.T) {
	input := `
- DEFAULT: true
  game: "A"
- DEFAULT: true
  game: "B"
`
	_, err := scenario.Parse([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "only be one DEFAULT")
}

func TestParseScenarioRejectsOverlap(t *testing.T) {
	input := `
- game: "Cash"
  position: "BTN"
  scenario: "Opening"
  ranges:
    Raise: "TT+"
    Call: "QQ"
`
	_, err := scenario.Parse([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "overlaps")
	assert.Contains(t, err.Error(), "'Cash / Opening / BTN'")
}

func TestParseScenarioRejectsMissingFields(t *testing.T) {
	_, err := scenario.Parse([]byte(`
- game: "Cash"
  ranges:
    Raise: "22+"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "game, position and scenario")

	_, err = scenario.Parse([]byte(`not a list`))
	require.Error(t, err)
	assert.True(t, hand.IsValidation(err))
}

func TestParseScenarioExplicitFoldIsExtended(t *testing.T) {
	input := `
- game: "Cash"
  position: "SB"
  scenario: "Opening"
  ranges:
    Raise: "22+"
    Fold: "72o"
`
	scenarios, err := scenario.Parse([]byte(input))
	require.NoError(t, err)
	fold := scenarios[0].Ranges["Fold"]
	assert.True(t, fold.Contains("72o"))
	assert.Equal(t, 169-13, fold.Len())
}

func TestParseScenarioRangeColors(t *testing.T) {
	input := `
- game: "Cash"
  position: "BB"
  scenario: "Facing a raise"
  ranges:
    Raise: "QQ+"
    Call: "22+, A2s+"
  range_colors:
    Raise: "#A7FF12"
    Call:
      - lightblue
      - darkblue
`
	scenarios, err := scenario.Parse([]byte(input))
	require.NoError(t, err)
	s := scenarios[0]
	assert.Equal(t, [2]string{"#A7FF12", "#A7FF12"}, s.Colors["Raise"])
	assert.Equal(t, [2]string{"lightblue", "darkblue"}, s.Colors["Call"])
}

func TestParseScenarioColorWithoutRange(t *testing.T) {
	input := `
- game: "Cash"
  position: "BB"
  scenario: "Opening"
  ranges:
    Raise: "QQ+"
  range_colors:
    Call: "blue"
`
	_, err := scenario.Parse([]byte(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no range is defined for that action")
}

func TestGrid(t *testing.T) {
	input := `
- game: "Cash"
  position: "BTN"
  scenario: "Opening"
  ranges:
    Raise: "TT+, AKs"
`
	scenarios, err := scenario.Parse([]byte(input))
	require.NoError(t, err)
	grid := scenarios[0].Grid()

	assert.Equal(t, "Raise", grid[0][0]) // AA
	assert.Equal(t, "Raise", grid[4][4]) // TT
	assert.Equal(t, "Fold", grid[5][5])  // 99
	assert.Equal(t, "Raise", grid[0][1]) // AKs
	assert.Equal(t, "Fold", grid[1][0])  // AKo
}

func TestComboAt(t *testing.T) {
	assert.Equal(t, "AA", scenario.ComboAt(0, 0))
	assert.Equal(t, "AKs", scenario.ComboAt(0, 1))
	assert.Equal(t, "AKo", scenario.ComboAt(1, 0))
	assert.Equal(t, "22", scenario.ComboAt(12, 12))
	assert.Equal(t, "A2o", scenario.ComboAt(12, 0))
}
