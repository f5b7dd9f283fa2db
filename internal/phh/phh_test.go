package phh_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pokerstudy/deckhand/internal/phh"
)

const basicHand = `variant = "NT"
antes = [0, 0, 0]
blinds_or_straddles = [2, 4, 0]
min_bet = 2
starting_stacks = [110, 420, 450]
actions = [
  "d dh p1 ????",
  "d dh p2 Th8c",
  "d dh p3 ????",
]
_apm_hero = 2
`

func TestDecodeBasic(t *testing.T) {
	hand, err := phh.Decode(basicHand)
	require.NoError(t, err)

	assert.Equal(t, "NT", hand.Variant)
	assert.Equal(t, []int{2, 4, 0}, hand.BlindsOrStraddles)
	assert.Equal(t, []int{110, 420, 450}, hand.StartingStacks)
	assert.Len(t, hand.Actions, 3)
	assert.Equal(t, 3, hand.PlayerCount())
	assert.Equal(t, "p2", hand.PlayerName(1))

	// Tool metadata survives with its dynamic type.
	assert.Equal(t, int64(2), hand.Raw["_apm_hero"])
}

func TestDecodeEmpty(t *testing.T) {
	_, err := phh.Decode("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid PHH (empty)")
}

func TestDecodeMalformed(t *testing.T) {
	content := "variant = \"NT\"\nantes = [0, 0, 0\n"
	_, err := phh.Decode(content)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Error parsing PHH with content:")
}

func TestDecodeMalformedLongContentTruncated(t *testing.T) {
	content := "variant = \"NT\"\n# " + strings.Repeat("x", 200) + "\nantes = [0, 0, 0\n"
	_, err := phh.Decode(content)
	require.Error(t, err)
	assert.Contains(t, err.Error(), content[:100]+"\n...")
	assert.NotContains(t, err.Error(), content[:120])
}

func TestDecodeUnsupportedVariant(t *testing.T) {
	content := strings.Replace(basicHand, `"NT"`, `"PO"`, 1)
	_, err := phh.Decode(content)
	require.Error(t, err)
	assert.Equal(t, "the variant 'PO' is not supported", err.Error())
}

func TestNormalizeCard(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10h", "Th"},
		{"10H", "Th"},
		{"ah", "Ah"},
		{"As", "As"},
		{"??", "??"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, phh.NormalizeCard(tt.in), "in=%q", tt.in)
	}
}

func TestSplitRun(t *testing.T) {
	assert.Equal(t, []string{"Ah", "Ts", "8h"}, phh.SplitRun("AhTs8h"))
	assert.Equal(t, []string{"4s"}, phh.SplitRun("4s"))
	assert.Equal(t, []string{"??", "??"}, phh.SplitRun("????"))
	assert.Nil(t, phh.SplitRun(""))
}

func TestKnownCards(t *testing.T) {
	assert.True(t, phh.KnownCards([]string{"Th", "8c"}))
	assert.False(t, phh.KnownCards([]string{"??", "??"}))
	assert.False(t, phh.KnownCards([]string{"Th", "??"}))
	assert.False(t, phh.KnownCards(nil))
}

func TestEncodeRoundTrip(t *testing.T) {
	hand := &phh.HandHistory{
		Variant:           "NT",
		Antes:             []int{0, 0, 0},
		BlindsOrStraddles: []int{1, 2, 0},
		MinBet:            2,
		StartingStacks:    []int{200, 200, 200},
		Actions: []string{
			"d dh p1 AhKh",
			"d dh p2 7c2d",
			"d dh p3 QsJs",
			"p1 cbr 6",
			"p2 f",
			"p3 cc",
		},
		Players: []string{"alice", "bob", "charlie"},
	}

	var buf bytes.Buffer
	require.NoError(t, phh.Encode(&buf, hand))

	decoded, err := phh.Decode(buf.String())
	require.NoError(t, err)
	assert.Equal(t, hand.Actions, decoded.Actions)
	assert.Equal(t, hand.StartingStacks, decoded.StartingStacks)
	assert.Equal(t, hand.Players, decoded.Players)
}

func TestEncodeNil(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, phh.Encode(&buf, nil))
}
