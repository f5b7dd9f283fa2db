package phh

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

const errExcerptLen = 100

// Decode parses a PHH document. The document is decoded twice: once into
// the typed HandHistory and once into a generic map so that tool-specific
// keys keep their dynamic types for later validation.
func Decode(content string) (*HandHistory, error) {
	if content == "" {
		return nil, fmt.Errorf("Invalid PHH (empty)")
	}

	var hand HandHistory
	if _, err := toml.NewDecoder(strings.NewReader(content)).Decode(&hand); err != nil {
		return nil, fmt.Errorf("Error parsing PHH with content:\n%s: %w", excerpt(content), err)
	}

	raw := make(map[string]any)
	if _, err := toml.NewDecoder(strings.NewReader(content)).Decode(&raw); err != nil {
		return nil, fmt.Errorf("Error parsing PHH with content:\n%s: %w", excerpt(content), err)
	}
	hand.Raw = raw

	if hand.Variant != VariantNoLimitHoldem && hand.Variant != VariantLimitHoldem {
		return nil, fmt.Errorf("the variant '%s' is not supported", hand.Variant)
	}
	return &hand, nil
}

func excerpt(content string) string {
	if len(content) > errExcerptLen {
		return content[:errExcerptLen] + "\n..."
	}
	return content
}
