package hand

// Tool-specific metadata keys. The "_apm_" prefix keeps them apart from
// the standard PHH fields.
const (
	keyHero    = "_apm_hero"
	keySource  = "_apm_source"
	keyNotes   = "_apm_notes"
	keyContext = "_apm_context"
	keyAnswers = "_apm_answers"
)

// customFields holds the validated tool metadata of one hand. Absent
// fields keep their zero values.
type customFields struct {
	hero    int // 1-based seat override
	heroSet bool
	source  string
	notes   string
	context string
	answers []string
}

// extractCustomFields pulls the "_apm_" keys out of the raw decoded
// document and validates their types and ranges.
func extractCustomFields(raw map[string]any, playerCount int) (customFields, error) {
	var fields customFields

	if v, ok := raw[keyHero]; ok {
		n, isInt := v.(int64)
		if !isInt {
			return fields, Validationf("%s must be an integer", keyHero)
		}
		if n < 1 || n > int64(playerCount) {
			return fields, Validationf("%s must be between 1 and %d", keyHero, playerCount)
		}
		fields.hero = int(n)
		fields.heroSet = true
	}

	var err error
	if fields.source, err = stringField(raw, keySource); err != nil {
		return fields, err
	}
	if fields.notes, err = stringField(raw, keyNotes); err != nil {
		return fields, err
	}
	if fields.context, err = stringField(raw, keyContext); err != nil {
		return fields, err
	}

	if v, ok := raw[keyAnswers]; ok {
		list, isList := v.([]any)
		if !isList {
			return fields, Validationf("%s must be a list of strings", keyAnswers)
		}
		fields.answers = make([]string, 0, len(list))
		for _, item := range list {
			s, isStr := item.(string)
			if !isStr {
				return fields, Validationf("%s must be a list of strings", keyAnswers)
			}
			fields.answers = append(fields.answers, s)
		}
	}

	return fields, nil
}

func stringField(raw map[string]any, key string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", nil
	}
	s, isStr := v.(string)
	if !isStr {
		return "", Validationf("%s must be a string", key)
	}
	return s, nil
}
