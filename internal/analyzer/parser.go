package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var ErrPayloadParse = errors.New("invalid example payload")

var whitespaceRun = regexp.MustCompile(`\s+`)

// normalizePayload collapses every whitespace run (line breaks included)
// into a single space.
func normalizePayload(text string) string {
	normalized := whitespaceRun.ReplaceAllString(text, " ")
	normalized = strings.ReplaceAll(normalized, "\n", "")
	return strings.TrimSpace(normalized)
}

// parsePayload decodes an example payload into a map[string]interface{} or
// []interface{}.
func parsePayload(text string) (interface{}, error) {
	normalized := normalizePayload(text)
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty payload", ErrPayloadParse)
	}

	var value interface{}
	if err := json.Unmarshal([]byte(normalized), &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPayloadParse, err)
	}

	switch value.(type) {
	case map[string]interface{}, []interface{}:
		return value, nil
	default:
		return nil, fmt.Errorf("%w: expected object or array, got %T", ErrPayloadParse, value)
	}
}
