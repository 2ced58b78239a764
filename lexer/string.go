package lexer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// unescapeString decodes the raw source text of a String token (including
// its surrounding quotes) into its string value. It reuses
// encoding/json.Decoder.Token() to do the actual escape processing - the
// same trick the teacher's parser/parse_literals.go uses - by rewriting
// single-quoted text into double-quoted JSON text first.
func unescapeString(raw string) (string, error) {
	if len(raw) < 2 {
		return "", fmt.Errorf("malformed string literal %q", raw)
	}
	var jsonText string
	switch raw[0] {
	case '"':
		jsonText = raw
	case '\'':
		inner := raw[1 : len(raw)-1]
		inner = strings.ReplaceAll(inner, `\'`, `'`)
		inner = strings.ReplaceAll(inner, `"`, `\"`)
		jsonText = `"` + inner + `"`
	default:
		return "", fmt.Errorf("malformed string literal %q", raw)
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(jsonText)))
	tok, err := dec.Token()
	if err != nil {
		return "", fmt.Errorf("invalid string literal %s: %w", raw, err)
	}
	s, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("invalid string literal %s", raw)
	}
	return s, nil
}
