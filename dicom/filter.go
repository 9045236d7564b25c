package dicom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/codeninja55/go-radx/dicom/tag"
)

// maxFilterTags caps the number of tags accepted by -f.
const maxFilterTags = 100

// ParseFilterList parses the CLI's -f flag: a list of tags in hex, each
// either "GGGGEEEE" or "(GGGG,EEEE)", separated by ';' or ','.
//
// original_source/src/main.c tokenizes this with strtok(input, ",") then
// strtok(NULL, ";"), so only the first token may be comma-separated and
// every subsequent one must be semicolon-separated — an artifact of how
// strtok chains, not a deliberate rule. This implementation treats ',' and
// ';' as interchangeable separators throughout instead, avoiding a parsing
// quirk nobody would pick on purpose.
func ParseFilterList(s string) (Filter, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Filter{}, nil
	}

	// Split on ',' and ';' only outside parentheses, so the comma inside a
	// "(GGGG,EEEE)" token stays part of that token.
	var tokens []string
	depth, start := 0, 0
	for i, c := range s + ";" {
		switch {
		case c == '(':
			depth++
		case c == ')':
			depth--
		case depth <= 0 && (c == ',' || c == ';'):
			if tok := strings.TrimSpace(s[start:i]); tok != "" {
				tokens = append(tokens, tok)
			}
			start = i + 1
		}
	}
	if len(tokens) > maxFilterTags {
		return Filter{}, fmt.Errorf("filter list has %d tags, exceeds max of %d", len(tokens), maxFilterTags)
	}

	tags := make([]tag.Tag, 0, len(tokens))
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		t, err := parseFilterTag(tok)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid filter tag %q: %w", tok, err)
		}
		tags = append(tags, t)
	}
	return NewFilter(tags...), nil
}

// parseFilterTag accepts "(GGGG,EEEE)" (delegated to tag.Parse) as well as
// the bare 8-hex-digit form "GGGGEEEE".
func parseFilterTag(s string) (tag.Tag, error) {
	if strings.Contains(s, "(") || strings.Contains(s, ",") {
		return tag.Parse(s)
	}
	if len(s) != 8 {
		return tag.Tag{}, fmt.Errorf("expected 8 hex digits (GGGGEEEE), got %q", s)
	}
	raw, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return tag.Tag{}, err
	}
	return tag.New(uint16(raw>>16), uint16(raw)), nil
}
