package pulse

import (
	"strings"
	"unicode"
)

// MaxCharacters is the hard limit on post content length, enforced on both
// the composer and the server.
const MaxCharacters = 280

// ParseTags turns free-text hashtag input into a canonical tag list. Tokens
// are split on any run of whitespace or commas, stripped of a single leading
// '#', lowercased, and deduplicated preserving first-seen order. Input with
// no usable tokens yields an empty list; callers substitute a default tag if
// they need one.
func ParseTags(value string) []string {
	tokens := strings.FieldsFunc(value, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})

	tags := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		tag := strings.TrimPrefix(strings.TrimSpace(token), "#")
		if tag == "" {
			continue
		}
		tag = strings.ToLower(tag)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}
