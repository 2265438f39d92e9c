package generate

import (
	"regexp"
	"strings"
	"unicode"
)

var pathParamPattern = regexp.MustCompile(`\{[^}]+\}`)

// SynthesizeOperationID derives a stable, readable identifier for an
// operation that declares no operationId. The result is a pure function of
// (path, method); no uniqueness check is performed here — see
// DuplicateNames for collision detection across a whole document.
//
// Path `{param}` segments are stripped, the remaining segments are
// capitalized and concatenated behind a verb prefix chosen by method.
// POST becomes "create" only when the literal path text contains "create".
func SynthesizeOperationID(path, method string) string {
	cleaned := pathParamPattern.ReplaceAllString(path, "")

	var parts []string
	for _, seg := range strings.Split(cleaned, "/") {
		if seg != "" {
			parts = append(parts, seg)
		}
	}

	var prefix string
	switch strings.ToLower(method) {
	case "get":
		prefix = "get"
	case "post":
		if strings.Contains(strings.ToLower(path), "create") {
			prefix = "create"
		} else {
			prefix = "post"
		}
	case "put":
		prefix = "update"
	case "delete":
		prefix = "delete"
	default:
		prefix = strings.ToLower(method)
	}

	if len(parts) == 0 {
		return prefix + "Root"
	}

	var b strings.Builder
	b.WriteString(prefix)
	for _, p := range parts {
		b.WriteString(capitalize(p))
	}
	return b.String()
}

// capitalize uppercases the first rune and leaves the rest unchanged.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
