package catalog

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"servicemart/internal/domain"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// LabelToEnum translates a UI label to the backend token for field. It
// reports false only for empty input.
//
// Resolution order: an already-legal token is returned unchanged, then an
// exact label match, then a case-insensitive label match, then the mechanical
// transform (uppercase, whitespace runs and slashes to underscores). The
// mechanical result is not guaranteed to be a legal token.
func LabelToEnum(category domain.Category, field, label string) (string, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", false
	}

	f, ok := lookup(category, field)
	if ok {
		if f.IsToken(label) {
			return label, true
		}
		for _, l := range f.Labels {
			if l.Label == label {
				return l.Token, true
			}
		}
		for _, l := range f.Labels {
			if strings.EqualFold(l.Label, label) {
				return l.Token, true
			}
		}
	}
	return MechanicalToken(label), true
}

// EnumToLabel translates a backend token to its UI label. Tokens without a
// label entry are rendered in Title Case with underscores as spaces, which is
// a best-effort inverse of the mechanical transform.
func EnumToLabel(category domain.Category, field, token string) string {
	if token == "" {
		return ""
	}
	if f, ok := lookup(category, field); ok {
		for _, l := range f.Labels {
			if l.Token == token {
				return l.Label
			}
		}
	}
	return TitleCase(token)
}

// MechanicalToken uppercases s and replaces whitespace runs and slashes with
// underscores.
func MechanicalToken(s string) string {
	s = strings.ToUpper(s)
	s = whitespaceRun.ReplaceAllString(s, "_")
	return strings.ReplaceAll(s, "/", "_")
}

// TitleCase turns "BED_AND_BREAKFAST" into "Bed And Breakfast".
func TitleCase(token string) string {
	parts := strings.Split(token, "_")
	words := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" {
			continue
		}
		lower := strings.ToLower(p)
		r, size := utf8.DecodeRuneInString(lower)
		words = append(words, string(unicode.ToUpper(r))+lower[size:])
	}
	return strings.Join(words, " ")
}

// Option is a renderable enum choice.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Options returns every legal token of field with its display label.
func Options(category domain.Category, field string) []Option {
	f, ok := lookup(category, field)
	if !ok {
		return nil
	}
	out := make([]Option, len(f.Values))
	for i, v := range f.Values {
		out[i] = Option{Value: v, Label: EnumToLabel(category, field, v)}
	}
	return out
}

func lookup(category domain.Category, field string) (EnumField, bool) {
	for _, f := range enumCatalog[category] {
		if f.Name == field {
			return f, true
		}
	}
	return EnumField{}, false
}
