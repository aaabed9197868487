package textutil

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var markupReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Normalize folds s for case- and surrounding-whitespace-insensitive comparison.
func Normalize(s string) string {
	return strings.TrimSpace(strings.ToLower(s))
}

// EscapeMarkup makes s safe to place in element text or a quoted attribute value.
func EscapeMarkup(s string) string {
	return markupReplacer.Replace(s)
}

// TerminalSafe strips C0, DEL and C1 control runes so catalog text cannot
// carry escape sequences to the terminal. Tabs and line breaks become spaces
// and ill-formed UTF-8 becomes U+FFFD.
func TerminalSafe(s string) string {
	if utf8.ValidString(s) && strings.IndexFunc(s, unicode.IsControl) < 0 {
		return s
	}
	t := transform.Chain(
		runes.ReplaceIllFormed(),
		runes.Map(func(r rune) rune {
			switch r {
			case '\t', '\n', '\r', '\v', '\f':
				return ' '
			}
			return r
		}),
		runes.Remove(runes.Predicate(unicode.IsControl)),
	)
	out, _, err := transform.String(t, s)
	if err != nil {
		return ""
	}
	return out
}
