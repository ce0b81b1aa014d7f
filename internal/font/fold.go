package font

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold maps s onto the characters the sheet can draw. Accented letters lose
// their combining marks ("é" becomes "e"), newlines are kept, and every other
// rune outside First..Last becomes '?'.
func Fold(s string) string {
	if isSheetText(s) {
		return s
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, c := range folded {
		if c == '\n' || (c >= First && c <= Last) {
			b.WriteRune(c)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}

func isSheetText(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\n' && (c < First || c > Last) {
			return false
		}
	}
	return true
}
