package fallback

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize tidies whitespace around punctuation, keeping "Next.js", "3.5",
// "1,5" and "10:30" intact rather than always spacing after a mark. It is
// idempotent.
//
// Whitespace runs collapse to one space, whitespace before . , ! ? : ; is
// dropped, and a single space is inserted after those marks when a word
// follows directly. After "." the space is only inserted before an
// upper-case letter, and never between digits after "," or ":". Invalid
// UTF-8 bytes are copied through unchanged.
func Normalize(text string) string {
	collapsed := strings.Join(strings.Fields(text), " ")

	runes := make([]rune, 0, len(collapsed))
	raw := make([]string, 0, len(collapsed))
	for i := 0; i < len(collapsed); {
		r, size := utf8.DecodeRuneInString(collapsed[i:])
		runes = append(runes, r)
		raw = append(raw, collapsed[i:i+size])
		i += size
	}

	var b strings.Builder
	b.Grow(len(collapsed) + 8)
	for i, r := range runes {
		if r == ' ' && i+1 < len(runes) && isMark(runes[i+1]) {
			continue
		}
		b.WriteString(raw[i])
		if isMark(r) && needsSpaceAfter(runes, i) {
			b.WriteByte(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

func isMark(r rune) bool {
	switch r {
	case '.', ',', '!', '?', ':', ';':
		return true
	}
	return false
}

func needsSpaceAfter(runes []rune, i int) bool {
	if i+1 >= len(runes) {
		return false
	}
	next := runes[i+1]
	if !unicode.IsLetter(next) && !unicode.IsDigit(next) {
		return false
	}

	switch runes[i] {
	case '.':
		return unicode.IsUpper(next)
	case ',', ':':
		if i > 0 && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(next) {
			return false
		}
	}
	return true
}
