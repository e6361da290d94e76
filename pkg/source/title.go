package source

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var parenthetical = regexp.MustCompile(`\([^)]*\)`)

// Prefixes some sites put in front of the real title, matched case-insensitively.
var sitePrefixes = []string{"korean drama ", "korean movie ", "k-drama ", "kdrama "}

// CleanTitle turns a URL-derived title candidate into a display title:
// parenthetical content is removed, whitespace collapsed, site prefixes
// stripped and every word capitalized.
//
//	"some drama title"             -> "Some Drama Title"
//	"korean drama  Dream (2024)"   -> "Dream"
func CleanTitle(s string) string {
	s = parenthetical.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")

	for _, p := range sitePrefixes {
		if n, ok := foldPrefix(s, p); ok {
			s = s[n:]
			break
		}
	}

	return Capitalize(strings.TrimSpace(s))
}

// foldPrefix reports whether s starts with prefix under Unicode case
// folding, and returns the byte length of the matched part of s.
func foldPrefix(s, prefix string) (int, bool) {
	n := 0
	for _, pr := range prefix {
		if n >= len(s) {
			return 0, false
		}
		r, size := utf8.DecodeRuneInString(s[n:])
		if !strings.EqualFold(string(r), string(pr)) {
			return 0, false
		}
		n += size
	}
	return n, true
}

// Capitalize upper-cases the first letter of each whitespace-delimited word
// and leaves the rest of the word alone.
func Capitalize(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// NormalizeForMatch folds a title for similarity comparison: lower-case,
// accents removed, punctuation dropped, whitespace collapsed.
func NormalizeForMatch(title string) string {
	s := strings.ToLower(title)
	s = removeAccents(s)
	s = strings.ReplaceAll(s, "&", " and ")

	var b strings.Builder
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func removeAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, s)
	return result
}
