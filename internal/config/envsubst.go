// internal/config/envsubst.go
package config

import (
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars replaces ${VAR} references outside TOML comments with
// environment values. Unset variables are left in place and reported in
// missing. With ":-" an unset or empty variable takes the default; with
// ":?" it is reported with the given message.
func substituteEnvVars(content string) (string, []MissingVar) {
	var (
		b       strings.Builder
		missing []MissingVar
		line    = 1
	)
	for _, sp := range scanSpans(content) {
		text := content[sp.start:sp.end]
		if sp.comment {
			b.WriteString(text)
		} else {
			b.WriteString(substituteSpan(text, line, &missing))
		}
		line += strings.Count(text, "\n")
	}
	return b.String(), missing
}

func substituteSpan(text string, line int, missing *[]MissingVar) string {
	var b strings.Builder
	last := 0
	for _, m := range envVarPattern.FindAllStringSubmatchIndex(text, -1) {
		b.WriteString(text[last:m[0]])
		last = m[1]

		match := text[m[0]:m[1]]
		name := text[m[2]:m[3]]
		var op, arg string
		if m[4] >= 0 {
			op, arg = text[m[4]:m[5]], text[m[6]:m[7]]
		}
		at := line + strings.Count(text[:m[0]], "\n")
		value, ok := os.LookupEnv(name)

		switch {
		case op == ":-" && value == "":
			b.WriteString(arg)
		case op == ":?" && value == "":
			msg := strings.TrimSpace(arg)
			if msg == "" {
				msg = "must be set"
			}
			*missing = append(*missing, MissingVar{Name: name, Line: at, Message: msg})
			b.WriteString(match)
		case op == "" && !ok:
			*missing = append(*missing, MissingVar{Name: name, Line: at})
			b.WriteString(match)
		default:
			b.WriteString(value)
		}
	}
	b.WriteString(text[last:])
	return b.String()
}

type span struct {
	start, end int
	comment    bool
}

// scanSpans splits TOML source into code and comment spans. A '#' starts
// a comment only outside strings and ${...} references.
func scanSpans(s string) []span {
	var spans []span
	start := 0
	for i := 0; i < len(s); {
		switch {
		case strings.HasPrefix(s[i:], `"""`):
			i = skipMultiline(s, i+3, `"""`, true)
		case strings.HasPrefix(s[i:], `'''`):
			i = skipMultiline(s, i+3, `'''`, false)
		case s[i] == '"':
			i = skipString(s, i+1, '"', true)
		case s[i] == '\'':
			i = skipString(s, i+1, '\'', false)
		case strings.HasPrefix(s[i:], "${"):
			if j := strings.IndexByte(s[i:], '}'); j >= 0 {
				i += j + 1
			} else {
				i = len(s)
			}
		case s[i] == '#':
			if i > start {
				spans = append(spans, span{start: start, end: i})
			}
			end := len(s)
			if j := strings.IndexByte(s[i:], '\n'); j >= 0 {
				end = i + j
			}
			spans = append(spans, span{start: i, end: end, comment: true})
			start, i = end, end
		default:
			i++
		}
	}
	if start < len(s) {
		spans = append(spans, span{start: start, end: len(s)})
	}
	return spans
}

// skipString returns the index after a single-line string's closing quote.
// Unterminated strings end at the newline.
func skipString(s string, i int, quote byte, escapes bool) int {
	for i < len(s) {
		switch c := s[i]; {
		case escapes && c == '\\':
			i += 2
		case c == quote:
			return i + 1
		case c == '\n':
			return i
		default:
			i++
		}
	}
	return len(s)
}

func skipMultiline(s string, i int, delim string, escapes bool) int {
	for i < len(s) {
		if escapes && s[i] == '\\' {
			i += 2
			continue
		}
		if strings.HasPrefix(s[i:], delim) {
			return i + len(delim)
		}
		i++
	}
	return len(s)
}
