package extract

import (
	"github.com/dlclark/regexp2"
)

// Best-effort fallbacks for texts the character scan cannot resolve (for
// example a stray opening delimiter before the real payload). Each matches
// one level of nested balanced delimiters.
var (
	objectFallback = regexp2.MustCompile(`\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`, regexp2.Singleline)
	arrayFallback  = regexp2.MustCompile(`\[[^\[\]]*(?:\[[^\[\]]*\][^\[\]]*)*\]`, regexp2.Singleline)
)

// ObjectSpan returns the first complete balanced {...} span in text whose
// content is valid JSON. Delimiters inside string literals never affect the
// balance count. The first complete span wins; in text with several
// independent JSON blocks the later ones are not considered.
func ObjectSpan(text string) (string, bool) {
	return span(text, '{', '}', objectFallback)
}

// ArraySpan is the [...] counterpart of [ObjectSpan].
func ArraySpan(text string) (string, bool) {
	return span(text, '[', ']', arrayFallback)
}

func span(text string, open, closer byte, fallback *regexp2.Regexp) (string, bool) {
	if candidate, ok := scanSpan(text, open, closer); ok && Valid(candidate) {
		return candidate, true
	}
	if m, err := fallback.FindStringMatch(text); err == nil && m != nil {
		if candidate := m.String(); Valid(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// scanSpan is a single left-to-right pass tracking nesting level, string
// state and escapes. It stops the moment the level returns to zero after
// having been positive.
func scanSpan(text string, open, closer byte) (string, bool) {
	level := 0
	first := -1
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case open:
			if first == -1 {
				first = i
			}
			level++
		case closer:
			if level > 0 {
				level--
				if level == 0 {
					return text[first : i+1], true
				}
			}
		}
	}
	return "", false
}
