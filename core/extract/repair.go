package extract

import (
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

var (
	trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)
	bareKeyRe       = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_]*)\s*:`)
)

// RepairObject recovers a valid JSON object from malformed or truncated
// text. It scans from the first '{' with the same string/escape-aware
// counter as the scanner, validating the accumulated substring at every
// return to balance; if the text ends with open braces outstanding, the
// missing closers are appended (the truncation-recovery path). Failing
// that, the textual fixes are tried in a fixed order and the first
// candidate accepted by [Valid] wins.
func RepairObject(text string) (string, bool) {
	return repairSpan(text, '{', '}')
}

// RepairArray is the [...] counterpart of [RepairObject].
func RepairArray(text string) (string, bool) {
	return repairSpan(text, '[', ']')
}

func repairSpan(text string, open, closer byte) (string, bool) {
	start := strings.IndexByte(text, open)
	if start == -1 {
		return "", false
	}

	level := 0
	inString := false
	escaped := false
	firstBalanced := ""

	for i := start; i < len(text); i++ {
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
			level++
		case closer:
			if level > 0 {
				level--
				if level == 0 {
					candidate := text[start : i+1]
					if Valid(candidate) {
						return candidate, true
					}
					if firstBalanced == "" {
						firstBalanced = candidate
					}
				}
			}
		}
	}

	// Truncated output: balance the outstanding openers and re-validate.
	base := strings.TrimSpace(text[start:])
	if level > 0 {
		base += strings.Repeat(string(closer), level)
		if Valid(base) {
			return base, true
		}
	} else if firstBalanced != "" {
		base = firstBalanced
	}

	// Textual repairs, each a single pass over the same base candidate.
	for _, fix := range []func(string) (string, bool){
		stripTrailingCommas,
		quoteBareKeys,
		libraryRepair,
	} {
		if candidate, ok := fix(base); ok && Valid(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// stripTrailingCommas removes commas sitting directly before a closing
// delimiter, as in {"a":1,}.
func stripTrailingCommas(s string) (string, bool) {
	repaired := trailingCommaRe.ReplaceAllString(s, "$1")
	return repaired, repaired != s
}

// quoteBareKeys wraps unquoted object keys in double quotes, as in
// {name: "x"}. Keys are barewords followed by a colon; anything fancier is
// left for the library pass.
func quoteBareKeys(s string) (string, bool) {
	repaired := bareKeyRe.ReplaceAllString(s, `${1}"${2}":`)
	return repaired, repaired != s
}

// libraryRepair hands the candidate to jsonrepair as a last resort, for
// corruptions the single-pass fixes cannot handle in combination. Both the
// input and the result must be delimiter-framed so plain prose can never be
// promoted to a bare JSON string.
func libraryRepair(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || (s[0] != '{' && s[0] != '[') {
		return "", false
	}
	repaired, err := jsonrepair.JSONRepair(s)
	if err != nil {
		return "", false
	}
	repaired = strings.TrimSpace(repaired)
	if len(repaired) == 0 || (repaired[0] != '{' && repaired[0] != '[') {
		return "", false
	}
	return repaired, true
}
