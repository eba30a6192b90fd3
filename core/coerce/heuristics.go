package coerce

import (
	"regexp"
	"strings"
)

// Scalar token heuristics. Each target kind tries a labeled fixture pattern
// first ("Value: 42", "Boolean: true", `String: "x"`), then a generic
// colon-prefixed match, then the first bare token anywhere in the text.
var (
	labeledIntRe   = regexp.MustCompile(`(?i)\bvalue\s*:\s*(-?\d+)`)
	labeledFloatRe = regexp.MustCompile(`(?i)\bvalue\s*:\s*(-?\d+(?:\.\d+)?)`)
	colonIntRe     = regexp.MustCompile(`:\s*(-?\d+)`)
	colonFloatRe   = regexp.MustCompile(`:\s*(-?\d+(?:\.\d+)?)`)
	bareIntRe      = regexp.MustCompile(`-?\d+`)
	bareFloatRe    = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

	labeledBoolRe = regexp.MustCompile(`(?i)\bboolean\s*:\s*(true|false)`)
	trueRe        = regexp.MustCompile(`(?i)\btrue\b`)
	falseRe       = regexp.MustCompile(`(?i)\bfalse\b`)

	labeledStringRe = regexp.MustCompile(`(?i)\bstring\s*:\s*"((?:[^"\\]|\\.)*)"`)
	quotedRe        = regexp.MustCompile(`"((?:[^"\\]|\\.)*)"`)
)

// numberToken finds the most plausible numeric token in text. Integer
// targets only match whole numbers, so "3.14" yields "3" rather than a
// token strconv would reject.
func numberToken(text string, wantFloat bool) (string, bool) {
	labeled, colon, bare := labeledIntRe, colonIntRe, bareIntRe
	if wantFloat {
		labeled, colon, bare = labeledFloatRe, colonFloatRe, bareFloatRe
	}
	if m := labeled.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := colon.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := bare.FindString(text); m != "" {
		return m, true
	}
	return "", false
}

// boolToken finds a boolean literal in text. When both literals appear,
// true wins regardless of position.
func boolToken(text string) (bool, bool) {
	if m := labeledBoolRe.FindStringSubmatch(text); m != nil {
		return strings.EqualFold(m[1], "true"), true
	}
	if trueRe.MatchString(text) {
		return true, true
	}
	if falseRe.MatchString(text) {
		return false, true
	}
	return false, false
}

// stringToken finds a quoted value in text, or, when the text contains no
// quotes at all, the trailing text after the last colon on a line.
func stringToken(text string) (string, bool) {
	if m := labeledStringRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	if m := quotedRe.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	lines := strings.Split(text, "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		idx := strings.LastIndexByte(lines[i], ':')
		if idx == -1 {
			continue
		}
		if tail := strings.TrimSpace(lines[i][idx+1:]); tail != "" {
			return tail, true
		}
	}
	return "", false
}
