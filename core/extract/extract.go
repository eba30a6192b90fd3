package extract

import (
	"regexp"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?[ \\t]*\\n(.*?)\\n[ \\t]*```")

// Extract returns the best candidate JSON substring of text, or false when
// every strategy fails. A complete balanced span is preferred over a
// repaired one, and an object over an array, since model responses are
// overwhelmingly single top-level objects.
func Extract(text string) (string, bool) {
	text = stripFences(text)
	if candidate, ok := ObjectSpan(text); ok {
		return candidate, true
	}
	if candidate, ok := ArraySpan(text); ok {
		return candidate, true
	}
	if candidate, ok := RepairObject(text); ok {
		return candidate, true
	}
	if candidate, ok := RepairArray(text); ok {
		return candidate, true
	}
	return "", false
}

// stripFences narrows text to the contents of the first markdown code
// fence, if any. Fenced output still runs through the full scanner and
// validator; the fence is just a strong hint about where the payload is.
func stripFences(text string) string {
	if m := fenceRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return text
}
