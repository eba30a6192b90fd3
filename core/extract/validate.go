package extract

import (
	json "github.com/goccy/go-json"
)

// Valid reports whether candidate parses as JSON in its entirety. There is
// no notion of partial validity: trailing garbage after a well-formed value
// fails the whole candidate.
func Valid(candidate string) bool {
	return json.Valid([]byte(candidate))
}
