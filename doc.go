// Package sift extracts typed values from noisy LLM output. Model
// completions rarely arrive as clean JSON: they come wrapped in prose,
// fenced in markdown, truncated at a token limit, or with no JSON framing
// at all. sift locates and repairs the JSON that is there, then coerces it
// into the shape the caller asked for — a scalar, a sequence, or a
// structured record.
//
// The two halves of the API mirror the two halves of a structured-output
// round trip: [DescribeShape] (or [DescribeType]) renders guidance to embed
// in the prompt before sending, and [ExtractTyped] (or [ExtractTypedShape])
// recovers the typed value from whatever text comes back.
//
//	type Profile struct {
//	    Name string `json:"Name"`
//	    Age  int    `json:"Age"`
//	}
//
//	prompt := basePrompt + "\n" + sift.DescribeType[Profile]()
//	// ... send prompt, receive completion ...
//	profile, err := sift.ExtractTyped[Profile](completion)
//
// The heavy lifting lives in [github.com/leofalp/sift/core/extract] and
// [github.com/leofalp/sift/core/coerce]; this package is a thin facade.
package sift
