package coerce

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/leofalp/sift/core/extract"
	"github.com/leofalp/sift/internal/utils"
	"github.com/leofalp/sift/shape"
)

// As coerces raw LLM text into a value of type T, directed by the target
// shape. Dispatch happens once, at the top, over the closed set of shape
// kinds; each handler applies its own fixed fallback order:
//
//   - KindInt / KindFloat: labeled "Value:" pattern, then the first
//     colon-prefixed number, then the first bare number token.
//   - KindBool: labeled "Boolean:" pattern, then a case-insensitive literal
//     scan with true taking priority.
//   - KindString: labeled "String:" pattern, then the first quoted run,
//     then the trailing text after the last colon on a line.
//   - KindSequence: the first balanced [...] span in the raw text, then the
//     generic extractor; the candidate must be array-framed.
//   - KindRecord: the generic extractor, trimmed forward to the first '{'.
//   - KindInvalid: the generic extractor, deserialized directly.
//
// As never panics past its boundary: every failure wraps one of the
// sentinel errors declared in this package.
//
// Example:
//
//	type Profile struct {
//	    Name string `json:"Name"`
//	    Age  int    `json:"Age"`
//	}
//
//	p, err := coerce.As[Profile](completion, shape.For[Profile]())
func As[T any](text string, s shape.Shape) (T, error) {
	switch s.Kind {
	case shape.KindInt:
		return coerceNumber[T](text, false)
	case shape.KindFloat:
		return coerceNumber[T](text, true)
	case shape.KindBool:
		return coerceBool[T](text)
	case shape.KindString:
		return coerceString[T](text)
	case shape.KindSequence:
		return coerceSequence[T](text)
	case shape.KindRecord:
		return coerceRecord[T](text)
	default:
		return coerceAny[T](text)
	}
}

func coerceNumber[T any](text string, wantFloat bool) (T, error) {
	var result T
	token, ok := numberToken(text, wantFloat)
	if !ok {
		return result, fmt.Errorf("no number token in %q: %w",
			utils.TruncateStringDefault(text), ErrNoCandidate)
	}

	v := reflect.ValueOf(&result).Elem()
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return result, fmt.Errorf("parsing %q as int: %v: %w", token, err, ErrDeserialize)
		}
		if v.OverflowInt(n) {
			return result, fmt.Errorf("%q overflows %T: %w", token, result, ErrDeserialize)
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return result, fmt.Errorf("parsing %q as uint: %v: %w", token, err, ErrDeserialize)
		}
		if v.OverflowUint(n) {
			return result, fmt.Errorf("%q overflows %T: %w", token, result, ErrDeserialize)
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(token, 64)
		if err != nil {
			return result, fmt.Errorf("parsing %q as float: %v: %w", token, err, ErrDeserialize)
		}
		v.SetFloat(f)
	default:
		return result, fmt.Errorf("numeric shape cannot populate %T: %w", result, ErrShapeMismatch)
	}
	return result, nil
}

func coerceBool[T any](text string) (T, error) {
	var result T
	v := reflect.ValueOf(&result).Elem()
	if v.Kind() != reflect.Bool {
		return result, fmt.Errorf("boolean shape cannot populate %T: %w", result, ErrShapeMismatch)
	}
	b, ok := boolToken(text)
	if !ok {
		return result, fmt.Errorf("no boolean literal in %q: %w",
			utils.TruncateStringDefault(text), ErrNoCandidate)
	}
	v.SetBool(b)
	return result, nil
}

func coerceString[T any](text string) (T, error) {
	var result T
	v := reflect.ValueOf(&result).Elem()
	if v.Kind() != reflect.String {
		return result, fmt.Errorf("string shape cannot populate %T: %w", result, ErrShapeMismatch)
	}
	s, ok := stringToken(text)
	if !ok {
		return result, fmt.Errorf("no string token in %q: %w",
			utils.TruncateStringDefault(text), ErrNoCandidate)
	}
	v.SetString(s)
	return result, nil
}

func coerceSequence[T any](text string) (T, error) {
	var result T
	// Re-scan the raw text for an array span first: the generic extractor
	// is object-biased and would happily return a surrounding object.
	candidate, ok := extract.ArraySpan(text)
	if !ok {
		var err error
		candidate, err = extractCandidate(text)
		if err != nil {
			return result, err
		}
	}
	candidate = strings.TrimSpace(candidate)
	if !strings.HasPrefix(candidate, "[") {
		return result, fmt.Errorf("candidate %q is not array-framed: %w",
			utils.TruncateStringDefault(candidate), ErrShapeMismatch)
	}
	return unmarshalCandidate[T](candidate)
}

func coerceRecord[T any](text string) (T, error) {
	var result T
	candidate, err := extractCandidate(text)
	if err != nil {
		return result, err
	}
	candidate = strings.TrimSpace(candidate)
	if !strings.HasPrefix(candidate, "{") {
		// The extractor may have settled on an array wrapping the object we
		// want; trim forward to the first '{' inside it.
		idx := strings.IndexByte(candidate, '{')
		if idx == -1 {
			return result, fmt.Errorf("candidate %q is not object-framed: %w",
				utils.TruncateStringDefault(candidate), ErrShapeMismatch)
		}
		candidate = strings.TrimSpace(candidate[idx:])
	}
	return unmarshalCandidate[T](candidate)
}

func coerceAny[T any](text string) (T, error) {
	var result T
	candidate, err := extractCandidate(text)
	if err != nil {
		return result, err
	}
	return unmarshalCandidate[T](candidate)
}

// extractCandidate runs the generic extractor and classifies its failure:
// text with JSON-like delimiters that still produced nothing is malformed
// beyond repair, text without them contains no candidate at all.
func extractCandidate(text string) (string, error) {
	if candidate, ok := extract.Extract(text); ok {
		return candidate, nil
	}
	if strings.ContainsAny(text, "{[") {
		return "", fmt.Errorf("unrepairable JSON in %q: %w",
			utils.TruncateStringDefault(text), ErrMalformed)
	}
	return "", fmt.Errorf("no JSON delimiters in %q: %w",
		utils.TruncateStringDefault(text), ErrNoCandidate)
}

func unmarshalCandidate[T any](candidate string) (T, error) {
	var result T
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return result, fmt.Errorf("candidate does not fit %T: %v: %w", result, err, ErrShapeMismatch)
		}
		return result, fmt.Errorf("deserializing candidate as %T: %v: %w", result, err, ErrDeserialize)
	}
	return result, nil
}
