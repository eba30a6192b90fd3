package sift

import (
	"github.com/leofalp/sift/core/coerce"
	"github.com/leofalp/sift/core/describe"
	"github.com/leofalp/sift/core/extract"
	"github.com/leofalp/sift/shape"
)

// Coercion failure kinds, re-exported so callers of the facade can branch
// with errors.Is without importing core/coerce.
var (
	ErrNoCandidate   = coerce.ErrNoCandidate
	ErrMalformed     = coerce.ErrMalformed
	ErrShapeMismatch = coerce.ErrShapeMismatch
	ErrDeserialize   = coerce.ErrDeserialize
)

// ExtractTyped recovers a value of type T from raw LLM text. The target
// shape is derived from T with [shape.For]; use [ExtractTypedShape] to
// supply a hand-declared shape instead.
func ExtractTyped[T any](text string) (T, error) {
	return coerce.As[T](text, shape.For[T]())
}

// ExtractTypedShape recovers a value of type T from raw LLM text, directed
// by an explicit target shape.
func ExtractTypedShape[T any](text string, s shape.Shape) (T, error) {
	return coerce.As[T](text, s)
}

// ExtractJSON returns the best valid JSON substring of text, or false when
// no balanced or repairable span exists.
func ExtractJSON(text string) (string, bool) {
	return extract.Extract(text)
}

// DescribeShape renders a target shape as structural guidance for a prompt.
func DescribeShape(s shape.Shape) string {
	return describe.Describe(s)
}

// DescribeType renders the shape derived from T as structural guidance for
// a prompt.
func DescribeType[T any]() string {
	return describe.Describe(shape.For[T]())
}
