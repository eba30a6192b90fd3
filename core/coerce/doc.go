// Package coerce turns raw LLM text into a value of a requested shape.
// It layers on top of the extraction engine: structured shapes run the
// extractor and deserialize the candidate, while scalar shapes fall back to
// text-pattern heuristics because a model answering "what is 6*7" is far
// more likely to say "The answer is 42" than to emit JSON.
//
// The single entry point is the generic [As] function. It is total: every
// failure is reported as a wrapped sentinel ([ErrNoCandidate],
// [ErrMalformed], [ErrShapeMismatch], [ErrDeserialize]), never a panic.
package coerce
