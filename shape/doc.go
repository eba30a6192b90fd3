// Package shape declares the target shapes that drive typed extraction.
// A [Shape] is a closed description of the value a caller wants back from
// raw LLM text: a scalar, a sequence, or a structured record whose fields
// carry their own nested shapes, descriptions, and validation constraints.
//
// Shapes can be declared literally with the constructors ([Int], [Bool],
// [SequenceOf], [RecordOf], ...) or derived from a Go type with [For],
// which reads json and jsonschema struct tags the same way tool schemas do.
package shape
