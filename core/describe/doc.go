// Package describe renders a target shape as prompt guidance: a field
// listing with friendly type names, descriptions, required flags and
// constraints, followed by an example payload. The output is advisory text
// meant to steer a model toward parseable responses, not a machine-checked
// schema. The entry point is [Describe].
package describe
