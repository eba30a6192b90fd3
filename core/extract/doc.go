// Package extract locates and repairs JSON embedded in raw LLM text.
// Model output routinely wraps JSON in narrative prose or markdown fences,
// truncates it at a token limit, or emits near-JSON with trailing commas or
// bare keys; this package recovers a syntactically valid candidate from all
// of those, or reports that none exists.
//
// The main entry point is [Extract], which composes the balanced-span
// scanner ([ObjectSpan], [ArraySpan]), the structural repairer
// ([RepairObject], [RepairArray]) and the validator ([Valid]) in a fixed
// preference order: a complete span beats a repaired one, and an object
// beats an array. Every returned candidate has already passed [Valid].
package extract
