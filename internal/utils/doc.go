// Package utils provides shared low-level helpers used throughout the sift
// internals: generic pointer and string utilities, JSON stringification for
// log output, and bounded truncation so error messages quoting raw model
// output stay readable.
//
// Key entry points: [Ptr] for converting values to pointers,
// [TruncateString] for shortening long text, and [JSONToString] for safe
// JSON rendering in logs.
package utils
