// Package schema defines a table's declared column shape.
//
// Declared column types are advisory, per spec.md §3: the engine records
// and exposes them through describe, but stored Values are never coerced
// to match.
package schema
