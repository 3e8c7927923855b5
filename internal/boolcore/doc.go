// Package boolcore implements a multi-valued Boolean expression engine:
// construction, canonicalization and rewriting of formulas over a
// hash-consed, reference-counted expression DAG.
//
// The engine is single-threaded per Context. Nothing in this package
// takes a lock or uses an atomic; callers that need cancellation or
// concurrency wrap the engine at the boundary.
package boolcore
