package rendergraph

import "errors"

// Compile-time failure modes: every one of these means no
// commands were recorded and no native resource was allocated.
var (
	// ErrDanglingReference is returned when a pass reads a node that no
	// earlier pass (or the importer) ever wrote.
	ErrDanglingReference = errors.New("rendergraph: dangling node reference")

	// ErrCycle reports a dependency graph that is not a DAG. Compile does
	// not return it: this builder's API cannot produce a cycle (see
	// validate in compile.go).
	ErrCycle = errors.New("rendergraph: cycle detected among passes")

	// ErrTransientAllocation is returned when a transient resource's
	// native allocation fails (out of device memory).
	ErrTransientAllocation = errors.New("rendergraph: transient resource allocation failed")
)
