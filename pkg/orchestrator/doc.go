// Package orchestrator wires the field mapper, the step transformer registry
// and the enrichment chain into a single Generate call. Every run is
// isolated; an Orchestrator can be shared between goroutines.
package orchestrator
