// Package uischema applies the cross-cutting enrichment chain that runs after
// a step transformer. The chain keeps step transformers unaware of overrides,
// focus, validation bookkeeping, identifiers, accessibility wiring, and text
// direction while giving callers a single ordered list they can replace.
package uischema
