// Package idx models the authentication protocol transaction consumed by the
// form pipeline: the current remediation, its inputs, the alternative steps a
// user may branch to, and the messages the server attached to the response.
// Transactions are produced by the protocol client and are never mutated by
// the pipeline; helpers that need private copies use the Clone methods.
package idx
