package uischema

import (
	"fmt"

	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/validation"
)

// Enricher is a named step of the chain.
type Enricher struct {
	Name      string
	Transform model.TransformerFunc
}

// Chain folds a bag through its enrichers left to right. Each enricher
// receives a clone so it never aliases the value it was handed.
type Chain struct {
	enrichers []Enricher
}

// NewChain builds a chain running enrichers in order. Nil transforms are
// skipped.
func NewChain(enrichers ...Enricher) *Chain {
	out := make([]Enricher, 0, len(enrichers))
	for _, e := range enrichers {
		if e.Transform != nil {
			out = append(out, e)
		}
	}
	return &Chain{enrichers: out}
}

// DefaultChain returns the standard enrichment order.
func DefaultChain() *Chain {
	return NewChain(
		Enricher{Name: "mergeCustomFields", Transform: MergeCustomFields},
		Enricher{Name: "setInitialFocus", Transform: SetInitialFocus},
		Enricher{Name: "compileValidation", Transform: CompileValidation},
		Enricher{Name: "assignTextKeys", Transform: AssignTextKeys},
		Enricher{Name: "assignFieldIDs", Transform: AssignFieldIDs},
		Enricher{Name: "assignElementIDs", Transform: AssignElementIDs},
		Enricher{Name: "wireDescribedBy", Transform: WireDescribedBy},
		Enricher{Name: "setLTRFields", Transform: SetLTRFields},
	)
}

// Names lists the enrichers in execution order.
func (c *Chain) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.enrichers))
	for i, e := range c.enrichers {
		out[i] = e.Name
	}
	return out
}

// Transform runs every enricher. The first error stops the chain and is
// returned with the last good bag.
func (c *Chain) Transform(bag model.FormBag, env model.Env) (model.FormBag, error) {
	if c == nil {
		return bag, nil
	}
	current := bag
	for _, e := range c.enrichers {
		next, err := e.Transform(current.Clone(), env)
		if err != nil {
			return current, fmt.Errorf("uischema: %s: %w", e.Name, err)
		}
		current = next
	}
	return current, nil
}

// CompileValidation installs the required rules, rebuilds the fields to
// validate and records the submit action.
func CompileValidation(bag model.FormBag, env model.Env) (model.FormBag, error) {
	bag, err := validation.Compile(bag, env)
	if err != nil {
		return bag, err
	}
	return validation.AddSubmission(bag, env)
}
