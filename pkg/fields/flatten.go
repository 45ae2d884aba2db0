package fields

import (
	"strings"

	"github.com/goliatone/go-authform/pkg/idx"
)

// Flatten expands composite inputs into one entry per leaf, named by
// dot-path, preserving relative order. Choice inputs are leaves even when
// their options carry nested forms. Unnamed entries are dropped and
// explicit false visibility or mutability is inherited by children that do
// not state their own.
func Flatten(inputs []idx.Input) []idx.Input {
	var out []idx.Input
	for _, in := range inputs {
		out = appendLeaves(out, in, "", nil, nil)
	}
	return out
}

func appendLeaves(out []idx.Input, in idx.Input, prefix string, mutable, visible *bool) []idx.Input {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return out
	}
	if prefix != "" {
		name = prefix + "." + name
	}
	if in.Mutable == nil {
		in.Mutable = mutable
	}
	if in.Visible == nil {
		in.Visible = visible
	}
	if len(in.Inputs) == 0 || len(in.Options) > 0 {
		leaf := in.Clone()
		leaf.Name = name
		return append(out, leaf)
	}
	for _, child := range in.Inputs {
		out = appendLeaves(out, child, name, in.Mutable, in.Visible)
	}
	return out
}

// Addressable reports whether a flattened entry becomes a field.
func Addressable(in idx.Input) bool {
	return in.Name != "" && in.IsVisible() && in.IsMutable()
}
