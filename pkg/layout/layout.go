// Package layout provides traversal and editing helpers over the uischema
// tree. Helpers descend into nested layouts depth first and never match the
// layouts themselves unless stated.
package layout

import (
	"github.com/goliatone/go-authform/pkg/model"
)

// Predicate selects nodes.
type Predicate func(model.Node) bool

// Traverse calls fn for every non-layout node matching pred, in
// presentation order. A nil pred matches everything.
func Traverse(root *model.Layout, pred Predicate, fn func(model.Node)) {
	Walk(root, func(n model.Node, _ *model.Layout, _ int) bool {
		if _, isLayout := n.(*model.Layout); isLayout {
			return true
		}
		if pred == nil || pred(n) {
			fn(n)
		}
		return true
	})
}

// Walk visits every node including nested layouts in depth-first pre-order.
// Returning false from fn stops the walk.
func Walk(root *model.Layout, fn func(n model.Node, parent *model.Layout, index int) bool) {
	if root == nil {
		return
	}
	walk(root, fn)
}

func walk(parent *model.Layout, fn func(model.Node, *model.Layout, int) bool) bool {
	for i, child := range parent.Elements {
		if child == nil {
			continue
		}
		if !fn(child, parent, i) {
			return false
		}
		if nested, ok := child.(*model.Layout); ok {
			if !walk(nested, fn) {
				return false
			}
		}
	}
	return true
}

// Find returns the first non-layout node matching pred.
func Find(root *model.Layout, pred Predicate) model.Node {
	var found model.Node
	Walk(root, func(n model.Node, _ *model.Layout, _ int) bool {
		if _, isLayout := n.(*model.Layout); isLayout {
			return true
		}
		if pred(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// Count returns how many non-layout nodes match pred.
func Count(root *model.Layout, pred Predicate) int {
	total := 0
	Traverse(root, pred, func(model.Node) { total++ })
	return total
}

// Fields returns every field in presentation order.
func Fields(root *model.Layout) []*model.Field {
	var out []*model.Field
	Traverse(root, IsKind(model.KindField), func(n model.Node) {
		out = append(out, n.(*model.Field))
	})
	return out
}

// FindField returns the field bound to name.
func FindField(root *model.Layout, name string) *model.Field {
	n := Find(root, FieldNamed(name))
	if n == nil {
		return nil
	}
	return n.(*model.Field)
}

// IsKind matches nodes of kind k.
func IsKind(k model.Kind) Predicate {
	return func(n model.Node) bool { return n.Kind() == k }
}

// FieldNamed matches the field bound to name.
func FieldNamed(name string) Predicate {
	return func(n model.Node) bool {
		f, ok := n.(*model.Field)
		return ok && f.Name() == name
	}
}

// IsSubmitButton matches submit buttons.
func IsSubmitButton(n model.Node) bool {
	b, ok := n.(*model.Button)
	return ok && b.IsSubmit()
}

// Remove deletes every non-layout node matching pred at any depth and
// returns how many were removed.
func Remove(root *model.Layout, pred Predicate) int {
	if root == nil {
		return 0
	}
	removed := 0
	kept := root.Elements[:0]
	for _, child := range root.Elements {
		if nested, ok := child.(*model.Layout); ok {
			removed += Remove(nested, pred)
			kept = append(kept, child)
			continue
		}
		if child != nil && pred(child) {
			removed++
			continue
		}
		kept = append(kept, child)
	}
	for i := len(kept); i < len(root.Elements); i++ {
		root.Elements[i] = nil
	}
	root.Elements = kept
	return removed
}

// RemoveField deletes the field bound to name.
func RemoveField(root *model.Layout, name string) bool {
	return Remove(root, FieldNamed(name)) > 0
}

// IndexOf returns the index of the first direct child matching pred or -1.
func IndexOf(root *model.Layout, pred Predicate) int {
	if root == nil {
		return -1
	}
	for i, child := range root.Elements {
		if child != nil && pred(child) {
			return i
		}
	}
	return -1
}

// Insert places nodes at index among the direct children. Indexes outside
// the slice are clamped.
func Insert(root *model.Layout, index int, nodes ...model.Node) {
	if index < 0 {
		index = 0
	}
	if index > len(root.Elements) {
		index = len(root.Elements)
	}
	out := make([]model.Node, 0, len(root.Elements)+len(nodes))
	out = append(out, root.Elements[:index]...)
	out = append(out, nodes...)
	out = append(out, root.Elements[index:]...)
	root.Elements = out
}

// Prepend places nodes before the existing children.
func Prepend(root *model.Layout, nodes ...model.Node) {
	Insert(root, 0, nodes...)
}

// Append places nodes after the existing children.
func Append(root *model.Layout, nodes ...model.Node) {
	root.Elements = append(root.Elements, nodes...)
}
