package fields

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/layout"
	"github.com/goliatone/go-authform/pkg/model"
)

// Built-in UI formats.
const (
	FormatSelect = "select"
	FormatToggle = "toggle"
	FormatText   = "text"
)

// Matcher decides whether a format applies to an input.
type Matcher func(in idx.Input) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry infers UI formats for inputs. Higher priority wins; ties fall
// back to registration order. Inputs no matcher accepts resolve to text.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry returns a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a matcher for format name at priority.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the format for in.
func (r *Registry) Resolve(in idx.Input) string {
	if r == nil {
		return FormatText
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(in) {
			return entry.name
		}
	}
	return FormatText
}

// Apply resolves a format for every field of root that has inputMeta and no
// explicit format yet.
func (r *Registry) Apply(root *model.Layout) {
	layout.Traverse(root, layout.IsKind(model.KindField), func(n model.Node) {
		f := n.(*model.Field)
		if f.Options.InputMeta == nil || f.Options.Format != "" {
			return
		}
		f.Options.Format = r.Resolve(*f.Options.InputMeta)
	})
}

func (r *Registry) registerBuiltins() {
	r.Register(FormatSelect, 90, func(in idx.Input) bool {
		return len(in.Options) > 0
	})
	r.Register(FormatToggle, 80, func(in idx.Input) bool {
		return strings.EqualFold(in.Type, "boolean")
	})
}
