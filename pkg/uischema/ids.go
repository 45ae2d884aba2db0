package uischema

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-authform/pkg/layout"
	"github.com/goliatone/go-authform/pkg/model"
)

// AssignTextKeys gives text nodes a stable key derived from their kind and
// content. Repeated keys get a numeric suffix; existing keys are kept.
func AssignTextKeys(bag model.FormBag, _ model.Env) (model.FormBag, error) {
	used := make(map[string]struct{})
	var pending []model.TextNode
	layout.Traverse(bag.UISchema, nil, func(n model.Node) {
		text, ok := n.(model.TextNode)
		if !ok {
			return
		}
		if key := n.Base().Key; key != "" {
			used[key] = struct{}{}
			return
		}
		pending = append(pending, text)
	})

	for _, text := range pending {
		base := strings.ToLower(string(text.Kind())) + "_" + text.TextContent()
		text.Base().Key = unique(base, used)
	}
	return bag, nil
}

// AssignElementIDs gives every node without an id a "<kind>-<n>" id. The
// counter is kept per kind and skips ids already present in the tree.
func AssignElementIDs(bag model.FormBag, _ model.Env) (model.FormBag, error) {
	used := make(map[string]struct{})
	var pending []model.Node
	layout.Walk(bag.UISchema, func(n model.Node, _ *model.Layout, _ int) bool {
		if id := n.Base().ID; id != "" {
			used[id] = struct{}{}
		} else {
			pending = append(pending, n)
		}
		return true
	})

	counters := make(map[model.Kind]int)
	for _, n := range pending {
		prefix := strings.ToLower(string(n.Kind()))
		for {
			counters[n.Kind()]++
			id := prefix + "-" + strconv.Itoa(counters[n.Kind()])
			if _, taken := used[id]; !taken {
				used[id] = struct{}{}
				n.Base().ID = id
				break
			}
		}
	}
	return bag, nil
}

func unique(base string, used map[string]struct{}) string {
	candidate := base
	for n := 1; ; n++ {
		if _, taken := used[candidate]; !taken {
			used[candidate] = struct{}{}
			return candidate
		}
		candidate = base + "_" + strconv.Itoa(n)
	}
}
