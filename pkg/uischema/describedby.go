package uischema

import (
	"strings"

	"github.com/goliatone/go-authform/pkg/layout"
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/validation"
)

// WireDescribedBy points each field's aria-describedby at its error region,
// its hint and, for passwords, the requirements list.
func WireDescribedBy(bag model.FormBag, _ model.Env) (model.FormBag, error) {
	root := bag.UISchema

	requirements := make(map[string]string)
	layout.Traverse(root, layout.IsKind(model.KindPasswordRequirements), func(n model.Node) {
		req := n.(*model.PasswordRequirements)
		if req.ID != "" && req.Options.FieldKey != "" {
			requirements[req.Options.FieldKey] = req.ID
		}
	})
	primaryRequirements := ""
	for _, path := range []string{"credentials.passcode", "credentials.newPassword"} {
		if id, ok := requirements[path]; ok {
			primaryRequirements = id
			break
		}
	}

	eachField(root, func(f *model.Field) {
		if f.ID == "" {
			return
		}
		var tokens []string
		if len(f.Options.InputMeta.Messages) > 0 {
			tokens = append(tokens, f.ID+"-error")
		}
		if f.Options.Hint != "" {
			tokens = append(tokens, f.ID+"-hint")
		}
		if id, ok := requirements[f.Name()]; ok {
			tokens = append(tokens, id)
		}
		if f.Name() == validation.ConfirmPasswordPath && primaryRequirements != "" {
			tokens = append(tokens, primaryRequirements)
		}
		f.Options.AriaDescribedBy = mergeTokens(f.Options.AriaDescribedBy, tokens)
	})
	return bag, nil
}

// mergeTokens appends tokens missing from the space separated list.
func mergeTokens(existing string, tokens []string) string {
	out := strings.Fields(existing)
	seen := make(map[string]struct{}, len(out)+len(tokens))
	for _, t := range out {
		seen[t] = struct{}{}
	}
	for _, t := range tokens {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return strings.Join(out, " ")
}
