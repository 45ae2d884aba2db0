package uischema

import (
	"github.com/goliatone/go-authform/pkg/layout"
	"github.com/goliatone/go-authform/pkg/model"
)

// ltrFieldNames stay left to right regardless of the page direction.
var ltrFieldNames = map[string]struct{}{
	"identifier":                  {},
	"credentials.passcode":        {},
	"credentials.newPassword":     {},
	"credentials.confirmPassword": {},
	"confirmPassword":             {},
}

func eachField(root *model.Layout, fn func(*model.Field)) {
	layout.Traverse(root, layout.IsKind(model.KindField), func(n model.Node) {
		if f := n.(*model.Field); f.Options.InputMeta != nil {
			fn(f)
		}
	})
}

// MergeCustomFields applies the configured overrides of the current step to
// the matching fields. Empty override members leave the field untouched.
func MergeCustomFields(bag model.FormBag, env model.Env) (model.FormBag, error) {
	if len(env.Config.CustomFields) == 0 {
		return bag, nil
	}
	eachField(bag.UISchema, func(f *model.Field) {
		patch, ok := env.Config.FieldOverride(env.StepKey, f.Name())
		if !ok {
			return
		}
		if patch.Label != "" {
			f.Label = patch.Label
		}
		if patch.Hint != "" {
			f.Options.Hint = patch.Hint
		}
		if patch.Placeholder != "" {
			f.Options.Placeholder = patch.Placeholder
		}
		if patch.Dir != "" {
			f.Dir = patch.Dir
		}
		if patch.Autocomplete != "" {
			f.SetAttribute("autocomplete", patch.Autocomplete)
		}
		if patch.Required != nil {
			f.Options.InputMeta.Required = *patch.Required
			f.Options.Required = *patch.Required
		}
	})
	return bag, nil
}

// SetInitialFocus focuses the first field, or the first interactive element
// when the step has no fields. A step that already focuses something is left
// alone.
func SetInitialFocus(bag model.FormBag, _ model.Env) (model.FormBag, error) {
	root := bag.UISchema
	focused := layout.Find(root, func(n model.Node) bool { return n.Base().Focus })
	if focused != nil {
		return bag, nil
	}
	target := layout.Find(root, layout.IsKind(model.KindField))
	if target == nil {
		target = layout.Find(root, model.IsInteractive)
	}
	if target != nil {
		target.Base().Focus = true
	}
	return bag, nil
}

// AssignFieldIDs names every field without an id after its dot-path.
func AssignFieldIDs(bag model.FormBag, _ model.Env) (model.FormBag, error) {
	eachField(bag.UISchema, func(f *model.Field) {
		if f.ID == "" {
			f.ID = f.Name()
		}
	})
	return bag, nil
}

// SetLTRFields forces left to right input on identifiers and secrets unless
// a direction was already chosen.
func SetLTRFields(bag model.FormBag, _ model.Env) (model.FormBag, error) {
	eachField(bag.UISchema, func(f *model.Field) {
		if _, ok := ltrFieldNames[f.Name()]; ok && f.Dir == "" {
			f.Dir = "ltr"
		}
	})
	return bag, nil
}
