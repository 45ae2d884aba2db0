package validation

import (
	"fmt"

	"github.com/goliatone/go-authform/pkg/layout"
	"github.com/goliatone/go-authform/pkg/model"
)

// Compile installs a required rule for every required, mutable field that
// has no rule yet, marks those fields as required and rebuilds
// FieldsToValidate in tree order. Fields without inputMeta are skipped.
func Compile(bag model.FormBag, _ model.Env) (model.FormBag, error) {
	if bag.DataSchema.Rules == nil {
		bag.DataSchema.Rules = make(map[string]model.Rule)
	}

	ordered := make([]string, 0)
	seen := make(map[string]struct{})
	for _, field := range layout.Fields(bag.UISchema) {
		meta := field.Options.InputMeta
		if meta == nil || meta.Name == "" {
			continue
		}
		if meta.Required && meta.IsMutable() {
			field.Options.Required = true
			if _, exists := bag.DataSchema.Rules[meta.Name]; !exists {
				bag.DataSchema.Rules[meta.Name] = Required(meta.Name)
			}
		}
		if _, hasRule := bag.DataSchema.Rules[meta.Name]; !hasRule {
			continue
		}
		if _, dup := seen[meta.Name]; dup || bag.DataSchema.Excluded(meta.Name) {
			continue
		}
		seen[meta.Name] = struct{}{}
		ordered = append(ordered, meta.Name)
	}
	bag.FieldsToValidate = ordered
	return bag, nil
}

// AddSubmission records the submit options of the single submit button. A
// step with several submit buttons must set DataSchema.Submit itself,
// otherwise ErrMalformedStep is returned.
func AddSubmission(bag model.FormBag, env model.Env) (model.FormBag, error) {
	var submits []*model.Button
	layout.Traverse(bag.UISchema, layout.IsSubmitButton, func(n model.Node) {
		submits = append(submits, n.(*model.Button))
	})

	switch {
	case len(submits) == 1:
		action := submits[0].Options.ActionOptions.Clone()
		if action.Step == "" {
			action.Step = env.Transaction.StepName()
		}
		bag.DataSchema.Submit = &action
	case len(submits) > 1 && bag.DataSchema.Submit == nil:
		return bag, model.NewError(model.ErrMalformedStep,
			fmt.Sprintf("%d submit buttons without explicit submit options", len(submits)),
			map[string]any{"step": env.StepKey, "submit_buttons": len(submits)})
	}
	return bag, nil
}
