package steps

import (
	"github.com/goliatone/go-authform/pkg/model"
)

// transformRedirect replaces the form with a navigation to the step href.
// Successful sign ins keep a spinner up while the browser leaves.
func transformRedirect(bag model.FormBag, env model.Env) (model.FormBag, error) {
	step := env.Transaction.NextStep
	if step == nil {
		return bag, nil
	}
	redirect := &model.Redirect{Options: model.RedirectOptions{URL: step.Href}}

	var elements []model.Node
	if step.Name == SuccessRedirect.String() {
		elements = append(elements, &model.Spinner{})
	}
	bag.UISchema.Elements = append(elements, redirect)
	bag.Data = map[string]any{}
	return bag, nil
}
