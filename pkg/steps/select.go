package steps

import (
	"fmt"

	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/model"
)

const (
	authenticatorInput  = "authenticator"
	authenticatorIDPath = "authenticator.id"
	methodTypePath      = "authenticator.methodType"
)

// authenticatorButtons builds one button per authenticator choice. Each one
// submits the step with the chosen authenticator id, plus the delivery
// method when the choice pins one.
func authenticatorButtons(env model.Env, options []idx.Option, ctaKey string) []model.Node {
	step := env.Transaction.StepName()
	out := make([]model.Node, 0, len(options))
	for _, opt := range options {
		key := ""
		var id any
		var displayName string
		if opt.RelatesTo != nil {
			key = opt.RelatesTo.Key
			id = opt.RelatesTo.ID
			displayName = opt.RelatesTo.DisplayName
		}
		if key == "" && opt.Value != nil {
			key = fmt.Sprint(opt.Value)
		}
		if v, ok := opt.NestedValue("id"); ok {
			id = v
		}

		params := map[string]any{authenticatorIDPath: id}
		if v, ok := opt.NestedValue("methodType"); ok {
			params[methodTypePath] = v
		}

		out = append(out, &model.AuthenticatorButton{
			Element: model.Element{Label: opt.Label},
			Options: model.AuthenticatorButtonOptions{
				ActionOptions: model.ActionOptions{Step: step, ActionParams: params},
				Key:           key,
				CTALabel:      env.T(ctaKey),
				Description:   displayName,
				DataSe:        "authenticator-button",
			},
		})
	}
	return out
}

func transformSelectAuthenticatorEnroll(bag model.FormBag, env model.Env) (model.FormBag, error) {
	step := env.Transaction.NextStep
	input, ok := step.Input(authenticatorInput)
	if !ok {
		return bag, nil
	}

	info := description(env, "oie.select.authenticators.enroll.subtitle")
	if brand := env.Config.BrandName; brand != "" {
		info = description(env, "oie.select.authenticators.enroll.subtitle.custom", brand)
	}
	setup := "oie.setup.required"
	if step.CanSkip {
		setup = "oie.setup.optional"
	}

	elements := []model.Node{
		title(env, "oie.select.authenticators.enroll.title"),
		info,
		description(env, setup),
	}
	elements = append(elements, authenticatorButtons(env, input.Options, "oie.enroll.authenticator.button.text")...)

	if step.CanSkip && env.Transaction.HasAvailableStep(remediationSkip) {
		elements = append(elements, &model.Button{
			Element: model.Element{Label: env.T("oie.optional.authenticator.button.title")},
			Options: model.ButtonOptions{
				ActionOptions: model.ActionOptions{Step: remediationSkip, IsActionStep: true},
				Type:          model.ButtonButton,
				Variant:       "secondary",
				DataSe:        "button-skip",
			},
		})
	}

	bag.UISchema.Elements = elements
	delete(bag.Data, authenticatorInput)
	return bag, nil
}

func transformSelectAuthenticatorAuthenticate(bag model.FormBag, env model.Env) (model.FormBag, error) {
	step := env.Transaction.NextStep
	input, ok := step.Input(authenticatorInput)
	if !ok {
		return bag, nil
	}

	elements := []model.Node{
		title(env, "oie.select.authenticators.verify.title"),
		description(env, "oie.select.authenticators.verify.subtitle"),
	}
	elements = append(elements, authenticatorButtons(env, input.Options, "oie.verify.authenticator.button.text")...)
	elements = append(elements, cancelLink(env))

	bag.UISchema.Elements = elements
	delete(bag.Data, authenticatorInput)
	return bag, nil
}
