package steps

import (
	"github.com/goliatone/go-authform/pkg/layout"
	"github.com/goliatone/go-authform/pkg/model"
)

func transformChallengeEmail(bag model.FormBag, env model.Env) (model.FormBag, error) {
	root := bag.UISchema
	step := env.Transaction.NextStep
	withAttribute(layout.FindField(root, passcodePath), "autocomplete", "one-time-code")

	email := ""
	if step != nil && step.RelatesTo != nil {
		email = step.RelatesTo.Value.Profile["email"]
	}
	info := description(env, "oie.email.verify.subtitle.text.without.email")
	if email != "" {
		info = description(env, "oie.email.verify.subtitle.text.with.email", email)
	}

	head := []model.Node{title(env, "oie.email.challenge.mfa.title"), info}
	if canResend(env) {
		head = append(head, resendReminder(env, "email.code.not.received"))
	}
	layout.Prepend(root, head...)
	layout.Append(root, submitButton(env, "mfa.challenge.verify"))
	layout.Append(root, footerLinks(env)...)
	return bag, nil
}

// transformEmailChallengeConsent asks the user to approve a sign in started
// from another device. Both answers post to the same remediation and differ
// only by the consent parameter.
func transformEmailChallengeConsent(bag model.FormBag, env model.Env) (model.FormBag, error) {
	step := env.Transaction.NextStep
	stepName := env.Transaction.StepName()

	elements := []model.Node{title(env, "oie.consent.enduser.title")}
	for _, info := range []struct{ name, icon string }{
		{"browser", "device"},
		{"appName", "app"},
	} {
		ri, ok := step.RequestInfoValue(info.name)
		if !ok {
			continue
		}
		elements = append(elements, &model.ImageWithText{
			Element: model.Element{ID: ri.Name},
			Options: model.ImageWithTextOptions{
				Icon:        info.icon,
				TextContent: sanitizeText(ri.Value),
			},
		})
	}

	deny := &model.Button{
		Element: model.Element{Label: env.T("oie.consent.enduser.deny.label")},
		Options: model.ButtonOptions{
			ActionOptions: model.ActionOptions{
				Step:         stepName,
				ActionParams: map[string]any{"consent": false},
			},
			Type:     model.ButtonButton,
			Variant:  "secondary",
			DataType: "cancel",
		},
	}
	allow := &model.Button{
		Element: model.Element{Label: env.T("oie.consent.enduser.accept.label")},
		Options: model.ButtonOptions{
			ActionOptions: model.ActionOptions{
				Step:         stepName,
				ActionParams: map[string]any{"consent": true},
			},
			Type:     model.ButtonButton,
			Variant:  "primary",
			DataType: "save",
		},
	}

	bag.UISchema.Elements = append(elements, deny, allow)
	return bag, nil
}
