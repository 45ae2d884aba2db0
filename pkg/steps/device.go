package steps

import (
	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/model"
)

// Challenge methods of a device authenticator launch.
const (
	challengeAppLink       = "APP_LINK"
	challengeUniversalLink = "UNIVERSAL_LINK"
	challengeCustomURI     = "CUSTOM_URI"
)

const defaultPollIntervalMs = 4000

func deviceChallengeTitle(method string) string {
	switch method {
	case challengeAppLink:
		return "appLink.title"
	case challengeUniversalLink:
		return "universalLink.title"
	default:
		return "customUri.title"
	}
}

func deviceChallengeDescription(method string) string {
	switch method {
	case challengeAppLink:
		return "appLink.content"
	case challengeUniversalLink:
		return "universalLink.content"
	default:
		return "customUri.required.content.prompt"
	}
}

// deviceChallenge returns the launch payload. device-challenge-poll carries
// it directly; launch-authenticator nests it in the contextual data.
func deviceChallenge(step *idx.NextStep) idx.Authenticator {
	if step == nil || step.RelatesTo == nil {
		return idx.Authenticator{}
	}
	value := step.RelatesTo.Value
	if step.Name == DeviceChallengePoll.String() {
		return value
	}
	if value.ContextualData == nil || value.ContextualData.Challenge == nil {
		return idx.Authenticator{}
	}
	return value.ContextualData.Challenge.Value
}

func transformDeviceChallengePoll(bag model.FormBag, env model.Env) (model.FormBag, error) {
	root := bag.UISchema
	step := env.Transaction.NextStep
	payload := deviceChallenge(step)
	method := payload.ChallengeMethod

	root.Elements = append([]model.Node{title(env, deviceChallengeTitle(method))}, root.Elements...)

	info := subtitle(env, deviceChallengeDescription(method))
	launch := &model.AppLinkButton{
		Options: model.AppLinkButtonOptions{
			Step:            env.Transaction.StepName(),
			Href:            payload.Href,
			ChallengeMethod: method,
		},
	}

	// Cold starts of the authenticator app are covered by a spinner view
	// that advances to the launch view after a delay.
	if method == challengeAppLink && step.Name == DeviceChallengePoll.String() {
		waiting := model.NewLayout(model.VerticalLayout, viewIndexed(0,
			&model.StepperNavigator{
				Options: model.StepperNavigatorOptions{
					OnLoad: model.SetStepIndexIntent(1, fastpassFallbackTimeoutMs),
				},
			},
			&model.Spinner{},
			&model.Link{
				Element: model.Element{ContentType: "footer"},
				Options: model.LinkOptions{
					Label: env.T("goback"),
					ActionOptions: model.ActionOptions{
						Step:         remediationAuthenticatorCancel,
						IsActionStep: true,
						ActionParams: map[string]any{"reason": "USER_CANCELED", "statusCode": nil},
					},
				},
			},
		)...)
		launchView := model.NewLayout(model.VerticalLayout, viewIndexed(1, info, launch, cancelLink(env))...)
		root.Elements = append(root.Elements, model.NewLayout(model.StepperLayout, waiting, launchView))
		return bag, nil
	}

	if method == challengeAppLink || method == challengeUniversalLink {
		root.Elements = append(root.Elements, &model.Spinner{})
	}
	root.Elements = append(root.Elements, info, launch)
	if method == challengeCustomURI {
		root.Elements = append(root.Elements,
			subtitle(env, "customUri.required.content.download.title"),
			&model.Link{
				Options: model.LinkOptions{
					Label: env.T("customUri.required.content.download.linkText"),
					Href:  payload.DownloadHref,
				},
			},
		)
	}
	root.Elements = append(root.Elements, cancelLink(env))
	return bag, nil
}

// transformChallengePoll waits for a push approval. Polling runs on the
// renderer side through the navigator intent.
func transformChallengePoll(bag model.FormBag, env model.Env) (model.FormBag, error) {
	root := bag.UISchema
	step := env.Transaction.NextStep

	interval := defaultPollIntervalMs
	if step != nil && step.Refresh > 0 {
		interval = step.Refresh
	}

	elements := []model.Node{
		title(env, "oie.okta_verify.push.title"),
		description(env, "oie.okta_verify.push.sent"),
		&model.StepperNavigator{
			Options: model.StepperNavigatorOptions{OnLoad: model.PollIntent(env.Transaction.StepName(), interval)},
		},
		&model.Spinner{},
	}
	if canResend(env) {
		elements = append(elements, resendReminder(env, "oie.okta_verify.push.resend.reminder"))
	}
	elements = append(elements, root.Elements...)
	root.Elements = append(elements, cancelLink(env))
	return bag, nil
}
