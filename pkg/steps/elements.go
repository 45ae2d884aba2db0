package steps

import (
	"github.com/goliatone/go-authform/pkg/model"
)

func title(env model.Env, key string, params ...any) *model.Title {
	return &model.Title{Options: model.TextOptions{Content: env.T(key, params...)}}
}

func description(env model.Env, key string, params ...any) *model.Description {
	return &model.Description{Options: model.TextOptions{Content: env.T(key, params...)}}
}

func subtitle(env model.Env, key string, params ...any) *model.Description {
	d := description(env, key, params...)
	d.ContentType = "subtitle"
	return d
}

func submitButton(env model.Env, key string) *model.Button {
	return model.NewSubmitButton(env.T(key))
}

// cancelLink is the standard "back to sign in" footer link.
func cancelLink(env model.Env) *model.Link {
	return &model.Link{
		Element: model.Element{ContentType: "footer"},
		Options: model.LinkOptions{
			Label:         env.T("goback"),
			ActionOptions: model.ActionOptions{Step: remediationCancel, IsActionStep: true},
		},
	}
}

// remediationLink switches to another remediation of the transaction.
func remediationLink(env model.Env, key, step, dataSe string) *model.Link {
	return &model.Link{
		Options: model.LinkOptions{
			Label:         env.T(key),
			ActionOptions: model.ActionOptions{Step: step},
			DataSe:        dataSe,
			OnClick:       model.SwitchRemediationIntent(step),
		},
	}
}

// footerLinks returns the switch-authenticator and cancel links offered by
// the transaction, in that order.
func footerLinks(env model.Env) []model.Node {
	var out []model.Node
	if env.Transaction.HasAvailableStep(remediationSelectAuthenticator) {
		out = append(out, remediationLink(env, "oie.verification.switch.authenticator", remediationSelectAuthenticator, "switchAuthenticator"))
	}
	if env.Transaction.HasAvailableStep(remediationCancel) {
		out = append(out, cancelLink(env))
	}
	return out
}

// resendReminder is shown after a delay when the challenge can be resent.
func resendReminder(env model.Env, contentKey string) *model.Reminder {
	return &model.Reminder{
		Options: model.ReminderOptions{
			Content:   env.T(contentKey),
			LinkLabel: env.T("email.button.resend"),
			TimeoutMs: reminderTimeoutMs,
			Intent:    model.SubmitIntent(remediationResend, nil),
		},
	}
}

func canResend(env model.Env) bool {
	step := env.Transaction.NextStep
	return (step != nil && step.CanResend) || env.Transaction.HasAvailableStep(remediationResend)
}

func viewIndexed(index int, nodes ...model.Node) []model.Node {
	for _, n := range nodes {
		i := index
		n.Base().ViewIndex = &i
	}
	return nodes
}

func withAttribute(f *model.Field, name, value string) *model.Field {
	if f != nil {
		f.SetAttribute(name, value)
	}
	return f
}
