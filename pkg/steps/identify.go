package steps

import (
	"github.com/goliatone/go-authform/pkg/layout"
	"github.com/goliatone/go-authform/pkg/model"
)

const (
	identifierPath = "identifier"
	passcodePath   = "credentials.passcode"
	rememberMePath = "rememberMe"
)

func transformIdentify(bag model.FormBag, env model.Env) (model.FormBag, error) {
	root := bag.UISchema

	if identifier := layout.FindField(root, identifierPath); identifier != nil {
		identifier.SetAttribute("autocomplete", "username")
		// The identifier stays undefined unless a username is configured.
		bag.Data[identifierPath] = nil
		if username := env.Config.DefaultUsername(); username != "" {
			identifier.Options.DefaultOption = username
			bag.Data[identifierPath] = username
		}
	}

	passcode := layout.FindField(root, passcodePath)
	withAttribute(passcode, "autocomplete", "current-password")

	if remember := layout.FindField(root, rememberMePath); remember != nil {
		if env.Config.HideKeepMeSignedIn() {
			layout.RemoveField(root, rememberMePath)
			delete(bag.Data, rememberMePath)
		} else {
			remember.Label = env.T("oie.remember")
		}
	}

	submitKey := "oform.next"
	if passcode != nil {
		submitKey = "oie.primaryauth.submit"
	}

	layout.Prepend(root, title(env, "primaryauth.title"))
	layout.Append(root, submitButton(env, submitKey))
	layout.Append(root, identifyLinks(env)...)

	applyIDPButtons(root, env)
	return bag, nil
}

func identifyLinks(env model.Env) []model.Node {
	var out []model.Node
	tx := env.Transaction
	if tx.HasAvailableStep(remediationRecover) {
		out = append(out, remediationLink(env, "forgotpassword", remediationRecover, "forgot-password"))
	}
	if tx.HasAvailableStep(remediationUnlockAccount) {
		out = append(out, remediationLink(env, "unlockaccount", remediationUnlockAccount, "unlock"))
	}
	if tx.HasAvailableStep(remediationEnrollProfile) {
		out = append(out, remediationLink(env, "signup", remediationEnrollProfile, "enroll"))
	}
	return out
}
