package steps

import (
	"strings"

	"github.com/goliatone/go-authform/pkg/layout"
	"github.com/goliatone/go-authform/pkg/model"
)

const (
	redirectIDPName = "redirect-idp"
	pivType         = "X509"
)

func hasPIVRemediation(env model.Env) bool {
	for _, step := range env.Transaction.NeededToProceed {
		if step.Name == redirectIDPName && step.Type == pivType {
			return true
		}
	}
	return false
}

// applyIDPButtons adds the smart card button and its divider. Primary
// placement puts them right after the title; secondary placement puts them
// after the form, ahead of the links.
func applyIDPButtons(root *model.Layout, env model.Env) {
	if !hasPIVRemediation(env) {
		return
	}

	label := env.T("piv.cac.card")
	className := ""
	if piv := env.Config.PIV; piv != nil {
		if piv.Text != "" {
			label = piv.Text
		}
		className = piv.ClassName
	}
	button := &model.Button{
		Element: model.Element{Label: label},
		Options: model.ButtonOptions{
			ActionOptions: model.ActionOptions{Step: remediationPIVIDP},
			Type:          model.ButtonButton,
			Variant:       "secondary",
			DataSe:        "piv-card-button",
			Classes:       strings.TrimSpace(className + " piv-button"),
			OnClick:       model.SwitchRemediationIntent(remediationPIVIDP),
		},
	}
	divider := &model.Divider{Options: model.DividerOptions{Text: env.T("socialauth.divider.text")}}

	if env.Config.IDPPrimary() {
		pos := layout.IndexOf(root, layout.IsKind(model.KindTitle)) + 1
		layout.Insert(root, pos, button, divider)
		return
	}
	pos := layout.IndexOf(root, layout.IsKind(model.KindLink))
	if pos < 0 {
		pos = len(root.Elements)
	}
	layout.Insert(root, pos, divider, button)
}
