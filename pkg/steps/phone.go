package steps

import (
	"fmt"

	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/layout"
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/validation"
)

const (
	phoneMethodPath    = "authenticator.methodType"
	phoneNumberPath    = "authenticator.phoneNumber"
	defaultPhonePrefix = "+1"
	methodSMS          = "sms"
)

func transformPhoneEnrollmentData(bag model.FormBag, env model.Env) (model.FormBag, error) {
	root := bag.UISchema

	method := layout.FindField(root, phoneMethodPath)
	methodType := ""
	if method != nil && len(method.Options.CustomOptions) > 0 {
		methodType = fmt.Sprint(method.Options.CustomOptions[0].Value)
		if v, _ := bag.Data[phoneMethodPath].(string); v == "" {
			bag.Data[phoneMethodPath] = methodType
		}
	}

	if phone := layout.FindField(root, phoneNumberPath); phone != nil {
		phone.Options.Type = "tel"
		phone.SetAttribute("autocomplete", "tel")
		if v, _ := bag.Data[phoneNumberPath].(string); v == "" {
			bag.Data[phoneNumberPath] = defaultPhonePrefix
		}
		bag.DataSchema.Rules[phoneNumberPath] = validation.Phone(phoneNumberPath)
	}

	submitKey := "oie.phone.call.primaryButton"
	if methodType == "" || methodType == methodSMS {
		submitKey = "oie.phone.sms.primaryButton"
	}

	layout.Prepend(root,
		title(env, "oie.phone.enroll.title"),
		description(env, "oie.phone.enroll.subtitle"),
	)
	layout.Append(root, submitButton(env, submitKey))
	layout.Append(root, footerLinks(env)...)
	return bag, nil
}

func firstMethodType(step *idx.NextStep) string {
	if step == nil || step.RelatesTo == nil || len(step.RelatesTo.Value.Methods) == 0 {
		return ""
	}
	return step.RelatesTo.Value.Methods[0].Type
}

func transformPhoneCodeEnrollment(bag model.FormBag, env model.Env) (model.FormBag, error) {
	root := bag.UISchema
	withAttribute(layout.FindField(root, passcodePath), "autocomplete", "one-time-code")

	sent := "next.phone.verify.voice.calling"
	if firstMethodType(env.Transaction.NextStep) == methodSMS {
		sent = "next.phone.verify.sms.codeSentText"
	}

	layout.Prepend(root,
		title(env, "oie.phone.enroll.title"),
		description(env, sent),
		description(env, "oie.phone.carrier.charges"),
	)
	layout.Append(root, submitButton(env, "mfa.challenge.verify"))
	return bag, nil
}

func transformChallengePhone(bag model.FormBag, env model.Env) (model.FormBag, error) {
	root := bag.UISchema
	step := env.Transaction.NextStep
	withAttribute(layout.FindField(root, passcodePath), "autocomplete", "one-time-code")

	phone := ""
	if step != nil && step.RelatesTo != nil {
		phone = step.RelatesTo.Value.Profile["phoneNumber"]
	}
	sent := "oie.phone.verify.voice.sentText"
	reminder := "oie.phone.verify.voice.reminder"
	if firstMethodType(step) == methodSMS {
		sent = "oie.phone.verify.sms.sentText"
		reminder = "oie.phone.verify.sms.reminder"
	}

	head := []model.Node{
		title(env, "oie.phone.verify.title"),
		description(env, sent, phone),
	}
	if canResend(env) {
		head = append(head, resendReminder(env, reminder))
	}
	layout.Prepend(root, head...)
	layout.Append(root, submitButton(env, "mfa.challenge.verify"))
	layout.Append(root, footerLinks(env)...)
	return bag, nil
}
