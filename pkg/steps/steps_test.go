package steps_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-authform/pkg/config"
	"github.com/goliatone/go-authform/pkg/fields"
	"github.com/goliatone/go-authform/pkg/i18n"
	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/layout"
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/steps"
	"github.com/goliatone/go-authform/pkg/validation"
)

func boolPtr(v bool) *bool { return &v }

func run(t *testing.T, tx idx.Transaction, cfg config.Widget) model.FormBag {
	t.Helper()
	env := model.Env{Transaction: tx, Config: cfg, Loc: i18n.Keys, StepKey: steps.Key(tx)}
	bag, err := fields.MapInputs(model.NewFormBag(), env)
	if err != nil {
		t.Fatalf("map inputs: %v", err)
	}
	transform, ok := steps.For(tx)
	if !ok {
		t.Fatalf("step %q is not registered", env.StepKey)
	}
	bag, err = transform(bag, env)
	if err != nil {
		t.Fatalf("transform %q: %v", env.StepKey, err)
	}
	return bag
}

func kinds(nodes []model.Node) []model.Kind {
	out := make([]model.Kind, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Kind())
	}
	return out
}

func assertKinds(t *testing.T, nodes []model.Node, want ...model.Kind) {
	t.Helper()
	if diff := cmp.Diff(want, kinds(nodes)); diff != "" {
		t.Fatalf("layout order mismatch (-want +got):\n%s", diff)
	}
}

func textOf(t *testing.T, n model.Node) string {
	t.Helper()
	text, ok := n.(model.TextNode)
	if !ok {
		t.Fatalf("node %s carries no text", n.Kind())
	}
	return text.TextContent()
}

func identifyTx(inputs ...idx.Input) idx.Transaction {
	return idx.Transaction{NextStep: &idx.NextStep{Name: "identify", Inputs: inputs}}
}

var (
	identifierInput = idx.Input{Name: "identifier", Label: "Username", Type: "string", Required: true}
	rememberMeInput = idx.Input{Name: "rememberMe", Label: "Remember", Type: "boolean"}
	passcodeInput   = idx.Input{Name: "credentials", Inputs: []idx.Input{
		{Name: "passcode", Label: "Password", Type: "string", Secret: true, Required: true},
	}}
)

func TestIdentifyWithoutPasscode(t *testing.T) {
	bag := run(t, identifyTx(identifierInput, rememberMeInput), config.Widget{})
	els := bag.UISchema.Elements

	assertKinds(t, els, model.KindTitle, model.KindField, model.KindField, model.KindButton)
	if got := textOf(t, els[0]); got != "primaryauth.title" {
		t.Fatalf("title = %q", got)
	}
	if got := els[2].(*model.Field).Label; got != "oie.remember" {
		t.Fatalf("rememberMe label = %q", got)
	}
	submit := els[3].(*model.Button)
	if !submit.IsSubmit() || submit.Label != "oform.next" {
		t.Fatalf("unexpected submit %#v", submit)
	}
	if got := els[1].(*model.Field).Options.Attributes["autocomplete"]; got != "username" {
		t.Fatalf("identifier autocomplete = %q", got)
	}
}

func TestIdentifyWithPasscodeAndLinks(t *testing.T) {
	tx := identifyTx(identifierInput, passcodeInput)
	tx.AvailableSteps = []idx.NextStep{{Name: "currentAuthenticator-recover"}, {Name: "unlock-account"}}
	bag := run(t, tx, config.Widget{})
	els := bag.UISchema.Elements

	assertKinds(t, els, model.KindTitle, model.KindField, model.KindField, model.KindButton, model.KindLink, model.KindLink)
	if got := els[3].Base().Label; got != "oie.primaryauth.submit" {
		t.Fatalf("submit label = %q", got)
	}
	if got := els[2].(*model.Field).Options.Attributes["autocomplete"]; got != "current-password" {
		t.Fatalf("passcode autocomplete = %q", got)
	}
	if got := els[4].(*model.Link).Options.Label; got != "forgotpassword" {
		t.Fatalf("first link = %q", got)
	}
}

func TestIdentifyUsernameDefault(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Widget
		want any
	}{
		{"explicit username", config.Widget{Username: "alice@example.com", RememberedUsername: "bob"}, "alice@example.com"},
		{"remembered username", config.Widget{
			RememberedUsername: "bob@example.com",
			Features:           config.Features{RememberMe: true, RememberMyUsernameOnOIE: true},
		}, "bob@example.com"},
		{"remembered but feature off", config.Widget{RememberedUsername: "bob@example.com"}, nil},
		{"no configuration", config.Widget{}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag := run(t, identifyTx(identifierInput), tt.cfg)
			if got := bag.Data["identifier"]; got != tt.want {
				t.Fatalf("identifier data = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIdentifyWithoutConfigLeavesIdentifierUndefined(t *testing.T) {
	bag := run(t, identifyTx(identifierInput, passcodeInput, rememberMeInput), config.Widget{})

	assertKinds(t, bag.UISchema.Elements,
		model.KindTitle, model.KindField, model.KindField, model.KindField, model.KindButton)
	got, ok := bag.Data["identifier"]
	if !ok || got != nil {
		t.Fatalf("identifier data = %#v (present=%v), want an undefined value", got, ok)
	}
	if got := bag.Data["credentials.passcode"]; got != "" {
		t.Fatalf("passcode data = %#v", got)
	}
	if got := bag.Data["rememberMe"]; got != false {
		t.Fatalf("rememberMe data = %#v", got)
	}
}

func TestIdentifyHidesKeepMeSignedIn(t *testing.T) {
	cfg := config.Widget{Features: config.Features{ShowKeepMeSignedIn: boolPtr(false)}}
	bag := run(t, identifyTx(identifierInput, rememberMeInput), cfg)

	assertKinds(t, bag.UISchema.Elements, model.KindTitle, model.KindField, model.KindButton)
	if _, ok := bag.Data["rememberMe"]; ok {
		t.Fatalf("rememberMe data should be removed")
	}
}

func TestIdentifyPIVPlacement(t *testing.T) {
	tx := identifyTx(identifierInput)
	tx.NeededToProceed = []idx.NextStep{{Name: "identify"}, {Name: "redirect-idp", Type: "X509"}}
	tx.AvailableSteps = []idx.NextStep{{Name: "currentAuthenticator-recover"}}

	primary := run(t, tx, config.Widget{PIV: &config.PIV{Text: "Smart card", ClassName: "custom"}})
	assertKinds(t, primary.UISchema.Elements,
		model.KindTitle, model.KindButton, model.KindDivider, model.KindField, model.KindButton, model.KindLink)
	piv := primary.UISchema.Elements[1].(*model.Button)
	if piv.Label != "Smart card" || piv.Options.Classes != "custom piv-button" || piv.IsSubmit() {
		t.Fatalf("unexpected PIV button %#v", piv.Options)
	}
	if piv.Options.OnClick == nil || piv.Options.OnClick.Action != model.IntentSwitchRemediation {
		t.Fatalf("PIV button should switch remediation, got %#v", piv.Options.OnClick)
	}

	secondary := run(t, tx, config.Widget{IDPDisplay: config.IDPDisplaySecondary})
	assertKinds(t, secondary.UISchema.Elements,
		model.KindTitle, model.KindField, model.KindButton, model.KindDivider, model.KindButton, model.KindLink)

	tx.AvailableSteps = nil
	unlinked := run(t, tx, config.Widget{IDPDisplay: config.IDPDisplaySecondary})
	els := unlinked.UISchema.Elements
	assertKinds(t, els, model.KindTitle, model.KindField, model.KindButton, model.KindDivider, model.KindButton)
	if !els[2].(*model.Button).IsSubmit() {
		t.Fatalf("form submit should precede the divider")
	}
	if got := els[4].(*model.Button).Options.DataSe; got != "piv-card-button" {
		t.Fatalf("last element should be the PIV button, got data-se %q", got)
	}
}

func passwordTx(name string) idx.Transaction {
	return idx.Transaction{
		NextStep: &idx.NextStep{
			Name: name,
			RelatesTo: &idx.RelatesTo{Value: idx.Authenticator{
				Key: "okta_password",
				Settings: &idx.PasswordSettings{
					Complexity: &idx.Complexity{MinLength: 8, MinNumber: 1, ExcludeAttributes: []string{"firstName"}},
					Age:        &idx.Age{HistoryCount: 4},
				},
			}},
			Inputs: []idx.Input{{Name: "credentials", Inputs: []idx.Input{{
				Name: "passcode", Type: "string", Secret: true, Required: true,
				Messages: []idx.Message{
					{Message: "too weak"},
					{Name: validation.ConfirmPasswordPath, Message: "does not match"},
				},
			}}}},
		},
		AvailableSteps: []idx.NextStep{{Name: "cancel"}},
		User:           &idx.User{Identifier: "alice@example.com", FirstName: "Alice"},
	}
}

func TestEnrollPassword(t *testing.T) {
	bag := run(t, passwordTx("enroll-authenticator"), config.Widget{})
	els := bag.UISchema.Elements

	assertKinds(t, els, model.KindTitle, model.KindPasswordRequirements, model.KindField, model.KindField, model.KindButton, model.KindLink)

	reqs := els[1].(*model.PasswordRequirements)
	var ruleKeys []string
	for _, item := range reqs.Options.Requirements {
		ruleKeys = append(ruleKeys, item.RuleKey)
	}
	if diff := cmp.Diff([]string{"minLength", "minNumber", "firstName", "historyCount"}, ruleKeys); diff != "" {
		t.Fatalf("requirements mismatch (-want +got):\n%s", diff)
	}
	if reqs.Options.FieldKey != "credentials.passcode" || reqs.Options.UserInfo.FirstName != "Alice" {
		t.Fatalf("unexpected requirement options %#v", reqs.Options)
	}

	password := els[2].(*model.Field)
	confirm := els[3].(*model.Field)
	if confirm.Name() != validation.ConfirmPasswordPath {
		t.Fatalf("confirm field = %q", confirm.Name())
	}
	if got := password.Options.InputMeta.Messages; len(got) != 1 || got[0].Message != "too weak" {
		t.Fatalf("password messages = %#v", got)
	}
	if got := confirm.Options.InputMeta.Messages; len(got) != 1 || got[0].Message != "does not match" {
		t.Fatalf("confirm messages = %#v", got)
	}
	for _, f := range []*model.Field{password, confirm} {
		if f.Options.Attributes["autocomplete"] != "new-password" {
			t.Fatalf("%s autocomplete = %q", f.Name(), f.Options.Attributes["autocomplete"])
		}
	}

	if rule := bag.DataSchema.Rules["credentials.passcode"]; rule.Name != validation.RulePasswordMatch {
		t.Fatalf("password rule = %q", rule.Name)
	}
	if diff := cmp.Diff([]string{validation.ConfirmPasswordPath}, bag.DataSchema.FieldsToExclude); diff != "" {
		t.Fatalf("excluded fields mismatch (-want +got):\n%s", diff)
	}
}

func TestExpiredPasswordKeepsSingleSubmit(t *testing.T) {
	bag := run(t, passwordTx("reenroll-authenticator"), config.Widget{BrandName: "Acme"})
	els := bag.UISchema.Elements

	assertKinds(t, els, model.KindTitle, model.KindPasswordRequirements, model.KindField, model.KindField, model.KindButton, model.KindLink)
	if got := textOf(t, els[0]); got != "password.expired.title.specific" {
		t.Fatalf("title = %q", got)
	}
	if n := layout.Count(bag.UISchema, layout.IsSubmitButton); n != 1 {
		t.Fatalf("expected one submit button, got %d", n)
	}
	if got := els[4].Base().Label; got != "password.expired.submit" {
		t.Fatalf("submit label = %q", got)
	}
}

func TestPhoneEnrollmentData(t *testing.T) {
	tx := idx.Transaction{NextStep: &idx.NextStep{
		Name:      "authenticator-enrollment-data",
		RelatesTo: &idx.RelatesTo{Value: idx.Authenticator{Key: "phone_number"}},
		Inputs: []idx.Input{{Name: "authenticator", Inputs: []idx.Input{
			{Name: "id", Value: "aut1", Mutable: boolPtr(false)},
			{Name: "methodType", Type: "string", Required: true, Options: []idx.Option{
				{Label: "Voice call", Value: "voice"},
				{Label: "SMS", Value: "sms"},
			}},
			{Name: "phoneNumber", Type: "string", Required: true},
		}}},
	}}
	bag := run(t, tx, config.Widget{})
	els := bag.UISchema.Elements

	assertKinds(t, els, model.KindTitle, model.KindDescription, model.KindField, model.KindField, model.KindButton)
	if got := els[4].Base().Label; got != "oie.phone.call.primaryButton" {
		t.Fatalf("submit label = %q", got)
	}
	if bag.Data["authenticator.methodType"] != "voice" || bag.Data["authenticator.phoneNumber"] != "+1" {
		t.Fatalf("unexpected defaults %#v", bag.Data)
	}
	if msgs := bag.DataSchema.Rules["authenticator.phoneNumber"].Validate(bag.Data); len(msgs) != 1 {
		t.Fatalf("bare country prefix should fail the phone rule, got %#v", msgs)
	}
}

func TestPhoneCodeEnrollmentDescriptionFollowsMethod(t *testing.T) {
	tx := idx.Transaction{NextStep: &idx.NextStep{
		Name:      "enroll-authenticator",
		RelatesTo: &idx.RelatesTo{Value: idx.Authenticator{Key: "phone_number", Methods: []idx.Method{{Type: "sms"}}}},
		Inputs:    []idx.Input{passcodeInput},
	}}
	bag := run(t, tx, config.Widget{})
	els := bag.UISchema.Elements

	assertKinds(t, els, model.KindTitle, model.KindDescription, model.KindDescription, model.KindField, model.KindButton)
	if got := textOf(t, els[1]); got != "next.phone.verify.sms.codeSentText" {
		t.Fatalf("description = %q", got)
	}
	if got := textOf(t, els[2]); got != "oie.phone.carrier.charges" {
		t.Fatalf("carrier description = %q", got)
	}
}

func TestChallengeEmailWithResend(t *testing.T) {
	tx := idx.Transaction{
		NextStep: &idx.NextStep{
			Name:      "challenge-authenticator",
			RelatesTo: &idx.RelatesTo{Value: idx.Authenticator{Key: "okta_email", Profile: map[string]string{"email": "a***@example.com"}}},
			Inputs:    []idx.Input{passcodeInput},
			CanResend: true,
		},
		AvailableSteps: []idx.NextStep{{Name: "select-authenticator-authenticate"}, {Name: "cancel"}},
	}
	bag := run(t, tx, config.Widget{})

	assertKinds(t, bag.UISchema.Elements,
		model.KindTitle, model.KindDescription, model.KindReminder, model.KindField, model.KindButton, model.KindLink, model.KindLink)
	reminder := bag.UISchema.Elements[2].(*model.Reminder)
	if reminder.Options.TimeoutMs != 30000 || reminder.Options.Intent.Step != "resend" {
		t.Fatalf("unexpected reminder %#v", reminder.Options)
	}
}

func TestEmailChallengeConsent(t *testing.T) {
	tx := idx.Transaction{NextStep: &idx.NextStep{
		Name: "email-challenge-consent",
		RequestInfo: []idx.RequestInfo{
			{Name: "appName", Value: "Dashboard"},
			{Name: "browser", Value: "<b>Chrome</b>"},
		},
		Inputs: []idx.Input{{Name: "consent", Type: "boolean"}},
	}}
	bag := run(t, tx, config.Widget{})
	els := bag.UISchema.Elements

	assertKinds(t, els, model.KindTitle, model.KindImageWithText, model.KindImageWithText, model.KindButton, model.KindButton)
	browser := els[1].(*model.ImageWithText)
	if browser.ID != "browser" || browser.Options.TextContent != "Chrome" {
		t.Fatalf("unexpected browser element %#v", browser)
	}
	deny, allow := els[3].(*model.Button), els[4].(*model.Button)
	if deny.Options.ActionParams["consent"] != false || allow.Options.ActionParams["consent"] != true {
		t.Fatalf("consent params: deny %v allow %v", deny.Options.ActionParams, allow.Options.ActionParams)
	}
	if deny.Options.Step != "email-challenge-consent" || deny.IsSubmit() || allow.IsSubmit() {
		t.Fatalf("consent buttons must be plain buttons on the current step")
	}
}

func TestDeviceChallengePollAppLinkUsesStepper(t *testing.T) {
	tx := idx.Transaction{NextStep: &idx.NextStep{
		Name:      "device-challenge-poll",
		RelatesTo: &idx.RelatesTo{Value: idx.Authenticator{ChallengeMethod: "APP_LINK", Href: "https://verify.example.com/launch"}},
	}}
	bag := run(t, tx, config.Widget{})
	els := bag.UISchema.Elements

	assertKinds(t, els, model.KindTitle, model.KindLayout)
	stepper := els[1].(*model.Layout)
	if stepper.Type != model.StepperLayout || len(stepper.Elements) != 2 {
		t.Fatalf("expected a two view stepper, got %#v", stepper)
	}
	waiting := stepper.Elements[0].(*model.Layout)
	launch := stepper.Elements[1].(*model.Layout)
	assertKinds(t, waiting.Elements, model.KindStepperNavigator, model.KindSpinner, model.KindLink)
	assertKinds(t, launch.Elements, model.KindDescription, model.KindAppLinkButton, model.KindLink)

	nav := waiting.Elements[0].(*model.StepperNavigator)
	if got := nav.Options.OnLoad; got.Action != model.IntentSetStepIndex || *got.StepIndex != 1 || got.DelayMs != 4000 {
		t.Fatalf("unexpected navigator intent %#v", got)
	}
	cancel := waiting.Elements[2].(*model.Link)
	if cancel.Options.Step != "authenticatorChallenge-cancel" || cancel.Options.ActionParams["reason"] != "USER_CANCELED" {
		t.Fatalf("unexpected polling cancel link %#v", cancel.Options)
	}
	for _, n := range launch.Elements {
		if vi := n.Base().ViewIndex; vi == nil || *vi != 1 {
			t.Fatalf("%s should belong to view 1", n.Kind())
		}
	}
}

func TestChallengePollShowsReminderBeforeFields(t *testing.T) {
	tx := idx.Transaction{NextStep: &idx.NextStep{
		Name:      "challenge-poll",
		Refresh:   2000,
		CanResend: true,
		Inputs:    []idx.Input{{Name: "autoChallenge", Label: "Send push automatically", Type: "boolean"}},
	}}
	bag := run(t, tx, config.Widget{})
	els := bag.UISchema.Elements

	assertKinds(t, els,
		model.KindTitle, model.KindDescription, model.KindStepperNavigator, model.KindSpinner,
		model.KindReminder, model.KindField, model.KindLink)
	nav := els[2].(*model.StepperNavigator)
	if got := nav.Options.OnLoad; got.Step != "challenge-poll" || got.DelayMs != 2000 {
		t.Fatalf("unexpected poll intent %#v", got)
	}
	if got := els[4].(*model.Reminder).Options.Content; got != "oie.okta_verify.push.resend.reminder" {
		t.Fatalf("reminder content = %q", got)
	}

	tx.NextStep.CanResend = false
	quiet := run(t, tx, config.Widget{})
	assertKinds(t, quiet.UISchema.Elements,
		model.KindTitle, model.KindDescription, model.KindStepperNavigator, model.KindSpinner,
		model.KindField, model.KindLink)
}

func TestChallengePhoneLayout(t *testing.T) {
	tx := idx.Transaction{
		NextStep: &idx.NextStep{
			Name: "challenge-authenticator",
			RelatesTo: &idx.RelatesTo{Value: idx.Authenticator{
				Key:     "phone_number",
				Methods: []idx.Method{{Type: "sms"}},
				Profile: map[string]string{"phoneNumber": "+1 XXX-XXX-4601"},
			}},
			Inputs:    []idx.Input{passcodeInput},
			CanResend: true,
		},
		AvailableSteps: []idx.NextStep{{Name: "select-authenticator-authenticate"}, {Name: "cancel"}},
	}
	bag := run(t, tx, config.Widget{})
	els := bag.UISchema.Elements

	assertKinds(t, els,
		model.KindTitle, model.KindDescription, model.KindReminder, model.KindField,
		model.KindButton, model.KindLink, model.KindLink)
	if got := textOf(t, els[1]); got != "oie.phone.verify.sms.sentText" {
		t.Fatalf("description = %q", got)
	}
	if got := els[2].(*model.Reminder).Options.Content; got != "oie.phone.verify.sms.reminder" {
		t.Fatalf("reminder content = %q", got)
	}
	if !els[4].(*model.Button).IsSubmit() {
		t.Fatalf("verify button should submit the step")
	}
	if got := els[5].(*model.Link).Options.Step; got != "select-authenticator-authenticate" {
		t.Fatalf("switch link step = %q", got)
	}
}

func TestSelectAuthenticatorAuthenticateLayout(t *testing.T) {
	tx := idx.Transaction{
		NextStep: &idx.NextStep{
			Name: "select-authenticator-authenticate",
			Inputs: []idx.Input{{Name: "authenticator", Options: []idx.Option{{
				Label:     "Phone",
				Value:     "phone_number",
				RelatesTo: &idx.Authenticator{ID: "aut2", Key: "phone_number", DisplayName: "+1 XXX-XXX-4601"},
				Inputs:    []idx.Input{{Name: "id", Value: "aut2"}, {Name: "methodType", Value: "sms"}},
			}}}},
		},
		AvailableSteps: []idx.NextStep{{Name: "cancel"}},
	}
	bag := run(t, tx, config.Widget{})
	els := bag.UISchema.Elements

	assertKinds(t, els, model.KindTitle, model.KindDescription, model.KindAuthenticatorButton, model.KindLink)
	button := els[2].(*model.AuthenticatorButton)
	want := map[string]any{"authenticator.id": "aut2", "authenticator.methodType": "sms"}
	if diff := cmp.Diff(want, button.Options.ActionParams); diff != "" {
		t.Fatalf("action params mismatch (-want +got):\n%s", diff)
	}
	if got := button.Options.CTALabel; got != "oie.verify.authenticator.button.text" {
		t.Fatalf("cta label = %q", got)
	}
	if _, ok := bag.Data["authenticator"]; ok {
		t.Fatalf("authenticator data should be dropped, got %v", bag.Data)
	}
}

func TestLaunchAuthenticatorCustomURI(t *testing.T) {
	challenge := idx.Authenticator{
		ChallengeMethod: "CUSTOM_URI",
		Href:            "oktaverify://launch",
		DownloadHref:    "https://apps.example.com/verify",
	}
	tx := idx.Transaction{NextStep: &idx.NextStep{
		Name: "launch-authenticator",
		RelatesTo: &idx.RelatesTo{Value: idx.Authenticator{
			ContextualData: &idx.ContextualData{Challenge: &idx.Challenge{Value: challenge}},
		}},
	}}
	bag := run(t, tx, config.Widget{})
	els := bag.UISchema.Elements

	assertKinds(t, els, model.KindTitle, model.KindDescription, model.KindAppLinkButton, model.KindDescription, model.KindLink, model.KindLink)
	if got := textOf(t, els[0]); got != "customUri.title" {
		t.Fatalf("title = %q", got)
	}
	if got := els[4].(*model.Link).Options.Href; got != challenge.DownloadHref {
		t.Fatalf("download href = %q", got)
	}
	if got := els[2].(*model.AppLinkButton).Options.Href; got != challenge.Href {
		t.Fatalf("launch href = %q", got)
	}
}

func selectEnrollTx(canSkip bool) idx.Transaction {
	return idx.Transaction{
		NextStep: &idx.NextStep{
			Name:    "select-authenticator-enroll",
			CanSkip: canSkip,
			Inputs: []idx.Input{{Name: "authenticator", Options: []idx.Option{{
				Label:     "Email",
				Value:     "okta_email",
				RelatesTo: &idx.Authenticator{ID: "aut1", Key: "okta_email"},
				Inputs:    []idx.Input{{Name: "id", Value: "aut1"}},
			}}}},
		},
		AvailableSteps: []idx.NextStep{{Name: "skip"}},
	}
}

func TestSelectAuthenticatorEnroll(t *testing.T) {
	bag := run(t, selectEnrollTx(true), config.Widget{BrandName: "Acme"})
	els := bag.UISchema.Elements

	assertKinds(t, els, model.KindTitle, model.KindDescription, model.KindDescription, model.KindAuthenticatorButton, model.KindButton)
	var got []string
	for _, n := range els[:3] {
		got = append(got, textOf(t, n))
	}
	want := []string{
		"oie.select.authenticators.enroll.title",
		"oie.select.authenticators.enroll.subtitle.custom",
		"oie.setup.optional",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}
	button := els[3].(*model.AuthenticatorButton)
	if button.Options.ActionParams["authenticator.id"] != "aut1" || button.Options.Key != "okta_email" {
		t.Fatalf("unexpected authenticator button %#v", button.Options)
	}
	if got := els[4].Base().Label; got != "oie.optional.authenticator.button.title" {
		t.Fatalf("skip label = %q", got)
	}

	required := run(t, selectEnrollTx(false), config.Widget{})
	assertKinds(t, required.UISchema.Elements, model.KindTitle, model.KindDescription, model.KindDescription, model.KindAuthenticatorButton)
}

func TestSelectAuthenticatorEnrollWithoutInput(t *testing.T) {
	tx := idx.Transaction{NextStep: &idx.NextStep{Name: "select-authenticator-enroll"}}
	bag := run(t, tx, config.Widget{})
	if len(bag.UISchema.Elements) != 0 {
		t.Fatalf("expected untouched layout, got %v", kinds(bag.UISchema.Elements))
	}
}

func TestRedirects(t *testing.T) {
	idp := run(t, idx.Transaction{NextStep: &idx.NextStep{Name: "redirect-idp", Href: "https://idp.example.com/sso"}}, config.Widget{})
	assertKinds(t, idp.UISchema.Elements, model.KindRedirect)

	success := run(t, idx.Transaction{NextStep: &idx.NextStep{Name: "success-redirect", Href: "https://app.example.com"}}, config.Widget{})
	assertKinds(t, success.UISchema.Elements, model.KindSpinner, model.KindRedirect)
	if got := success.UISchema.Elements[1].(*model.Redirect).Options.URL; got != "https://app.example.com" {
		t.Fatalf("redirect url = %q", got)
	}
}

func TestTerminal(t *testing.T) {
	tx := idx.Transaction{Messages: []idx.Message{
		{Message: "Your account is <b>locked</b>.<script>alert(1)</script>", Class: "ERROR"},
		{Message: "  "},
	}}
	bag := run(t, tx, config.Widget{})
	els := bag.UISchema.Elements

	assertKinds(t, els, model.KindTitle, model.KindTextWithHTML, model.KindLink)
	if got := textOf(t, els[0]); got != "oform.errorbanner.title" {
		t.Fatalf("title = %q", got)
	}
	if got := textOf(t, els[1]); got != "Your account is <b>locked</b>." {
		t.Fatalf("message = %q", got)
	}
}

func TestUnknownStepKeepsMappedFields(t *testing.T) {
	tx := idx.Transaction{NextStep: &idx.NextStep{Name: "mystery-step", Inputs: []idx.Input{identifierInput}}}
	env := model.Env{Transaction: tx, Loc: i18n.Keys}
	bag, err := fields.MapInputs(model.NewFormBag(), env)
	if err != nil {
		t.Fatalf("map inputs: %v", err)
	}
	mapped := kinds(bag.UISchema.Elements)

	transform, ok := steps.For(tx)
	if ok {
		t.Fatalf("unknown step reported as known")
	}
	out, err := transform(bag, env)
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	if diff := cmp.Diff(mapped, kinds(out.UISchema.Elements)); diff != "" {
		t.Fatalf("elements changed (-want +got):\n%s", diff)
	}
}
