// Package steps holds the step specific transformers. Each transformer
// builds the baseline layout of one remediation (title, informational text,
// interactive elements, then navigation links) from the transaction and the
// widget configuration. Dispatch goes through a static array indexed by the
// closed Step enumeration.
package steps

import (
	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/model"
)

// TerminalKey is resolved for transactions that carry messages but no
// remediation.
const TerminalKey = "terminal"

var registry = [numSteps]model.TransformerFunc{
	Identify:                        transformIdentify,
	EnrollPassword:                  transformEnrollPassword,
	ReenrollPassword:                transformExpiredPassword,
	PhoneEnrollmentData:             transformPhoneEnrollmentData,
	EnrollPhone:                     transformPhoneCodeEnrollment,
	ChallengePhone:                  transformChallengePhone,
	ChallengeEmail:                  transformChallengeEmail,
	EmailChallengeConsent:           transformEmailChallengeConsent,
	DeviceChallengePoll:             transformDeviceChallengePoll,
	LaunchAuthenticator:             transformDeviceChallengePoll,
	ChallengePoll:                   transformChallengePoll,
	SelectAuthenticatorEnroll:       transformSelectAuthenticatorEnroll,
	SelectAuthenticatorAuthenticate: transformSelectAuthenticatorAuthenticate,
	RedirectIDP:                     transformRedirect,
	SuccessRedirect:                 transformRedirect,
	Terminal:                        transformTerminal,
}

// Key returns the registry key of tx: "name:authenticatorKey" when such a
// step is registered, the bare name otherwise, and TerminalKey when only
// messages are left.
func Key(tx idx.Transaction) string {
	step := tx.NextStep
	if step == nil {
		if len(tx.Messages) > 0 {
			return TerminalKey
		}
		return ""
	}
	if authKey := step.AuthenticatorKey(); authKey != "" {
		qualified := step.Name + ":" + authKey
		if _, ok := Parse(qualified); ok {
			return qualified
		}
	}
	return step.Name
}

// Resolve returns the step of tx.
func Resolve(tx idx.Transaction) (Step, bool) {
	return Parse(Key(tx))
}

// Lookup returns the transformer of s. Out of range steps get the identity
// transformer.
func Lookup(s Step) model.TransformerFunc {
	if s < 0 || s >= numSteps || registry[s] == nil {
		return model.Identity
	}
	return registry[s]
}

// For returns the transformer for tx and whether the step is known. Unknown
// steps get the identity transformer so the mapped fields render as-is.
func For(tx idx.Transaction) (model.TransformerFunc, bool) {
	s, ok := Resolve(tx)
	if !ok {
		return model.Identity, false
	}
	return Lookup(s), true
}
