package steps

//go:generate go tool stringer -type=Step -linecomment

// Step enumerates the remediations with a dedicated transformer. String
// returns the registry key.
type Step int

const (
	Identify                        Step = iota // identify
	EnrollPassword                              // enroll-authenticator:okta_password
	ReenrollPassword                            // reenroll-authenticator:okta_password
	PhoneEnrollmentData                         // authenticator-enrollment-data:phone_number
	EnrollPhone                                 // enroll-authenticator:phone_number
	ChallengePhone                              // challenge-authenticator:phone_number
	ChallengeEmail                              // challenge-authenticator:okta_email
	EmailChallengeConsent                       // email-challenge-consent
	DeviceChallengePoll                         // device-challenge-poll
	LaunchAuthenticator                         // launch-authenticator
	ChallengePoll                               // challenge-poll
	SelectAuthenticatorEnroll                   // select-authenticator-enroll
	SelectAuthenticatorAuthenticate             // select-authenticator-authenticate
	RedirectIDP                                 // redirect-idp
	SuccessRedirect                             // success-redirect
	Terminal                                    // terminal
	numSteps                                    // numSteps
)

// Steps returns every known step in declaration order.
func Steps() []Step {
	out := make([]Step, 0, numSteps)
	for s := Step(0); s < numSteps; s++ {
		out = append(out, s)
	}
	return out
}

// Parse returns the step registered under key.
func Parse(key string) (Step, bool) {
	for s := Step(0); s < numSteps; s++ {
		if s.String() == key {
			return s, true
		}
	}
	return 0, false
}

// Remediation names targeted by links and buttons.
const (
	remediationCancel              = "cancel"
	remediationSkip                = "skip"
	remediationRecover             = "currentAuthenticator-recover"
	remediationUnlockAccount       = "unlock-account"
	remediationEnrollProfile       = "select-enroll-profile"
	remediationPIVIDP              = "piv-idp"
	remediationResend              = "resend"
	remediationAuthenticatorCancel = "authenticatorChallenge-cancel"
	remediationSelectAuthenticator = "select-authenticator-authenticate"
)

// Delays handed to the renderer as data.
const (
	reminderTimeoutMs         = 30000
	passwordValidationDelayMs = 50
	fastpassFallbackTimeoutMs = 4000
)
