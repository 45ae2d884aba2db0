package model

// IntentAction names what the renderer should do when an intent fires.
type IntentAction string

const (
	IntentSubmit            IntentAction = "submit"
	IntentSetStepIndex      IntentAction = "setStepIndex"
	IntentSwitchRemediation IntentAction = "switchRemediation"
	IntentPoll              IntentAction = "poll"
)

// Intent is a declarative instruction embedded in node options. The
// renderer interprets it; the pipeline never schedules or executes it.
type Intent struct {
	Action    IntentAction   `json:"action"`
	Step      string         `json:"step,omitempty"`
	Params    map[string]any `json:"params,omitempty"`
	StepIndex *int           `json:"stepIndex,omitempty"`
	DelayMs   int            `json:"delayMs,omitempty"`
}

// Clone deep copies the intent. A nil intent clones to nil.
func (i *Intent) Clone() *Intent {
	if i == nil {
		return nil
	}
	out := *i
	out.Params = cloneParams(i.Params)
	if i.StepIndex != nil {
		v := *i.StepIndex
		out.StepIndex = &v
	}
	return &out
}

// SubmitIntent submits to step with params.
func SubmitIntent(step string, params map[string]any) *Intent {
	return &Intent{Action: IntentSubmit, Step: step, Params: params}
}

// SetStepIndexIntent switches the enclosing stepper to index after delayMs.
func SetStepIndexIntent(index, delayMs int) *Intent {
	return &Intent{Action: IntentSetStepIndex, StepIndex: &index, DelayMs: delayMs}
}

// SwitchRemediationIntent asks the renderer to continue with another
// remediation of the same transaction.
func SwitchRemediationIntent(step string) *Intent {
	return &Intent{Action: IntentSwitchRemediation, Step: step}
}

// PollIntent asks the renderer to poll step every delayMs.
func PollIntent(step string, delayMs int) *Intent {
	return &Intent{Action: IntentPoll, Step: step, DelayMs: delayMs}
}
