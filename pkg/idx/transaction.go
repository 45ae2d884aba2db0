package idx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Transaction is the remediation state returned by the authentication
// protocol client. The pipeline treats it as read-only.
type Transaction struct {
	NextStep        *NextStep  `json:"nextStep,omitempty"`
	AvailableSteps  []NextStep `json:"availableSteps,omitempty"`
	NeededToProceed []NextStep `json:"neededToProceed,omitempty"`
	Messages        []Message  `json:"messages,omitempty"`
	User            *User      `json:"user,omitempty"`
}

// NextStep describes one remediation the user can act on.
type NextStep struct {
	Name        string        `json:"name"`
	Type        string        `json:"type,omitempty"`
	Href        string        `json:"href,omitempty"`
	Inputs      []Input       `json:"inputs,omitempty"`
	RelatesTo   *RelatesTo    `json:"relatesTo,omitempty"`
	CanSkip     bool          `json:"canSkip,omitempty"`
	CanResend   bool          `json:"canResend,omitempty"`
	Refresh     int           `json:"refresh,omitempty"`
	RequestInfo []RequestInfo `json:"requestInfo,omitempty"`
}

// RelatesTo links a remediation to the authenticator it operates on.
type RelatesTo struct {
	Type  string        `json:"type,omitempty"`
	Value Authenticator `json:"value"`
}

// Authenticator carries the authenticator payload embedded in a remediation.
// Only a subset of the protocol shape is modelled; unknown members are
// ignored during decoding.
type Authenticator struct {
	ID              string            `json:"id,omitempty"`
	Key             string            `json:"key,omitempty"`
	Type            string            `json:"type,omitempty"`
	DisplayName     string            `json:"displayName,omitempty"`
	Methods         []Method          `json:"methods,omitempty"`
	Settings        *PasswordSettings `json:"settings,omitempty"`
	Profile         map[string]string `json:"profile,omitempty"`
	ChallengeMethod string            `json:"challengeMethod,omitempty"`
	Href            string            `json:"href,omitempty"`
	DownloadHref    string            `json:"downloadHref,omitempty"`
	ContextualData  *ContextualData   `json:"contextualData,omitempty"`
}

// ContextualData wraps challenge payloads delivered outside the main value.
type ContextualData struct {
	Challenge *Challenge `json:"challenge,omitempty"`
}

// Challenge holds a nested device challenge payload.
type Challenge struct {
	Value Authenticator `json:"value"`
}

// Method is a delivery method offered by an authenticator (sms, voice, push).
type Method struct {
	Type string `json:"type"`
}

// RequestInfo is a name/value pair describing the requesting client.
type RequestInfo struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// User is the identity the transaction is acting for.
type User struct {
	Identifier string `json:"identifier,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
}

// PasswordSettings mirrors the password policy attached to password
// authenticators.
type PasswordSettings struct {
	Complexity *Complexity `json:"complexity,omitempty"`
	Age        *Age        `json:"age,omitempty"`
}

// Complexity lists the character class requirements of a password policy.
type Complexity struct {
	MinLength         int      `json:"minLength,omitempty"`
	MinLowerCase      int      `json:"minLowerCase,omitempty"`
	MinUpperCase      int      `json:"minUpperCase,omitempty"`
	MinNumber         int      `json:"minNumber,omitempty"`
	MinSymbol         int      `json:"minSymbol,omitempty"`
	ExcludeUsername   bool     `json:"excludeUsername,omitempty"`
	ExcludeAttributes []string `json:"excludeAttributes,omitempty"`
}

// Age lists history and minimum age requirements of a password policy.
type Age struct {
	MinAgeMinutes int `json:"minAgeMinutes,omitempty"`
	HistoryCount  int `json:"historyCount,omitempty"`
}

// Input describes one value the remediation expects. Mutable and Visible are
// pointers so "unspecified" can be told apart from an explicit false.
type Input struct {
	Name     string    `json:"name"`
	Label    string    `json:"label,omitempty"`
	Type     string    `json:"type,omitempty"`
	Required bool      `json:"required,omitempty"`
	Mutable  *bool     `json:"mutable,omitempty"`
	Visible  *bool     `json:"visible,omitempty"`
	Secret   bool      `json:"secret,omitempty"`
	Value    any       `json:"value,omitempty"`
	Inputs   []Input   `json:"inputs,omitempty"`
	Options  []Option  `json:"options,omitempty"`
	Messages []Message `json:"messages,omitempty"`
}

// IsMutable reports whether the input may be edited by the user.
func (in Input) IsMutable() bool {
	return in.Mutable == nil || *in.Mutable
}

// IsVisible reports whether the input should be displayed.
func (in Input) IsVisible() bool {
	return in.Visible == nil || *in.Visible
}

// Clone returns a deep copy of the input.
func (in Input) Clone() Input {
	out := in
	if in.Mutable != nil {
		v := *in.Mutable
		out.Mutable = &v
	}
	if in.Visible != nil {
		v := *in.Visible
		out.Visible = &v
	}
	if len(in.Inputs) > 0 {
		out.Inputs = make([]Input, len(in.Inputs))
		for i, nested := range in.Inputs {
			out.Inputs[i] = nested.Clone()
		}
	}
	if len(in.Options) > 0 {
		out.Options = make([]Option, len(in.Options))
		for i, opt := range in.Options {
			out.Options[i] = opt.Clone()
		}
	}
	if len(in.Messages) > 0 {
		out.Messages = CloneMessages(in.Messages)
	}
	return out
}

// Option is one entry of a finite choice input. Authenticator choices carry a
// nested form (Inputs) and the authenticator they relate to.
type Option struct {
	Label     string         `json:"label"`
	Value     any            `json:"value,omitempty"`
	Inputs    []Input        `json:"inputs,omitempty"`
	RelatesTo *Authenticator `json:"relatesTo,omitempty"`
}

// Clone returns a deep copy of the option.
func (o Option) Clone() Option {
	out := o
	if len(o.Inputs) > 0 {
		out.Inputs = make([]Input, len(o.Inputs))
		for i, in := range o.Inputs {
			out.Inputs[i] = in.Clone()
		}
	}
	if o.RelatesTo != nil {
		rel := *o.RelatesTo
		out.RelatesTo = &rel
	}
	return out
}

// NestedValue returns the constant value of the nested input called name.
func (o Option) NestedValue(name string) (any, bool) {
	for _, in := range o.Inputs {
		if in.Name == name {
			return in.Value, in.Value != nil
		}
	}
	return nil, false
}

// Message is a server or client generated message. Name, when set, targets
// a specific field by dot-path.
type Message struct {
	Name    string   `json:"name,omitempty"`
	Message string   `json:"message,omitempty"`
	Class   string   `json:"class,omitempty"`
	I18n    *I18nKey `json:"i18n,omitempty"`
}

// I18nKey references a translation entry plus its positional params.
type I18nKey struct {
	Key    string `json:"key"`
	Params []any  `json:"params,omitempty"`
}

// CloneMessages copies a message slice including translation params.
func CloneMessages(in []Message) []Message {
	if in == nil {
		return nil
	}
	out := make([]Message, len(in))
	for i, msg := range in {
		out[i] = msg
		if msg.I18n != nil {
			key := *msg.I18n
			key.Params = append([]any(nil), msg.I18n.Params...)
			out[i].I18n = &key
		}
	}
	return out
}

// AuthenticatorKey returns the key of the authenticator the step relates to.
func (s *NextStep) AuthenticatorKey() string {
	if s == nil || s.RelatesTo == nil {
		return ""
	}
	return s.RelatesTo.Value.Key
}

// Input returns the top-level input called name.
func (s *NextStep) Input(name string) (Input, bool) {
	if s == nil {
		return Input{}, false
	}
	for _, in := range s.Inputs {
		if in.Name == name {
			return in, true
		}
	}
	return Input{}, false
}

// RequestInfoValue returns the request info entry called name.
func (s *NextStep) RequestInfoValue(name string) (RequestInfo, bool) {
	if s == nil {
		return RequestInfo{}, false
	}
	for _, info := range s.RequestInfo {
		if info.Name == name {
			return info, true
		}
	}
	return RequestInfo{}, false
}

// StepName returns the name of the current remediation or "" when absent.
func (t Transaction) StepName() string {
	if t.NextStep == nil {
		return ""
	}
	return t.NextStep.Name
}

// HasAvailableStep reports whether an alternative step named name exists.
func (t Transaction) HasAvailableStep(name string) bool {
	for _, step := range t.AvailableSteps {
		if step.Name == name {
			return true
		}
	}
	return false
}

// Decode reads a JSON encoded transaction.
func Decode(r io.Reader) (Transaction, error) {
	if r == nil {
		return Transaction{}, fmt.Errorf("idx: reader is nil")
	}
	dec := json.NewDecoder(r)
	var tx Transaction
	if err := dec.Decode(&tx); err != nil {
		return Transaction{}, fmt.Errorf("idx: decode transaction: %w", err)
	}
	return tx, nil
}

// Parse decodes a transaction from raw JSON bytes.
func Parse(data []byte) (Transaction, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Transaction{}, fmt.Errorf("idx: transaction document is empty")
	}
	return Decode(bytes.NewReader(data))
}
