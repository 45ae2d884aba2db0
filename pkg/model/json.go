package model

import (
	"bytes"
	"encoding/json"
)

// marshalTagged encodes v and prepends the discriminator member.
func marshalTagged(tag string, v any) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	head, err := json.Marshal(tag)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	buf.Grow(len(body) + len(head) + 8)
	buf.WriteString(`{"type":`)
	buf.Write(head)
	if rest := bytes.TrimSpace(body[1:]); len(rest) > 1 {
		buf.WriteByte(',')
		buf.Write(rest)
	} else {
		buf.WriteByte('}')
	}
	return buf.Bytes(), nil
}

func (l *Layout) MarshalJSON() ([]byte, error) {
	type alias Layout
	t := l.Type
	if t == "" {
		t = VerticalLayout
	}
	return marshalTagged(string(t), (*alias)(l))
}

func (f *Field) MarshalJSON() ([]byte, error) {
	type alias Field
	return marshalTagged(string(KindField), (*alias)(f))
}

func (b *Button) MarshalJSON() ([]byte, error) {
	type alias Button
	return marshalTagged(string(KindButton), (*alias)(b))
}

func (t *Title) MarshalJSON() ([]byte, error) {
	type alias Title
	return marshalTagged(string(KindTitle), (*alias)(t))
}

func (h *Heading) MarshalJSON() ([]byte, error) {
	type alias Heading
	return marshalTagged(string(KindHeading), (*alias)(h))
}

func (d *Description) MarshalJSON() ([]byte, error) {
	type alias Description
	return marshalTagged(string(KindDescription), (*alias)(d))
}

func (t *TextWithHTML) MarshalJSON() ([]byte, error) {
	type alias TextWithHTML
	return marshalTagged(string(KindTextWithHTML), (*alias)(t))
}

func (l *List) MarshalJSON() ([]byte, error) {
	type alias List
	return marshalTagged(string(KindList), (*alias)(l))
}

func (l *Link) MarshalJSON() ([]byte, error) {
	type alias Link
	return marshalTagged(string(KindLink), (*alias)(l))
}

func (i *ImageWithText) MarshalJSON() ([]byte, error) {
	type alias ImageWithText
	return marshalTagged(string(KindImageWithText), (*alias)(i))
}

func (s *Spinner) MarshalJSON() ([]byte, error) {
	type alias Spinner
	return marshalTagged(string(KindSpinner), (*alias)(s))
}

func (p *PasswordRequirements) MarshalJSON() ([]byte, error) {
	type alias PasswordRequirements
	return marshalTagged(string(KindPasswordRequirements), (*alias)(p))
}

func (a *AuthenticatorButton) MarshalJSON() ([]byte, error) {
	type alias AuthenticatorButton
	return marshalTagged(string(KindAuthenticatorButton), (*alias)(a))
}

func (s *StepperButton) MarshalJSON() ([]byte, error) {
	type alias StepperButton
	return marshalTagged(string(KindStepperButton), (*alias)(s))
}

func (s *StepperNavigator) MarshalJSON() ([]byte, error) {
	type alias StepperNavigator
	return marshalTagged(string(KindStepperNavigator), (*alias)(s))
}

func (a *AppLinkButton) MarshalJSON() ([]byte, error) {
	type alias AppLinkButton
	return marshalTagged(string(KindAppLinkButton), (*alias)(a))
}

func (r *Reminder) MarshalJSON() ([]byte, error) {
	type alias Reminder
	return marshalTagged(string(KindReminder), (*alias)(r))
}

func (d *Divider) MarshalJSON() ([]byte, error) {
	type alias Divider
	return marshalTagged(string(KindDivider), (*alias)(d))
}

func (i *InfoBox) MarshalJSON() ([]byte, error) {
	type alias InfoBox
	return marshalTagged(string(KindInfoBox), (*alias)(i))
}

func (r *Redirect) MarshalJSON() ([]byte, error) {
	type alias Redirect
	return marshalTagged(string(KindRedirect), (*alias)(r))
}
