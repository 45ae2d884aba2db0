package model

import (
	"github.com/goliatone/go-authform/pkg/idx"
)

// Kind is the discriminator of a UI node.
type Kind string

const (
	KindLayout               Kind = "Layout"
	KindField                Kind = "Field"
	KindButton               Kind = "Button"
	KindTitle                Kind = "Title"
	KindHeading              Kind = "Heading"
	KindDescription          Kind = "Description"
	KindTextWithHTML         Kind = "TextWithHtml"
	KindList                 Kind = "List"
	KindLink                 Kind = "Link"
	KindImageWithText        Kind = "ImageWithText"
	KindSpinner              Kind = "Spinner"
	KindPasswordRequirements Kind = "PasswordRequirements"
	KindAuthenticatorButton  Kind = "AuthenticatorButton"
	KindStepperButton        Kind = "StepperButton"
	KindStepperNavigator     Kind = "StepperNavigator"
	KindAppLinkButton        Kind = "AppLinkButton"
	KindReminder             Kind = "Reminder"
	KindDivider              Kind = "Divider"
	KindInfoBox              Kind = "InfoBox"
	KindRedirect             Kind = "Redirect"
)

// Message is a server or client generated message attached to a field.
type Message = idx.Message

// Node is implemented by every UI node variant. The set of variants is
// closed: the unexported marker keeps types outside this package from
// satisfying it, and each variant supplies its own Clone.
type Node interface {
	Kind() Kind
	Base() *Element
	Clone() Node
	isNode()
}

// Element carries the members common to every node.
type Element struct {
	ID          string `json:"id,omitempty"`
	Key         string `json:"key,omitempty"`
	Label       string `json:"label,omitempty"`
	Focus       bool   `json:"focus,omitempty"`
	ContentType string `json:"contentType,omitempty"`
	ViewIndex   *int   `json:"viewIndex,omitempty"`
}

// Base exposes the common members for in-place edits.
func (e *Element) Base() *Element { return e }

func (*Element) isNode() {}

func (e Element) clone() Element {
	out := e
	if e.ViewIndex != nil {
		v := *e.ViewIndex
		out.ViewIndex = &v
	}
	return out
}

// LayoutType controls the presentation axis of a layout.
type LayoutType string

const (
	VerticalLayout   LayoutType = "VerticalLayout"
	HorizontalLayout LayoutType = "HorizontalLayout"
	StepperLayout    LayoutType = "Stepper"
)

// Layout is the container node. The root of every uischema is a Layout.
type Layout struct {
	Element
	Type     LayoutType    `json:"-"`
	Elements []Node        `json:"elements"`
	Options  LayoutOptions `json:"options"`
}

// LayoutOptions configures stepper layouts.
type LayoutOptions struct {
	DefaultStepIndex *int `json:"defaultStepIndex,omitempty"`
}

// NewLayout returns a layout of type t holding elements.
func NewLayout(t LayoutType, elements ...Node) *Layout {
	if elements == nil {
		elements = []Node{}
	}
	return &Layout{Type: t, Elements: elements}
}

func (l *Layout) Kind() Kind  { return KindLayout }
func (l *Layout) Clone() Node { return l.CloneLayout() }

// CloneLayout deep copies the layout and every descendant.
func (l *Layout) CloneLayout() *Layout {
	if l == nil {
		return nil
	}
	out := &Layout{
		Element:  l.Element.clone(),
		Type:     l.Type,
		Elements: make([]Node, len(l.Elements)),
		Options:  l.Options,
	}
	if l.Options.DefaultStepIndex != nil {
		v := *l.Options.DefaultStepIndex
		out.Options.DefaultStepIndex = &v
	}
	for i, child := range l.Elements {
		if child != nil {
			out.Elements[i] = child.Clone()
		}
	}
	return out
}

// ChoiceOption is a selectable value of a choice field.
type ChoiceOption struct {
	Label string `json:"label"`
	Value any    `json:"value"`
}

// FieldOptions holds the presentation attributes of a field.
type FieldOptions struct {
	InputMeta       *idx.Input        `json:"inputMeta,omitempty"`
	Format          string            `json:"format,omitempty"`
	Type            string            `json:"type,omitempty"`
	Attributes      map[string]string `json:"attributes,omitempty"`
	DefaultOption   any               `json:"defaultOption,omitempty"`
	CustomOptions   []ChoiceOption    `json:"customOptions,omitempty"`
	Hint            string            `json:"hint,omitempty"`
	Placeholder     string            `json:"placeholder,omitempty"`
	Required        bool              `json:"required,omitempty"`
	AriaDescribedBy string            `json:"ariaDescribedBy,omitempty"`
	DataSe          string            `json:"dataSe,omitempty"`
}

// Field is an input bound to a dot-path of the data record.
type Field struct {
	Element
	Dir     string       `json:"dir,omitempty"`
	Options FieldOptions `json:"options"`
}

func (f *Field) Kind() Kind { return KindField }

func (f *Field) Clone() Node {
	out := *f
	out.Element = f.Element.clone()
	if f.Options.InputMeta != nil {
		meta := f.Options.InputMeta.Clone()
		out.Options.InputMeta = &meta
	}
	if f.Options.Attributes != nil {
		out.Options.Attributes = make(map[string]string, len(f.Options.Attributes))
		for k, v := range f.Options.Attributes {
			out.Options.Attributes[k] = v
		}
	}
	if f.Options.CustomOptions != nil {
		out.Options.CustomOptions = append([]ChoiceOption(nil), f.Options.CustomOptions...)
	}
	return &out
}

// Name returns the dot-path of the field or "" when inputMeta is missing.
func (f *Field) Name() string {
	if f == nil || f.Options.InputMeta == nil {
		return ""
	}
	return f.Options.InputMeta.Name
}

// SetAttribute sets an HTML attribute on the field.
func (f *Field) SetAttribute(name, value string) {
	if f.Options.Attributes == nil {
		f.Options.Attributes = make(map[string]string)
	}
	f.Options.Attributes[name] = value
}

// ButtonType is the HTML type of a button.
type ButtonType string

const (
	ButtonSubmit ButtonType = "submit"
	ButtonButton ButtonType = "button"
	ButtonReset  ButtonType = "reset"
)

// ActionOptions identify the remediation a control submits to.
type ActionOptions struct {
	Step         string         `json:"step,omitempty"`
	IsActionStep bool           `json:"isActionStep,omitempty"`
	ActionParams map[string]any `json:"actionParams,omitempty"`
	IncludeData  bool           `json:"includeData,omitempty"`
}

// Clone copies the action params.
func (a ActionOptions) Clone() ActionOptions {
	out := a
	out.ActionParams = cloneParams(a.ActionParams)
	return out
}

// ButtonOptions configures a Button node.
type ButtonOptions struct {
	ActionOptions
	Type         ButtonType `json:"type"`
	Variant      string     `json:"variant,omitempty"`
	Wide         bool       `json:"wide,omitempty"`
	DataType     string     `json:"dataType,omitempty"`
	DataSe       string     `json:"dataSe,omitempty"`
	Classes      string     `json:"classes,omitempty"`
	StepToRender string     `json:"stepToRender,omitempty"`
	AriaLabel    string     `json:"ariaLabel,omitempty"`
	OnClick      *Intent    `json:"onClick,omitempty"`
}

// Button is a clickable control. Submit buttons drive DataSchema.Submit.
type Button struct {
	Element
	Options ButtonOptions `json:"options"`
}

// NewSubmitButton returns a submit button labelled label.
func NewSubmitButton(label string) *Button {
	return &Button{
		Element: Element{Label: label},
		Options: ButtonOptions{Type: ButtonSubmit},
	}
}

func (b *Button) Kind() Kind { return KindButton }

func (b *Button) Clone() Node {
	out := *b
	out.Element = b.Element.clone()
	out.Options.ActionOptions = b.Options.ActionOptions.Clone()
	out.Options.OnClick = b.Options.OnClick.Clone()
	return &out
}

// IsSubmit reports whether the button submits the form.
func (b *Button) IsSubmit() bool {
	return b != nil && b.Options.Type == ButtonSubmit
}

// TextOptions holds the content of plain text nodes.
type TextOptions struct {
	Content string `json:"content"`
}

// Title is the heading of a step.
type Title struct {
	Element
	Options TextOptions `json:"options"`
}

func (t *Title) Kind() Kind { return KindTitle }
func (t *Title) Clone() Node {
	out := *t
	out.Element = t.Element.clone()
	return &out
}

// TextContent returns the displayed text.
func (t *Title) TextContent() string { return t.Options.Content }

// HeadingOptions holds the content and level of a heading.
type HeadingOptions struct {
	Content string `json:"content"`
	Level   int    `json:"level,omitempty"`
}

// Heading is a secondary heading.
type Heading struct {
	Element
	Options HeadingOptions `json:"options"`
}

func (h *Heading) Kind() Kind { return KindHeading }
func (h *Heading) Clone() Node {
	out := *h
	out.Element = h.Element.clone()
	return &out
}
func (h *Heading) TextContent() string { return h.Options.Content }

// Description is informational text.
type Description struct {
	Element
	Options TextOptions `json:"options"`
}

func (d *Description) Kind() Kind { return KindDescription }
func (d *Description) Clone() Node {
	out := *d
	out.Element = d.Element.clone()
	return &out
}
func (d *Description) TextContent() string { return d.Options.Content }

// TextWithHTML carries sanitised markup.
type TextWithHTML struct {
	Element
	Options TextOptions `json:"options"`
}

func (t *TextWithHTML) Kind() Kind { return KindTextWithHTML }
func (t *TextWithHTML) Clone() Node {
	out := *t
	out.Element = t.Element.clone()
	return &out
}
func (t *TextWithHTML) TextContent() string { return t.Options.Content }

// TextNode is implemented by nodes that display a single text content.
type TextNode interface {
	Node
	TextContent() string
}

// ListOptions holds list items.
type ListOptions struct {
	Items       []string `json:"items"`
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
}

// List renders an ordered or unordered list of text items.
type List struct {
	Element
	Options ListOptions `json:"options"`
}

func (l *List) Kind() Kind { return KindList }
func (l *List) Clone() Node {
	out := *l
	out.Element = l.Element.clone()
	out.Options.Items = append([]string(nil), l.Options.Items...)
	return &out
}

// LinkOptions configures a link. A link either navigates to Href or
// invokes the remediation named by its action options.
type LinkOptions struct {
	ActionOptions
	Label   string  `json:"label"`
	Href    string  `json:"href,omitempty"`
	DataSe  string  `json:"dataSe,omitempty"`
	OnClick *Intent `json:"onClick,omitempty"`
}

// Link is a navigation element.
type Link struct {
	Element
	Options LinkOptions `json:"options"`
}

func (l *Link) Kind() Kind { return KindLink }
func (l *Link) Clone() Node {
	out := *l
	out.Element = l.Element.clone()
	out.Options.ActionOptions = l.Options.ActionOptions.Clone()
	out.Options.OnClick = l.Options.OnClick.Clone()
	return &out
}

// ImageWithTextOptions pairs an icon name with sanitised text.
type ImageWithTextOptions struct {
	Icon        string `json:"icon"`
	TextContent string `json:"textContent"`
}

// ImageWithText renders an icon next to text.
type ImageWithText struct {
	Element
	Options ImageWithTextOptions `json:"options"`
}

func (i *ImageWithText) Kind() Kind { return KindImageWithText }
func (i *ImageWithText) Clone() Node {
	out := *i
	out.Element = i.Element.clone()
	return &out
}

// SpinnerOptions is reserved for renderer hints.
type SpinnerOptions struct {
	Label string `json:"label,omitempty"`
}

// Spinner signals pending background work such as polling.
type Spinner struct {
	Element
	Options SpinnerOptions `json:"options"`
}

func (s *Spinner) Kind() Kind { return KindSpinner }
func (s *Spinner) Clone() Node {
	out := *s
	out.Element = s.Element.clone()
	return &out
}

// UserInfo identifies the user for password requirement checks.
type UserInfo struct {
	Identifier string `json:"identifier,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
}

// RequirementItem is one password requirement line.
type RequirementItem struct {
	RuleKey string `json:"ruleKey"`
	Label   string `json:"label"`
}

// PasswordRequirementsOptions configures live password requirement checks.
type PasswordRequirementsOptions struct {
	Header            string                `json:"header"`
	UserInfo          UserInfo              `json:"userInfo"`
	Settings          *idx.PasswordSettings `json:"settings,omitempty"`
	Requirements      []RequirementItem     `json:"requirements"`
	FieldKey          string                `json:"fieldKey"`
	ValidationDelayMs int                   `json:"validationDelayMs"`
}

// PasswordRequirements lists the policy the password field must satisfy.
type PasswordRequirements struct {
	Element
	Options PasswordRequirementsOptions `json:"options"`
}

func (p *PasswordRequirements) Kind() Kind { return KindPasswordRequirements }
func (p *PasswordRequirements) Clone() Node {
	out := *p
	out.Element = p.Element.clone()
	out.Options.Requirements = append([]RequirementItem(nil), p.Options.Requirements...)
	if p.Options.Settings != nil {
		settings := *p.Options.Settings
		if settings.Complexity != nil {
			complexity := *settings.Complexity
			complexity.ExcludeAttributes = append([]string(nil), complexity.ExcludeAttributes...)
			settings.Complexity = &complexity
		}
		if settings.Age != nil {
			age := *settings.Age
			settings.Age = &age
		}
		out.Options.Settings = &settings
	}
	return &out
}

// AuthenticatorButtonOptions describes one authenticator choice.
type AuthenticatorButtonOptions struct {
	ActionOptions
	Key         string `json:"key"`
	CTALabel    string `json:"ctaLabel"`
	Description string `json:"description,omitempty"`
	DataSe      string `json:"dataSe,omitempty"`
}

// AuthenticatorButton selects an authenticator to enroll or verify.
type AuthenticatorButton struct {
	Element
	Options AuthenticatorButtonOptions `json:"options"`
}

func (a *AuthenticatorButton) Kind() Kind { return KindAuthenticatorButton }
func (a *AuthenticatorButton) Clone() Node {
	out := *a
	out.Element = a.Element.clone()
	out.Options.ActionOptions = a.Options.ActionOptions.Clone()
	return &out
}

// StepperButtonOptions moves a stepper to another view.
type StepperButtonOptions struct {
	NextStepIndex int    `json:"nextStepIndex"`
	Variant       string `json:"variant,omitempty"`
}

// StepperButton switches the active view of the enclosing stepper.
type StepperButton struct {
	Element
	Options StepperButtonOptions `json:"options"`
}

func (s *StepperButton) Kind() Kind { return KindStepperButton }
func (s *StepperButton) Clone() Node {
	out := *s
	out.Element = s.Element.clone()
	return &out
}

// StepperNavigatorOptions holds the intent run when the view loads.
type StepperNavigatorOptions struct {
	OnLoad *Intent `json:"onLoad,omitempty"`
}

// StepperNavigator is an invisible node that runs its intent when the
// enclosing view loads.
type StepperNavigator struct {
	Element
	Options StepperNavigatorOptions `json:"options"`
}

func (s *StepperNavigator) Kind() Kind { return KindStepperNavigator }
func (s *StepperNavigator) Clone() Node {
	out := *s
	out.Element = s.Element.clone()
	out.Options.OnLoad = s.Options.OnLoad.Clone()
	return &out
}

// AppLinkButtonOptions launches a device authenticator.
type AppLinkButtonOptions struct {
	Step            string `json:"step"`
	Href            string `json:"href,omitempty"`
	ChallengeMethod string `json:"challengeMethod,omitempty"`
}

// AppLinkButton opens the authenticator app through a link.
type AppLinkButton struct {
	Element
	Options AppLinkButtonOptions `json:"options"`
}

func (a *AppLinkButton) Kind() Kind { return KindAppLinkButton }
func (a *AppLinkButton) Clone() Node {
	out := *a
	out.Element = a.Element.clone()
	return &out
}

// ReminderOptions configures a delayed resend prompt.
type ReminderOptions struct {
	Content   string  `json:"content"`
	LinkLabel string  `json:"linkLabel,omitempty"`
	TimeoutMs int     `json:"timeoutMs,omitempty"`
	Intent    *Intent `json:"intent,omitempty"`
}

// Reminder is shown after a timeout and offers to resend a challenge.
type Reminder struct {
	Element
	Options ReminderOptions `json:"options"`
}

func (r *Reminder) Kind() Kind { return KindReminder }
func (r *Reminder) Clone() Node {
	out := *r
	out.Element = r.Element.clone()
	out.Options.Intent = r.Options.Intent.Clone()
	return &out
}

// DividerOptions holds optional divider text.
type DividerOptions struct {
	Text string `json:"text,omitempty"`
}

// Divider separates groups of elements.
type Divider struct {
	Element
	Options DividerOptions `json:"options"`
}

func (d *Divider) Kind() Kind { return KindDivider }
func (d *Divider) Clone() Node {
	out := *d
	out.Element = d.Element.clone()
	return &out
}

// InfoBoxOptions carries a message and its severity class.
type InfoBoxOptions struct {
	Message Message `json:"message"`
	Class   string  `json:"class"`
}

// InfoBox renders a callout such as a form level error.
type InfoBox struct {
	Element
	Options InfoBoxOptions `json:"options"`
}

func (i *InfoBox) Kind() Kind { return KindInfoBox }
func (i *InfoBox) Clone() Node {
	out := *i
	out.Element = i.Element.clone()
	out.Options.Message = idx.CloneMessages([]Message{i.Options.Message})[0]
	return &out
}

// RedirectOptions holds the redirect target.
type RedirectOptions struct {
	URL string `json:"url"`
}

// Redirect instructs the renderer to navigate away.
type Redirect struct {
	Element
	Options RedirectOptions `json:"options"`
}

func (r *Redirect) Kind() Kind { return KindRedirect }
func (r *Redirect) Clone() Node {
	out := *r
	out.Element = r.Element.clone()
	return &out
}

// IsInteractive reports whether n can receive focus as a control.
func IsInteractive(n Node) bool {
	switch n.(type) {
	case *Field, *Button, *Link, *AuthenticatorButton, *StepperButton, *AppLinkButton:
		return true
	default:
		return false
	}
}

func cloneParams(in map[string]any) map[string]any {
	if in == nil {
		return nil
	}
	out := make(map[string]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
