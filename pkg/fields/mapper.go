// Package fields maps protocol inputs onto Field nodes. It flattens
// composite inputs, drops entries the user cannot edit, infers a UI format,
// records a structural schema used for default values and attaches server
// messages to the fields they target.
package fields

import (
	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/model"
)

// Option customises a Mapper.
type Option func(*Mapper)

// WithFormats replaces the format registry.
func WithFormats(reg *Registry) Option {
	return func(m *Mapper) {
		if reg != nil {
			m.formats = reg
		}
	}
}

// Mapper converts the inputs of the current remediation into fields.
type Mapper struct {
	formats *Registry
}

// NewMapper returns a mapper using the built-in format registry unless
// overridden.
func NewMapper(options ...Option) *Mapper {
	m := &Mapper{formats: NewRegistry()}
	for _, opt := range options {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

var defaultMapper = NewMapper()

// MapInputs maps the current remediation with the default mapper.
func MapInputs(bag model.FormBag, env model.Env) (model.FormBag, error) {
	return defaultMapper.Transform(bag, env)
}

// NewField builds a field for in with the default mapper.
func NewField(in idx.Input) *model.Field {
	return defaultMapper.Field(in)
}

// Transform appends one field per addressable leaf input to the root layout
// and seeds Data and Schema for it.
func (m *Mapper) Transform(bag model.FormBag, env model.Env) (model.FormBag, error) {
	step := env.Transaction.NextStep
	if step == nil {
		return bag, nil
	}

	var leaves []idx.Input
	for _, in := range Flatten(step.Inputs) {
		if Addressable(in) {
			leaves = append(leaves, in)
		}
	}
	if len(leaves) == 0 {
		return bag, nil
	}

	paths := make([]string, len(leaves))
	for i, in := range leaves {
		paths[i] = in.Name
	}
	messages, _ := AttachMessages(env.Transaction.Messages, paths)

	for _, in := range leaves {
		AddProperty(bag.Schema, in.Name, PropertySchema(in), in.Required)
		field := m.Field(in)
		if extra := messages[in.Name]; len(extra) > 0 {
			field.Options.InputMeta.Messages = append(field.Options.InputMeta.Messages, extra...)
		}
		bag.UISchema.Elements = append(bag.UISchema.Elements, field)
		bag.Data[in.Name] = DefaultValue(bag.Schema, in.Name)
	}
	return bag, nil
}

// Field builds the Field node for a single leaf input. The input is copied
// into inputMeta.
func (m *Mapper) Field(in idx.Input) *model.Field {
	meta := in.Clone()
	field := &model.Field{
		Element: model.Element{Label: in.Label},
		Options: model.FieldOptions{
			InputMeta: &meta,
			Format:    m.formats.Resolve(in),
			Type:      in.Type,
		},
	}
	if in.Secret {
		field.Options.Type = "password"
	}
	for _, opt := range in.Options {
		field.Options.CustomOptions = append(field.Options.CustomOptions, model.ChoiceOption{
			Label: opt.Label,
			Value: opt.Value,
		})
	}
	return field
}
