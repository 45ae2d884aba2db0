// Package prompt fills a form bag from the terminal. Fields are asked in
// layout order and the answers are checked against the bag's compiled
// rules until they pass or the attempts run out.
package prompt

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/goliatone/go-authform/internal/logging"
	"github.com/goliatone/go-authform/pkg/fields"
	"github.com/goliatone/go-authform/pkg/i18n"
	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/layout"
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/validation"
)

const defaultMaxAttempts = 3

// Option customises a Filler.
type Option func(*Filler)

// WithTranslator resolves labels and message keys.
func WithTranslator(loc i18n.Func) Option {
	return func(f *Filler) {
		if loc != nil {
			f.loc = loc
		}
	}
}

// WithMaxAttempts bounds how many validation rounds Fill runs.
func WithMaxAttempts(n int) Option {
	return func(f *Filler) {
		if n > 0 {
			f.maxAttempts = n
		}
	}
}

// WithLogger injects the logger used for prompt diagnostics.
func WithLogger(logger logging.Logger) Option {
	return func(f *Filler) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// Filler asks a Driver for every field of a form bag.
type Filler struct {
	driver      Driver
	loc         i18n.Func
	logger      logging.Logger
	maxAttempts int
}

// NewFiller returns a filler that prompts through driver.
func NewFiller(driver Driver, options ...Option) *Filler {
	f := &Filler{
		driver:      driver,
		loc:         i18n.Keys,
		logger:      logging.Nop(),
		maxAttempts: defaultMaxAttempts,
	}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}
	return f
}

// Fill prompts for each field and returns the resulting data record. The
// bag's own data seeds the defaults. Server messages attached to a field
// are shown before its first prompt.
func (f *Filler) Fill(ctx context.Context, bag model.FormBag) (map[string]any, error) {
	data := make(map[string]any, len(bag.Data))
	for k, v := range bag.Data {
		data[k] = v
	}

	targets := layout.Fields(bag.UISchema)
	for attempt := 1; ; attempt++ {
		for _, field := range targets {
			if attempt == 1 {
				if err := f.showMessages(ctx, meta(field).Messages); err != nil {
					return nil, err
				}
			}
			if err := f.ask(ctx, field, data); err != nil {
				return nil, err
			}
		}

		result := validation.Validate(bag, data)
		if result.Valid {
			return data, nil
		}
		f.logger.Debug("prompt attempt %d failed validation for %d fields", attempt, len(result.Errors))
		if attempt >= f.maxAttempts {
			return data, model.NewError(ErrInvalidSubmission, "", map[string]any{
				"attempts": attempt,
				"fields":   failedFields(result),
			})
		}

		targets = targets[:0:0]
		for _, field := range layout.Fields(bag.UISchema) {
			msgs := result.Errors[field.Name()]
			if len(msgs) == 0 {
				continue
			}
			if err := f.showMessages(ctx, msgs); err != nil {
				return nil, err
			}
			targets = append(targets, field)
		}
	}
}

func (f *Filler) ask(ctx context.Context, field *model.Field, data map[string]any) error {
	name := field.Name()
	if name == "" {
		return nil
	}
	label := f.label(field)
	help := field.Options.Hint

	switch {
	case field.Options.Format == fields.FormatSelect:
		labels, values := choices(field)
		if len(labels) == 0 {
			return nil
		}
		def := 0
		for i, v := range values {
			if fmt.Sprint(v) == fmt.Sprint(data[name]) {
				def = i
				break
			}
		}
		choice, err := f.driver.Select(ctx, SelectConfig{Message: label, Options: labels, DefaultIndex: def, Help: help})
		if err != nil {
			return err
		}
		if choice < 0 || choice >= len(values) {
			return fmt.Errorf("prompt: %s: choice %d out of range", name, choice)
		}
		data[name] = values[choice]
	case field.Options.Format == fields.FormatToggle:
		def, _ := data[name].(bool)
		answer, err := f.driver.Confirm(ctx, ConfirmConfig{Message: label, Default: def, Help: help})
		if err != nil {
			return err
		}
		data[name] = answer
	case isSecret(field):
		answer, err := f.driver.Password(ctx, InputConfig{Message: label, Help: help})
		if err != nil {
			return err
		}
		data[name] = answer
	default:
		def := ""
		if v, ok := data[name]; ok && v != nil {
			def = fmt.Sprint(v)
		}
		answer, err := f.driver.Input(ctx, InputConfig{Message: label, Default: def, Help: help})
		if err != nil {
			return err
		}
		data[name] = strings.TrimSpace(answer)
	}
	return nil
}

func (f *Filler) label(field *model.Field) string {
	switch {
	case field.Label != "":
		return field.Label
	case meta(field).Label != "":
		return meta(field).Label
	default:
		return field.Name()
	}
}

func (f *Filler) showMessages(ctx context.Context, msgs []model.Message) error {
	for _, msg := range msgs {
		text := f.messageText(msg)
		if text == "" {
			continue
		}
		if err := f.driver.Info(ctx, "! "+text); err != nil {
			return err
		}
	}
	return nil
}

// messageText prefers a translated key and falls back to the server text.
func (f *Filler) messageText(msg model.Message) string {
	if msg.I18n != nil && msg.I18n.Key != "" {
		if text := f.loc(msg.I18n.Key, i18n.DefaultNamespace, msg.I18n.Params...); text != msg.I18n.Key {
			return text
		}
		if msg.Message == "" {
			return msg.I18n.Key
		}
	}
	return msg.Message
}

func choices(field *model.Field) ([]string, []any) {
	var labels []string
	var values []any
	if len(field.Options.CustomOptions) > 0 {
		for _, opt := range field.Options.CustomOptions {
			labels = append(labels, opt.Label)
			values = append(values, opt.Value)
		}
		return labels, values
	}
	for _, opt := range meta(field).Options {
		label := opt.Label
		if label == "" {
			label = fmt.Sprint(opt.Value)
		}
		labels = append(labels, label)
		values = append(values, opt.Value)
	}
	return labels, values
}

func isSecret(field *model.Field) bool {
	return meta(field).Secret || field.Options.Type == "password"
}

func meta(field *model.Field) idx.Input {
	if field.Options.InputMeta == nil {
		return idx.Input{}
	}
	return *field.Options.InputMeta
}

func failedFields(result validation.Result) []string {
	out := make([]string, 0, len(result.Errors))
	for name := range result.Errors {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
