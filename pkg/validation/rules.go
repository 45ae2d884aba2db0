// Package validation compiles client side validation rules for form bags and
// runs them against submission data. Rules never produce user facing text;
// every message carries an i18n key that the renderer resolves.
package validation

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/model"
)

// Message keys emitted by the built-in rules.
const (
	BlankKey         = "model.validation.field.blank"
	PasswordMatchKey = "password.error.match"
)

// Rule names recorded on model.Rule.
const (
	RuleRequired      = "required"
	RulePasswordMatch = "passwordMatch"
	RulePhone         = "phone"
)

// ConfirmPasswordPath is the dot-path of the confirmation field added by
// password enrollment steps.
const ConfirmPasswordPath = "credentials.confirmPassword"

// IsBlank reports whether value counts as missing. Empty strings, nil and
// absent keys are blank; zero and false are not.
func IsBlank(data map[string]any, path string) bool {
	value, ok := data[path]
	if !ok || value == nil {
		return true
	}
	if s, isString := value.(string); isString {
		return s == ""
	}
	return false
}

func errorMessage(name, key string) model.Message {
	return model.Message{
		Name:  name,
		Class: "ERROR",
		I18n:  &idx.I18nKey{Key: key},
	}
}

// Required fails with a single blank message when path is blank.
func Required(path string) model.Rule {
	return model.Rule{
		Name: RuleRequired,
		Validate: func(data map[string]any) []model.Message {
			if IsBlank(data, path) {
				return []model.Message{errorMessage(path, BlankKey)}
			}
			return nil
		},
	}
}

// PasswordMatch checks a password and its confirmation together. Blank
// checks on either side take precedence; a mismatch is only reported on the
// confirmation and only when it is not blank.
func PasswordMatch(primary, confirm string) model.Rule {
	return model.Rule{
		Name: RulePasswordMatch,
		Validate: func(data map[string]any) []model.Message {
			var out []model.Message
			if IsBlank(data, primary) {
				out = append(out, errorMessage(primary, BlankKey))
			}
			switch {
			case IsBlank(data, confirm):
				out = append(out, errorMessage(confirm, BlankKey))
			case !equalValues(data[confirm], data[primary]):
				out = append(out, errorMessage(confirm, PasswordMatchKey))
			}
			return out
		},
	}
}

// Phone requires more than two characters, since phone values carry a
// "+<country>" prefix by default.
func Phone(path string) model.Rule {
	return model.Rule{
		Name: RulePhone,
		Validate: func(data map[string]any) []model.Message {
			if IsBlank(data, path) || len(strings.TrimSpace(fmt.Sprint(data[path]))) <= 2 {
				return []model.Message{errorMessage(path, BlankKey)}
			}
			return nil
		},
	}
}

func equalValues(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}
