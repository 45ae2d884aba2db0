package validation

import (
	"github.com/goliatone/go-authform/pkg/model"
)

// Result captures the outcome of validating submission data.
type Result struct {
	Valid  bool                       `json:"valid"`
	Errors map[string][]model.Message `json:"errors,omitempty"`
}

// Validate runs the rules listed in FieldsToValidate against data. Messages
// are grouped by the field they name, falling back to the rule path.
func Validate(bag model.FormBag, data map[string]any) Result {
	result := Result{Valid: true}
	for _, path := range bag.FieldsToValidate {
		result.collect(bag, path, data)
	}
	result.Valid = len(result.Errors) == 0
	return result
}

// ValidateField runs only the rule stored under path, whether or not path
// is listed in FieldsToValidate. A path without a rule is valid.
func ValidateField(bag model.FormBag, path string, data map[string]any) Result {
	result := Result{Valid: true}
	result.collect(bag, path, data)
	result.Valid = len(result.Errors) == 0
	return result
}

func (r *Result) collect(bag model.FormBag, path string, data map[string]any) {
	rule, ok := bag.DataSchema.Rules[path]
	if !ok || rule.Validate == nil {
		return
	}
	for _, msg := range rule.Validate(data) {
		target := msg.Name
		if target == "" {
			target = path
		}
		if r.Errors == nil {
			r.Errors = make(map[string][]model.Message)
		}
		r.Errors[target] = append(r.Errors[target], msg)
	}
}
