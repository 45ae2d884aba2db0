package model

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
)

// SubmitKey is the reserved data schema key holding submit options.
const SubmitKey = "submit"

// ValidateFunc inspects submission data and returns the messages it finds.
// A nil or empty result means the data is valid.
type ValidateFunc func(data map[string]any) []Message

// Rule is a named validation closure stored under a field dot-path.
type Rule struct {
	Name     string       `json:"rule"`
	Validate ValidateFunc `json:"-"`
}

// DataSchema maps field dot-paths to rules and holds the submit options.
type DataSchema struct {
	Rules           map[string]Rule
	Submit          *ActionOptions
	FieldsToExclude []string
}

// MarshalJSON flattens the schema into a single object keyed by dot-path,
// plus the reserved submit and fieldsToExclude members.
func (d DataSchema) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Rules)+2)
	for path, rule := range d.Rules {
		out[path] = rule
	}
	if d.Submit != nil {
		out[SubmitKey] = d.Submit
	}
	if len(d.FieldsToExclude) > 0 {
		out["fieldsToExclude"] = d.FieldsToExclude
	}
	return json.Marshal(out)
}

// Clone copies rules, submit options and exclusions.
func (d DataSchema) Clone() DataSchema {
	out := DataSchema{
		Rules:           make(map[string]Rule, len(d.Rules)),
		FieldsToExclude: append([]string(nil), d.FieldsToExclude...),
	}
	for path, rule := range d.Rules {
		out.Rules[path] = rule
	}
	if d.Submit != nil {
		submit := d.Submit.Clone()
		out.Submit = &submit
	}
	return out
}

// Excluded reports whether path is never sent to the server.
func (d DataSchema) Excluded(path string) bool {
	for _, p := range d.FieldsToExclude {
		if p == path {
			return true
		}
	}
	return false
}

// FormBag is the working value and the result of one pipeline run.
type FormBag struct {
	// Schema is the structural data shape. It is only read for default
	// value inference and is shared between clones.
	Schema           *openapi3.Schema `json:"schema"`
	UISchema         *Layout          `json:"uischema"`
	Data             map[string]any   `json:"data"`
	DataSchema       DataSchema       `json:"dataSchema"`
	FieldsToValidate []string         `json:"fieldsToValidate"`
}

// NewFormBag returns an empty bag with a vertical root layout.
func NewFormBag() FormBag {
	return FormBag{
		Schema:           openapi3.NewObjectSchema(),
		UISchema:         NewLayout(VerticalLayout),
		Data:             make(map[string]any),
		DataSchema:       DataSchema{Rules: make(map[string]Rule)},
		FieldsToValidate: []string{},
	}
}

// Clone returns a bag that shares nothing mutable with b except Schema.
func (b FormBag) Clone() FormBag {
	out := FormBag{
		Schema:           b.Schema,
		UISchema:         b.UISchema.CloneLayout(),
		Data:             make(map[string]any, len(b.Data)),
		DataSchema:       b.DataSchema.Clone(),
		FieldsToValidate: append([]string{}, b.FieldsToValidate...),
	}
	if out.UISchema == nil {
		out.UISchema = NewLayout(VerticalLayout)
	}
	for k, v := range b.Data {
		out.Data[k] = v
	}
	return out
}
