package fields

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-authform/pkg/idx"
)

// PropertySchema returns the structural schema of a leaf input.
func PropertySchema(in idx.Input) *openapi3.Schema {
	var schema *openapi3.Schema
	switch strings.ToLower(strings.TrimSpace(in.Type)) {
	case openapi3.TypeString:
		schema = openapi3.NewStringSchema()
		for _, opt := range in.Options {
			if opt.Value != nil {
				schema.Enum = append(schema.Enum, opt.Value)
			}
		}
	case openapi3.TypeBoolean:
		schema = openapi3.NewBoolSchema()
	case openapi3.TypeInteger:
		schema = openapi3.NewIntegerSchema()
	case openapi3.TypeNumber:
		schema = openapi3.NewFloat64Schema()
	default:
		schema = &openapi3.Schema{}
	}
	schema.Title = in.Label
	return schema
}

// AddProperty stores prop under the dot-path of root, creating object
// schemas for intermediate segments.
func AddProperty(root *openapi3.Schema, path string, prop *openapi3.Schema, required bool) {
	if root == nil || prop == nil {
		return
	}
	segments := strings.Split(path, ".")
	parent := root
	for i, segment := range segments {
		if segment == "" {
			return
		}
		if parent.Properties == nil {
			parent.Properties = make(openapi3.Schemas)
		}
		if i == len(segments)-1 {
			parent.Properties[segment] = openapi3.NewSchemaRef("", prop)
			if required && !contains(parent.Required, segment) {
				parent.Required = append(parent.Required, segment)
			}
			return
		}
		next, ok := parent.Properties[segment]
		if !ok || next == nil || next.Value == nil {
			next = openapi3.NewSchemaRef("", openapi3.NewObjectSchema())
			parent.Properties[segment] = next
		}
		parent = next.Value
	}
}

// Property returns the schema stored under the dot-path of root.
func Property(root *openapi3.Schema, path string) (*openapi3.Schema, bool) {
	current := root
	for _, segment := range strings.Split(path, ".") {
		if current == nil || current.Properties == nil {
			return nil, false
		}
		ref, ok := current.Properties[segment]
		if !ok || ref == nil || ref.Value == nil {
			return nil, false
		}
		current = ref.Value
	}
	return current, current != nil
}

// DefaultValue infers the initial data value of path from its schema type:
// "" for strings, false for booleans and nil otherwise.
func DefaultValue(root *openapi3.Schema, path string) any {
	prop, ok := Property(root, path)
	if !ok {
		return nil
	}
	switch schemaType(prop.Type) {
	case openapi3.TypeString:
		return ""
	case openapi3.TypeBoolean:
		return false
	default:
		return nil
	}
}

func schemaType(types *openapi3.Types) string {
	if types == nil {
		return ""
	}
	values := types.Slice()
	if len(values) != 1 {
		return ""
	}
	return values[0]
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
