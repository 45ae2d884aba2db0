package fields_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-authform/pkg/fields"
	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/layout"
	"github.com/goliatone/go-authform/pkg/model"
)

func boolPtr(v bool) *bool { return &v }

func mapStep(t *testing.T, step idx.NextStep, messages ...idx.Message) model.FormBag {
	t.Helper()
	env := model.Env{Transaction: idx.Transaction{NextStep: &step, Messages: messages}}
	bag, err := fields.MapInputs(model.NewFormBag(), env)
	if err != nil {
		t.Fatalf("map inputs: %v", err)
	}
	return bag
}

func fieldNames(bag model.FormBag) []string {
	var out []string
	for _, f := range layout.Fields(bag.UISchema) {
		out = append(out, f.Name())
	}
	return out
}

func TestMapInputs_CompositeLeavesInOrder(t *testing.T) {
	step := idx.NextStep{
		Name: "enroll-profile",
		Inputs: []idx.Input{
			{Name: "userProfile", Inputs: []idx.Input{
				{Name: "firstName", Type: "string", Required: true},
				{Name: "hidden", Type: "string", Visible: boolPtr(false)},
				{Name: "lastName", Type: "string"},
				{Name: "locked", Type: "string", Mutable: boolPtr(false), Value: "x"},
				{Name: "", Type: "string"},
				{Name: "email", Type: "string"},
			}},
			{Name: "stateHandle", Visible: boolPtr(false)},
		},
	}

	bag := mapStep(t, step)
	want := []string{"userProfile.firstName", "userProfile.lastName", "userProfile.email"}
	if diff := cmp.Diff(want, fieldNames(bag)); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if _, ok := bag.Data["userProfile.locked"]; ok {
		t.Fatalf("immutable input seeded data: %#v", bag.Data)
	}
}

func TestMapInputs_ParentFlagsInherited(t *testing.T) {
	step := idx.NextStep{
		Name: "x",
		Inputs: []idx.Input{
			{Name: "credentials", Mutable: boolPtr(false), Inputs: []idx.Input{{Name: "passcode"}}},
		},
	}
	if got := fieldNames(mapStep(t, step)); len(got) != 0 {
		t.Fatalf("expected immutable composite to be dropped, got %v", got)
	}
}

func TestMapInputs_FormatsAndDefaults(t *testing.T) {
	step := idx.NextStep{
		Name: "x",
		Inputs: []idx.Input{
			{Name: "identifier", Label: "Username"},
			{Name: "rememberMe", Type: "boolean"},
			{Name: "methodType", Type: "string", Options: []idx.Option{{Label: "SMS", Value: "sms"}, {Label: "Voice", Value: "voice"}}},
			{Name: "credentials", Inputs: []idx.Input{{Name: "passcode", Type: "string", Secret: true}}},
			{Name: "count", Type: "integer"},
		},
	}
	bag := mapStep(t, step)

	formats := map[string]string{}
	for _, f := range layout.Fields(bag.UISchema) {
		formats[f.Name()] = f.Options.Format
	}
	wantFormats := map[string]string{
		"identifier":           fields.FormatText,
		"rememberMe":           fields.FormatToggle,
		"methodType":           fields.FormatSelect,
		"credentials.passcode": fields.FormatText,
		"count":                fields.FormatText,
	}
	if diff := cmp.Diff(wantFormats, formats); diff != "" {
		t.Fatalf("formats mismatch (-want +got):\n%s", diff)
	}

	wantData := map[string]any{
		"identifier":           nil,
		"rememberMe":           false,
		"methodType":           "",
		"credentials.passcode": "",
		"count":                nil,
	}
	if diff := cmp.Diff(wantData, bag.Data); diff != "" {
		t.Fatalf("data mismatch (-want +got):\n%s", diff)
	}

	passcode := layout.FindField(bag.UISchema, "credentials.passcode")
	if passcode.Options.Type != "password" || !passcode.Options.InputMeta.Secret {
		t.Fatalf("secret input not marked as password: %#v", passcode.Options)
	}
	if _, ok := fields.Property(bag.Schema, "credentials.passcode"); !ok {
		t.Fatalf("nested schema property missing")
	}
	method := layout.FindField(bag.UISchema, "methodType")
	if len(method.Options.CustomOptions) != 2 || method.Options.CustomOptions[1].Value != "voice" {
		t.Fatalf("choice options not copied: %#v", method.Options.CustomOptions)
	}
	if layout.FindField(bag.UISchema, "identifier").Label != "Username" {
		t.Fatalf("label not copied")
	}
}

func TestMapInputs_AttachesServerMessages(t *testing.T) {
	step := idx.NextStep{
		Name:   "x",
		Inputs: []idx.Input{{Name: "identifier"}, {Name: "credentials", Inputs: []idx.Input{{Name: "passcode"}}}},
	}
	bag := mapStep(t, step,
		idx.Message{Name: "identifier", Message: "unknown user", Class: "ERROR"},
		idx.Message{Name: "passcode", Message: "too short", Class: "ERROR"},
		idx.Message{Message: "form level"},
	)

	id := layout.FindField(bag.UISchema, "identifier")
	if len(id.Options.InputMeta.Messages) != 1 || id.Options.InputMeta.Messages[0].Message != "unknown user" {
		t.Fatalf("identifier messages: %#v", id.Options.InputMeta.Messages)
	}
	pw := layout.FindField(bag.UISchema, "credentials.passcode")
	if len(pw.Options.InputMeta.Messages) != 1 || pw.Options.InputMeta.Messages[0].Message != "too short" {
		t.Fatalf("passcode messages: %#v", pw.Options.InputMeta.Messages)
	}
}

func TestMapInputs_NoStep(t *testing.T) {
	bag, err := fields.MapInputs(model.NewFormBag(), model.Env{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bag.UISchema.Elements) != 0 {
		t.Fatalf("expected no elements")
	}
}

func TestRegistry_CustomMatcherPriority(t *testing.T) {
	reg := fields.NewRegistry()
	reg.Register("phone", 100, func(in idx.Input) bool { return in.Name == "phoneNumber" })
	mapper := fields.NewMapper(fields.WithFormats(reg))

	if got := mapper.Field(idx.Input{Name: "phoneNumber", Type: "string"}).Options.Format; got != "phone" {
		t.Fatalf("format = %q, want phone", got)
	}
	if got := reg.Resolve(idx.Input{Name: "flag", Type: "boolean", Options: []idx.Option{{Label: "a"}}}); got != fields.FormatSelect {
		t.Fatalf("options should win over boolean, got %q", got)
	}

	root := model.NewLayout(model.VerticalLayout,
		&model.Field{Options: model.FieldOptions{InputMeta: &idx.Input{Name: "phoneNumber"}}},
		&model.Field{Options: model.FieldOptions{InputMeta: &idx.Input{Name: "x"}, Format: "custom"}},
	)
	reg.Apply(root)
	got := []string{root.Elements[0].(*model.Field).Options.Format, root.Elements[1].(*model.Field).Options.Format}
	if diff := cmp.Diff([]string{"phone", "custom"}, got); diff != "" {
		t.Fatalf("apply mismatch (-want +got):\n%s", diff)
	}
}
