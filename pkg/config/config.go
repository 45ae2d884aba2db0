package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// IDP display placements for the PIV button.
const (
	IDPDisplayPrimary   = "PRIMARY"
	IDPDisplaySecondary = "SECONDARY"
)

// Widget is the host configuration read by the form pipeline. It is treated
// as read-only for the duration of a run.
type Widget struct {
	Username           string   `json:"username,omitempty" yaml:"username,omitempty"`
	RememberedUsername string   `json:"rememberedUsername,omitempty" yaml:"rememberedUsername,omitempty"`
	BrandName          string   `json:"brandName,omitempty" yaml:"brandName,omitempty"`
	Features           Features `json:"features" yaml:"features"`
	PIV                *PIV     `json:"piv,omitempty" yaml:"piv,omitempty"`
	IDPDisplay         string   `json:"idpDisplay,omitempty" yaml:"idpDisplay,omitempty"`

	// CustomFields holds per-step field overrides keyed by step key and then
	// by field dot-path.
	CustomFields map[string]map[string]FieldOverride `json:"customFields,omitempty" yaml:"customFields,omitempty"`

	// Production suppresses development diagnostics.
	Production bool `json:"production,omitempty" yaml:"production,omitempty"`
}

// Features toggles optional widget behaviour.
type Features struct {
	RememberMe              bool  `json:"rememberMe,omitempty" yaml:"rememberMe,omitempty"`
	RememberMyUsernameOnOIE bool  `json:"rememberMyUsernameOnOIE,omitempty" yaml:"rememberMyUsernameOnOIE,omitempty"`
	ShowKeepMeSignedIn      *bool `json:"showKeepMeSignedIn,omitempty" yaml:"showKeepMeSignedIn,omitempty"`
}

// PIV customises the smart card sign-in button.
type PIV struct {
	Text      string `json:"text,omitempty" yaml:"text,omitempty"`
	ClassName string `json:"className,omitempty" yaml:"className,omitempty"`
}

// FieldOverride patches presentation attributes of a mapped field. Empty
// strings and a nil Required leave the field untouched.
type FieldOverride struct {
	Label        string `json:"label,omitempty" yaml:"label,omitempty"`
	Hint         string `json:"hint,omitempty" yaml:"hint,omitempty"`
	Placeholder  string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Dir          string `json:"dir,omitempty" yaml:"dir,omitempty"`
	Autocomplete string `json:"autocomplete,omitempty" yaml:"autocomplete,omitempty"`
	Required     *bool  `json:"required,omitempty" yaml:"required,omitempty"`

	// Source records the document that defined the override.
	Source string `json:"-" yaml:"-"`
}

// HideKeepMeSignedIn reports whether the keep-me-signed-in checkbox was
// explicitly disabled.
func (w Widget) HideKeepMeSignedIn() bool {
	return w.Features.ShowKeepMeSignedIn != nil && !*w.Features.ShowKeepMeSignedIn
}

// DefaultUsername returns the username that should prefill the identifier
// field.
func (w Widget) DefaultUsername() string {
	if w.Username != "" {
		return w.Username
	}
	if w.Features.RememberMe && w.Features.RememberMyUsernameOnOIE {
		return w.RememberedUsername
	}
	return ""
}

// IDPPrimary reports whether IDP buttons render above the form.
func (w Widget) IDPPrimary() bool {
	return w.IDPDisplay == "" || strings.EqualFold(w.IDPDisplay, IDPDisplayPrimary)
}

// FieldOverride returns the override for path within step.
func (w Widget) FieldOverride(step, path string) (FieldOverride, bool) {
	fields, ok := w.CustomFields[step]
	if !ok {
		return FieldOverride{}, false
	}
	override, ok := fields[NormalizeFieldPath(path)]
	return override, ok
}

// WithOverrides returns a copy of w whose CustomFields include overrides.
// Entries from overrides replace existing entries for the same step and path.
func (w Widget) WithOverrides(overrides map[string]map[string]FieldOverride) Widget {
	out := w
	out.CustomFields = make(map[string]map[string]FieldOverride, len(w.CustomFields)+len(overrides))
	for step, fields := range w.CustomFields {
		out.CustomFields[step] = cloneFields(fields)
	}
	for step, fields := range overrides {
		target, ok := out.CustomFields[step]
		if !ok {
			target = make(map[string]FieldOverride, len(fields))
			out.CustomFields[step] = target
		}
		for path, override := range fields {
			target[NormalizeFieldPath(path)] = override
		}
	}
	return out
}

func cloneFields(in map[string]FieldOverride) map[string]FieldOverride {
	out := make(map[string]FieldOverride, len(in))
	for path, override := range in {
		if override.Required != nil {
			v := *override.Required
			override.Required = &v
		}
		out[path] = override
	}
	return out
}

// Parse decodes a widget configuration document. JSON is attempted first and
// YAML second.
func Parse(data []byte, source string) (Widget, error) {
	var w Widget
	if len(strings.TrimSpace(string(data))) == 0 {
		return Widget{}, fmt.Errorf("config: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &w); err != nil {
		w = Widget{}
		if yerr := yaml.Unmarshal(data, &w); yerr != nil {
			return Widget{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
		}
	}
	return w.normalise(), nil
}

// LoadFile reads and parses a widget configuration from fsys.
func LoadFile(fsys fs.FS, path string) (Widget, error) {
	if fsys == nil {
		return Widget{}, fmt.Errorf("config: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return Widget{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

func (w Widget) normalise() Widget {
	if len(w.CustomFields) == 0 {
		return w
	}
	normalised := make(map[string]map[string]FieldOverride, len(w.CustomFields))
	for step, fields := range w.CustomFields {
		key := strings.TrimSpace(step)
		out := make(map[string]FieldOverride, len(fields))
		for path, override := range fields {
			out[NormalizeFieldPath(path)] = override
		}
		normalised[key] = out
	}
	w.CustomFields = normalised
	return w
}

// NormalizeFieldPath converts slash or bracket separated paths to the dot
// notation used by field names.
func NormalizeFieldPath(path string) string {
	trimmed := strings.TrimSpace(path)
	trimmed = strings.TrimPrefix(trimmed, "#/")
	replacer := strings.NewReplacer("/", ".", "[", ".", "]", "")
	trimmed = replacer.Replace(trimmed)
	return strings.Trim(trimmed, ".")
}
