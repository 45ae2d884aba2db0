// Package i18n defines the translation lookup contract used by the form
// pipeline. The pipeline never concatenates user facing strings; it resolves
// keys through a Func and stores the result on nodes. The default Keys
// lookup returns the key unchanged so renderers can translate late.
package i18n

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultNamespace is the namespace every built-in key belongs to.
const DefaultNamespace = "login"

// Func resolves a translation key within a namespace.
type Func func(key, namespace string, params ...any) string

// Keys is the identity lookup.
func Keys(key, _ string, _ ...any) string {
	return key
}

// MissingHandler decides what to return when a key has no catalog entry.
type MissingHandler func(key, namespace string, params []any) string

// ErrEmptyCatalog is returned when a catalog document holds no entries.
var ErrEmptyCatalog = errors.New("i18n: catalog is empty")

// Catalog is an in-memory bundle of namespace -> key -> template entries.
// Templates use positional placeholders ({0}, {1}, ...).
type Catalog struct {
	entries map[string]map[string]string
}

// ParseCatalog decodes a JSON or YAML catalog document shaped as
// {namespace: {key: template}}.
func ParseCatalog(data []byte) (*Catalog, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, ErrEmptyCatalog
	}
	var doc map[string]map[string]string
	if err := json.Unmarshal(data, &doc); err != nil {
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil {
			return nil, fmt.Errorf("i18n: parse catalog: invalid JSON or YAML")
		}
	}
	if len(doc) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Catalog{entries: doc}, nil
}

// LoadCatalogFS reads a catalog document from fsys.
func LoadCatalogFS(fsys fs.FS, path string) (*Catalog, error) {
	if fsys == nil {
		return nil, errors.New("i18n: filesystem is nil")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("i18n: read %s: %w", path, err)
	}
	return ParseCatalog(data)
}

// Lookup returns the raw template for key.
func (c *Catalog) Lookup(key, namespace string) (string, bool) {
	if c == nil {
		return "", false
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}
	entries, ok := c.entries[namespace]
	if !ok {
		return "", false
	}
	value, ok := entries[key]
	return value, ok && strings.TrimSpace(value) != ""
}

// Func adapts the catalog to the lookup contract. Missing keys are routed to
// onMissing; a nil handler falls back to the key itself.
func (c *Catalog) Func(onMissing MissingHandler) Func {
	return func(key, namespace string, params ...any) string {
		template, ok := c.Lookup(key, namespace)
		if !ok {
			if onMissing != nil {
				return onMissing(key, namespace, params)
			}
			return key
		}
		return Format(template, params...)
	}
}

// Format substitutes positional placeholders in template.
func Format(template string, params ...any) string {
	if len(params) == 0 || !strings.Contains(template, "{") {
		return template
	}
	pairs := make([]string, 0, len(params)*2)
	for i, param := range params {
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", fmt.Sprint(param))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
