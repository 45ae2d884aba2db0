package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadOverridesFS walks fsys and collects field overrides from every JSON or
// YAML document. Documents are shaped as:
//
//	steps:
//	  identify:
//	    fields:
//	      identifier:
//	        label: Email
//
// A step/path pair defined twice across documents is an error.
func LoadOverridesFS(fsys fs.FS) (map[string]map[string]FieldOverride, error) {
	out := make(map[string]map[string]FieldOverride)
	if fsys == nil {
		return out, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isOverrideFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}
		doc, err := parseOverrideDocument(data, path)
		if err != nil {
			return err
		}

		for step, raw := range doc.Steps {
			key := strings.TrimSpace(step)
			if key == "" {
				return fmt.Errorf("config: file %s defines an empty step key", path)
			}
			fields, ok := out[key]
			if !ok {
				fields = make(map[string]FieldOverride, len(raw.Fields))
				out[key] = fields
			}
			for fieldPath, override := range raw.Fields {
				normalised := NormalizeFieldPath(fieldPath)
				if normalised == "" {
					return fmt.Errorf("config: step %q (file %s) field key %q normalises to empty path", key, path, fieldPath)
				}
				if prev, exists := fields[normalised]; exists {
					return fmt.Errorf("config: step %q defines duplicate field path %q (files %s, %s)", key, normalised, prev.Source, path)
				}
				override.Source = path
				fields[normalised] = override
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type overrideDocument struct {
	Steps map[string]stepOverrides `json:"steps" yaml:"steps"`
}

type stepOverrides struct {
	Fields map[string]FieldOverride `json:"fields" yaml:"fields"`
}

func parseOverrideDocument(data []byte, source string) (overrideDocument, error) {
	var doc overrideDocument
	if len(strings.TrimSpace(string(data))) == 0 {
		return overrideDocument{}, fmt.Errorf("config: file %s is empty", source)
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = overrideDocument{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return overrideDocument{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
}

func isOverrideFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
