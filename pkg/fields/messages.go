package fields

import (
	"strings"

	"github.com/goliatone/go-authform/pkg/idx"
)

// AttachMessages groups messages by the field path their name resolves to.
// Messages without a resolvable name are returned as form level messages.
func AttachMessages(messages []idx.Message, paths []string) (map[string][]idx.Message, []idx.Message) {
	byPath := make(map[string][]idx.Message)
	var form []idx.Message
	for _, msg := range messages {
		path := resolvePath(msg.Name, paths)
		if path == "" {
			form = append(form, msg)
			continue
		}
		byPath[path] = append(byPath[path], idx.CloneMessages([]idx.Message{msg})...)
	}
	return byPath, form
}

// resolvePath maps a message name onto a known field path. Exact matches
// win; otherwise the longest field path whose trailing segments equal the
// name is chosen, as long as it is unambiguous.
func resolvePath(name string, paths []string) string {
	segments := pathSegments(name)
	if len(segments) == 0 {
		return ""
	}
	normalised := strings.Join(segments, ".")
	for _, path := range paths {
		if path == normalised {
			return path
		}
	}

	var match string
	for _, path := range paths {
		if !hasSuffixSegments(pathSegments(path), segments) {
			continue
		}
		if match != "" {
			return ""
		}
		match = path
	}
	return match
}

func pathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	clean = strings.TrimPrefix(clean, "#/")
	clean = strings.TrimPrefix(clean, "$.")
	replacer := strings.NewReplacer("[", ".", "]", "")
	clean = strings.Trim(replacer.Replace(clean), "./")
	if clean == "" {
		return nil
	}
	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if segment := strings.TrimSpace(part); segment != "" {
			out = append(out, segment)
		}
	}
	return out
}

func hasSuffixSegments(path, suffix []string) bool {
	if len(suffix) > len(path) {
		return false
	}
	offset := len(path) - len(suffix)
	for i, segment := range suffix {
		if path[offset+i] != segment {
			return false
		}
	}
	return true
}
