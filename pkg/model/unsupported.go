package model

import "github.com/goliatone/go-authform/pkg/idx"

// UnsupportedResponseKey is the message key of the generic failure form.
const UnsupportedResponseKey = "error.unsupported.response"

// UnsupportedResponse returns the descriptor shown when the pipeline fails.
func UnsupportedResponse() FormBag {
	bag := NewFormBag()
	bag.UISchema.Elements = []Node{
		&InfoBox{
			Element: Element{ID: "unsupported-response"},
			Options: InfoBoxOptions{
				Message: Message{
					Message: UnsupportedResponseKey,
					Class:   "ERROR",
					I18n:    &idx.I18nKey{Key: UnsupportedResponseKey},
				},
				Class: "error",
			},
		},
	}
	return bag
}
