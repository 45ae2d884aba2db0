package steps

import (
	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/model"
)

const messageClassError = "ERROR"

// transformTerminal shows the messages of a transaction that has nothing
// left to remediate.
func transformTerminal(bag model.FormBag, env model.Env) (model.FormBag, error) {
	messages := env.Transaction.Messages

	titleKey := "oie.terminal.title"
	for _, msg := range messages {
		if msg.Class == messageClassError {
			titleKey = "oform.errorbanner.title"
			break
		}
	}

	elements := []model.Node{title(env, titleKey)}
	for _, msg := range messages {
		content := sanitizeMarkup(messageText(env, msg))
		if content == "" {
			continue
		}
		elements = append(elements, &model.TextWithHTML{Options: model.TextOptions{Content: content}})
	}
	elements = append(elements, cancelLink(env))

	bag.UISchema.Elements = elements
	return bag, nil
}

// messageText prefers the translated key and falls back to the server text
// when the translator has no entry for it.
func messageText(env model.Env, msg idx.Message) string {
	if msg.I18n != nil && msg.I18n.Key != "" {
		if text := env.T(msg.I18n.Key, msg.I18n.Params...); text != msg.I18n.Key {
			return text
		}
	}
	if msg.Message != "" {
		return msg.Message
	}
	if msg.I18n != nil {
		return msg.I18n.Key
	}
	return ""
}
