package model

import (
	"github.com/goliatone/go-authform/pkg/config"
	"github.com/goliatone/go-authform/pkg/i18n"
	"github.com/goliatone/go-authform/pkg/idx"
)

// Env is the read-only context of one pipeline run.
type Env struct {
	Transaction idx.Transaction
	Config      config.Widget
	Loc         i18n.Func

	// StepKey is the resolved registry key of the current step.
	StepKey string
}

// T translates key in the default namespace.
func (e Env) T(key string, params ...any) string {
	if e.Loc == nil {
		return key
	}
	return e.Loc(key, i18n.DefaultNamespace, params...)
}

// Transformer derives a new form bag from bag.
type Transformer interface {
	Transform(bag FormBag, env Env) (FormBag, error)
}

// TransformerFunc adapts a function into a Transformer.
type TransformerFunc func(bag FormBag, env Env) (FormBag, error)

// Transform calls the underlying function.
func (fn TransformerFunc) Transform(bag FormBag, env Env) (FormBag, error) {
	return fn(bag, env)
}

// Identity returns bag unchanged.
func Identity(bag FormBag, _ Env) (FormBag, error) {
	return bag, nil
}
