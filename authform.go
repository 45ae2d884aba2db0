// Package authform turns authentication protocol transactions into
// declarative form descriptors. The root package offers one-call entry
// points; pkg/orchestrator exposes the configurable pipeline.
package authform

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/goliatone/go-authform/pkg/config"
	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/orchestrator"
)

// FormBag aliases model.FormBag for callers that only use the root package.
type FormBag = model.FormBag

// Transaction aliases idx.Transaction.
type Transaction = idx.Transaction

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate builds the form descriptor for tx using cfg. On failure the
// unsupported response descriptor is returned together with the cause.
func Generate(ctx context.Context, tx Transaction, cfg config.Widget, options ...orchestrator.Option) (FormBag, error) {
	return orchestrator.New(options...).GenerateWithConfig(ctx, tx, cfg)
}

// GenerateJSON decodes a transaction payload, builds its form and encodes
// the result. Pipeline failures still produce the encoded unsupported
// descriptor; only decode and encode failures return nil bytes.
func GenerateJSON(ctx context.Context, payload []byte, cfg config.Widget, options ...orchestrator.Option) ([]byte, error) {
	tx, err := idx.Parse(payload)
	if err != nil {
		return nil, err
	}
	bag, genErr := Generate(ctx, tx, cfg, options...)
	out, err := json.Marshal(bag)
	if err != nil {
		return nil, fmt.Errorf("authform: encode form: %w", err)
	}
	return out, genErr
}
