package orchestrator

import (
	"context"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"

	"github.com/goliatone/go-authform/internal/logging"
	"github.com/goliatone/go-authform/pkg/config"
	"github.com/goliatone/go-authform/pkg/fields"
	"github.com/goliatone/go-authform/pkg/i18n"
	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/steps"
	"github.com/goliatone/go-authform/pkg/uischema"
)

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLogger injects the logger used for run diagnostics.
func WithLogger(logger logging.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithTranslator sets the translation lookup. The default returns keys.
func WithTranslator(loc i18n.Func) Option {
	return func(o *Orchestrator) {
		o.loc = loc
	}
}

// WithMapper replaces the input mapper.
func WithMapper(mapper model.Transformer) Option {
	return func(o *Orchestrator) {
		o.mapper = mapper
	}
}

// WithChain replaces the enrichment chain.
func WithChain(chain model.Transformer) Option {
	return func(o *Orchestrator) {
		o.chain = chain
	}
}

// WithConfig sets the widget configuration used by Generate.
func WithConfig(cfg config.Widget) Option {
	return func(o *Orchestrator) {
		o.config = cfg
	}
}

// WithRunIDs overrides the run id generator.
func WithRunIDs(next func() string) Option {
	return func(o *Orchestrator) {
		o.runID = next
	}
}

// Orchestrator turns transactions into form bags. It is immutable after New.
type Orchestrator struct {
	logger logging.Logger
	loc    i18n.Func
	mapper model.Transformer
	chain  model.Transformer
	config config.Widget
	runID  func() string
}

// New constructs an Orchestrator applying any provided options. Missing
// collaborators fall back to the built-in implementations.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.logger == nil {
		o.logger = logging.Nop()
	}
	if o.loc == nil {
		o.loc = i18n.Keys
	}
	if o.mapper == nil {
		o.mapper = fields.NewMapper()
	}
	if o.chain == nil {
		o.chain = uischema.DefaultChain()
	}
	if o.runID == nil {
		o.runID = uuid.NewString
	}
	return o
}

// Generate builds the form for tx with the configured widget settings.
func (o *Orchestrator) Generate(ctx context.Context, tx idx.Transaction) (model.FormBag, error) {
	return o.GenerateWithConfig(ctx, tx, o.config)
}

// GenerateWithConfig builds the form for tx using cfg. Failures, panics
// included, yield the unsupported response descriptor together with the
// cause.
func (o *Orchestrator) GenerateWithConfig(ctx context.Context, tx idx.Transaction, cfg config.Widget) (bag model.FormBag, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	runID := o.runID()
	stepKey := steps.Key(tx)
	logger := logging.WithFields(o.logger.WithContext(ctx), map[string]any{
		"run_id": runID,
		"step":   stepKey,
	})

	defer func() {
		if r := recover(); r != nil {
			cause := model.NewError(model.ErrUnsupportedResponse, fmt.Sprintf("recovered panic: %v", r), nil)
			bag, err = o.fail(logger, cause, runID, stepKey)
		}
	}()

	if err := ctx.Err(); err != nil {
		return o.fail(logger, goerrors.Wrap(err, goerrors.CategoryExternal, "context canceled or deadline exceeded"), runID, stepKey)
	}
	if stepKey == "" {
		return o.fail(logger, model.NewError(model.ErrInvalidTransaction, "transaction has neither a next step nor messages", nil), runID, stepKey)
	}

	env := model.Env{Transaction: tx, Config: cfg, Loc: o.loc, StepKey: stepKey}

	bag, err = o.mapper.Transform(model.NewFormBag(), env)
	if err != nil {
		return o.fail(logger, fmt.Errorf("orchestrator: map inputs: %w", err), runID, stepKey)
	}

	transform, known := steps.For(tx)
	if !known && !cfg.Production {
		logger.Debug("no transformer registered for step %q, rendering mapped fields", stepKey)
	}
	bag, err = transform(bag.Clone(), env)
	if err != nil {
		return o.fail(logger, fmt.Errorf("orchestrator: step %s: %w", stepKey, err), runID, stepKey)
	}

	bag, err = o.chain.Transform(bag, env)
	if err != nil {
		return o.fail(logger, fmt.Errorf("orchestrator: enrich: %w", err), runID, stepKey)
	}

	logger.Debug("form generated elements=%d fields_to_validate=%d", len(bag.UISchema.Elements), len(bag.FieldsToValidate))
	return bag, nil
}

func (o *Orchestrator) fail(logger logging.Logger, cause error, runID, stepKey string) (model.FormBag, error) {
	err := annotate(cause, runID, stepKey)
	logger.Error("form generation failed: %v", err)
	return model.UnsupportedResponse(), err
}

// annotate attaches run metadata while keeping the text code of typed
// errors reachable through errors.As.
func annotate(err error, runID, stepKey string) error {
	meta := map[string]any{"run_id": runID, "step": stepKey}
	var typed *goerrors.Error
	if errors.As(err, &typed) {
		return model.NewError(typed, "", meta)
	}
	return goerrors.Wrap(err, goerrors.CategoryHandler, "orchestrator: generate form").WithMetadata(meta)
}
