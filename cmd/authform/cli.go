package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/goliatone/go-authform/internal/logging"
	"github.com/goliatone/go-authform/internal/server"
	"github.com/goliatone/go-authform/pkg/config"
	"github.com/goliatone/go-authform/pkg/i18n"
	"github.com/goliatone/go-authform/pkg/idx"
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/orchestrator"
	"github.com/goliatone/go-authform/pkg/prompt"
)

// Globals holds flags shared by every command.
type Globals struct {
	Config    string `help:"Widget configuration file (JSON or YAML)." type:"existingfile"`
	Overrides string `help:"Directory of field override documents." type:"existingdir"`
	Catalog   string `help:"Translation catalog (JSON or YAML)." type:"existingfile"`
	LogLevel  string `help:"Log level." default:"warn" enum:"trace,debug,info,warn,error"`
	LogJSON   bool   `help:"Emit JSON log lines." name:"log-json"`

	Out    io.Writer     `kong:"-"`
	Err    io.Writer     `kong:"-"`
	Driver prompt.Driver `kong:"-"`
}

// CLI is the command tree.
type CLI struct {
	Globals

	Render RenderCmd `cmd:"" help:"Print the form descriptor of a transaction."`
	Fill   FillCmd   `cmd:"" help:"Prompt for the fields of a transaction and print the submission."`
	Serve  ServeCmd  `cmd:"" help:"Serve the form API over HTTP."`
}

func (g *Globals) logger() logging.Logger {
	return logging.New(logging.Options{Writer: g.Err, Level: g.LogLevel, Console: !g.LogJSON})
}

func (g *Globals) widget() (config.Widget, error) {
	var cfg config.Widget
	if g.Config != "" {
		loaded, err := config.LoadFile(os.DirFS(filepath.Dir(g.Config)), filepath.Base(g.Config))
		if err != nil {
			return config.Widget{}, err
		}
		cfg = loaded
	}
	if g.Overrides != "" {
		overrides, err := config.LoadOverridesFS(os.DirFS(g.Overrides))
		if err != nil {
			return config.Widget{}, err
		}
		cfg = cfg.WithOverrides(overrides)
	}
	return cfg, nil
}

func (g *Globals) translator() (i18n.Func, error) {
	if g.Catalog == "" {
		return i18n.Keys, nil
	}
	catalog, err := i18n.LoadCatalogFS(os.DirFS(filepath.Dir(g.Catalog)), filepath.Base(g.Catalog))
	if err != nil {
		return nil, err
	}
	return catalog.Func(nil), nil
}

func (g *Globals) orchestrator(logger logging.Logger, loc i18n.Func) (*orchestrator.Orchestrator, error) {
	cfg, err := g.widget()
	if err != nil {
		return nil, err
	}
	return orchestrator.New(
		orchestrator.WithLogger(logger),
		orchestrator.WithConfig(cfg),
		orchestrator.WithTranslator(loc),
	), nil
}

// session builds the logger, translator and orchestrator a command shares.
func (g *Globals) session() (logging.Logger, i18n.Func, *orchestrator.Orchestrator, error) {
	logger := g.logger()
	loc, err := g.translator()
	if err != nil {
		return logger, nil, nil, err
	}
	orch, err := g.orchestrator(logger, loc)
	if err != nil {
		return logger, nil, nil, err
	}
	return logger, loc, orch, nil
}

func generate(ctx context.Context, orch *orchestrator.Orchestrator, path string) (model.FormBag, error) {
	tx, err := readTransaction(path)
	if err != nil {
		return model.FormBag{}, err
	}
	return orch.Generate(ctx, tx)
}

func readTransaction(path string) (idx.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return idx.Transaction{}, fmt.Errorf("authform: open transaction: %w", err)
	}
	defer f.Close()
	return idx.Decode(f)
}

func writeJSON(w io.Writer, value any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(value)
}

// RenderCmd prints the form descriptor. On pipeline failure the unsupported
// response is still printed and the command exits non-zero.
type RenderCmd struct {
	Transaction string `arg:"" help:"Transaction JSON file." type:"existingfile"`
	Pretty      bool   `help:"Indent the output."`
}

func (c *RenderCmd) Run(g *Globals) error {
	_, _, orch, err := g.session()
	if err != nil {
		return err
	}
	bag, genErr := generate(context.Background(), orch, c.Transaction)
	if bag.UISchema == nil {
		return genErr
	}
	if err := writeJSON(g.Out, bag, c.Pretty); err != nil {
		return err
	}
	return genErr
}

// FillCmd prompts for every field and prints the resulting submission.
type FillCmd struct {
	Transaction string `arg:"" help:"Transaction JSON file." type:"existingfile"`
	Attempts    int    `help:"Validation rounds before giving up." default:"3"`
}

func (c *FillCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger, loc, orch, err := g.session()
	if err != nil {
		return err
	}
	bag, err := generate(ctx, orch, c.Transaction)
	if err != nil {
		return err
	}
	driver := g.Driver
	if driver == nil {
		driver = prompt.NewSurveyDriver(g.Out)
	}

	data, err := prompt.NewFiller(driver,
		prompt.WithTranslator(loc),
		prompt.WithLogger(logger),
		prompt.WithMaxAttempts(c.Attempts),
	).Fill(ctx, bag)
	if err != nil {
		return err
	}

	req, ok := bag.SubmitRequest(data)
	if !ok {
		return fmt.Errorf("authform: form has no submit action")
	}
	return printSubmitter(g.Out, logger).Submit(ctx, req)
}

// printSubmitter stands in for a protocol client by printing the request.
func printSubmitter(w io.Writer, logger logging.Logger) model.Submitter {
	return model.SubmitterFunc(func(_ context.Context, req model.SubmitRequest) error {
		logger.Info("submitting step %s", req.Step)
		return writeJSON(w, req, true)
	})
}

// ServeCmd runs the HTTP API until interrupted.
type ServeCmd struct {
	Addr string `help:"Listen address." default:":8080"`
}

func (c *ServeCmd) Run(g *Globals) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, _, orch, err := g.session()
	if err != nil {
		return err
	}
	return server.New(orch, logger).ListenAndServe(ctx, c.Addr)
}
