package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/ProgrammedByHussain/LandLocks/internal/client/client"
	"github.com/ProgrammedByHussain/LandLocks/internal/client/config"
	"github.com/ProgrammedByHussain/LandLocks/internal/client/form"
	"github.com/ProgrammedByHussain/LandLocks/internal/client/repositories/documents"
	"github.com/ProgrammedByHussain/LandLocks/internal/client/services"
	"github.com/ProgrammedByHussain/LandLocks/internal/filex"
	"github.com/ProgrammedByHussain/LandLocks/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger

	repos    *client.Repositories
	minter   client.Minter
	registry client.Registry
	docs     documents.Repository

	// pending counts background document writes not yet reported.
	pending      sync.WaitGroup
	drainTimeout time.Duration

	form   *form.Controller
	wallet *wallet
	picker *pathPicker

	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	keys, err := services.ParseKeyStrategy(c.PersistKey)
	if err != nil {
		return nil, err
	}

	if _, err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}

	repos, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	minter, err := client.NewRegistryClient(c.ServerEndpointAddr, logger)
	if err != nil {
		_ = repos.Close()
		return nil, err
	}

	svc := services.NewMintService(minter, repos.Documents,
		services.WithKeyStrategy(keys),
		services.WithLogger(logger))

	a := newApp(c, svc, repos.Documents, logger, os.Stdin, os.Stdout)
	a.repos = repos
	a.minter = minter
	a.registry = minter
	return a, nil
}

// newApp builds an App around an existing pipeline and store.
func newApp(c *config.Config, p form.Submitter, docs documents.Repository, l logging.Logger, in io.Reader, out io.Writer) *App {
	w := &wallet{}
	w.Connect(c.OwnerAddress)

	return &App{
		config: c,
		logger: l,
		docs:   docs,
		form:   form.NewController(p, w, l),
		wallet: w,
		picker: &pathPicker{},
		reader: bufio.NewReader(in),
		out:    out,

		drainTimeout: services.DefaultPersistTimeout,
	}
}

// Run starts the REPL and blocks until the user leaves or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to LandLocks CLI (type 'help' for commands)")
	var promptFn func() string
	if interactive() {
		promptFn = a.prompt
	}
	runREPL(ctx, a, promptFn, a.reader)
}

// Close waits for outstanding document writes, then releases the registry
// connection and the database.
func (a *App) Close() {
	a.waitPending()

	if a.minter != nil {
		if err := a.minter.Close(); err != nil {
			a.logger.Warn(context.Background(), "closing registry client", "error", err)
		}
	}
	if a.repos != nil {
		if err := a.repos.Close(); err != nil {
			a.logger.Warn(context.Background(), "closing database", "error", err)
		}
	}
}

// waitPending blocks until every background write has reported or the
// drain timeout passes.
func (a *App) waitPending() {
	done := make(chan struct{})
	go func() {
		a.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(a.drainTimeout):
		a.logger.Warn(context.Background(), "document writes still pending at exit", "waited", a.drainTimeout)
	}
}

func (a *App) prompt() string {
	return form.StepLabel(a.form.Step())
}
