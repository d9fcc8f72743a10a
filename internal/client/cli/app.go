package cli

import (
	"bufio"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/tinylink/internal/client/api"
	"github.com/dmitrijs2005/tinylink/internal/client/cache"
	"github.com/dmitrijs2005/tinylink/internal/client/config"
	"github.com/dmitrijs2005/tinylink/internal/client/db"
	"github.com/dmitrijs2005/tinylink/internal/client/notify"
	"github.com/dmitrijs2005/tinylink/internal/client/session"
	"github.com/dmitrijs2005/tinylink/internal/logging"
)

// App wires the Tinylink client together: configuration, local database,
// session store, API client, the link-list cache, and the notification sink.
type App struct {
	config *config.Config
	log    logging.Logger

	database *sql.DB
	store    *session.Store
	client   api.Client

	links      *cache.Query
	createForm *cache.Mutator
	updateForm *cache.Mutator

	sink   notify.Sink
	reader *bufio.Reader
}

// NewApp builds a ready-to-run App from cfg. The local database is opened
// and migrated, the session is rehydrated from it, and the API client is
// pointed at the configured backend.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	var log logging.Logger
	if cfg.LogFormat == "json" {
		log = logging.NewJSONLogger(os.Stderr)
	} else {
		log = logging.NewConsoleLogger(os.Stderr)
	}

	database, err := db.Init(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open local database: %w", err)
	}

	store := session.NewStore(ctx, session.NewSQLiteStorage(database), log)

	client := api.NewHTTPClient(cfg.ServerEndpointAddr, func() string {
		return store.Current().Token
	}, log)

	links := cache.NewQuery(client.ListLinks, cfg.PollInterval, log)

	return &App{
		config:     cfg,
		log:        log,
		database:   database,
		store:      store,
		client:     client,
		links:      links,
		createForm: cache.NewMutator(links),
		updateForm: cache.NewMutator(links),
		sink:       notify.NewWriterSink(os.Stdout),
		reader:     bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) session() session.Session {
	return a.store.Current()
}

// reportError surfaces an API failure to the user. An auth-kind failure on a
// dashboard operation means the token is no longer accepted (expired or
// revoked), so the session is logged out and the user is sent back through
// login on the next command.
func (a *App) reportError(ctx context.Context, err error) {
	a.sink.Error(api.Message(err))
	if errors.Is(err, api.ErrAuth) {
		if lerr := a.store.Logout(ctx); lerr != nil {
			a.log.Warn(ctx, "failed to log out after rejected token", "error", lerr)
		}
		a.sink.Info("Session expired, please log in again.")
	}
}

// getStatus renders the prompt suffix: the username when logged in,
// empty otherwise.
func (a *App) getStatus() string {
	s := a.store.Current()
	if !s.Authenticated {
		return ""
	}
	return fmt.Sprintf("(%s)", s.Identity.Username)
}

// Root greets the user and runs the REPL until exit or EOF.
func (a *App) Root(ctx context.Context) {
	printlnFn("Tinylink — shorten and manage your links.")
	printlnFn("Type help to see available commands.")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Run starts the application and blocks until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Warn(ctx, "failed to close application", "error", err)
		}
	}()

	a.Root(ctx)
	return nil
}

// Close releases the app's resources.
func (a *App) Close() error {
	return a.database.Close()
}
