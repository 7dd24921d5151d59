// Package cli is the terminal front end: a small REPL that drives the
// form controllers and the session. It owns no business rules; every
// decision about validity or error attribution is made by the forms and
// the session; this layer only prompts, dispatches and renders.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/accountkeeper/internal/client/api"
	"github.com/dmitrijs2005/accountkeeper/internal/client/config"
	"github.com/dmitrijs2005/accountkeeper/internal/client/forms"
	"github.com/dmitrijs2005/accountkeeper/internal/client/session"
	"github.com/dmitrijs2005/accountkeeper/internal/client/storage"
	"github.com/dmitrijs2005/accountkeeper/internal/logging"

	_ "modernc.org/sqlite"
)

// App wires the session and the form controllers to a terminal. One App
// per process; the session is constructed here and handed to every
// consumer by reference.
type App struct {
	config  *config.Config
	log     logging.Logger
	session *session.Session
	db      *sql.DB
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local database: %w", err)
	}

	repo := storage.NewSQLiteRepository(db)
	apiClient := api.NewHTTPClient(c.ServerBaseURL, c.RequestTimeout)
	sess := session.New(ctx, apiClient, repo, log)

	return &App{
		config:  c,
		log:     log,
		session: sess,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

// Close releases the local database handle.
func (a *App) Close() {
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "failed to close database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status renders the prompt segment: the signed-in email, or a hint.
func (a *App) status() string {
	if user := a.session.User(); user.Email != "" {
		return user.Email
	}
	if a.session.IsAuthenticated() {
		return "logged in"
	}
	return "not logged in"
}

// printFormErrors renders a form's error map: one line per plain field,
// the password violations as a bulleted list.
func (a *App) printFormErrors(errs forms.Errors) {
	if errs.Name != "" {
		printlnFn("name: " + errs.Name)
	}
	if errs.Email != "" {
		printlnFn("email: " + errs.Email)
	}
	for _, violation := range errs.Password {
		printlnFn("password: " + violation)
	}
}
