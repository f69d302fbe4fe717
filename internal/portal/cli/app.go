// Package cli implements the portal's terminal UI: a small REPL whose
// available commands depend on the session state and the account role.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/aquiroz/invoiceportal/internal/dbx"
	"github.com/aquiroz/invoiceportal/internal/logging"
	"github.com/aquiroz/invoiceportal/internal/portal/config"
	"github.com/aquiroz/invoiceportal/internal/portal/models"
	"github.com/aquiroz/invoiceportal/internal/portal/repositories/records"
	"github.com/aquiroz/invoiceportal/internal/portal/services"
	"github.com/aquiroz/invoiceportal/internal/portal/session"
	"github.com/aquiroz/invoiceportal/internal/portal/store"
)

// App wires the store, services, and session façade behind the REPL.
type App struct {
	config   *config.Config
	log      logging.Logger
	session  *session.Manager
	accounts *services.AccountService
	invoices *services.InvoiceService
	reader   *bufio.Reader
	out      io.Writer
}

// NewApp bootstraps the local database, seeds the demo data, and builds the
// service graph. The session manager is created here and injected into the
// app; no component keeps ambient global state.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	db, err := store.InitDatabase(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	recordStore := store.NewRecordStore(records.NewSQLiteRepository(db), logger)

	// Seed both collections in one transaction so a crash mid-seed cannot
	// leave only one of them initialized.
	err = dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return store.NewRecordStore(records.NewSQLiteRepository(tx), logger).SeedIfEmpty(ctx)
	})
	if err != nil {
		return nil, err
	}

	accounts := services.NewAccountService(recordStore, logger, cfg.SimulatedLatency)
	invoices := services.NewInvoiceService(recordStore, logger, cfg.SimulatedLatency)
	sess := session.NewManager(accounts, recordStore, logger, []byte(cfg.SessionSecret))

	return &App{
		config:   cfg,
		log:      logger,
		session:  sess,
		accounts: accounts,
		invoices: invoices,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

// Run restores any persisted session and enters the REPL.
func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner, a.out)
}

func (a *App) state() session.State {
	return a.session.State()
}

func (a *App) role() models.Role {
	account, ok := a.session.Account()
	if !ok {
		return ""
	}
	return account.Role
}

// status renders the prompt segment describing who is logged in.
func (a *App) status() string {
	account, ok := a.session.Account()
	if !ok {
		return "guest"
	}
	if account.Role == models.RoleAdmin {
		return account.Email + " (admin)"
	}
	return account.Email
}
