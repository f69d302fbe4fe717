// Package session holds the currently authenticated identity for the
// process lifetime and persists a session marker across restarts.
//
// The Manager is an explicit object handed to the UI by dependency
// injection; there is no package-level session state.
package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/aquiroz/invoiceportal/internal/common"
	"github.com/aquiroz/invoiceportal/internal/logging"
	"github.com/aquiroz/invoiceportal/internal/portal/models"
	"github.com/aquiroz/invoiceportal/internal/portal/services"
	"github.com/aquiroz/invoiceportal/internal/portal/store"
)

// State is the authentication state of the session.
type State string

const (
	// Unauthenticated is the initial state and the state after logout.
	Unauthenticated State = "unauthenticated"
	// Loading is the transient state while a persisted marker is restored.
	Loading State = "loading"
	// Authenticated means a valid account is bound to the session.
	Authenticated State = "authenticated"
)

// Manager is the session façade over the account service. The UI consults
// its state for routing guards and never touches credentials itself.
type Manager struct {
	accounts  *services.AccountService
	store     *store.RecordStore
	log       logging.Logger
	secretKey []byte

	state   State
	account models.Account
}

func NewManager(accounts *services.AccountService, s *store.RecordStore, log logging.Logger, secretKey []byte) *Manager {
	return &Manager{
		accounts:  accounts,
		store:     s,
		log:       log.With("component", "session"),
		secretKey: secretKey,
		state:     Unauthenticated,
	}
}

// State returns the current session state.
func (m *Manager) State() State { return m.state }

// Account returns the authenticated account. The second return is false
// when the session is not authenticated.
func (m *Manager) Account() (models.Account, bool) {
	return m.account, m.state == Authenticated
}

// Login authenticates with email and secret. On failure the state is left
// unchanged and ErrInvalidCredentials is returned.
func (m *Manager) Login(ctx context.Context, email, secret string) (models.Account, error) {
	account, ok, err := m.accounts.FindByCredentials(ctx, email, secret)
	if err != nil {
		return models.Account{}, err
	}
	if !ok {
		return models.Account{}, common.ErrInvalidCredentials
	}

	if err := m.authenticate(ctx, account); err != nil {
		return models.Account{}, err
	}
	m.log.Info(ctx, "login", "id", account.ID, "role", account.Role)
	return account, nil
}

// Register creates a standard account and authenticates it in one step.
// ErrDuplicateEmail propagates from the account service.
func (m *Manager) Register(ctx context.Context, name, email, documentID, secret string) (models.Account, error) {
	account, err := m.accounts.Register(ctx, name, email, documentID, secret)
	if err != nil {
		return models.Account{}, err
	}

	if err := m.authenticate(ctx, account); err != nil {
		return models.Account{}, err
	}
	m.log.Info(ctx, "registered and logged in", "id", account.ID)
	return account, nil
}

// Logout clears the in-process identity and removes the persisted marker.
func (m *Manager) Logout(ctx context.Context) error {
	m.state = Unauthenticated
	m.account = models.Account{}
	if err := m.store.DeleteSessionMarker(ctx); err != nil {
		return fmt.Errorf("failed to clear session marker: %w", err)
	}
	m.log.Info(ctx, "logout")
	return nil
}

// Restore rebuilds the session from a persisted marker, if one exists. The
// marker's signature is checked and the account id is re-validated against
// the store, so a marker for a deleted account yields Unauthenticated
// rather than a ghost session. Invalid or stale markers are discarded
// silently.
func (m *Manager) Restore(ctx context.Context) error {
	m.state = Loading
	defer func() {
		if m.state == Loading {
			m.state = Unauthenticated
		}
	}()

	marker, err := m.store.SessionMarker(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session marker: %w", err)
	}
	if marker == nil {
		return nil
	}

	claims, err := parseMarker(string(marker), m.secretKey)
	if err != nil {
		m.log.Warn(ctx, "discarding invalid session marker", "error", err)
		return m.discardMarker(ctx)
	}

	account, err := m.accounts.FindByID(ctx, claims.AccountID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			m.log.Warn(ctx, "discarding marker for unknown account", "id", claims.AccountID)
			return m.discardMarker(ctx)
		}
		return err
	}

	m.state = Authenticated
	m.account = account
	m.log.Info(ctx, "session restored", "id", account.ID, "role", account.Role)
	return nil
}

func (m *Manager) authenticate(ctx context.Context, account models.Account) error {
	marker, err := generateMarker(account, m.secretKey)
	if err != nil {
		return fmt.Errorf("failed to create session marker: %w", err)
	}
	if err := m.store.PutSessionMarker(ctx, []byte(marker)); err != nil {
		return fmt.Errorf("failed to persist session marker: %w", err)
	}

	m.state = Authenticated
	m.account = account
	return nil
}

func (m *Manager) discardMarker(ctx context.Context) error {
	if err := m.store.DeleteSessionMarker(ctx); err != nil {
		return fmt.Errorf("failed to discard session marker: %w", err)
	}
	return nil
}
