// Package services contains the portal's application services: account
// registration and lookup, and invoice creation and listing. Services read
// and write whole collections through the record store and never cache
// beyond a single operation.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aquiroz/invoiceportal/internal/common"
	"github.com/aquiroz/invoiceportal/internal/logging"
	"github.com/aquiroz/invoiceportal/internal/portal/models"
	"github.com/aquiroz/invoiceportal/internal/portal/store"
	"github.com/google/uuid"
)

// AccountService manages the account collection.
type AccountService struct {
	store   *store.RecordStore
	log     logging.Logger
	latency time.Duration
}

func NewAccountService(s *store.RecordStore, log logging.Logger, latency time.Duration) *AccountService {
	return &AccountService{store: s, log: log.With("component", "accounts"), latency: latency}
}

// Register creates a new standard account. The email must not collide with
// any existing account (exact string match, as stored); on collision the
// collection is left unchanged and ErrDuplicateEmail is returned.
//
// The returned account is sanitized: the secret never leaves the service.
func (s *AccountService) Register(ctx context.Context, name, email, documentID, secret string) (models.Account, error) {
	if err := pause(ctx, s.latency); err != nil {
		return models.Account{}, err
	}

	accounts, err := s.store.Accounts(ctx)
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to load accounts: %w", err)
	}

	for _, a := range accounts {
		if a.Email == email {
			return models.Account{}, common.ErrDuplicateEmail
		}
	}

	account := models.Account{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		DocumentID: documentID,
		Role:       models.RoleStandard,
		Secret:     secret,
	}

	accounts = append(accounts, account)
	if err := s.store.PutAccounts(ctx, accounts); err != nil {
		return models.Account{}, fmt.Errorf("failed to save accounts: %w", err)
	}

	s.log.Info(ctx, "account registered", "id", account.ID, "email", account.Email)
	return account.Sanitized(), nil
}

// List returns all accounts, optionally excluding one role. Admin views use
// the exclusion to keep admin accounts out of assignment pickers. Returned
// accounts are sanitized.
func (s *AccountService) List(ctx context.Context, excludeRole models.Role) ([]models.Account, error) {
	accounts, err := s.store.Accounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	result := make([]models.Account, 0, len(accounts))
	for _, a := range accounts {
		if excludeRole != "" && a.Role == excludeRole {
			continue
		}
		result = append(result, a.Sanitized())
	}
	return result, nil
}

// FindByCredentials looks up an account by exact email and secret match.
// A miss is reported as (zero, false), not as an error; the session layer
// decides how to surface it. The returned account is sanitized.
func (s *AccountService) FindByCredentials(ctx context.Context, email, secret string) (models.Account, bool, error) {
	if err := pause(ctx, s.latency); err != nil {
		return models.Account{}, false, err
	}

	accounts, err := s.store.Accounts(ctx)
	if err != nil {
		return models.Account{}, false, fmt.Errorf("failed to load accounts: %w", err)
	}

	for _, a := range accounts {
		if a.Email == email && a.Secret == secret {
			return a.Sanitized(), true, nil
		}
	}
	return models.Account{}, false, nil
}

// FindByID returns the account with the given id, sanitized.
// Returns common.ErrNotFound when no account matches.
func (s *AccountService) FindByID(ctx context.Context, id string) (models.Account, error) {
	accounts, err := s.store.Accounts(ctx)
	if err != nil {
		return models.Account{}, fmt.Errorf("failed to load accounts: %w", err)
	}

	for _, a := range accounts {
		if a.ID == id {
			return a.Sanitized(), nil
		}
	}
	return models.Account{}, common.ErrNotFound
}
