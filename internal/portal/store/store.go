// Package store keeps the portal's account and invoice collections as
// JSON-serialized sequences in the records key-value area.
//
// Every read and write handles the full collection. That is acceptable for
// a single local actor with small collections; the read-append-write
// sequences in the service layer are not safe under concurrent writers.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aquiroz/invoiceportal/internal/logging"
	"github.com/aquiroz/invoiceportal/internal/portal/models"
	"github.com/aquiroz/invoiceportal/internal/portal/repositories/records"
)

// Collection keys inside the records area.
const (
	AccountsKey = "portal_users"
	InvoicesKey = "portal_invoices"
	SessionKey  = "portal_session"
)

// RecordStore owns the serialized collections. Services never cache beyond
// a single operation and always go through it.
type RecordStore struct {
	repo records.Repository
	log  logging.Logger
}

func NewRecordStore(repo records.Repository, log logging.Logger) *RecordStore {
	return &RecordStore{repo: repo, log: log.With("component", "store")}
}

// Accounts returns the full account collection, in insertion order.
func (s *RecordStore) Accounts(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := s.getCollection(ctx, AccountsKey, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// Invoices returns the full invoice collection, in insertion order.
func (s *RecordStore) Invoices(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.getCollection(ctx, InvoicesKey, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// PutAccounts replaces the account collection.
func (s *RecordStore) PutAccounts(ctx context.Context, accounts []models.Account) error {
	return s.putCollection(ctx, AccountsKey, accounts)
}

// PutInvoices replaces the invoice collection.
func (s *RecordStore) PutInvoices(ctx context.Context, invoices []models.Invoice) error {
	return s.putCollection(ctx, InvoicesKey, invoices)
}

// SeedIfEmpty writes the fixed demo data for any collection whose key has
// never been initialized. Existing data is never overwritten, so calling it
// repeatedly is idempotent.
func (s *RecordStore) SeedIfEmpty(ctx context.Context) error {
	seeded, err := s.seedCollection(ctx, AccountsKey, seedAccounts)
	if err != nil {
		return err
	}
	if seeded {
		s.log.Info(ctx, "seeded account collection", "accounts", len(seedAccounts))
	}

	seeded, err = s.seedCollection(ctx, InvoicesKey, seedInvoices)
	if err != nil {
		return err
	}
	if seeded {
		s.log.Info(ctx, "seeded invoice collection", "invoices", len(seedInvoices))
	}
	return nil
}

// SessionMarker returns the persisted session marker, or nil if absent.
func (s *RecordStore) SessionMarker(ctx context.Context) ([]byte, error) {
	return s.repo.Get(ctx, SessionKey)
}

// PutSessionMarker persists the session marker.
func (s *RecordStore) PutSessionMarker(ctx context.Context, marker []byte) error {
	return s.repo.Set(ctx, SessionKey, marker)
}

// DeleteSessionMarker removes the persisted session marker.
func (s *RecordStore) DeleteSessionMarker(ctx context.Context) error {
	return s.repo.Delete(ctx, SessionKey)
}

func (s *RecordStore) getCollection(ctx context.Context, key string, out any) error {
	data, err := s.repo.Get(ctx, key)
	if err != nil {
		return err
	}
	if data == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode collection %s: %w", key, err)
	}
	return nil
}

func (s *RecordStore) putCollection(ctx context.Context, key string, in any) error {
	data, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}
	return s.repo.Set(ctx, key, data)
}

func (s *RecordStore) seedCollection(ctx context.Context, key string, in any) (bool, error) {
	existing, err := s.repo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	if err := s.putCollection(ctx, key, in); err != nil {
		return false, err
	}
	return true, nil
}
