package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aquiroz/invoiceportal/internal/common"
	"github.com/aquiroz/invoiceportal/internal/logging"
	"github.com/aquiroz/invoiceportal/internal/portal/matching"
	"github.com/aquiroz/invoiceportal/internal/portal/models"
	"github.com/aquiroz/invoiceportal/internal/portal/store"
	"github.com/google/uuid"
)

// placeholderFileURL stands in for the location a real upload would return.
const placeholderFileURL = "#"

// InvoiceDraft carries the admin form fields for a new invoice. Exactly one
// of AccountID/DocumentID must be set.
type InvoiceDraft struct {
	Title      string
	Amount     float64
	Date       string
	Status     models.InvoiceStatus
	AccountID  string
	DocumentID string
	FileName   string
}

// InvoiceService manages the invoice collection.
type InvoiceService struct {
	store   *store.RecordStore
	log     logging.Logger
	latency time.Duration
}

func NewInvoiceService(s *store.RecordStore, log logging.Logger, latency time.Duration) *InvoiceService {
	return &InvoiceService{store: s, log: log.With("component", "invoices"), latency: latency}
}

// Create validates the draft, assigns a fresh id and placeholder file
// reference, and appends the invoice to the store. The recipient binding is
// enforced as an exclusive choice at write time: no binding fails with
// ErrMissingRecipient, both bindings with ErrConflictingRecipient. A missing
// file name fails with ErrMissingFile. On any failure the collection is
// left unchanged.
func (s *InvoiceService) Create(ctx context.Context, draft InvoiceDraft) (models.Invoice, error) {
	if draft.AccountID == "" && draft.DocumentID == "" {
		return models.Invoice{}, common.ErrMissingRecipient
	}
	if draft.AccountID != "" && draft.DocumentID != "" {
		return models.Invoice{}, common.ErrConflictingRecipient
	}
	if draft.FileName == "" {
		return models.Invoice{}, common.ErrMissingFile
	}

	if err := pause(ctx, s.latency); err != nil {
		return models.Invoice{}, err
	}

	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("failed to load invoices: %w", err)
	}

	invoice := models.Invoice{
		ID:         uuid.NewString(),
		Title:      draft.Title,
		Amount:     draft.Amount,
		Date:       draft.Date,
		Status:     draft.Status,
		AccountID:  draft.AccountID,
		DocumentID: draft.DocumentID,
		FileName:   draft.FileName,
		FileURL:    placeholderFileURL,
	}

	invoices = append(invoices, invoice)
	if err := s.store.PutInvoices(ctx, invoices); err != nil {
		return models.Invoice{}, fmt.Errorf("failed to save invoices: %w", err)
	}

	s.log.Info(ctx, "invoice created", "id", invoice.ID, "title", invoice.Title)
	return invoice, nil
}

// ListAll returns every invoice in insertion order (newest last). Callers
// wanting recency first must sort explicitly.
func (s *InvoiceService) ListAll(ctx context.Context) ([]models.Invoice, error) {
	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	return invoices, nil
}

// ListForViewer returns the invoices visible to the given account, in store
// order. Ordering for display is the caller's concern.
func (s *InvoiceService) ListForViewer(ctx context.Context, viewer models.Account) ([]models.Invoice, error) {
	if err := pause(ctx, s.latency); err != nil {
		return nil, err
	}

	invoices, err := s.store.Invoices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load invoices: %w", err)
	}
	return matching.Visible(viewer, invoices), nil
}
