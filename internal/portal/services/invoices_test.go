package services

import (
	"context"
	"testing"

	"github.com/aquiroz/invoiceportal/internal/common"
	"github.com/aquiroz/invoiceportal/internal/portal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() InvoiceDraft {
	return InvoiceDraft{
		Title:     "Factura Servicio Marzo",
		Amount:    300.75,
		Date:      "2024-03-01",
		Status:    models.StatusPending,
		AccountID: "u_demo",
		FileName:  "factura-marzo.pdf",
	}
}

func TestCreate_ByAccountBinding(t *testing.T) {
	s := setupSeededStore(t)
	svc := NewInvoiceService(s, testLogger(), 0)
	ctx := context.Background()

	invoice, err := svc.Create(ctx, validDraft())
	require.NoError(t, err)

	assert.NotEmpty(t, invoice.ID)
	assert.Equal(t, "u_demo", invoice.AccountID)
	assert.Empty(t, invoice.DocumentID)
	assert.Equal(t, "#", invoice.FileURL, "file reference is a placeholder")

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, invoice.ID, all[len(all)-1].ID, "new invoices append at the end")
}

func TestCreate_ByDocumentBinding(t *testing.T) {
	s := setupSeededStore(t)
	svc := NewInvoiceService(s, testLogger(), 0)
	ctx := context.Background()

	draft := validDraft()
	draft.AccountID = ""
	draft.DocumentID = "55555"

	invoice, err := svc.Create(ctx, draft)
	require.NoError(t, err)
	assert.Equal(t, "55555", invoice.DocumentID)
	assert.Empty(t, invoice.AccountID)
}

func TestCreate_MissingRecipientLeavesCollectionUnchanged(t *testing.T) {
	s := setupSeededStore(t)
	svc := NewInvoiceService(s, testLogger(), 0)
	ctx := context.Background()

	before, err := svc.ListAll(ctx)
	require.NoError(t, err)

	draft := validDraft()
	draft.AccountID = ""
	draft.DocumentID = ""

	_, err = svc.Create(ctx, draft)
	require.ErrorIs(t, err, common.ErrMissingRecipient)

	after, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before))
}

func TestCreate_BothBindingsRejected(t *testing.T) {
	s := setupSeededStore(t)
	svc := NewInvoiceService(s, testLogger(), 0)
	ctx := context.Background()

	draft := validDraft()
	draft.DocumentID = "55555"

	_, err := svc.Create(ctx, draft)
	require.ErrorIs(t, err, common.ErrConflictingRecipient)
}

func TestCreate_MissingFileRejected(t *testing.T) {
	s := setupSeededStore(t)
	svc := NewInvoiceService(s, testLogger(), 0)
	ctx := context.Background()

	draft := validDraft()
	draft.FileName = ""

	_, err := svc.Create(ctx, draft)
	require.ErrorIs(t, err, common.ErrMissingFile)
}

func TestListAll_InsertionOrder(t *testing.T) {
	s := setupSeededStore(t)
	svc := NewInvoiceService(s, testLogger(), 0)
	ctx := context.Background()

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "inv_1", all[0].ID)
	assert.Equal(t, "inv_2", all[1].ID)
}

func TestListForViewer_SeededDemoUserSeesBoth(t *testing.T) {
	s := setupSeededStore(t)
	svc := NewInvoiceService(s, testLogger(), 0)
	ctx := context.Background()

	// inv_1 is bound to u_demo's account, inv_2 to its document id.
	viewer := models.Account{ID: "u_demo", DocumentID: "12345"}

	visible, err := svc.ListForViewer(ctx, viewer)
	require.NoError(t, err)
	require.Len(t, visible, 2)
}

func TestListForViewer_AdminSeesNothingByDefault(t *testing.T) {
	s := setupSeededStore(t)
	svc := NewInvoiceService(s, testLogger(), 0)
	ctx := context.Background()

	// The seeded admin has no invoice addressed to it.
	viewer := models.Account{ID: "u_admin", DocumentID: "00000000"}

	visible, err := svc.ListForViewer(ctx, viewer)
	require.NoError(t, err)
	assert.Empty(t, visible)
}
