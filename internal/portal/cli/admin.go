package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/aquiroz/invoiceportal/internal/common"
	"github.com/aquiroz/invoiceportal/internal/portal/models"
	"github.com/aquiroz/invoiceportal/internal/portal/services"
)

// Upload walks the admin through the new-invoice form. The recipient is an
// exclusive choice: assign by user (picked from the non-admin account list)
// or by document id, never both.
func (a *App) Upload(ctx context.Context) error {
	draft, err := a.promptInvoiceDraft(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	invoice, err := a.invoices.Create(ctx, *draft)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrMissingRecipient):
			fmt.Fprintln(a.out, "Select a user or enter a document id")
		case errors.Is(err, common.ErrMissingFile):
			fmt.Fprintln(a.out, "A file name is required")
		default:
			fmt.Fprintf(a.out, "Invoice creation failed: %v\n", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Invoice created: %s\n", invoice.ID)
	return nil
}

func (a *App) promptInvoiceDraft(ctx context.Context) (*services.InvoiceDraft, error) {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		return nil, err
	}

	amountText, err := GetSimpleText(a.reader, "Amount", a.out)
	if err != nil {
		return nil, err
	}
	amount, err := strconv.ParseFloat(amountText, 64)
	if err != nil || amount < 0 {
		return nil, fmt.Errorf("%w: amount must be a non-negative number", common.ErrValidation)
	}

	date, err := GetSimpleText(a.reader, "Date (yyyy-mm-dd)", a.out)
	if err != nil {
		return nil, err
	}

	status, err := GetSimpleText(a.reader, "Status (paid/pending/overdue)", a.out)
	if err != nil {
		return nil, err
	}
	switch models.InvoiceStatus(status) {
	case models.StatusPaid, models.StatusPending, models.StatusOverdue:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", common.ErrValidation, status)
	}

	draft := services.InvoiceDraft{
		Title:  title,
		Amount: amount,
		Date:   date,
		Status: models.InvoiceStatus(status),
	}

	assign, err := GetSimpleText(a.reader, "Assign by (user/document)", a.out)
	if err != nil {
		return nil, err
	}
	switch assign {
	case "user":
		if err := a.listUsers(ctx); err != nil {
			return nil, err
		}
		draft.AccountID, err = GetSimpleText(a.reader, "User id", a.out)
		if err != nil {
			return nil, err
		}
	case "document":
		draft.DocumentID, err = GetSimpleText(a.reader, "Document id", a.out)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: assignment must be 'user' or 'document'", common.ErrValidation)
	}

	draft.FileName, err = GetSimpleText(a.reader, "File name (e.g. factura.pdf)", a.out)
	if err != nil {
		return nil, err
	}

	return &draft, nil
}

// Users lists all non-admin accounts.
func (a *App) Users(ctx context.Context) error {
	if err := a.listUsers(ctx); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	return nil
}

func (a *App) listUsers(ctx context.Context) error {
	accounts, err := a.accounts.List(ctx, models.RoleAdmin)
	if err != nil {
		return err
	}
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No registered users")
		return nil
	}
	for _, acc := range accounts {
		fmt.Fprintf(a.out, "%s  %-25s  %-25s  doc:%s\n", acc.ID, acc.Name, acc.Email, acc.DocumentID)
	}
	return nil
}

// All lists every invoice in insertion order, the admin view.
func (a *App) All(ctx context.Context) error {
	invoices, err := a.invoices.ListAll(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}
	if len(invoices) == 0 {
		fmt.Fprintln(a.out, "No invoices")
		return nil
	}
	for _, inv := range invoices {
		printInvoice(a.out, inv)
	}
	return nil
}
