package cli

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aquiroz/invoiceportal/internal/portal/models"
)

// Invoices lists the invoices visible to the logged-in user, newest first.
// A non-empty filter keeps only invoices whose title contains it
// (case-insensitive), mirroring the dashboard search box.
func (a *App) Invoices(ctx context.Context, filter string) error {
	viewer, ok := a.session.Account()
	if !ok {
		fmt.Fprintln(a.out, "Not logged in")
		return nil
	}

	invoices, err := a.invoices.ListForViewer(ctx, viewer)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return err
	}

	// Dates are ISO yyyy-mm-dd, so lexicographic order is date order.
	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].Date > invoices[j].Date
	})

	if filter != "" {
		needle := strings.ToLower(filter)
		kept := invoices[:0]
		for _, inv := range invoices {
			if strings.Contains(strings.ToLower(inv.Title), needle) {
				kept = append(kept, inv)
			}
		}
		invoices = kept
	}

	if len(invoices) == 0 {
		fmt.Fprintln(a.out, "No invoices found")
		return nil
	}

	for _, inv := range invoices {
		printInvoice(a.out, inv)
	}
	return nil
}

func printInvoice(w io.Writer, inv models.Invoice) {
	binding := "account:" + inv.AccountID
	if inv.AccountID == "" {
		binding = "document:" + inv.DocumentID
	}
	fmt.Fprintf(w, "%s  %-35s  $%10.2f  %-8s  %s  [%s]\n",
		inv.Date, inv.Title, inv.Amount, inv.Status, binding, inv.FileName)
}
