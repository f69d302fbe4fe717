// Package matching computes which invoices are visible to a viewer.
//
// An invoice is addressed either to a specific account id or to an external
// document id. The two keys are independent: a document-id binding matches
// every account sharing that document id, regardless of which account the
// invoice was originally meant for.
package matching

import "github.com/aquiroz/invoiceportal/internal/portal/models"

// Matches reports whether inv is visible to viewer: either the invoice is
// bound to the viewer's account id, or it carries a document id equal to
// the viewer's.
func Matches(viewer models.Account, inv models.Invoice) bool {
	if inv.AccountID != "" && inv.AccountID == viewer.ID {
		return true
	}
	return inv.DocumentID != "" && inv.DocumentID == viewer.DocumentID
}

// Visible filters invoices down to the subset visible to viewer, preserving
// input order. Each invoice appears at most once even when both binding
// keys match.
func Visible(viewer models.Account, invoices []models.Invoice) []models.Invoice {
	result := make([]models.Invoice, 0)
	for _, inv := range invoices {
		if Matches(viewer, inv) {
			result = append(result, inv)
		}
	}
	return result
}

// Orphaned reports whether inv has no recipient binding at all. Such a
// record is unreachable by any viewer and should be treated as a
// data-quality problem.
func Orphaned(inv models.Invoice) bool {
	return inv.AccountID == "" && inv.DocumentID == ""
}
