package models

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	StatusPaid    InvoiceStatus = "paid"
	StatusPending InvoiceStatus = "pending"
	StatusOverdue InvoiceStatus = "overdue"
)

// Invoice is a billing document addressed to a recipient either by account
// id or by external document id. Exactly one of AccountID/DocumentID is set
// on records created through the invoice service; an invoice with neither
// binding is orphaned and unreachable by any viewer.
//
// FileName is attachment metadata only; FileURL is a placeholder standing in
// for a real file location.
type Invoice struct {
	ID         string        `json:"id"`
	Title      string        `json:"title"`
	Amount     float64       `json:"amount"`
	Date       string        `json:"date"`
	Status     InvoiceStatus `json:"status"`
	AccountID  string        `json:"accountId,omitempty"`
	DocumentID string        `json:"documentId,omitempty"`
	FileName   string        `json:"fileName"`
	FileURL    string        `json:"fileUrl"`
}
