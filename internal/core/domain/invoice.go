package domain

import "time"

// InvoiceStatus is the payment state of an invoice.
type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "Pending"
	InvoicePaid    InvoiceStatus = "Paid"
)

// ValidInvoiceStatus reports whether s is a known invoice status.
func ValidInvoiceStatus(s InvoiceStatus) bool {
	return s == InvoicePending || s == InvoicePaid
}

// Invoice is a billing record, optionally attached to a project.
type Invoice struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	ProjectID  string        `json:"project_id,omitempty"`
	ClientName string        `json:"client_name"`
	Services   string        `json:"services,omitempty"`
	Amount     float64       `json:"amount"`
	Date       time.Time     `json:"date"`
	DueDate    time.Time     `json:"due_date,omitempty"`
	Status     InvoiceStatus `json:"status"`
}
