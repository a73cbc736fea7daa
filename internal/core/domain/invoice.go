package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus is the internal status of an invoice. The document store keeps a
// localized label instead; see mapping.Schema for the translation table.
type InvoiceStatus string

const (
	StatusPending  InvoiceStatus = "pending"
	StatusApproved InvoiceStatus = "approved"
	StatusRejected InvoiceStatus = "rejected"
)

// InvoiceStatuses lists every status in display order.
var InvoiceStatuses = []InvoiceStatus{StatusPending, StatusApproved, StatusRejected}

// IsValid reports whether s is one of the known statuses.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Currency is an ISO currency code.
type Currency string

const (
	KRW Currency = "KRW"
	USD Currency = "USD"
	EUR Currency = "EUR"
	JPY Currency = "JPY"
)

// DefaultCurrency is used when the source record carries no currency.
const DefaultCurrency = KRW

// ParseCurrency returns the matching currency or DefaultCurrency.
func ParseCurrency(code string) Currency {
	switch c := Currency(code); c {
	case KRW, USD, EUR, JPY:
		return c
	}
	return DefaultCurrency
}

// InvoiceItem is a single line of an invoice, stored upstream as a related record.
type InvoiceItem struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Amount    decimal.Decimal `json:"amount"`
}

// Invoice is the canonical quote/invoice entity.
//
// CreatedAt and UpdatedAt are stamped when the record is transformed, not read from
// the document store, so they must not be used as audit timestamps.
type Invoice struct {
	ID            string          `json:"id"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ClientName    string          `json:"clientName"`
	IssueDate     string          `json:"issueDate"` // YYYY-MM-DD
	DueDate       string          `json:"dueDate"`   // YYYY-MM-DD
	Status        InvoiceStatus   `json:"status"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Currency      Currency        `json:"currency"`
	Items         []InvoiceItem   `json:"items"`
	Notes         string          `json:"notes,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ItemsTotal sums the line amounts. Nothing enforces that it matches TotalAmount.
func (inv Invoice) ItemsTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, item := range inv.Items {
		sum = sum.Add(item.Amount)
	}
	return sum
}
