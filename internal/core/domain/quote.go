package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// QuoteStatus is the five-state status of the legacy quote schema.
type QuoteStatus string

const (
	QuoteDraft    QuoteStatus = "draft"
	QuoteSent     QuoteStatus = "sent"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteRejected QuoteStatus = "rejected"
	QuoteExpired  QuoteStatus = "expired"
)

// ParseQuoteStatus is case-insensitive on the raw label and falls back to draft.
func ParseQuoteStatus(raw string) QuoteStatus {
	switch s := QuoteStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case QuoteDraft, QuoteSent, QuoteAccepted, QuoteRejected, QuoteExpired:
		return s
	}
	return QuoteDraft
}

// QuoteItem is a line of a quote.
type QuoteItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Quote is the legacy shape of an invoice, addressed externally by ShareToken.
type Quote struct {
	ID          string          `json:"id"`
	ShareToken  string          `json:"shareToken"`
	ClientName  string          `json:"clientName"`
	QuoteNumber string          `json:"quoteNumber"`
	QuoteDate   string          `json:"quoteDate"`
	DueDate     string          `json:"dueDate"`
	Items       []QuoteItem     `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
	Currency    Currency        `json:"currency"`
	Status      QuoteStatus     `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// AsInvoice maps the quote onto the canonical Invoice so both schemas share one
// presentation path.
func (q Quote) AsInvoice() Invoice {
	items := make([]InvoiceItem, 0, len(q.Items))
	for _, it := range q.Items {
		items = append(items, InvoiceItem{
			ID:        it.ID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Amount:    it.Subtotal,
		})
	}
	return Invoice{
		ID:            q.ID,
		InvoiceNumber: q.QuoteNumber,
		ClientName:    q.ClientName,
		IssueDate:     q.QuoteDate,
		DueDate:       q.DueDate,
		Status:        q.Status.InvoiceStatus(),
		TotalAmount:   q.Total,
		Currency:      q.Currency,
		Items:         items,
		Notes:         q.Notes,
		CreatedAt:     q.CreatedAt,
		UpdatedAt:     q.UpdatedAt,
	}
}

// InvoiceStatus collapses the quote lifecycle onto the three invoice states.
func (s QuoteStatus) InvoiceStatus() InvoiceStatus {
	switch s {
	case QuoteAccepted:
		return StatusApproved
	case QuoteRejected, QuoteExpired:
		return StatusRejected
	default:
		return StatusPending
	}
}
