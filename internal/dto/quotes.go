package dto

import "github.com/SscSPs/notion_quote_viewer/internal/core/domain"

// QuotesQuery is the query string of GET /api/notion/quotes. Exactly one of
// ID, List or Token selects the mode.
type QuotesQuery struct {
	ID     string `form:"id"`
	List   bool   `form:"list"`
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected"`
	Token  string `form:"token"`
}

// ErrorResponse is the body of every failed API call.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"`
}

// NewErrorResponse builds a failure body.
func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

// InvoiceResponse wraps a single invoice.
type InvoiceResponse struct {
	Success bool           `json:"success" example:"true"`
	Data    domain.Invoice `json:"data"`
}

// InvoiceListResponse wraps a list of invoices.
type InvoiceListResponse struct {
	Success bool             `json:"success" example:"true"`
	Data    []domain.Invoice `json:"data"`
}

// ToInvoiceResponse converts a domain invoice to its API envelope.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{Success: true, Data: *inv}
}

// ToInvoiceListResponse converts invoices to their API envelope. A nil slice encodes as [].
func ToInvoiceListResponse(invoices []domain.Invoice) InvoiceListResponse {
	if invoices == nil {
		invoices = []domain.Invoice{}
	}
	return InvoiceListResponse{Success: true, Data: invoices}
}
