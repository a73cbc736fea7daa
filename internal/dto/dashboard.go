package dto

import (
	"sort"

	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecentInvoiceLimit is how many invoices the dashboard lists.
const RecentInvoiceLimit = 5

// DashboardSummary aggregates invoices for the admin dashboard.
type DashboardSummary struct {
	TotalCount    int                          `json:"totalCount"`
	StatusCounts  map[domain.InvoiceStatus]int `json:"statusCounts"`
	TotalAmount   decimal.Decimal              `json:"totalAmount"`
	PendingAmount decimal.Decimal              `json:"pendingAmount"`
	Recent        []domain.Invoice             `json:"recent"`
}

// ToDashboardSummary computes counts and amounts and picks the most recent
// invoices by issue date. The input is not modified.
func ToDashboardSummary(invoices []domain.Invoice) DashboardSummary {
	s := DashboardSummary{
		TotalCount:    len(invoices),
		StatusCounts:  make(map[domain.InvoiceStatus]int, len(domain.InvoiceStatuses)),
		TotalAmount:   decimal.Zero,
		PendingAmount: decimal.Zero,
	}
	for _, st := range domain.InvoiceStatuses {
		s.StatusCounts[st] = 0
	}
	for _, inv := range invoices {
		s.StatusCounts[inv.Status]++
		s.TotalAmount = s.TotalAmount.Add(inv.TotalAmount)
		if inv.Status == domain.StatusPending {
			s.PendingAmount = s.PendingAmount.Add(inv.TotalAmount)
		}
	}

	sorted := SortByIssueDateDesc(invoices)
	if len(sorted) > RecentInvoiceLimit {
		sorted = sorted[:RecentInvoiceLimit]
	}
	s.Recent = sorted
	return s
}

// SortByIssueDateDesc returns a copy of invoices, newest issue date first.
// ISO calendar dates sort correctly as strings; blank dates go last.
func SortByIssueDateDesc(invoices []domain.Invoice) []domain.Invoice {
	out := make([]domain.Invoice, len(invoices))
	copy(out, invoices)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IssueDate > out[j].IssueDate
	})
	return out
}

// FilterByStatus returns the invoices with status, or all when status is nil.
func FilterByStatus(invoices []domain.Invoice, status *domain.InvoiceStatus) []domain.Invoice {
	if status == nil {
		return invoices
	}
	out := make([]domain.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if inv.Status == *status {
			out = append(out, inv)
		}
	}
	return out
}

// StatusTab is one filter tab of the admin invoice table. An empty Status is the "all" tab.
type StatusTab struct {
	Status domain.InvoiceStatus
	Count  int
	Active bool
}

// InvoiceTable is the admin invoice table: tabs counted over every invoice and
// the rows of the active tab, newest first.
type InvoiceTable struct {
	Tabs  []StatusTab
	Rows  []domain.Invoice
	Total int
}

// ToInvoiceTable builds the table for the active status, or for all invoices when status is nil.
func ToInvoiceTable(invoices []domain.Invoice, status *domain.InvoiceStatus) InvoiceTable {
	counts := make(map[domain.InvoiceStatus]int, len(domain.InvoiceStatuses))
	for _, inv := range invoices {
		counts[inv.Status]++
	}

	tabs := []StatusTab{{Count: len(invoices), Active: status == nil}}
	for _, st := range domain.InvoiceStatuses {
		tabs = append(tabs, StatusTab{Status: st, Count: counts[st], Active: status != nil && *status == st})
	}

	return InvoiceTable{
		Tabs:  tabs,
		Rows:  SortByIssueDateDesc(FilterByStatus(invoices, status)),
		Total: len(invoices),
	}
}
