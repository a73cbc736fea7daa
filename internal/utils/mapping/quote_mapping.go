package mapping

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	"github.com/jomei/notionapi"
	"github.com/shopspring/decimal"
)

// Field names of the English-named quote database.
const (
	QuoteFieldNumber     = "Quote Number"
	QuoteFieldShareToken = "Share Token"
	QuoteFieldClientName = "Client Name"
	QuoteFieldQuoteDate  = "Quote Date"
	QuoteFieldDueDate    = "Due Date"
	QuoteFieldSubtotal   = "Subtotal"
	QuoteFieldTax        = "Tax"
	QuoteFieldTotal      = "Total"
	QuoteFieldCurrency   = "Currency"
	QuoteFieldStatus     = "Status"
	QuoteFieldNotes      = "Notes"
	QuoteFieldItems      = "Items"
)

// ToQuote converts a quote page. Quote items are stored flattened as a JSON array
// in the Items text property. Any failure yields nil so one bad record reads as
// absent instead of aborting its caller.
func ToQuote(page *notionapi.Page, shareToken string, now time.Time) (q *domain.Quote) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("quote transform panicked", slog.Any("panic", r))
			q = nil
		}
	}()

	if page == nil || page.ID == "" {
		return nil
	}
	props := page.Properties

	items, err := parseQuoteItems(string(page.ID), GetTextProperty(props, QuoteFieldItems))
	if err != nil {
		slog.Warn("quote items are not valid JSON", slog.String("page_id", string(page.ID)), slog.String("error", err.Error()))
		return nil
	}

	subtotal := decimal.NewFromFloat(GetNumberProperty(props, QuoteFieldSubtotal))
	if subtotal.IsZero() {
		for _, it := range items {
			subtotal = subtotal.Add(it.Subtotal)
		}
	}
	tax := decimal.NewFromFloat(GetNumberProperty(props, QuoteFieldTax))
	total := decimal.NewFromFloat(GetNumberProperty(props, QuoteFieldTotal))
	if total.IsZero() {
		total = subtotal.Add(tax)
	}

	if shareToken == "" {
		shareToken = GetTextProperty(props, QuoteFieldShareToken)
	}

	return &domain.Quote{
		ID:          string(page.ID),
		ShareToken:  shareToken,
		ClientName:  GetTextProperty(props, QuoteFieldClientName),
		QuoteNumber: GetTextProperty(props, QuoteFieldNumber),
		QuoteDate:   GetDateProperty(props, QuoteFieldQuoteDate),
		DueDate:     GetDateProperty(props, QuoteFieldDueDate),
		Items:       items,
		Subtotal:    subtotal,
		Tax:         tax,
		Total:       total,
		Currency:    domain.ParseCurrency(GetSelectProperty(props, QuoteFieldCurrency)),
		Status:      domain.ParseQuoteStatus(GetSelectProperty(props, QuoteFieldStatus)),
		Notes:       GetTextProperty(props, QuoteFieldNotes),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func parseQuoteItems(pageID, raw string) ([]domain.QuoteItem, error) {
	items := []domain.QuoteItem{}
	if strings.TrimSpace(raw) == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.QuoteItem{}
	}
	for i := range items {
		if items[i].ID == "" {
			items[i].ID = fmt.Sprintf("%s-%d", pageID, i+1)
		}
		if items[i].Subtotal.IsZero() && items[i].Quantity.IsPositive() && items[i].UnitPrice.IsPositive() {
			items[i].Subtotal = items[i].Quantity.Mul(items[i].UnitPrice)
		}
	}
	return items, nil
}
