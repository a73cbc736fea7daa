package mapping

import (
	"errors"
	"time"

	"github.com/SscSPs/notion_quote_viewer/internal/adapters/notion"
	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	"github.com/jomei/notionapi"
	"github.com/shopspring/decimal"
)

// ErrUnusablePage is returned for pages that cannot become a record at all.
var ErrUnusablePage = errors.New("page is not a usable record")

// InvoiceRecord is an invoice whose items have not been resolved yet.
type InvoiceRecord struct {
	Invoice domain.Invoice
	ItemIDs []string
}

// WithItems returns the invoice with the given items attached.
func (r InvoiceRecord) WithItems(items []domain.InvoiceItem) domain.Invoice {
	inv := r.Invoice
	if items == nil {
		items = []domain.InvoiceItem{}
	}
	inv.Items = items
	return inv
}

// ToInvoiceRecord converts an invoice page using the field names of schema.
// CreatedAt and UpdatedAt are stamped with now.
func ToInvoiceRecord(page *notionapi.Page, schema Schema, now time.Time) (InvoiceRecord, error) {
	if page == nil || page.ID == "" {
		return InvoiceRecord{}, ErrUnusablePage
	}
	props := page.Properties

	inv := domain.Invoice{
		ID:            string(page.ID),
		InvoiceNumber: GetTextProperty(props, schema.InvoiceNumber),
		ClientName:    GetTextProperty(props, schema.ClientName),
		IssueDate:     GetDateProperty(props, schema.IssueDate),
		DueDate:       GetDateProperty(props, schema.DueDate),
		Status:        schema.StatusFromLabel(GetSelectProperty(props, schema.Status)),
		TotalAmount:   decimal.NewFromFloat(GetNumberProperty(props, schema.TotalAmount)),
		Currency:      domain.DefaultCurrency,
		Items:         []domain.InvoiceItem{},
		Notes:         GetTextProperty(props, schema.Notes),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	return InvoiceRecord{
		Invoice: inv,
		ItemIDs: GetRelationProperty(props, schema.Items),
	}, nil
}

// ToInvoiceItem converts a line item page. A zero amount is derived from
// quantity and unit price when both are positive; a stored amount always wins.
func ToInvoiceItem(page *notionapi.Page, schema Schema) (domain.InvoiceItem, error) {
	if page == nil || page.ID == "" {
		return domain.InvoiceItem{}, ErrUnusablePage
	}
	props := page.Properties

	quantity := decimal.NewFromFloat(GetNumberProperty(props, schema.ItemQuantity))
	unitPrice := decimal.NewFromFloat(GetNumberProperty(props, schema.ItemUnitPrice))
	amount := decimal.NewFromFloat(GetNumberProperty(props, schema.ItemAmount))
	if amount.IsZero() && quantity.IsPositive() && unitPrice.IsPositive() {
		amount = quantity.Mul(unitPrice)
	}

	return domain.InvoiceItem{
		ID:        string(page.ID),
		Name:      GetTextProperty(props, schema.ItemName),
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Amount:    amount,
	}, nil
}

// ToInvoiceItemProperties builds the property bag for creating an item page.
func ToInvoiceItemProperties(item domain.InvoiceItem, schema Schema) notionapi.Properties {
	return notionapi.Properties{
		schema.ItemName:      notion.Title(item.Name),
		schema.ItemQuantity:  notion.Number(item.Quantity.InexactFloat64()),
		schema.ItemUnitPrice: notion.Number(item.UnitPrice.InexactFloat64()),
		schema.ItemAmount:    notion.Number(item.Amount.InexactFloat64()),
	}
}

// ToInvoiceProperties builds the property bag for creating an invoice page
// related to itemIDs.
func ToInvoiceProperties(inv domain.Invoice, itemIDs []string, schema Schema) notionapi.Properties {
	props := notionapi.Properties{
		schema.InvoiceNumber: notion.Title(inv.InvoiceNumber),
		schema.ClientName:    notion.Text(inv.ClientName),
		schema.IssueDate:     notion.Date(inv.IssueDate),
		schema.DueDate:       notion.Date(inv.DueDate),
		schema.TotalAmount:   notion.Number(inv.TotalAmount.InexactFloat64()),
		schema.Items:         notion.Relation(itemIDs...),
	}
	if label, ok := schema.LabelForStatus(inv.Status); ok {
		props[schema.Status] = notion.Select(label)
	}
	if inv.Notes != "" {
		props[schema.Notes] = notion.Text(inv.Notes)
	}
	return props
}
