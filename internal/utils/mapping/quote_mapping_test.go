package mapping_test

import (
	"testing"

	"github.com/SscSPs/notion_quote_viewer/internal/adapters/notion"
	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	"github.com/SscSPs/notion_quote_viewer/internal/utils/mapping"
	"github.com/jomei/notionapi"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quotePage(items string) *notionapi.Page {
	return &notionapi.Page{ID: "q-1", Properties: mapping.Properties{
		"Quote Number": notion.Title("Q-2026-010"),
		"Share Token":  notion.Text("tok-abc"),
		"Client Name":  notion.Text("Acme"),
		"Quote Date":   notion.Date("2026-02-10"),
		"Due Date":     notion.Date("2026-03-10"),
		"Tax":          notion.Number(100),
		"Currency":     notion.Select("USD"),
		"Status":       notion.Select("Accepted"),
		"Items":        notion.Text(items),
	}}
}

func TestToQuote(t *testing.T) {
	q := mapping.ToQuote(quotePage(`[
		{"name":"Design","description":"landing page","quantity":2,"unitPrice":500},
		{"id":"x","name":"Hosting","quantity":1,"unitPrice":100,"subtotal":80}
	]`), "", fixedNow)
	require.NotNil(t, q)

	assert.Equal(t, "q-1", q.ID)
	assert.Equal(t, "tok-abc", q.ShareToken)
	assert.Equal(t, "Q-2026-010", q.QuoteNumber)
	assert.Equal(t, domain.USD, q.Currency)
	assert.Equal(t, domain.QuoteAccepted, q.Status)
	require.Len(t, q.Items, 2)
	assert.Equal(t, "q-1-1", q.Items[0].ID)
	assert.True(t, decimal.NewFromInt(1000).Equal(q.Items[0].Subtotal))
	assert.True(t, decimal.NewFromInt(80).Equal(q.Items[1].Subtotal))
	assert.True(t, decimal.NewFromInt(1080).Equal(q.Subtotal))
	assert.True(t, decimal.NewFromInt(1180).Equal(q.Total))
	assert.Equal(t, fixedNow, q.CreatedAt)
}

func TestToQuote_ExplicitShareTokenWins(t *testing.T) {
	q := mapping.ToQuote(quotePage(""), "from-url", fixedNow)
	require.NotNil(t, q)
	assert.Equal(t, "from-url", q.ShareToken)
	assert.Empty(t, q.Items)
}

func TestToQuote_MalformedIsNil(t *testing.T) {
	assert.Nil(t, mapping.ToQuote(nil, "t", fixedNow))
	assert.Nil(t, mapping.ToQuote(&notionapi.Page{}, "t", fixedNow))
	assert.Nil(t, mapping.ToQuote(quotePage(`{not json`), "t", fixedNow))
	assert.Nil(t, mapping.ToQuote(quotePage(`[{"quantity":"abc"}]`), "t", fixedNow))
}

func TestToQuote_UnknownStatusAndCurrency(t *testing.T) {
	page := quotePage("[]")
	page.Properties["Status"] = notion.Select("Archived")
	page.Properties["Currency"] = notion.Select("GBP")

	q := mapping.ToQuote(page, "", fixedNow)
	require.NotNil(t, q)
	assert.Equal(t, domain.QuoteDraft, q.Status)
	assert.Equal(t, domain.KRW, q.Currency)

	inv := q.AsInvoice()
	assert.Equal(t, domain.StatusPending, inv.Status)
	assert.Equal(t, "Q-2026-010", inv.InvoiceNumber)
}
