package mapping

import (
	"fmt"

	"github.com/SscSPs/notion_quote_viewer/internal/apperrors"
	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
)

// Schema names the external fields of the invoice and item databases and carries
// the localized status labels. One value exists per field-naming convention.
type Schema struct {
	Name string

	InvoiceNumber string
	ClientName    string
	IssueDate     string
	DueDate       string
	TotalAmount   string
	Status        string
	Notes         string
	Items         string

	ItemName      string
	ItemQuantity  string
	ItemUnitPrice string
	ItemAmount    string

	statusLabels map[domain.InvoiceStatus]string
}

// KoreanInvoiceSchema matches the Korean-named invoice database.
var KoreanInvoiceSchema = Schema{
	Name:          "ko",
	InvoiceNumber: "견적서 번호",
	ClientName:    "클라이언트 이름",
	IssueDate:     "발행일",
	DueDate:       "유효기간",
	TotalAmount:   "총금액",
	Status:        "상태",
	Notes:         "비고",
	Items:         "항목",
	ItemName:      "항목명",
	ItemQuantity:  "수량",
	ItemUnitPrice: "단가",
	ItemAmount:    "금액",
	statusLabels: map[domain.InvoiceStatus]string{
		domain.StatusPending:  "대기",
		domain.StatusApproved: "승인",
		domain.StatusRejected: "거절",
	},
}

// EnglishInvoiceSchema matches the English-named invoice database.
var EnglishInvoiceSchema = Schema{
	Name:          "en",
	InvoiceNumber: "Invoice Number",
	ClientName:    "Client Name",
	IssueDate:     "Issue Date",
	DueDate:       "Due Date",
	TotalAmount:   "Total Amount",
	Status:        "Status",
	Notes:         "Notes",
	Items:         "Items",
	ItemName:      "Name",
	ItemQuantity:  "Quantity",
	ItemUnitPrice: "Unit Price",
	ItemAmount:    "Amount",
	statusLabels: map[domain.InvoiceStatus]string{
		domain.StatusPending:  "Pending",
		domain.StatusApproved: "Approved",
		domain.StatusRejected: "Rejected",
	},
}

// SchemaByName resolves the NOTION_SCHEMA setting.
func SchemaByName(name string) (Schema, error) {
	switch name {
	case "", KoreanInvoiceSchema.Name:
		return KoreanInvoiceSchema, nil
	case EnglishInvoiceSchema.Name:
		return EnglishInvoiceSchema, nil
	}
	return Schema{}, fmt.Errorf("%w: unknown notion schema %q", apperrors.ErrConfig, name)
}

// StatusFromLabel maps a stored label to the internal status. Unknown or blank
// labels read as pending.
func (s Schema) StatusFromLabel(label string) domain.InvoiceStatus {
	for status, l := range s.statusLabels {
		if l == label {
			return status
		}
	}
	return domain.StatusPending
}

// LabelForStatus maps an internal status to its stored label. ok is false for
// statuses the schema has no label for.
func (s Schema) LabelForStatus(status domain.InvoiceStatus) (string, bool) {
	label, ok := s.statusLabels[status]
	return label, ok
}
