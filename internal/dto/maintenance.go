package dto

import "github.com/SscSPs/notion_quote_viewer/internal/core/domain"

// RevalidateRequest names the cache tag to evict. It is read from the query
// string on GET and from the JSON body on POST.
type RevalidateRequest struct {
	Tag    string `form:"tag" json:"tag"`
	Secret string `form:"secret" json:"secret"`
}

// MessageResponse is a success body carrying only a message.
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
}

// CleanupResponse reports a duplicate cleanup run.
type CleanupResponse struct {
	Success      bool                   `json:"success" example:"true"`
	Message      string                 `json:"message"`
	DeletedCount int                    `json:"deletedCount"`
	FailedCount  int                    `json:"failedCount"`
	DeletedIDs   []string               `json:"deletedIds"`
	FailedIDs    []domain.FailedArchive `json:"failedIds"`
}

// ToCleanupResponse converts a cleanup result to its API body.
func ToCleanupResponse(r *domain.CleanupResult) CleanupResponse {
	msg := "중복 제거 완료"
	if r.DeletedCount() == 0 && r.FailedCount() == 0 {
		msg = "중복 견적서가 없습니다."
	}
	return CleanupResponse{
		Success:      true,
		Message:      msg,
		DeletedCount: r.DeletedCount(),
		FailedCount:  r.FailedCount(),
		DeletedIDs:   r.DeletedIDs,
		FailedIDs:    r.Failed,
	}
}

// SeedInvoice identifies the invoice created by a seed run.
type SeedInvoice struct {
	ID        string `json:"id"`
	Number    string `json:"number"`
	ItemCount int    `json:"itemCount"`
}

// SeedResponse reports a seed run.
type SeedResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message"`
	Invoice SeedInvoice `json:"invoice"`
}

// ToSeedResponse converts a seed result to its API body.
func ToSeedResponse(r *domain.SeedResult) SeedResponse {
	return SeedResponse{
		Success: true,
		Message: "샘플 데이터가 성공적으로 생성되었습니다!",
		Invoice: SeedInvoice{ID: r.InvoiceID, Number: r.InvoiceNumber, ItemCount: r.ItemCount()},
	}
}
