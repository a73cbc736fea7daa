package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/notion_quote_viewer/internal/adapters/notion"
	"github.com/SscSPs/notion_quote_viewer/internal/apperrors"
	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	portsrepo "github.com/SscSPs/notion_quote_viewer/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/notion_quote_viewer/internal/core/ports/services"
	"github.com/SscSPs/notion_quote_viewer/internal/utils/mapping"
)

// quoteService reads the legacy quote database, where records are addressed by share token.
type quoteService struct {
	BaseService
	pages      portsrepo.PageReaderRepository
	databaseID string
}

// NewQuoteService creates a quote service. An empty databaseID disables lookups.
func NewQuoteService(pages portsrepo.PageReaderRepository, databaseID string, base BaseService) portssvc.QuoteSvcFacade {
	return &quoteService{BaseService: base, pages: pages, databaseID: databaseID}
}

var _ portssvc.QuoteSvcFacade = (*quoteService)(nil)

func (s *quoteService) GetQuoteByShareToken(ctx context.Context, token string) (*domain.Quote, error) {
	if s.databaseID == "" {
		return nil, fmt.Errorf("%w: quote database id is not set", apperrors.ErrConfig)
	}
	if token == "" {
		return nil, fmt.Errorf("%w: share token is required", apperrors.ErrValidation)
	}

	pages, err := s.pages.QueryDatabase(ctx, s.databaseID, notion.RichTextEquals(mapping.QuoteFieldShareToken, token))
	if err != nil {
		s.LogError(ctx, err, "Failed to query quote database", slog.String("share_token", token))
		return nil, fmt.Errorf("failed to query quotes: %w", err)
	}
	if len(pages) == 0 {
		return nil, nil
	}
	if len(pages) > 1 {
		s.LogInfo(ctx, "Share token matches several quotes, using the first", slog.String("share_token", token), slog.Int("matches", len(pages)))
	}

	q := mapping.ToQuote(&pages[0], token, s.now())
	if q == nil {
		s.LogInfo(ctx, "Quote record is malformed, treating as absent", slog.String("page_id", string(pages[0].ID)))
	}
	return q, nil
}
