package notion

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/notion_quote_viewer/internal/apperrors"
	"github.com/jomei/notionapi"
)

const (
	DefaultBaseURL = "https://api.notion.com"
	DefaultVersion = "2022-06-28"

	defaultTimeout = 15 * time.Second
	queryPageSize  = 100
)

// Client adapts notionapi to the page repository ports. It is safe for concurrent use.
type Client struct {
	api *notionapi.Client

	baseURL    string
	version    string
	httpClient *http.Client
	logger     *slog.Logger
	ctxLogger  func(context.Context) *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the default http.Client. Its transport is wrapped for logging.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithVersion sets the Notion-Version header.
func WithVersion(version string) Option {
	return func(c *Client) {
		c.version = version
	}
}

// WithLogger sets the fallback logger used when the context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithContextLogger resolves a request-scoped logger for each outbound call.
func WithContextLogger(fn func(context.Context) *slog.Logger) Option {
	return func(c *Client) {
		c.ctxLogger = fn
	}
}

// NewClient validates the credential eagerly and returns a ready client.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("%w: notion api key is empty", apperrors.ErrConfig)
	}
	c := &Client{
		baseURL:    DefaultBaseURL,
		version:    DefaultVersion,
		httpClient: &http.Client{Timeout: defaultTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}

	base, err := url.Parse(c.baseURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("%w: invalid notion base url %q", apperrors.ErrConfig, c.baseURL)
	}

	next := c.httpClient.Transport
	if next == nil {
		next = http.DefaultTransport
	}
	hc := *c.httpClient
	hc.Transport = &loggingTransport{base: base, next: next, client: c}

	c.api = notionapi.NewClient(
		notionapi.Token(apiKey),
		notionapi.WithHTTPClient(&hc),
		notionapi.WithVersion(c.version),
	)
	return c, nil
}

// RetrievePage fetches a single page by id.
func (c *Client) RetrievePage(ctx context.Context, pageID string) (*notionapi.Page, error) {
	page, err := c.api.Page.Get(ctx, notionapi.PageID(pageID))
	if err != nil {
		return nil, wrapError(err)
	}
	return page, nil
}

// QueryDatabase returns every page of a database matching filter, following cursors
// until the result set is exhausted. A nil filter returns all pages.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, filter notionapi.Filter) ([]notionapi.Page, error) {
	var pages []notionapi.Page
	var cursor notionapi.Cursor
	for {
		req := &notionapi.DatabaseQueryRequest{StartCursor: cursor, PageSize: queryPageSize}
		if filter != nil {
			req.Filter = filter
		}
		resp, err := c.api.Database.Query(ctx, notionapi.DatabaseID(databaseID), req)
		if err != nil {
			return nil, wrapError(err)
		}
		pages = append(pages, resp.Results...)
		if !resp.HasMore || resp.NextCursor == "" {
			break
		}
		cursor = resp.NextCursor
	}
	return pages, nil
}

// ArchivePage soft-deletes a page.
func (c *Client) ArchivePage(ctx context.Context, pageID string) (*notionapi.Page, error) {
	page, err := c.api.Page.Update(ctx, notionapi.PageID(pageID), &notionapi.PageUpdateRequest{
		Archived:   true,
		Properties: notionapi.Properties{},
	})
	if err != nil {
		return nil, wrapError(err)
	}
	return page, nil
}

// CreatePage creates a page in a database.
func (c *Client) CreatePage(ctx context.Context, req *notionapi.PageCreateRequest) (*notionapi.Page, error) {
	page, err := c.api.Page.Create(ctx, req)
	if err != nil {
		return nil, wrapError(err)
	}
	return page, nil
}

// wrapError tags missing-object responses with apperrors.ErrNotFound.
func wrapError(err error) error {
	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) && isNotFound(apiErr) {
		return fmt.Errorf("%w: %w", apperrors.ErrNotFound, err)
	}
	return fmt.Errorf("notion api: %w", err)
}

func isNotFound(apiErr *notionapi.Error) bool {
	return apiErr.Status == http.StatusNotFound || string(apiErr.Code) == "object_not_found"
}

func (c *Client) loggerFrom(ctx context.Context) *slog.Logger {
	if c.ctxLogger != nil {
		if l := c.ctxLogger(ctx); l != nil {
			return l
		}
	}
	return c.logger
}
