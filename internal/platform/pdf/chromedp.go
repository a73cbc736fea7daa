package pdf

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	defaultRenderTimeout = 30 * time.Second

	// A4 in inches with 10mm margins.
	a4Width    = 8.27
	a4Height   = 11.69
	marginInch = 0.39
)

// ChromedpConfig configures the headless browser.
type ChromedpConfig struct {
	// RemoteURL points at a running Chrome DevTools endpoint. Empty launches a local browser.
	RemoteURL string
	Timeout   time.Duration
	NoSandbox bool
	Logger    *slog.Logger
}

// ChromedpRenderer prints HTML through headless Chrome.
type ChromedpRenderer struct {
	cfg         ChromedpConfig
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromedpRenderer sets up the browser allocator. The browser itself starts on first render.
func NewChromedpRenderer(cfg ChromedpConfig) *ChromedpRenderer {
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultRenderTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	r := &ChromedpRenderer{cfg: cfg}
	if cfg.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), cfg.RemoteURL)
		return r
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if cfg.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	return r
}

// Render prints html as an A4 page with backgrounds.
func (r *ChromedpRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		return nil, errors.New("html content is empty")
	}
	start := time.Now()

	browserCtx, cancel := chromedp.NewContext(r.allocCtx,
		chromedp.WithLogf(func(format string, args ...any) {
			r.cfg.Logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer cancel()
	browserCtx, cancelTimeout := context.WithTimeout(browserCtx, r.cfg.Timeout)
	defer cancelTimeout()

	// Tie the browser tab to the caller so an abandoned request stops rendering.
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	var out []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(a4Width).
				WithPaperHeight(a4Height).
				WithMarginTop(marginInch).
				WithMarginBottom(marginInch).
				WithMarginLeft(marginInch).
				WithMarginRight(marginInch).
				WithPreferCSSPageSize(true).
				Do(ctx)
			if err != nil {
				return err
			}
			out = data
			return nil
		}),
	)
	if err != nil {
		if errors.Is(browserCtx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("pdf rendering timed out after %v: %w", r.cfg.Timeout, err)
		}
		return nil, fmt.Errorf("pdf rendering failed: %w", err)
	}

	r.cfg.Logger.Debug("pdf rendered", slog.Int("bytes", len(out)), slog.Duration("elapsed", time.Since(start)))
	return out, nil
}

// Close shuts the browser down.
func (r *ChromedpRenderer) Close() {
	if r.allocCancel != nil {
		r.allocCancel()
	}
}

var _ Renderer = (*ChromedpRenderer)(nil)
