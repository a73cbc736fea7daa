package handlers

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/SscSPs/notion_quote_viewer/internal/apperrors"
	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	portssvc "github.com/SscSPs/notion_quote_viewer/internal/core/ports/services"
	"github.com/SscSPs/notion_quote_viewer/internal/dto"
	"github.com/SscSPs/notion_quote_viewer/internal/middleware"
	"github.com/SscSPs/notion_quote_viewer/internal/platform/pdf"
	"github.com/SscSPs/notion_quote_viewer/internal/utils"
	"github.com/SscSPs/notion_quote_viewer/internal/utils/mapping"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

var templateFuncs = template.FuncMap{
	"formatCurrency": utils.FormatCurrency,
	"formatWon":      utils.FormatWon,
	"formatDate":     utils.FormatDate,
	"statusLabel":    statusLabel,
}

// LoadTemplates parses the embedded page templates.
func LoadTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templateFS, "templates/*.html")
}

// Pages are always labelled in Korean, whichever schema the store uses.
func statusLabel(s domain.InvoiceStatus) string {
	if s == "" {
		return "전체"
	}
	if label, ok := mapping.KoreanInvoiceSchema.LabelForStatus(s); ok {
		return label
	}
	return string(s)
}

type pageHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	tmpl           *template.Template
	pdf            pdf.Renderer
}

// registerPageRoutes registers the server-rendered pages.
func registerPageRoutes(r *gin.Engine, is portssvc.InvoiceSvcFacade, tmpl *template.Template, renderer pdf.Renderer) {
	h := &pageHandler{invoiceService: is, tmpl: tmpl, pdf: renderer}

	r.GET("/", h.home)
	r.GET("/quotes", h.quoteList)
	r.GET("/quotes/:id", h.quoteDetail)
	r.GET("/quotes/:id/pdf", h.quotePDF)

	admin := r.Group("/admin")
	{
		admin.GET("/dashboard", h.dashboard)
		admin.GET("/invoices", h.invoiceTable)
	}
}

func (h *pageHandler) home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{"Title": "견적서 뷰어"})
}

// listOrEmpty loads every invoice. Configuration errors abort the page; any other
// failure degrades to an empty list.
func (h *pageHandler) listOrEmpty(c *gin.Context) ([]domain.Invoice, bool) {
	logger := middleware.GetLoggerFromContext(c)

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), nil)
	if err != nil {
		if errors.Is(err, apperrors.ErrConfig) {
			logger.Error("Invoice list misconfigured", slog.String("error", err.Error()))
			h.renderError(c)
			return nil, false
		}
		logger.Warn("Failed to list invoices, rendering empty list", slog.String("error", err.Error()))
		return []domain.Invoice{}, true
	}
	return invoices, true
}

func (h *pageHandler) quoteList(c *gin.Context) {
	invoices, ok := h.listOrEmpty(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "quotes.html", gin.H{
		"Title":    "견적서 목록",
		"Invoices": invoices,
	})
}

// loadInvoice renders the not-found or error view itself and returns nil when the
// invoice cannot be shown.
func (h *pageHandler) loadInvoice(c *gin.Context) *domain.Invoice {
	id := c.Param("id")
	logger := middleware.GetLoggerFromContext(c).With(slog.String("invoice_id", id))

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to load invoice page", slog.String("error", err.Error()))
		h.renderError(c)
		return nil
	}
	if invoice == nil {
		c.HTML(http.StatusNotFound, "not_found.html", gin.H{"Title": "견적서 - 찾을 수 없음"})
		return nil
	}
	return invoice
}

func (h *pageHandler) quoteDetail(c *gin.Context) {
	invoice := h.loadInvoice(c)
	if invoice == nil {
		return
	}
	c.HTML(http.StatusOK, "quote.html", gin.H{
		"Title":   fmt.Sprintf("견적서 %s - %s", invoice.InvoiceNumber, invoice.ClientName),
		"Invoice": invoice,
	})
}

func (h *pageHandler) quotePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	invoice := h.loadInvoice(c)
	if invoice == nil {
		return
	}

	var html bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&html, "quote_print.html", gin.H{"Invoice": invoice}); err != nil {
		logger.Error("Failed to render print template", slog.String("error", err.Error()))
		h.renderError(c)
		return
	}

	doc, err := h.pdf.Render(c.Request.Context(), html.String())
	if err != nil {
		if errors.Is(err, pdf.ErrDisabled) {
			c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("PDF 내보내기가 비활성화되어 있습니다."))
			return
		}
		logger.Error("Failed to render PDF", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("PDF 생성 중 오류가 발생했습니다."))
		return
	}

	c.Header("Content-Disposition", pdfDisposition(invoice.InvoiceNumber))
	c.Data(http.StatusOK, "application/pdf", doc)
}

func pdfDisposition(number string) string {
	name := fmt.Sprintf("견적서_%s.pdf", number)
	return fmt.Sprintf(`attachment; filename="quote.pdf"; filename*=UTF-8''%s`, url.PathEscape(name))
}

func (h *pageHandler) dashboard(c *gin.Context) {
	invoices, ok := h.listOrEmpty(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":    "대시보드 - 관리자",
		"Summary":  dto.ToDashboardSummary(invoices),
		"Statuses": domain.InvoiceStatuses,
	})
}

func (h *pageHandler) invoiceTable(c *gin.Context) {
	var status *domain.InvoiceStatus
	if raw := domain.InvoiceStatus(c.Query("status")); raw.IsValid() {
		status = &raw
	}

	invoices, ok := h.listOrEmpty(c)
	if !ok {
		return
	}
	c.HTML(http.StatusOK, "invoices.html", gin.H{
		"Title": "견적서 관리 - 관리자",
		"Table": dto.ToInvoiceTable(invoices, status),
	})
}

func (h *pageHandler) renderError(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "error.html", gin.H{"Title": "견적서 - 오류"})
}
