package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/notion_quote_viewer/internal/apperrors"
	"github.com/SscSPs/notion_quote_viewer/internal/core/domain"
	portssvc "github.com/SscSPs/notion_quote_viewer/internal/core/ports/services"
	"github.com/SscSPs/notion_quote_viewer/internal/dto"
	"github.com/SscSPs/notion_quote_viewer/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const (
	msgMissingID     = "id 파라미터가 필요합니다."
	msgQuoteNotFound = "견적서를 찾을 수 없습니다."
	msgQuoteFailed   = "견적서 조회 중 오류가 발생했습니다."
	msgListFailed    = "견적서 목록 조회 중 오류가 발생했습니다."
	msgInvalidStatus = "status 파라미터는 pending, approved, rejected 중 하나여야 합니다."
	msgInvalidQuery  = "잘못된 요청 파라미터입니다."
)

// quoteHandler serves the JSON read API.
type quoteHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	quoteService   portssvc.QuoteSvcFacade
}

func newQuoteHandler(is portssvc.InvoiceSvcFacade, qs portssvc.QuoteSvcFacade) *quoteHandler {
	return &quoteHandler{invoiceService: is, quoteService: qs}
}

// registerQuoteRoutes registers the read endpoints under /notion.
func registerQuoteRoutes(rg *gin.RouterGroup, is portssvc.InvoiceSvcFacade, qs portssvc.QuoteSvcFacade) {
	h := newQuoteHandler(is, qs)

	notion := rg.Group("/notion")
	{
		notion.GET("/quotes", h.getQuotes)
	}
}

// getQuotes godoc
// @Summary Get an invoice, list invoices or resolve a shared quote
// @Description With list=true returns all invoices, optionally filtered by status.
// @Description With token returns the legacy quote shared under that token, shaped as an invoice.
// @Description Otherwise returns the invoice with the given id, including its items.
// @Tags quotes
// @Produce json
// @Param id query string false "Invoice page id"
// @Param list query bool false "List all invoices"
// @Param status query string false "Status filter for list mode" Enums(pending, approved, rejected)
// @Param token query string false "Share token of a legacy quote"
// @Success 200 {object} dto.InvoiceResponse
// @Success 200 {object} dto.InvoiceListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notion/quotes [get]
func (h *quoteHandler) getQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	var q dto.QuotesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid quotes query", slog.String("error", err.Error()))
		msg := msgInvalidQuery
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			// status is the only validated field
			msg = msgInvalidStatus
		}
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msg))
		return
	}

	switch {
	case q.List:
		h.listInvoices(c, q)
	case q.Token != "":
		h.getQuoteByToken(c, q.Token)
	default:
		h.getInvoice(c, q.ID)
	}
}

func (h *quoteHandler) getInvoice(c *gin.Context, id string) {
	logger := middleware.GetLoggerFromContext(c)
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgMissingID))
		return
	}

	logger = logger.With(slog.String("invoice_id", id))
	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), id)
	if err != nil {
		logger.Error("Failed to get invoice from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(msgQuoteFailed))
		return
	}
	if invoice == nil {
		logger.Info("Invoice not found")
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(msgQuoteNotFound))
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

func (h *quoteHandler) listInvoices(c *gin.Context, q dto.QuotesQuery) {
	logger := middleware.GetLoggerFromContext(c)

	var status *domain.InvoiceStatus
	if q.Status != "" {
		s := domain.InvoiceStatus(q.Status)
		status = &s
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), status)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgInvalidStatus))
			return
		}
		logger.Error("Failed to list invoices from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(msgListFailed))
		return
	}

	logger.Info("Invoices listed", slog.Int("count", len(invoices)))
	c.JSON(http.StatusOK, dto.ToInvoiceListResponse(invoices))
}

func (h *quoteHandler) getQuoteByToken(c *gin.Context, token string) {
	logger := middleware.GetLoggerFromContext(c)

	quote, err := h.quoteService.GetQuoteByShareToken(c.Request.Context(), token)
	if err != nil {
		logger.Error("Failed to get quote by share token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(msgQuoteFailed))
		return
	}
	if quote == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(msgQuoteNotFound))
		return
	}

	inv := quote.AsInvoice()
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(&inv))
}
