package handlers

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/notion_quote_viewer/internal/apperrors"
	portssvc "github.com/SscSPs/notion_quote_viewer/internal/core/ports/services"
	"github.com/SscSPs/notion_quote_viewer/internal/dto"
	"github.com/SscSPs/notion_quote_viewer/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	msgMissingTagQuery = "캐시 태그를 지정해주세요. (?tag=invoices)"
	msgMissingTag      = "캐시 태그를 지정해주세요."
	msgUnauthorized    = "인증 실패"
	msgRevalidateError = "캐시 무효화 중 오류 발생"
)

type revalidateHandler struct {
	invalidator portssvc.CacheInvalidatorSvc
	secret      string
}

// registerRevalidateRoutes registers the cache invalidation hook behind mw. An
// empty secret leaves the hook open.
func registerRevalidateRoutes(rg *gin.RouterGroup, invalidator portssvc.CacheInvalidatorSvc, secret string, mw ...gin.HandlerFunc) {
	h := &revalidateHandler{invalidator: invalidator, secret: secret}
	revalidate := rg.Group("/revalidate", mw...)
	{
		revalidate.GET("", h.revalidateQuery)
		revalidate.POST("", h.revalidateBody)
	}
}

// revalidateQuery godoc
// @Summary Invalidate a cache tag
// @Description Evicts every cached list stored under the tag.
// @Tags cache
// @Produce json
// @Param tag query string true "Cache tag, e.g. invoices"
// @Param secret query string false "Shared secret, required when configured"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /revalidate [get]
func (h *revalidateHandler) revalidateQuery(c *gin.Context) {
	var req dto.RevalidateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Failed to bind query for revalidate", slog.String("error", err.Error()))
	}
	if req.Tag == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgMissingTagQuery))
		return
	}
	h.revalidate(c, req)
}

// revalidateBody godoc
// @Summary Invalidate a cache tag
// @Description Same as the GET form with the tag and secret in a JSON body.
// @Tags cache
// @Accept json
// @Produce json
// @Param request body dto.RevalidateRequest true "Tag and secret"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /revalidate [post]
func (h *revalidateHandler) revalidateBody(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.RevalidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for revalidate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(msgRevalidateError))
		return
	}
	if req.Tag == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(msgMissingTag))
		return
	}
	h.revalidate(c, req)
}

func (h *revalidateHandler) revalidate(c *gin.Context, req dto.RevalidateRequest) {
	logger := middleware.GetLoggerFromContext(c).With(slog.String("tag", req.Tag))

	err := h.authorize(req.Secret)
	if err == nil {
		err = h.invalidator.Invalidate(c.Request.Context(), req.Tag)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			logger.Warn("Revalidate secret mismatch")
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(msgUnauthorized))
			return
		}
		logger.Error("Failed to invalidate cache tag", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(msgRevalidateError))
		return
	}

	logger.Info("Cache tag invalidated")
	c.JSON(http.StatusOK, dto.MessageResponse{Success: true, Message: fmt.Sprintf("캐시 무효화 완료: %s", req.Tag)})
}

// authorize returns apperrors.ErrUnauthorized when a secret is configured and given differs.
func (h *revalidateHandler) authorize(given string) error {
	if h.secret == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(given), []byte(h.secret)) != 1 {
		return fmt.Errorf("%w: revalidate secret mismatch", apperrors.ErrUnauthorized)
	}
	return nil
}
