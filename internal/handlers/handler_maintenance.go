package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/notion_quote_viewer/internal/apperrors"
	portssvc "github.com/SscSPs/notion_quote_viewer/internal/core/ports/services"
	"github.com/SscSPs/notion_quote_viewer/internal/dto"
	"github.com/SscSPs/notion_quote_viewer/internal/middleware"
	"github.com/gin-gonic/gin"
)

type maintenanceHandler struct {
	maintenanceService portssvc.MaintenanceSvcFacade
}

// registerMaintenanceRoutes registers the operator endpoints behind the given middleware.
func registerMaintenanceRoutes(rg *gin.RouterGroup, ms portssvc.MaintenanceSvcFacade, mw ...gin.HandlerFunc) {
	h := &maintenanceHandler{maintenanceService: ms}

	notion := rg.Group("/notion", mw...)
	{
		notion.POST("/cleanup", h.cleanupDuplicates)
		notion.POST("/seed", h.seed)
	}
}

// cleanupDuplicates godoc
// @Summary Archive duplicate invoices
// @Description Keeps the earliest created invoice per invoice number and archives the rest.
// @Tags maintenance
// @Produce json
// @Success 200 {object} dto.CleanupResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notion/cleanup [post]
func (h *maintenanceHandler) cleanupDuplicates(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	result, err := h.maintenanceService.CleanupDuplicates(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
			return
		}
		logger.Error("Duplicate cleanup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		return
	}

	logger.Info("Duplicate cleanup finished",
		slog.Int("deleted", result.DeletedCount()),
		slog.Int("failed", result.FailedCount()),
	)
	c.JSON(http.StatusOK, dto.ToCleanupResponse(result))
}

// seed godoc
// @Summary Create sample data
// @Description Creates three sample items and one pending invoice referencing them.
// @Tags maintenance
// @Produce json
// @Success 201 {object} dto.SeedResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /notion/seed [post]
func (h *maintenanceHandler) seed(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)

	result, err := h.maintenanceService.Seed(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Seed rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(err.Error()))
			return
		}
		logger.Error("Seed failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err.Error()))
		return
	}

	logger.Info("Seed data created", slog.String("invoice_id", result.InvoiceID), slog.Int("items", result.ItemCount()))
	c.JSON(http.StatusCreated, dto.ToSeedResponse(result))
}
