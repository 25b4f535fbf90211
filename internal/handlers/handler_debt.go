package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/finanzapp/finanzas_backend/internal/apperrors"
	portssvc "github.com/finanzapp/finanzas_backend/internal/core/ports/services"
	"github.com/finanzapp/finanzas_backend/internal/dto"
	"github.com/finanzapp/finanzas_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// debtHandler handles HTTP requests related to debts.
type debtHandler struct {
	debtService portssvc.DebtSvcFacade
}

// newDebtHandler creates a new debtHandler.
func newDebtHandler(ds portssvc.DebtSvcFacade) *debtHandler {
	return &debtHandler{debtService: ds}
}

// registerDebtRoutes registers routes related to debts.
func registerDebtRoutes(rg *gin.RouterGroup, debtService portssvc.DebtSvcFacade) {
	h := newDebtHandler(debtService)

	debts := rg.Group("/debts")
	{
		debts.POST("", h.createDebt)
		debts.GET("", h.listDebts)
		debts.GET("/:id", h.getDebt)
		debts.POST("/:id/payments", h.payDebt)
	}
}

// createDebt godoc
// @Summary Register a debt
// @Description Registers a new open debt with its full amount pending
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   debt body dto.CreateDebtRequest true "Debt details"
// @Success 201 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create debt"
// @Security BearerAuth
// @Router /debts [post]
func (h *debtHandler) createDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	debt, err := h.debtService.CreateDebt(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create debt"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToDebtResponse(debt))
}

// listDebts godoc
// @Summary List debts
// @Description Retrieves all debts, most recent first
// @Tags debts
// @Produce  json
// @Success 200 {array} dto.DebtResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list debts"
// @Security BearerAuth
// @Router /debts [get]
func (h *debtHandler) listDebts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	debts, err := h.debtService.ListDebts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list debts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list debts"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDebtResponse(debts))
}

// getDebt godoc
// @Summary Get a debt by ID
// @Description Retrieves a specific debt
// @Tags debts
// @Produce  json
// @Param   id path string true "Debt ID"
// @Success 200 {object} dto.DebtResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Debt not found"
// @Failure 500 {object} map[string]string "Failed to retrieve debt"
// @Security BearerAuth
// @Router /debts/{id} [get]
func (h *debtHandler) getDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	debt, err := h.debtService.GetDebtByID(c.Request.Context(), debtID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Debt not found"})
		} else {
			logger.Error("Failed to get debt from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve debt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}

// payDebt godoc
// @Summary Pay down a debt
// @Description Applies a partial or full payment, writing the expense entry and balance change atomically. An omitted amount pays the full pending balance.
// @Tags debts
// @Accept  json
// @Produce  json
// @Param   id path string true "Debt ID"
// @Param   payment body dto.PayDebtRequest true "Payment details"
// @Success 200 {object} dto.DebtResponse
// @Failure 400 {object} map[string]string "Invalid input format or non-positive amount"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Debt or account not found"
// @Failure 409 {object} map[string]string "Debt already paid, payment exceeds pending, or insufficient balance"
// @Failure 500 {object} map[string]string "Failed to pay debt"
// @Security BearerAuth
// @Router /debts/{id}/payments [post]
func (h *debtHandler) payDebt(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	debtID := c.Param("id")

	var req dto.PayDebtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PayDebt", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	debt, err := h.debtService.PayDebt(c.Request.Context(), debtID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to pay debt in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to pay debt"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDebtResponse(debt))
}
