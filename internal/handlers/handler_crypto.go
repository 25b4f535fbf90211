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

// cryptoHandler handles HTTP requests related to crypto positions and trades.
type cryptoHandler struct {
	cryptoService portssvc.CryptoSvcFacade
}

// newCryptoHandler creates a new cryptoHandler.
func newCryptoHandler(cs portssvc.CryptoSvcFacade) *cryptoHandler {
	return &cryptoHandler{cryptoService: cs}
}

// registerCryptoRoutes registers routes related to crypto positions.
func registerCryptoRoutes(rg *gin.RouterGroup, cryptoService portssvc.CryptoSvcFacade) {
	h := newCryptoHandler(cryptoService)

	crypto := rg.Group("/crypto")
	{
		crypto.POST("/assets", h.createAsset)
		crypto.GET("/assets", h.listAssets)
		crypto.GET("/assets/:id", h.getAsset)
		crypto.POST("/trades", h.recordTrade)
		crypto.GET("/trades", h.listTrades)
	}
}

// createAsset godoc
// @Summary Register a crypto asset
// @Description Registers a new asset with an empty position
// @Tags crypto
// @Accept  json
// @Produce  json
// @Param   asset body dto.CreateAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string "Invalid input format or duplicate symbol"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create asset"
// @Security BearerAuth
// @Router /crypto/assets [post]
func (h *cryptoHandler) createAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAsset", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	asset, err := h.cryptoService.CreateAsset(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) || errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create asset in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create asset"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// listAssets godoc
// @Summary List crypto assets
// @Description Retrieves all asset positions
// @Tags crypto
// @Produce  json
// @Success 200 {array} dto.AssetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list assets"
// @Security BearerAuth
// @Router /crypto/assets [get]
func (h *cryptoHandler) listAssets(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assets, err := h.cryptoService.ListAssets(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list assets from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list assets"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssetResponse(assets))
}

// getAsset godoc
// @Summary Get a crypto asset by ID
// @Description Retrieves a specific asset position
// @Tags crypto
// @Produce  json
// @Param   id path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 500 {object} map[string]string "Failed to retrieve asset"
// @Security BearerAuth
// @Router /crypto/assets/{id} [get]
func (h *cryptoHandler) getAsset(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetID := c.Param("id")

	asset, err := h.cryptoService.GetAssetByID(c.Request.Context(), assetID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else {
			logger.Error("Failed to get asset from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve asset"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// recordTrade godoc
// @Summary Record a trade
// @Description Appends a trade and moves the asset's weighted average position atomically
// @Tags crypto
// @Accept  json
// @Produce  json
// @Param   trade body dto.RecordTradeRequest true "Trade details"
// @Success 201 {object} dto.TradeResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Asset not found"
// @Failure 409 {object} map[string]string "Insufficient quantity to sell"
// @Failure 500 {object} map[string]string "Failed to record trade"
// @Security BearerAuth
// @Router /crypto/trades [post]
func (h *cryptoHandler) recordTrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTrade", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	trade, err := h.cryptoService.RecordTrade(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record trade in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record trade"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTradeResponse(trade))
}

// listTrades godoc
// @Summary List trades
// @Description Retrieves the full trade log, most recent first
// @Tags crypto
// @Produce  json
// @Success 200 {array} dto.TradeResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list trades"
// @Security BearerAuth
// @Router /crypto/trades [get]
func (h *cryptoHandler) listTrades(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trades, err := h.cryptoService.ListTrades(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list trades from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trades"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListTradeResponse(trades))
}
