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

// snapshotHandler handles HTTP requests related to daily snapshots.
type snapshotHandler struct {
	snapshotService portssvc.SnapshotSvcFacade
}

// newSnapshotHandler creates a new snapshotHandler.
func newSnapshotHandler(ss portssvc.SnapshotSvcFacade) *snapshotHandler {
	return &snapshotHandler{snapshotService: ss}
}

// registerSnapshotRoutes registers routes related to snapshots and the rollup.
func registerSnapshotRoutes(rg *gin.RouterGroup, snapshotService portssvc.SnapshotSvcFacade) {
	h := newSnapshotHandler(snapshotService)

	snapshots := rg.Group("/snapshots")
	{
		snapshots.POST("", h.recordSnapshot)
		snapshots.GET("", h.listSnapshots)
		snapshots.GET("/rollup", h.getRollup)
	}
}

// recordSnapshot godoc
// @Summary Record a daily snapshot
// @Description Stores the day's closing balance, derives the day's PNL and refreshes the rollup atomically. Recording the same date again replaces the earlier snapshot.
// @Tags snapshots
// @Accept  json
// @Produce  json
// @Param   snapshot body dto.RecordSnapshotRequest true "Snapshot details"
// @Success 201 {object} dto.SnapshotResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to record snapshot"
// @Security BearerAuth
// @Router /snapshots [post]
func (h *snapshotHandler) recordSnapshot(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RecordSnapshotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordSnapshot", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	snapshot, err := h.snapshotService.RecordSnapshot(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record snapshot in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record snapshot"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToSnapshotResponse(snapshot))
}

// listSnapshots godoc
// @Summary List daily snapshots
// @Description Retrieves the snapshot history, most recent first
// @Tags snapshots
// @Produce  json
// @Success 200 {array} dto.SnapshotResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list snapshots"
// @Security BearerAuth
// @Router /snapshots [get]
func (h *snapshotHandler) listSnapshots(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	snaps, err := h.snapshotService.ListSnapshots(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list snapshots from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list snapshots"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListSnapshotResponse(snaps))
}

// getRollup godoc
// @Summary Get the balance rollup
// @Description Retrieves total balance plus daily, weekly, monthly and annual PNL
// @Tags snapshots
// @Produce  json
// @Success 200 {object} dto.RollupResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to retrieve rollup"
// @Security BearerAuth
// @Router /snapshots/rollup [get]
func (h *snapshotHandler) getRollup(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rollup, err := h.snapshotService.GetRollup(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rollup not initialized"})
		} else {
			logger.Error("Failed to get rollup from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rollup"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRollupResponse(rollup))
}
