package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"signcraft/internal/dto"
	apperrors "signcraft/internal/errors"
)

type MonthlyStatsUseCase interface {
	GetMonthlyStats(ctx context.Context) (*dto.AnalyticsSnapshot, error)
}

type StatsController struct {
	useCase MonthlyStatsUseCase
	logger  *zap.Logger
}

func NewStatsController(useCase MonthlyStatsUseCase, logger *zap.Logger) *StatsController {
	return &StatsController{
		useCase: useCase,
		logger:  logger,
	}
}

func (c *StatsController) HandleMonthlyStats(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	snap, err := c.useCase.GetMonthlyStats(r.Context())
	if err != nil {
		if _, ok := apperrors.IsSourceUnavailableError(err); ok {
			logger.Error("order source unavailable", zap.Error(err))
			c.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"error":   "SOURCE_UNAVAILABLE",
				"message": "order data could not be retrieved",
			})
			return
		}
		logger.Error("aggregating stats failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, snap)
}

func (c *StatsController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
