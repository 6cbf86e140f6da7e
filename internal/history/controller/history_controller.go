package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"signcraft/internal/dto"
	apperrors "signcraft/internal/errors"
	"signcraft/internal/history/service"
)

type HistoryService interface {
	List(ctx context.Context, filter service.Filter) (*service.Result, error)
}

type HistoryController struct {
	service HistoryService
	logger  *zap.Logger
}

func NewHistoryController(svc HistoryService, logger *zap.Logger) *HistoryController {
	return &HistoryController{
		service: svc,
		logger:  logger,
	}
}

func (c *HistoryController) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	filter, err := parseFilter(r)
	if err != nil {
		fe, _ := apperrors.IsInvalidFilterError(err)
		c.writeFilterError(w, fe)
		return
	}

	result, err := c.service.List(r.Context(), filter)
	if err != nil {
		if fe, ok := apperrors.IsInvalidFilterError(err); ok {
			c.writeFilterError(w, fe)
			return
		}
		if _, ok := apperrors.IsSourceUnavailableError(err); ok {
			logger.Error("order source unavailable", zap.Error(err))
			c.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"error":   "SOURCE_UNAVAILABLE",
				"message": "order data could not be retrieved",
			})
			return
		}
		logger.Error("listing orders failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, dto.OrderListResponse{
		Orders: dto.NewOrderDTOs(result.Orders),
		Total:  result.Total,
	})
}

// parseFilter maps query params onto a service filter. Absent page and
// limit fall back to service defaults; present but non-numeric values
// are rejected here.
func parseFilter(r *http.Request) (service.Filter, error) {
	query := r.URL.Query()
	filter := service.Filter{
		Search: query.Get("search"),
		Status: query.Get("status"),
		Date:   query.Get("date"),
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return filter, apperrors.NewInvalidFilterError("invalid filter", apperrors.ValidationDetail{
				Field:   "page",
				Message: "page must be a positive integer",
			})
		}
		filter.Page = page
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return filter, apperrors.NewInvalidFilterError("invalid filter", apperrors.ValidationDetail{
				Field:   "limit",
				Message: "limit must be a positive integer",
			})
		}
		filter.PageSize = limit
	}

	return filter, nil
}

type filterErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *HistoryController) writeFilterError(w http.ResponseWriter, fe *apperrors.InvalidFilterError) {
	c.writeJSON(w, http.StatusBadRequest, filterErrorResponse{
		Error:   "INVALID_FILTER",
		Message: fe.Message,
		Details: fe.Details,
	})
}

func (c *HistoryController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
