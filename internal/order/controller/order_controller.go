package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"signcraft/internal/domain"
	"signcraft/internal/dto"
	apperrors "signcraft/internal/errors"
)

const (
	defaultRecentLimit = 20
	maxRecentLimit     = 100
)

type OrderService interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error)
	UpdateStatus(ctx context.Context, invoiceID, status string) error
	DeleteOrder(ctx context.Context, invoiceID string) error
	GetRecent(ctx context.Context, limit int) ([]domain.Order, error)
}

type OrderController struct {
	service OrderService
	logger  *zap.Logger
}

func NewOrderController(service OrderService, logger *zap.Logger) *OrderController {
	return &OrderController{
		service: service,
		logger:  logger,
	}
}

func (c *OrderController) HandleCreateOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if validationErr := validateCreateOrderRequest(req); validationErr != nil {
		ve, _ := apperrors.IsValidationError(validationErr)
		c.writeValidationError(w, ve.Message, ve.Details...)
		return
	}

	order, err := c.service.CreateOrder(r.Context(), req)
	if err != nil {
		logger.Error("creating order failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusCreated, dto.CreateOrderResponse{
		Success:   true,
		InvoiceID: order.InvoiceID,
		Order:     dto.NewOrderDTO(*order),
	})
}

func (c *OrderController) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	invoiceID := chi.URLParam(r, "invoiceId")

	var req dto.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.writeValidationError(w, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if req.Status == "" {
		c.writeValidationError(w, "status is required", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status is required",
		})
		return
	}
	if !domain.IsValidOrderStatus(req.Status) {
		c.writeValidationError(w, "unknown status", apperrors.ValidationDetail{
			Field:   "status",
			Message: "status must be one of pending, processing, completed, delivered",
		})
		return
	}

	if err := c.service.UpdateStatus(r.Context(), invoiceID, req.Status); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "NOT_FOUND",
				"message": err.Error(),
			})
			return
		}
		logger.Error("updating order status failed", zap.String("invoiceId", invoiceID), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *OrderController) HandleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	invoiceID := chi.URLParam(r, "invoiceId")

	if err := c.service.DeleteOrder(r.Context(), invoiceID); err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			c.writeJSON(w, http.StatusNotFound, map[string]string{
				"error":   "NOT_FOUND",
				"message": err.Error(),
			})
			return
		}
		logger.Error("deleting order failed", zap.String("invoiceId", invoiceID), zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (c *OrderController) HandleRecentOrders(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	limit := defaultRecentLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.writeValidationError(w, "invalid limit", apperrors.ValidationDetail{
				Field:   "limit",
				Message: "limit must be a positive integer",
			})
			return
		}
		limit = parsed
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}

	orders, err := c.service.GetRecent(r.Context(), limit)
	if err != nil {
		if _, ok := apperrors.IsSourceUnavailableError(err); ok {
			logger.Error("order source unavailable", zap.Error(err))
			c.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"error":   "SOURCE_UNAVAILABLE",
				"message": "order data could not be retrieved",
			})
			return
		}
		logger.Error("fetching recent orders failed", zap.Error(err))
		c.writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error":   "INTERNAL_ERROR",
			"message": "an unexpected error occurred",
		})
		return
	}

	c.writeJSON(w, http.StatusOK, dto.NewOrderDTOs(orders))
}

func validateCreateOrderRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	if req.CustomerName == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "customerName",
			Message: "customerName is required",
		})
	}
	if req.PhoneNumber == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "phoneNumber",
			Message: "phoneNumber is required",
		})
	}
	if req.ItemType == "" {
		details = append(details, apperrors.ValidationDetail{
			Field:   "itemType",
			Message: "itemType is required",
		})
	}
	if req.Quantity < 1 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "quantity",
			Message: "quantity must be a positive integer",
		})
	}
	if req.Rate < 0 {
		details = append(details, apperrors.ValidationDetail{
			Field:   "rate",
			Message: "rate must be non-negative",
		})
	}
	if req.Discount != nil && (*req.Discount < 0 || *req.Discount > 100) {
		details = append(details, apperrors.ValidationDetail{
			Field:   "discount",
			Message: "discount must be between 0 and 100",
		})
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("validation failed", details...)
	}

	return nil
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	c.writeJSON(w, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
