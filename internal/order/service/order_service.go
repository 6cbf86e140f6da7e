package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"signcraft/internal/domain"
	"signcraft/internal/dto"
	apperrors "signcraft/internal/errors"
)

type OrderRepository interface {
	Insert(ctx context.Context, order domain.Order) (uint, error)
	FindByInvoiceID(ctx context.Context, invoiceID string) (*domain.Order, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Order, error)
	CountByInvoiceID(ctx context.Context, invoiceID string) (int, error)
	UpdateStatusByInvoiceID(ctx context.Context, invoiceID, status string) error
	DeleteByInvoiceID(ctx context.Context, invoiceID string) error
}

type Notifier interface {
	OrderCreated(ctx context.Context, order domain.Order)
	OrderStatusChanged(ctx context.Context, invoiceID, status string)
	OrderDeleted(ctx context.Context, invoiceID string)
}

// HistoryInvalidator is the cache hook every order mutation must fire
// before returning, so stale history pages are never served afterwards.
type HistoryInvalidator interface {
	Invalidate()
}

const maxInvoiceIDAttempts = 3

type OrderService struct {
	repo        OrderRepository
	notifier    Notifier
	invalidator HistoryInvalidator
	logger      *zap.Logger
	now         func() time.Time
}

func NewOrderService(
	repo OrderRepository,
	notifier Notifier,
	invalidator HistoryInvalidator,
	logger *zap.Logger,
) *OrderService {
	return &OrderService{
		repo:        repo,
		notifier:    notifier,
		invalidator: invalidator,
		logger:      logger,
		now:         time.Now,
	}
}

// CreateOrder persists a new pending order. Total is computed once here
// and never recomputed; the invoice id is unique for the lifetime of
// the system, including after deletion.
func (s *OrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*domain.Order, error) {
	createdAt := s.now().UTC()

	invoiceID, err := s.generateInvoiceID(ctx, createdAt)
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		InvoiceID:    invoiceID,
		CustomerName: req.CustomerName,
		PhoneNumber:  req.PhoneNumber,
		EmailAddress: req.EmailAddress,
		ItemType:     req.ItemType,
		Size:         req.Size,
		Quantity:     req.Quantity,
		Rate:         req.Rate,
		Total:        float64(req.Quantity) * req.Rate,
		Discount:     req.Discount,
		DeliveryType: req.DeliveryType,
		PaymentMode:  req.PaymentMode,
		Status:       domain.OrderStatusPending,
		CreatedAt:    createdAt,
	}
	if req.Notes != "" {
		notes := req.Notes
		order.Notes = &notes
	}

	id, err := s.repo.Insert(ctx, order)
	if err != nil {
		return nil, apperrors.NewInternalError("persisting order", err)
	}
	order.ID = id

	s.logger.Info("order created",
		zap.String("invoiceId", order.InvoiceID),
		zap.String("customer", order.CustomerName),
		zap.Float64("total", order.Total),
	)

	s.notifier.OrderCreated(ctx, order)
	s.invalidator.Invalidate()

	return &order, nil
}

func (s *OrderService) UpdateStatus(ctx context.Context, invoiceID, status string) error {
	if err := s.repo.UpdateStatusByInvoiceID(ctx, invoiceID, status); err != nil {
		return err
	}

	s.logger.Info("order status updated",
		zap.String("invoiceId", invoiceID),
		zap.String("status", status),
	)

	s.notifier.OrderStatusChanged(ctx, invoiceID, status)
	s.invalidator.Invalidate()

	return nil
}

func (s *OrderService) DeleteOrder(ctx context.Context, invoiceID string) error {
	if err := s.repo.DeleteByInvoiceID(ctx, invoiceID); err != nil {
		return err
	}

	s.logger.Info("order deleted", zap.String("invoiceId", invoiceID))

	s.notifier.OrderDeleted(ctx, invoiceID)
	s.invalidator.Invalidate()

	return nil
}

func (s *OrderService) GetRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	orders, err := s.repo.FindRecent(ctx, limit)
	if err != nil {
		return nil, apperrors.NewSourceUnavailableError("order source unavailable", err)
	}
	return orders, nil
}

func (s *OrderService) generateInvoiceID(ctx context.Context, createdAt time.Time) (string, error) {
	for attempt := 0; attempt < maxInvoiceIDAttempts; attempt++ {
		suffix := strings.Split(uuid.New().String(), "-")[0]
		candidate := fmt.Sprintf("INV_%s_%s", createdAt.Format("20060102150405"), suffix)

		count, err := s.repo.CountByInvoiceID(ctx, candidate)
		if err != nil {
			return "", apperrors.NewInternalError("checking invoice id uniqueness", err)
		}
		if count == 0 {
			return candidate, nil
		}

		s.logger.Warn("invoice id collision, regenerating", zap.String("invoiceId", candidate))
	}

	return "", apperrors.NewInternalError("could not generate a unique invoice id", nil)
}
