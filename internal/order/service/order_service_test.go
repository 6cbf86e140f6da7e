package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"signcraft/internal/domain"
	"signcraft/internal/dto"
	apperrors "signcraft/internal/errors"
)

// Mock implementations

type mockOrderRepository struct {
	InsertFunc                  func(ctx context.Context, order domain.Order) (uint, error)
	FindByInvoiceIDFunc         func(ctx context.Context, invoiceID string) (*domain.Order, error)
	FindRecentFunc              func(ctx context.Context, limit int) ([]domain.Order, error)
	CountByInvoiceIDFunc        func(ctx context.Context, invoiceID string) (int, error)
	UpdateStatusByInvoiceIDFunc func(ctx context.Context, invoiceID, status string) error
	DeleteByInvoiceIDFunc       func(ctx context.Context, invoiceID string) error
}

func (m *mockOrderRepository) Insert(ctx context.Context, order domain.Order) (uint, error) {
	return m.InsertFunc(ctx, order)
}

func (m *mockOrderRepository) FindByInvoiceID(ctx context.Context, invoiceID string) (*domain.Order, error) {
	return m.FindByInvoiceIDFunc(ctx, invoiceID)
}

func (m *mockOrderRepository) FindRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	return m.FindRecentFunc(ctx, limit)
}

func (m *mockOrderRepository) CountByInvoiceID(ctx context.Context, invoiceID string) (int, error) {
	return m.CountByInvoiceIDFunc(ctx, invoiceID)
}

func (m *mockOrderRepository) UpdateStatusByInvoiceID(ctx context.Context, invoiceID, status string) error {
	return m.UpdateStatusByInvoiceIDFunc(ctx, invoiceID, status)
}

func (m *mockOrderRepository) DeleteByInvoiceID(ctx context.Context, invoiceID string) error {
	return m.DeleteByInvoiceIDFunc(ctx, invoiceID)
}

type recordingNotifier struct {
	created       []string
	statusChanged []string
	deleted       []string
}

func (n *recordingNotifier) OrderCreated(ctx context.Context, order domain.Order) {
	n.created = append(n.created, order.InvoiceID)
}

func (n *recordingNotifier) OrderStatusChanged(ctx context.Context, invoiceID, status string) {
	n.statusChanged = append(n.statusChanged, invoiceID+":"+status)
}

func (n *recordingNotifier) OrderDeleted(ctx context.Context, invoiceID string) {
	n.deleted = append(n.deleted, invoiceID)
}

type countingInvalidator struct {
	calls int
}

func (i *countingInvalidator) Invalidate() {
	i.calls++
}

func newTestOrderService(repo OrderRepository) (*OrderService, *recordingNotifier, *countingInvalidator) {
	notifier := &recordingNotifier{}
	invalidator := &countingInvalidator{}
	svc := NewOrderService(repo, notifier, invalidator, zap.NewNop())
	svc.now = func() time.Time {
		return time.Date(2025, 8, 27, 10, 30, 0, 0, time.UTC)
	}
	return svc, notifier, invalidator
}

// Tests

func TestCreateOrder_ComputesTotalAndDefaults(t *testing.T) {
	var inserted domain.Order
	repo := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order domain.Order) (uint, error) {
			inserted = order
			return 42, nil
		},
		CountByInvoiceIDFunc: func(ctx context.Context, invoiceID string) (int, error) {
			return 0, nil
		},
	}
	svc, notifier, invalidator := newTestOrderService(repo)
	discount := 10.0

	order, err := svc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerName: "Ravi Kumar",
		PhoneNumber:  "9876543210",
		EmailAddress: "ravi@example.com",
		ItemType:     "Flex Banner",
		Size:         "6x3",
		Quantity:     3,
		Rate:         450,
		Discount:     &discount,
		Notes:        "deliver before friday",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(42), order.ID)
	assert.Equal(t, 1350.0, order.Total)
	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.True(t, strings.HasPrefix(order.InvoiceID, "INV_20250827103000_"))
	require.NotNil(t, inserted.Notes)
	assert.Equal(t, "deliver before friday", *inserted.Notes)
	assert.Equal(t, []string{order.InvoiceID}, notifier.created)
	assert.Equal(t, 1, invalidator.calls)
}

func TestCreateOrder_RegeneratesInvoiceIDOnCollision(t *testing.T) {
	countCalls := 0
	repo := &mockOrderRepository{
		InsertFunc: func(ctx context.Context, order domain.Order) (uint, error) {
			return 1, nil
		},
		CountByInvoiceIDFunc: func(ctx context.Context, invoiceID string) (int, error) {
			countCalls++
			if countCalls == 1 {
				return 1, nil
			}
			return 0, nil
		},
	}
	svc, _, _ := newTestOrderService(repo)

	order, err := svc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerName: "A",
		Quantity:     1,
		Rate:         100,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, countCalls)
	assert.NotEmpty(t, order.InvoiceID)
}

func TestCreateOrder_GivesUpAfterRepeatedCollisions(t *testing.T) {
	repo := &mockOrderRepository{
		CountByInvoiceIDFunc: func(ctx context.Context, invoiceID string) (int, error) {
			return 1, nil
		},
	}
	svc, notifier, invalidator := newTestOrderService(repo)

	order, err := svc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		CustomerName: "A",
		Quantity:     1,
		Rate:         100,
	})

	assert.Nil(t, order)
	_, ok := apperrors.IsInternalError(err)
	assert.True(t, ok)
	assert.Empty(t, notifier.created)
	assert.Equal(t, 0, invalidator.calls)
}

func TestUpdateStatus_NotifiesAndInvalidates(t *testing.T) {
	repo := &mockOrderRepository{
		UpdateStatusByInvoiceIDFunc: func(ctx context.Context, invoiceID, status string) error {
			return nil
		},
	}
	svc, notifier, invalidator := newTestOrderService(repo)

	err := svc.UpdateStatus(context.Background(), "INV_1", domain.OrderStatusCompleted)

	require.NoError(t, err)
	assert.Equal(t, []string{"INV_1:completed"}, notifier.statusChanged)
	assert.Equal(t, 1, invalidator.calls)
}

func TestUpdateStatus_NotFoundLeavesCacheAlone(t *testing.T) {
	repo := &mockOrderRepository{
		UpdateStatusByInvoiceIDFunc: func(ctx context.Context, invoiceID, status string) error {
			return apperrors.NewNotFoundError("order not found")
		},
	}
	svc, notifier, invalidator := newTestOrderService(repo)

	err := svc.UpdateStatus(context.Background(), "INV_MISSING", domain.OrderStatusCompleted)

	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.Empty(t, notifier.statusChanged)
	assert.Equal(t, 0, invalidator.calls)
}

func TestDeleteOrder_NotifiesAndInvalidates(t *testing.T) {
	repo := &mockOrderRepository{
		DeleteByInvoiceIDFunc: func(ctx context.Context, invoiceID string) error {
			return nil
		},
	}
	svc, notifier, invalidator := newTestOrderService(repo)

	err := svc.DeleteOrder(context.Background(), "INV_1")

	require.NoError(t, err)
	assert.Equal(t, []string{"INV_1"}, notifier.deleted)
	assert.Equal(t, 1, invalidator.calls)
}

func TestGetRecent_WrapsBackingFailure(t *testing.T) {
	repo := &mockOrderRepository{
		FindRecentFunc: func(ctx context.Context, limit int) ([]domain.Order, error) {
			return nil, errors.New("connection reset")
		},
	}
	svc, _, _ := newTestOrderService(repo)

	orders, err := svc.GetRecent(context.Background(), 20)

	assert.Nil(t, orders)
	_, ok := apperrors.IsSourceUnavailableError(err)
	assert.True(t, ok)
}
