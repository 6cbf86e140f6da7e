package notification

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"signcraft/internal/domain"
	"signcraft/internal/infrastructure/rabbitmq"
)

// Order lifecycle events published to the broker. Delivery is
// fire-and-forget: a publish failure is logged and dropped, it never
// fails the operation that triggered it.
type OrderEvent struct {
	Event        string  `json:"event"`
	InvoiceID    string  `json:"invoiceId"`
	CustomerName string  `json:"customerName,omitempty"`
	Status       string  `json:"status,omitempty"`
	Total        float64 `json:"total,omitempty"`
	OccurredAt   string  `json:"occurredAt"`
}

type Publisher struct {
	client *rabbitmq.Client
	logger *zap.Logger
}

func NewPublisher(client *rabbitmq.Client, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, logger: logger}
}

func (p *Publisher) OrderCreated(ctx context.Context, order domain.Order) {
	p.publish(ctx, "order.created", OrderEvent{
		Event:        "order.created",
		InvoiceID:    order.InvoiceID,
		CustomerName: order.CustomerName,
		Status:       order.Status,
		Total:        order.Total,
	})
}

func (p *Publisher) OrderStatusChanged(ctx context.Context, invoiceID, status string) {
	p.publish(ctx, "order.status_changed", OrderEvent{
		Event:     "order.status_changed",
		InvoiceID: invoiceID,
		Status:    status,
	})
}

func (p *Publisher) OrderDeleted(ctx context.Context, invoiceID string) {
	p.publish(ctx, "order.deleted", OrderEvent{
		Event:     "order.deleted",
		InvoiceID: invoiceID,
	})
}

func (p *Publisher) publish(ctx context.Context, key string, event OrderEvent) {
	event.OccurredAt = time.Now().UTC().Format(time.RFC3339)

	body, err := json.Marshal(event)
	if err != nil {
		p.logger.Error("marshaling order event", zap.String("event", key), zap.Error(err))
		return
	}

	if err := p.client.PublishPersistent(ctx, key, body); err != nil {
		p.logger.Error("publishing order event",
			zap.String("event", key),
			zap.String("invoiceId", event.InvoiceID),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("order event published",
		zap.String("event", key),
		zap.String("invoiceId", event.InvoiceID),
	)
}

// NopPublisher satisfies the order module's notifier when no broker is
// configured.
type NopPublisher struct{}

func NewNopPublisher() *NopPublisher {
	return &NopPublisher{}
}

func (NopPublisher) OrderCreated(ctx context.Context, order domain.Order)             {}
func (NopPublisher) OrderStatusChanged(ctx context.Context, invoiceID, status string) {}
func (NopPublisher) OrderDeleted(ctx context.Context, invoiceID string)               {}
