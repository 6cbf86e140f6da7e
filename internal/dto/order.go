package dto

import (
	"time"

	"signcraft/internal/domain"
)

type OrderDTO struct {
	ID           uint     `json:"id"`
	InvoiceID    string   `json:"invoiceId"`
	CustomerName string   `json:"customerName"`
	PhoneNumber  string   `json:"phoneNumber"`
	EmailAddress string   `json:"emailAddress"`
	ItemType     string   `json:"itemType"`
	Size         string   `json:"size"`
	Quantity     int      `json:"quantity"`
	Rate         float64  `json:"rate"`
	Total        float64  `json:"total"`
	Discount     *float64 `json:"discount,omitempty"`
	DeliveryType string   `json:"deliveryType"`
	PaymentMode  string   `json:"paymentMode"`
	Status       string   `json:"status"`
	Notes        string   `json:"notes,omitempty"`
	CreatedAt    string   `json:"createdAt"`
}

// NewOrderDTO maps a domain order to its wire shape. An unknown CreatedAt
// is rendered as an empty string rather than a zero timestamp.
func NewOrderDTO(o domain.Order) OrderDTO {
	dto := OrderDTO{
		ID:           o.ID,
		InvoiceID:    o.InvoiceID,
		CustomerName: o.CustomerName,
		PhoneNumber:  o.PhoneNumber,
		EmailAddress: o.EmailAddress,
		ItemType:     o.ItemType,
		Size:         o.Size,
		Quantity:     o.Quantity,
		Rate:         o.Rate,
		Total:        o.Total,
		Discount:     o.Discount,
		DeliveryType: o.DeliveryType,
		PaymentMode:  o.PaymentMode,
		Status:       o.Status,
	}
	if o.Notes != nil {
		dto.Notes = *o.Notes
	}
	if o.HasValidCreatedAt() {
		dto.CreatedAt = o.CreatedAt.UTC().Format(time.RFC3339)
	}
	return dto
}

func NewOrderDTOs(orders []domain.Order) []OrderDTO {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		dtos = append(dtos, NewOrderDTO(o))
	}
	return dtos
}

type CreateOrderRequest struct {
	CustomerName string   `json:"customerName"`
	PhoneNumber  string   `json:"phoneNumber"`
	EmailAddress string   `json:"emailAddress"`
	ItemType     string   `json:"itemType"`
	Size         string   `json:"size"`
	Quantity     int      `json:"quantity"`
	Rate         float64  `json:"rate"`
	Discount     *float64 `json:"discount,omitempty"`
	DeliveryType string   `json:"deliveryType"`
	PaymentMode  string   `json:"paymentMode"`
	Notes        string   `json:"notes,omitempty"`
}

type CreateOrderResponse struct {
	Success   bool     `json:"success"`
	InvoiceID string   `json:"invoiceId"`
	Order     OrderDTO `json:"order"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
