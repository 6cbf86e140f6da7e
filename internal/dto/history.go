package dto

type OrderListResponse struct {
	Orders []OrderDTO `json:"orders"`
	Total  int        `json:"total"`
}
