package models

const (
	OrderProcessing = "processing"
	OrderDelivered  = "delivered"
	OrderCancelled  = "cancelled"
)

type Order struct {
	ID             int64      `json:"id"`
	UserID         int64      `json:"userId"`
	Items          []CartItem `json:"items"`
	Total          float64    `json:"total"`
	Status         string     `json:"status"`
	Date           string     `json:"date"`
	TrackingNumber string     `json:"trackingNumber"`
}
