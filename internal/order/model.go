package order

import (
	"time"

	"bulk-be/internal/product"
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
)

// AllStatuses lists the statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusInProgress, StatusDelivered, StatusCancelled}
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// NextStatuses returns the legal transitions out of s. The happy path is
// PENDING -> IN_PROGRESS -> DELIVERED; cancellation is allowed from the two
// non-terminal states only.
func NextStatuses(s Status) []Status {
	switch s {
	case StatusPending:
		return []Status{StatusInProgress, StatusCancelled}
	case StatusInProgress:
		return []Status{StatusDelivered, StatusCancelled}
	default:
		return nil
	}
}

type Order struct {
	ID              int         `json:"id"`
	BuyerName       string      `json:"buyer_name"`
	BuyerEmail      string      `json:"buyer_email"`
	BuyerPhone      string      `json:"buyer_phone"`
	DeliveryAddress string      `json:"delivery_address"`
	TotalAmount     float64     `json:"total_amount"`
	Status          Status      `json:"status"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Items           []OrderItem `json:"items"`
}

type OrderItem struct {
	ID        int             `json:"id"`
	OrderID   int             `json:"order_id,omitempty"`
	ProductID int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     float64         `json:"price"`
	Product   product.Summary `json:"product"`
}

// ItemInput is one line of an order submission.
type ItemInput struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CreateInput is the order submission payload.
type CreateInput struct {
	BuyerName       string      `json:"buyer_name"`
	BuyerEmail      string      `json:"buyer_email"`
	BuyerPhone      string      `json:"buyer_phone"`
	DeliveryAddress string      `json:"delivery_address"`
	TotalAmount     float64     `json:"total_amount"`
	Items           []ItemInput `json:"items"`
}

// StatusInput is the order status update payload.
type StatusInput struct {
	Status Status `json:"status"`
}
