package track

import (
	"context"
	"errors"

	"bulk-be/internal/client"
	"bulk-be/internal/order"
)

// Messages shown on the tracking page.
const (
	NotFoundMessage      = "Order not found. Please check the order ID and try again."
	fetchFailedMessage   = "Failed to fetch order details"
	messagePending       = "Your order has been received and is being processed."
	messageInProgress    = "Your order is on its way to you!"
	messageDelivered     = "Your order has been delivered. Enjoy!"
	messageCancelled     = "This order has been cancelled."
	messageUnknownStatus = "Order status unknown."
)

// OrderFetcher is the slice of the API the tracker needs.
type OrderFetcher interface {
	Order(ctx context.Context, id int) (*order.Order, error)
}

// View is an order decorated with the human-readable status texts the
// tracking page renders.
type View struct {
	Order         *order.Order
	StatusLabel   string
	StatusMessage string
}

// StatusLabel returns the display name of a status.
func StatusLabel(s order.Status) string {
	switch s {
	case order.StatusPending:
		return "Pending"
	case order.StatusInProgress:
		return "In Progress"
	case order.StatusDelivered:
		return "Delivered"
	case order.StatusCancelled:
		return "Cancelled"
	}
	return string(s)
}

// StatusMessage returns the one-line progress description for a status.
func StatusMessage(s order.Status) string {
	switch s {
	case order.StatusPending:
		return messagePending
	case order.StatusInProgress:
		return messageInProgress
	case order.StatusDelivered:
		return messageDelivered
	case order.StatusCancelled:
		return messageCancelled
	}
	return messageUnknownStatus
}

// Tracker looks orders up by id for the public tracking page.
type Tracker struct {
	api OrderFetcher
}

func NewTracker(api OrderFetcher) *Tracker {
	return &Tracker{api: api}
}

func (t *Tracker) Track(ctx context.Context, id int) (*View, error) {
	o, err := t.api.Order(ctx, id)
	if err != nil {
		return nil, err
	}
	return &View{
		Order:         o,
		StatusLabel:   StatusLabel(o.Status),
		StatusMessage: StatusMessage(o.Status),
	}, nil
}

// FailureMessage translates a lookup failure into the message shown on
// the page. A missing order gets its own text.
func FailureMessage(err error) string {
	if errors.Is(err, client.ErrNotFound) {
		return NotFoundMessage
	}
	return fetchFailedMessage
}
