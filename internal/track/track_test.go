package track

import (
	"context"
	"errors"
	"testing"

	"bulk-be/internal/client"
	"bulk-be/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Order(ctx context.Context, id int) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func TestStatusTexts(t *testing.T) {
	cases := []struct {
		status  order.Status
		label   string
		message string
	}{
		{order.StatusPending, "Pending", "Your order has been received and is being processed."},
		{order.StatusInProgress, "In Progress", "Your order is on its way to you!"},
		{order.StatusDelivered, "Delivered", "Your order has been delivered. Enjoy!"},
		{order.StatusCancelled, "Cancelled", "This order has been cancelled."},
	}

	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.label, StatusLabel(tc.status))
			assert.Equal(t, tc.message, StatusMessage(tc.status))
		})
	}
}

func TestTrack(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		api := new(MockAPI)
		api.On("Order", mock.Anything, 1).
			Return(&order.Order{ID: 1, BuyerName: "John Doe", Status: order.StatusInProgress}, nil)

		view, err := NewTracker(api).Track(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, "In Progress", view.StatusLabel)
		assert.Equal(t, "Your order is on its way to you!", view.StatusMessage)
		assert.Equal(t, "John Doe", view.Order.BuyerName)
	})

	t.Run("Not found", func(t *testing.T) {
		api := new(MockAPI)
		api.On("Order", mock.Anything, 99).Return(nil, client.ErrNotFound)

		_, err := NewTracker(api).Track(context.Background(), 99)

		assert.ErrorIs(t, err, client.ErrNotFound)
		assert.Equal(t, "Order not found. Please check the order ID and try again.", FailureMessage(err))
	})

	t.Run("Backend failure", func(t *testing.T) {
		api := new(MockAPI)
		api.On("Order", mock.Anything, 1).
			Return(nil, &client.Error{Kind: client.KindServer, Status: 500, Message: "Failed to fetch order"})

		_, err := NewTracker(api).Track(context.Background(), 1)

		assert.Error(t, err)
		assert.Equal(t, "Failed to fetch order details", FailureMessage(err))
	})
}

func TestFailureMessageGeneric(t *testing.T) {
	assert.Equal(t, "Failed to fetch order details", FailureMessage(errors.New("timeout")))
}
