package checkout

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"bulk-be/internal/cart"
	"bulk-be/internal/client"
	"bulk-be/internal/logger"
	"bulk-be/internal/order"

	"go.uber.org/zap"
)

// ErrEmptyCart aborts a submit before any request is made. Its text is
// shown to the buyer as-is.
var ErrEmptyCart = errors.New("Your cart is empty. Please add some products before placing an order.")

const genericFailureMessage = "Failed to place order. Please try again."

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// BuyerInfo is the checkout form.
type BuyerInfo struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// FieldErrors maps form field names to the message shown next to them.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, msg := range e {
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every field and reports all failures at once, keyed by
// field name.
func (b BuyerInfo) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(b.Name) == "" {
		errs["buyerName"] = "Name is required"
	}
	if strings.TrimSpace(b.Email) == "" {
		errs["buyerEmail"] = "Email is required"
	} else if !emailPattern.MatchString(b.Email) {
		errs["buyerEmail"] = "Email is invalid"
	}
	if strings.TrimSpace(b.Phone) == "" {
		errs["buyerPhone"] = "Phone number is required"
	}
	if strings.TrimSpace(b.Address) == "" {
		errs["deliveryAddress"] = "Delivery address is required"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// OrderPlacer is the slice of the API the checkout needs.
type OrderPlacer interface {
	CreateOrder(ctx context.Context, input order.CreateInput) (*order.Order, error)
}

// Checkout turns a cart plus a filled form into a placed order.
type Checkout struct {
	cart *cart.Store
	api  OrderPlacer
}

func New(cartStore *cart.Store, api OrderPlacer) *Checkout {
	return &Checkout{cart: cartStore, api: api}
}

// Submit validates the form and the cart, places the order, and clears
// the cart on success. Validation failures and an empty cart abort
// before any request goes out.
func (c *Checkout) Submit(ctx context.Context, info BuyerInfo) (*order.Order, error) {
	if errs := info.Validate(); errs != nil {
		return nil, errs
	}

	items := c.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	input := order.CreateInput{
		BuyerName:       info.Name,
		BuyerEmail:      info.Email,
		BuyerPhone:      info.Phone,
		DeliveryAddress: info.Address,
		TotalAmount:     c.cart.Total(),
		Items:           make([]order.ItemInput, 0, len(items)),
	}
	for _, item := range items {
		input.Items = append(input.Items, order.ItemInput{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			Price:     item.Product.Price,
		})
	}

	placed, err := c.api.CreateOrder(ctx, input)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to place order", zap.Error(err))
		return nil, err
	}

	c.cart.Clear()
	logger.FromCtx(ctx).Info("order placed",
		zap.Int("orderId", placed.ID),
		zap.Float64("totalAmount", placed.TotalAmount))
	return placed, nil
}

// FailureMessage translates a submit failure into the message shown to
// the buyer. The server's own message wins when it sent one.
func FailureMessage(err error) string {
	if errors.Is(err, ErrEmptyCart) {
		return ErrEmptyCart.Error()
	}

	var apiErr *client.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return genericFailureMessage
}
