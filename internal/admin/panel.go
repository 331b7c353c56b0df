package admin

import (
	"context"
	"errors"
	"fmt"

	"bulk-be/internal/client"
	"bulk-be/internal/logger"
	"bulk-be/internal/order"
	"bulk-be/internal/product"

	"go.uber.org/zap"
)

// FetchState tracks where one data surface of the dashboard stands.
type FetchState string

const (
	StateIdle    FetchState = "idle"
	StateLoading FetchState = "loading"
	StateSuccess FetchState = "success"
	StateError   FetchState = "error"
)

// API is the slice of the backend client the dashboard needs.
type API interface {
	Products(ctx context.Context) ([]product.Product, client.DataSource, error)
	Orders(ctx context.Context) ([]order.Order, client.DataSource, error)
	CreateProduct(ctx context.Context, input product.Input) (*product.Product, error)
	UpdateProduct(ctx context.Context, id int, input product.Input) (*product.Product, error)
	DeleteProduct(ctx context.Context, id int) error
	UpdateOrderStatus(ctx context.Context, id int, status order.Status) (*order.Order, error)
}

// Panel is the admin dashboard state: the two lists, their fetch states,
// and the current error banner. Products and orders fail independently;
// either surface falls back to sample data on its own.
type Panel struct {
	api API

	Products      []product.Product
	Orders        []order.Order
	ProductsState FetchState
	OrdersState   FetchState
	Banner        string
}

func NewPanel(api API) *Panel {
	return &Panel{
		api:           api,
		ProductsState: StateIdle,
		OrdersState:   StateIdle,
	}
}

// Load refreshes both surfaces.
func (p *Panel) Load(ctx context.Context) {
	p.LoadProducts(ctx)
	p.LoadOrders(ctx)
}

// LoadProducts refreshes the product list. On failure the list is
// replaced with sample data and the banner says so.
func (p *Panel) LoadProducts(ctx context.Context) {
	p.ProductsState = StateLoading

	products, _, err := p.api.Products(ctx)
	if err != nil {
		logger.FromCtx(ctx).Warn("admin: failed to fetch products", zap.Error(err))
		p.Banner = fmt.Sprintf("Failed to load products. Using sample data instead. %s", err)
		p.Products = product.SampleProducts()
		p.ProductsState = StateError
		return
	}

	p.Products = products
	p.ProductsState = StateSuccess
}

// LoadOrders refreshes the order list, falling back to sample data on
// failure.
func (p *Panel) LoadOrders(ctx context.Context) {
	p.OrdersState = StateLoading

	orders, _, err := p.api.Orders(ctx)
	if err != nil {
		logger.FromCtx(ctx).Warn("admin: failed to fetch orders", zap.Error(err))
		p.Orders = order.SampleOrders()
		p.OrdersState = StateError
		return
	}

	p.Orders = orders
	p.OrdersState = StateSuccess
}

func (p *Panel) ProductsUsingSampleData() bool { return p.ProductsState == StateError }
func (p *Panel) OrdersUsingSampleData() bool   { return p.OrdersState == StateError }

// SaveProduct validates the form and then creates or updates, depending
// on whether editingID is set. Validation failures return field errors
// without touching the API. A created product is appended to the list;
// an updated one replaces its entry in place.
func (p *Panel) SaveProduct(ctx context.Context, editingID *int, form ProductForm) (FieldErrors, error) {
	if errs := form.Validate(); errs != nil {
		return errs, nil
	}

	input := form.Input()

	if editingID != nil {
		updated, err := p.api.UpdateProduct(ctx, *editingID, input)
		if err != nil {
			p.Banner = failureMessage(err, "Failed to save product. Please try again.")
			return nil, err
		}
		for i, existing := range p.Products {
			if existing.ID == *editingID {
				p.Products[i] = *updated
				break
			}
		}
		return nil, nil
	}

	created, err := p.api.CreateProduct(ctx, input)
	if err != nil {
		p.Banner = failureMessage(err, "Failed to save product. Please try again.")
		return nil, err
	}
	p.Products = append(p.Products, *created)
	return nil, nil
}

// DeleteProduct removes a product after confirmation. Without it,
// nothing happens at all.
func (p *Panel) DeleteProduct(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return nil
	}

	if err := p.api.DeleteProduct(ctx, id); err != nil {
		p.Banner = failureMessage(err, "Failed to delete product. Please try again.")
		return err
	}

	kept := p.Products[:0]
	for _, existing := range p.Products {
		if existing.ID != id {
			kept = append(kept, existing)
		}
	}
	p.Products = kept
	return nil
}

// UpdateOrderStatus moves an order to a new status. On success only the
// status field of the list entry changes; on failure the list stays as
// it was and the banner reports the problem.
func (p *Panel) UpdateOrderStatus(ctx context.Context, id int, status order.Status) error {
	if _, err := p.api.UpdateOrderStatus(ctx, id, status); err != nil {
		p.Banner = failureMessage(err, "Failed to update order status. Please try again.")
		return err
	}

	for i := range p.Orders {
		if p.Orders[i].ID == id {
			p.Orders[i].Status = status
			break
		}
	}
	return nil
}

// StatusActions lists the statuses an order can move to from where it
// is now. Terminal orders get none.
func (p *Panel) StatusActions(o order.Order) []order.Status {
	return order.NextStatuses(o.Status)
}

func (p *Panel) ClearBanner() {
	p.Banner = ""
}

func failureMessage(err error, fallback string) string {
	var apiErr *client.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
