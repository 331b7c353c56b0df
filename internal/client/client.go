package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"bulk-be/internal/order"
	"bulk-be/internal/product"
)

// DataSource reports whether a payload came from the backend database or
// from its fixed sample data.
type DataSource string

const (
	SourceDatabase DataSource = "database"
	SourceFallback DataSource = "fallback"
)

const headerDataSource = "X-Data-Source"

// Client is a typed HTTP client for the order/product backend.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// do issues the request and decodes a JSON response into out. Non-2xx
// responses are mapped onto the error taxonomy; the server's error
// message is surfaced when it provides one.
func (c *Client) do(ctx context.Context, method, path string, body, out any) (DataSource, error) {
	reqBody := &bytes.Buffer{}
	if body != nil {
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return "", fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return "", err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &Error{Kind: KindServer, Message: err.Error()}
	}
	defer resp.Body.Close()

	source := DataSource(resp.Header.Get(headerDataSource))

	if resp.StatusCode == http.StatusNotFound {
		return source, ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind := KindServer
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			kind = KindValidation
		}

		var envelope struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&envelope)

		return source, &Error{Kind: kind, Status: resp.StatusCode, Message: envelope.Error}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return source, &Error{Kind: KindMalformed, Status: resp.StatusCode,
				Message: "invalid response format from API"}
		}
	}

	return source, nil
}

func (c *Client) Products(ctx context.Context) ([]product.Product, DataSource, error) {
	var products []product.Product
	source, err := c.do(ctx, http.MethodGet, "/products", nil, &products)
	return products, source, err
}

func (c *Client) Product(ctx context.Context, id int) (*product.Product, error) {
	var p product.Product
	_, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateProduct(ctx context.Context, input product.Input) (*product.Product, error) {
	var p product.Product
	_, err := c.do(ctx, http.MethodPost, "/products", input, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, input product.Input) (*product.Product, error) {
	var p product.Product
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/products/%d", id), input, &p)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, nil)
	return err
}

func (c *Client) Orders(ctx context.Context) ([]order.Order, DataSource, error) {
	var orders []order.Order
	source, err := c.do(ctx, http.MethodGet, "/orders", nil, &orders)
	return orders, source, err
}

func (c *Client) Order(ctx context.Context, id int) (*order.Order, error) {
	var o order.Order
	_, err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, &o)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) CreateOrder(ctx context.Context, input order.CreateInput) (*order.Order, error) {
	var o order.Order
	_, err := c.do(ctx, http.MethodPost, "/orders", input, &o)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id int, status order.Status) (*order.Order, error) {
	var o order.Order
	_, err := c.do(ctx, http.MethodPut, fmt.Sprintf("/orders/%d", id), order.StatusInput{Status: status}, &o)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
