package order

import (
	"time"

	"bulk-be/internal/product"
)

func strp(s string) *string { return &s }

// SampleOrders is the fixed order set served to the admin view when the
// database is unreachable.
func SampleOrders() []Order {
	now := time.Now()

	return []Order{
		{
			ID:              1,
			BuyerName:       "John Doe",
			BuyerEmail:      "john@example.com",
			BuyerPhone:      "555-123-4567",
			DeliveryAddress: "123 Main St, Anytown, USA",
			TotalAmount:     25.97,
			Status:          StatusPending,
			CreatedAt:       now,
			UpdatedAt:       now,
			Items: []OrderItem{
				{
					ID:        1,
					ProductID: 1,
					Quantity:  2,
					Price:     3.99,
					Product: product.Summary{
						ID:       1,
						Name:     "Organic Apples",
						Price:    3.99,
						ImageURL: strp("https://images.unsplash.com/photo-1568702846914-96b305d2aaeb"),
					},
				},
				{
					ID:        2,
					ProductID: 6,
					Quantity:  3,
					Price:     2.49,
					Product: product.Summary{
						ID:       6,
						Name:     "Fresh Carrots",
						Price:    2.49,
						ImageURL: strp("https://images.unsplash.com/photo-1598170845058-32b9d6a5da37"),
					},
				},
			},
		},
		{
			ID:              2,
			BuyerName:       "Jane Smith",
			BuyerEmail:      "jane@example.com",
			BuyerPhone:      "555-987-6543",
			DeliveryAddress: "456 Oak Ave, Somewhere, USA",
			TotalAmount:     18.45,
			Status:          StatusDelivered,
			CreatedAt:       now.Add(-24 * time.Hour),
			UpdatedAt:       now.Add(-12 * time.Hour),
			Items: []OrderItem{
				{
					ID:        3,
					ProductID: 2,
					Quantity:  4,
					Price:     2.49,
					Product: product.Summary{
						ID:       2,
						Name:     "Bananas",
						Price:    2.49,
						ImageURL: strp("https://images.unsplash.com/photo-1543218024-57a70143c369"),
					},
				},
				{
					ID:        4,
					ProductID: 7,
					Quantity:  3,
					Price:     2.99,
					Product: product.Summary{
						ID:       7,
						Name:     "Broccoli",
						Price:    2.99,
						ImageURL: strp("https://images.unsplash.com/photo-1459411621453-7b03977f4bfc"),
					},
				},
			},
		},
	}
}
