package product

func strp(s string) *string { return &s }

// SampleProducts is the fixed catalog served when the database is
// unreachable. Returned fresh on each call so callers may mutate their copy.
func SampleProducts() []Product {
	return []Product{
		{
			ID:          1,
			Name:        "Organic Apples",
			Description: strp("Fresh organic apples from local farms"),
			Price:       3.99,
			ImageURL:    strp("https://images.unsplash.com/photo-1568702846914-96b305d2aaeb"),
			Category:    "Fruits",
			Stock:       100,
		},
		{
			ID:          2,
			Name:        "Bananas",
			Description: strp("Ripe yellow bananas, perfect for smoothies"),
			Price:       2.49,
			ImageURL:    strp("https://images.unsplash.com/photo-1543218024-57a70143c369"),
			Category:    "Fruits",
			Stock:       150,
		},
		{
			ID:          6,
			Name:        "Fresh Carrots",
			Description: strp("Locally grown carrots, perfect for salads and cooking"),
			Price:       2.49,
			ImageURL:    strp("https://images.unsplash.com/photo-1598170845058-32b9d6a5da37"),
			Category:    "Vegetables",
			Stock:       150,
		},
		{
			ID:          7,
			Name:        "Broccoli",
			Description: strp("Fresh green broccoli florets"),
			Price:       2.99,
			ImageURL:    strp("https://images.unsplash.com/photo-1459411621453-7b03977f4bfc"),
			Category:    "Vegetables",
			Stock:       100,
		},
	}
}
