package admin

import (
	"regexp"
	"strconv"
	"strings"

	"bulk-be/internal/product"
)

var imageURLPattern = regexp.MustCompile(`^https?://.+`)

// ProductForm holds the raw text of the product form, numeric fields
// included, so validation can report on exactly what was typed.
type ProductForm struct {
	Name        string
	Description string
	Price       string
	ImageURL    string
	Category    string
	Stock       string
}

// FieldErrors maps form field names to the message shown next to them.
type FieldErrors map[string]string

// Validate checks the form and reports all failures at once. Description,
// image URL, and stock are optional; the rest are required.
func (f ProductForm) Validate() FieldErrors {
	errs := FieldErrors{}

	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "Product name is required"
	}

	if strings.TrimSpace(f.Price) == "" {
		errs["price"] = "Price is required"
	} else if price, err := strconv.ParseFloat(f.Price, 64); err != nil || price <= 0 {
		errs["price"] = "Price must be a positive number"
	}

	if strings.TrimSpace(f.Category) == "" {
		errs["category"] = "Category is required"
	}

	if strings.TrimSpace(f.Stock) != "" {
		if stock, err := strconv.Atoi(f.Stock); err != nil || stock < 0 {
			errs["stock"] = "Stock must be a non-negative number"
		}
	}

	if strings.TrimSpace(f.ImageURL) != "" && !imageURLPattern.MatchString(f.ImageURL) {
		errs["imageUrl"] = "Image URL must be a valid URL"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Input converts a validated form into the API payload. Empty optional
// fields become null; an empty stock defaults to zero.
func (f ProductForm) Input() product.Input {
	price, _ := strconv.ParseFloat(f.Price, 64)

	input := product.Input{
		Name:     f.Name,
		Price:    price,
		Category: f.Category,
	}
	if f.Description != "" {
		input.Description = &f.Description
	}
	if f.ImageURL != "" {
		input.ImageURL = &f.ImageURL
	}
	stock := 0
	if f.Stock != "" {
		stock, _ = strconv.Atoi(f.Stock)
	}
	input.Stock = &stock

	return input
}
