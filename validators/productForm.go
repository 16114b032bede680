package validators

import (
	"strconv"

	"github.com/streetware/gateway/models"
)

// ProductForm carries the admin product form exactly as submitted: numeric
// fields arrive as strings and are validated before any backend call.
type ProductForm struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	Price           string `json:"price"`
	DiscountedPrice string `json:"discounted_price"`
	StockQuantity   string `json:"stock_quantity"`
	ImageURL        string `json:"image_url"`
	Size            string `json:"size"`
	Color           string `json:"color"`
}

// Validate returns a field -> message map; an empty map means the form is
// acceptable. Rules are re-checked on every submit attempt.
func (f ProductForm) Validate() map[string]string {
	errs := make(map[string]string)

	if f.Name == "" {
		errs["name"] = "Product name is required"
	}

	price, priceErr := strconv.ParseFloat(f.Price, 64)
	if f.Price == "" {
		errs["price"] = "Price is required"
	} else if priceErr != nil || price <= 0 {
		errs["price"] = "Price must be a positive number"
	}

	if f.DiscountedPrice != "" {
		discounted, err := strconv.ParseFloat(f.DiscountedPrice, 64)
		if err != nil || discounted <= 0 || (priceErr == nil && discounted >= price) {
			errs["discounted_price"] = "Discounted price must be less than the regular price"
		}
	}

	if f.StockQuantity == "" {
		errs["stock_quantity"] = "Stock quantity is required"
	} else if stock, err := strconv.Atoi(f.StockQuantity); err != nil || stock < 0 {
		errs["stock_quantity"] = "Stock quantity must be a non-negative number"
	}

	return errs
}

// Data converts a validated form into the backend payload. Call only after
// Validate returned no errors.
func (f ProductForm) Data() models.ProductData {
	price, _ := strconv.ParseFloat(f.Price, 64)
	stock, _ := strconv.Atoi(f.StockQuantity)

	data := models.ProductData{
		Name:          f.Name,
		Description:   f.Description,
		Price:         price,
		StockQuantity: stock,
		ImageURL:      f.ImageURL,
		Size:          f.Size,
		Color:         f.Color,
	}
	if f.DiscountedPrice != "" {
		discounted, _ := strconv.ParseFloat(f.DiscountedPrice, 64)
		data.DiscountedPrice = &discounted
	}
	return data
}
