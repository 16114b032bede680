package services

import (
	"fmt"
	"log"

	"github.com/streetware/gateway/models"
)

// GetProducts returns the full catalog. When the backend is unreachable or
// errors out, the built-in mock catalog is served instead so the storefront
// keeps rendering.
func (c *BackendClient) GetProducts() ([]models.Product, error) {
	var products []models.Product
	resp, err := c.request("").SetResult(&products).Get("/products")
	if err != nil {
		log.Println("Using mock catalog due to API error:", err)
		return MockCatalog(), nil
	}
	if resp.IsError() {
		log.Println("Using mock catalog due to API error:", apiError(resp, "Failed to fetch products"))
		return MockCatalog(), nil
	}
	return products, nil
}

func (c *BackendClient) GetProductByID(id int) (models.Product, error) {
	var product models.Product
	resp, err := c.request("").SetResult(&product).Get(fmt.Sprintf("/products/%d", id))
	if err == nil && !resp.IsError() {
		return product, nil
	}
	if err != nil {
		log.Println("Using mock catalog due to API error:", err)
	} else {
		log.Println("Using mock catalog due to API error:", apiError(resp, "Failed to fetch product details"))
	}
	for _, p := range MockCatalog() {
		if p.ProductID == id {
			return p, nil
		}
	}
	return models.Product{}, &APIError{StatusCode: 404, Message: "Product not found"}
}

func (c *BackendClient) CreateProduct(token string, data models.ProductData) (models.Product, error) {
	var product models.Product
	resp, err := c.request(token).SetBody(data).SetResult(&product).Post("/products")
	if err != nil {
		return models.Product{}, fmt.Errorf("create product request failed: %w", err)
	}
	if resp.IsError() {
		return models.Product{}, apiError(resp, "Failed to create product")
	}
	return product, nil
}

func (c *BackendClient) UpdateProduct(token string, id int, data models.ProductData) (models.Product, error) {
	var product models.Product
	resp, err := c.request(token).SetBody(data).SetResult(&product).Put(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return models.Product{}, fmt.Errorf("update product request failed: %w", err)
	}
	if resp.IsError() {
		return models.Product{}, apiError(resp, "Failed to update product")
	}
	return product, nil
}

func (c *BackendClient) DeleteProduct(token string, id int) error {
	resp, err := c.request(token).Delete(fmt.Sprintf("/products/%d", id))
	if err != nil {
		return fmt.Errorf("delete product request failed: %w", err)
	}
	if resp.IsError() {
		return apiError(resp, "Failed to delete product")
	}
	return nil
}
