package models

type Product struct {
	ProductID       int     `json:"product_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           Amount  `json:"price"`
	DiscountedPrice *Amount `json:"discounted_price"`
	StockQuantity   int     `json:"stock_quantity"`
	ImageURL        string  `json:"image_url"`
	Size            string  `json:"size,omitempty"`
	Color           string  `json:"color,omitempty"`
}

// EffectivePrice is the discounted price when one is set, else the list price.
func (p Product) EffectivePrice() float64 {
	if p.DiscountedPrice != nil {
		return p.DiscountedPrice.Float64()
	}
	return p.Price.Float64()
}

// ProductData is the body sent to the backend when creating or updating a
// product from the admin console.
type ProductData struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discounted_price"`
	StockQuantity   int      `json:"stock_quantity"`
	ImageURL        string   `json:"image_url"`
	Size            string   `json:"size,omitempty"`
	Color           string   `json:"color,omitempty"`
}
