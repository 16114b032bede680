package models

// ProductSnapshot is the subset of product data the backend embeds on cart and
// order lines.
type ProductSnapshot struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Size     string `json:"size,omitempty"`
	Color    string `json:"color,omitempty"`
}

type CartItem struct {
	CartItemID int              `json:"cart_item_id"`
	ProductID  int              `json:"product_id"`
	Quantity   int              `json:"quantity"`
	Price      Amount           `json:"price"`
	Product    *ProductSnapshot `json:"Product,omitempty"`
}

type Cart struct {
	CartID int        `json:"cart_id"`
	UserID int        `json:"user_id"`
	Items  []CartItem `json:"CartItems"`
}

type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required"`
	Quantity  int `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}
