package views

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Orders above the threshold ship free, everything else pays the flat fee.
const (
	FreeShippingThreshold = 20.0
	FlatShippingFee       = 99.0
	TaxRate               = 0.18
)

// OrderSummary is the checkout arithmetic over a cart subtotal.
type OrderSummary struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

func Summarize(subtotal float64) OrderSummary {
	shipping := FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	tax := subtotal * TaxRate
	return OrderSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}

// ApproximateBreakdown reconstructs subtotal and tax from a stored order
// total using fixed percentages. The backend persists only the final total,
// so this is a lossy display approximation, not an exact breakdown.
func ApproximateBreakdown(total float64) (subtotal, tax float64) {
	return total * 0.82, total * 0.18
}

var pricePrinter = message.NewPrinter(language.English)

// FormatPrice renders a USD amount with grouping and zero fraction digits.
func FormatPrice(v float64) string {
	return pricePrinter.Sprintf("$%v", number.Decimal(v, number.MaxFractionDigits(0)))
}
