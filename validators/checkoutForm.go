package validators

import "strings"

// CheckoutForm is the shipping and payment form submitted at checkout.
type CheckoutForm struct {
	FullName      string `json:"full_name"`
	AddressLine1  string `json:"address_line1"`
	AddressLine2  string `json:"address_line2"`
	City          string `json:"city"`
	State         string `json:"state"`
	PostalCode    string `json:"postal_code"`
	PhoneNumber   string `json:"phone_number"`
	PaymentMethod string `json:"payment_method"`
	CardNumber    string `json:"card_number"`
	CardExpiry    string `json:"card_expiry"`
	CardCVV       string `json:"card_cvv"`
}

func (f CheckoutForm) Validate() map[string]string {
	errs := make(map[string]string)

	if f.FullName == "" {
		errs["full_name"] = "Full name is required"
	}
	if f.AddressLine1 == "" {
		errs["address_line1"] = "Address is required"
	}
	if f.City == "" {
		errs["city"] = "City is required"
	}
	if f.State == "" {
		errs["state"] = "State is required"
	}
	if f.PostalCode == "" {
		errs["postal_code"] = "Postal code is required"
	}
	if f.PhoneNumber == "" {
		errs["phone_number"] = "Phone number is required"
	}

	if f.PaymentMethod == "CARD" {
		if f.CardNumber == "" {
			errs["card_number"] = "Card number is required"
		}
		if f.CardExpiry == "" {
			errs["card_expiry"] = "Expiry date is required"
		}
		if f.CardCVV == "" {
			errs["card_cvv"] = "CVV is required"
		}
	}

	return errs
}

// ShippingAddress flattens the discrete form fields into the single-line
// address the backend stores. The transformation is one-way: structured
// fields cannot be recovered from the result.
func (f CheckoutForm) ShippingAddress() string {
	parts := []string{f.FullName, f.AddressLine1}
	if f.AddressLine2 != "" {
		parts = append(parts, f.AddressLine2)
	}
	parts = append(parts, f.City, f.State, f.PostalCode, f.PhoneNumber)
	return strings.Join(parts, ", ")
}
