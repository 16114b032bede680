package services

import "github.com/streetware/gateway/models"

func discounted(v float64) *models.Amount {
	a := models.Amount(v)
	return &a
}

// MockCatalog is the hardcoded fallback catalog served when the backend
// product endpoints fail.
func MockCatalog() []models.Product {
	return []models.Product{
		{
			ProductID:       1,
			Name:            "Classic White T-Shirt",
			Description:     "Essential cotton t-shirt in pure white",
			Price:           599,
			DiscountedPrice: discounted(499),
			StockQuantity:   100,
			ImageURL:        "https://images.pexels.com/photos/4066293/pexels-photo-4066293.jpeg",
			Size:            "M",
			Color:           "White",
		},
		{
			ProductID:     2,
			Name:          "Black Denim Jacket",
			Description:   "Timeless denim jacket in washed black",
			Price:         2999,
			StockQuantity: 50,
			ImageURL:      "https://images.pexels.com/photos/7679720/pexels-photo-7679720.jpeg",
			Size:          "L",
			Color:         "Black",
		},
		{
			ProductID:       3,
			Name:            "Pleated Midi Skirt",
			Description:     "Elegant pleated skirt in flowing fabric",
			Price:           1499,
			DiscountedPrice: discounted(1299),
			StockQuantity:   75,
			ImageURL:        "https://images.pexels.com/photos/6311475/pexels-photo-6311475.jpeg",
			Size:            "S",
			Color:           "Beige",
		},
		{
			ProductID:     4,
			Name:          "Slim Fit Chinos",
			Description:   "Classic chinos in comfortable cotton stretch",
			Price:         1299,
			StockQuantity: 80,
			ImageURL:      "https://images.pexels.com/photos/3755706/pexels-photo-3755706.jpeg",
			Size:          "32",
			Color:         "Khaki",
		},
		{
			ProductID:       5,
			Name:            "Floral Summer Dress",
			Description:     "Light and airy dress with floral print",
			Price:           1999,
			DiscountedPrice: discounted(1599),
			StockQuantity:   45,
			ImageURL:        "https://images.pexels.com/photos/12179283/pexels-photo-12179283.jpeg",
			Size:            "M",
			Color:           "Multicolor",
		},
		{
			ProductID:     6,
			Name:          "Leather Crossbody Bag",
			Description:   "Compact leather bag with adjustable strap",
			Price:         2499,
			StockQuantity: 30,
			ImageURL:      "https://images.pexels.com/photos/5706273/pexels-photo-5706273.jpeg",
			Color:         "Brown",
		},
		{
			ProductID:       7,
			Name:            "Striped Cotton Shirt",
			Description:     "Classic striped shirt in breathable cotton",
			Price:           899,
			DiscountedPrice: discounted(799),
			StockQuantity:   60,
			ImageURL:        "https://images.pexels.com/photos/769749/pexels-photo-769749.jpeg",
			Size:            "L",
			Color:           "Blue",
		},
		{
			ProductID:     8,
			Name:          "High-Waisted Jeans",
			Description:   "Flattering high-waisted jeans in dark wash",
			Price:         1799,
			StockQuantity: 70,
			ImageURL:      "https://images.pexels.com/photos/1346187/pexels-photo-1346187.jpeg",
			Size:          "28",
			Color:         "Blue",
		},
	}
}
