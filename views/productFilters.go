package views

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/streetware/gateway/models"
)

// ProductFilters is the storefront listing filter set. Apply is a pure
// function of (products, filters): predicates intersect, and the optional
// sort always runs last.
type ProductFilters struct {
	Search     string
	Size       string
	Color      string
	PriceRange string // "min-max"; an omitted max leaves the range open-ended
	Sort       string // price-asc | price-desc | name-asc | name-desc
}

var nameCollator = collate.New(language.English)

func (f ProductFilters) Apply(products []models.Product) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if f.matches(p) {
			result = append(result, p)
		}
	}

	switch f.Sort {
	case "price-asc":
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].EffectivePrice() < result[j].EffectivePrice()
		})
	case "price-desc":
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].EffectivePrice() > result[j].EffectivePrice()
		})
	case "name-asc":
		sort.SliceStable(result, func(i, j int) bool {
			return nameCollator.CompareString(result[i].Name, result[j].Name) < 0
		})
	case "name-desc":
		sort.SliceStable(result, func(i, j int) bool {
			return nameCollator.CompareString(result[i].Name, result[j].Name) > 0
		})
	}
	return result
}

func (f ProductFilters) matches(p models.Product) bool {
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Description), needle) {
			return false
		}
	}
	if f.Size != "" && p.Size != f.Size {
		return false
	}
	if f.Color != "" && p.Color != f.Color {
		return false
	}
	if f.PriceRange != "" {
		min, max, ok := parsePriceRange(f.PriceRange)
		if ok {
			price := p.EffectivePrice()
			if price < min || price > max {
				return false
			}
		}
	}
	return true
}

// parsePriceRange reads "min-max" with inclusive bounds; a missing max means
// no upper bound and is reported as +Inf.
func parsePriceRange(r string) (min, max float64, ok bool) {
	parts := strings.SplitN(r, "-", 2)
	min, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, false
	}
	max = math.Inf(1)
	if len(parts) == 2 && parts[1] != "" {
		max, err = strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return 0, 0, false
		}
	}
	return min, max, true
}

// Sizes lists the distinct non-empty sizes of the catalog, in first-seen
// order, for the filter dropdown.
func Sizes(products []models.Product) []string {
	return distinct(products, func(p models.Product) string { return p.Size })
}

func Colors(products []models.Product) []string {
	return distinct(products, func(p models.Product) string { return p.Color })
}

func distinct(products []models.Product, field func(models.Product) string) []string {
	seen := make(map[string]bool)
	var values []string
	for _, p := range products {
		v := field(p)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}
