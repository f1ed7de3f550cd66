package app

import (
	"sort"
	"strings"

	"gamestore-hub/internal/model"
)

const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
	SortByRating    = "rating"
)

// CatalogService serves the static demo catalog. There is no product
// store behind it.
type CatalogService struct {
	products   []model.Product
	categories []model.ProductCategory
}

func NewCatalogService() *CatalogService {
	return &CatalogService{
		products:   demoProducts(),
		categories: demoCategories(),
	}
}

type ListProductsInput struct {
	Category string
	Search   string
	SortBy   string
}

func (s *CatalogService) ListProducts(input ListProductsInput) []model.Product {
	filtered := make([]model.Product, 0, len(s.products))
	search := strings.ToLower(strings.TrimSpace(input.Search))
	for _, p := range s.products {
		if input.Category != "" && input.Category != "all" && p.Category != input.Category {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		switch input.SortBy {
		case SortByPriceLow:
			return filtered[i].Price < filtered[j].Price
		case SortByPriceHigh:
			return filtered[i].Price > filtered[j].Price
		case SortByRating:
			return filtered[i].Rating > filtered[j].Rating
		default:
			return filtered[i].Name < filtered[j].Name
		}
	})
	return filtered
}

func (s *CatalogService) ListCategories() []model.ProductCategory {
	return s.categories
}

func demoCategories() []model.ProductCategory {
	return []model.ProductCategory{
		{ID: "all", Name: "All Products"},
		{ID: "gaming-hardware", Name: "Gaming Hardware"},
		{ID: "peripherals", Name: "Gaming Peripherals"},
		{ID: "accessories", Name: "Gaming Accessories"},
		{ID: "software", Name: "Gaming Software"},
	}
}

func demoProducts() []model.Product {
	return []model.Product{
		{
			ID:            1,
			Name:          "Gaming Headset Pro",
			Category:      "peripherals",
			Price:         150,
			OriginalPrice: 180,
			Rating:        4.8,
			Reviews:       124,
			Discount:      17,
			InStock:       true,
			Description:   "High-quality gaming headset with surround sound and noise cancellation",
		},
		{
			ID:            2,
			Name:          "Mechanical Gaming Keyboard",
			Category:      "peripherals",
			Price:         120,
			OriginalPrice: 140,
			Rating:        4.6,
			Reviews:       89,
			Discount:      14,
			InStock:       true,
			Description:   "RGB mechanical keyboard with customizable keys and macros",
		},
		{
			ID:            3,
			Name:          "Gaming Graphics Card RTX",
			Category:      "gaming-hardware",
			Price:         500,
			OriginalPrice: 600,
			Rating:        4.9,
			Reviews:       45,
			Discount:      17,
			InStock:       true,
			Description:   "High-performance graphics card for 4K gaming and ray tracing",
		},
		{
			ID:            4,
			Name:          "Gaming Chair Ultimate",
			Category:      "accessories",
			Price:         300,
			OriginalPrice: 350,
			Rating:        4.7,
			Reviews:       23,
			Discount:      14,
			InStock:       false,
			Description:   "Ergonomic gaming chair with lumbar support and adjustable height",
		},
		{
			ID:            5,
			Name:          "Gaming Mouse Precision",
			Category:      "peripherals",
			Price:         80,
			OriginalPrice: 90,
			Rating:        4.5,
			Reviews:       234,
			Discount:      11,
			InStock:       true,
			Description:   "High-precision gaming mouse with customizable DPI settings",
		},
		{
			ID:            6,
			Name:          "VR Gaming Headset",
			Category:      "gaming-hardware",
			Price:         400,
			OriginalPrice: 450,
			Rating:        4.4,
			Reviews:       156,
			Discount:      11,
			InStock:       true,
			Description:   "Virtual reality headset for immersive gaming experiences",
		},
	}
}
