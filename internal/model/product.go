package model

// Product is a demo catalog item. The catalog is static in-memory data,
// there is no product table.
type Product struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         int     `json:"price"`
	OriginalPrice int     `json:"original_price"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Discount      int     `json:"discount"`
	InStock       bool    `json:"in_stock"`
	Description   string  `json:"description"`
}

type ProductCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
