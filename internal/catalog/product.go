package catalog

import "fmt"

// Product is a single catalog entry. The catalog is fixed at startup and
// never mutated afterwards, so values are shared freely across requests.
type Product struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Brand      string `json:"brand"`
	Level      string `json:"level"`
	Style      string `json:"style"`
	PriceCents int64  `json:"price_cents"`
	New        bool   `json:"is_new"`
	Sale       bool   `json:"is_sale"`
}

func validate(products []Product) error {
	seen := make(map[int]struct{}, len(products))
	for _, p := range products {
		if p.Name == "" || p.Category == "" {
			return fmt.Errorf("product %d: name and category required", p.ID)
		}
		if p.PriceCents < 0 {
			return fmt.Errorf("product %d: negative price", p.ID)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("product %d: duplicate id", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
