package catalog

import "context"

// Store holds the full product catalog in definition order. It is built
// once at startup and read-only afterwards, so no locking is needed.
type Store struct {
	products []Product
	byID     map[int]Product
}

// Load builds the store from the compiled-in inventory.
func Load() (*Store, error) {
	return NewStore(defaultProducts)
}

func NewStore(products []Product) (*Store, error) {
	if err := validate(products); err != nil {
		return nil, err
	}

	s := &Store{
		products: make([]Product, len(products)),
		byID:     make(map[int]Product, len(products)),
	}
	copy(s.products, products)
	for _, p := range s.products {
		s.byID[p.ID] = p
	}
	return s, nil
}

// All returns the catalog in definition order. Callers must not mutate it.
func (s *Store) All() []Product {
	return s.products
}

func (s *Store) Get(id int) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

func (s *Store) Ping(ctx context.Context) error { return nil }

// Featured returns up to n new-or-sale products. If the catalog has fewer
// highlights than n, the front of the catalog is shown instead.
func (s *Store) Featured(n int) []Product {
	out := make([]Product, 0, n)
	for _, p := range s.products {
		if p.New || p.Sale {
			out = append(out, p)
		}
		if len(out) == n {
			return out
		}
	}

	out = out[:0]
	for _, p := range s.products {
		out = append(out, p)
		if len(out) == n {
			break
		}
	}
	return out
}

// Related returns up to n products from p's category, excluding p itself.
func (s *Store) Related(p Product, n int) []Product {
	out := make([]Product, 0, n)
	for _, other := range s.products {
		if other.Category != p.Category || other.ID == p.ID {
			continue
		}
		out = append(out, other)
		if len(out) == n {
			break
		}
	}
	return out
}
