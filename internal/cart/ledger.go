package cart

import (
	"context"
	"errors"
	"math"

	"SkiShop/internal/catalog"
)

var ErrTotalOverflow = errors.New("cart total overflow")

// Ledger joins a user's cart against the catalog.
type Ledger struct {
	Store   Store
	Catalog *catalog.Store
}

// Materialize resolves the cart ids to products, in cart order, and sums
// their prices. Ids with no catalog match are dropped silently; a product
// added k times appears k times and contributes k times to the total.
func (l *Ledger) Materialize(ctx context.Context, userID string) ([]catalog.Product, int64, error) {
	ids, err := l.Store.List(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	items := make([]catalog.Product, 0, len(ids))
	var total int64
	for _, id := range ids {
		p, ok := l.Catalog.Get(id)
		if !ok {
			continue
		}
		if total > math.MaxInt64-p.PriceCents {
			return nil, 0, ErrTotalOverflow
		}
		items = append(items, p)
		total += p.PriceCents
	}

	return items, total, nil
}
