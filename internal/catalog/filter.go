package catalog

import (
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Pseudo-categories that select by flag instead of the category field.
const (
	CategorySales    = "sales"
	CategoryArrivals = "arrivals"
)

const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortName      = "name"
)

// Query carries the raw listing parameters. Price bounds stay as strings:
// an unparseable bound means "no bound", never an error.
type Query struct {
	Text     string
	Sort     string
	MinPrice string
	MaxPrice string
	Brands   []string
	Levels   []string
	Styles   []string
}

func ParseQuery(v url.Values) Query {
	return Query{
		Text:     strings.TrimSpace(v.Get("q")),
		Sort:     v.Get("sort"),
		MinPrice: v.Get("min_price"),
		MaxPrice: v.Get("max_price"),
		Brands:   v["brand"],
		Levels:   v["level"],
		Styles:   v["style"],
	}
}

// Facets lists the distinct filter values present in a category's full
// inventory, each sorted ascending. They feed the sidebar option lists and
// deliberately ignore the currently applied filters.
type Facets struct {
	Brands []string
	Levels []string
	Styles []string
}

type Result struct {
	Items  []Product
	Facets Facets
}

// List runs the filter/sort pipeline for one category. It is pure: the
// store is never mutated and the result is deterministic for a given input.
func (s *Store) List(category string, q Query) Result {
	base := s.baseSet(category)
	items := append([]Product(nil), base...)

	if q.Text != "" {
		needle := strings.ToLower(q.Text)
		items = keep(items, func(p Product) bool {
			return strings.Contains(strings.ToLower(p.Name), needle)
		})
	}

	if set := lowerSet(q.Brands); set != nil {
		items = keep(items, func(p Product) bool { return inSet(set, p.Brand) })
	}
	if set := lowerSet(q.Levels); set != nil {
		items = keep(items, func(p Product) bool { return inSet(set, p.Level) })
	}
	if set := lowerSet(q.Styles); set != nil {
		items = keep(items, func(p Product) bool { return inSet(set, p.Style) })
	}

	if min, ok := priceBoundCents(q.MinPrice); ok {
		items = keep(items, func(p Product) bool { return p.PriceCents >= min })
	}
	if max, ok := priceBoundCents(q.MaxPrice); ok {
		items = keep(items, func(p Product) bool { return p.PriceCents <= max })
	}

	sortItems(items, q.Sort)

	return Result{Items: items, Facets: facetsOf(base)}
}

func (s *Store) baseSet(category string) []Product {
	var pred func(Product) bool
	switch category {
	case CategorySales:
		pred = func(p Product) bool { return p.Sale }
	case CategoryArrivals:
		pred = func(p Product) bool { return p.New }
	default:
		pred = func(p Product) bool { return p.Category == category }
	}

	out := make([]Product, 0, len(s.products))
	for _, p := range s.products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func keep(items []Product, pred func(Product) bool) []Product {
	n := 0
	for _, p := range items {
		if pred(p) {
			items[n] = p
			n++
		}
	}
	return items[:n]
}

// sortItems is stable so equal keys keep catalog order. Unknown sort keys
// leave the input order untouched.
func sortItems(items []Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].PriceCents < items[j].PriceCents })
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool { return items[i].PriceCents > items[j].PriceCents })
	case SortName:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	}
}

func lowerSet(vals []string) map[string]struct{} {
	if len(vals) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}

func inSet(set map[string]struct{}, v string) bool {
	_, ok := set[strings.ToLower(v)]
	return ok
}

// priceBoundCents parses a decimal currency amount like "129.99". Amounts
// beyond the int64 cents range clamp to the nearest representable bound, so
// an absurd minimum still excludes everything rather than overflowing the
// conversion and matching everything.
func priceBoundCents(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}

	cents := math.Round(f * 100)
	if cents >= math.MaxInt64 {
		return math.MaxInt64, true
	}
	if cents <= math.MinInt64 {
		return math.MinInt64, true
	}
	return int64(cents), true
}

func facetsOf(base []Product) Facets {
	return Facets{
		Brands: distinctSorted(base, func(p Product) string { return p.Brand }),
		Levels: distinctSorted(base, func(p Product) string { return p.Level }),
		Styles: distinctSorted(base, func(p Product) string { return p.Style }),
	}
}

func distinctSorted(ps []Product, field func(Product) string) []string {
	seen := make(map[string]struct{}, len(ps))
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		v := field(p)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
