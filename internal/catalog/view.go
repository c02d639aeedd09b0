package catalog

import (
	"slices"
	"strings"

	"silzey-pos/internal/domain"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOption selects the product ordering.
type SortOption string

const (
	SortName  SortOption = "A-Z"
	SortPrice SortOption = "Price"
)

// SortOptions lists the options offered to the clerk.
var SortOptions = []SortOption{SortName, SortPrice}

// ParseSort maps user input to a SortOption. Unrecognized values are kept
// as-is and leave the catalog in insertion order.
func ParseSort(raw string) SortOption {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "a-z", "name":
		return SortName
	case "price":
		return SortPrice
	default:
		return SortOption(raw)
	}
}

// Query is the clerk's current listing criteria.
type Query struct {
	Tag     string     `json:"tag"`
	Search  string     `json:"search"`
	Sort    SortOption `json:"sort"`
	Visible int        `json:"visible"`
}

// Page is the visible window of a filtered and sorted catalog.
type Page struct {
	Products []domain.Product
	Total    int
	HasMore  bool
}

// Empty reports that nothing matched the query.
func (p Page) Empty() bool {
	return p.Total == 0
}

// View applies tag filter, search, sort and pagination, in that order.
// The input slice is never reordered.
func View(products []domain.Product, q Query) Page {
	matched := filterByTag(products, q.Tag)
	matched = filterBySearch(matched, q.Search)
	sortProducts(matched, q.Sort)

	visible := q.Visible
	if visible < 0 {
		visible = 0
	}
	if visible > len(matched) {
		visible = len(matched)
	}
	return Page{
		Products: matched[:visible],
		Total:    len(matched),
		HasMore:  len(matched) > visible,
	}
}

func filterByTag(products []domain.Product, tag string) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if tag == "" || p.Tag == tag {
			out = append(out, p)
		}
	}
	return out
}

func filterBySearch(products []domain.Product, term string) []domain.Product {
	if strings.TrimSpace(term) == "" {
		return products
	}
	term = strings.ToLower(term)
	out := products[:0]
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}

func sortProducts(products []domain.Product, opt SortOption) {
	switch opt {
	case SortName:
		col := collate.New(language.English)
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return col.CompareString(a.Name, b.Name)
		})
	case SortPrice:
		slices.SortStableFunc(products, func(a, b domain.Product) int {
			return a.Price.Cmp(b.Price)
		})
	}
}
