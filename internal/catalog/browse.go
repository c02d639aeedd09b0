package catalog

import (
	"fmt"

	"silzey-pos/internal/domain"
)

// DefaultPageSize is the initial visible count and the load-more step.
const DefaultPageSize = 12

// Browse is the clerk's catalog position: category, criteria, page window
// and the product detail card. Generated catalogs are kept for the lifetime
// of the Browse so prices and ratings stay stable.
type Browse struct {
	gen      Generator
	pageSize int
	category string
	query    Query
	selected *domain.Product
	catalogs map[string][]domain.Product
}

// NewBrowse starts on the default category with no filters and A-Z sort.
func NewBrowse(gen Generator, pageSize int) *Browse {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Browse{
		gen:      gen,
		pageSize: pageSize,
		category: domain.DefaultCategory,
		query:    Query{Sort: SortName, Visible: pageSize},
		catalogs: make(map[string][]domain.Product),
	}
}

func (b *Browse) Category() string { return b.category }

func (b *Browse) Query() Query { return b.query }

func (b *Browse) PageSize() int { return b.pageSize }

// Selected returns the product shown in the detail card, if any.
func (b *Browse) Selected() (domain.Product, bool) {
	if b.selected == nil {
		return domain.Product{}, false
	}
	return *b.selected, true
}

// SetCategory switches category, resetting the page window, tag and search.
func (b *Browse) SetCategory(category string) error {
	if _, err := b.catalog(category); err != nil {
		return err
	}
	b.category = category
	b.query.Tag = ""
	b.query.Search = ""
	b.query.Visible = b.pageSize
	b.selected = nil
	return nil
}

// SetTag changes the tag filter, resetting the page window and search.
// An empty tag removes the filter.
func (b *Browse) SetTag(tag string) {
	b.query.Tag = tag
	b.query.Search = ""
	b.query.Visible = b.pageSize
}

func (b *Browse) SetSearch(term string) {
	b.query.Search = term
}

func (b *Browse) SetSort(opt SortOption) {
	b.query.Sort = opt
}

// LoadMore widens the page window by one page.
func (b *Browse) LoadMore() {
	b.query.Visible += b.pageSize
}

// Products returns the full catalog of the active category.
func (b *Browse) Products() ([]domain.Product, error) {
	return b.catalog(b.category)
}

// Visible returns the current page of the active category.
func (b *Browse) Visible() (Page, error) {
	products, err := b.catalog(b.category)
	if err != nil {
		return Page{}, err
	}
	return View(products, b.query), nil
}

// Lookup finds a product among the catalogs generated so far, active category first.
func (b *Browse) Lookup(id string) (domain.Product, error) {
	if products, ok := b.catalogs[b.category]; ok {
		if p, found := findProduct(products, id); found {
			return p, nil
		}
	}
	for category, products := range b.catalogs {
		if category == b.category {
			continue
		}
		if p, found := findProduct(products, id); found {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("product %q: %w", id, domain.ErrNotFound)
}

// Select opens the detail card for a product.
func (b *Browse) Select(id string) (domain.Product, error) {
	p, err := b.Lookup(id)
	if err != nil {
		return domain.Product{}, err
	}
	b.selected = &p
	return p, nil
}

func (b *Browse) ClearSelection() {
	b.selected = nil
}

func (b *Browse) catalog(category string) ([]domain.Product, error) {
	if products, ok := b.catalogs[category]; ok {
		return products, nil
	}
	products, err := b.gen.Generate(category)
	if err != nil {
		return nil, err
	}
	b.catalogs[category] = products
	return products, nil
}

func findProduct(products []domain.Product, id string) (domain.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}
