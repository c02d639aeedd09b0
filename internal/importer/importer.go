// Package importer loads a fixed store menu from a CSV export so the
// register can sell a real assortment instead of a generated one.
package importer

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"silzey-pos/internal/domain"
)

var requiredHeaders = []string{"category", "id", "name", "price", "tag"}

// Menu is a catalog read from CSV. It satisfies catalog.Generator.
type Menu struct {
	byCategory map[string][]domain.Product
}

// Load parses a menu with the headers category,id,name,image,price,tag,rating.
// Rows with an empty id whose image is set add a fallback image to the
// preceding product when it has none.
func Load(r io.Reader) (*Menu, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // rows may have trailing commas

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, h := range requiredHeaders {
		if _, ok := index[h]; !ok {
			return nil, fmt.Errorf("missing column %q", h)
		}
	}

	m := &Menu{byCategory: make(map[string][]domain.Product)}
	seen := make(map[string]struct{})
	var current *domain.Product
	line := 1

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		category, p, err := parseRow(record, index)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		if p == nil {
			continue
		}
		if p.ID == "" {
			// Continuation row.
			if current != nil && current.Image == "" {
				current.Image = p.Image
			}
			continue
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("row %d: duplicate product id %q", line, p.ID)
		}
		seen[p.ID] = struct{}{}

		products := append(m.byCategory[category], *p)
		m.byCategory[category] = products
		current = &products[len(products)-1]
	}

	return m, nil
}

// Generate returns a copy of the menu section for category.
func (m *Menu) Generate(category string) ([]domain.Product, error) {
	if !domain.IsCategory(category) {
		return nil, fmt.Errorf("%q: %w", category, domain.ErrUnknownCategory)
	}
	return append([]domain.Product(nil), m.byCategory[category]...), nil
}

// Counts reports the number of products per category, in navigation order.
func (m *Menu) Counts() map[string]int {
	out := make(map[string]int, len(domain.Categories))
	for _, c := range domain.Categories {
		out[c] = len(m.byCategory[c])
	}
	return out
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int) (string, *domain.Product, error) {
	category := pick(record, index, "category")
	id := pick(record, index, "id")
	image := pick(record, index, "image")

	if id == "" {
		if image == "" {
			return "", nil, nil
		}
		return "", &domain.Product{Image: image}, nil
	}

	name := pick(record, index, "name")
	priceStr := pick(record, index, "price")
	tag := pick(record, index, "tag")
	ratingStr := pick(record, index, "rating")

	if name == "" || priceStr == "" {
		return "", nil, fmt.Errorf("product %q: missing name or price", id)
	}
	if !domain.IsCategory(category) {
		return "", nil, fmt.Errorf("product %q: %w %q", id, domain.ErrUnknownCategory, category)
	}
	if !domain.IsTag(tag) {
		return "", nil, fmt.Errorf("product %q: unknown tag %q", id, tag)
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil || price.Sign() <= 0 {
		return "", nil, fmt.Errorf("product %q: invalid price %q", id, priceStr)
	}
	rating := decimal.Zero
	if ratingStr != "" {
		rating, err = decimal.NewFromString(ratingStr)
		if err != nil || rating.IsNegative() || rating.GreaterThan(decimal.NewFromInt(5)) {
			return "", nil, fmt.Errorf("product %q: invalid rating %q", id, ratingStr)
		}
	}

	return category, &domain.Product{
		ID:     id,
		Name:   name,
		Image:  image,
		Price:  price.Round(2),
		Tag:    tag,
		Rating: rating.Round(1),
	}, nil
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
