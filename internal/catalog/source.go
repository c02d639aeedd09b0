package catalog

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"silzey-pos/internal/domain"

	"github.com/shopspring/decimal"
)

// Size is the number of products generated per category.
const Size = 100

const (
	thumbSize = "h=150&w=200"
	largeSize = "h=350&w=500"
)

var imagePools = map[string][]string{
	"Flower": {
		"https://images.pexels.com/photos/7667726/pexels-photo-7667726.jpeg?auto=compress&cs=tinysrgb&h=150&w=200",
		"https://images.pexels.com/photos/7667760/pexels-photo-7667760.jpeg?auto=compress&cs=tinysrgb&h=150&w=200",
	},
	"Concentrates": {
		"https://images.pexels.com/photos/7667727/pexels-photo-7667727.jpeg?auto=compress&cs=tinysrgb&h=150&w=200",
		"https://images.pexels.com/photos/7667723/pexels-photo-7667723.jpeg?auto=compress&cs=tinysrgb&h=150&w=200",
	},
	"Vapes": {
		"https://images.pexels.com/photos/4041323/pexels-photo-4041323.jpeg?auto=compress&cs=tinysrgb&h=150&w=200",
		"https://images.pexels.com/photos/3738934/pexels-photo-3738934.jpeg?auto=compress&cs=tinysrgb&h=150&w=200",
	},
	"Edibles": {
		"https://images.pexels.com/photos/106343/pexels-photo-106343.jpeg?auto=compress&cs=tinysrgb&h=150&w=200",
		"https://images.pexels.com/photos/70497/pexels-photo-70497.jpeg?auto=compress&cs=tinysrgb&h=150&w=200",
	},
}

// Generator produces the product list for a category.
type Generator interface {
	Generate(category string) ([]domain.Product, error)
}

// Source generates catalogs with deterministic ids and random prices and ratings.
// It is not safe for concurrent use.
type Source struct {
	rng *rand.Rand
}

// NewSource returns a Source. A zero seed draws one from the clock.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns Size products for category.
func (s *Source) Generate(category string) ([]domain.Product, error) {
	pool, ok := imagePools[category]
	if !ok || !domain.IsCategory(category) {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, category)
	}
	products := make([]domain.Product, 0, Size)
	for i := 0; i < Size; i++ {
		n := i + 1
		products = append(products, domain.Product{
			ID:     fmt.Sprintf("%s-%d", category, n),
			Name:   fmt.Sprintf("%s Product %d", category, n),
			Image:  pool[i%len(pool)],
			Price:  decimal.NewFromFloat(s.rng.Float64()*50 + 10).Round(2),
			Tag:    domain.Tags[i%len(domain.Tags)],
			Rating: decimal.NewFromFloat(s.rng.Float64() * 5).Round(1),
		})
	}
	return products, nil
}

// LargeImage returns the detail-card variant of a catalog thumbnail URL.
func LargeImage(url string) string {
	return strings.Replace(url, thumbSize, largeSize, 1)
}
