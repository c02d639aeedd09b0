package httpserver

import (
	"time"

	"silzey-pos/internal/catalog"
	"silzey-pos/internal/domain"
	"silzey-pos/internal/session"
)

type productJSON struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Image      string    `json:"image"`
	LargeImage string    `json:"largeImage"`
	Price      string    `json:"price"`
	Tag        string    `json:"tag"`
	Rating     string    `json:"rating"`
	Stars      starsJSON `json:"stars"`
}

type starsJSON struct {
	Full  int  `json:"full"`
	Half  bool `json:"half"`
	Empty int  `json:"empty"`
}

type cartLineJSON struct {
	Product  productJSON `json:"product"`
	Quantity int         `json:"quantity"`
	Subtotal string      `json:"subtotal"`
}

type cartJSON struct {
	Lines     []cartLineJSON `json:"lines"`
	Total     string         `json:"total"`
	ItemCount int            `json:"itemCount"`
}

type draftJSON struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	DateOfBirth string `json:"dateOfBirth"`
	PhoneNumber string `json:"phoneNumber"`
}

type saleJSON struct {
	ID            string         `json:"id"`
	Customer      draftJSON      `json:"customer"`
	Lines         []cartLineJSON `json:"lines"`
	Total         string         `json:"total"`
	PointsEarned  int64          `json:"pointsEarned"`
	RewardsPoints int64          `json:"rewardsPoints"`
	FinalizedAt   time.Time      `json:"finalizedAt"`
}

type sessionJSON struct {
	Screen        string       `json:"screen"`
	Overlay       string       `json:"overlay"`
	Message       string       `json:"message,omitempty"`
	RewardsPoints int64        `json:"rewardsPoints"`
	Category      string       `json:"category"`
	Tag           string       `json:"tag"`
	Search        string       `json:"search"`
	Sort          string       `json:"sort"`
	Visible       int          `json:"visible"`
	Selected      *productJSON `json:"selected,omitempty"`
	Cart          cartJSON     `json:"cart"`
	Draft         draftJSON    `json:"draft"`
	LastSale      *saleJSON    `json:"lastSale,omitempty"`
}

type catalogJSON struct {
	Products []productJSON `json:"products"`
	Total    int           `json:"total"`
	HasMore  bool          `json:"hasMore"`
	Empty    bool          `json:"empty"`
}

type catalogMetaJSON struct {
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
	SortOptions []string `json:"sortOptions"`
}

type errorJSON struct {
	Error   string       `json:"error"`
	Message string       `json:"message,omitempty"`
	Fields  []string     `json:"fields,omitempty"`
	Session *sessionJSON `json:"session,omitempty"`
}

func toProductJSON(p domain.Product) productJSON {
	full, half, empty := domain.Stars(p.Rating)
	return productJSON{
		ID:         p.ID,
		Name:       p.Name,
		Image:      p.Image,
		LargeImage: catalog.LargeImage(p.Image),
		Price:      p.Price.StringFixed(2),
		Tag:        p.Tag,
		Rating:     p.Rating.StringFixed(1),
		Stars:      starsJSON{Full: full, Half: half, Empty: empty},
	}
}

func toCartLinesJSON(lines []domain.CartLine) []cartLineJSON {
	out := make([]cartLineJSON, 0, len(lines))
	for _, l := range lines {
		out = append(out, cartLineJSON{
			Product:  toProductJSON(l.Product),
			Quantity: l.Quantity,
			Subtotal: l.Subtotal().StringFixed(2),
		})
	}
	return out
}

func toDraftJSON(d domain.CheckoutDraft) draftJSON {
	return draftJSON{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		DateOfBirth: d.DateOfBirth,
		PhoneNumber: d.PhoneNumber,
	}
}

func (d draftJSON) toDomain() domain.CheckoutDraft {
	return domain.CheckoutDraft{
		FirstName:   d.FirstName,
		LastName:    d.LastName,
		DateOfBirth: d.DateOfBirth,
		PhoneNumber: d.PhoneNumber,
	}
}

func toCartJSON(c session.CartView) cartJSON {
	return cartJSON{
		Lines:     toCartLinesJSON(c.Lines),
		Total:     c.Total,
		ItemCount: c.ItemCount,
	}
}

func toSaleJSON(s domain.Sale) saleJSON {
	return saleJSON{
		ID:            s.ID,
		Customer:      toDraftJSON(s.Customer),
		Lines:         toCartLinesJSON(s.Lines),
		Total:         s.Total.StringFixed(2),
		PointsEarned:  s.PointsEarned,
		RewardsPoints: s.RewardsPoints,
		FinalizedAt:   s.FinalizedAt,
	}
}

func toSessionJSON(v session.View) sessionJSON {
	out := sessionJSON{
		Screen:        v.Screen.String(),
		Overlay:       v.Overlay.String(),
		Message:       v.Message,
		RewardsPoints: v.RewardsPoints,
		Category:      v.Category,
		Tag:           v.Query.Tag,
		Search:        v.Query.Search,
		Sort:          string(v.Query.Sort),
		Visible:       v.Query.Visible,
		Cart:          toCartJSON(v.Cart),
		Draft:         toDraftJSON(v.Draft),
	}
	if v.Selected != nil {
		p := toProductJSON(*v.Selected)
		out.Selected = &p
	}
	if v.LastSale != nil {
		s := toSaleJSON(*v.LastSale)
		out.LastSale = &s
	}
	return out
}

func toCatalogJSON(p catalog.Page) catalogJSON {
	products := make([]productJSON, 0, len(p.Products))
	for _, prod := range p.Products {
		products = append(products, toProductJSON(prod))
	}
	return catalogJSON{
		Products: products,
		Total:    p.Total,
		HasMore:  p.HasMore,
		Empty:    p.Empty(),
	}
}

func catalogMeta() catalogMetaJSON {
	sorts := make([]string, 0, len(catalog.SortOptions))
	for _, s := range catalog.SortOptions {
		sorts = append(sorts, string(s))
	}
	return catalogMetaJSON{
		Categories:  domain.Categories,
		Tags:        domain.Tags,
		SortOptions: sorts,
	}
}
