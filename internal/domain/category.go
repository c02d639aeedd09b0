package domain

const (
	TagOrganic = "Organic"
	TagHybrid  = "Hybrid"
	TagIndica  = "Indica"
	TagSativa  = "Sativa"
)

// DefaultCategory is active on startup and after every reset.
const DefaultCategory = "Flower"

// Tags is the fixed tag enumeration, in assignment order.
var Tags = []string{TagOrganic, TagHybrid, TagIndica, TagSativa}

// Categories lists the catalog categories in navigation order.
var Categories = []string{"Flower", "Concentrates", "Vapes", "Edibles"}

// IsCategory reports whether c is one of Categories.
func IsCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// IsTag reports whether t is one of Tags.
func IsTag(t string) bool {
	for _, known := range Tags {
		if known == t {
			return true
		}
	}
	return false
}
