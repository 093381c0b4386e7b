package catalog

// Product categories
const (
	CategoryCakes      = "cakes"
	CategoryDecoration = "decoration"
)

// Occasion tags
const (
	OccasionBirthday    = "birthday"
	OccasionAnniversary = "anniversary"
	OccasionWedding     = "wedding"
)

// Product is an immutable catalog entry. The storefront never mutates
// products; only the admin repository copies may be created/edited/deleted.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Category      string    `json:"category"` // cakes | decoration
	Subcategory   string    `json:"subcategory,omitempty"`
	Occasions     []string  `json:"occasion,omitempty"`
	Price         int       `json:"price"` // display currency, no minor units
	PricePerLb    bool      `json:"pricePerLb,omitempty"`
	Image         string    `json:"image"`
	GalleryImages []string  `json:"galleryImages,omitempty"`
	Description   string    `json:"description"`
	Tags          []string  `json:"tags,omitempty"`
	Available     bool      `json:"available"`
	Popular       bool      `json:"popular,omitempty"`
	Sizes         []float64 `json:"sizes,omitempty"` // pound options for per-lb cakes
}

// HasOccasion reports whether the product is tagged with the given occasion.
func (p Product) HasOccasion(occasion string) bool {
	for _, o := range p.Occasions {
		if o == occasion {
			return true
		}
	}
	return false
}
