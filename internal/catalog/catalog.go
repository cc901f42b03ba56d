// Package catalog holds the fixed set of website image slots. The set
// is defined at deploy time and never derived from the database.
package catalog

import "sort"

// Slot is one named image placeholder on the website.
type Slot struct {
	ID              string
	Name            string
	Description     string
	DefaultURL      string
	Locations       []string
	RecommendedSize string
	Category        string
}

// Catalog is an immutable slot index. Construct it once at startup and
// inject it; it is never mutated afterwards.
type Catalog struct {
	slots map[string]Slot
}

func New(slots []Slot) Catalog {
	index := make(map[string]Slot, len(slots))
	for _, slot := range slots {
		index[slot.ID] = slot
	}
	return Catalog{slots: index}
}

// Get returns the slot definition for id. Locations is copied so
// callers cannot reach back into the catalog.
func (c Catalog) Get(id string) (Slot, bool) {
	slot, ok := c.slots[id]
	if !ok {
		return Slot{}, false
	}
	locations := make([]string, len(slot.Locations))
	copy(locations, slot.Locations)
	slot.Locations = locations
	return slot, true
}

func (c Catalog) Has(id string) bool {
	_, ok := c.slots[id]
	return ok
}

// IDs returns every slot id in stable order.
func (c Catalog) IDs() []string {
	ids := make([]string, 0, len(c.slots))
	for id := range c.slots {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (c Catalog) Len() int {
	return len(c.slots)
}

// Default returns the MECHGENZ website catalog.
func Default() Catalog {
	return New([]Slot{
		{
			ID:              "logo",
			Name:            "Company Logo",
			Description:     "Main company logo displayed in header and footer",
			DefaultURL:      "/mechgenz-logo.jpg",
			Locations:       []string{"Header", "Footer", "Admin Panel"},
			RecommendedSize: "200x200px",
			Category:        "branding",
		},
		{
			ID:              "hero_slide_1",
			Name:            "Hero Slide 1",
			Description:     "First slide in the hero carousel",
			DefaultURL:      "https://images.pexels.com/photos/162553/keys-workshop-mechanic-tools-162553.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Locations:       []string{"Hero Section"},
			RecommendedSize: "1920x1080px",
			Category:        "hero",
		},
		{
			ID:              "hero_slide_2",
			Name:            "Hero Slide 2",
			Description:     "Second slide in the hero carousel",
			DefaultURL:      "https://images.pexels.com/photos/1148820/pexels-photo-1148820.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Locations:       []string{"Hero Section"},
			RecommendedSize: "1920x1080px",
			Category:        "hero",
		},
		{
			ID:              "hero_slide_3",
			Name:            "Hero Slide 3",
			Description:     "Third slide in the hero carousel",
			DefaultURL:      "https://images.pexels.com/photos/236705/pexels-photo-236705.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Locations:       []string{"Hero Section"},
			RecommendedSize: "1920x1080px",
			Category:        "hero",
		},
		{
			ID:              "about_main",
			Name:            "About Section Main Image",
			Description:     "Main image displayed in the about section",
			DefaultURL:      "https://images.pexels.com/photos/1216589/pexels-photo-1216589.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=1",
			Locations:       []string{"About Section"},
			RecommendedSize: "800x600px",
			Category:        "about",
		},
		{
			ID:              "mechanical_suppliers",
			Name:            "Mechanical Suppliers Background",
			Description:     "Background image for mechanical suppliers trading category",
			DefaultURL:      "https://images.pexels.com/photos/162553/keys-workshop-mechanic-tools-162553.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&dpr=1",
			Locations:       []string{"Trading Section - Mechanical Suppliers"},
			RecommendedSize: "800x600px",
			Category:        "trading",
		},
		{
			ID:              "electrical_suppliers",
			Name:            "Electrical Suppliers Background",
			Description:     "Background image for electrical suppliers trading category",
			DefaultURL:      "https://images.pexels.com/photos/257736/pexels-photo-257736.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&dpr=1",
			Locations:       []string{"Trading Section - Electrical Suppliers"},
			RecommendedSize: "800x600px",
			Category:        "trading",
		},
		{
			ID:              "plumbing_suppliers",
			Name:            "Plumbing Suppliers Background",
			Description:     "Background image for plumbing suppliers trading category",
			DefaultURL:      "https://images.pexels.com/photos/1216589/pexels-photo-1216589.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&dpr=1",
			Locations:       []string{"Trading Section - Plumbing Suppliers"},
			RecommendedSize: "800x600px",
			Category:        "trading",
		},
		{
			ID:              "fire_fighting_suppliers",
			Name:            "Fire Fighting Suppliers Background",
			Description:     "Background image for fire fighting suppliers trading category",
			DefaultURL:      "https://images.pexels.com/photos/280221/pexels-photo-280221.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&dpr=1",
			Locations:       []string{"Trading Section - Fire Fighting Suppliers"},
			RecommendedSize: "800x600px",
			Category:        "trading",
		},
		{
			ID:              "portfolio_civil_1",
			Name:            "Civil Structure Project 1",
			Description:     "Featured civil structure project image",
			DefaultURL:      "https://images.pexels.com/photos/1216589/pexels-photo-1216589.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&dpr=1",
			Locations:       []string{"Portfolio Section - Civil Structure"},
			RecommendedSize: "800x600px",
			Category:        "portfolio",
		},
		{
			ID:              "portfolio_civil_2",
			Name:            "Civil Structure Project 2",
			Description:     "Featured civil structure project image",
			DefaultURL:      "https://images.pexels.com/photos/162553/keys-workshop-mechanic-tools-162553.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&dpr=1",
			Locations:       []string{"Portfolio Section - Civil Structure"},
			RecommendedSize: "800x600px",
			Category:        "portfolio",
		},
		{
			ID:              "portfolio_road_1",
			Name:            "Road Infrastructure Project 1",
			Description:     "Featured road infrastructure project image",
			DefaultURL:      "https://images.pexels.com/photos/280221/pexels-photo-280221.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&dpr=1",
			Locations:       []string{"Portfolio Section - Road Infrastructure"},
			RecommendedSize: "800x600px",
			Category:        "portfolio",
		},
		{
			ID:              "portfolio_road_2",
			Name:            "Road Infrastructure Project 2",
			Description:     "Featured road infrastructure project image",
			DefaultURL:      "https://images.pexels.com/photos/1202723/pexels-photo-1202723.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&dpr=1",
			Locations:       []string{"Portfolio Section - Road Infrastructure"},
			RecommendedSize: "800x600px",
			Category:        "portfolio",
		},
		{
			ID:              "portfolio_fitout_1",
			Name:            "Fit Out Project 1",
			Description:     "Featured fit out project image",
			DefaultURL:      "https://images.pexels.com/photos/1571460/pexels-photo-1571460.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&dpr=1",
			Locations:       []string{"Portfolio Section - Fit Out"},
			RecommendedSize: "800x600px",
			Category:        "portfolio",
		},
		{
			ID:              "portfolio_fitout_2",
			Name:            "Fit Out Project 2",
			Description:     "Featured fit out project image",
			DefaultURL:      "https://images.pexels.com/photos/1571463/pexels-photo-1571463.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&dpr=1",
			Locations:       []string{"Portfolio Section - Fit Out"},
			RecommendedSize: "800x600px",
			Category:        "portfolio",
		},
		{
			ID:              "portfolio_special_1",
			Name:            "Special Installation Project 1",
			Description:     "Featured special installation project image",
			DefaultURL:      "https://images.pexels.com/photos/1216589/pexels-photo-1216589.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&dpr=1",
			Locations:       []string{"Portfolio Section - Special Installation"},
			RecommendedSize: "800x600px",
			Category:        "portfolio",
		},
		{
			ID:              "portfolio_special_2",
			Name:            "Special Installation Project 2",
			Description:     "Featured special installation project image",
			DefaultURL:      "https://images.pexels.com/photos/162553/keys-workshop-mechanic-tools-162553.jpeg?auto=compress&cs=tinysrgb&w=800&h=600&dpr=1",
			Locations:       []string{"Portfolio Section - Special Installation"},
			RecommendedSize: "800x600px",
			Category:        "portfolio",
		},
	})
}
