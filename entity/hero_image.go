package entity

// HeroCategories are the promotional contexts a hero image can belong to.
var HeroCategories = []string{"Brunch", "Dinner", "Events"}

// HeroImage is one entry of the rotating promotional banner.
type HeroImage struct {
	ID       uint   `json:"id,omitempty"`
	Category string `json:"category"`
	ImageURL string `json:"imageUrl"`
}

func KnownHeroCategory(cat string) bool {
	for _, c := range HeroCategories {
		if c == cat {
			return true
		}
	}
	return false
}
