package entity

import "strings"

// Categories is the fixed set a menu item may belong to. The order here is
// the order the admin console offers them in.
var Categories = []string{
	"Brunch", "Coffees", "Pastries", "Cocktails", "Wines", "Beers",
	"Dinner", "Softs", "Whiskey", "Gin", "Rum", "Brandy",
}

// KnownCategory resolves cat against Categories, ignoring case and
// surrounding space. Returns the canonical spelling and whether it matched.
func KnownCategory(cat string) (string, bool) {
	cat = strings.TrimSpace(cat)
	for _, c := range Categories {
		if strings.EqualFold(c, cat) {
			return c, true
		}
	}
	return "", false
}
