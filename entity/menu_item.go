package entity

import "strings"

// MenuItem mirrors one menu entry as the upstream API serves it.
// ID is server-assigned; drafts that have not been created yet carry 0.
type MenuItem struct {
	ID          uint   `json:"id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       Price  `json:"price"`
	Category    string `json:"category"`
	Subcategory string `json:"subcategory,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

func (m MenuItem) HasImage() bool {
	return strings.TrimSpace(m.ImageURL) != ""
}

// Matches reports whether the item contains term (case-insensitive) in its
// name, description, or category. An empty term matches everything.
func (m MenuItem) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Name), term) ||
		strings.Contains(strings.ToLower(m.Description), term) ||
		strings.Contains(strings.ToLower(m.Category), term)
}
