// Package render turns store contents into markup. Rendering is a pure
// function of its input: the grid container is always rebuilt wholesale,
// so the same list yields byte-identical output.
package render

import (
	"bytes"
	"embed"
	"html/template"
	"strings"

	"github.com/Yon-ln/33s/entity"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Renderer struct {
	t *template.Template
}

func New() *Renderer {
	t := template.Must(template.New("").Funcs(template.FuncMap{
		"categories": func() []string { return entity.Categories },
	}).ParseFS(templateFS, "templates/*.tmpl"))
	return &Renderer{t: t}
}

// Card is one admin grid entry with its edit state.
type Card struct {
	Item    entity.MenuItem
	Editing bool
}

// MenuGridData feeds the admin grid partial.
type MenuGridData struct {
	Cards []Card
	Query string
}

// MenuGrid renders the admin console grid for the given items. The editing
// set decides which cards show save/cancel instead of delete.
func (r *Renderer) MenuGrid(items []entity.MenuItem, editing map[uint]bool, query string) ([]byte, error) {
	data := MenuGridData{Query: query, Cards: make([]Card, 0, len(items))}
	for _, it := range items {
		data.Cards = append(data.Cards, Card{Item: it, Editing: editing[it.ID]})
	}
	return r.exec("menu_grid.tmpl", data)
}

// AdminPage wraps the grid in the console chrome (search bar, new-item
// button, logged-in operator).
func (r *Renderer) AdminPage(grid []byte, query, operator string) ([]byte, error) {
	return r.exec("admin.tmpl", struct {
		Grid     template.HTML
		Query    string
		Operator string
	}{Grid: template.HTML(grid), Query: query, Operator: operator})
}

// HeroGroup is one promotional category's rotation.
type HeroGroup struct {
	Category string
	Images   []entity.HeroImage
}

// HeroGrid renders the hero admin page: one banner per category, images in
// server order.
func (r *Renderer) HeroGrid(groups map[string][]entity.HeroImage) ([]byte, error) {
	ordered := make([]HeroGroup, 0, len(entity.HeroCategories))
	for _, cat := range entity.HeroCategories {
		ordered = append(ordered, HeroGroup{Category: cat, Images: groups[cat]})
	}
	return r.exec("hero_grid.tmpl", ordered)
}

// Group is a subcategory bucket inside a storefront section. Title is
// empty for the implicit "General" bucket so no heading renders.
type Group struct {
	Title string
	Items []entity.MenuItem
}

// Section is one storefront menu section with its visibility decided by
// the scheduler.
type Section struct {
	ID      string
	Title   string
	Visible bool
	Groups  []Group
}

var sectionTitles = map[string]string{
	entity.SectionBrunch:    "Brunch",
	entity.SectionCoffee:    "Coffees",
	entity.SectionPastries:  "Pastries",
	entity.SectionCocktails: "Cocktails",
	entity.SectionWines:     "Wines",
	entity.SectionBeers:     "Beers",
	entity.SectionDinner:    "Dinner",
	entity.SectionSofts:     "Softs",
}

// BuildSections distributes items into storefront sections, grouped by
// subcategory in first-seen order. Blank and literal "General"
// subcategories collapse into one untitled bucket.
func BuildSections(items []entity.MenuItem, visible map[string]bool) []Section {
	bySection := make(map[string][]entity.MenuItem)
	for _, it := range items {
		sec, ok := entity.SectionForCategory(it.Category)
		if !ok {
			continue
		}
		bySection[sec] = append(bySection[sec], it)
	}

	out := make([]Section, 0, len(entity.AllSections))
	for _, sec := range entity.AllSections {
		s := Section{ID: sec, Title: sectionTitles[sec], Visible: visible[sec]}
		var order []string
		grouped := make(map[string][]entity.MenuItem)
		for _, it := range bySection[sec] {
			sub := strings.TrimSpace(it.Subcategory)
			if sub == "General" {
				sub = ""
			}
			if _, seen := grouped[sub]; !seen {
				order = append(order, sub)
			}
			grouped[sub] = append(grouped[sub], it)
		}
		for _, sub := range order {
			s.Groups = append(s.Groups, Group{Title: sub, Items: grouped[sub]})
		}
		out = append(out, s)
	}
	return out
}

// StorefrontData feeds the public page.
type StorefrontData struct {
	Status   string
	Open     bool
	FullMenu bool
	Slides   []string
	Hero     []string
	Sections []Section
}

func (r *Renderer) Storefront(data StorefrontData) ([]byte, error) {
	return r.exec("storefront.tmpl", data)
}

// NewItemPage renders the draft card. AssetID carries an already-staged
// image through the create form, if the operator cropped one first.
func (r *Renderer) NewItemPage(assetID string) ([]byte, error) {
	return r.exec("new_item.tmpl", struct{ AssetID string }{AssetID: assetID})
}

func (r *Renderer) LoginPage(errMsg string) ([]byte, error) {
	return r.exec("login.tmpl", struct{ Error string }{Error: errMsg})
}

func (r *Renderer) exec(name string, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.t.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
