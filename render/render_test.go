package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Yon-ln/33s/entity"
)

func sampleItems() []entity.MenuItem {
	return []entity.MenuItem{
		{ID: 1, Name: "Eggs Benedict", Price: "12.50", Category: "Brunch", Subcategory: "Eggs"},
		{ID: 2, Name: "Negroni", Price: "9.00", Category: "Cocktails", ImageURL: "http://cdn/n.png"},
		{ID: 3, Name: "Pancakes", Price: "10.00", Category: "Brunch"},
	}
}

func TestMenuGrid_Idempotent(t *testing.T) {
	r := New()
	items := sampleItems()

	a, err := r.MenuGrid(items, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r.MenuGrid(items, nil, "")
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("same list must render identically")
	}
}

func TestMenuGrid_OneCardPerItem(t *testing.T) {
	r := New()
	out, err := r.MenuGrid(sampleItems(), nil, "")
	if err != nil {
		t.Fatal(err)
	}
	html := string(out)

	for _, id := range []string{`data-id="1"`, `data-id="2"`, `data-id="3"`} {
		if strings.Count(html, id) != 1 {
			t.Errorf("%s appears %d times, want exactly 1", id, strings.Count(html, id))
		}
	}
}

func TestMenuGrid_EditingState(t *testing.T) {
	r := New()
	out, err := r.MenuGrid(sampleItems(), map[uint]bool{2: true}, "")
	if err != nil {
		t.Fatal(err)
	}
	html := string(out)

	if !strings.Contains(html, "/admin/menu/2/save") {
		t.Error("editing card should expose save action")
	}
	if strings.Contains(html, "/admin/menu/1/save") {
		t.Error("viewing card must not expose save action")
	}
	if !strings.Contains(html, "/admin/menu/1/delete") {
		t.Error("viewing card should expose delete action")
	}
	if strings.Contains(html, "/admin/menu/2/delete") {
		t.Error("editing card must not expose delete action")
	}
}

func TestMenuGrid_PlaceholderForMissingImage(t *testing.T) {
	r := New()
	out, _ := r.MenuGrid(sampleItems(), nil, "")
	if !strings.Contains(string(out), "placeholder.jpg") {
		t.Error("items without an image should render the placeholder")
	}
	if !strings.Contains(string(out), "http://cdn/n.png") {
		t.Error("items with an image should render it")
	}
}

func TestBuildSections_GroupingAndVisibility(t *testing.T) {
	items := []entity.MenuItem{
		{ID: 1, Name: "Eggs", Category: "Brunch", Subcategory: "Eggs"},
		{ID: 2, Name: "Pancakes", Category: "Brunch"},
		{ID: 3, Name: "Waffles", Category: "Brunch", Subcategory: "Eggs"},
		{ID: 4, Name: "Old Fashioned", Category: "Cocktails"},
		{ID: 5, Name: "Laphroaig", Category: "Whiskey"}, // no storefront section
	}
	visible := entity.VisibleSections(entity.ModeBrunch)
	sections := BuildSections(items, visible)

	if len(sections) != len(entity.AllSections) {
		t.Fatalf("got %d sections, want %d", len(sections), len(entity.AllSections))
	}

	var brunch, cocktails Section
	for _, s := range sections {
		switch s.ID {
		case entity.SectionBrunch:
			brunch = s
		case entity.SectionCocktails:
			cocktails = s
		}
	}

	if !brunch.Visible {
		t.Error("brunch section should be visible in brunch mode")
	}
	if cocktails.Visible {
		t.Error("cocktails section should be hidden in brunch mode")
	}

	// Subcategory buckets in first-seen order, blank bucket untitled.
	if len(brunch.Groups) != 2 {
		t.Fatalf("brunch groups = %d, want 2", len(brunch.Groups))
	}
	if brunch.Groups[0].Title != "Eggs" || len(brunch.Groups[0].Items) != 2 {
		t.Errorf("first group = %q with %d items", brunch.Groups[0].Title, len(brunch.Groups[0].Items))
	}
	if brunch.Groups[1].Title != "" || len(brunch.Groups[1].Items) != 1 {
		t.Errorf("second group = %q with %d items", brunch.Groups[1].Title, len(brunch.Groups[1].Items))
	}

	// Spirits never land in a storefront section.
	for _, s := range sections {
		for _, g := range s.Groups {
			for _, it := range g.Items {
				if it.ID == 5 {
					t.Error("whiskey item leaked into a storefront section")
				}
			}
		}
	}
}

func TestBuildSections_GeneralBucket(t *testing.T) {
	items := []entity.MenuItem{
		{ID: 1, Name: "Espresso", Category: "Coffees"},
		{ID: 2, Name: "Flat White", Category: "Coffees", Subcategory: "General"},
		{ID: 3, Name: "Cortado", Category: "Coffees", Subcategory: "  General  "},
		{ID: 4, Name: "Matcha", Category: "Coffees", Subcategory: " Specials "},
	}
	sections := BuildSections(items, entity.VisibleSections(entity.ModeBrunch))

	var coffee Section
	for _, s := range sections {
		if s.ID == entity.SectionCoffee {
			coffee = s
		}
	}

	// Blank and "General" fold into a single untitled bucket; surrounding
	// space never splits a bucket.
	if len(coffee.Groups) != 2 {
		t.Fatalf("coffee groups = %d, want 2", len(coffee.Groups))
	}
	if coffee.Groups[0].Title != "" || len(coffee.Groups[0].Items) != 3 {
		t.Errorf("untitled group = %q with %d items, want 3", coffee.Groups[0].Title, len(coffee.Groups[0].Items))
	}
	if coffee.Groups[1].Title != "Specials" || len(coffee.Groups[1].Items) != 1 {
		t.Errorf("second group = %q with %d items", coffee.Groups[1].Title, len(coffee.Groups[1].Items))
	}
	for _, g := range coffee.Groups {
		if g.Title == "General" {
			t.Error(`"General" must never surface as a heading`)
		}
	}
}

func TestAdminPage_ShowsOperator(t *testing.T) {
	r := New()
	grid, _ := r.MenuGrid(nil, nil, "")

	out, err := r.AdminPage(grid, "", "admin")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), `<span class="operator">admin</span>`) {
		t.Error("the console chrome should show the logged-in operator")
	}

	out, _ = r.AdminPage(grid, "", "")
	if strings.Contains(string(out), `class="operator"`) {
		t.Error("no operator badge without a username")
	}
}

func TestStorefront_HiddenSectionsMarked(t *testing.T) {
	r := New()
	sections := BuildSections(sampleItems(), entity.VisibleSections(entity.ModeCoffeeOnly))
	out, err := r.Storefront(StorefrontData{
		Status:   entity.ModeCoffeeOnly.Status(),
		Slides:   []string{"a.jpg"},
		Sections: sections,
	})
	if err != nil {
		t.Fatal(err)
	}
	html := string(out)

	if !strings.Contains(html, `id="brunch" class="menu-section section-hidden"`) {
		t.Error("brunch should carry section-hidden in coffee-only mode")
	}
	if strings.Contains(html, `id="coffee" class="menu-section section-hidden"`) {
		t.Error("coffee section is never hidden")
	}
	if !strings.Contains(html, "Kitchen Closed (Coffee Only)") {
		t.Error("status line missing")
	}
}

func TestStorefront_FullMenuToggleLabel(t *testing.T) {
	r := New()
	out, err := r.Storefront(StorefrontData{FullMenu: true, Status: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "Show Current Menu") {
		t.Error("override should relabel the toggle button")
	}

	out, _ = r.Storefront(StorefrontData{FullMenu: false, Status: "x"})
	if !strings.Contains(string(out), "View Full Menu") {
		t.Error("default label missing")
	}
}

func TestFilterThenRenderRoundTrip(t *testing.T) {
	// Rendering a filtered subset then the full list again reproduces the
	// original output: filtering never leaks into later renders.
	r := New()
	items := sampleItems()

	full1, _ := r.MenuGrid(items, nil, "")
	sub, _ := r.MenuGrid(items[:1], nil, "eggs")
	full2, _ := r.MenuGrid(items, nil, "")

	if bytes.Equal(full1, sub) {
		t.Error("filtered render should differ from the full render")
	}
	if !bytes.Equal(full1, full2) {
		t.Error("re-render with empty term must reproduce the original output")
	}
}
