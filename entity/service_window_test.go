package entity

import (
	"testing"
	"time"
)

func TestServiceWindow_ModeAt(t *testing.T) {
	w := DefaultServiceWindow() // 570, 870, 960, 1350

	tests := []struct {
		minute int
		want   ServiceMode
	}{
		{0, ModeClosed},
		{569, ModeClosed},   // minute before opening
		{570, ModeBrunch},   // opening boundary
		{600, ModeBrunch},   // 10:00
		{869, ModeBrunch},   // last brunch minute
		{870, ModeCoffeeOnly},
		{900, ModeCoffeeOnly}, // 15:00
		{959, ModeCoffeeOnly},
		{960, ModeDinner},
		{1000, ModeDinner}, // 16:40
		{1349, ModeDinner}, // last dinner minute
		{1350, ModeClosed}, // closing boundary
		{1400, ModeClosed},
		{1439, ModeClosed},
	}
	for _, tt := range tests {
		if got := w.ModeAt(tt.minute); got != tt.want {
			t.Errorf("ModeAt(%d) = %v, want %v", tt.minute, got, tt.want)
		}
	}
}

func TestServiceWindow_ModesExhaustive(t *testing.T) {
	// Every minute of the day maps to exactly one of the four modes.
	w := DefaultServiceWindow()
	counts := make(map[ServiceMode]int)
	for m := 0; m < 24*60; m++ {
		counts[w.ModeAt(m)]++
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	if total != 24*60 {
		t.Fatalf("modes cover %d minutes, want %d", total, 24*60)
	}
	if counts[ModeBrunch] != w.CoffeeStart-w.BrunchStart {
		t.Errorf("brunch covers %d minutes, want %d", counts[ModeBrunch], w.CoffeeStart-w.BrunchStart)
	}
	if counts[ModeCoffeeOnly] != w.DinnerStart-w.CoffeeStart {
		t.Errorf("coffee-only covers %d minutes, want %d", counts[ModeCoffeeOnly], w.DinnerStart-w.CoffeeStart)
	}
	if counts[ModeDinner] != w.CloseTime-w.DinnerStart {
		t.Errorf("dinner covers %d minutes, want %d", counts[ModeDinner], w.CloseTime-w.DinnerStart)
	}
}

func TestServiceWindow_Validate(t *testing.T) {
	tests := []struct {
		name    string
		w       ServiceWindow
		wantErr bool
	}{
		{"default", DefaultServiceWindow(), false},
		{"equal boundaries", ServiceWindow{570, 570, 960, 1350}, true},
		{"decreasing", ServiceWindow{870, 570, 960, 1350}, true},
		{"negative", ServiceWindow{-1, 870, 960, 1350}, true},
		{"past midnight", ServiceWindow{570, 870, 960, 1440}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.w.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestServiceWindow_ModeNow(t *testing.T) {
	w := DefaultServiceWindow()
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC) // 10:00
	if got := w.ModeNow(at); got != ModeBrunch {
		t.Errorf("ModeNow(10:00) = %v, want brunch", got)
	}
}

func TestVisibleSections(t *testing.T) {
	tests := []struct {
		mode    ServiceMode
		visible []string
		hidden  []string
	}{
		{ModeBrunch, []string{SectionBrunch, SectionSofts, SectionCoffee, SectionPastries},
			[]string{SectionCocktails, SectionDinner, SectionWines, SectionBeers}},
		{ModeCoffeeOnly, []string{SectionSofts, SectionCoffee, SectionPastries},
			[]string{SectionBrunch, SectionDinner, SectionCocktails, SectionWines, SectionBeers}},
		{ModeDinner, []string{SectionCocktails, SectionDinner, SectionWines, SectionBeers, SectionSofts},
			[]string{SectionBrunch}},
		{ModeClosed, []string{SectionWines, SectionBeers, SectionSofts},
			[]string{SectionBrunch, SectionDinner, SectionCocktails}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			got := VisibleSections(tt.mode)
			for _, sec := range tt.visible {
				if !got[sec] {
					t.Errorf("%s should be visible in %s", sec, tt.mode)
				}
			}
			for _, sec := range tt.hidden {
				if got[sec] {
					t.Errorf("%s should be hidden in %s", sec, tt.mode)
				}
			}
		})
	}
}

func TestSectionForCategory(t *testing.T) {
	if sec, ok := SectionForCategory("Brunch"); !ok || sec != SectionBrunch {
		t.Errorf("Brunch -> %q, %v", sec, ok)
	}
	if _, ok := SectionForCategory("Whiskey"); ok {
		t.Error("spirits categories have no storefront section")
	}
}
