package entity

import (
	"fmt"
	"time"
)

// ServiceMode is the serving state derived from the time of day.
type ServiceMode int

const (
	ModeBrunch ServiceMode = iota
	ModeCoffeeOnly
	ModeDinner
	ModeClosed
)

func (m ServiceMode) String() string {
	switch m {
	case ModeBrunch:
		return "brunch"
	case ModeCoffeeOnly:
		return "coffee-only"
	case ModeDinner:
		return "dinner"
	default:
		return "closed"
	}
}

// Status is the public status line shown in the storefront's status pill.
func (m ServiceMode) Status() string {
	switch m {
	case ModeBrunch:
		return "Serving Now: Brunch & Coffee"
	case ModeCoffeeOnly:
		return "Kitchen Closed (Coffee Only)"
	case ModeDinner:
		return "Serving Now: Dinner & Cocktails"
	default:
		return "Currently Closed"
	}
}

// Open reports whether the kitchen or bar is serving at all.
func (m ServiceMode) Open() bool { return m == ModeBrunch || m == ModeDinner }

// Storefront section identifiers.
const (
	SectionBrunch    = "brunch"
	SectionCocktails = "cocktails"
	SectionWines     = "wines"
	SectionBeers     = "beers"
	SectionDinner    = "dinner"
	SectionSofts     = "softs"
	SectionCoffee    = "coffee"
	SectionPastries  = "pastries"
)

// AllSections in storefront display order.
var AllSections = []string{
	SectionBrunch, SectionCoffee, SectionPastries, SectionCocktails,
	SectionWines, SectionBeers, SectionDinner, SectionSofts,
}

// modeSections lists, for each mode, which of the time-gated sections are
// served. Coffee and pastries are not time-gated and stay visible always.
var modeSections = map[ServiceMode][]string{
	ModeBrunch:     {SectionBrunch, SectionSofts},
	ModeCoffeeOnly: {SectionSofts},
	ModeDinner:     {SectionCocktails, SectionDinner, SectionWines, SectionBeers, SectionSofts},
	ModeClosed:     {SectionWines, SectionBeers, SectionSofts},
}

var alwaysVisible = []string{SectionCoffee, SectionPastries}

// VisibleSections returns the set of section ids shown under mode.
func VisibleSections(mode ServiceMode) map[string]bool {
	out := make(map[string]bool, len(AllSections))
	for _, s := range modeSections[mode] {
		out[s] = true
	}
	for _, s := range alwaysVisible {
		out[s] = true
	}
	return out
}

// SectionForCategory maps a menu category onto its storefront section id.
// Categories without a section (the spirits lists) render only in the admin
// console.
func SectionForCategory(cat string) (string, bool) {
	switch cat {
	case "Brunch":
		return SectionBrunch, true
	case "Cocktails":
		return SectionCocktails, true
	case "Dinner":
		return SectionDinner, true
	case "Wines":
		return SectionWines, true
	case "Beers":
		return SectionBeers, true
	case "Softs":
		return SectionSofts, true
	case "Coffees":
		return SectionCoffee, true
	case "Pastries":
		return SectionPastries, true
	}
	return "", false
}

// ServiceWindow holds the four minute-of-day boundaries that split the day
// into brunch, coffee-only, dinner, and closed.
type ServiceWindow struct {
	BrunchStart int // e.g. 570  = 09:30
	CoffeeStart int // e.g. 870  = 14:30
	DinnerStart int // e.g. 960  = 16:00
	CloseTime   int // e.g. 1350 = 22:30
}

// DefaultServiceWindow matches the house hours.
func DefaultServiceWindow() ServiceWindow {
	return ServiceWindow{BrunchStart: 570, CoffeeStart: 870, DinnerStart: 960, CloseTime: 1350}
}

const minutesPerDay = 24 * 60

// Validate checks the boundaries are strictly increasing within one day.
func (w ServiceWindow) Validate() error {
	bounds := []int{w.BrunchStart, w.CoffeeStart, w.DinnerStart, w.CloseTime}
	for i, b := range bounds {
		if b < 0 || b >= minutesPerDay {
			return fmt.Errorf("service window: boundary %d out of range: %d", i, b)
		}
		if i > 0 && bounds[i-1] >= b {
			return fmt.Errorf("service window: boundaries must be strictly increasing, got %v", bounds)
		}
	}
	return nil
}

// ModeAt maps a minute of the day to exactly one serving mode. The ranges
// are half-open on the right, so the day is covered with no overlap.
func (w ServiceWindow) ModeAt(minute int) ServiceMode {
	switch {
	case minute >= w.BrunchStart && minute < w.CoffeeStart:
		return ModeBrunch
	case minute >= w.CoffeeStart && minute < w.DinnerStart:
		return ModeCoffeeOnly
	case minute >= w.DinnerStart && minute < w.CloseTime:
		return ModeDinner
	default:
		return ModeClosed
	}
}

// ModeNow evaluates the mode for a wall-clock instant in its location.
func (w ServiceWindow) ModeNow(t time.Time) ServiceMode {
	return w.ModeAt(t.Hour()*60 + t.Minute())
}
