package main

import (
	"github.com/go-drift/drift/pkg/core"
)

// Demo represents a showcase demo page.
type Demo struct {
	Route    string
	Title    string
	Subtitle string
	Builder  func(ctx core.BuildContext) core.Widget
}

// demos is the registry of all showcase demo pages.
// Add new demos here to automatically update navigation and routing.
var demos = []Demo{
	{"/single", "Single select", "Pick one color in a modal", buildSinglePage},
	{"/multi", "Multi select", "Toggle pizza toppings", buildMultiPage},
	{"/search", "Search", "Filter a long country list", buildSearchPage},
	{"/sheet", "Bottom sheet", "Sizes in a sliding sheet", buildSheetPage},
	{"/controller", "Controller", "Open and close from code", buildControllerPage},
}

// demoFor returns the demo registered under route.
func demoFor(route string) (Demo, bool) {
	for _, demo := range demos {
		if demo.Route == route {
			return demo, true
		}
	}
	return Demo{}, false
}
