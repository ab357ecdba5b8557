package main

import (
	"embed"

	"github.com/go-drift/selectfield/pkg/catalog"
	"github.com/go-drift/selectfield/pkg/selectfield"
)

//go:embed catalogs/options.yaml
var catalogFS embed.FS

// optionCatalog is the option catalog shared by every demo page.
var optionCatalog = catalog.Must(catalog.LoadFS(catalogFS, "catalogs/options.yaml"))

var (
	colorOptions   = catalog.MustOptions[string](optionCatalog, "colors")
	toppingOptions = catalog.MustOptions[string](optionCatalog, "toppings")
	countryOptions = catalog.MustOptions[string](optionCatalog, "countries")
	sizeOptions    = catalog.MustOptions[int](optionCatalog, "sizes")
)

// labelOf returns the label of value in opts, or "none".
func labelOf[V comparable](opts []selectfield.Option[V], value *V) string {
	if value == nil {
		return "none"
	}
	return selectfield.ResolveLabel(opts, selectfield.Single[V]{Value: value}, "none").Text
}
