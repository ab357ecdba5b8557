package main

import (
	"strconv"
	"strings"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"

	"github.com/go-drift/selectfield/pkg/selectfield"
)

func buildSinglePage(ctx core.BuildContext) core.Widget     { return singleDemo{} }
func buildMultiPage(ctx core.BuildContext) core.Widget      { return multiDemo{} }
func buildSearchPage(ctx core.BuildContext) core.Widget     { return searchDemo{} }
func buildSheetPage(ctx core.BuildContext) core.Widget      { return sheetDemo{} }
func buildControllerPage(ctx core.BuildContext) core.Widget { return controllerDemo{} }

// resultText shows the current value under a field.
func resultText(ctx core.BuildContext, text string) core.Widget {
	return widgets.Text{Content: text, Style: labelStyle(theme.ThemeOf(ctx).ColorScheme)}
}

type singleDemo struct{ core.StatefulBase }

func (singleDemo) CreateState() core.State { return &singleDemoState{} }

type singleDemoState struct {
	core.StateBase
	color *string
}

func (s *singleDemoState) Build(ctx core.BuildContext) core.Widget {
	field := selectfield.SelectField[string]{
		Options: colorOptions,
		Selection: selectfield.Single[string]{
			Value: s.color,
			OnChanged: func(v string) {
				s.SetState(func() { s.color = &v })
			},
		},
		Label:       "Color",
		Placeholder: "Choose a color",
	}
	return demoPage(ctx, "Single select", "Tap the field and pick a color. Infrared is disabled.",
		field,
		widgets.VSpace(16),
		resultText(ctx, "Selected: "+labelOf(colorOptions, s.color)),
	)
}

type multiDemo struct{ core.StatefulBase }

func (multiDemo) CreateState() core.State { return &multiDemoState{} }

type multiDemoState struct {
	core.StateBase
	toppings []string
}

func (s *multiDemoState) Build(ctx core.BuildContext) core.Widget {
	field := selectfield.MultiSelectField[string]{
		Options: toppingOptions,
		Values:  s.toppings,
		OnChanged: func(v []string) {
			s.SetState(func() { s.toppings = v })
		},
		Label:       "Toppings",
		Placeholder: "No toppings",
	}
	return demoPage(ctx, "Multi select", "The panel stays open while toppings are toggled.",
		field,
		widgets.VSpace(16),
		resultText(ctx, strconv.Itoa(len(s.toppings))+" selected"),
	)
}

type searchDemo struct{ core.StatefulBase }

func (searchDemo) CreateState() core.State { return &searchDemoState{} }

type searchDemoState struct {
	core.StateBase
	country *string
}

func (s *searchDemoState) Build(ctx core.BuildContext) core.Widget {
	field := selectfield.SelectField[string]{
		Options: countryOptions,
		Selection: selectfield.Single[string]{
			Value: s.country,
			OnChanged: func(v string) {
				s.SetState(func() { s.country = &v })
			},
		},
		Label:             "Country",
		Placeholder:       "Choose a country",
		Searchable:        true,
		SearchPlaceholder: "Type to filter",
		EmptyText:         "No country matches",
	}
	return demoPage(ctx, "Search", "Matching ignores case, using Unicode case folding.",
		field,
		widgets.VSpace(16),
		resultText(ctx, "Selected: "+labelOf(countryOptions, s.country)),
	)
}

type sheetDemo struct{ core.StatefulBase }

func (sheetDemo) CreateState() core.State { return &sheetDemoState{} }

type sheetDemoState struct {
	core.StateBase
	size *int
}

func (s *sheetDemoState) Build(ctx core.BuildContext) core.Widget {
	field := selectfield.SelectField[int]{
		Options: sizeOptions,
		Selection: selectfield.Single[int]{
			Value: s.size,
			OnChanged: func(v int) {
				s.SetState(func() { s.size = &v })
			},
		},
		Label:        "Size",
		Placeholder:  "Choose a size",
		Presentation: selectfield.PresentationSheet,
		SheetTitle:   "Sizes",
	}
	return demoPage(ctx, "Bottom sheet", "Options slide up from the bottom edge.",
		field,
		widgets.VSpace(16),
		resultText(ctx, "Selected: "+labelOf(sizeOptions, s.size)),
	)
}

type controllerDemo struct{ core.StatefulBase }

func (controllerDemo) CreateState() core.State { return &controllerDemoState{} }

type controllerDemoState struct {
	core.StateBase
	ctrl   *selectfield.Controller
	colors []string
	state  selectfield.State
}

func (s *controllerDemoState) InitState() {
	s.ctrl = selectfield.NewController()
}

func (s *controllerDemoState) Build(ctx core.BuildContext) core.Widget {
	colors := theme.ThemeOf(ctx).ColorScheme
	field := selectfield.MultiSelectField[string]{
		Options: colorOptions,
		Values:  s.colors,
		OnChanged: func(v []string) {
			s.SetState(func() { s.colors = v })
		},
		Label:      "Colors",
		Searchable: true,
		Controller: s.ctrl,
		OnOpenChanged: func(bool) {
			s.SetState(func() { s.state = s.ctrl.State() })
		},
	}
	return demoPage(ctx, "Controller", "The button opens the field through its controller.",
		smallButton("Open from code", s.ctrl.Open, colors),
		widgets.VSpace(16),
		field,
		widgets.VSpace(16),
		resultText(ctx, "State: "+s.state.String()),
		resultText(ctx, "Colors: "+strings.Join(s.colors, ", ")),
	)
}
