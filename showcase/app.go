// Package main provides the select field demo application.
// Every page hosts one field wired to options from an embedded catalog.
package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/navigation"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
)

// App returns the root widget for the select field showcase.
func App() core.Widget {
	return ShowcaseApp{}
}

// ShowcaseApp is the main demo application widget.
// It manages theme state and sets up navigation.
type ShowcaseApp struct {
	core.StatefulBase
}

func (ShowcaseApp) CreateState() core.State {
	return &showcaseState{}
}

type showcaseState struct {
	core.StateBase
	isDark bool
	// Memoized theme data to avoid churn in ShouldRebuildDependents
	cachedThemeData *theme.AppThemeData
}

func (s *showcaseState) InitState() {
	s.isDark = true
}

func (s *showcaseState) Build(ctx core.BuildContext) core.Widget {
	navigator := navigation.Navigator{
		// Root so the back button reaches open select fields first.
		IsRoot:       true,
		InitialRoute: "/",
		OnGenerateRoute: func(settings navigation.RouteSettings) navigation.Route {
			if settings.Name == "/" {
				return navigation.NewAnimatedPageRoute(
					func(ctx core.BuildContext) core.Widget {
						return buildHomePage(ctx, s.isDark, s.toggleTheme)
					},
					settings,
				)
			}
			demo, ok := demoFor(settings.Name)
			if !ok {
				return nil
			}
			return navigation.NewAnimatedPageRoute(demo.Builder, settings)
		},
	}
	return theme.AppTheme{
		Data:  s.getAppThemeData(),
		Child: navigator,
	}
}

// getAppThemeData returns memoized theme data, recreating only when state changes.
func (s *showcaseState) getAppThemeData() *theme.AppThemeData {
	brightness := theme.BrightnessLight
	if s.isDark {
		brightness = theme.BrightnessDark
	}
	if s.cachedThemeData == nil || s.cachedThemeData.Brightness() != brightness {
		s.cachedThemeData = theme.NewAppThemeData(theme.TargetPlatformMaterial, brightness)
	}
	return s.cachedThemeData
}

func (s *showcaseState) toggleTheme() {
	s.SetState(func() {
		s.isDark = !s.isDark
	})
}

// buildHomePage lists every demo with a theme toggle on top.
func buildHomePage(ctx core.BuildContext, isDark bool, toggleTheme func()) core.Widget {
	colors := theme.ThemeOf(ctx).ColorScheme
	toggleLabel := "Dark theme"
	if isDark {
		toggleLabel = "Light theme"
	}
	items := []core.Widget{
		smallButton(toggleLabel, toggleTheme, colors),
		widgets.VSpace(16),
	}
	for _, demo := range demos {
		items = append(items, demoCard(ctx, demo, colors), widgets.VSpace(12))
	}
	return demoPage(ctx, "Select fields", "Pickers built on one generic field.", items...)
}

// demoCard is a tappable card that pushes the demo's route.
func demoCard(ctx core.BuildContext, demo Demo, colors theme.ColorScheme) core.Widget {
	card := widgets.GestureDetector{
		OnTap: func() {
			navigation.NavigatorOf(ctx).PushNamed(demo.Route, nil)
		},
		Child: widgets.Container{
			Color:        colors.SurfaceContainerHigh,
			BorderRadius: 12,
			Padding:      layout.EdgeInsetsAll(16),
			Child: widgets.Column{
				Children: []core.Widget{
					widgets.Text{
						Content: demo.Title,
						Style: graphics.TextStyle{
							Color:      colors.OnSurface,
							FontSize:   16,
							FontWeight: graphics.FontWeightBold,
						},
					},
					widgets.VSpace(4),
					widgets.Text{Content: demo.Subtitle, Style: labelStyle(colors)},
				},
				MainAxisAlignment:  widgets.MainAxisAlignmentStart,
				CrossAxisAlignment: widgets.CrossAxisAlignmentStart,
				MainAxisSize:       widgets.MainAxisSizeMin,
			},
		},
	}
	return widgets.Semantics{Label: demo.Title, Container: true, OnTap: card.OnTap, Child: card}
}
