package main

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
	"github.com/go-drift/drift/pkg/widgets"
)

// sectionTitle creates a styled section header for demo pages.
func sectionTitle(text string, colors theme.ColorScheme) core.Widget {
	return widgets.Text{
		Content: text,
		Style: graphics.TextStyle{
			Color:      colors.Primary,
			FontSize:   20,
			FontWeight: graphics.FontWeightBold,
		},
	}
}

// labelStyle returns a text style for descriptive labels.
func labelStyle(colors theme.ColorScheme) graphics.TextStyle {
	return graphics.TextStyle{
		Color:    colors.OnSurfaceVariant,
		FontSize: 14,
	}
}

// smallButton creates a compact tappable button for secondary actions.
func smallButton(label string, onTap func(), colors theme.ColorScheme) core.Widget {
	return widgets.GestureDetector{
		OnTap: onTap,
		Child: widgets.Container{
			Color:        colors.SurfaceContainerHigh,
			BorderRadius: 6,
			Padding:      layout.EdgeInsetsSymmetric(12, 6),
			Child: widgets.Text{
				Content: label,
				Style: graphics.TextStyle{
					Color:    colors.OnSurface,
					FontSize: 13,
				},
			},
		},
	}
}

// demoPage lays out a title, a description and the demo content in a column.
func demoPage(ctx core.BuildContext, title, description string, items ...core.Widget) core.Widget {
	colors := theme.ThemeOf(ctx).ColorScheme
	children := []core.Widget{
		sectionTitle(title, colors),
		widgets.VSpace(8),
		widgets.Text{Content: description, Style: labelStyle(colors)},
		widgets.VSpace(24),
	}
	children = append(children, items...)
	return widgets.Container{
		Color:   colors.Surface,
		Padding: layout.EdgeInsetsAll(20),
		Child: widgets.Column{
			Children:           children,
			MainAxisAlignment:  widgets.MainAxisAlignmentStart,
			CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
			MainAxisSize:       widgets.MainAxisSizeMax,
		},
	}
}
