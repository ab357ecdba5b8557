package selectfield

import (
	"reflect"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/theme"
)

// Style holds the visual properties of a select field.
//
// Zero-valued fields fall back to the surrounding [StyleScope], and from
// there to values derived from the app theme. See [DefaultStyle].
type Style struct {
	// Padding surrounds the whole field (label, trigger, error text).
	Padding layout.EdgeInsets
	// LabelStyle styles the label above the trigger.
	LabelStyle graphics.TextStyle

	// TriggerColor fills the trigger.
	TriggerColor graphics.Color
	// TriggerBorderColor outlines the trigger.
	TriggerBorderColor graphics.Color
	// TriggerBorderWidth is the outline thickness.
	TriggerBorderWidth float64
	// TriggerRadius rounds the trigger corners.
	TriggerRadius float64
	// TriggerHeight is the trigger height.
	TriggerHeight float64
	// TriggerPadding insets the trigger content horizontally.
	TriggerPadding layout.EdgeInsets
	// TextStyle styles the selected label(s) in the trigger.
	TextStyle graphics.TextStyle
	// PlaceholderColor colors the trigger text while nothing is selected.
	PlaceholderColor graphics.Color
	// DisabledColor fills the trigger while the field is disabled.
	DisabledColor graphics.Color
	// DisabledTextColor colors the trigger text while the field is disabled.
	DisabledTextColor graphics.Color
	// ErrorColor is used for the error text and the trigger outline on error.
	ErrorColor graphics.Color
	// ErrorStyle styles the error text below the trigger.
	ErrorStyle graphics.TextStyle

	// BarrierColor is drawn behind the overlay panel.
	BarrierColor graphics.Color
	// PanelColor fills the overlay panel.
	PanelColor graphics.Color
	// PanelRadius rounds the panel corners.
	PanelRadius float64
	// PanelWidth is the width of the modal card. Sheets span the full width.
	PanelWidth float64
	// MaxListHeight caps the height of the option list.
	MaxListHeight float64

	// ItemHeight is the height of each option row.
	ItemHeight float64
	// ItemPadding insets each option row.
	ItemPadding layout.EdgeInsets
	// ItemTextStyle styles unselected option labels.
	ItemTextStyle graphics.TextStyle
	// SelectedItemColor fills selected option rows.
	SelectedItemColor graphics.Color
	// SelectedTextStyle styles selected option labels.
	SelectedTextStyle graphics.TextStyle
	// DisabledItemOpacity dims disabled option rows.
	DisabledItemOpacity float64
	// DividerColor separates rows and the panel header.
	DividerColor graphics.Color

	// SearchColor fills the search box.
	SearchColor graphics.Color
	// SearchBorderColor outlines the search box.
	SearchBorderColor graphics.Color
	// SearchTextStyle styles the search query.
	SearchTextStyle graphics.TextStyle
	// SearchPlaceholderColor colors the search placeholder.
	SearchPlaceholderColor graphics.Color

	// TitleStyle styles the sheet header title.
	TitleStyle graphics.TextStyle
	// HandleColor colors the sheet drag handle.
	HandleColor graphics.Color
	// EmptyTextStyle styles the empty-state text.
	EmptyTextStyle graphics.TextStyle
}

// DefaultStyle derives a complete Style from th.
func DefaultStyle(th *theme.ThemeData) Style {
	colors := th.ColorScheme
	textTheme := th.TextTheme
	dropdown := th.DropdownThemeOf()
	field := th.TextFieldThemeOf()
	sheet := th.BottomSheetThemeOf()

	body := textTheme.BodyLarge
	body.Color = colors.OnSurface
	selected := body
	selected.Color = colors.Primary
	selected.FontWeight = graphics.FontWeightSemibold
	label := textTheme.LabelMedium
	label.Color = colors.OnSurface
	label.FontWeight = graphics.FontWeightSemibold
	errStyle := textTheme.BodySmall
	errStyle.Color = colors.Error
	title := textTheme.BodyLarge
	title.Color = colors.OnSurface
	title.FontWeight = graphics.FontWeightSemibold
	empty := textTheme.BodyMedium
	empty.Color = colors.OnSurfaceVariant

	return Style{
		Padding:            layout.EdgeInsetsOnly(0, 0, 0, 16),
		LabelStyle:         label,
		TriggerColor:       dropdown.BackgroundColor,
		TriggerBorderColor: dropdown.BorderColor,
		TriggerBorderWidth: 1,
		TriggerRadius:      dropdown.BorderRadius,
		TriggerHeight:      48,
		TriggerPadding:     layout.EdgeInsetsSymmetric(12, 0),
		TextStyle:          body,
		PlaceholderColor:   field.PlaceholderColor,
		DisabledColor:      colors.SurfaceVariant,
		DisabledTextColor:  dropdown.DisabledTextColor,
		ErrorColor:         colors.Error,
		ErrorStyle:         errStyle,

		BarrierColor:  sheet.BarrierColor,
		PanelColor:    dropdown.MenuBackgroundColor,
		PanelRadius:   12,
		PanelWidth:    320,
		MaxListHeight: 400,

		ItemHeight:          52,
		ItemPadding:         layout.EdgeInsetsSymmetric(16, 0),
		ItemTextStyle:       body,
		SelectedItemColor:   colors.Primary.WithAlpha(0.12),
		SelectedTextStyle:   selected,
		DisabledItemOpacity: 0.5,
		DividerColor:        colors.OutlineVariant,

		SearchColor:            field.BackgroundColor,
		SearchBorderColor:      field.BorderColor,
		SearchTextStyle:        body,
		SearchPlaceholderColor: field.PlaceholderColor,

		TitleStyle:     title,
		HandleColor:    sheet.HandleColor,
		EmptyTextStyle: empty,
	}
}

// Merge returns a copy of s with every non-zero field of override applied.
// Text styles are taken from override when their FontSize is set; a style
// with only a Color set recolors the base style.
func (s Style) Merge(override Style) Style {
	if override.Padding != (layout.EdgeInsets{}) {
		s.Padding = override.Padding
	}
	s.LabelStyle = mergeTextStyle(s.LabelStyle, override.LabelStyle)
	s.TriggerColor = mergeColor(s.TriggerColor, override.TriggerColor)
	s.TriggerBorderColor = mergeColor(s.TriggerBorderColor, override.TriggerBorderColor)
	s.TriggerBorderWidth = mergeFloat(s.TriggerBorderWidth, override.TriggerBorderWidth)
	s.TriggerRadius = mergeFloat(s.TriggerRadius, override.TriggerRadius)
	s.TriggerHeight = mergeFloat(s.TriggerHeight, override.TriggerHeight)
	if override.TriggerPadding != (layout.EdgeInsets{}) {
		s.TriggerPadding = override.TriggerPadding
	}
	s.TextStyle = mergeTextStyle(s.TextStyle, override.TextStyle)
	s.PlaceholderColor = mergeColor(s.PlaceholderColor, override.PlaceholderColor)
	s.DisabledColor = mergeColor(s.DisabledColor, override.DisabledColor)
	s.DisabledTextColor = mergeColor(s.DisabledTextColor, override.DisabledTextColor)
	s.ErrorColor = mergeColor(s.ErrorColor, override.ErrorColor)
	s.ErrorStyle = mergeTextStyle(s.ErrorStyle, override.ErrorStyle)

	s.BarrierColor = mergeColor(s.BarrierColor, override.BarrierColor)
	s.PanelColor = mergeColor(s.PanelColor, override.PanelColor)
	s.PanelRadius = mergeFloat(s.PanelRadius, override.PanelRadius)
	s.PanelWidth = mergeFloat(s.PanelWidth, override.PanelWidth)
	s.MaxListHeight = mergeFloat(s.MaxListHeight, override.MaxListHeight)

	s.ItemHeight = mergeFloat(s.ItemHeight, override.ItemHeight)
	if override.ItemPadding != (layout.EdgeInsets{}) {
		s.ItemPadding = override.ItemPadding
	}
	s.ItemTextStyle = mergeTextStyle(s.ItemTextStyle, override.ItemTextStyle)
	s.SelectedItemColor = mergeColor(s.SelectedItemColor, override.SelectedItemColor)
	s.SelectedTextStyle = mergeTextStyle(s.SelectedTextStyle, override.SelectedTextStyle)
	s.DisabledItemOpacity = mergeFloat(s.DisabledItemOpacity, override.DisabledItemOpacity)
	s.DividerColor = mergeColor(s.DividerColor, override.DividerColor)

	s.SearchColor = mergeColor(s.SearchColor, override.SearchColor)
	s.SearchBorderColor = mergeColor(s.SearchBorderColor, override.SearchBorderColor)
	s.SearchTextStyle = mergeTextStyle(s.SearchTextStyle, override.SearchTextStyle)
	s.SearchPlaceholderColor = mergeColor(s.SearchPlaceholderColor, override.SearchPlaceholderColor)

	s.TitleStyle = mergeTextStyle(s.TitleStyle, override.TitleStyle)
	s.HandleColor = mergeColor(s.HandleColor, override.HandleColor)
	s.EmptyTextStyle = mergeTextStyle(s.EmptyTextStyle, override.EmptyTextStyle)
	return s
}

// WithPanelWidth returns a copy of s with the given modal card width.
func (s Style) WithPanelWidth(width float64) Style {
	s.PanelWidth = width
	return s
}

// WithBarrierColor returns a copy of s with the given barrier color.
func (s Style) WithBarrierColor(c graphics.Color) Style {
	s.BarrierColor = c
	return s
}

func mergeColor(base, override graphics.Color) graphics.Color {
	if override != 0 {
		return override
	}
	return base
}

func mergeFloat(base, override float64) float64 {
	if override != 0 {
		return override
	}
	return base
}

func mergeTextStyle(base, override graphics.TextStyle) graphics.TextStyle {
	if override.FontSize != 0 {
		if override.Color == 0 {
			override.Color = base.Color
		}
		return override
	}
	if override.Color != 0 {
		base.Color = override.Color
	}
	if override.FontWeight != 0 {
		base.FontWeight = override.FontWeight
	}
	return base
}

// StyleScope provides a Style to every select field below it.
// Fields merge their own Style on top of the scope's.
type StyleScope struct {
	core.InheritedBase
	Style Style
	Child core.Widget
}

func (s StyleScope) ChildWidget() core.Widget { return s.Child }

func (s StyleScope) ShouldRebuildDependents(oldWidget core.InheritedWidget) bool {
	old, ok := oldWidget.(StyleScope)
	if !ok {
		return true
	}
	return s.Style != old.Style
}

var styleScopeType = reflect.TypeFor[StyleScope]()

// StyleOf returns the theme-derived style merged with the nearest
// [StyleScope], if any.
func StyleOf(ctx core.BuildContext) Style {
	style := DefaultStyle(theme.ThemeOf(ctx))
	if inherited := ctx.DependOnInherited(styleScopeType, nil); inherited != nil {
		if scope, ok := inherited.(StyleScope); ok {
			style = style.Merge(scope.Style)
		}
	}
	return style
}
