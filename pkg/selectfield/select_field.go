package selectfield

import (
	"slices"
	"strings"

	"github.com/go-drift/drift/pkg/animation"
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/navigation"
	"github.com/go-drift/drift/pkg/overlay"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/widgets"
)

const (
	// DefaultPlaceholder is shown in the trigger when nothing is selected.
	DefaultPlaceholder = "Select an option"
	// DefaultSearchPlaceholder is shown in the empty search box.
	DefaultSearchPlaceholder = "Search..."
	// DefaultEmptyText is shown when no option matches the query.
	DefaultEmptyText = "No options found"

	checkmarkGlyph = "✓"
	closeGlyph     = "✕"
)

// SelectField is a form control that picks one or many values from Options.
//
// The field is controlled: it displays Selection and reports changes through
// the selection's OnChanged callback without storing the value itself. Use
// [Single] for one value and [Multi] for many.
//
// Tapping the trigger opens an overlay with the options. In single mode a tap
// on an option reports it and closes the overlay. In multi mode a tap toggles
// the option and the overlay stays open so several can be picked. The overlay
// closes on a backdrop tap, the sheet close button, the system back button,
// or [Controller.Close], and closing always clears the search query.
//
// Inside a [navigation.Navigator] an open field pushes a route of its own, so
// [navigation.HandleBackButton] closes the options before it leaves the page.
//
// Zero-valued text fields use the Default* constants. Zero-valued Style
// fields come from [StyleOf].
type SelectField[V comparable] struct {
	core.StatefulBase

	// Options are the selectable entries, shown in order.
	Options []Option[V]
	// Selection is the current value and its change callback. Required.
	Selection Selection[V]
	// Placeholder is shown in the trigger when nothing is selected.
	Placeholder string
	// Disabled makes the trigger inert.
	Disabled bool
	// Searchable shows a search box that filters options by label.
	Searchable bool
	// SearchPlaceholder is shown in the empty search box.
	SearchPlaceholder string
	// DisableSearchAutofocus stops the search box from taking focus when the
	// overlay opens.
	DisableSearchAutofocus bool
	// EmptyText is shown when no option matches the query.
	EmptyText string
	// Label is shown above the trigger.
	Label string
	// Error is shown below the trigger and outlines the trigger in the error color.
	Error string
	// Presentation chooses between a centered card and a bottom sheet.
	Presentation Presentation
	// SheetTitle is the sheet header title. Defaults to Label, then Placeholder.
	SheetTitle string
	// Controller allows opening, closing, and focusing the field imperatively.
	Controller *Controller
	// ArrowBuilder replaces the trigger chevron.
	ArrowBuilder func(open bool) core.Widget
	// CheckmarkBuilder replaces the mark drawn on selected rows.
	CheckmarkBuilder func() core.Widget
	// Style overrides the themed appearance.
	Style Style
	// OnOpenChanged is called after the overlay opens or starts closing.
	OnOpenChanged func(open bool)
}

// WithLabel returns a copy of the field with the given label.
func (f SelectField[V]) WithLabel(label string) SelectField[V] {
	f.Label = label
	return f
}

// WithError returns a copy of the field with the given error text.
func (f SelectField[V]) WithError(text string) SelectField[V] {
	f.Error = text
	return f
}

// WithPlaceholder returns a copy of the field with the given placeholder.
func (f SelectField[V]) WithPlaceholder(placeholder string) SelectField[V] {
	f.Placeholder = placeholder
	return f
}

// WithSearch returns a copy of the field with the search box enabled.
func (f SelectField[V]) WithSearch(placeholder string) SelectField[V] {
	f.Searchable = true
	f.SearchPlaceholder = placeholder
	return f
}

// WithPresentation returns a copy of the field with the given presentation.
func (f SelectField[V]) WithPresentation(p Presentation) SelectField[V] {
	f.Presentation = p
	return f
}

// WithStyle returns a copy of the field with the given style overrides.
func (f SelectField[V]) WithStyle(style Style) SelectField[V] {
	f.Style = style
	return f
}

// WithController returns a copy of the field driven by c.
func (f SelectField[V]) WithController(c *Controller) SelectField[V] {
	f.Controller = c
	return f
}

func (f SelectField[V]) CreateState() core.State {
	return &selectFieldState[V]{}
}

func (f SelectField[V]) placeholder() string {
	if f.Placeholder == "" {
		return DefaultPlaceholder
	}
	return f.Placeholder
}

func (f SelectField[V]) searchPlaceholder() string {
	if f.SearchPlaceholder == "" {
		return DefaultSearchPlaceholder
	}
	return f.SearchPlaceholder
}

func (f SelectField[V]) emptyText() string {
	if f.EmptyText == "" {
		return DefaultEmptyText
	}
	return f.EmptyText
}

func (f SelectField[V]) sheetTitle() string {
	switch {
	case f.SheetTitle != "":
		return f.SheetTitle
	case f.Label != "":
		return f.Label
	default:
		return f.placeholder()
	}
}

type selectFieldState[V comparable] struct {
	core.StateBase

	open  bool
	query *platform.TextEditingController
	fade  *animation.AnimationController
	slide *animation.AnimationController

	overlay overlay.OverlayState
	barrier *overlay.OverlayEntry
	panel   *overlay.OverlayEntry

	nav   navigation.NavigatorState
	route *overlayRoute

	controller  *Controller
	focusSearch func()
	errs        configErrors

	filterQuery  string
	filterSource []Option[V]
	filtered     []Option[V]
}

func (s *selectFieldState[V]) widget() SelectField[V] {
	return s.Element().Widget().(SelectField[V])
}

func (s *selectFieldState[V]) InitState() {
	w := s.widget()
	validate(&s.errs, w)

	s.query = platform.NewTextEditingController("")
	s.OnDispose(s.query.AddListener(s.onQueryChanged))

	s.fade = animation.NewAnimationController(fadeDuration)
	s.fade.Curve = animation.LinearCurve
	s.slide = animation.NewAnimationController(slideDuration)
	s.slide.Curve = animation.EaseOut
	for _, c := range []*animation.AnimationController{s.fade, s.slide} {
		core.UseDisposable(s, c)
		s.OnDispose(c.AddListener(s.markEntriesNeedBuild))
		s.OnDispose(c.AddStatusListener(s.onAnimationStatus))
	}

	s.attach(w.Controller)
}

func (s *selectFieldState[V]) DidUpdateWidget(oldWidget core.StatefulWidget) {
	w := s.widget()
	validate(&s.errs, w)
	if old, ok := oldWidget.(SelectField[V]); !ok || old.Controller != w.Controller {
		s.attach(w.Controller)
	}
	s.markEntriesNeedBuild()
}

func (s *selectFieldState[V]) Dispose() {
	s.removeEntries()
	if route, nav := s.route, s.nav; route != nil && nav != nil {
		s.route = nil
		route.onPop = nil
		// The navigator may be mid-build while this subtree unmounts.
		platform.Dispatch(func() { popRoute(nav, route) })
	}
	if s.controller != nil {
		s.controller.detach(s)
		s.controller = nil
	}
	s.StateBase.Dispose()
}

func (s *selectFieldState[V]) attach(c *Controller) {
	if s.controller == c {
		return
	}
	if s.controller != nil {
		s.controller.detach(s)
	}
	s.controller = c
	if c != nil {
		c.attach(s, s.openOverlay, s.closeOverlay, s.focus, s.currentState)
	}
}

func (s *selectFieldState[V]) currentState() State {
	if !s.open {
		return StateClosed
	}
	if strings.TrimSpace(s.query.Text()) != "" {
		return StateSearching
	}
	return StateOpen
}

func (s *selectFieldState[V]) onQueryChanged() {
	s.SetState(nil)
	s.markEntriesNeedBuild()
}

func (s *selectFieldState[V]) onAnimationStatus(animation.AnimationStatus) {
	if !s.open && s.fade.IsDismissed() && s.slide.IsDismissed() {
		s.removeEntries()
	}
}

func (s *selectFieldState[V]) openOverlay() {
	if s.IsDisposed() || s.open {
		return
	}
	w := s.widget()
	if w.Disabled {
		return
	}
	if s.overlay == nil {
		s.errs.report("selectfield.Open", ErrNoOverlay)
		return
	}
	s.SetState(func() {
		s.open = true
	})
	if s.barrier == nil {
		s.insertEntries()
	}
	if s.nav != nil && s.route == nil {
		s.route = newOverlayRoute(s.closeOverlay)
		s.nav.Push(s.route)
	}
	// Reopening during the close animation turns both animations around.
	s.fade.Forward()
	s.slide.Forward()
	if w.OnOpenChanged != nil {
		w.OnOpenChanged(true)
	}
}

func (s *selectFieldState[V]) closeOverlay() {
	if s.IsDisposed() || !s.open {
		return
	}
	s.SetState(func() {
		s.open = false
	})
	if route := s.route; route != nil {
		// Also reached from the route's own pop, in which case popRoute
		// finds it already gone.
		s.route = nil
		route.onPop = nil
		popRoute(s.nav, route)
	}
	s.query.Clear()
	s.fade.Reverse()
	s.slide.Reverse()
	s.markEntriesNeedBuild()
	if w := s.widget(); w.OnOpenChanged != nil {
		w.OnOpenChanged(false)
	}
}

func (s *selectFieldState[V]) focus() {
	if s.focusSearch != nil {
		s.focusSearch()
	}
}

func (s *selectFieldState[V]) pick(opt Option[V]) {
	if opt.Disabled || !s.open {
		return
	}
	w := s.widget()
	if w.Selection == nil {
		return
	}
	if w.Selection.pick(opt.Value) {
		s.closeOverlay()
	}
}

func (s *selectFieldState[V]) insertEntries() {
	s.barrier = overlay.NewOverlayEntry(s.buildBarrier)
	s.panel = overlay.NewOverlayEntry(s.buildPanel)
	s.panel.Opaque = true
	s.overlay.InsertAll([]*overlay.OverlayEntry{s.barrier, s.panel}, nil, nil)
}

func (s *selectFieldState[V]) removeEntries() {
	if s.barrier == nil {
		return
	}
	s.barrier.Remove()
	s.panel.Remove()
	s.barrier, s.panel = nil, nil
	s.focusSearch = nil
}

func (s *selectFieldState[V]) markEntriesNeedBuild() {
	if s.barrier == nil {
		return
	}
	s.barrier.MarkNeedsBuild()
	s.panel.MarkNeedsBuild()
}

// filteredOptions memoizes FilterOptions on the query and a copy of the
// options, so edits made in place to the caller's slice are seen.
func (s *selectFieldState[V]) filteredOptions(options []Option[V]) []Option[V] {
	query := s.query.Text()
	if s.filtered != nil && query == s.filterQuery && slices.Equal(options, s.filterSource) {
		return s.filtered
	}
	s.filterQuery = query
	s.filterSource = slices.Clone(options)
	s.filtered = FilterOptions(options, query)
	return s.filtered
}

func (s *selectFieldState[V]) Build(ctx core.BuildContext) core.Widget {
	w := s.widget()
	s.overlay = overlay.OverlayOf(ctx)
	s.nav = navigation.NavigatorOf(ctx)
	style := StyleOf(ctx).Merge(w.Style)

	children := make([]core.Widget, 0, 5)
	if w.Label != "" {
		children = append(children,
			widgets.Text{Content: w.Label, Style: style.LabelStyle},
			widgets.VSpace(8),
		)
	}
	children = append(children, s.buildTrigger(w, style))
	if w.Error != "" {
		errStyle := style.ErrorStyle
		errStyle.Color = style.ErrorColor
		children = append(children,
			widgets.VSpace(4),
			widgets.Text{Content: w.Error, Style: errStyle},
		)
	}

	return widgets.Padding{
		Padding: style.Padding,
		Child: widgets.Column{
			Children:           children,
			MainAxisAlignment:  widgets.MainAxisAlignmentStart,
			CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
			MainAxisSize:       widgets.MainAxisSizeMin,
		},
	}
}

func (s *selectFieldState[V]) buildTrigger(w SelectField[V], style Style) core.Widget {
	resolved := ResolveLabel(w.Options, w.Selection, w.placeholder())

	textStyle := style.TextStyle
	background := style.TriggerColor
	border := style.TriggerBorderColor
	if resolved.IsPlaceholder {
		textStyle.Color = style.PlaceholderColor
	}
	if w.Disabled {
		textStyle.Color = style.DisabledTextColor
		background = style.DisabledColor
	}
	if w.Error != "" {
		border = style.ErrorColor
		textStyle.Color = style.ErrorColor
	}

	var arrow core.Widget
	if w.ArrowBuilder != nil {
		arrow = w.ArrowBuilder(s.open)
	} else {
		arrow = Chevron{Open: s.open, Size: textStyle.FontSize * 0.6, Color: textStyle.Color}
	}

	trigger := core.Widget(widgets.DecoratedBox{
		Color:        background,
		BorderColor:  border,
		BorderWidth:  style.TriggerBorderWidth,
		BorderRadius: style.TriggerRadius,
		Child: widgets.Container{
			Height:  style.TriggerHeight,
			Padding: style.TriggerPadding,
			Child: widgets.Row{
				Children: []core.Widget{
					widgets.Expanded{Child: widgets.Text{Content: resolved.Text, Style: textStyle, MaxLines: 1}},
					widgets.HSpace(8),
					widgets.SizedBox{Width: 16, Height: 16, Child: widgets.Center{Child: arrow}},
				},
				MainAxisAlignment:  widgets.MainAxisAlignmentSpaceBetween,
				CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
				MainAxisSize:       widgets.MainAxisSizeMax,
			},
		},
	})
	if !w.Disabled {
		trigger = widgets.GestureDetector{OnTap: s.openOverlay, Child: trigger}
	}

	label := w.Label
	if label == "" {
		label = w.placeholder()
	}
	return widgets.Semantics{
		Label:     label,
		Value:     resolved.Text,
		Container: true,
		OnTap:     s.openOverlay,
		Child:     trigger,
	}
}

func (s *selectFieldState[V]) buildBarrier(ctx core.BuildContext) core.Widget {
	style := StyleOf(ctx).Merge(s.widget().Style)
	return overlay.ModalBarrier{
		Color:         fadeColor(style.BarrierColor, s.fade.Value),
		Dismissible:   true,
		OnDismiss:     s.closeOverlay,
		SemanticLabel: "Dismiss options",
	}
}

func (s *selectFieldState[V]) buildPanel(ctx core.BuildContext) core.Widget {
	w := s.widget()
	style := StyleOf(ctx).Merge(w.Style)

	children := make([]core.Widget, 0, 4)
	if w.Presentation == PresentationSheet {
		children = append(children, s.buildSheetHandle(style), s.buildSheetHeader(w, style))
	}
	if w.Searchable {
		children = append(children, searchBox{
			Controller:  s.query,
			Placeholder: w.searchPlaceholder(),
			Style:       style,
			Autofocus:   !w.DisableSearchAutofocus,
			OnMount: func(focus func()) {
				s.focusSearch = focus
			},
		})
	}
	children = append(children, s.buildList(w, style))

	body := widgets.DecoratedBox{
		Color:        style.PanelColor,
		BorderRadius: style.PanelRadius,
		Child: widgets.Column{
			Children:           children,
			MainAxisAlignment:  widgets.MainAxisAlignmentStart,
			CrossAxisAlignment: widgets.CrossAxisAlignmentStretch,
			MainAxisSize:       widgets.MainAxisSizeMin,
		},
	}

	if w.Presentation == PresentationSheet {
		return sheetPositioner{Progress: s.slide.Value, Child: body}
	}
	return widgets.Center{
		Child: widgets.Opacity{
			Opacity: s.fade.Value,
			Child:   widgets.SizedBox{Width: style.PanelWidth, Child: body},
		},
	}
}

func (s *selectFieldState[V]) buildSheetHandle(style Style) core.Widget {
	return widgets.SizedBox{
		Height: sheetHandleHeight,
		Child: widgets.Center{
			Child: widgets.Container{
				Width:        32,
				Height:       4,
				Color:        style.HandleColor,
				BorderRadius: 2,
			},
		},
	}
}

func (s *selectFieldState[V]) buildSheetHeader(w SelectField[V], style Style) core.Widget {
	closeStyle := style.TitleStyle
	closeStyle.Color = style.PlaceholderColor
	return widgets.Container{
		Height:  sheetHeaderHeight,
		Padding: layout.EdgeInsetsSymmetric(16, 0),
		Child: widgets.Row{
			Children: []core.Widget{
				widgets.Expanded{Child: widgets.Text{Content: w.sheetTitle(), Style: style.TitleStyle, MaxLines: 1}},
				widgets.GestureDetector{
					OnTap: s.closeOverlay,
					Child: widgets.Semantics{
						Label:     "Close",
						Container: true,
						OnTap:     s.closeOverlay,
						Child: widgets.SizedBox{
							Width:  32,
							Height: 32,
							Child:  widgets.Center{Child: widgets.Text{Content: closeGlyph, Style: closeStyle}},
						},
					},
				},
			},
			MainAxisAlignment:  widgets.MainAxisAlignmentSpaceBetween,
			CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
			MainAxisSize:       widgets.MainAxisSizeMax,
		},
	}
}

func (s *selectFieldState[V]) buildList(w SelectField[V], style Style) core.Widget {
	options := s.filteredOptions(w.Options)
	if len(options) == 0 {
		return widgets.SizedBox{
			Height: style.ItemHeight,
			Child:  widgets.Center{Child: widgets.Text{Content: w.emptyText(), Style: style.EmptyTextStyle}},
		}
	}
	height := min(float64(len(options))*style.ItemHeight, style.MaxListHeight)
	return widgets.SizedBox{
		Height: height,
		Child: widgets.ListViewBuilder{
			ItemCount:  len(options),
			ItemExtent: style.ItemHeight,
			ItemBuilder: func(ctx core.BuildContext, index int) core.Widget {
				return s.buildRow(w, style, options[index])
			},
		},
	}
}

func (s *selectFieldState[V]) buildRow(w SelectField[V], style Style, opt Option[V]) core.Widget {
	selected := w.Selection != nil && IsSelected(w.Selection, opt.Value)

	textStyle := style.ItemTextStyle
	background := graphics.ColorTransparent
	var trailing core.Widget
	if selected {
		textStyle = style.SelectedTextStyle
		background = style.SelectedItemColor
		if w.CheckmarkBuilder != nil {
			trailing = w.CheckmarkBuilder()
		} else {
			trailing = widgets.Text{Content: checkmarkGlyph, Style: style.SelectedTextStyle}
		}
	}

	content := []core.Widget{
		widgets.Expanded{Child: widgets.Text{Content: opt.Label, Style: textStyle, MaxLines: 1}},
	}
	if trailing != nil {
		content = append(content, widgets.HSpace(8), trailing)
	}
	row := widgets.Container{
		Height:  style.ItemHeight,
		Color:   background,
		Padding: style.ItemPadding,
		Child: widgets.Row{
			Children:           content,
			MainAxisAlignment:  widgets.MainAxisAlignmentSpaceBetween,
			CrossAxisAlignment: widgets.CrossAxisAlignmentCenter,
			MainAxisSize:       widgets.MainAxisSizeMax,
		},
	}

	if opt.Disabled {
		return widgets.Opacity{Opacity: style.DisabledItemOpacity, Child: row}
	}
	return widgets.GestureDetector{
		OnTap: func() { s.pick(opt) },
		Child: row,
	}
}
