package selectfield

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/focus"
	"github.com/go-drift/drift/pkg/layout"
	"github.com/go-drift/drift/pkg/platform"
	"github.com/go-drift/drift/pkg/widgets"
)

// searchBox is the query input shown at the top of the overlay.
//
// The text input registers its own focus node when it mounts. searchBox
// records the nodes that existed before its child was built and, once the
// first frame is done, keeps the one node the input added.
type searchBox struct {
	core.StatefulBase
	Controller  *platform.TextEditingController
	Placeholder string
	Style       Style
	Autofocus   bool
	// OnMount receives the focus function while the box is mounted and nil
	// once it is disposed.
	OnMount func(focus func())
}

func (searchBox) CreateState() core.State {
	return &searchBoxState{}
}

type searchBoxState struct {
	core.StateBase
	before  map[*focus.FocusNode]struct{}
	input   *focus.FocusNode
	pending bool
	onMount func(focus func())
}

func (s *searchBoxState) InitState() {
	s.before = make(map[*focus.FocusNode]struct{})
	if scope := focus.GetFocusManager().RootScope; scope != nil {
		for _, node := range scope.Children {
			s.before[node] = struct{}{}
		}
	}
	w := s.Element().Widget().(searchBox)
	s.pending = w.Autofocus
	s.onMount = w.OnMount
	if s.onMount != nil {
		s.onMount(s.focus)
	}
	// The input's focus node exists only after this frame's build.
	platform.Dispatch(s.captureInput)
}

func (s *searchBoxState) Dispose() {
	if s.onMount != nil {
		s.onMount(nil)
	}
	if s.input != nil {
		s.input.Unfocus()
		s.input = nil
	}
	s.StateBase.Dispose()
}

// captureInput finds the focus node registered by the child input.
func (s *searchBoxState) captureInput() {
	if s.IsDisposed() || s.input != nil {
		return
	}
	if scope := focus.GetFocusManager().RootScope; scope != nil {
		for _, node := range scope.Children {
			if _, ok := s.before[node]; !ok && node.DebugLabel == "TextInput" {
				s.input = node
				break
			}
		}
	}
	s.before = nil
	if s.pending {
		s.focus()
	}
}

func (s *searchBoxState) focus() {
	if s.IsDisposed() {
		return
	}
	if s.input == nil {
		s.pending = true
		return
	}
	s.pending = false
	s.input.RequestFocus()
}

func (s *searchBoxState) Build(ctx core.BuildContext) core.Widget {
	w := s.Element().Widget().(searchBox)
	style := w.Style
	return widgets.Padding{
		Padding: layout.EdgeInsetsSymmetric(12, 10),
		Child: widgets.TextInput{
			Controller:       w.Controller,
			Placeholder:      w.Placeholder,
			Style:            style.SearchTextStyle,
			PlaceholderColor: style.SearchPlaceholderColor,
			BackgroundColor:  style.SearchColor,
			BorderColor:      style.SearchBorderColor,
			FocusColor:       style.SelectedTextStyle.Color,
			BorderRadius:     8,
			BorderWidth:      1,
			Height:           searchBoxHeight - 20,
			Padding:          layout.EdgeInsetsSymmetric(12, 8),
			Autocorrect:      false,
		},
	}
}
