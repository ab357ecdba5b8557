package selectfield

import "github.com/go-drift/drift/pkg/core"

// MultiSelectField is a [SelectField] fixed to multi-select.
//
// Values is the current selection and OnChanged receives the toggled slice.
// The overlay stays open while options are toggled.
type MultiSelectField[V comparable] struct {
	core.StatelessBase

	Options                []Option[V]
	Values                 []V
	OnChanged              func([]V)
	Placeholder            string
	Disabled               bool
	Searchable             bool
	SearchPlaceholder      string
	DisableSearchAutofocus bool
	EmptyText              string
	Label                  string
	Error                  string
	Presentation           Presentation
	SheetTitle             string
	Controller             *Controller
	ArrowBuilder           func(open bool) core.Widget
	CheckmarkBuilder       func() core.Widget
	Style                  Style
	OnOpenChanged          func(open bool)
}

func (m MultiSelectField[V]) Build(ctx core.BuildContext) core.Widget {
	return m.field()
}

func (m MultiSelectField[V]) field() SelectField[V] {
	return SelectField[V]{
		Options:                m.Options,
		Selection:              Multi[V]{Values: m.Values, OnChanged: m.OnChanged},
		Placeholder:            m.Placeholder,
		Disabled:               m.Disabled,
		Searchable:             m.Searchable,
		SearchPlaceholder:      m.SearchPlaceholder,
		DisableSearchAutofocus: m.DisableSearchAutofocus,
		EmptyText:              m.EmptyText,
		Label:                  m.Label,
		Error:                  m.Error,
		Presentation:           m.Presentation,
		SheetTitle:             m.SheetTitle,
		Controller:             m.Controller,
		ArrowBuilder:           m.ArrowBuilder,
		CheckmarkBuilder:       m.CheckmarkBuilder,
		Style:                  m.Style,
		OnOpenChanged:          m.OnOpenChanged,
	}
}
