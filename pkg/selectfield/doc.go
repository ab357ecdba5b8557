// Package selectfield provides a form control for picking one or many values
// from a list of labeled options.
//
// A [SelectField] shows a trigger with the current selection. Tapping the
// trigger opens an overlay listing the options, optionally with a search box
// that filters them by label. The overlay is either a centered card
// ([PresentationModal]) or a sheet that slides up from the bottom edge
// ([PresentationSheet]).
//
// # Selection Model
//
// The selection is a tagged variant: [Single] holds at most one value and
// [Multi] holds an ordered list. The widget never owns the value; it reports
// each change through the variant's OnChanged callback and the parent writes
// the new value back:
//
//	selectfield.SelectField[string]{
//	    Options: []selectfield.Option[string]{
//	        {Label: "Apple", Value: "a"},
//	        {Label: "Banana", Value: "b"},
//	    },
//	    Selection: selectfield.Single[string]{
//	        Value:     s.fruit,
//	        OnChanged: func(v string) {
//	            s.SetState(func() { s.fruit = &v })
//	        },
//	    },
//	    Searchable: true,
//	}
//
// [MultiSelectField] is a shorthand for a SelectField with a [Multi] selection.
//
// # Imperative Control
//
// Pass a [Controller] to open, close, or focus the field from outside:
//
//	ctrl := selectfield.NewController()
//	// ...
//	ctrl.Open()
//
// # Overlay Requirement
//
// The overlay is inserted into the nearest [overlay.Overlay] ancestor. Apps
// built with drift.NewApp already have one. Without an Overlay the field
// reports an error through the drift error handler and stays closed.
package selectfield
