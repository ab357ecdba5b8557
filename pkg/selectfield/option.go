package selectfield

import (
	"strings"

	"golang.org/x/text/cases"
)

// Option is a single selectable entry.
type Option[V comparable] struct {
	// Label is the text shown in the trigger and the list.
	Label string
	// Value identifies the option. Two options are the same option when their
	// values compare equal.
	Value V
	// Disabled renders the option dimmed and ignores taps on it.
	Disabled bool
}

// labelSeparator joins labels of a multi selection.
const labelSeparator = ", "

// FilterOptions returns the options whose label contains query, ignoring case.
//
// Leading and trailing whitespace in query is ignored. A blank query returns
// options unchanged (the same slice), so callers can compare lengths cheaply.
// Order is preserved.
func FilterOptions[V comparable](options []Option[V], query string) []Option[V] {
	query = strings.TrimSpace(query)
	if query == "" {
		return options
	}
	folder := cases.Fold()
	needle := folder.String(query)
	matches := make([]Option[V], 0, len(options))
	for _, opt := range options {
		if strings.Contains(folder.String(opt.Label), needle) {
			matches = append(matches, opt)
		}
	}
	return matches
}

// Resolved is the text the trigger displays for a selection.
type Resolved struct {
	// Text is the joined label(s) or the placeholder.
	Text string
	// IsPlaceholder reports whether Text is the placeholder.
	IsPlaceholder bool
}

// ResolveLabel computes the trigger text for selection.
//
// For a [Single] selection it is the label of the first option whose value
// matches. For a [Multi] selection it is the labels of every selected option,
// in option order, joined by ", ". When nothing matches, placeholder is
// returned with IsPlaceholder set. Selected values with no matching option
// are skipped.
func ResolveLabel[V comparable](options []Option[V], selection Selection[V], placeholder string) Resolved {
	switch sel := selection.(type) {
	case Single[V]:
		if sel.Value == nil {
			break
		}
		for _, opt := range options {
			if opt.Value == *sel.Value {
				return Resolved{Text: opt.Label}
			}
		}
	case Multi[V]:
		if len(sel.Values) == 0 {
			break
		}
		labels := make([]string, 0, len(sel.Values))
		for _, opt := range options {
			if sel.contains(opt.Value) {
				labels = append(labels, opt.Label)
			}
		}
		if len(labels) > 0 {
			return Resolved{Text: strings.Join(labels, labelSeparator)}
		}
	}
	return Resolved{Text: placeholder, IsPlaceholder: true}
}

// IsSelected reports whether value is part of selection.
func IsSelected[V comparable](selection Selection[V], value V) bool {
	switch sel := selection.(type) {
	case Single[V]:
		return sel.Value != nil && *sel.Value == value
	case Multi[V]:
		return sel.contains(value)
	}
	return false
}

// DuplicateValues returns the values that appear on more than one option,
// in the order their second occurrence is found.
func DuplicateValues[V comparable](options []Option[V]) []V {
	seen := make(map[V]int, len(options))
	var dups []V
	for _, opt := range options {
		seen[opt.Value]++
		if seen[opt.Value] == 2 {
			dups = append(dups, opt.Value)
		}
	}
	return dups
}
