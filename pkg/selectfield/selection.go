package selectfield

// Selection is the value held by a [SelectField] together with the callback
// that receives changes. It is implemented by [Single] and [Multi] only.
type Selection[V comparable] interface {
	// pick applies a tap on value and reports whether the overlay should close.
	pick(value V) (closeOverlay bool)
	hasHandler() bool
}

// Single selects at most one value. A nil Value means nothing is selected.
type Single[V comparable] struct {
	Value     *V
	OnChanged func(V)
}

func (s Single[V]) pick(value V) bool {
	if s.OnChanged != nil {
		s.OnChanged(value)
	}
	return true
}

func (s Single[V]) hasHandler() bool { return s.OnChanged != nil }

// Multi selects any number of values. Values keeps the order in which the
// values were picked; nil is the empty set.
type Multi[V comparable] struct {
	Values    []V
	OnChanged func([]V)
}

func (m Multi[V]) pick(value V) bool {
	if m.OnChanged != nil {
		m.OnChanged(Toggle(m.Values, value))
	}
	return false
}

func (m Multi[V]) hasHandler() bool { return m.OnChanged != nil }

func (m Multi[V]) contains(value V) bool {
	for _, v := range m.Values {
		if v == value {
			return true
		}
	}
	return false
}

// Toggle returns a new slice with value removed if present, or appended at
// the end if absent. Every occurrence is removed. The input is not modified
// and the result never shares its backing array.
func Toggle[V comparable](values []V, value V) []V {
	next := make([]V, 0, len(values)+1)
	found := false
	for _, v := range values {
		if v == value {
			found = true
			continue
		}
		next = append(next, v)
	}
	if !found {
		next = append(next, value)
	}
	return next
}

// SingleOf returns a [Single] selection of value. Handy for struct literals
// where taking the address of a field is awkward.
func SingleOf[V comparable](value V, onChanged func(V)) Single[V] {
	return Single[V]{Value: &value, OnChanged: onChanged}
}
