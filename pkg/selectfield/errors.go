package selectfield

import (
	"errors"
	"fmt"

	drifterrors "github.com/go-drift/drift/pkg/errors"
)

var (
	// ErrNoSelection is reported when a SelectField has a nil Selection.
	ErrNoSelection = errors.New("selectfield: Selection is nil")
	// ErrNoChangeHandler is reported when the selection has no OnChanged callback.
	ErrNoChangeHandler = errors.New("selectfield: selection has no OnChanged callback")
	// ErrNoOverlay is reported when the field is opened without an Overlay ancestor.
	ErrNoOverlay = errors.New("selectfield: no Overlay ancestor")
)

// DuplicateValueError lists option values that occur more than once.
// The first option carrying a duplicated value wins when the trigger label is
// resolved.
type DuplicateValueError struct {
	Values []any
}

func (e *DuplicateValueError) Error() string {
	return fmt.Sprintf("selectfield: duplicate option values %v", e.Values)
}

// configErrors collects configuration problems for a field. Each problem is
// reported at most once per field instance.
type configErrors struct {
	reported map[string]struct{}
}

func (c *configErrors) report(op string, err error) {
	if err == nil {
		return
	}
	key := op + ": " + err.Error()
	if _, ok := c.reported[key]; ok {
		return
	}
	if c.reported == nil {
		c.reported = make(map[string]struct{})
	}
	c.reported[key] = struct{}{}
	drifterrors.Report(&drifterrors.DriftError{
		Op:   op,
		Kind: drifterrors.KindInit,
		Err:  err,
	})
}

// validate reports problems with the field configuration.
func validate[V comparable](c *configErrors, w SelectField[V]) {
	const op = "selectfield.SelectField"
	if w.Selection == nil {
		c.report(op, ErrNoSelection)
	} else if !w.Selection.hasHandler() {
		c.report(op, ErrNoChangeHandler)
	}
	if dups := DuplicateValues(w.Options); len(dups) > 0 {
		values := make([]any, len(dups))
		for i, v := range dups {
			values[i] = v
		}
		c.report(op, &DuplicateValueError{Values: values})
	}
}
