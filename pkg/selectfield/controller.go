package selectfield

import "sync"

// Handle is the imperative surface of a select field.
type Handle interface {
	// Open shows the options overlay. It does nothing while the field is disabled.
	Open()
	// Close hides the overlay and clears the search query.
	Close()
	// Focus moves input focus to the search box when it is shown.
	Focus()
}

// State describes what the field is currently showing.
type State int

const (
	// StateClosed means the overlay is hidden.
	StateClosed State = iota
	// StateOpen means the overlay is shown with an empty query.
	StateOpen
	// StateSearching means the overlay is shown and the query is non-blank.
	StateSearching
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "open"
	case StateSearching:
		return "searching"
	default:
		return "closed"
	}
}

// Controller drives a [SelectField] from outside the widget tree.
// Create one with [NewController] and pass it as SelectField.Controller.
//
// Calls made before the field is mounted, or after it is disposed, are no-ops.
// Methods must be called on the UI thread; use drift.Dispatch from other
// goroutines.
type Controller struct {
	mu sync.Mutex

	owner     any
	openFunc  func()
	closeFunc func()
	focusFunc func()
	stateFunc func() State
}

var _ Handle = (*Controller)(nil)

// NewController creates a detached controller.
func NewController() *Controller {
	return &Controller{}
}

// Open shows the overlay of the attached field.
func (c *Controller) Open() {
	c.mu.Lock()
	fn := c.openFunc
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Close hides the overlay of the attached field.
func (c *Controller) Close() {
	c.mu.Lock()
	fn := c.closeFunc
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Focus focuses the search box of the attached field, if one is shown.
func (c *Controller) Focus() {
	c.mu.Lock()
	fn := c.focusFunc
	c.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// State reports the attached field's state, or StateClosed when detached.
func (c *Controller) State() State {
	c.mu.Lock()
	fn := c.stateFunc
	c.mu.Unlock()
	if fn == nil {
		return StateClosed
	}
	return fn()
}

// IsOpen reports whether the attached field's overlay is shown.
func (c *Controller) IsOpen() bool {
	return c.State() != StateClosed
}

func (c *Controller) attach(owner any, open, closeFn, focus func(), state func() State) {
	c.mu.Lock()
	c.owner = owner
	c.openFunc = open
	c.closeFunc = closeFn
	c.focusFunc = focus
	c.stateFunc = state
	c.mu.Unlock()
}

// detach clears the callbacks if owner is still the attached field.
func (c *Controller) detach(owner any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.owner != owner {
		return
	}
	c.owner = nil
	c.openFunc = nil
	c.closeFunc = nil
	c.focusFunc = nil
	c.stateFunc = nil
}
