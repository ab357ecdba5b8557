package selectfield

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/navigation"
	"github.com/go-drift/drift/pkg/widgets"
)

// overlayRoute stands in for an open field on the navigator stack so that
// the system back button closes the options instead of leaving the page.
//
// The field draws its own overlay entries. The route only reports when the
// navigator pops it.
type overlayRoute struct {
	navigation.BaseRoute
	onPop  func()
	popped bool
}

// newOverlayRoute returns an unnamed route, which the navigator pushes
// without consulting its Redirect callback.
func newOverlayRoute(onPop func()) *overlayRoute {
	return &overlayRoute{
		BaseRoute: navigation.NewBaseRoute(navigation.RouteSettings{}),
		onPop:     onPop,
	}
}

// DidPop runs when the navigator removes the route, whether by back button,
// Pop, or PopUntil.
func (r *overlayRoute) DidPop(result any) {
	r.popped = true
	onPop := r.onPop
	r.onPop = nil
	if onPop != nil {
		onPop()
	}
}

// IsTransparent keeps the page below the route visible.
func (r *overlayRoute) IsTransparent() bool {
	return true
}

// Build returns an empty layer that lets pointers through to the page, where
// the field's entries may sit in a nested Overlay.
func (r *overlayRoute) Build(ctx core.BuildContext) core.Widget {
	return widgets.IgnorePointer{Ignoring: true, Child: widgets.SizedBox{}}
}

// popRoute removes route and any route pushed above it. It does nothing once
// route has left the stack.
func popRoute(nav navigation.NavigatorState, route *overlayRoute) {
	if nav == nil || route.popped {
		return
	}
	nav.PopUntil(func(navigation.Route) bool { return route.popped })
}
