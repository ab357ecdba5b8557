package selectfield

import (
	"math"
	"time"

	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
)

// Presentation selects how the options overlay is shown.
type Presentation int

const (
	// PresentationModal shows the options in a card centered over a dimmed
	// backdrop. Backdrop and card fade in together.
	PresentationModal Presentation = iota
	// PresentationSheet shows the options in a sheet anchored to the bottom
	// edge. The backdrop fades in while the sheet slides up.
	PresentationSheet
)

func (p Presentation) String() string {
	switch p {
	case PresentationSheet:
		return "sheet"
	default:
		return "modal"
	}
}

const (
	fadeDuration  = 150 * time.Millisecond
	slideDuration = 250 * time.Millisecond

	sheetHeaderHeight = 56
	sheetHandleHeight = 20
	searchBoxHeight   = 64
)

// sheetPositioner fills the overlay and places its child against the bottom
// edge. Progress 0 puts the child just below the edge, 1 fully shows it.
// Hits outside the child fall through to the entries below.
type sheetPositioner struct {
	core.RenderObjectBase
	Progress float64
	// MaxHeightFraction caps the child height as a fraction of the overlay.
	MaxHeightFraction float64
	Child             core.Widget
}

func (s sheetPositioner) ChildWidget() core.Widget { return s.Child }

func (s sheetPositioner) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderSheetPositioner{progress: s.Progress, maxFraction: s.MaxHeightFraction}
	r.SetSelf(r)
	return r
}

func (s sheetPositioner) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderSheetPositioner); ok {
		r.progress = s.Progress
		r.maxFraction = s.MaxHeightFraction
		r.MarkNeedsLayout()
		r.MarkNeedsPaint()
	}
}

type renderSheetPositioner struct {
	layout.RenderBoxBase
	child       layout.RenderBox
	progress    float64
	maxFraction float64

	sheetTop float64
}

func (r *renderSheetPositioner) SetChild(child layout.RenderObject) {
	layout.SetParentOnChild(r.child, nil)
	r.child = layout.AsRenderBox(child)
	layout.SetParentOnChild(r.child, r)
}

func (r *renderSheetPositioner) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderSheetPositioner) PerformLayout() {
	constraints := r.Constraints()
	width, height := constraints.MaxWidth, constraints.MaxHeight
	if math.IsInf(width, 1) || width <= 0 {
		width = constraints.MinWidth
	}
	if math.IsInf(height, 1) || height <= 0 {
		height = constraints.MinHeight
	}
	r.SetSize(graphics.Size{Width: width, Height: height})
	if r.child == nil {
		return
	}

	fraction := r.maxFraction
	if fraction <= 0 || fraction > 1 {
		fraction = 0.9
	}
	r.child.Layout(layout.Constraints{
		MinWidth:  width,
		MaxWidth:  width,
		MinHeight: 0,
		MaxHeight: height * fraction,
	}, true)
	childHeight := r.child.Size().Height
	progress := math.Max(0, math.Min(1, r.progress))
	r.sheetTop = height - childHeight*progress
	r.child.SetParentData(&layout.BoxParentData{Offset: graphics.Offset{Y: r.sheetTop}})
}

func (r *renderSheetPositioner) Paint(ctx *layout.PaintContext) {
	if r.child == nil {
		return
	}
	ctx.PaintChild(r.child, graphics.Offset{Y: r.sheetTop})
}

func (r *renderSheetPositioner) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if r.child == nil || !layout.WithinBounds(position, r.Size()) {
		return false
	}
	if position.Y < r.sheetTop {
		return false
	}
	local := graphics.Offset{X: position.X, Y: position.Y - r.sheetTop}
	if !r.child.HitTest(local, result) {
		return false
	}
	result.Add(r)
	return true
}

// fadeColor scales the alpha of c by t.
func fadeColor(c graphics.Color, t float64) graphics.Color {
	return c.WithAlpha(c.Alpha() * math.Max(0, math.Min(1, t)))
}
