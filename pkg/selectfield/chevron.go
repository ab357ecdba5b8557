package selectfield

import (
	"github.com/go-drift/drift/pkg/core"
	"github.com/go-drift/drift/pkg/graphics"
	"github.com/go-drift/drift/pkg/layout"
)

// Chevron draws the open/closed indicator of the trigger. It points down
// while closed and up while open.
type Chevron struct {
	core.RenderObjectBase
	Open  bool
	Size  float64
	Color graphics.Color
}

func (c Chevron) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderChevron{open: c.Open, size: c.Size, color: c.Color}
	r.SetSelf(r)
	return r
}

func (c Chevron) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderChevron); ok {
		r.open = c.Open
		r.size = c.Size
		r.color = c.Color
		r.MarkNeedsLayout()
		r.MarkNeedsPaint()
	}
}

type renderChevron struct {
	layout.RenderBoxBase
	open  bool
	size  float64
	color graphics.Color
}

func (r *renderChevron) PerformLayout() {
	size := r.size
	if size == 0 {
		size = 10
	}
	r.SetSize(r.Constraints().Constrain(graphics.Size{Width: size, Height: size}))
}

func (r *renderChevron) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	tip, wing := size.Height*0.75, size.Height*0.3
	if r.open {
		tip, wing = wing, tip
	}
	path := graphics.NewPath()
	path.MoveTo(0, wing)
	path.LineTo(size.Width/2, tip)
	path.LineTo(size.Width, wing)
	paint := graphics.DefaultPaint()
	paint.Color = r.color
	paint.Style = graphics.PaintStyleStroke
	paint.StrokeWidth = max(size.Width*0.12, 1.5)
	ctx.Canvas.DrawPath(path, paint)
}

func (r *renderChevron) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	size := r.Size()
	if position.X < 0 || position.Y < 0 || position.X > size.Width || position.Y > size.Height {
		return false
	}
	result.Add(r)
	return true
}
