package chart

// Panel colors, shared by the chart and legend segments.
const (
	colorBackground = "#151410"
	colorWon        = "#65C2A5"
	colorLost       = "#CC444B"
	colorText       = "#FFFFFF"
)

// Rect is a panel's placement as fractions of the canvas, matching the
// (left, bottom, width, height) convention with the origin at the bottom
// left. Panels are anchored here and never move with content.
type Rect struct {
	Left, Bottom, Width, Height float64
}

// Geometry is the full fixed layout of the infographic. Only the chart
// panel's horizontal data axis depends on the data (see AxisMax); everything
// else is a constant of this record.
type Geometry struct {
	CanvasWidth  int
	CanvasHeight int
	DPI          float64 // converts font points to pixels

	Title       Rect
	Chart       Rect
	Players     Rect
	LegendTitle Rect
	Legend      Rect

	BarHeight     float64 // stacked-bar thickness in row units
	AxisPad       float64 // chart x headroom past the longest bar
	TotalLabelPad float64 // gap between bar end and its total label

	LegendTotalWidth float64 // fixed width of the percentage-split bar
	LegendAxisMax    float64 // legend x range; leaves room for the total label
}

// Default returns the standard 2:3 portrait layout.
func Default() Geometry {
	return Geometry{
		CanvasWidth:  1600,
		CanvasHeight: 2400,
		DPI:          200,

		Title:       Rect{Left: 0, Bottom: 0.83, Width: 0.13, Height: 0.06},
		Chart:       Rect{Left: 0.33, Bottom: 0.335, Width: 0.66, Height: 0.5},
		Players:     Rect{Left: 0, Bottom: 0.335, Width: 0.20, Height: 0.5},
		LegendTitle: Rect{Left: 0.33, Bottom: 0.315, Width: 0.62, Height: 0.03},
		Legend:      Rect{Left: 0.33, Bottom: 0.28, Width: 0.62, Height: 0.04},

		BarHeight:     0.8,
		AxisPad:       1.5,
		TotalLabelPad: 0.25,

		LegendTotalWidth: 6.0,
		LegendAxisMax:    6.6,
	}
}

// panel maps data coordinates inside a Rect to canvas pixels (top-left
// origin, y growing downward, the inverse of the data space).
type panel struct {
	x, y, w, h             float64
	xmin, xmax, ymin, ymax float64
}

func (g Geometry) panel(r Rect, xmin, xmax, ymin, ymax float64) panel {
	cw, ch := float64(g.CanvasWidth), float64(g.CanvasHeight)
	return panel{
		x: r.Left * cw,
		y: (1 - r.Bottom - r.Height) * ch,
		w: r.Width * cw,
		h: r.Height * ch,

		xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax,
	}
}

func (p panel) px(x float64) float64 {
	return p.x + (x-p.xmin)/(p.xmax-p.xmin)*p.w
}

func (p panel) py(y float64) float64 {
	return p.y + p.h - (y-p.ymin)/(p.ymax-p.ymin)*p.h
}

func (p panel) pw(dx float64) float64 { return dx / (p.xmax - p.xmin) * p.w }

func (p panel) ph(dy float64) float64 { return dy / (p.ymax - p.ymin) * p.h }
