package chart

import (
	"math"
	"testing"

	"github.com/tkaraca/duelviz/internal/model"
)

func TestAxisMax(t *testing.T) {
	g := Default()
	players := []model.PlayerDuelRecord{
		{Name: "a", Won: 1, Lost: 2}, // total 3
		{Name: "b", Won: 3, Lost: 4}, // total 7
	}
	if got := g.AxisMax(players); got != 8.5 {
		t.Errorf("expected axis max 8.5 (7 + pad), got %v", got)
	}
}

// With zero rows the axis collapses to the pad alone instead of an
// undefined maximum.
func TestAxisMax_EmptyDataset(t *testing.T) {
	g := Default()
	if got := g.AxisMax(nil); got != g.AxisPad {
		t.Errorf("expected axis max %v for empty dataset, got %v", g.AxisPad, got)
	}
}

func TestCountLabel_SuppressesZero(t *testing.T) {
	if got := CountLabel(0); got != "" {
		t.Errorf("expected empty label for 0, got %q", got)
	}
	if got := CountLabel(12); got != "12" {
		t.Errorf("expected \"12\", got %q", got)
	}
}

// teamWidth + opponentWidth must equal the fixed total exactly for every
// percentage, even when the source percentages do not sum to 100.
func TestLegendWidths_SumInvariant(t *testing.T) {
	const total = 6.0
	for pct := 0; pct <= 100; pct++ {
		team, opp := LegendWidths(pct, total)
		if team+opp != total {
			t.Errorf("pct=%d: %v + %v != %v", pct, team, opp, total)
		}
		if team < 0 || opp < 0 {
			t.Errorf("pct=%d: negative segment width", pct)
		}
	}
}

func TestLegendWidths_Scenario51(t *testing.T) {
	team, opp := LegendWidths(51, 6.0)
	if math.Abs(team-3.06) > 1e-9 {
		t.Errorf("expected team width 3.06, got %v", team)
	}
	if math.Abs(opp-2.94) > 1e-9 {
		t.Errorf("expected opponent width 2.94, got %v", opp)
	}
}

// ---- Panel coordinate mapping ----

func TestPanelMapping(t *testing.T) {
	g := Default()
	// A panel occupying the right two thirds of the canvas horizontally.
	p := g.panel(Rect{Left: 0.33, Bottom: 0.335, Width: 0.66, Height: 0.5}, 0, 10, -0.5, 1.5)

	if got := p.px(0); got != 0.33*float64(g.CanvasWidth) {
		t.Errorf("x origin: expected %v, got %v", 0.33*float64(g.CanvasWidth), got)
	}
	if got := p.px(10); math.Abs(got-0.99*float64(g.CanvasWidth)) > 1e-9 {
		t.Errorf("x max: expected %v, got %v", 0.99*float64(g.CanvasWidth), got)
	}

	// Data y grows upward; pixel y grows downward. ymin maps to the panel's
	// bottom edge, ymax to its top edge.
	bottom := (1 - 0.335) * float64(g.CanvasHeight)
	top := (1 - 0.335 - 0.5) * float64(g.CanvasHeight)
	if got := p.py(-0.5); math.Abs(got-bottom) > 1e-9 {
		t.Errorf("ymin: expected %v, got %v", bottom, got)
	}
	if got := p.py(1.5); math.Abs(got-top) > 1e-9 {
		t.Errorf("ymax: expected %v, got %v", top, got)
	}

	// Row 0 sits below row 1 on screen.
	if p.py(0) <= p.py(1) {
		t.Error("expected row 0 below row 1 in pixel space")
	}
}

func TestDefaultGeometry_CanvasAspect(t *testing.T) {
	g := Default()
	if g.CanvasWidth*3 != g.CanvasHeight*2 {
		t.Errorf("expected 2:3 canvas, got %dx%d", g.CanvasWidth, g.CanvasHeight)
	}
}
