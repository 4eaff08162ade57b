// Package chart renders the duel dataset as a fixed-layout stacked-bar
// infographic: a title band, a player-name column, one stacked bar per
// player, and a percentage-split legend bar. All placement comes from a
// Geometry record; see geometry.go.
package chart

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"

	"github.com/tkaraca/duelviz/internal/locale"
	"github.com/tkaraca/duelviz/internal/model"
)

// Renderer draws duel infographics. Fonts are embedded Go fonts so rendering
// needs nothing from the host filesystem.
type Renderer struct {
	geom Geometry
	loc  *locale.Table

	titleFace    font.Face
	subtitleFace font.Face
	labelFace    font.Face // bar counts, legend labels, totals
	nameFace     font.Face
	minutesFace  font.Face
}

// NewRenderer builds a renderer for the given geometry and locale table.
func NewRenderer(geom Geometry, loc *locale.Table) (*Renderer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}

	face := func(f *sfnt.Font, points float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{
			Size:    points * geom.DPI / 72,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	r := &Renderer{geom: geom, loc: loc}
	for _, f := range []struct {
		dst    *font.Face
		src    *sfnt.Font
		points float64
	}{
		{&r.titleFace, bold, 20},
		{&r.subtitleFace, regular, 12},
		{&r.labelFace, bold, 12},
		{&r.nameFace, bold, 11},
		{&r.minutesFace, regular, 9},
	} {
		if *f.dst, err = face(f.src, f.points); err != nil {
			return nil, fmt.Errorf("build font face: %w", err)
		}
	}
	return r, nil
}

// Render draws the complete infographic and writes it to outputPath as PNG.
// An empty player slice renders a valid image with empty chart and player
// panels. On an encode failure no partial artifact is left behind.
func (r *Renderer) Render(players []model.PlayerDuelRecord, match model.MatchSummary, team model.TeamDuelSummary, outputPath string) error {
	dc := gg.NewContext(r.geom.CanvasWidth, r.geom.CanvasHeight)
	dc.SetHexColor(colorBackground)
	dc.Clear()

	r.drawTitle(dc, match)
	r.drawChart(dc, players)
	r.drawPlayers(dc, players)
	r.drawLegendTitle(dc)
	r.drawLegend(dc, team)

	return writePNG(dc.Image(), outputPath)
}

func (r *Renderer) drawTitle(dc *gg.Context, match model.MatchSummary) {
	p := r.geom.panel(r.geom.Title, 0, 1, 0, 1)
	dc.SetHexColor(colorText)

	dc.SetFontFace(r.titleFace)
	dc.DrawStringAnchored(r.loc.Title, p.px(0.02), p.py(0.65), 0, 0.5)

	dc.SetFontFace(r.subtitleFace)
	dc.DrawStringAnchored(match.Subtitle(), p.px(0.02), p.py(0.28), 0, 0.5)
}

// rowRange is the shared y-axis of the chart and player panels: row centers
// sit at 0..n-1 with half a row of margin on each end. With zero rows the
// range collapses to a unit span that nothing draws into.
func rowRange(n int) (ymin, ymax float64) {
	if n == 0 {
		return -0.5, 0.5
	}
	return -0.5, float64(n) - 0.5
}

func (r *Renderer) drawChart(dc *gg.Context, players []model.PlayerDuelRecord) {
	ymin, ymax := rowRange(len(players))
	p := r.geom.panel(r.geom.Chart, 0, r.geom.AxisMax(players), ymin, ymax)

	barH := p.ph(r.geom.BarHeight)
	for i, rec := range players {
		y := float64(i)
		top := p.py(y + r.geom.BarHeight/2)

		// Won segment from zero, lost segment stacked after it.
		dc.SetHexColor(colorWon)
		dc.DrawRectangle(p.px(0), top, p.pw(float64(rec.Won)), barH)
		dc.Fill()
		dc.SetHexColor(colorLost)
		dc.DrawRectangle(p.px(float64(rec.Won)), top, p.pw(float64(rec.Lost)), barH)
		dc.Fill()

		dc.SetHexColor(colorText)
		dc.SetFontFace(r.labelFace)
		if lbl := CountLabel(rec.Won); lbl != "" {
			dc.DrawStringAnchored(lbl, p.px(float64(rec.Won)/2), p.py(y), 0.5, 0.5)
		}
		if lbl := CountLabel(rec.Lost); lbl != "" {
			dc.DrawStringAnchored(lbl, p.px(float64(rec.Won)+float64(rec.Lost)/2), p.py(y), 0.5, 0.5)
		}
		dc.DrawStringAnchored(strconv.Itoa(rec.Total()),
			p.px(float64(rec.Total())+r.geom.TotalLabelPad), p.py(y), 0, 0.5)
	}
}

func (r *Renderer) drawPlayers(dc *gg.Context, players []model.PlayerDuelRecord) {
	ymin, ymax := rowRange(len(players))
	p := r.geom.panel(r.geom.Players, 0, 1, ymin, ymax)

	dc.SetHexColor(colorText)
	for i, rec := range players {
		y := float64(i)
		dc.SetFontFace(r.nameFace)
		dc.DrawStringAnchored(rec.Name, p.px(0.02), p.py(y), 0, 0.5)
		dc.SetFontFace(r.minutesFace)
		dc.DrawStringAnchored(fmt.Sprintf("%d %s", rec.Minutes, r.loc.MinutesWord),
			p.px(0.02), p.py(y-0.30), 0, 0.5)
	}
}

func (r *Renderer) drawLegendTitle(dc *gg.Context) {
	p := r.geom.panel(r.geom.LegendTitle, 0, 1, 0, 1)
	dc.SetHexColor(colorText)
	dc.SetFontFace(r.subtitleFace)
	dc.DrawStringAnchored(r.loc.LegendTitle, p.px(0), p.py(0.55), 0, 0.5)
}

func (r *Renderer) drawLegend(dc *gg.Context, team model.TeamDuelSummary) {
	p := r.geom.panel(r.geom.Legend, 0, r.geom.LegendAxisMax, 0, 2)

	teamW, oppW := LegendWidths(team.TeamPct, r.geom.LegendTotalWidth)
	barH := p.ph(r.geom.BarHeight)
	top := p.py(1 + r.geom.BarHeight/2)

	dc.SetHexColor(colorWon)
	dc.DrawRectangle(p.px(0), top, p.pw(teamW), barH)
	dc.Fill()
	dc.SetHexColor(colorLost)
	dc.DrawRectangle(p.px(teamW), top, p.pw(oppW), barH)
	dc.Fill()

	dc.SetHexColor(colorText)
	dc.SetFontFace(r.labelFace)
	dc.DrawStringAnchored(legendLabel(team.TeamPct, team.TeamName, team.TeamWon),
		p.px(teamW/2), p.py(1), 0.5, 0.5)
	dc.DrawStringAnchored(legendLabel(team.OpponentPct, team.OpponentName, team.OpponentWon),
		p.px(teamW+oppW/2), p.py(1), 0.5, 0.5)
	dc.DrawStringAnchored(strconv.Itoa(team.Total()),
		p.px(r.geom.LegendTotalWidth+0.1), p.py(1), 0, 0.5)
}

func legendLabel(pct int, name string, wins int) string {
	return fmt.Sprintf("%d%% %s - (%d)", pct, name, wins)
}

// writePNG encodes img to path, removing the file again if encoding fails so
// a broken artifact never survives the invocation.
func writePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
