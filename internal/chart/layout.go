package chart

import (
	"strconv"

	"github.com/tkaraca/duelviz/internal/model"
)

// AxisMax returns the chart panel's x-axis upper bound: the longest bar plus
// a fixed pad so the total label never clips. With zero rows there is no
// maximum to take; the pad alone keeps the axis well-formed so an empty
// panel still renders.
func (g Geometry) AxisMax(players []model.PlayerDuelRecord) float64 {
	maxTotal := 0
	for _, p := range players {
		if t := p.Total(); t > maxTotal {
			maxTotal = t
		}
	}
	return float64(maxTotal) + g.AxisPad
}

// CountLabel formats a segment's centered count label. Zero-count segments
// get an empty label instead of a cluttering "0".
func CountLabel(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

// LegendWidths splits the fixed legend bar by the team's win percentage.
// The opponent width is the structural remainder, not opponentPct: the two
// always sum to total exactly even when the source percentages do not sum
// to 100.
func LegendWidths(teamPct int, total float64) (team, opponent float64) {
	team = float64(teamPct) / 100 * total
	return team, total - team
}
