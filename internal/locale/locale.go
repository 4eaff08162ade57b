// Package locale holds the static lookup tables used to localize match
// metadata and chart strings. Tables are immutable after construction and
// swappable without touching the dataset builder or the chart engine.
package locale

import (
	"fmt"
	"time"
)

// Table is one language's lookup data.
type Table struct {
	// Months maps time.Month to the localized month name. A month missing
	// from the table is a hard error when formatting, never passed through.
	Months map[time.Month]string
	// Tournaments maps the provider's competition name to a localized one.
	// Names without an entry keep the provider spelling.
	Tournaments map[string]string

	// Chart strings.
	Title       string // infographic headline
	LegendTitle string // caption above the percentage-split bar
	MinutesWord string // suffix of the "{minutes} ..." line per player
}

// Turkish returns the default Turkish table.
func Turkish() *Table {
	return &Table{
		Months: map[time.Month]string{
			time.January:   "Ocak",
			time.February:  "Şubat",
			time.March:     "Mart",
			time.April:     "Nisan",
			time.May:       "Mayıs",
			time.June:      "Haziran",
			time.July:      "Temmuz",
			time.August:    "Ağustos",
			time.September: "Eylül",
			time.October:   "Ekim",
			time.November:  "Kasım",
			time.December:  "Aralık",
		},
		Tournaments: map[string]string{
			"UEFA Champions League": "Şampiyonlar Ligi",
			"Süper Lig":             "Süper Lig",
			"Turkish Cup":           "Ziraat Türkiye Kupası",
			"Turkish Super Cup":     "Süper Kupa",
		},
		Title:       "İkili Mücadeleler",
		LegendTitle: "İkili Mücadele Sayıları ve Kazanım Oranları",
		MinutesWord: "dakika",
	}
}

// FormatDate renders a kickoff timestamp (Unix seconds) as "2 Kasım 2025".
func (t *Table) FormatDate(ts int64) (string, error) {
	d := time.Unix(ts, 0)
	month, ok := t.Months[d.Month()]
	if !ok {
		return "", fmt.Errorf("no month name for %s", d.Month())
	}
	return fmt.Sprintf("%d %s %d", d.Day(), month, d.Year()), nil
}

// TournamentName translates a competition name, falling back to the input.
func (t *Table) TournamentName(name string) string {
	if tr, ok := t.Tournaments[name]; ok {
		return tr
	}
	return name
}

// Season derives the "2025/2026" style season label from a kickoff
// timestamp. European club seasons roll over in July.
func Season(ts int64) string {
	d := time.Unix(ts, 0)
	year := d.Year()
	if d.Month() >= time.July {
		return fmt.Sprintf("%d/%d", year, year+1)
	}
	return fmt.Sprintf("%d/%d", year-1, year)
}
