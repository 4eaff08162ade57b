package locale

import (
	"testing"
	"time"
)

func TestFormatDate(t *testing.T) {
	loc := Turkish()
	ts := time.Date(2025, time.August, 9, 21, 45, 0, 0, time.Local).Unix()
	got, err := loc.FormatDate(ts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "9 Ağustos 2025" {
		t.Errorf("expected '9 Ağustos 2025', got %q", got)
	}
}

// A month missing from the table is a hard error, never passed through.
func TestFormatDate_MissingMonth(t *testing.T) {
	loc := Turkish()
	delete(loc.Months, time.March)
	ts := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.Local).Unix()
	if _, err := loc.FormatDate(ts); err == nil {
		t.Fatal("expected error for month missing from table")
	}
}

func TestTournamentName_FallsBackToInput(t *testing.T) {
	loc := Turkish()
	if got := loc.TournamentName("Turkish Cup"); got != "Ziraat Türkiye Kupası" {
		t.Errorf("expected translation, got %q", got)
	}
	if got := loc.TournamentName("Copa del Rey"); got != "Copa del Rey" {
		t.Errorf("expected untranslated fallback, got %q", got)
	}
}

func TestSeason_JulyBoundary(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2025, time.August, 1, 0, 0, 0, 0, time.Local), "2025/2026"},
		{time.Date(2026, time.May, 1, 0, 0, 0, 0, time.Local), "2025/2026"},
		{time.Date(2026, time.July, 1, 0, 0, 0, 0, time.Local), "2026/2027"},
		{time.Date(2026, time.June, 30, 0, 0, 0, 0, time.Local), "2025/2026"},
	}
	for _, c := range cases {
		if got := Season(c.date.Unix()); got != c.want {
			t.Errorf("Season(%s) = %q, want %q", c.date.Format("2006-01-02"), got, c.want)
		}
	}
}
