// Package sofascore is a minimal client for the public Sofascore match API.
// It exposes the three raw data categories the pipeline needs (match
// metadata, per-player lineup statistics, labeled team statistics) and
// flattens the provider's nested JSON into model.Raw* rows.
package sofascore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tkaraca/duelviz/internal/model"
)

const defaultBase = "https://api.sofascore.com/api/v1"

// defaultUserAgent mimics a browser; the API rejects the Go default.
const defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) duelviz/1.0"

// Client is a Sofascore API client.
type Client struct {
	http      *http.Client
	baseURL   string
	userAgent string
}

// New returns a client with a 15s timeout; override via options.
func New(opts ...Option) *Client {
	c := &Client{
		http:      &http.Client{Timeout: 15 * time.Second},
		baseURL:   defaultBase,
		userAgent: defaultUserAgent,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// getJSON fetches baseURL+path and decodes the body into out. A 404 maps to
// ErrNotFound, other non-2xx statuses to *APIError.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sofascore http: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return &APIError{Status: res.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// ---- Wire DTOs ----

type eventResponse struct {
	Event struct {
		Tournament struct {
			Name string `json:"name"`
		} `json:"tournament"`
		HomeTeam struct {
			Name string `json:"name"`
		} `json:"homeTeam"`
		AwayTeam struct {
			Name string `json:"name"`
		} `json:"awayTeam"`
		HomeScore struct {
			Current int `json:"current"`
		} `json:"homeScore"`
		AwayScore struct {
			Current int `json:"current"`
		} `json:"awayScore"`
		StartTimestamp int64 `json:"startTimestamp"`
	} `json:"event"`
}

type lineupsResponse struct {
	Home teamLineup `json:"home"`
	Away teamLineup `json:"away"`
}

type teamLineup struct {
	Players []lineupPlayer `json:"players"`
}

type lineupPlayer struct {
	Player struct {
		Name     string `json:"name"`
		Position string `json:"position"`
	} `json:"player"`
	Substitute bool `json:"substitute"`
	Statistics *struct {
		MinutesPlayed *int `json:"minutesPlayed"`
		DuelWon       *int `json:"duelWon"`
		DuelLost      *int `json:"duelLost"`
	} `json:"statistics"`
}

type statisticsResponse struct {
	Statistics []struct {
		Period string `json:"period"`
		Groups []struct {
			GroupName       string `json:"groupName"`
			StatisticsItems []struct {
				Name      string  `json:"name"`
				Home      string  `json:"home"`
				Away      string  `json:"away"`
				HomeValue float64 `json:"homeValue"`
				AwayValue float64 `json:"awayValue"`
			} `json:"statisticsItems"`
		} `json:"groups"`
	} `json:"statistics"`
}

// ---- Data categories ----

// MatchInfo fetches match metadata for the given match id.
func (c *Client) MatchInfo(ctx context.Context, matchID int64) (*model.RawMatchInfo, error) {
	var dto eventResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/event/%d", matchID), &dto); err != nil {
		return nil, fmt.Errorf("match metadata: %w", err)
	}
	ev := dto.Event
	return &model.RawMatchInfo{
		HomeTeam:       ev.HomeTeam.Name,
		AwayTeam:       ev.AwayTeam.Name,
		HomeScore:      ev.HomeScore.Current,
		AwayScore:      ev.AwayScore.Current,
		Tournament:     ev.Tournament.Name,
		StartTimestamp: ev.StartTimestamp,
	}, nil
}

// TeamNames returns the (home, away) pair for home/away side resolution.
func (c *Client) TeamNames(ctx context.Context, matchID int64) (string, string, error) {
	info, err := c.MatchInfo(ctx, matchID)
	if err != nil {
		return "", "", err
	}
	return info.HomeTeam, info.AwayTeam, nil
}

// PlayerStats fetches both lineups and flattens them into one row per player,
// tagged with the owning team's name. Players without a statistics block keep
// nil stat fields; the dataset builder decides how to default them.
func (c *Client) PlayerStats(ctx context.Context, matchID int64, homeTeam, awayTeam string) ([]model.RawPlayerRow, error) {
	var dto lineupsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/event/%d/lineups", matchID), &dto); err != nil {
		return nil, fmt.Errorf("player stats: %w", err)
	}
	rows := make([]model.RawPlayerRow, 0, len(dto.Home.Players)+len(dto.Away.Players))
	rows = appendLineup(rows, dto.Home, homeTeam)
	rows = appendLineup(rows, dto.Away, awayTeam)
	return rows, nil
}

func appendLineup(rows []model.RawPlayerRow, lineup teamLineup, teamName string) []model.RawPlayerRow {
	for _, p := range lineup.Players {
		row := model.RawPlayerRow{
			Name:       p.Player.Name,
			Position:   p.Player.Position,
			Substitute: p.Substitute,
			TeamName:   teamName,
		}
		if p.Statistics != nil {
			row.MinutesPlayed = p.Statistics.MinutesPlayed
			row.DuelsWon = p.Statistics.DuelWon
			row.DuelsLost = p.Statistics.DuelLost
		}
		rows = append(rows, row)
	}
	return rows
}

// TeamStats fetches the labeled team-statistics rows across all periods.
func (c *Client) TeamStats(ctx context.Context, matchID int64) ([]model.RawTeamStatRow, error) {
	var dto statisticsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/event/%d/statistics", matchID), &dto); err != nil {
		return nil, fmt.Errorf("team stats: %w", err)
	}
	var rows []model.RawTeamStatRow
	for _, period := range dto.Statistics {
		for _, group := range period.Groups {
			for _, item := range group.StatisticsItems {
				rows = append(rows, model.RawTeamStatRow{
					Period:    period.Period,
					Name:      item.Name,
					Home:      item.Home,
					Away:      item.Away,
					HomeValue: item.HomeValue,
					AwayValue: item.AwayValue,
				})
			}
		}
	}
	return rows, nil
}

// FetchMatch pulls all three data categories and bundles them. Each category
// failure is fatal and names the category (the metadata fetch doubles as the
// team-name lookup, so it runs once).
func (c *Client) FetchMatch(ctx context.Context, matchID int64) (*model.RawMatch, error) {
	info, err := c.MatchInfo(ctx, matchID)
	if err != nil {
		return nil, err
	}
	players, err := c.PlayerStats(ctx, matchID, info.HomeTeam, info.AwayTeam)
	if err != nil {
		return nil, err
	}
	teamStats, err := c.TeamStats(ctx, matchID)
	if err != nil {
		return nil, err
	}
	return &model.RawMatch{
		MatchID:   matchID,
		FetchedAt: time.Now().UTC(),
		Info:      *info,
		Players:   players,
		TeamStats: teamStats,
	}, nil
}
