// Package storage caches fetched raw match payloads in SQLite so that
// rendering, tables and listing work offline after a single fetch.
package storage

import (
	"database/sql"
	_ "embed"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tkaraca/duelviz/internal/model"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps a sql.DB for the match cache.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and applies
// the schema.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// PutMatch stores (or replaces) a fetched match.
func (db *DB) PutMatch(m *model.RawMatch) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode match %d: %w", m.MatchID, err)
	}
	_, err = db.conn.Exec(`
		INSERT OR REPLACE INTO matches
			(match_id, fetched_at, home_team, away_team, tournament, start_timestamp, raw_json)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.MatchID, m.FetchedAt.Format(time.RFC3339),
		m.Info.HomeTeam, m.Info.AwayTeam, m.Info.Tournament, m.Info.StartTimestamp,
		string(raw))
	if err != nil {
		return fmt.Errorf("insert match %d: %w", m.MatchID, err)
	}
	return nil
}

// GetMatch loads a cached match, or (nil, nil) when it is not cached.
func (db *DB) GetMatch(matchID int64) (*model.RawMatch, error) {
	var raw string
	err := db.conn.QueryRow(`SELECT raw_json FROM matches WHERE match_id = ?`, matchID).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query match %d: %w", matchID, err)
	}
	var m model.RawMatch
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return nil, fmt.Errorf("decode match %d: %w", matchID, err)
	}
	return &m, nil
}

// HasMatch reports whether a match is cached.
func (db *DB) HasMatch(matchID int64) (bool, error) {
	var one int
	err := db.conn.QueryRow(`SELECT 1 FROM matches WHERE match_id = ?`, matchID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check match %d: %w", matchID, err)
	}
	return true, nil
}

// CachedMatch is one row of the list view.
type CachedMatch struct {
	MatchID        int64
	FetchedAt      string
	HomeTeam       string
	AwayTeam       string
	Tournament     string
	StartTimestamp int64
}

// ListMatches returns all cached matches, newest kickoff first.
func (db *DB) ListMatches() ([]CachedMatch, error) {
	rows, err := db.conn.Query(`
		SELECT match_id, fetched_at, home_team, away_team, tournament, start_timestamp
		FROM matches ORDER BY start_timestamp DESC`)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	defer rows.Close()

	var out []CachedMatch
	for rows.Next() {
		var m CachedMatch
		if err := rows.Scan(&m.MatchID, &m.FetchedAt, &m.HomeTeam, &m.AwayTeam, &m.Tournament, &m.StartTimestamp); err != nil {
			return nil, fmt.Errorf("scan match: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// DeleteMatch evicts one match from the cache; reports whether it existed.
func (db *DB) DeleteMatch(matchID int64) (bool, error) {
	res, err := db.conn.Exec(`DELETE FROM matches WHERE match_id = ?`, matchID)
	if err != nil {
		return false, fmt.Errorf("delete match %d: %w", matchID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
