package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/katalvlaran/oceancruise/cruise"
)

// CruiseSummary is one row of ListCruises.
type CruiseSummary struct {
	Name      string    `json:"name"`
	Stations  int       `json:"stations"`
	Orderings int       `json:"orderings"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SaveTrack stores track under its name, replacing any stations saved
// before. Returns the cruise id.
func (s *Store) SaveTrack(ctx context.Context, track cruise.Track) (int64, error) {
	if err := track.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	ts := now()
	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO cruises (name, created_at, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET updated_at = excluded.updated_at
		RETURNING id`, track.Name, ts, ts).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert cruise: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM stations WHERE cruise_id = ?`, id); err != nil {
		return 0, fmt.Errorf("failed to clear stations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stations (cruise_id, seq, name, lat, lon, observed_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare station insert: %w", err)
	}
	defer stmt.Close()

	for i, st := range track.Stations {
		var at sql.NullString
		if !st.Time.IsZero() {
			at = sql.NullString{String: st.Time.UTC().Format(time.RFC3339Nano), Valid: true}
		}
		if _, err = stmt.ExecContext(ctx, id, i, st.Name, st.Lat, st.Lon, at); err != nil {
			return 0, fmt.Errorf("failed to insert station %d: %w", i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	return id, nil
}

// Track loads the stations of the named cruise in saved order.
func (s *Store) Track(ctx context.Context, name string) (cruise.Track, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, err := s.cruiseID(ctx, s.db, name)
	if err != nil {
		return cruise.Track{}, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT name, lat, lon, observed_at
		FROM stations
		WHERE cruise_id = ?
		ORDER BY seq`, id)
	if err != nil {
		return cruise.Track{}, fmt.Errorf("failed to query stations: %w", err)
	}
	defer rows.Close()

	track := cruise.Track{Name: name, Stations: []cruise.Station{}}
	for rows.Next() {
		var (
			st cruise.Station
			at sql.NullString
		)
		if err := rows.Scan(&st.Name, &st.Lat, &st.Lon, &at); err != nil {
			return cruise.Track{}, fmt.Errorf("failed to scan station: %w", err)
		}
		if at.Valid {
			st.Time = parseTime(at.String)
		}
		track.Stations = append(track.Stations, st)
	}
	if err := rows.Err(); err != nil {
		return cruise.Track{}, fmt.Errorf("error iterating stations: %w", err)
	}

	return track, nil
}

// ListCruises returns every cruise, most recently updated first.
func (s *Store) ListCruises(ctx context.Context) ([]CruiseSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.name,
		       (SELECT COUNT(*) FROM stations st WHERE st.cruise_id = c.id),
		       (SELECT COUNT(*) FROM orderings o WHERE o.cruise_id = c.id),
		       c.updated_at
		FROM cruises c
		ORDER BY c.updated_at DESC, c.name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query cruises: %w", err)
	}
	defer rows.Close()

	out := []CruiseSummary{}
	for rows.Next() {
		var (
			c  CruiseSummary
			at string
		)
		if err := rows.Scan(&c.Name, &c.Stations, &c.Orderings, &at); err != nil {
			return nil, fmt.Errorf("failed to scan cruise: %w", err)
		}
		c.UpdatedAt = parseTime(at)
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cruises: %w", err)
	}

	return out, nil
}

// DeleteTrack removes the cruise with its stations and orderings.
func (s *Store) DeleteTrack(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM cruises WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete cruise: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}

	return nil
}
