package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/katalvlaran/oceancruise/route"
)

// OrderingRun is one recorded engine result for a cruise.
type OrderingRun struct {
	ID          int64             `json:"id"`
	Orientation route.Orientation `json:"orientation"`
	Degenerate  bool              `json:"degenerate"`
	Cost        float64           `json:"cost"`
	LengthKm    float64           `json:"length_km"`
	Permutation []int             `json:"permutation"`
	// Input lists the station names as they were before the run;
	// Permutation[i] indexes this list, not the stored track.
	Input       []string          `json:"input"`
	CreatedAt   time.Time         `json:"created_at"`
}

// RecordOrdering appends an ordering run to the named cruise. input holds
// the station names in the order the engine received them, so the run stays
// readable after SaveTrack has rewritten the stations in sorted order.
func (s *Store) RecordOrdering(ctx context.Context, name string, input []string, res route.Result, lengthKm float64) (int64, error) {
	if len(input) != len(res.Order) {
		return 0, fmt.Errorf("%d input stations for a %d-station permutation: %w",
			len(input), len(res.Order), ErrInputMismatch)
	}
	perm, err := json.Marshal(res.Order)
	if err != nil {
		return 0, fmt.Errorf("failed to encode permutation: %w", err)
	}
	names, err := json.Marshal(input)
	if err != nil {
		return 0, fmt.Errorf("failed to encode input stations: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.cruiseID(ctx, s.db, name)
	if err != nil {
		return 0, err
	}

	out, err := s.db.ExecContext(ctx, `
		INSERT INTO orderings (cruise_id, orientation, degenerate, cost, length_km, permutation, input_stations, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, res.Orientation.String(), res.Degenerate, res.Cost, lengthKm, string(perm), string(names), now())
	if err != nil {
		return 0, fmt.Errorf("failed to insert ordering: %w", err)
	}

	return out.LastInsertId()
}

// Orderings lists the runs of the named cruise, newest first.
func (s *Store) Orderings(ctx context.Context, name string) ([]OrderingRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, err := s.cruiseID(ctx, s.db, name)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, orientation, degenerate, cost, length_km, permutation, input_stations, created_at
		FROM orderings
		WHERE cruise_id = ?
		ORDER BY id DESC`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query orderings: %w", err)
	}
	defer rows.Close()

	out := []OrderingRun{}
	for rows.Next() {
		var (
			r           OrderingRun
			orientation string
			perm        string
			names       string
			at          string
		)
		if err := rows.Scan(&r.ID, &orientation, &r.Degenerate, &r.Cost, &r.LengthKm, &perm, &names, &at); err != nil {
			return nil, fmt.Errorf("failed to scan ordering: %w", err)
		}
		if r.Orientation, err = route.ParseOrientation(orientation); err != nil {
			return nil, fmt.Errorf("ordering %d: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(perm), &r.Permutation); err != nil {
			return nil, fmt.Errorf("ordering %d: failed to decode permutation: %w", r.ID, err)
		}
		if err := json.Unmarshal([]byte(names), &r.Input); err != nil {
			return nil, fmt.Errorf("ordering %d: failed to decode input stations: %w", r.ID, err)
		}
		r.CreatedAt = parseTime(at)
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orderings: %w", err)
	}

	return out, nil
}
