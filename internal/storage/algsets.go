package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubetrainer"
)

// SetSummary describes a stored alg set without its entries.
type SetSummary struct {
	Name      string
	Entries   int
	CreatedAt time.Time
}

// AlgSetRepository stores alg sets.
type AlgSetRepository struct {
	db *DB
}

// NewAlgSetRepository creates a new alg set repository.
func NewAlgSetRepository(db *DB) *AlgSetRepository {
	return &AlgSetRepository{db: db}
}

// Create stores set. Names are unique.
func (r *AlgSetRepository) Create(ctx context.Context, set cubetrainer.AlgSet) error {
	return r.db.Transaction(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM alg_sets WHERE name = ?", set.Name).Scan(&count); err != nil {
			return fmt.Errorf("failed to check alg set name: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w: %q", ErrDuplicateSet, set.Name)
		}

		id := uuid.New().String()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO alg_sets (set_id, name, created_at)
			VALUES (?, ?, ?)
		`, id, set.Name, time.Now().UTC().Format(time.RFC3339))
		if err != nil {
			return fmt.Errorf("failed to create alg set: %w", err)
		}

		for i, e := range set.Entries {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO alg_entries (set_id, position, name, alg, solved)
				VALUES (?, ?, ?, ?, ?)
			`, id, i, e.Name, e.Alg.String(), int64(e.Target()))
			if err != nil {
				return fmt.Errorf("failed to create alg entry %q: %w", e.Name, err)
			}
		}
		return nil
	})
}

// Get loads a set with its entries in their original order.
func (r *AlgSetRepository) Get(ctx context.Context, name string) (cubetrainer.AlgSet, error) {
	var id string
	err := r.db.QueryRowContext(ctx, "SELECT set_id FROM alg_sets WHERE name = ?", name).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return cubetrainer.AlgSet{}, fmt.Errorf("%w: alg set %q", ErrNotFound, name)
	}
	if err != nil {
		return cubetrainer.AlgSet{}, fmt.Errorf("failed to get alg set: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT name, alg, solved
		FROM alg_entries
		WHERE set_id = ?
		ORDER BY position
	`, id)
	if err != nil {
		return cubetrainer.AlgSet{}, fmt.Errorf("failed to get alg entries: %w", err)
	}
	defer rows.Close()

	set := cubetrainer.AlgSet{Name: name}
	for rows.Next() {
		var e cubetrainer.Entry
		var alg string
		var solved int64
		if err := rows.Scan(&e.Name, &alg, &solved); err != nil {
			return cubetrainer.AlgSet{}, fmt.Errorf("failed to scan alg entry: %w", err)
		}
		if e.Alg, err = cubetrainer.ParseAlg(alg); err != nil {
			return cubetrainer.AlgSet{}, fmt.Errorf("stored entry %q: %w", e.Name, err)
		}
		e.Solved = cubetrainer.SolvedState(solved)
		set.Entries = append(set.Entries, e)
	}
	return set, rows.Err()
}

// List returns every set ordered by name.
func (r *AlgSetRepository) List(ctx context.Context) ([]SetSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT s.name, s.created_at, COUNT(e.position)
		FROM alg_sets s
		LEFT JOIN alg_entries e ON e.set_id = s.set_id
		GROUP BY s.set_id
		ORDER BY s.name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list alg sets: %w", err)
	}
	defer rows.Close()

	var sets []SetSummary
	for rows.Next() {
		var s SetSummary
		var createdAt string
		if err := rows.Scan(&s.Name, &createdAt, &s.Entries); err != nil {
			return nil, fmt.Errorf("failed to scan alg set: %w", err)
		}
		if s.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse creation time of alg set %q: %w", s.Name, err)
		}
		sets = append(sets, s)
	}
	return sets, rows.Err()
}

// Delete removes a set and its entries. Statistics are kept.
func (r *AlgSetRepository) Delete(ctx context.Context, name string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM alg_sets WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("failed to delete alg set: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to count deleted alg sets: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: alg set %q", ErrNotFound, name)
	}
	return nil
}
