package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubetrainer"
)

// timeLayout has a fixed width so stored times sort as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// storedMove is one element of the moves_json column.
type storedMove struct {
	Move string `json:"move"`
	TsMs int64  `json:"ts_ms"`
}

// StatRepository stores solve statistics per alg set.
type StatRepository struct {
	db *DB
}

// NewStatRepository creates a new stat repository.
func NewStatRepository(db *DB) *StatRepository {
	return &StatRepository{db: db}
}

// AppendStat stores one solve. An empty ID is replaced by a new UUID.
func (r *StatRepository) AppendStat(ctx context.Context, set string, stat cubetrainer.SolveStat) error {
	if stat.ID == "" {
		stat.ID = uuid.New().String()
	}

	moves := make([]storedMove, len(stat.Moves))
	for i, m := range stat.Moves {
		moves[i] = storedMove{Move: m.Move.Notation(), TsMs: m.Time.UnixMilli()}
	}
	movesJSON, err := json.Marshal(moves)
	if err != nil {
		return fmt.Errorf("failed to encode moves: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO solve_stats (stat_id, set_name, name, time_of_solve, moves_json,
			execution_ms, recognition_ms, aufs, ys, mirrored_m, mirrored_s)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, stat.ID, set, stat.Name, stat.TimeOfSolve.UTC().Format(timeLayout), string(movesJSON),
		stat.Execution.Milliseconds(), stat.Recognition.Milliseconds(),
		stat.AUFs, stat.Ys, stat.MirroredOverM, stat.MirroredOverS)
	if err != nil {
		return fmt.Errorf("failed to store solve stat: %w", err)
	}
	return nil
}

// List returns the solves of a set, oldest first.
func (r *StatRepository) List(ctx context.Context, set string) ([]cubetrainer.SolveStat, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT stat_id, name, time_of_solve, moves_json, execution_ms, recognition_ms,
			aufs, ys, mirrored_m, mirrored_s
		FROM solve_stats
		WHERE set_name = ?
		ORDER BY time_of_solve, rowid
	`, set)
	if err != nil {
		return nil, fmt.Errorf("failed to list solve stats: %w", err)
	}
	defer rows.Close()

	var stats []cubetrainer.SolveStat
	for rows.Next() {
		s := cubetrainer.SolveStat{Set: set}
		var timeOfSolve, movesJSON string
		var execMs, recogMs int64
		err := rows.Scan(&s.ID, &s.Name, &timeOfSolve, &movesJSON, &execMs, &recogMs,
			&s.AUFs, &s.Ys, &s.MirroredOverM, &s.MirroredOverS)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve stat: %w", err)
		}
		if s.TimeOfSolve, err = time.Parse(timeLayout, timeOfSolve); err != nil {
			return nil, fmt.Errorf("failed to parse time of stat %s: %w", s.ID, err)
		}
		s.Execution = time.Duration(execMs) * time.Millisecond
		s.Recognition = time.Duration(recogMs) * time.Millisecond
		if s.Moves, err = decodeMoves(movesJSON); err != nil {
			return nil, fmt.Errorf("stat %s: %w", s.ID, err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func decodeMoves(data string) ([]cubetrainer.TimedMove, error) {
	var stored []storedMove
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return nil, fmt.Errorf("failed to decode moves: %w", err)
	}
	moves := make([]cubetrainer.TimedMove, len(stored))
	for i, m := range stored {
		mv, err := cubetrainer.ParseMove(m.Move)
		if err != nil {
			return nil, err
		}
		moves[i] = cubetrainer.TimedMove{Move: mv, Time: time.UnixMilli(m.TsMs).UTC()}
	}
	return moves, nil
}

// Delete removes one solve by ID.
func (r *StatRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM solve_stats WHERE stat_id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete solve stat: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to count deleted solve stats: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: stat %q", ErrNotFound, id)
	}
	return nil
}

// DeleteAll removes every solve of a set and returns how many were removed.
func (r *StatRepository) DeleteAll(ctx context.Context, set string) (int64, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM solve_stats WHERE set_name = ?", set)
	if err != nil {
		return 0, fmt.Errorf("failed to delete solve stats: %w", err)
	}
	return res.RowsAffected()
}

// Sets returns the names of every set with at least one solve.
func (r *StatRepository) Sets(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT set_name FROM solve_stats ORDER BY set_name")
	if err != nil {
		return nil, fmt.Errorf("failed to list stat sets: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan stat set: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
