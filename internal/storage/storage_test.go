package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubetrainer"
)

func openTest(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func pllSet() cubetrainer.AlgSet {
	return cubetrainer.AlgSet{
		Name: "PLL",
		Entries: []cubetrainer.Entry{
			{Name: "T", Alg: cubetrainer.TPerm, Solved: cubetrainer.Full},
			{Name: "H", Alg: cubetrainer.MustParseAlg("M2 U M2 U2 M2 U M2"), Solved: cubetrainer.Full},
			{Name: "Insert", Alg: cubetrainer.MustParseAlg("R U R'"), Solved: cubetrainer.Cross | cubetrainer.F2LFR},
		},
	}
}

func TestOpen_Migrates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cubetrainer.db")
	db, err := Open(path)
	require.NoError(t, err)
	v, err := db.Version()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, path, db.Path())
	require.NoError(t, db.Close())

	// Reopening must not reapply the migration.
	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()
	v, err = db.Version()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestAlgSetRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewAlgSetRepository(openTest(t))

	require.NoError(t, repo.Create(ctx, pllSet()))

	got, err := repo.Get(ctx, "PLL")
	require.NoError(t, err)
	assert.Equal(t, pllSet(), got)

	err = repo.Create(ctx, cubetrainer.AlgSet{Name: "PLL"})
	assert.ErrorIs(t, err, ErrDuplicateSet)

	require.NoError(t, repo.Create(ctx, cubetrainer.AlgSet{Name: "Advanced F2L"}))
	sets, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sets, 2)
	assert.Equal(t, "Advanced F2L", sets[0].Name)
	assert.Equal(t, 0, sets[0].Entries)
	assert.Equal(t, "PLL", sets[1].Name)
	assert.Equal(t, 3, sets[1].Entries)

	require.NoError(t, repo.Delete(ctx, "PLL"))
	_, err = repo.Get(ctx, "PLL")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "PLL"), ErrNotFound)
}

func stat(name string, at time.Time, exec time.Duration) cubetrainer.SolveStat {
	return cubetrainer.SolveStat{
		Name:        name,
		TimeOfSolve: at,
		Moves: []cubetrainer.TimedMove{
			{Move: cubetrainer.MustParseMove("R"), Time: at.Add(-exec)},
			{Move: cubetrainer.MustParseMove("U'"), Time: at},
		},
		Execution:     exec,
		Recognition:   700 * time.Millisecond,
		AUFs:          3,
		Ys:            1,
		MirroredOverM: true,
	}
}

func TestStatRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStatRepository(openTest(t))
	base := time.Date(2024, 5, 2, 9, 30, 0, 0, time.UTC)

	first := stat("T", base, 1200*time.Millisecond)
	first.ID = "fixed-id"
	require.NoError(t, repo.AppendStat(ctx, "PLL", first))
	require.NoError(t, repo.AppendStat(ctx, "PLL", stat("H", base.Add(500*time.Millisecond), 900*time.Millisecond)))
	require.NoError(t, repo.AppendStat(ctx, "OLL", stat("27", base, 800*time.Millisecond)))

	stats, err := repo.List(ctx, "PLL")
	require.NoError(t, err)
	require.Len(t, stats, 2)

	got := stats[0]
	assert.Equal(t, "fixed-id", got.ID)
	assert.Equal(t, "PLL", got.Set)
	assert.Equal(t, "T", got.Name)
	assert.True(t, got.TimeOfSolve.Equal(base))
	assert.Equal(t, 1200*time.Millisecond, got.Execution)
	assert.Equal(t, 700*time.Millisecond, got.Recognition)
	assert.Equal(t, 3, got.AUFs)
	assert.Equal(t, 1, got.Ys)
	assert.True(t, got.MirroredOverM)
	assert.False(t, got.MirroredOverS)
	assert.Equal(t, "R U'", got.MoveAlg().String())
	assert.True(t, got.Moves[0].Time.Equal(base.Add(-1200*time.Millisecond)))

	assert.Equal(t, "H", stats[1].Name)
	assert.NotEmpty(t, stats[1].ID)

	names, err := repo.Sets(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"OLL", "PLL"}, names)

	require.NoError(t, repo.Delete(ctx, "fixed-id"))
	assert.ErrorIs(t, repo.Delete(ctx, "fixed-id"), ErrNotFound)

	n, err := repo.DeleteAll(ctx, "PLL")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	stats, err = repo.List(ctx, "PLL")
	require.NoError(t, err)
	assert.Empty(t, stats)

	stats, err = repo.List(ctx, "OLL")
	require.NoError(t, err)
	assert.Len(t, stats, 1)
}

func TestList_RejectsCorruptTimes(t *testing.T) {
	ctx := context.Background()
	db := openTest(t)
	sets := NewAlgSetRepository(db)
	stats := NewStatRepository(db)

	require.NoError(t, sets.Create(ctx, pllSet()))
	require.NoError(t, stats.AppendStat(ctx, "PLL", cubetrainer.SolveStat{Name: "T", TimeOfSolve: time.Now()}))

	_, err := db.ExecContext(ctx, "UPDATE alg_sets SET created_at = 'yesterday'")
	require.NoError(t, err)
	_, err = sets.List(ctx)
	assert.ErrorContains(t, err, "failed to parse creation time")

	_, err = db.ExecContext(ctx, "UPDATE solve_stats SET time_of_solve = 'noon'")
	require.NoError(t, err)
	_, err = stats.List(ctx, "PLL")
	assert.ErrorContains(t, err, "failed to parse time of stat")
}
