package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, PlaylistOrdered, s.PlaylistMode)
	assert.Equal(t, LoopAll, s.LoopMode)
	assert.False(t, s.RandomAUF)
	assert.False(t, s.UseMaskings)
	assert.Empty(t, s.FirstRotation)
	assert.NoError(t, s.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Settings)
		wantErr bool
	}{
		{"default", func(*Settings) {}, false},
		{"shuffle", func(s *Settings) { s.PlaylistMode = PlaylistShuffle }, false},
		{"no loop", func(s *Settings) { s.LoopMode = LoopNone }, false},
		{"rotation", func(s *Settings) { s.FirstRotation = "x2"; s.RandomRotations1 = "y" }, false},
		{"bad playlist", func(s *Settings) { s.PlaylistMode = "sorted" }, true},
		{"bad loop", func(s *Settings) { s.LoopMode = "forever" }, true},
		{"face turn as rotation", func(s *Settings) { s.FirstRotation = "R" }, true},
		{"garbage rotation", func(s *Settings) { s.RandomRotations1 = "yy" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.modify(&s)
			err := s.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidValue)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCycle(t *testing.T) {
	s := Default()
	var seen []PlaylistMode
	for i := 0; i < 3; i++ {
		var err error
		s, err = s.Cycle(FieldPlaylistMode)
		require.NoError(t, err)
		seen = append(seen, s.PlaylistMode)
	}
	assert.Equal(t, []PlaylistMode{PlaylistShuffle, PlaylistRandom, PlaylistOrdered}, seen)

	s, err := s.Cycle(FieldLoopMode)
	require.NoError(t, err)
	assert.Equal(t, LoopOne, s.LoopMode)
	s, err = s.Cycle(FieldLoopMode)
	require.NoError(t, err)
	assert.Equal(t, LoopNone, s.LoopMode)

	_, err = s.Cycle(FieldRandomAUF)
	assert.ErrorIs(t, err, ErrNotCyclable)
}

func TestSetAndGet(t *testing.T) {
	s, err := Default().Set(FieldRandomAUF, "true")
	require.NoError(t, err)
	assert.True(t, s.RandomAUF)

	s, err = s.Set(FieldLoopMode, "no loop")
	require.NoError(t, err)
	v, err := s.Get(FieldLoopMode)
	require.NoError(t, err)
	assert.Equal(t, "no loop", v)

	_, err = s.Set(FieldUseMaskings, "maybe")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = s.Set(FieldFirstRotation, "U")
	assert.ErrorIs(t, err, ErrInvalidValue)

	_, err = s.Set(Field("colour"), "x")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestParseField(t *testing.T) {
	f, err := ParseField("RANDOMauf")
	require.NoError(t, err)
	assert.Equal(t, FieldRandomAUF, f)

	_, err = ParseField("speed")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestDiff(t *testing.T) {
	a := Default()
	b := a
	assert.Empty(t, Diff(a, b))

	b.RandomYs = true
	b.RandomRotations1 = "y"
	assert.Equal(t, []Field{FieldRandomYs, FieldRandomRotations1}, Diff(a, b))
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), s)

	s.MirrorAcrossM = true
	s.RandomizeMirrorAcrossM = true
	s.FirstRotation = "z2"
	s.LoopMode = LoopOne
	require.NoError(t, Save(path, s))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("randomAUF: true\n"), 0644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.True(t, s.RandomAUF)
	assert.Equal(t, PlaylistOrdered, s.PlaylistMode)
	assert.Equal(t, LoopAll, s.LoopMode)
}

func TestLoad_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("playlistMode: sideways\n"), 0644))

	s, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Equal(t, Default(), s)
}

func TestSave_RejectsInvalid(t *testing.T) {
	s := Default()
	s.LoopMode = "sometimes"
	assert.Error(t, Save(filepath.Join(t.TempDir(), "settings.yaml"), s))
}

func TestWatcher_ReportsChangedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, Save(path, Default()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := NewWatcher(path, Default(), nil)
	w.debounce = 10 * time.Millisecond
	out := make(chan Change, 1)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, out) }()

	next := Default()
	next.RandomAUF = true
	require.Eventually(t, func() bool {
		// Rewrite until the watcher has picked the change up; the first
		// write can land before the watch is registered.
		_ = Save(path, next)
		select {
		case c := <-out:
			assert.Equal(t, []Field{FieldRandomAUF}, c.Fields)
			assert.True(t, c.Settings.RandomAUF)
			return true
		default:
			return false
		}
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestNewValidator_RegistersRotation(t *testing.T) {
	v, err := newValidator()
	require.NoError(t, err)
	assert.NoError(t, v.Var("y'", "rotation"))
	assert.Error(t, v.Var("R", "rotation"))
}
