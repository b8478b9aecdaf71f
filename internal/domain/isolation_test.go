package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/mutforge/internal/adapter"
	adaptermocks "gooze.dev/pkg/mutforge/internal/adapter/mocks"
	m "gooze.dev/pkg/mutforge/internal/model"
)

func TestIsolation_Allocate(t *testing.T) {
	root := t.TempDir()
	iso := NewIsolation(adapter.NewLocalSourceFSAdapter(), adaptermocks.NewMockProcessReaper(t), IsolationConfig{Root: m.Path(root)})

	c := m.Combination{ID: "mutant_3", Identity: m.Identity{Project: "Math", Bug: "12"}}

	first := iso.Allocate(c)
	second := iso.Allocate(c)

	assert.Equal(t, "mutant_3", first.CombinationID)
	assert.NotEqual(t, first.Path, second.Path)
	assert.Equal(t, root, filepath.Dir(string(first.Path)))

	name := filepath.Base(string(first.Path))
	assert.True(t, strings.HasPrefix(name, "temp_mutant_Math_12_mutant_3_"), name)
	assert.Len(t, strings.TrimPrefix(name, "temp_mutant_Math_12_mutant_3_"), 32)
}

func TestIsolation_Allocate_SanitizesNames(t *testing.T) {
	iso := NewIsolation(adapter.NewLocalSourceFSAdapter(), adaptermocks.NewMockProcessReaper(t), IsolationConfig{Root: "ws"})

	ws := iso.Allocate(m.Combination{ID: "a/b c", Identity: m.Identity{Project: "Math", Bug: "1"}})

	assert.Equal(t, "ws", filepath.Dir(string(ws.Path)))
	assert.Contains(t, string(ws.Path), "a_b_c")
}

func TestIsolation_Clone(t *testing.T) {
	src := t.TempDir()
	touch(t, src, "src/org/A.java")
	touch(t, src, ".git/HEAD")
	touch(t, src, MutationLogFileName)
	touch(t, src, "dist.tar.gz")

	root := filepath.Join(t.TempDir(), "work")
	iso := NewIsolation(adapter.NewLocalSourceFSAdapter(), adaptermocks.NewMockProcessReaper(t), IsolationConfig{Root: m.Path(root)})
	ws := iso.Allocate(m.Combination{ID: "mutant_1", Identity: m.Identity{Project: "Lang", Bug: "1"}})

	// stale content from an earlier attempt
	touch(t, string(ws.Path), "stale.txt")

	require.NoError(t, iso.Clone(context.Background(), m.Path(src), ws.Path))

	assert.FileExists(t, filepath.Join(string(ws.Path), "src", "org", "A.java"))
	assert.NoFileExists(t, filepath.Join(string(ws.Path), "stale.txt"))
	assert.NoFileExists(t, filepath.Join(string(ws.Path), MutationLogFileName))
	assert.NoFileExists(t, filepath.Join(string(ws.Path), "dist.tar.gz"))
	assert.NoDirExists(t, filepath.Join(string(ws.Path), ".git"))
}

func TestIsolation_Clone_MissingSource(t *testing.T) {
	iso := NewIsolation(adapter.NewLocalSourceFSAdapter(), adaptermocks.NewMockProcessReaper(t), IsolationConfig{Root: m.Path(t.TempDir())})

	err := iso.Clone(context.Background(), m.Path(filepath.Join(t.TempDir(), "absent")), m.Path(filepath.Join(t.TempDir(), "dst")))
	require.Error(t, err)
}

func TestIsolation_Reclaim(t *testing.T) {
	t.Run("sweeps then removes", func(t *testing.T) {
		reaper := adaptermocks.NewMockProcessReaper(t)
		iso := NewIsolation(adapter.NewLocalSourceFSAdapter(), reaper, IsolationConfig{Root: m.Path(t.TempDir()), KillGrace: time.Second})

		ws := t.TempDir()
		touch(t, ws, "a/b.txt")

		reaper.EXPECT().KillReferencing(mock.Anything, ws, time.Second).Return(2, nil).Once()

		require.NoError(t, iso.Reclaim(context.Background(), m.Path(ws)))
		assert.NoDirExists(t, ws)
	})

	t.Run("cancelled context still reclaims", func(t *testing.T) {
		reaper := adaptermocks.NewMockProcessReaper(t)
		iso := NewIsolation(adapter.NewLocalSourceFSAdapter(), reaper, IsolationConfig{Root: m.Path(t.TempDir())})

		ws := t.TempDir()
		touch(t, ws, "x.txt")

		reaper.EXPECT().KillReferencing(mock.MatchedBy(func(ctx context.Context) bool {
			return ctx.Err() == nil
		}), ws, time.Duration(0)).Return(0, nil).Once()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		require.NoError(t, iso.Reclaim(ctx, m.Path(ws)))
		assert.NoDirExists(t, ws)
	})

	t.Run("sweep errors are not fatal", func(t *testing.T) {
		reaper := adaptermocks.NewMockProcessReaper(t)
		iso := NewIsolation(adapter.NewLocalSourceFSAdapter(), reaper, IsolationConfig{Root: m.Path(t.TempDir())})

		ws := t.TempDir()
		reaper.EXPECT().KillReferencing(mock.Anything, ws, mock.Anything).Return(0, errors.New("no procfs")).Once()

		require.NoError(t, iso.Reclaim(context.Background(), m.Path(ws)))
		assert.NoDirExists(t, ws)
	})

	t.Run("retries removal after a second sweep", func(t *testing.T) {
		reaper := adaptermocks.NewMockProcessReaper(t)
		fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
		iso := NewIsolation(fsAdapter, reaper, IsolationConfig{Root: "root"})

		reaper.EXPECT().KillReferencing(mock.Anything, "ws", mock.Anything).Return(1, nil).Twice()
		fsAdapter.EXPECT().RemoveAll(mock.Anything, m.Path("ws")).Return(errors.New("busy")).Once()
		fsAdapter.EXPECT().RemoveAll(mock.Anything, m.Path("ws")).Return(nil).Once()

		require.NoError(t, iso.Reclaim(context.Background(), "ws"))
	})

	t.Run("second failure is returned", func(t *testing.T) {
		reaper := adaptermocks.NewMockProcessReaper(t)
		fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)
		iso := NewIsolation(fsAdapter, reaper, IsolationConfig{Root: "root"})
		busy := errors.New("busy")

		reaper.EXPECT().KillReferencing(mock.Anything, "ws", mock.Anything).Return(0, nil).Twice()
		fsAdapter.EXPECT().RemoveAll(mock.Anything, m.Path("ws")).Return(busy).Twice()

		err := iso.Reclaim(context.Background(), "ws")
		require.ErrorIs(t, err, busy)
	})

	t.Run("empty path is a no-op", func(t *testing.T) {
		iso := NewIsolation(adaptermocks.NewMockSourceFSAdapter(t), adaptermocks.NewMockProcessReaper(t), IsolationConfig{})

		require.NoError(t, iso.Reclaim(context.Background(), ""))
	})
}

func TestIsolation_ReclaimMissingWorkspace(t *testing.T) {
	reaper := adaptermocks.NewMockProcessReaper(t)
	iso := NewIsolation(adapter.NewLocalSourceFSAdapter(), reaper, IsolationConfig{})
	ws := filepath.Join(t.TempDir(), "never-created")

	reaper.EXPECT().KillReferencing(mock.Anything, ws, mock.Anything).Return(0, nil).Once()

	require.NoError(t, iso.Reclaim(context.Background(), m.Path(ws)))
	_, err := os.Stat(ws)
	assert.True(t, os.IsNotExist(err))
}
