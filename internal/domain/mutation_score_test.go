package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	m "gooze.dev/pkg/mutforge/internal/model"
	mutforgepkg "gooze.dev/pkg/mutforge/pkg"
)

type errSpill[T any] struct {
	mutforgepkg.FileSpill[T]
	err error
}

func (e errSpill[T]) Range(_ func(index uint64, item T) error) error { return e.err }

func newResultSpill(t *testing.T) mutforgepkg.FileSpill[m.ExecutionResult] {
	t.Helper()

	spill, err := mutforgepkg.NewFileSpill[m.ExecutionResult](t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = spill.Discard() })

	return spill
}

func TestMutationScoreFromResults(t *testing.T) {
	spill := newResultSpill(t)

	require.NoError(t, spill.AppendBatch([]m.ExecutionResult{
		{CombinationID: "mutant_1", CompileSuccess: true, Tests: m.TestCounts{Total: 5, Failed: 2}},
		{CombinationID: "mutant_2", CompileSuccess: true, Tests: m.TestCounts{Total: 5}},
		{CombinationID: "mutant_3", CompileSuccess: false},
		{CombinationID: "mutant_4", CompileSuccess: true, Tests: m.TestCounts{Total: 5, Failed: 1}},
		{CombinationID: "mutant_5", CompileSuccess: true, Tests: m.TestCounts{Total: 5}},
	}))

	score, err := mutationScoreFromResults(spill)
	require.NoError(t, err)

	require.InDelta(t, 50.0, score, 0.0001)
}

func TestMutationScoreFromResults_EmptySpillIs100(t *testing.T) {
	score, err := mutationScoreFromResults(newResultSpill(t))
	require.NoError(t, err)

	require.Equal(t, 100.0, score)
}

func TestMutationScoreFromResults_OnlyUncompilable(t *testing.T) {
	spill := newResultSpill(t)
	require.NoError(t, spill.Append(m.ExecutionResult{CombinationID: "mutant_1"}))

	score, err := mutationScoreFromResults(spill)
	require.NoError(t, err)

	require.Equal(t, 100.0, score)
}

func TestMutationScoreFromResults_RangeError(t *testing.T) {
	rangeErr := errors.New("range failed")

	_, err := mutationScoreFromResults(errSpill[m.ExecutionResult]{err: rangeErr})
	require.ErrorIs(t, err, rangeErr)
}
