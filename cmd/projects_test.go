package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/mutforge/internal/domain"
	m "gooze.dev/pkg/mutforge/internal/model"
)

func TestParseProjectArgument(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    []m.Identity
		wantErr error
	}{
		{
			name:  "single",
			value: "Math-1",
			want:  []m.Identity{{Project: "Math", Bug: "1"}},
		},
		{
			name:  "list with spaces",
			value: "Math-1, Lang-3",
			want:  []m.Identity{{Project: "Math", Bug: "1"}, {Project: "Lang", Bug: "3"}},
		},
		{
			name:  "all expands configured bugs",
			value: "Math-all",
			want:  []m.Identity{{Project: "Math", Bug: "1"}, {Project: "Math", Bug: "2"}},
		},
		{
			name:  "all is case insensitive",
			value: "Math-ALL",
			want:  []m.Identity{{Project: "Math", Bug: "1"}, {Project: "Math", Bug: "2"}},
		},
		{
			name:  "duplicates dropped in order",
			value: "Math-2,Math-all",
			want:  []m.Identity{{Project: "Math", Bug: "2"}, {Project: "Math", Bug: "1"}},
		},
		{
			name:    "empty",
			value:   " , ",
			wantErr: errNoProjects,
		},
		{
			name:    "unknown project",
			value:   "Chart-all",
			wantErr: errUnknownProject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseProjectArgument(tt.value)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseProjectArgument_Malformed(t *testing.T) {
	_, err := parseProjectArgument("Math-1,Lang")
	require.Error(t, err)
}

func TestIdentityFromLogPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want m.Identity
	}{
		{"parent directory", filepath.Join("work", "Math_12", "mutants.log"), m.Identity{Project: "Math", Bug: "12"}},
		{"fixed suffix", filepath.Join("work", "Lang_3f", "mutants.log"), m.Identity{Project: "Lang", Bug: "3"}},
		{"nested", filepath.Join("Chart_7", "target", "mutants.log"), m.Identity{Project: "Chart", Bug: "7"}},
		{"directory itself", filepath.Join("work", "Time_2"), m.Identity{Project: "Time", Bug: "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := identityFromLogPath(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIdentityFromLogPath_NoMatch(t *testing.T) {
	_, err := identityFromLogPath(filepath.Join("work", "mutants.log"))
	require.ErrorIs(t, err, errNoIdentity)
}

func TestGenerationArgs(t *testing.T) {
	got, err := generationArgs(0, 1, 9)
	require.NoError(t, err)
	assert.Equal(t, domain.GenerationArgs{Percentage: 0, MaxMutations: 1, Seed: 9}, got)

	_, err = generationArgs(100.5, 2, 0)
	require.Error(t, err)

	_, err = generationArgs(10, domain.MaxMutationsPerCombination+1, 0)
	require.Error(t, err)
}
