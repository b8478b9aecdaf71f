package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gooze.dev/pkg/mutforge/internal/domain"
	m "gooze.dev/pkg/mutforge/internal/model"
)

func TestListCmd_InfersIdentityFromLogPath(t *testing.T) {
	cmd, mockWorkflow := newTestCmd(t, newListCmd())

	logPath := filepath.Join("checkouts", "Math_5", "mutants.log")

	mockWorkflow.EXPECT().List(mock.Anything, domain.ListArgs{
		GenerationArgs: domain.GenerationArgs{
			Percentage:   defaultPercentage,
			MaxMutations: domain.MaxMutationsPerCombination,
			Seed:         defaultSeed,
		},
		Log:      m.Path(logPath),
		Identity: m.Identity{Project: "Math", Bug: "5"},
	}).Return(nil).Once()

	cmd.SetArgs([]string{"list", "--log", logPath})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_ExplicitProjectAndPlan(t *testing.T) {
	cmd, mockWorkflow := newTestCmd(t, newListCmd())

	mockWorkflow.EXPECT().List(mock.Anything, mock.MatchedBy(func(args domain.ListArgs) bool {
		return args.Identity == m.Identity{Project: "Lang", Bug: "3"} &&
			args.Plan == m.Path("plan.yaml") &&
			args.Percentage == 100 &&
			args.MaxMutations == 3 &&
			args.Seed == 11
	})).Return(nil).Once()

	cmd.SetArgs([]string{
		"list", "--log", "mutants.log", "--project", "Lang-3", "--plan", "plan.yaml",
		"--percentage", "100", "--max-mutations", "3", "--seed", "11",
	})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing log", []string{"list"}},
		{"no identity", []string{"list", "--log", "mutants.log"}},
		{"bad project", []string{"list", "--log", "mutants.log", "--project", "Lang"}},
		{"bad percentage", []string{"list", "--log", "mutants.log", "--project", "Lang-1", "--percentage", "150"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := newTestCmd(t, newListCmd())

			cmd.SetArgs(tt.args)
			require.Error(t, cmd.Execute())
		})
	}
}

func TestNewListCmd(t *testing.T) {
	cmd := newListCmd()

	assert.Equal(t, "list", cmd.Use)
	assert.Equal(t, listLongDescription, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup(logFlagName))
	assert.NotNil(t, cmd.Flags().Lookup(planFlagName))
	assert.NotNil(t, cmd.Flags().Lookup(seedFlagName))
}
