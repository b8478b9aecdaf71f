package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	adaptermocks "gooze.dev/pkg/mutforge/internal/adapter/mocks"
	"gooze.dev/pkg/mutforge/internal/domain"
	domainmocks "gooze.dev/pkg/mutforge/internal/domain/mocks"
	m "gooze.dev/pkg/mutforge/internal/model"
)

const (
	collabSource    = m.Path("/checkout/Math_1")
	collabWorkspace = m.Path("/ws/mutant_1")
	calcFile        = m.Path("/ws/mutant_1/src/Calc.java")
	utilFile        = m.Path("/ws/mutant_1/src/Util.java")
)

type collaboratorFixture struct {
	fs        *adaptermocks.MockSourceFSAdapter
	isolation *domainmocks.MockIsolation
	locator   *domainmocks.MockTargetLocator
	patcher   *domainmocks.MockPatcher
	oracle    *adaptermocks.MockOracleAdapter
	artifacts *adaptermocks.MockArtifactReader
	orch      domain.Orchestrator
}

func newCollaboratorFixture(t *testing.T, c m.Combination) *collaboratorFixture {
	t.Helper()

	fx := &collaboratorFixture{
		fs:        adaptermocks.NewMockSourceFSAdapter(t),
		isolation: domainmocks.NewMockIsolation(t),
		locator:   domainmocks.NewMockTargetLocator(t),
		patcher:   domainmocks.NewMockPatcher(t),
		oracle:    adaptermocks.NewMockOracleAdapter(t),
		artifacts: adaptermocks.NewMockArtifactReader(t),
	}

	fx.orch = domain.NewOrchestrator(fx.fs, fx.isolation, fx.locator, fx.patcher, fx.oracle, fx.artifacts, domain.OrchestratorConfig{})

	fx.isolation.EXPECT().Allocate(c).Return(m.Workspace{Path: collabWorkspace, CombinationID: c.ID}).Once()
	fx.isolation.EXPECT().Reclaim(mock.Anything, collabWorkspace).Return(nil).Once()

	return fx
}

func collabCombination(records ...m.MutationRecord) m.Combination {
	return m.Combination{ID: "mutant_1", Identity: mathOne, Records: records, Signature: domain.Signature(records)}
}

var (
	calcAdd  = m.MutationRecord{ID: "1", Mutator: "AOR", ClassKey: "org.example.Calc", Line: 5, OriginalCode: "a + b", MutatedCode: "a - b"}
	calcLess = m.MutationRecord{ID: "2", Mutator: "ROR", ClassKey: "org.example.Calc", Line: 8, OriginalCode: "a < b", MutatedCode: "a <= b"}
	utilNeg  = m.MutationRecord{ID: "3", Mutator: "UOI", ClassKey: "org.example.Util", Line: 3, OriginalCode: "x", MutatedCode: "-x"}
	ghostRec = m.MutationRecord{ID: "4", Mutator: "LVR", ClassKey: "org.example.Ghost", Line: 9, OriginalCode: "0", MutatedCode: "1"}
)

func TestOrchestrator_PatchFailureStopsBeforeOracle(t *testing.T) {
	// Arrange
	c := collabCombination(calcAdd)
	fx := newCollaboratorFixture(t, c)

	fx.isolation.EXPECT().Clone(mock.Anything, collabSource, collabWorkspace).Return(nil).Once()
	fx.locator.EXPECT().Locate(mock.Anything, collabWorkspace, "org.example.Calc").Return(calcFile, nil).Once()
	fx.patcher.EXPECT().ApplyOne(mock.Anything, calcFile, 5, "a + b", "a - b").
		Return(domain.ErrPatchMismatch).Once()

	var states []m.TaskState

	// Act
	_, err := fx.orch.Execute(context.Background(), domain.Task{
		Combination: c,
		Source:      collabSource,
		Progress:    func(s m.TaskState) { states = append(states, s) },
	})

	// Assert
	var taskErr *domain.TaskError
	require.ErrorAs(t, err, &taskErr)
	assert.Equal(t, m.StatePatching, taskErr.State)
	require.ErrorIs(t, err, domain.ErrPatchMismatch)
	assert.Equal(t, []m.TaskState{m.StateCloning, m.StatePatching}, states)
}

func TestOrchestrator_GroupsRecordsPerFile(t *testing.T) {
	// Arrange
	c := collabCombination(calcAdd, ghostRec, utilNeg, calcLess)
	fx := newCollaboratorFixture(t, c)

	fx.isolation.EXPECT().Clone(mock.Anything, collabSource, collabWorkspace).Return(nil).Once()
	fx.locator.EXPECT().Locate(mock.Anything, collabWorkspace, "org.example.Calc").Return(calcFile, nil).Twice()
	fx.locator.EXPECT().Locate(mock.Anything, collabWorkspace, "org.example.Ghost").Return("", nil).Once()
	fx.locator.EXPECT().Locate(mock.Anything, collabWorkspace, "org.example.Util").Return(utilFile, nil).Once()

	fx.patcher.EXPECT().ApplyMany(mock.Anything, calcFile, []m.MutationRecord{calcAdd, calcLess}).Return(nil).Once()
	fx.patcher.EXPECT().ApplyOne(mock.Anything, utilFile, 3, "x", "-x").Return(nil).Once()

	fx.fs.EXPECT().RelPath(mock.Anything, collabWorkspace, calcFile).Return("src/Calc.java", nil).Once()
	fx.fs.EXPECT().RelPath(mock.Anything, collabWorkspace, utilFile).Return("src/Util.java", nil).Once()

	fx.oracle.EXPECT().Run(mock.Anything, m.OracleInvocation{Mode: m.OracleCompile, Dir: collabWorkspace, Identity: mathOne}).
		Return(m.OracleRun{Mode: m.OracleCompile, ExitCode: 1, Output: "cannot find symbol"}, nil).Once()

	// Act
	result, err := fx.orch.Execute(context.Background(), domain.Task{Combination: c, Source: collabSource})

	// Assert
	require.NoError(t, err)
	assert.True(t, result.PatchSuccess)
	assert.False(t, result.CompileSuccess)
	assert.Equal(t, []m.Path{"src/Calc.java", "src/Util.java"}, result.TargetFiles)
	assert.Equal(t, "cannot find symbol", result.OracleOutput)
}

func TestOrchestrator_CollaboratorFailures(t *testing.T) {
	cloneErr := errors.New("disk full")
	locateErr := errors.New("permission denied")

	tests := []struct {
		name      string
		records   []m.MutationRecord
		arrange   func(fx *collaboratorFixture)
		wantState m.TaskState
		wantErr   error
	}{
		{
			name:    "clone failure",
			records: []m.MutationRecord{calcAdd},
			arrange: func(fx *collaboratorFixture) {
				fx.isolation.EXPECT().Clone(mock.Anything, collabSource, collabWorkspace).Return(cloneErr).Once()
			},
			wantState: m.StateCloning,
			wantErr:   cloneErr,
		},
		{
			name:    "no record located",
			records: []m.MutationRecord{ghostRec},
			arrange: func(fx *collaboratorFixture) {
				fx.isolation.EXPECT().Clone(mock.Anything, collabSource, collabWorkspace).Return(nil).Once()
				fx.locator.EXPECT().Locate(mock.Anything, collabWorkspace, "org.example.Ghost").Return("", nil).Once()
			},
			wantState: m.StatePatching,
			wantErr:   domain.ErrNoTargetFiles,
		},
		{
			name:    "locator error",
			records: []m.MutationRecord{calcAdd},
			arrange: func(fx *collaboratorFixture) {
				fx.isolation.EXPECT().Clone(mock.Anything, collabSource, collabWorkspace).Return(nil).Once()
				fx.locator.EXPECT().Locate(mock.Anything, collabWorkspace, "org.example.Calc").Return("", locateErr).Once()
			},
			wantState: m.StatePatching,
			wantErr:   locateErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := collabCombination(tt.records...)
			fx := newCollaboratorFixture(t, c)
			tt.arrange(fx)

			_, err := fx.orch.Execute(context.Background(), domain.Task{Combination: c, Source: collabSource})

			var taskErr *domain.TaskError
			require.ErrorAs(t, err, &taskErr)
			assert.Equal(t, tt.wantState, taskErr.State)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
