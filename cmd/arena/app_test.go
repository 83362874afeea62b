package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pokearena/tactics-arena/internal/errors"
	"github.com/pokearena/tactics-arena/internal/orchestrators/arena"
	arenamock "github.com/pokearena/tactics-arena/internal/orchestrators/arena/mock"
	"github.com/pokearena/tactics-arena/internal/services/evolution"
	"github.com/pokearena/tactics-arena/internal/testutils"
)

func TestAcceptAllSkipsStaleAndRepeatedOffers(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockArena := arenamock.NewMockService(ctrl)
	a := &app{arena: mockArena}

	ctx := context.Background()
	team := arena.NewParty(testutils.CreateTestTeam(2))
	stale := &evolution.Candidate{Slot: 0, Key: "4-5"}
	fresh := &evolution.Candidate{Slot: 1, Key: "7-8"}
	stages := []*arena.StageResult{
		{Candidates: []*evolution.Candidate{stale, fresh}},
		{Candidates: []*evolution.Candidate{fresh}},
	}

	gomock.InOrder(
		mockArena.EXPECT().AcceptEvolution(ctx, &arena.AcceptEvolutionInput{PlayerID: "red", Team: team, Candidate: stale}).
			Return(nil, errors.FailedPrecondition("evolution candidate is stale")),
		mockArena.EXPECT().AcceptEvolution(ctx, &arena.AcceptEvolutionInput{PlayerID: "red", Team: team, Candidate: fresh}).
			Return(&arena.AcceptEvolutionOutput{Team: team}, nil),
	)

	require.NoError(t, a.acceptAll(ctx, "red", team, stages))
}

func TestAcceptAllStopsOnStorageFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockArena := arenamock.NewMockService(ctrl)
	a := &app{arena: mockArena}

	stages := []*arena.StageResult{{Candidates: []*evolution.Candidate{{Key: "4-5"}, {Key: "7-8"}}}}
	mockArena.EXPECT().AcceptEvolution(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("redis down"))

	err := a.acceptAll(context.Background(), "red", arena.NewParty(testutils.CreateTestTeam(1)), stages)
	assert.Equal(t, errors.CodeUnavailable, errors.GetCode(err))
}
