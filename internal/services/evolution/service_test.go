package evolution_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	dexmock "github.com/pokearena/tactics-arena/internal/clients/dex/mock"
	"github.com/pokearena/tactics-arena/internal/engine/battle"
	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
	"github.com/pokearena/tactics-arena/internal/services/evolution"
	"github.com/pokearena/tactics-arena/internal/testutils"
)

type ServiceTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	dexClient *dexmock.MockClient
	svc       evolution.Service

	salameche *entities.Pokemon
	reptincel *entities.Pokemon
	dracaufeu *entities.Pokemon
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceTestSuite))
}

func (s *ServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.dexClient = dexmock.NewMockClient(s.ctrl)
	s.salameche, s.reptincel, s.dracaufeu = testutils.CreateStarterLine()

	svc, err := evolution.NewService(&evolution.Config{DexClient: s.dexClient})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *ServiceTestSuite) TestConfigRequiresDexClient() {
	svc, err := evolution.NewService(&evolution.Config{})
	s.Nil(svc)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ServiceTestSuite) TestGatherCandidates() {
	team := battle.NewTeam([]*entities.Pokemon{s.dracaufeu, s.salameche}, battle.SidePlayer)

	s.dexClient.EXPECT().GetPokemon(s.ctx, "5").Return(s.reptincel.Clone(), nil)

	out, err := s.svc.GatherCandidates(s.ctx, &evolution.GatherCandidatesInput{
		Team:  team,
		State: &entities.ProgressState{},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Candidates, 1)

	c := out.Candidates[0]
	s.Equal(1, c.Slot)
	s.Equal("4-5", c.Key)
	s.Equal(evolution.Identity{ID: 4, Name: "Salamèche", Image: "sprites/4.png"}, c.Previous)
	s.Equal("Reptincel", c.Next.Name)
	s.Equal(map[string]int{
		"hp":              19,
		"attack":          12,
		"defense":         15,
		"special_attack":  20,
		"special_defense": 15,
		"speed":           15,
	}, c.StatDelta)
}

func (s *ServiceTestSuite) TestGatherSkipsAlreadyEvolved() {
	team := battle.NewTeam([]*entities.Pokemon{s.salameche, s.reptincel}, battle.SidePlayer)
	state := &entities.ProgressState{}
	state.MarkEvolved(4, 6)

	out, err := s.svc.GatherCandidates(s.ctx, &evolution.GatherCandidatesInput{Team: team, State: state})
	s.Require().NoError(err)
	s.Empty(out.Candidates)
}

func (s *ServiceTestSuite) TestGatherSkipsEvolvedTargetReferencedByName() {
	s.salameche.Evolutions = []entities.EvolutionRef{{Name: "Reptincel"}}
	team := battle.NewTeam([]*entities.Pokemon{s.salameche}, battle.SidePlayer)
	state := &entities.ProgressState{}
	state.MarkEvolved(5, 6)

	s.dexClient.EXPECT().GetPokemon(s.ctx, "Reptincel").Return(s.reptincel.Clone(), nil)

	out, err := s.svc.GatherCandidates(s.ctx, &evolution.GatherCandidatesInput{Team: team, State: state})
	s.Require().NoError(err)
	s.Empty(out.Candidates)
}

func (s *ServiceTestSuite) TestGatherSkipsFailedLookups() {
	team := battle.NewTeam([]*entities.Pokemon{s.salameche, s.reptincel}, battle.SidePlayer)

	s.dexClient.EXPECT().GetPokemon(s.ctx, "5").Return(nil, errors.Unavailable("dex offline"))
	s.dexClient.EXPECT().GetPokemon(s.ctx, "6").Return(s.dracaufeu.Clone(), nil)

	out, err := s.svc.GatherCandidates(s.ctx, &evolution.GatherCandidatesInput{Team: team})
	s.Require().NoError(err)
	s.Require().Len(out.Candidates, 1)
	s.Equal("5-6", out.Candidates[0].Key)
}

func (s *ServiceTestSuite) TestGatherOffersEachPairOnce() {
	team := battle.NewTeam([]*entities.Pokemon{s.salameche, s.salameche}, battle.SidePlayer)

	s.dexClient.EXPECT().GetPokemon(s.ctx, "5").Return(s.reptincel.Clone(), nil).Times(2)

	out, err := s.svc.GatherCandidates(s.ctx, &evolution.GatherCandidatesInput{Team: team})
	s.Require().NoError(err)
	s.Len(out.Candidates, 1)
}

func (s *ServiceTestSuite) TestGatherStopsOnCanceledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.svc.GatherCandidates(ctx, &evolution.GatherCandidatesInput{
		Team: battle.NewTeam([]*entities.Pokemon{s.salameche}, battle.SidePlayer),
	})
	s.True(errors.IsCanceled(err))
}

func (s *ServiceTestSuite) TestApplyHealsToNewMax() {
	evolved := s.reptincel.Clone()
	evolved.Stats.HP = 80
	team := battle.NewTeam([]*entities.Pokemon{s.dracaufeu, s.salameche}, battle.SidePlayer)
	team[1].CurrentHP = 3

	out := s.svc.Apply(&evolution.ApplyInput{
		Team: team,
		Candidate: &evolution.Candidate{
			Slot:     1,
			Previous: evolution.Identity{ID: 4, Name: "Salamèche"},
			Next:     evolution.Identity{ID: 5, Name: "Reptincel"},
			Evolved:  evolved,
			Key:      "4-5",
		},
	})

	s.Require().NotNil(out)
	s.Equal(4, out.PreviousID)
	s.Equal(5, out.NewID)
	s.Equal("Salamèche evolved into Reptincel!", out.Message)
	s.Equal(80, team[1].MaxHP)
	s.Equal(80, team[1].CurrentHP)
	s.Equal("Reptincel", team[1].Pokemon.Name)
	s.Equal(battle.SidePlayer, team[1].Side)

	evolved.Name = "changed"
	s.Equal("Reptincel", team[1].Pokemon.Name)
}

func (s *ServiceTestSuite) TestApplyIgnoresStaleCandidates() {
	team := battle.NewTeam([]*entities.Pokemon{s.salameche}, battle.SidePlayer)
	candidate := &evolution.Candidate{
		Slot:     0,
		Previous: evolution.Identity{ID: 4},
		Evolved:  s.reptincel.Clone(),
	}

	outOfRange := *candidate
	outOfRange.Slot = 3
	s.Nil(s.svc.Apply(&evolution.ApplyInput{Team: team, Candidate: &outOfRange}))

	s.Require().NotNil(s.svc.Apply(&evolution.ApplyInput{Team: team, Candidate: candidate}))
	s.Nil(s.svc.Apply(&evolution.ApplyInput{Team: team, Candidate: candidate}))
	s.Nil(s.svc.Apply(nil))
}
