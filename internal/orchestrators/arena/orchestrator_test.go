package arena_test

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/pokearena/tactics-arena/internal/clients/dex"
	dexmock "github.com/pokearena/tactics-arena/internal/clients/dex/mock"
	"github.com/pokearena/tactics-arena/internal/engine/battle"
	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
	"github.com/pokearena/tactics-arena/internal/orchestrators/arena"
	"github.com/pokearena/tactics-arena/internal/pkg/idgen"
	"github.com/pokearena/tactics-arena/internal/pkg/metrics"
	progressionrepo "github.com/pokearena/tactics-arena/internal/repositories/progression"
	"github.com/pokearena/tactics-arena/internal/repositories/roster"
	"github.com/pokearena/tactics-arena/internal/services/evolution"
	"github.com/pokearena/tactics-arena/internal/services/progression"
	"github.com/pokearena/tactics-arena/internal/testutils"
	"github.com/pokearena/tactics-arena/internal/testutils/builders"
)

const testPlayerID = "red"

// recordingBus keeps every published event
type recordingBus struct {
	events.EventBus
	published []events.Event
}

func (b *recordingBus) Publish(ctx context.Context, event events.Event) error {
	b.published = append(b.published, event)
	return b.EventBus.Publish(ctx, event)
}

func (b *recordingBus) count(eventType string) int {
	n := 0
	for _, e := range b.published {
		if e.Type() == eventType {
			n++
		}
	}
	return n
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctx          context.Context
	catalog      []*entities.Pokemon
	dexClient    dex.Client
	progressRepo *progressionrepo.InMemoryRepository
	rosterRepo   *roster.InMemoryRepository
	progression  progression.Service
	evolution    evolution.Service
	bus          *recordingBus
	metrics      *metrics.ArenaMetrics
	orch         arena.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

// weakling builds a catalog entry no strong party can lose to
func weakling(id int, name, rarity string) *builders.PokemonBuilder {
	return builders.NewPokemonBuilder().WithID(id).WithName(name).WithRarity(rarity).
		WithStats(entities.Stats{HP: 20, Attack: 10, Defense: 10, SpecialAttack: 10, SpecialDefense: 10, Speed: 10})
}

func champion() *entities.Pokemon {
	return builders.NewPokemonBuilder().WithID(150).WithName("Mewtwo").WithTypes("Psy").WithRarity(entities.RarityRare).
		WithStats(entities.Stats{HP: 500, Attack: 500, Defense: 500, SpecialAttack: 500, SpecialDefense: 500, Speed: 200}).
		Build()
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.catalog = []*entities.Pokemon{
		weakling(10, "Chenipan", entities.RarityCommon).WithEvolution(11, "Chrysacier").Build(),
		weakling(11, "Chrysacier", entities.RarityUncommon).Build(),
		weakling(12, "Roucool", entities.RarityCommon).Build(),
		weakling(13, "Rattata", entities.RarityCommon).Build(),
		weakling(14, "Abo", entities.RarityUncommon).Build(),
		weakling(15, "Minidraco", entities.RarityRare).Build(),
		weakling(61, "Têtarte", entities.RarityUncommon).WithHP(80).Build(),
	}

	var err error
	s.dexClient, err = dex.NewCatalogClient(&dex.CatalogConfig{
		Entries: s.catalog,
		Roller:  testutils.NewScriptedRoller(1),
	})
	s.Require().NoError(err)

	s.progressRepo = progressionrepo.NewInMemory()
	s.rosterRepo = roster.NewInMemory()
	s.metrics = metrics.NewArenaMetricsWithRegistry("test", prometheus.NewRegistry())

	s.progression, err = progression.NewService(&progression.Config{Repository: s.progressRepo, Metrics: s.metrics})
	s.Require().NoError(err)
	s.evolution, err = evolution.NewService(&evolution.Config{DexClient: s.dexClient})
	s.Require().NoError(err)

	s.bus = &recordingBus{EventBus: events.NewBus()}
	s.orch = s.newOrchestrator(s.dexClient, testutils.NewScriptedRoller(1))
}

func (s *OrchestratorTestSuite) newOrchestrator(client dex.Client, roller *testutils.ScriptedRoller) arena.Service {
	orch, err := arena.NewOrchestrator(&arena.Config{
		DexClient:   client,
		Simulator:   battle.NewSimulator(),
		Progression: s.progression,
		Evolution:   s.evolution,
		RosterRepo:  s.rosterRepo,
		Roller:      roller,
		EventBus:    s.bus,
		IDGenerator: idgen.NewSequential("battle"),
		Metrics:     s.metrics,
	})
	s.Require().NoError(err)
	return orch
}

// seedLevel stores a progress state whose unlocks are healed on load
func (s *OrchestratorTestSuite) seedLevel(level int) {
	state := progression.DefaultState()
	state.XP = (level - 1) * progression.XPPerLevel
	s.Require().NoError(s.progressRepo.Save(s.ctx, progressionrepo.SaveInput{PlayerID: testPlayerID, State: state}))
}

func (s *OrchestratorTestSuite) TestConfigValidation() {
	orch, err := arena.NewOrchestrator(&arena.Config{})
	s.Nil(orch)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestFreeBattleWin() {
	party := arena.NewParty([]*entities.Pokemon{champion()})

	out, err := s.orch.FreeBattle(s.ctx, &arena.FreeBattleInput{PlayerID: testPlayerID, Team: party})
	s.Require().NoError(err)

	stage := out.Stage
	s.Equal("battle_1", stage.BattleID)
	s.True(stage.Won())
	s.Equal(1, stage.Result.Turns)
	s.Equal("Chenipan", stage.OpponentBefore[0].Pokemon.Name)
	s.Equal(stage.OpponentBefore[0].MaxHP, stage.OpponentBefore[0].CurrentHP)
	s.Equal(159, stage.Progress.XPGained)
	s.Empty(stage.Candidates)
	s.Equal(party[0].MaxHP, out.Team[0].CurrentHP)

	s.Equal(1, s.bus.count(arena.EventBattleCompleted))
	s.Equal(1, s.bus.count(arena.EventProgressionUpdated))
	s.Equal(0, s.bus.count(arena.EventEvolutionOffered))
	s.Equal(1.0, testutil.ToFloat64(s.metrics.BattlesTotal.WithLabelValues("player", entities.ModeFree)))
}

func (s *OrchestratorTestSuite) TestFreeBattleLossHealsParty() {
	weak := builders.NewPokemonBuilder().WithID(129).WithName("Magicarpe").
		WithStats(entities.Stats{HP: 5, Attack: 1, Defense: 1, SpecialAttack: 1, SpecialDefense: 1, Speed: 1}).Build()
	party := arena.NewParty([]*entities.Pokemon{weak})

	out, err := s.orch.FreeBattle(s.ctx, &arena.FreeBattleInput{PlayerID: testPlayerID, Team: party})
	s.Require().NoError(err)

	s.Equal(battle.OutcomeOpponent, out.Stage.Result.Outcome)
	s.Equal(0, out.Stage.Result.Player[0].CurrentHP)
	s.Equal(5, out.Team[0].CurrentHP)
	s.Equal(40, out.Stage.Progress.XPGained)
}

func (s *OrchestratorTestSuite) TestFreeBattleOffersAndAcceptsEvolution() {
	ptitard := builders.NewPokemonBuilder().WithID(60).WithName("Ptitard").WithTypes("Eau").
		WithStats(entities.Stats{HP: 300, Attack: 300, Defense: 300, SpecialAttack: 300, SpecialDefense: 300, Speed: 100}).
		WithEvolution(61, "Têtarte").Build()
	party := arena.NewParty([]*entities.Pokemon{ptitard})
	opponent := []*entities.Pokemon{s.catalog[2]}

	out, err := s.orch.FreeBattle(s.ctx, &arena.FreeBattleInput{PlayerID: testPlayerID, Team: party, Opponent: opponent})
	s.Require().NoError(err)
	s.Require().Len(out.Stage.Candidates, 1)
	s.Equal("Roucool", out.Stage.OpponentBefore[0].Pokemon.Name)
	s.Equal(1, s.bus.count(arena.EventEvolutionOffered))

	candidate := out.Stage.Candidates[0]
	s.Equal("60-61", candidate.Key)

	party[0].CurrentHP = 1
	accepted, err := s.orch.AcceptEvolution(s.ctx, &arena.AcceptEvolutionInput{
		PlayerID:  testPlayerID,
		Team:      party,
		Candidate: candidate,
	})
	s.Require().NoError(err)

	s.Equal(61, accepted.Evolution.NewID)
	s.Equal("Têtarte", party[0].Pokemon.Name)
	s.Equal(80, party[0].MaxHP)
	s.Equal(80, party[0].CurrentHP)
	s.Equal("Ptitard evolved into Têtarte!", accepted.Progress.Events[0])
	s.Equal([]int{60, 61}, accepted.Progress.State.EvolvedIDs)
	s.Equal(1.0, testutil.ToFloat64(s.metrics.EvolutionsTotal))

	_, err = s.orch.AcceptEvolution(s.ctx, &arena.AcceptEvolutionInput{
		PlayerID:  testPlayerID,
		Team:      party,
		Candidate: candidate,
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestFreeBattleValidation() {
	_, err := s.orch.FreeBattle(s.ctx, &arena.FreeBattleInput{PlayerID: testPlayerID})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.FreeBattle(s.ctx, &arena.FreeBattleInput{Team: arena.NewParty([]*entities.Pokemon{champion()})})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orch.FreeBattle(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestFreeBattleSurfacesDexFailures() {
	ctrl := gomock.NewController(s.T())
	client := dexmock.NewMockClient(ctrl)
	client.EXPECT().RandomTeam(gomock.Any(), &dex.TeamInput{Size: 1, Generations: []int{1}}).
		Return(nil, errors.Unavailable("dex offline"))

	orch := s.newOrchestrator(client, testutils.NewScriptedRoller(1))
	_, err := orch.FreeBattle(s.ctx, &arena.FreeBattleInput{
		PlayerID: testPlayerID,
		Team:     arena.NewParty([]*entities.Pokemon{champion()}),
	})
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestSurvivalLockedAtLowLevel() {
	_, err := s.orch.Survival(s.ctx, &arena.SurvivalInput{
		PlayerID: testPlayerID,
		Team:     arena.NewParty([]*entities.Pokemon{champion()}),
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestSurvivalFixedRun() {
	s.seedLevel(12)
	party := arena.NewParty([]*entities.Pokemon{champion()})

	out, err := s.orch.Survival(s.ctx, &arena.SurvivalInput{PlayerID: testPlayerID, Team: party})
	s.Require().NoError(err)

	s.Len(out.Stages, arena.FixedSurvivalWaves)
	s.Equal(3, out.WavesCleared)
	s.True(out.Completed)
	s.Require().NotNil(out.Bonus)
	s.Equal(arena.FixedSurvivalBonus, out.Bonus.XPGained)
	s.Empty(out.Unlocked)
	for i, stage := range out.Stages {
		s.Equal(entities.ModeSurvival, stage.Mode)
		s.Equal(i+1, stage.Progress.State.Battles)
	}
}

func (s *OrchestratorTestSuite) TestSurvivalStopsOnFirstLoss() {
	s.seedLevel(12)
	weak := builders.NewPokemonBuilder().WithID(129).WithName("Magicarpe").
		WithStats(entities.Stats{HP: 5, Attack: 1, Defense: 1, SpecialAttack: 1, SpecialDefense: 1, Speed: 1}).Build()

	out, err := s.orch.Survival(s.ctx, &arena.SurvivalInput{
		PlayerID: testPlayerID,
		Team:     arena.NewParty([]*entities.Pokemon{weak}),
	})
	s.Require().NoError(err)

	s.Len(out.Stages, 1)
	s.Equal(0, out.WavesCleared)
	s.False(out.Completed)
	s.Nil(out.Bonus)
}

func (s *OrchestratorTestSuite) TestSurvivalRosterRunUnlocksEntries() {
	s.seedLevel(12)
	party := arena.NewParty([]*entities.Pokemon{champion()})

	out, err := s.orch.Survival(s.ctx, &arena.SurvivalInput{PlayerID: testPlayerID, Team: party, UseRoster: true})
	s.Require().NoError(err)

	s.Equal(arena.RosterSurvivalWaves, out.WavesCleared)
	s.True(out.Completed)
	s.Equal(arena.MaxRosterSurvivalBonus, out.Bonus.XPGained)
	s.Len(out.Unlocked, 5)

	stored, err := s.rosterRepo.Get(s.ctx, roster.GetInput{PlayerID: testPlayerID})
	s.Require().NoError(err)
	s.Len(stored.Roster.PokemonIDs, 5)
	seen := map[int]bool{}
	for _, id := range stored.Roster.PokemonIDs {
		s.False(seen[id], "duplicate roster entry %d", id)
		seen[id] = true
	}
	s.Equal(5.0, testutil.ToFloat64(s.metrics.UnlocksTotal.WithLabelValues(metrics.UnlockRoster)))
}

func (s *OrchestratorTestSuite) TestSurvivalAbandonedBetweenWaves() {
	s.seedLevel(12)
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	_, err := s.orch.Survival(ctx, &arena.SurvivalInput{
		PlayerID: testPlayerID,
		Team:     arena.NewParty([]*entities.Pokemon{champion()}),
	})
	s.True(errors.IsCanceled(err))
}

func (s *OrchestratorTestSuite) TestTournamentLocked() {
	s.seedLevel(12)
	_, err := s.orch.Tournament(s.ctx, &arena.TournamentInput{
		PlayerID: testPlayerID,
		Team:     arena.NewParty([]*entities.Pokemon{champion()}),
	})
	s.True(errors.IsFailedPrecondition(err))
}

func (s *OrchestratorTestSuite) TestTournamentSweep() {
	s.seedLevel(20)
	party := arena.NewParty([]*entities.Pokemon{champion()})

	out, err := s.orch.Tournament(s.ctx, &arena.TournamentInput{PlayerID: testPlayerID, Team: party})
	s.Require().NoError(err)

	s.True(out.Champion)
	s.Equal(arena.StageChampion, out.FinalState)
	s.Require().Len(out.Stages, 3)
	s.Equal(arena.StageQuarterFinal, out.Stages[0].Stage)
	s.Equal(arena.StageSemiFinal, out.Stages[1].Stage)
	s.Equal(arena.StageFinal, out.Stages[2].Stage)
	s.True(out.Stages[2].OpponentBefore[0].Pokemon.CanEvolve())
	s.Equal(arena.TournamentBonus, out.Bonus.XPGained)
}

func (s *OrchestratorTestSuite) TestTournamentStopsAtFirstLoss() {
	s.seedLevel(20)
	weak := builders.NewPokemonBuilder().WithID(129).WithName("Magicarpe").
		WithStats(entities.Stats{HP: 5, Attack: 1, Defense: 1, SpecialAttack: 1, SpecialDefense: 1, Speed: 1}).Build()

	out, err := s.orch.Tournament(s.ctx, &arena.TournamentInput{
		PlayerID: testPlayerID,
		Team:     arena.NewParty([]*entities.Pokemon{weak}),
	})
	s.Require().NoError(err)

	s.False(out.Champion)
	s.Equal(arena.StageEliminated, out.FinalState)
	s.Len(out.Stages, 1)
	s.Nil(out.Bonus)
}

func (s *OrchestratorTestSuite) TestTournamentFinalNeedsEvolvableOpponents() {
	s.seedLevel(20)
	party := arena.NewParty([]*entities.Pokemon{champion(), champion()})

	_, err := s.orch.Tournament(s.ctx, &arena.TournamentInput{PlayerID: testPlayerID, Team: party})
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(2, s.bus.count(arena.EventBattleCompleted))
}
