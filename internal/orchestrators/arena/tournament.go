package arena

import (
	"context"
	"log/slog"

	"github.com/looplab/fsm"

	"github.com/pokearena/tactics-arena/internal/clients/dex"
	"github.com/pokearena/tactics-arena/internal/entities"
	"github.com/pokearena/tactics-arena/internal/errors"
	"github.com/pokearena/tactics-arena/internal/services/progression"
)

// Tournament bracket states
const (
	StageQuarterFinal = "quarterfinal"
	StageSemiFinal    = "semifinal"
	StageFinal        = "final"
	StageChampion     = "champion"
	StageEliminated   = "eliminated"

	eventAdvance   = "advance"
	eventEliminate = "eliminate"

	// TournamentBonus is awarded for winning all three stages
	TournamentBonus = 250
)

// newBracket builds the tournament state machine
func newBracket(playerID string) *fsm.FSM {
	return fsm.NewFSM(
		StageQuarterFinal,
		fsm.Events{
			{Name: eventAdvance, Src: []string{StageQuarterFinal}, Dst: StageSemiFinal},
			{Name: eventAdvance, Src: []string{StageSemiFinal}, Dst: StageFinal},
			{Name: eventAdvance, Src: []string{StageFinal}, Dst: StageChampion},
			{Name: eventEliminate, Src: []string{StageQuarterFinal, StageSemiFinal, StageFinal}, Dst: StageEliminated},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				slog.Debug("Tournament stage changed",
					"player_id", playerID,
					"from", e.Src,
					"to", e.Dst)
			},
		},
	)
}

// opponentFor draws the opponent of a bracket stage
func (o *orchestrator) opponentFor(ctx context.Context, stage string, input *dex.TeamInput) ([]*entities.Pokemon, error) {
	switch stage {
	case StageQuarterFinal:
		return o.dexClient.RandomTeam(ctx, input)
	case StageSemiFinal:
		return o.dexClient.BalancedTeam(ctx, input)
	case StageFinal:
		return o.dexClient.EvolutionReadyTeam(ctx, input)
	default:
		return nil, errors.Internalf("no opponent for stage %q", stage)
	}
}

// Tournament runs the three-stage bracket, stopping at the first loss
func (o *orchestrator) Tournament(ctx context.Context, input *TournamentInput) (*TournamentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateParty(input.PlayerID, input.Team); err != nil {
		return nil, err
	}

	state, err := o.loadUnlocked(ctx, input.PlayerID, entities.ModeTournament)
	if err != nil {
		return nil, err
	}

	bracket := newBracket(input.PlayerID)
	out := &TournamentOutput{Team: input.Team}

	for !bracket.Is(StageChampion) && !bracket.Is(StageEliminated) {
		current := bracket.Current()
		if err := checkpoint(ctx, current); err != nil {
			return nil, err
		}

		opponent, err := o.opponentFor(ctx, current, &dex.TeamInput{
			Size:        len(input.Team),
			Generations: state.UnlockedGenerations,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to draw %s opponent", current)
		}

		stage, err := o.fight(ctx, stageInput{
			playerID: input.PlayerID,
			mode:     entities.ModeTournament,
			stage:    current,
			party:    input.Team,
			opponent: opponent,
		})
		if err != nil {
			return nil, err
		}
		out.Stages = append(out.Stages, stage)
		state = stage.Progress.State

		transition := eventEliminate
		if stage.Won() {
			transition = eventAdvance
		}
		if err := bracket.Event(ctx, transition); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "tournament bracket transition failed")
		}
	}

	out.FinalState = bracket.Current()
	out.Champion = bracket.Is(StageChampion)

	slog.Info("Tournament finished",
		"player_id", input.PlayerID,
		"result", out.FinalState,
		"stages", len(out.Stages))

	if out.Champion {
		granted, err := o.progression.GrantBonusXP(ctx, &progression.GrantBonusXPInput{
			PlayerID: input.PlayerID,
			Amount:   TournamentBonus,
			Message:  "Tournament champion! +250 XP",
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to grant tournament bonus")
		}
		out.Bonus = granted
		o.publishProgress(ctx, input.PlayerID, granted)
	}

	return out, nil
}
