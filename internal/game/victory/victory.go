// Package victory evaluates match outcomes from derived game state.
package victory

import "github.com/louisbranch/hexfall/internal/game/domain"

// Config holds victory evaluation settings.
type Config struct {
	// TurnLimit ends the game after this many turns; zero or negative
	// means unlimited.
	TurnLimit int
}

// Check decides the match outcome for a derived state. It returns nil
// while the match should continue. Elimination is checked first, then the
// turn limit, where the side with strictly more surviving units wins and
// an equal count is a draw.
func Check(state domain.GameState, config Config) *domain.Result {
	if len(state.Units) == 0 {
		return nil
	}

	playerSurvivors := survivors(state, domain.SidePlayer)
	opponentSurvivors := survivors(state, domain.SideOpponent)

	switch {
	case playerSurvivors == 0 && opponentSurvivors == 0:
		return &domain.Result{Reason: domain.ReasonMutualDestruction}
	case playerSurvivors == 0:
		return &domain.Result{Winner: domain.SideOpponent, Reason: domain.ReasonElimination}
	case opponentSurvivors == 0:
		return &domain.Result{Winner: domain.SidePlayer, Reason: domain.ReasonElimination}
	}

	if config.TurnLimit > 0 && state.Turn > config.TurnLimit {
		switch {
		case playerSurvivors > opponentSurvivors:
			return &domain.Result{Winner: domain.SidePlayer, Reason: domain.ReasonTurnLimit}
		case opponentSurvivors > playerSurvivors:
			return &domain.Result{Winner: domain.SideOpponent, Reason: domain.ReasonTurnLimit}
		default:
			return &domain.Result{Reason: domain.ReasonTurnLimit}
		}
	}

	return nil
}

func survivors(state domain.GameState, side domain.Side) int {
	count := 0
	for _, unit := range state.Units {
		if unit.Side == side && !unit.Destroyed {
			count++
		}
	}
	return count
}
