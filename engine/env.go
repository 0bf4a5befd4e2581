package engine

import (
	"fmt"
	"jungle/game"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

type EnvOption func(e *Env)

// Env exposes the game as a reset/step environment for self-play and
// training loops.
type Env struct {
	state             *game.GameState
	rewards           RewardPolicy
	invalidTerminates bool
	steps             int
}

func WithRewardPolicy(rewards RewardPolicy) EnvOption {
	return func(e *Env) {
		if rewards != nil {
			e.rewards = rewards
		}
	}
}

// WithInvalidMoveTerminates controls whether a rejected move ends the
// episode.
func WithInvalidMoveTerminates(terminates bool) EnvOption {
	return func(e *Env) {
		e.invalidTerminates = terminates
	}
}

func NewEnv(cfg game.Config, options ...EnvOption) *Env {
	e := &Env{ // Default values
		state:             game.NewGameState(cfg),
		rewards:           NewStandardRewards(),
		invalidTerminates: true,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Reset starts a new episode from sc, or from the standard layout when sc
// is nil, and returns the first observation. An invalid scenario keeps the
// previous episode in place.
func (e *Env) Reset(sc *game.Scenario) (game.Observation, error) {
	if err := e.state.Reset(sc); err != nil {
		return game.Observation{}, fmt.Errorf("failed to reset env: %w", err)
	}
	e.steps = 0
	return e.state.Observation(e.state.SideToMove()), nil
}

// Step plays m for the side to move. The observation is taken for the side
// to move afterwards and the reward is from the mover's perspective. A
// rejected move leaves the board untouched and explains itself in
// info["message"].
func (e *Env) Step(m game.Move) (game.Observation, float64, bool, map[string]any) {
	mover := e.state.SideToMove()
	if done, winner := e.state.Terminal(); done {
		return e.state.Observation(mover), 0, true, map[string]any{
			"message": "game is over",
			"winner":  winner,
		}
	}

	rank := e.state.At(m.From).Rank()
	capture, err := e.state.Apply(m)
	if err != nil {
		log.Debug().Err(err).Msgf("rejected %s for %s", m, mover)
		return e.state.Observation(mover), e.rewards.Penalty(err), e.invalidTerminates, map[string]any{
			"message": err.Error(),
			"error":   err,
		}
	}
	e.steps++

	done, winner := e.state.Terminal()
	reward := e.rewards.Reward(Transition{
		Mover:    mover,
		Rank:     rank,
		Move:     m,
		Capture:  capture,
		Done:     done,
		Winner:   winner,
		Topology: e.state.Topology(),
	})

	info := map[string]any{"steps": e.steps}
	if capture.Captured() {
		info["capture"] = capture.Piece.Rank()
	}
	if done {
		info["winner"] = winner
	}
	return e.state.Observation(e.state.SideToMove()), reward, done, info
}

// State exposes the canonical game state of the episode.
func (e *Env) State() *game.GameState {
	return e.state
}

// LegalActions lists the encoded legal moves of the side to move.
func (e *Env) LegalActions() []int {
	return lo.Map(e.state.LegalMoves(e.state.SideToMove()), func(m game.Move, _ int) int {
		return game.EncodeMove(m)
	})
}
