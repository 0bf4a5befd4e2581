package engine

import (
	"jungle/agent"
	"jungle/experiments/metrics"
	"jungle/game"
	"time"

	"github.com/rs/zerolog/log"
)

// Match plays one game between two agents on a shared canonical state.
type Match struct {
	State    *game.GameState
	Agents   map[game.Side]agent.Agent
	maxMoves int
}

func NewMatch(state *game.GameState, red, green agent.Agent, maxMoves int) *Match {
	if red == nil || green == nil {
		panic("match needs an agent for each side")
	}
	if maxMoves <= 0 {
		maxMoves = MaxMoves
	}
	return &Match{
		State:    state,
		Agents:   map[game.Side]agent.Agent{game.Red: red, game.Green: green},
		maxMoves: maxMoves,
	}
}

// Run executes the game loop until the game is over, the side to move is
// stuck or the move ceiling is reached. The last two count as draws.
func (m *Match) Run() (game.Side, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		StartingSide: m.State.SideToMove(),
		StartTime:    time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting", m.State.SideToMove())

	for step := 1; step <= m.maxMoves; step++ {
		if done, _ := m.State.Terminal(); done {
			break
		}
		side := m.State.SideToMove()
		legal := m.State.LegalMoves(side)
		if len(legal) == 0 {
			log.Info().Msgf("%s has no legal moves", side)
			break
		}

		move, searchMetric := m.Agents[side].FindMove(m.State)
		capture, err := m.State.Apply(move)
		if err != nil {
			log.Warn().Err(err).Msgf("%s returned an invalid move, forcing %s", side, legal[0])
			move = legal[0]
			if capture, err = m.State.Apply(move); err != nil {
				panic(err)
			}
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Side:         side,
			Move:         move,
			SearchMetric: searchMetric,
		})
		gameMetric.TotalMoves = step
		if capture.Captured() {
			gameMetric.Captures++
			log.Debug().Msgf("step %d: %s %s takes %s", step, side, move, capture.Piece.Rank())
		}
	}

	_, winner := m.State.Terminal()
	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if winner != game.NoSide {
		log.Info().Msgf("game ended after %d moves, winner: %s", gameMetric.TotalMoves, winner)
	} else {
		log.Info().Msgf("game stopped after %d moves without a winner", gameMetric.TotalMoves)
	}
	return winner, gameMetric, moveMetrics
}
