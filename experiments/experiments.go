package experiments

import (
	"fmt"
	"jungle/agent"
	"jungle/engine"
	"jungle/evaluator"
	"jungle/experiments/metrics"
	"jungle/game"
	"jungle/meta"
	"jungle/searcher"

	"github.com/rs/zerolog/log"
)

// Experiment pits pairs of agent configs against each other. The first
// config of each matchup plays Red.
type Experiment struct {
	Name     string
	Configs  []metrics.AgentConfig
	MatchUps [][2]metrics.AgentConfig
	Games    int
	MaxMoves int
	Rules    game.Config
	Seed     uint64
}

var baseline = metrics.AgentConfig{ID: 0, Evaluator: "uniform", Simulations: meta.SIMULATIONS, CPuct: meta.C_PUCT, Cutoff: meta.WITH_CUTOFF}

func CutoffExperiment() Experiment {
	cutoffConfigs := []metrics.AgentConfig{
		{ID: 1, Evaluator: "uniform", Simulations: baseline.Simulations, CPuct: baseline.CPuct, Cutoff: 10},
		{ID: 2, Evaluator: "uniform", Simulations: baseline.Simulations, CPuct: baseline.CPuct, Cutoff: 50},
		{ID: 3, Evaluator: "uniform", Simulations: baseline.Simulations, CPuct: baseline.CPuct, Cutoff: 200},
	}
	return pairWithBaseline("cutoff", cutoffConfigs)
}

func SimulationsExperiment() Experiment {
	simulationConfigs := []metrics.AgentConfig{
		{ID: 1, Evaluator: "uniform", Simulations: 25, CPuct: baseline.CPuct, Cutoff: baseline.Cutoff},
		{ID: 2, Evaluator: "uniform", Simulations: 50, CPuct: baseline.CPuct, Cutoff: baseline.Cutoff},
		{ID: 3, Evaluator: "uniform", Simulations: 200, CPuct: baseline.CPuct, Cutoff: baseline.Cutoff},
	}
	return pairWithBaseline("simulations", simulationConfigs)
}

func EvaluatorExperiment() Experiment {
	evaluatorConfigs := []metrics.AgentConfig{
		{ID: 1, Evaluator: "material", Simulations: baseline.Simulations, CPuct: baseline.CPuct, Cutoff: baseline.Cutoff, ValueWeight: 0.5},
		{ID: 2, Evaluator: "network", Simulations: baseline.Simulations, CPuct: baseline.CPuct, Cutoff: baseline.Cutoff, ValueWeight: 0.5},
	}
	return pairWithBaseline("evaluator", evaluatorConfigs)
}

// pairWithBaseline pairs the baseline agent against each config.
func pairWithBaseline(name string, configs []metrics.AgentConfig) Experiment {
	matchUps := make([][2]metrics.AgentConfig, 0, len(configs))
	for _, config := range configs {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}
	return Experiment{
		Name:     name,
		Configs:  append(configs, baseline),
		MatchUps: matchUps,
		Games:    meta.NUM_GAMES,
		MaxMoves: meta.MAX_MOVES,
		Seed:     1,
	}
}

// Run plays every matchup and returns the game and move records.
func (e Experiment) Run() ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", e.Name)

	for mi, matchup := range e.MatchUps {
		red, green := matchup[0], matchup[1]

		log.Info().Msgf("starting matchup %d of %d between red=%+v and green=%+v...", mi+1, len(e.MatchUps), red, green)

		for i := 0; i < e.Games; i++ {
			seed := e.Seed + uint64(count)*2
			winner, gameMetric, moveMetrics, err := runGame(red, green, e.Rules, e.MaxMoves, seed)
			if err != nil {
				return nil, nil, err
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     red.ID,
				Agent2:     green.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(e.MatchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", e.Name)
	return gameRecords, moveRecords, nil
}

// Save writes the agent configs and the records under root.
func (e Experiment) Save(root string, games []metrics.GameRecord, moves []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, e.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(e.Configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored %s experiment records in %s", e.Name, writer.Dir())
	return writer.Dir(), nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(red, green metrics.AgentConfig, rules game.Config, maxMoves int, seed uint64) (game.Side, metrics.GameMetric, []metrics.MoveMetric, error) {
	redMCTS, err := CreateMCTS(red, seed)
	if err != nil {
		return game.NoSide, metrics.GameMetric{}, nil, err
	}
	greenMCTS, err := CreateMCTS(green, seed+1)
	if err != nil {
		return game.NoSide, metrics.GameMetric{}, nil, err
	}

	match := engine.NewMatch(
		game.NewGameState(rules),
		agent.NewEvaluationAgent(redMCTS),
		agent.NewEvaluationAgent(greenMCTS),
		maxMoves,
	)
	winner, gameMetric, moveMetrics := match.Run()
	return winner, gameMetric, moveMetrics, nil
}

func CreateMCTS(config metrics.AgentConfig, seed uint64) (*searcher.MCTS, error) {
	eval, err := evaluator.New(config.Evaluator, evaluator.DefaultNetworkConfig())
	if err != nil {
		return nil, err
	}
	options := []searcher.Option{searcher.WithSeed(seed), searcher.WithMetrics()}

	if config.Simulations > 0 {
		options = append(options, searcher.WithSimulations(config.Simulations))
	}
	if config.CPuct > 0 {
		options = append(options, searcher.WithCPuct(config.CPuct))
	}
	if config.Cutoff > 0 {
		options = append(options, searcher.WithCutoff(config.Cutoff))
	}
	if config.ValueWeight > 0 {
		options = append(options, searcher.WithValueWeight(config.ValueWeight))
	}
	options = append(options, searcher.WithEvaluationFn(RolloutEvaluation(config.Evaluator)))

	return searcher.NewMCTS(eval, options...), nil
}

// RolloutEvaluation picks the heuristic that scores rollouts cut off before
// the game ends for the named evaluator.
func RolloutEvaluation(name string) game.Evaluate {
	switch name {
	case "material":
		return game.EvaluateMaterial
	case "network":
		return game.EvaluateMaterialAdvance
	default:
		return game.EvaluateDraw
	}
}
