package main

import (
	"flag"
	"fmt"
	"jungle/agent"
	"jungle/engine"
	"jungle/evaluator"
	"jungle/experiments"
	"jungle/experiments/metrics"
	"jungle/game"
	"jungle/meta"
	"jungle/searcher"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type options struct {
	games       int
	simulations int
	cutoff      int
	cPuct       float64
	valueWeight float64
	maxMoves    int
	seed        uint64
	red         string
	green       string
	rules       string
	network     string
	scenarios   string
	scenario    string
	experiment  string
	out         string
}

func main() {
	var opts options
	flag.IntVar(&opts.games, "games", 1, "number of games to play")
	flag.IntVar(&opts.simulations, "simulations", meta.SIMULATIONS, "MCTS simulations per move")
	flag.IntVar(&opts.cutoff, "cutoff", meta.WITH_CUTOFF, "rollout ply cap")
	flag.Float64Var(&opts.cPuct, "cpuct", meta.C_PUCT, "PUCT exploration constant")
	flag.Float64Var(&opts.valueWeight, "value-weight", 0, "weight of the evaluator value in leaf outcomes")
	flag.IntVar(&opts.maxMoves, "max-moves", meta.MAX_MOVES, "move ceiling per game")
	flag.Uint64Var(&opts.seed, "seed", uint64(time.Now().UnixNano()), "random seed")
	flag.StringVar(&opts.red, "red", "uniform", "evaluator for Red: uniform, material, network or random")
	flag.StringVar(&opts.green, "green", "uniform", "evaluator for Green: uniform, material, network or random")
	flag.StringVar(&opts.rules, "rules", "", "YAML file with rule variant flags")
	flag.StringVar(&opts.network, "network", "", "YAML file with the network evaluator config")
	flag.StringVar(&opts.scenarios, "scenarios", "", "YAML file with starting scenarios")
	flag.StringVar(&opts.scenario, "scenario", "", "name of the scenario to start from")
	flag.StringVar(&opts.experiment, "experiment", "", "run a preset experiment: cutoff, simulations or evaluator")
	flag.StringVar(&opts.out, "out", meta.RESULTS_DIR, "directory for CSV records")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var err error
	if opts.experiment != "" {
		err = runExperiment(opts)
	} else {
		err = runMatches(opts)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}

func runExperiment(opts options) error {
	var e experiments.Experiment
	switch opts.experiment {
	case "cutoff":
		e = experiments.CutoffExperiment()
	case "simulations":
		e = experiments.SimulationsExperiment()
	case "evaluator":
		e = experiments.EvaluatorExperiment()
	default:
		return fmt.Errorf("unknown experiment %q", opts.experiment)
	}
	e.Seed = opts.seed

	rules, err := loadRules(opts.rules)
	if err != nil {
		return err
	}
	e.Rules = rules

	games, moves, err := e.Run()
	if err != nil {
		return err
	}
	_, err = e.Save(opts.out, games, moves)
	return err
}

func runMatches(opts options) error {
	rules, err := loadRules(opts.rules)
	if err != nil {
		return err
	}
	scenario, err := loadScenario(opts.scenarios, opts.scenario)
	if err != nil {
		return err
	}
	networkConfig, err := loadNetworkConfig(opts.network)
	if err != nil {
		return err
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	wins := map[game.Side]int{}
	for i := 0; i < opts.games; i++ {
		seed := opts.seed + uint64(i)*2
		red, err := createAgent(opts.red, opts, networkConfig, seed)
		if err != nil {
			return err
		}
		green, err := createAgent(opts.green, opts, networkConfig, seed+1)
		if err != nil {
			return err
		}

		state := game.NewGameState(rules)
		if err := state.Reset(scenario); err != nil {
			return err
		}
		log.Info().Msgf("game %d of %d started", i+1, opts.games)
		winner, gameMetric, moveMetrics := engine.NewMatch(state, red, green, opts.maxMoves).Run()
		wins[winner]++
		log.Debug().Msgf("final position:\n%s", state)

		gameRecords = append(gameRecords, metrics.GameRecord{ID: i + 1, Agent1: 1, Agent2: 2, GameMetric: gameMetric})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{Game: i + 1, MoveMetric: mm})
		}
	}
	log.Info().Msgf("red %d, green %d, draws %d", wins[game.Red], wins[game.Green], wins[game.NoSide])

	writer, err := metrics.NewWriter(opts.out, "matches")
	if err != nil {
		return err
	}
	if err := writer.WriteAgentConfigs([]metrics.AgentConfig{
		agentConfig(1, opts.red, opts),
		agentConfig(2, opts.green, opts),
	}); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return nil
}

func createAgent(name string, opts options, networkConfig evaluator.NetworkConfig, seed uint64) (agent.Agent, error) {
	if name == "random" {
		return agent.NewRandomAgent(seed), nil
	}
	eval, err := evaluator.New(name, networkConfig)
	if err != nil {
		return nil, err
	}
	mcts := searcher.NewMCTS(eval,
		searcher.WithSimulations(opts.simulations),
		searcher.WithCutoff(opts.cutoff),
		searcher.WithCPuct(opts.cPuct),
		searcher.WithValueWeight(opts.valueWeight),
		searcher.WithSeed(seed),
		searcher.WithEvaluationFn(experiments.RolloutEvaluation(name)),
		searcher.WithMetrics(),
	)
	return agent.NewEvaluationAgent(mcts), nil
}

func agentConfig(id int, name string, opts options) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:          id,
		Evaluator:   name,
		Simulations: opts.simulations,
		CPuct:       opts.cPuct,
		Cutoff:      opts.cutoff,
		ValueWeight: opts.valueWeight,
	}
}

func loadRules(path string) (game.Config, error) {
	if path == "" {
		return game.Config{}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return game.Config{}, fmt.Errorf("failed to open rules: %w", err)
	}
	defer f.Close()
	return game.LoadConfig(f)
}

func loadNetworkConfig(path string) (evaluator.NetworkConfig, error) {
	if path == "" {
		return evaluator.DefaultNetworkConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return evaluator.NetworkConfig{}, fmt.Errorf("failed to open network config: %w", err)
	}
	defer f.Close()
	return evaluator.LoadNetworkConfig(f)
}

// loadScenario returns nil, the standard layout, when no file is given.
func loadScenario(path, name string) (*game.Scenario, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenarios: %w", err)
	}
	defer f.Close()

	scenarios, err := game.LoadScenarios(f)
	if err != nil {
		return nil, err
	}
	for i := range scenarios {
		if name == "" || scenarios[i].Name == name {
			return &scenarios[i], nil
		}
	}
	return nil, fmt.Errorf("scenario %q not found in %s", name, path)
}
