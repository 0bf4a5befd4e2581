// meta/meta.go
package meta

// SIMULATIONS defines the number of MCTS simulations per move.
const SIMULATIONS = 100

// C_PUCT defines the PUCT exploration constant.
const C_PUCT = 1.0

// WITH_CUTOFF defines the rollout ply cap for MCTS.
const WITH_CUTOFF = 100

// MAX_MOVES defines the move ceiling of a match.
const MAX_MOVES = 300

// NUM_GAMES defines how many games each experiment matchup plays.
const NUM_GAMES = 10

// RESULTS_DIR is where experiment CSV files are written.
const RESULTS_DIR = "experiments/results"
