package evaluator

import (
	"fmt"
	"io"
	"jungle/game"
	"math"

	"github.com/patrikeh/go-deep"
	"gopkg.in/yaml.v3"
)

// NetworkConfig defines the hidden layers shared by the policy and value
// networks.
type NetworkConfig struct {
	Hidden []int   `yaml:"hidden"`
	StdDev float64 `yaml:"std_dev"`
}

func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Hidden: []int{64},
		StdDev: 0.1,
	}
}

// LoadNetworkConfig reads a network config from YAML. Missing fields keep
// their defaults.
func LoadNetworkConfig(r io.Reader) (NetworkConfig, error) {
	cfg := DefaultNetworkConfig()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && err != io.EOF {
		return NetworkConfig{}, fmt.Errorf("failed to decode network config: %w", err)
	}
	return cfg, nil
}

// Network is a pair of multilayer perceptrons over the flattened
// observation: a softmax policy head over every encoded move and a scalar
// value head squashed with tanh.
type Network struct {
	policy *deep.Neural
	value  *deep.Neural
}

func NewNetwork(cfg NetworkConfig) *Network {
	if len(cfg.Hidden) == 0 {
		cfg.Hidden = DefaultNetworkConfig().Hidden
	}
	if cfg.StdDev <= 0 {
		cfg.StdDev = DefaultNetworkConfig().StdDev
	}
	inputs := game.Rows * game.Cols * game.Channels

	return &Network{
		policy: deep.NewNeural(&deep.Config{
			Inputs:     inputs,
			Layout:     layout(cfg.Hidden, game.NumActions),
			Activation: deep.ActivationReLU,
			Mode:       deep.ModeMultiClass,
			Weight:     deep.NewNormal(cfg.StdDev, 0.0),
			Bias:       true,
		}),
		value: deep.NewNeural(&deep.Config{
			Inputs:     inputs,
			Layout:     layout(cfg.Hidden, 1),
			Activation: deep.ActivationReLU,
			Mode:       deep.ModeRegression,
			Weight:     deep.NewNormal(cfg.StdDev, 0.0),
			Bias:       true,
		}),
	}
}

func layout(hidden []int, outputs int) []int {
	layers := append([]int{}, hidden...)
	return append(layers, outputs)
}

func (n *Network) Evaluate(obs game.Observation) ([]float64, float64) {
	features := obs.Flatten()
	prior := n.policy.Predict(features)
	value := math.Tanh(n.value.Predict(features)[0])
	return prior, value
}
