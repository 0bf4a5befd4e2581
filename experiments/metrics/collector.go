package metrics

import (
	"jungle/game"
	"time"
)

type SearchMetric struct {
	Simulations  int
	Cutoff       int
	Duration     time.Duration
	Episodes     int
	FullPlayouts int
	TreeSize     int
	MaxDepth     int
}

type MoveMetric struct {
	Step int
	Side game.Side
	Move game.Move
	SearchMetric
}

type GameMetric struct {
	StartingSide game.Side
	Winner       game.Side
	StartTime    time.Time
	EndTime      time.Time
	Duration     time.Duration
	TotalMoves   int
	Captures     int
}

type Collector interface {
	Start(simulations, cutoff int)
	AddEpisode()
	AddFullPlayout()
	// AddDepth records how deep a simulation descended before expanding.
	AddDepth(depth int)
	Complete(treeSize int) SearchMetric
}

type collector struct {
	simulations  int
	cutoff       int
	startTime    time.Time
	episodes     int
	fullPlayouts int
	maxDepth     int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(simulations, cutoff int) {
	m.startTime = time.Now()
	m.simulations = simulations
	m.cutoff = cutoff
	m.episodes = 0
	m.fullPlayouts = 0
	m.maxDepth = 0
}

func (m *collector) AddEpisode() {
	m.episodes++
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts++
}

func (m *collector) AddDepth(depth int) {
	m.maxDepth = max(m.maxDepth, depth)
}

func (m *collector) Complete(treeSize int) SearchMetric {
	return SearchMetric{
		Simulations:  m.simulations,
		Cutoff:       m.cutoff,
		Duration:     time.Since(m.startTime),
		Episodes:     m.episodes,
		FullPlayouts: m.fullPlayouts,
		TreeSize:     treeSize,
		MaxDepth:     m.maxDepth,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(simulations, cutoff int)      {}
func (m *dummyCollector) AddEpisode()                        {}
func (m *dummyCollector) AddFullPlayout()                    {}
func (m *dummyCollector) AddDepth(depth int)                 {}
func (m *dummyCollector) Complete(treeSize int) SearchMetric { return SearchMetric{} }
