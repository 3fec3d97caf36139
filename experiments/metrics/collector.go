package metrics

import (
	"sync/atomic"
	"time"
)

// SearchMetric describes the cost of one move search.
type SearchMetric struct {
	Strategy string
	Duration time.Duration
	Nodes    int // positions visited
	Leaves   int // positions statically evaluated
}

type MoveMetric struct {
	Step   int
	Player string // color
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" on a draw by turn cap
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(strategy string)
	AddNode()
	AddLeaf()
	Complete() SearchMetric
}

type collector struct {
	strategy  string
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string) {
	m.strategy = strategy
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.leaves.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy: m.strategy,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string)  {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
