package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth    int
	Pruning  bool
	Duration time.Duration
	Nodes    int // Positions entered, including leaves
	Leaves   int // Positions scored by the evaluator
	Cutoffs  int // Alpha-beta prunes
}

type MoveMetric struct {
	Step     int
	Player   int // Player ID
	Strategy string
	Row      int
	Col      int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer int // Player ID
	Winner         int // Player ID, 0 for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type AgentConfig struct {
	ID       int
	Strategy string
	Depth    int
	Seed     uint64
}

type Collector interface {
	Start(depth int, pruning bool)
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	depth     int
	pruning   bool
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, pruning bool) {
	m.startTime = time.Now()
	m.depth = depth
	m.pruning = pruning
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Pruning:  m.pruning,
		Duration: time.Since(m.startTime),
		Nodes:    int(m.nodes.Load()),
		Leaves:   int(m.leaves.Load()),
		Cutoffs:  int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, pruning bool) {}
func (m *dummyCollector) AddNode()                      {}
func (m *dummyCollector) AddLeaf()                      {}
func (m *dummyCollector) AddCutoff()                    {}
func (m *dummyCollector) Complete() SearchMetric        { return SearchMetric{} }
