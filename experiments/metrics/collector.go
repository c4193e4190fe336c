package metrics

import (
	"time"
)

type SearchMetric struct {
	Cutoff   int
	Duration time.Duration
	Nodes    int // Nodes visited, root included
	Prunes   int // Alpha-beta cuts
	Cutoffs  int // Nodes scored as a tie because of the depth cutoff
}

type MoveMetric struct {
	Step     int
	Mark     string
	Position int
	Duration time.Duration // Time the player took to choose
	SearchMetric
}

type GameMetric struct {
	Dimension  int
	Outcome    string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector accumulates statistics of a single search. The searcher runs on
// one goroutine, so implementations need no synchronization.
type Collector interface {
	Start(cutoff int)
	AddNode()
	AddPrune()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	cutoff    int
	startTime time.Time
	nodes     int
	prunes    int
	cutoffs   int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(cutoff int) {
	m.startTime = time.Now()
	m.cutoff = cutoff
	m.nodes = 0
	m.prunes = 0
	m.cutoffs = 0
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddPrune() {
	m.prunes++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Cutoff:   m.cutoff,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Prunes:   m.prunes,
		Cutoffs:  m.cutoffs,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(cutoff int)       {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddPrune()              {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
