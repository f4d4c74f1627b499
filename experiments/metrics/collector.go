package metrics

import (
	"time"
)

type SearchMetric struct {
	Depth     int
	TimeLimit time.Duration
	Evaluator string
	Duration  time.Duration
	Nodes     int
	Leaves    int
	Prunes    int
	TimedOut  bool
	Score     int
}

type MoveMetric struct {
	Step   int
	Player string // Side name
	Move   string
	Flips  int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // Side name, "Nobody" on a draw
	Black          int    // Final disk counts
	White          int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	Start(depth int, limit time.Duration, evaluator string)
	AddNode()
	AddLeaf()
	AddPrune()
	SetTimedOut()
	Complete(score int) SearchMetric
}

// Search is single-threaded, so the collector needs no synchronization.
type collector struct {
	depth     int
	limit     time.Duration
	evaluator string
	startTime time.Time
	nodes     int
	leaves    int
	prunes    int
	timedOut  bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int, limit time.Duration, evaluator string) {
	*m = collector{
		depth:     depth,
		limit:     limit,
		evaluator: evaluator,
		startTime: time.Now(),
	}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddPrune() {
	m.prunes++
}

func (m *collector) SetTimedOut() {
	m.timedOut = true
}

func (m *collector) Complete(score int) SearchMetric {
	return SearchMetric{
		Depth:     m.depth,
		TimeLimit: m.limit,
		Evaluator: m.evaluator,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes,
		Leaves:    m.leaves,
		Prunes:    m.prunes,
		TimedOut:  m.timedOut,
		Score:     score,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int, limit time.Duration, evaluator string) {}
func (m *dummyCollector) AddNode()                                              {}
func (m *dummyCollector) AddLeaf()                                              {}
func (m *dummyCollector) AddPrune()                                             {}
func (m *dummyCollector) SetTimedOut()                                          {}
func (m *dummyCollector) Complete(score int) SearchMetric                       { return SearchMetric{} }
