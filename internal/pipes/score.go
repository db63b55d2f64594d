package pipes

import (
	"math"

	"github.com/charmbracelet/log"
)

// FlowResult summarizes one completed flow attempt.
type FlowResult struct {
	Reason         TerminationReason
	TilesTraversed int
	Target         int
	GoalAchieved   bool // TilesTraversed >= Target
}

// ScoreConfig holds the scoring constants, supplied as validated input.
type ScoreConfig struct {
	TileReward     int  // reward per traversed tile
	ReplacePenalty int  // penalty for overwriting a placed pipe
	TargetLength   int  // flow length required to clear the stage
	AllowNegative  bool // permit the cumulative score below zero
}

// Scores tracks the cumulative score, per-flow visit counts and target
// progress. Flow steps are bounded by each kind's max-visit count so
// multi-port tiles cannot be farmed for unbounded score.
type Scores struct {
	cfg     ScoreConfig
	total   int
	target  int
	flowing bool

	visits   map[Coord]int
	distance int

	onChange   func(total int)
	onComplete func(FlowResult)
}

// NewScores creates a score controller with the given constants.
func NewScores(cfg ScoreConfig) *Scores {
	s := &Scores{cfg: cfg, target: 1}
	s.SetTarget(float64(cfg.TargetLength))
	return s
}

// SetOnChange registers the score-change callback.
func (s *Scores) SetOnChange(fn func(total int)) {
	s.onChange = fn
}

// SetOnComplete registers the flow-completion callback.
func (s *Scores) SetOnComplete(fn func(FlowResult)) {
	s.onComplete = fn
}

// Total returns the cumulative score.
func (s *Scores) Total() int {
	return s.total
}

// Target returns the configured target flow length.
func (s *Scores) Target() int {
	return s.target
}

// FlowDistance returns the tiles traversed in the current flow.
func (s *Scores) FlowDistance() int {
	return s.distance
}

// SetTarget stores the target flow length as a positive integer. Non-finite
// inputs are ignored; fractional values are truncated; the floor is 1.
func (s *Scores) SetTarget(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		log.Warn("pipes: ignoring non-finite target length", "value", v)
		return
	}
	n := int(v)
	if n < 1 {
		n = 1
	}
	s.target = n
}

// HandlePlacement applies the replacement penalty when a placed pipe was
// overwritten. Fresh placements have no effect.
func (s *Scores) HandlePlacement(replaced bool) {
	if replaced {
		s.add(-s.cfg.ReplacePenalty)
	}
}

// BeginFlow resets per-flow visit counts and distance.
func (s *Scores) BeginFlow() {
	s.visits = make(map[Coord]int)
	s.distance = 0
	s.flowing = true
}

// RegisterFlowStep credits one traversal of the tile, bounded by the kind's
// max-visit count. Steps past the cap are silently ignored. Only effective
// while a flow is active.
func (s *Scores) RegisterFlowStep(c Coord, kind KindID) {
	if !s.flowing {
		return
	}
	def, ok := Lookup(kind)
	if !ok {
		log.Warn("pipes: flow step on unknown kind", "kind", kind, "coord", c)
		return
	}
	if s.visits[c] >= def.MaxVisits {
		return
	}
	s.visits[c]++
	s.distance++
	s.add(s.cfg.TileReward)
}

// CompleteFlow computes goal achievement, clears per-flow state and emits a
// single completion event. A no-op when no flow is active, which protects
// against double completion.
func (s *Scores) CompleteFlow(reason TerminationReason) {
	if !s.flowing {
		return
	}
	result := FlowResult{
		Reason:         reason,
		TilesTraversed: s.distance,
		Target:         s.target,
		GoalAchieved:   s.distance >= s.target,
	}
	s.flowing = false
	s.visits = nil
	s.distance = 0
	if s.onComplete != nil {
		s.onComplete(result)
	}
}

// add applies a delta with the zero floor. Deltas that do not change the
// clamped value are skipped and emit no change event.
func (s *Scores) add(delta int) {
	next := s.total + delta
	if next < 0 && !s.cfg.AllowNegative {
		next = 0
	}
	if next == s.total {
		return
	}
	s.total = next
	if s.onChange != nil {
		s.onChange(s.total)
	}
}
