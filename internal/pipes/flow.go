package pipes

import "github.com/zyedidia/generic/mapset"

// TerminationReason names the outcome of one flow attempt. These are
// expected results of the traversal state machine, never errors.
type TerminationReason uint8

const (
	ReasonMissingPipe TerminationReason = iota
	ReasonNoExit
	ReasonOutOfBounds
	ReasonDisconnected
	ReasonManualStop
)

// String returns a stable name for the reason.
func (r TerminationReason) String() string {
	switch r {
	case ReasonMissingPipe:
		return "missingPipe"
	case ReasonNoExit:
		return "noExit"
	case ReasonOutOfBounds:
		return "outOfBounds"
	case ReasonDisconnected:
		return "disconnected"
	case ReasonManualStop:
		return "manualStop"
	default:
		return "unknown"
	}
}

// FlowSink is the narrow boundary through which the flow controller drives
// the rendering layer's water visuals. Entry is nil for the start tile.
type FlowSink interface {
	SetWaterFlow(c Coord, entry *Direction)
	SetWaterFillProgress(c Coord, progress float64)
	FinalizeWaterSegment(c Coord, entry *Direction, exit Direction)
	SetAllWaterFill(progress float64)
}

// Filler drives a single tile's fill animation. Reset re-arms it for the
// next tile; Advance moves it forward by dt and reports progress in [0,1]
// plus whether the fill completed.
type Filler interface {
	Reset()
	Advance(dt float64) (progress float64, done bool)
}

// FlowScorer receives traversal events from the flow controller.
type FlowScorer interface {
	BeginFlow()
	RegisterFlowStep(c Coord, kind KindID)
	CompleteFlow(reason TerminationReason)
}

type flowState uint8

const (
	flowIdle flowState = iota
	flowFilling
)

// Flow walks the pipe network tile by tile from the start tile, resolving
// exit directions per kind strategy and animating each tile's fill through
// the injected Filler. Exactly one tile animates at a time; the controller
// is advanced cooperatively by Update once per tick.
type Flow struct {
	board  *Board
	start  Coord
	sink   FlowSink
	filler Filler
	scorer FlowScorer

	state   flowState
	cur     Coord
	entry   *Direction
	exit    Direction
	stopReq bool

	// usedExits remembers, per coordinate, the directions already used as an
	// exit during this flow attempt. Transient state, cleared on Start.
	usedExits map[Coord]mapset.Set[Direction]

	lastReason TerminationReason
	finished   bool
}

// NewFlow creates a flow controller for the given board and start tile.
func NewFlow(board *Board, start Coord, sink FlowSink, filler Filler, scorer FlowScorer) *Flow {
	return &Flow{
		board:  board,
		start:  start,
		sink:   sink,
		filler: filler,
		scorer: scorer,
	}
}

// Active reports whether a flow attempt is in progress.
func (f *Flow) Active() bool {
	return f.state == flowFilling
}

// Current returns the coordinate being filled, valid only while active.
func (f *Flow) Current() Coord {
	return f.cur
}

// LastReason returns the termination reason of the most recent completed
// attempt, and whether any attempt has completed.
func (f *Flow) LastReason() (TerminationReason, bool) {
	return f.lastReason, f.finished
}

// Start begins a flow attempt from the start tile. A request while a flow is
// already active is a no-op.
func (f *Flow) Start() {
	if f.state == flowFilling {
		return
	}
	f.usedExits = make(map[Coord]mapset.Set[Direction])
	f.stopReq = false
	f.scorer.BeginFlow()
	f.state = flowFilling
	f.enter(f.start, nil)
}

// Stop requests a cooperative stop. It is observed by the in-flight fill on
// the next Update, not synchronously.
func (f *Flow) Stop() {
	if f.state == flowFilling {
		f.stopReq = true
	}
}

// Update advances the in-flight tile fill by dt. This is the single
// suspension point per tile: the fill runs to completion before the next
// tile is evaluated.
func (f *Flow) Update(dt float64) {
	if f.state != flowFilling {
		return
	}
	progress, done := f.filler.Advance(dt)
	if f.stopReq {
		// Force the in-flight fill and every touched tile to completion,
		// then stop.
		f.sink.SetWaterFillProgress(f.cur, 1)
		f.sink.FinalizeWaterSegment(f.cur, f.entry, f.exit)
		f.sink.SetAllWaterFill(1)
		f.terminate(ReasonManualStop)
		return
	}
	f.sink.SetWaterFillProgress(f.cur, progress)
	if !done {
		return
	}
	f.sink.FinalizeWaterSegment(f.cur, f.entry, f.exit)
	f.advance()
}

// enter evaluates a newly reached tile: reads it, resolves its exit and arms
// the fill animation, or terminates the attempt.
func (f *Flow) enter(c Coord, entry *Direction) {
	f.cur = c
	f.entry = entry

	t := f.board.At(c)
	if t.Blocked || t.Kind == Empty {
		f.terminate(ReasonMissingPipe)
		return
	}
	kind, ok := Lookup(t.Kind)
	if !ok {
		f.terminate(ReasonMissingPipe)
		return
	}
	exit, ok := f.resolveExit(kind, Ports(t.Kind, t.Rotation), c, entry)
	if !ok {
		f.terminate(ReasonNoExit)
		return
	}
	f.exit = exit
	f.filler.Reset()
	f.sink.SetWaterFlow(c, entry)
}

// advance finalizes the filled tile (exit memory, scoring) and moves to the
// neighbor in the exit direction, or terminates.
func (f *Flow) advance() {
	f.markExit(f.cur, f.exit)

	t := f.board.At(f.cur)
	if t.Kind != Start {
		f.scorer.RegisterFlowStep(f.cur, t.Kind)
	}

	next := f.cur.Step(f.exit)
	if !f.board.InBounds(next) {
		f.terminate(ReasonOutOfBounds)
		return
	}
	nt := f.board.At(next)
	entry := f.exit.Opposite()
	if !nt.Occupied() || !hasPort(Ports(nt.Kind, nt.Rotation), entry) {
		f.terminate(ReasonDisconnected)
		return
	}
	e := entry
	f.enter(next, &e)
}

// resolveExit picks the exit direction for a tile per its kind's strategy,
// given the entry direction and the exits already used from this coordinate
// during this attempt.
func (f *Flow) resolveExit(kind Kind, ports []Direction, c Coord, entry *Direction) (Direction, bool) {
	if len(ports) == 0 {
		return 0, false
	}
	used := f.usedExits[c]

	switch kind.Strategy {
	case StrategyFirstPort:
		return ports[0], true

	case StrategyStraightThrough:
		if entry == nil {
			return ports[0], true
		}
		if !hasPort(ports, *entry) {
			return 0, false
		}
		opp := entry.Opposite()
		if used.Size() == 0 || !used.Has(opp) {
			return opp, true
		}
		for _, p := range ports {
			if p != opp && p != *entry && !used.Has(p) {
				return p, true
			}
		}
		// All alternates spent: reuse the primary direction rather than
		// ending the flow.
		return opp, true

	case StrategyAnyAvailable:
		if entry == nil {
			return ports[0], true
		}
		if !hasPort(ports, *entry) {
			return 0, false
		}
		for _, p := range ports {
			if p != *entry && !used.Has(p) {
				return p, true
			}
		}
		for _, p := range ports {
			if p != *entry {
				return p, true
			}
		}
		return *entry, true
	}

	return 0, false
}

// markExit records a direction as used for this tile and attempt.
func (f *Flow) markExit(c Coord, d Direction) {
	set, ok := f.usedExits[c]
	if !ok {
		set = mapset.New[Direction]()
		f.usedExits[c] = set
	}
	set.Put(d)
}

// terminate ends the attempt with a reason, reported exactly once.
func (f *Flow) terminate(reason TerminationReason) {
	f.state = flowIdle
	f.lastReason = reason
	f.finished = true
	f.scorer.CompleteFlow(reason)
}
