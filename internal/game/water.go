package game

import "github.com/vovakirdan/tui-pipeworks/internal/pipes"

// waterSegment is one finalized run of water through a tile.
// Entry is nil for the start tile.
type waterSegment struct {
	entry *pipes.Direction
	exit  pipes.Direction
}

// waterGrid tracks the water overlay for rendering. It implements
// pipes.FlowSink and is cleared before every flow attempt.
type waterGrid struct {
	fills    map[pipes.Coord]float64
	segments map[pipes.Coord][]waterSegment
}

func newWaterGrid() *waterGrid {
	w := &waterGrid{}
	w.Reset()
	return w
}

// Reset clears all water for a fresh attempt.
func (w *waterGrid) Reset() {
	w.fills = make(map[pipes.Coord]float64)
	w.segments = make(map[pipes.Coord][]waterSegment)
}

// HasWater reports whether water has entered the tile.
func (w *waterGrid) HasWater(c pipes.Coord) bool {
	_, ok := w.fills[c]
	return ok
}

// Fill returns the tile's fill progress in [0, 1].
func (w *waterGrid) Fill(c pipes.Coord) float64 {
	return w.fills[c]
}

// Sealed reports whether water finished crossing the tile at least once.
func (w *waterGrid) Sealed(c pipes.Coord) bool {
	return len(w.segments[c]) > 0
}

// SetWaterFlow marks a tile as receiving water.
func (w *waterGrid) SetWaterFlow(c pipes.Coord, entry *pipes.Direction) {
	w.fills[c] = 0
}

// SetWaterFillProgress updates the in-flight tile's fill fraction.
func (w *waterGrid) SetWaterFillProgress(c pipes.Coord, progress float64) {
	w.fills[c] = progress
}

// FinalizeWaterSegment records a completed entry-to-exit run through a tile.
func (w *waterGrid) FinalizeWaterSegment(c pipes.Coord, entry *pipes.Direction, exit pipes.Direction) {
	w.fills[c] = 1
	var e *pipes.Direction
	if entry != nil {
		v := *entry
		e = &v
	}
	w.segments[c] = append(w.segments[c], waterSegment{entry: e, exit: exit})
}

// SetAllWaterFill forces every touched tile to the same fill fraction.
func (w *waterGrid) SetAllWaterFill(progress float64) {
	for c := range w.fills {
		w.fills[c] = progress
	}
}
