package game

// Snapshot contains the complete game state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick     uint64
	Score    int
	Stage    int
	Target   int
	Longest  int
	CursorX  int
	CursorY  int
	StartX   int
	StartY   int
	GameOver bool
	Paused   bool

	// Board cells (flattened row-major, 3 ints per cell: kind, rotation, blocked)
	Cols      int
	Rows      int
	BoardData []int

	// Queue contents (2 ints per item: kind, rotation)
	QueueData []int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tick,
		Stage:    g.stage,
		Longest:  g.longest,
		CursorX:  g.cursor.Col,
		CursorY:  g.cursor.Row,
		StartX:   g.start.Col,
		StartY:   g.start.Row,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if g.scores != nil {
		snap.Score = g.scores.Total()
		snap.Target = g.scores.Target()
	}

	if g.board != nil {
		snap.Cols = g.board.Cols
		snap.Rows = g.board.Rows
		snap.BoardData = make([]int, 0, g.board.Cols*g.board.Rows*3)
		for _, c := range g.board.AllCoords() {
			t := g.board.At(c)
			blocked := 0
			if t.Blocked {
				blocked = 1
			}
			snap.BoardData = append(snap.BoardData, int(t.Kind), int(t.Rotation), blocked)
		}
	}

	if g.queue != nil {
		for _, item := range g.queue.Items() {
			snap.QueueData = append(snap.QueueData, int(item.Kind), int(item.Rotation))
		}
	}

	return snap
}
