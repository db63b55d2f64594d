package pipes

import "github.com/charmbracelet/log"

// Tile is the state of a single board cell. Blocked is mutually exclusive
// with holding a pipe: a blocked cell never receives a kind.
type Tile struct {
	Kind     KindID
	Rotation Rotation // meaningful only when Kind != Empty
	Blocked  bool
}

// Occupied reports whether the tile holds a pipe.
func (t Tile) Occupied() bool {
	return t.Kind != Empty && !t.Blocked
}

// Board is a rectangular grid of tiles with dimensions fixed for the
// lifetime of a stage. Cells are stored in row-major order.
type Board struct {
	Cols  int
	Rows  int
	tiles []Tile
}

// NewBoard creates an empty, unblocked board.
func NewBoard(cols, rows int) *Board {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Board{
		Cols:  cols,
		Rows:  rows,
		tiles: make([]Tile, cols*rows),
	}
}

func (b *Board) index(c Coord) int {
	return c.Row*b.Cols + c.Col
}

// InBounds reports whether the coordinate lies on the board.
func (b *Board) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < b.Cols && c.Row >= 0 && c.Row < b.Rows
}

// At returns the tile at the given coordinate, or an empty tile out of bounds.
func (b *Board) At(c Coord) Tile {
	if !b.InBounds(c) {
		return Tile{}
	}
	return b.tiles[b.index(c)]
}

// Set overwrites the tile at the given coordinate. Out of bounds is ignored.
func (b *Board) Set(c Coord, t Tile) {
	if b.InBounds(c) {
		b.tiles[b.index(c)] = t
	}
}

// Place puts a pipe on an in-bounds, unblocked cell and reports whether the
// cell previously held a pipe (a replacement).
func (b *Board) Place(c Coord, kind KindID, r Rotation) (replaced, ok bool) {
	if !b.InBounds(c) {
		return false, false
	}
	t := b.tiles[b.index(c)]
	if t.Blocked {
		return false, false
	}
	replaced = t.Kind != Empty
	b.tiles[b.index(c)] = Tile{Kind: kind, Rotation: r}
	return replaced, true
}

// Reset clears every cell back to empty and unblocked.
func (b *Board) Reset() {
	for i := range b.tiles {
		b.tiles[i] = Tile{}
	}
}

// AllCoords returns every board coordinate, ordered by row then column.
func (b *Board) AllCoords() []Coord {
	coords := make([]Coord, 0, b.Cols*b.Rows)
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			coords = append(coords, C(col, row))
		}
	}
	return coords
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	tiles := make([]Tile, len(b.tiles))
	copy(tiles, b.tiles)
	return &Board{Cols: b.Cols, Rows: b.Rows, tiles: tiles}
}

// Build produces a board of the given dimensions with a deterministic-random
// subset of cells marked blocked. All coordinates are shuffled with the
// injected generator (never the global RNG) and the first
// floor(rows*cols*blockedPct) become blocked, capped at rows*cols-1 so at
// least one cell remains free. Non-positive dimensions are a soft failure:
// the result is an empty board, not an error, so the caller can decide how
// to recover.
func Build(rows, cols int, blockedPct float64, rng *Rand) (*Board, []Coord) {
	if rows <= 0 || cols <= 0 {
		log.Warn("pipes: invalid board dimensions", "rows", rows, "cols", cols)
		return NewBoard(0, 0), nil
	}

	b := NewBoard(cols, rows)
	total := rows * cols

	count := int(float64(total) * blockedPct)
	if count < 0 {
		count = 0
	}
	if count > total-1 {
		count = total - 1
	}

	coords := b.AllCoords()
	rng.Shuffle(len(coords), func(i, j int) {
		coords[i], coords[j] = coords[j], coords[i]
	})

	blocked := make([]Coord, 0, count)
	for _, c := range coords[:count] {
		b.Set(c, Tile{Blocked: true})
		blocked = append(blocked, c)
	}
	return b, blocked
}

// PlaceStart picks a random unblocked cell and rotation for the start tile.
// Candidates are drawn without replacement; a rotation is valid only if the
// start pipe's single exit points at an in-bounds, unblocked neighbor. Among
// the valid rotations of the first workable candidate one is picked uniformly
// at random. When no candidate works the board is left without a start tile
// and ok is false; this is a terminal stage-initialization failure, not
// retried here.
func PlaceStart(b *Board, rng *Rand) (pos Coord, rot Rotation, ok bool) {
	base := Ports(Start, 0)
	if len(base) == 0 {
		return Coord{}, 0, false
	}

	candidates := make([]Coord, 0, b.Cols*b.Rows)
	for _, c := range b.AllCoords() {
		if !b.At(c).Blocked {
			candidates = append(candidates, c)
		}
	}
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})

	for _, c := range candidates {
		var valid []Rotation
		for r := Rotation(0); r < 4; r++ {
			exit := base[0].Rotated(r)
			n := c.Step(exit)
			if b.InBounds(n) && !b.At(n).Blocked {
				valid = append(valid, r)
			}
		}
		if len(valid) == 0 {
			continue
		}
		rot = valid[rng.Intn(len(valid))]
		b.Set(c, Tile{Kind: Start, Rotation: rot})
		return c, rot, true
	}

	log.Warn("pipes: no valid start tile position", "cols", b.Cols, "rows", b.Rows)
	return Coord{}, 0, false
}
