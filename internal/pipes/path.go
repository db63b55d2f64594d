package pipes

import "github.com/zyedidia/generic/mapset"

// Connected reports whether two adjacent tiles are mutually connected:
// a exposes a port facing b AND b exposes the opposite-facing port back.
// The symmetry prevents diagonal or one-way leakage.
func Connected(b *Board, a, n Coord) bool {
	var dir Direction
	switch {
	case n == a.Step(DirTop):
		dir = DirTop
	case n == a.Step(DirRight):
		dir = DirRight
	case n == a.Step(DirBottom):
		dir = DirBottom
	case n == a.Step(DirLeft):
		dir = DirLeft
	default:
		return false
	}
	ta, tn := b.At(a), b.At(n)
	if !ta.Occupied() || !tn.Occupied() {
		return false
	}
	return hasPort(Ports(ta.Kind, ta.Rotation), dir) &&
		hasPort(Ports(tn.Kind, tn.Rotation), dir.Opposite())
}

// LongestConnectedPath returns the longest simple path of mutually-connected,
// unblocked, occupied tiles. Every occupied cell is tried as a start point;
// the search backtracks after exhausting a branch so cells can re-appear in
// other branches. Exponential in the worst case, but boards are tens of
// cells. Used only for path highlighting, never for game outcomes.
func LongestConnectedPath(b *Board) []Coord {
	var best []Coord
	visited := mapset.New[Coord]()

	dirs := [4]Direction{DirTop, DirRight, DirBottom, DirLeft}

	var dfs func(c Coord, path []Coord)
	dfs = func(c Coord, path []Coord) {
		extended := false
		for _, d := range dirs {
			n := c.Step(d)
			if !b.InBounds(n) || visited.Has(n) || !Connected(b, c, n) {
				continue
			}
			extended = true
			visited.Put(n)
			dfs(n, append(path, n))
			visited.Remove(n)
		}
		// Dead end: keep the longest path found so far.
		if !extended && len(path) > len(best) {
			best = append([]Coord(nil), path...)
		}
	}

	for _, c := range b.AllCoords() {
		if !b.At(c).Occupied() {
			continue
		}
		visited.Put(c)
		dfs(c, []Coord{c})
		visited.Remove(c)
	}
	return best
}
