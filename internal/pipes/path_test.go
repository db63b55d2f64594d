package pipes

import "testing"

// horizontal straight: ports {Left, Right} at rotation 0.
func placeRow(b *Board, row int, cols ...int) {
	for _, col := range cols {
		b.Place(C(col, row), Straight, 0)
	}
}

func TestLongestPathStraightRun(t *testing.T) {
	b := NewBoard(5, 1)
	placeRow(b, 0, 0, 1, 2, 3)

	path := LongestConnectedPath(b)
	if len(path) != 4 {
		t.Fatalf("expected path of 4, got %d: %v", len(path), path)
	}
}

func TestLongestPathIgnoresMisrotated(t *testing.T) {
	b := NewBoard(3, 1)
	b.Place(C(0, 0), Straight, 0) // {Left, Right}
	b.Place(C(1, 0), Straight, 1) // {Top, Bottom} - no mutual port
	b.Place(C(2, 0), Straight, 0)

	path := LongestConnectedPath(b)
	if len(path) != 1 {
		t.Errorf("expected isolated tiles (path 1), got %d: %v", len(path), path)
	}
}

func TestLongestPathSymmetry(t *testing.T) {
	b := NewBoard(4, 4)
	b.Place(C(0, 0), Elbow, 1) // {Right, Bottom}
	b.Place(C(1, 0), Straight, 0)
	b.Place(C(2, 0), Straight, 0)
	b.Place(C(0, 1), Straight, 1) // {Bottom, Top}

	path := LongestConnectedPath(b)
	for i := 1; i < len(path); i++ {
		if !Connected(b, path[i-1], path[i]) {
			t.Errorf("path edge %v -> %v not mutually connected", path[i-1], path[i])
		}
		if !Connected(b, path[i], path[i-1]) {
			t.Errorf("connectivity not symmetric for %v <-> %v", path[i-1], path[i])
		}
	}
	// The elbow joins both arms: (0,1) -> (0,0) -> (1,0) -> (2,0).
	if len(path) != 4 {
		t.Errorf("expected longest path of 4, got %d: %v", len(path), path)
	}
}

func TestLongestPathSkipsBlockedAndEmpty(t *testing.T) {
	b := NewBoard(3, 1)
	placeRow(b, 0, 0, 2)
	b.Set(C(1, 0), Tile{Blocked: true})

	path := LongestConnectedPath(b)
	if len(path) != 1 {
		t.Errorf("blocked gap should split the run, got %d: %v", len(path), path)
	}
	for _, c := range path {
		if !b.At(c).Occupied() {
			t.Errorf("path contains non-occupied tile %v", c)
		}
	}
}

func TestLongestPathEmptyBoard(t *testing.T) {
	b := NewBoard(3, 3)
	if path := LongestConnectedPath(b); len(path) != 0 {
		t.Errorf("expected empty path, got %v", path)
	}
}
