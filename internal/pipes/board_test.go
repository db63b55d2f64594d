package pipes

import "testing"

func TestBuildDeterminism(t *testing.T) {
	b1, blocked1 := Build(6, 8, 0.2, NewRand(1234))
	b2, blocked2 := Build(6, 8, 0.2, NewRand(1234))

	if len(blocked1) != len(blocked2) {
		t.Fatalf("blocked counts differ: %d vs %d", len(blocked1), len(blocked2))
	}
	for i := range blocked1 {
		if blocked1[i] != blocked2[i] {
			t.Errorf("blocked coord %d differs: %v vs %v", i, blocked1[i], blocked2[i])
		}
	}
	for _, c := range b1.AllCoords() {
		if b1.At(c) != b2.At(c) {
			t.Errorf("tile at %v differs", c)
		}
	}
}

func TestBuildBlockedCountBound(t *testing.T) {
	tests := []struct {
		rows, cols int
		pct        float64
		want       int
	}{
		{4, 5, 0, 0},
		{4, 5, 0.25, 5},
		{4, 5, 0.5, 10},
		{4, 5, 1.0, 19}, // capped at total-1
		{1, 1, 1.0, 0},
		{3, 3, 0.99, 8},
	}
	for _, tc := range tests {
		_, blocked := Build(tc.rows, tc.cols, tc.pct, NewRand(7))
		if len(blocked) != tc.want {
			t.Errorf("Build(%d,%d,%v): %d blocked, want %d",
				tc.rows, tc.cols, tc.pct, len(blocked), tc.want)
		}
	}
}

func TestBuildInvalidDimensions(t *testing.T) {
	// Soft failure: empty board, no blocked list, no panic.
	b, blocked := Build(0, 5, 0.5, NewRand(1))
	if b.Cols != 0 || b.Rows != 0 {
		t.Errorf("expected empty board, got %dx%d", b.Cols, b.Rows)
	}
	if len(blocked) != 0 {
		t.Errorf("expected no blocked coords, got %d", len(blocked))
	}
}

func TestBlockedCellsHoldNoPipe(t *testing.T) {
	b, blocked := Build(5, 5, 0.4, NewRand(11))
	for _, c := range blocked {
		tile := b.At(c)
		if !tile.Blocked {
			t.Errorf("coord %v reported blocked but tile is not", c)
		}
		if tile.Kind != Empty {
			t.Errorf("blocked tile %v holds kind %v", c, tile.Kind)
		}
		if _, ok := b.Place(c, Straight, 0); ok {
			t.Errorf("placement succeeded on blocked tile %v", c)
		}
	}
}

func TestPlaceReportsReplacement(t *testing.T) {
	b := NewBoard(3, 3)
	if replaced, ok := b.Place(C(1, 1), Straight, 0); !ok || replaced {
		t.Errorf("fresh placement: replaced=%v ok=%v", replaced, ok)
	}
	if replaced, ok := b.Place(C(1, 1), Elbow, 2); !ok || !replaced {
		t.Errorf("overwrite: replaced=%v ok=%v", replaced, ok)
	}
	if _, ok := b.Place(C(5, 5), Straight, 0); ok {
		t.Error("out-of-bounds placement succeeded")
	}
}

func TestPlaceStartExitPointsAtFreeNeighbor(t *testing.T) {
	for seed := uint32(0); seed < 25; seed++ {
		b, _ := Build(4, 4, 0.3, NewRand(seed))
		pos, rot, ok := PlaceStart(b, NewRand(seed))
		if !ok {
			t.Fatalf("seed %d: no start position found on a mostly-free board", seed)
		}
		if b.At(pos).Kind != Start {
			t.Fatalf("seed %d: start tile not set at %v", seed, pos)
		}
		exit := Ports(Start, rot)[0]
		n := pos.Step(exit)
		if !b.InBounds(n) {
			t.Errorf("seed %d: start exit leaves the board at %v", seed, n)
		} else if b.At(n).Blocked {
			t.Errorf("seed %d: start exit points at blocked tile %v", seed, n)
		}
	}
}

func TestPlaceStartImpossible(t *testing.T) {
	// Single free cell surrounded by nothing: 1x1 board has no valid exit.
	b := NewBoard(1, 1)
	if _, _, ok := PlaceStart(b, NewRand(1)); ok {
		t.Error("expected start placement to fail on 1x1 board")
	}
}

func TestBoardReset(t *testing.T) {
	b, _ := Build(3, 3, 0.3, NewRand(5))
	b.Place(C(0, 0), Straight, 1)
	b.Reset()
	for _, c := range b.AllCoords() {
		if tile := b.At(c); tile != (Tile{}) {
			t.Errorf("tile %v not cleared: %+v", c, tile)
		}
	}
}

func TestBoardCloneIndependent(t *testing.T) {
	b := NewBoard(4, 3)
	b.Set(C(2, 1), Tile{Blocked: true})
	b.Place(C(0, 0), Elbow, 2)

	clone := b.Clone()
	if clone.Cols != b.Cols || clone.Rows != b.Rows {
		t.Fatalf("clone dims %dx%d, want %dx%d", clone.Cols, clone.Rows, b.Cols, b.Rows)
	}
	for _, c := range b.AllCoords() {
		if clone.At(c) != b.At(c) {
			t.Errorf("tile %v differs after clone", c)
		}
	}

	// Mutating the clone must not touch the original.
	clone.Place(C(1, 0), Cross, 0)
	if b.At(C(1, 0)).Kind == Cross {
		t.Error("placing on the clone leaked into the original board")
	}
	b.Reset()
	if clone.At(C(0, 0)).Kind != Elbow {
		t.Error("resetting the original cleared the clone")
	}
}
