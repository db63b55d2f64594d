package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pipeworks/internal/core"
	"github.com/vovakirdan/tui-pipeworks/internal/pipes"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     12345,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed should produce identical snapshots
	cfg := testConfig()

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	input := core.NewInputFrame()
	for i := 0; i < 120; i++ {
		input.Clear()
		if i == 10 {
			input.Set(core.ActionRight)
		}
		if i == 20 {
			input.Set(core.ActionDown)
		}
		if i == 30 {
			input.Set(core.ActionPlace)
		}
		if i == 40 {
			input.Set(core.ActionFlow)
		}

		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()

	if snap1.Tick != snap2.Tick {
		t.Errorf("Tick mismatch: %d vs %d", snap1.Tick, snap2.Tick)
	}
	if snap1.Score != snap2.Score {
		t.Errorf("Score mismatch: %d vs %d", snap1.Score, snap2.Score)
	}
	if snap1.Stage != snap2.Stage {
		t.Errorf("Stage mismatch: %d vs %d", snap1.Stage, snap2.Stage)
	}
	if len(snap1.BoardData) != len(snap2.BoardData) {
		t.Fatalf("Board size mismatch: %d vs %d", len(snap1.BoardData), len(snap2.BoardData))
	}
	for i := range snap1.BoardData {
		if snap1.BoardData[i] != snap2.BoardData[i] {
			t.Fatalf("Board mismatch at index %d: %d vs %d", i, snap1.BoardData[i], snap2.BoardData[i])
		}
	}
	for i := range snap1.QueueData {
		if snap1.QueueData[i] != snap2.QueueData[i] {
			t.Fatalf("Queue mismatch at index %d: %d vs %d", i, snap1.QueueData[i], snap2.QueueData[i])
		}
	}
}

func TestStageLayoutIndependentOfInput(t *testing.T) {
	// The stage layout comes from seed substreams, so two games with the
	// same seed build the same board even when played differently.
	cfg := testConfig()

	g1 := New()
	g1.Reset(cfg)

	g2 := New()
	g2.Reset(cfg)

	// Play g2 around a bit before comparing layouts.
	input := core.NewInputFrame()
	input.Set(core.ActionRight)
	for i := 0; i < 10; i++ {
		g2.Step(input)
	}

	s1 := g1.Snapshot()
	s2 := g2.Snapshot()
	for i := range s1.BoardData {
		if s1.BoardData[i] != s2.BoardData[i] {
			t.Fatalf("Board layout diverged at index %d", i)
		}
	}
	if s1.StartX != s2.StartX || s1.StartY != s2.StartY {
		t.Errorf("Start tile mismatch: (%d,%d) vs (%d,%d)", s1.StartX, s1.StartY, s2.StartX, s2.StartY)
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	input.Set(core.ActionUp)
	for i := 0; i < 50; i++ {
		g.Step(input)
	}

	if !g.board.InBounds(g.cursor) {
		t.Errorf("cursor left the board: %v", g.cursor)
	}
	if g.cursor.Col != 0 || g.cursor.Row != 0 {
		t.Errorf("cursor = %v, want top-left corner after holding up-left", g.cursor)
	}
}

func TestPlacementRules(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// The start tile refuses placement.
	g.cursor = g.start
	head := g.queue.Peek()
	g.placeCurrent()
	if g.board.At(g.start).Kind != pipes.Start {
		t.Fatal("placement overwrote the start tile")
	}
	if g.queue.Peek() != head {
		t.Error("refused placement must not consume the queue")
	}

	// An empty cell accepts the queue head.
	empty, ok := findEmptyCell(g)
	if !ok {
		t.Fatal("no empty cell on the board")
	}
	g.cursor = empty
	g.placeCurrent()
	placed := g.board.At(empty)
	if placed.Kind != head.Kind || placed.Rotation != head.Rotation {
		t.Errorf("placed tile = %+v, want queue head %+v", placed, head)
	}

	// Replacing it costs the penalty.
	before := g.scores.Total()
	g.placeCurrent()
	if got := g.scores.Total(); got > before {
		t.Errorf("replacement must not gain score: %d -> %d", before, got)
	}
}

func TestBlockedCellRefusesPlacement(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	blocked, ok := findBlockedCell(g)
	if !ok {
		t.Skip("no blocked cell generated for this seed")
	}
	g.cursor = blocked
	g.placeCurrent()
	if g.board.At(blocked).Kind != pipes.Empty {
		t.Error("blocked cell accepted a pipe")
	}
}

func TestFlowFailureEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Release the water with nothing connected: the attempt falls short of
	// the target and the run ends.
	input := core.NewInputFrame()
	input.Set(core.ActionFlow)
	g.Step(input)

	input.Clear()
	for i := 0; i < 2000 && g.flow.Active(); i++ {
		g.Step(input)
	}
	g.Step(input)

	if g.lastResult == nil {
		t.Fatal("flow never produced a result")
	}
	if g.lastResult.GoalAchieved {
		t.Fatal("empty board must not reach the target")
	}
	if !g.gameOver {
		t.Error("falling short of the target should end the game")
	}
}

func TestStageClearAdvancesStage(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Connect one pipe to the start exit and drop the target to 1 so the
	// attempt clears the stage.
	exit := pipes.Ports(pipes.Start, g.board.At(g.start).Rotation)[0]
	neighbor := g.start.Step(exit)
	rot := pipes.Rotation(0)
	if exit == pipes.DirTop || exit == pipes.DirBottom {
		rot = 1
	}
	if _, ok := g.board.Place(neighbor, pipes.Straight, rot); !ok {
		t.Fatal("cannot place the connecting pipe")
	}
	g.scores.SetTarget(1)

	input := core.NewInputFrame()
	input.Set(core.ActionFlow)
	g.Step(input)

	input.Clear()
	for i := 0; i < 2000 && g.flow.Active(); i++ {
		g.Step(input)
	}
	g.Step(input)

	if !g.stageClear {
		t.Fatalf("stage should be clear, result: %+v", g.lastResult)
	}

	input.Set(core.ActionConfirm)
	g.Step(input)

	if g.stage != 2 {
		t.Errorf("stage = %d, want 2", g.stage)
	}
	if g.water.HasWater(g.start) {
		t.Error("new stage should start dry")
	}
}

func TestManualStopDuringFlow(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	input := core.NewInputFrame()
	input.Set(core.ActionFlow)
	g.Step(input)

	if !g.flow.Active() {
		t.Fatal("flow should be filling the start tile")
	}

	input.Clear()
	input.Set(core.ActionStop)
	g.Step(input)
	input.Clear()
	g.Step(input)

	if g.flow.Active() {
		t.Fatal("flow still active after stop")
	}
	if g.lastResult == nil || g.lastResult.Reason != pipes.ReasonManualStop {
		t.Errorf("result = %+v, want manualStop", g.lastResult)
	}
}

func TestWindowTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 333, ScreenW: 10, ScreenH: 5, TickRate: 60})

	if !g.tooSmall {
		t.Error("game should detect window is too small")
	}
}

func TestRender(t *testing.T) {
	cfg := testConfig()
	g := New()
	g.Reset(cfg)

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "Pipeworks") {
		t.Error("HUD should contain 'Pipeworks'")
	}
	if !strings.Contains(content, "Next:") {
		t.Error("queue display missing")
	}
}

func TestGameIdentity(t *testing.T) {
	g := New()
	if g.ID() != "pipeworks" {
		t.Errorf("ID should be 'pipeworks', got %s", g.ID())
	}
	if g.Title() != "Pipeworks" {
		t.Errorf("Title should be 'Pipeworks', got %s", g.Title())
	}
}

func findEmptyCell(g *Game) (pipes.Coord, bool) {
	for _, c := range g.board.AllCoords() {
		t := g.board.At(c)
		if !t.Blocked && t.Kind == pipes.Empty {
			return c, true
		}
	}
	return pipes.Coord{}, false
}

func findBlockedCell(g *Game) (pipes.Coord, bool) {
	for _, c := range g.board.AllCoords() {
		if g.board.At(c).Blocked {
			return c, true
		}
	}
	return pipes.Coord{}, false
}
