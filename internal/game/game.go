// Package game implements the Pipeworks puzzle: place pipes from a queue
// onto a grid, then release the water and guide it far enough to clear
// each stage.
package game

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pipeworks/internal/config"
	"github.com/vovakirdan/tui-pipeworks/internal/core"
	"github.com/vovakirdan/tui-pipeworks/internal/pipes"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game implements the Pipeworks game logic.
type Game struct {
	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.PipeworksConfig
	difficulty *config.DifficultyManager

	// Stage state
	baseSeed uint32
	stage    int

	board  *pipes.Board
	start  pipes.Coord
	queue  *pipes.Queue
	scores *pipes.Scores
	flow   *pipes.Flow
	water  *waterGrid

	cursor  pipes.Coord
	longest int // Longest connected path, recomputed after each placement

	lastResult *pipes.FlowResult
	pendingLog *pipes.FlowResult
	stageClear bool

	// Status
	tick     uint64
	gameOver bool
	paused   bool
	tooSmall bool

	// Layout (computed from screen size)
	cellW       int
	cellH       int
	hudHeight   int
	gridOffsetX int
	gridOffsetY int
}

// New creates a new Pipeworks game instance.
func New() *Game {
	return &Game{
		cellW:     2,
		cellH:     1,
		hudHeight: 4,
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pipeworks"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pipeworks"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadPipeworks(configPath)
	if err != nil {
		log.Warn("pipeworks: falling back to default config", "err", err)
		cfg = config.DefaultPipeworksConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPipeworksPreset(&cfg, difficultyPreset)
	}

	// Floor obviously broken values so a bad config cannot wedge the game.
	defaults := config.DefaultPipeworksConfig()
	if cfg.Board.Rows <= 0 || cfg.Board.Cols <= 0 {
		cfg.Board = defaults.Board
	}
	if cfg.Queue.Size < 1 {
		cfg.Queue.Size = defaults.Queue.Size
	}
	if cfg.Flow.FillSeconds <= 0 {
		cfg.Flow.FillSeconds = defaults.Flow.FillSeconds
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.baseSeed = uint32(runtime.Seed)
	g.stage = 1
	g.tick = 0
	g.gameOver = false
	g.paused = false

	g.scores = pipes.NewScores(pipes.ScoreConfig{
		TileReward:     cfg.Score.TileReward,
		ReplacePenalty: cfg.Score.ReplacePenalty,
		TargetLength:   cfg.Score.TargetLength,
		AllowNegative:  cfg.Score.AllowNegative,
	})
	g.scores.SetOnComplete(func(r pipes.FlowResult) {
		res := r
		g.lastResult = &res
		g.pendingLog = &res
	})
	g.pendingLog = nil

	g.setupStage()
}

// setupStage builds the board, queue and flow controller for the current
// stage. Every stage draws from its own seed substreams, so stage N is
// reproducible regardless of how the previous stages were played.
func (g *Game) setupStage() {
	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Cols
	blockedPct := g.difficulty.BlockedPercentage(g.cfg.Board.BlockedPercentage, g.stage)

	gridRNG := pipes.NewRand(pipes.SubSeed(g.baseSeed, "grid", g.stage))
	startRNG := pipes.NewRand(pipes.SubSeed(g.baseSeed, "start", g.stage))
	queueRNG := pipes.NewRand(pipes.SubSeed(g.baseSeed, "queue", g.stage))

	board, _ := pipes.Build(rows, cols, blockedPct, gridRNG)
	start, _, ok := pipes.PlaceStart(board, startRNG)
	if !ok {
		// The blocked layout left no room: retry on an open board.
		board, _ = pipes.Build(rows, cols, 0, gridRNG)
		start, _, ok = pipes.PlaceStart(board, startRNG)
		if !ok {
			log.Error("pipeworks: cannot initialize stage", "stage", g.stage, "rows", rows, "cols", cols)
			g.gameOver = true
			return
		}
	}
	g.board = board
	g.start = start

	queue, err := pipes.NewQueue(g.cfg.Queue.Size, pipes.RandomizableKinds(), queueRNG)
	if err != nil {
		log.Error("pipeworks: cannot build pipe queue", "err", err)
		g.gameOver = true
		return
	}
	g.queue = queue

	g.scores.SetTarget(float64(g.difficulty.TargetLength(g.cfg.Score.TargetLength, g.stage)))

	g.water = newWaterGrid()
	filler := newTweenFiller(g.difficulty.FillSeconds(g.cfg.Flow.FillSeconds, g.stage))
	g.flow = pipes.NewFlow(g.board, g.start, g.water, filler, g.scores)

	g.cursor = g.start
	g.lastResult = nil
	g.stageClear = false
	g.recomputeLongest()
	g.calculateLayout()
}

// calculateLayout centers the grid and checks the screen fits.
func (g *Game) calculateLayout() {
	gridW := g.board.Cols * g.cellW
	gridH := g.board.Rows * g.cellH

	neededW := gridW + 4
	neededH := g.hudHeight + gridH + 5 // grid + queue display + margins

	g.tooSmall = g.runtime.ScreenW < neededW || g.runtime.ScreenH < neededH
	if g.tooSmall {
		return
	}

	g.gridOffsetX = (g.runtime.ScreenW - gridW) / 2
	g.gridOffsetY = g.hudHeight + 1
}

// dt returns the simulation time step in seconds.
func (g *Game) dt() float64 {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1.0 / float64(rate)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.runtime.Seed + int64(g.tick),
			ScreenW:  g.runtime.ScreenW,
			ScreenH:  g.runtime.ScreenH,
			TickRate: g.runtime.TickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Stage-clear interstitial: wait for confirmation, then rebuild.
	if g.stageClear {
		if input.Has(core.ActionConfirm) || input.Has(core.ActionPlace) {
			g.stage++
			g.setupStage()
		}
		return core.StepResult{State: g.State()}
	}

	g.handleCursor(input)

	idle := !g.flow.Active() && g.lastResult == nil
	if input.Has(core.ActionPlace) && idle {
		g.placeCurrent()
	}
	if input.Has(core.ActionFlow) && idle {
		g.water.Reset()
		g.flow.Start()
	}
	if input.Has(core.ActionStop) {
		g.flow.Stop()
	}

	if g.flow.Active() {
		g.flow.Update(g.dt())
	}

	// A finished attempt decides the stage: reach the target and move on,
	// fall short and the run is over.
	if g.lastResult != nil && !g.flow.Active() {
		if g.lastResult.GoalAchieved {
			g.stageClear = true
		} else {
			g.gameOver = true
		}
	}

	return core.StepResult{State: g.State()}
}

// handleCursor moves the placement cursor, clamped to the board.
func (g *Game) handleCursor(input core.InputFrame) {
	moves := []struct {
		action core.Action
		dir    pipes.Direction
	}{
		{core.ActionUp, pipes.DirTop},
		{core.ActionRight, pipes.DirRight},
		{core.ActionDown, pipes.DirBottom},
		{core.ActionLeft, pipes.DirLeft},
	}
	for _, m := range moves {
		if !input.Has(m.action) {
			continue
		}
		next := g.cursor.Step(m.dir)
		if g.board.InBounds(next) {
			g.cursor = next
		}
	}
}

// placeCurrent puts the queue head under the cursor. Blocked cells, the
// start tile and tiles already carrying water refuse placement.
func (g *Game) placeCurrent() {
	t := g.board.At(g.cursor)
	if t.Blocked || t.Kind == pipes.Start || g.water.HasWater(g.cursor) {
		return
	}

	item := g.queue.Advance()
	replaced, ok := g.board.Place(g.cursor, item.Kind, item.Rotation)
	if !ok {
		return
	}
	g.scores.HandlePlacement(replaced)
	g.recomputeLongest()
}

func (g *Game) recomputeLongest() {
	g.longest = len(pipes.LongestConnectedPath(g.board))
}

// TakeFlowResult returns the result of the most recently completed flow and
// consumes it, or nil if no flow has completed since the last call.
func (g *Game) TakeFlowResult() *pipes.FlowResult {
	r := g.pendingLog
	g.pendingLog = nil
	return r
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.scores == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:      g.scores.Total(),
		Stage:      g.stage,
		FlowActive: g.flow != nil && g.flow.Active(),
		GameOver:   g.gameOver,
		Paused:     g.paused,
	}
}
