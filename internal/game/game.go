// Package game wires the world, map, scheduler, and terminal UI into a
// playable session and owns the outer event loop.
package game

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"glaive/internal/component"
	"glaive/internal/config"
	"glaive/internal/ecs"
	"glaive/internal/effect"
	"glaive/internal/factory"
	"glaive/internal/gamemap"
	"glaive/internal/generate"
	"glaive/internal/item"
	"glaive/internal/render"
	"glaive/internal/system"
	"glaive/internal/ui"
)

// GameState tracks the main state machine.
type GameState uint8

const (
	StatePlaying GameState = iota
	StateDead
	StateQuit
)

// Game is the top-level orchestrator: it owns the world, feeds player input
// into it, and drives the scheduler one frame per input event.
type Game struct {
	screen    tcell.Screen
	renderer  *render.Renderer
	world     *ecs.World
	scheduler *system.Scheduler
	gmap      *gamemap.GameMap
	log       *ui.MessageLog
	logger    *zap.Logger
	rng       *rand.Rand
	cfg       config.GameConfig
	playerID  ecs.EntityID
	floor     int
	state     GameState
	runLog    RunLog
}

// New creates a Game on a freshly initialized local terminal screen.
func New(cfg *config.Config, logger *zap.Logger) (*Game, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return NewWithScreen(screen, cfg, logger)
}

// NewWithScreen creates a Game on an already-initialized screen. The SSH
// front end and tests use this to supply their own.
func NewWithScreen(screen tcell.Screen, cfg *config.Config, logger *zap.Logger) (*Game, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		screen: screen,
		logger: logger,
		cfg:    cfg.Game,
		rng:    rand.New(rand.NewSource(seed)),
	}
	g.resetForRun()
	return g, nil
}

// resetForRun clears all per-run state and generates a fresh first floor.
func (g *Game) resetForRun() {
	g.state = StatePlaying
	g.log = ui.NewMessageLog(g.cfg.MessageLimit)
	g.runLog = newRunLog()
	g.loadLevel(1, playerSnapshot{})
	g.log.AddInfo("Use hjklyubn or the arrows to move. '.' waits, 'g' picks up, 'i' opens the pack.")
}

// playerSnapshot carries the player's progress between floors. The zero
// value means a brand-new character.
type playerSnapshot struct {
	hp, mp  int
	xp      component.Experience
	active  effect.ActiveEffects
	carried []carriedItem
}

type carriedItem struct {
	cons item.Consumable
	draw component.Drawable
}

// snapshotPlayer captures everything that survives a floor transition.
func (g *Game) snapshotPlayer() playerSnapshot {
	w := g.world
	snap := playerSnapshot{
		hp: w.MustGet(g.playerID, component.CHealth).(component.Health).Current,
		mp: w.MustGet(g.playerID, component.CMana).(component.Mana).Current,
		xp: w.MustGet(g.playerID, component.CExperience).(component.Experience),
	}
	if c := w.Get(g.playerID, effect.CActiveEffects); c != nil {
		snap.active = c.(effect.ActiveEffects)
	}
	for _, id := range w.Query(item.CInInventory, item.CConsumable) {
		if w.MustGet(id, item.CInInventory).(item.InInventory).Owner != g.playerID {
			continue
		}
		snap.carried = append(snap.carried, carriedItem{
			cons: w.MustGet(id, item.CConsumable).(item.Consumable),
			draw: w.MustGet(id, component.CDrawable).(component.Drawable),
		})
	}
	return snap
}

// loadLevel generates floor number floor into a fresh world and restores the
// player from snap. Resources, systems, and visibility are rebuilt from
// scratch; only the message log persists.
func (g *Game) loadLevel(floor int, snap playerSnapshot) {
	g.floor = floor
	if floor > g.runLog.FloorsReached {
		g.runLog.FloorsReached = floor
	}
	g.world = ecs.NewWorld()

	genCfg := generate.Config{
		Width:    g.cfg.MapWidth,
		Height:   g.cfg.MapHeight,
		MaxRooms: g.cfg.MaxRooms,
		RoomMin:  g.cfg.RoomMin,
		RoomMax:  g.cfg.RoomMax,
	}
	m, px, py := generate.Dungeon(genCfg, g.rng)
	g.gmap = m

	g.playerID = factory.NewPlayer(g.world, px, py)
	g.restorePlayer(snap)
	g.populate(m)

	if g.renderer == nil {
		g.renderer = render.NewRenderer(g.screen, m.Width, m.Height)
	} else {
		g.renderer.Resize(m.Width, m.Height)
	}

	g.world.AddResource(m)
	g.world.AddResource(g.log)
	g.world.AddResource(g.renderer)

	g.scheduler = system.NewScheduler()
	g.scheduler.Add(system.PhaseAction, system.Movement{})
	g.scheduler.Add(system.PhaseResolution, system.EffectTick{})
	g.scheduler.Add(system.PhaseResolution, system.GroundPools{})
	g.scheduler.Add(system.PhaseCleanup, system.Death{})
	g.scheduler.Add(system.PhaseRender, system.Render{})

	system.RecomputeVisibility(g.world, m, g.playerID, g.cfg.FOVRadius)
	g.logger.Info("level loaded",
		zap.Int("floor", floor),
		zap.Int("rooms", len(m.Rooms)),
		zap.Int("width", m.Width),
		zap.Int("height", m.Height))

	if floor == 1 {
		g.log.AddInfo("You descend into the caverns.")
	} else {
		g.log.AddInfo(fmt.Sprintf("You descend to depth %d.", floor))
	}
}

// restorePlayer applies a floor-transition snapshot to the fresh player.
func (g *Game) restorePlayer(snap playerSnapshot) {
	if snap.hp == 0 && snap.xp.Level == 0 {
		return
	}
	w := g.world
	hp := w.MustGet(g.playerID, component.CHealth).(component.Health)
	hp.Current = snap.hp
	w.Add(g.playerID, hp)

	mp := w.MustGet(g.playerID, component.CMana).(component.Mana)
	mp.Current = snap.mp
	w.Add(g.playerID, mp)

	w.Add(g.playerID, snap.xp)
	if len(snap.active.Effects) > 0 {
		w.Add(g.playerID, snap.active)
	}
	for _, ci := range snap.carried {
		id := w.CreateEntity()
		w.Add(id, ci.cons)
		w.Add(id, ci.draw)
		w.Add(id, component.IsItem{})
		w.Add(id, item.InInventory{Owner: g.playerID})
	}
}

// populate scatters monsters, items, and the down staircase through the
// generated rooms. The first room stays empty so the player never spawns
// into a fight.
func (g *Game) populate(m *gamemap.GameMap) {
	monsterKeys := []string{"rat", "goblin", "orc"}
	itemKeys := make([]string, 0, len(item.Defs))
	for k := range item.Defs {
		itemKeys = append(itemKeys, k)
	}
	// Map iteration order is random; sort for reproducible generation.
	sort.Strings(itemKeys)

	for i, room := range m.Rooms {
		if i == 0 {
			continue
		}
		for n := g.rng.Intn(3); n > 0; n-- {
			x, y := g.randomFloorIn(m, room)
			factory.NewMonster(g.world, monsterKeys[g.rng.Intn(len(monsterKeys))], x, y)
		}
		if g.rng.Intn(100) < 40 {
			x, y := g.randomFloorIn(m, room)
			factory.NewConsumable(g.world, itemKeys[g.rng.Intn(len(itemKeys))], x, y)
		}
	}
	if len(m.Rooms) > 1 {
		sx, sy := m.Rooms[len(m.Rooms)-1].Center()
		m.Set(sx, sy, gamemap.MakeStairsDown())
		factory.NewStairs(g.world, sx, sy)
	}
}

func (g *Game) randomFloorIn(m *gamemap.GameMap, r gamemap.Rect) (int, int) {
	for tries := 0; tries < 20; tries++ {
		x := r.X1 + 1 + g.rng.Intn(max(r.X2-r.X1-1, 1))
		y := r.Y1 + 1 + g.rng.Intn(max(r.Y2-r.Y1-1, 1))
		if !m.BlocksMovement(x, y) && !g.occupied(x, y) {
			return x, y
		}
	}
	return r.Center()
}

func (g *Game) occupied(x, y int) bool {
	for _, id := range g.world.Query(component.CBlocking, component.CPosition) {
		pos := g.world.MustGet(id, component.CPosition).(component.Position)
		if pos.X == x && pos.Y == y {
			return true
		}
	}
	return false
}

// Run is the main event loop. It blocks until the player quits, supporting
// consecutive runs via the end screen.
func (g *Game) Run() {
	defer g.screen.Fini()

	for {
		g.playLoop()
		saveRunLog(g.runLog)

		if g.state != StateDead {
			return
		}
		g.logger.Info("run ended",
			zap.Int("floors", g.runLog.FloorsReached),
			zap.Int("turns", g.runLog.TurnsPlayed))
		if !g.showEndScreen() {
			return
		}
		g.resetForRun()
	}
}

// playLoop runs frames until the player dies or quits.
func (g *Game) playLoop() {
	for g.state == StatePlaying {
		g.frame()

		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Resize(g.gmap.Width, g.gmap.Height)
		case *tcell.EventKey:
			g.processAction(keyToAction(ev))
		}
	}
}

// frame runs one scheduler pass, handles post-turn bookkeeping, and flushes
// the screen.
func (g *Game) frame() {
	g.scheduler.Update(g.world)
	if system.TurnResolved(g.world) {
		g.runLog.TurnsPlayed++
		system.RecomputeVisibility(g.world, g.gmap, g.playerID, g.cfg.FOVRadius)
		g.checkPlayerDead()
	}
	system.ClearTurnMarkers(g.world)
	g.renderer.Show()
}

// processAction translates one player action into world mutations. Movement
// becomes an intent for the scheduler; everything else acts immediately and
// marks the turn consumed itself where a turn was spent.
func (g *Game) processAction(action Action) {
	switch action {
	case ActionQuit:
		g.state = StateQuit

	case ActionWait:
		g.world.Add(g.playerID, component.MoveIntent{ConsumesTurn: true})

	case ActionPickup:
		if g.tryPickup() {
			g.world.Add(g.playerID, component.TurnConsumed{})
		}

	case ActionInventory:
		if g.runInventoryScreen() {
			g.world.Add(g.playerID, component.TurnConsumed{})
		}

	case ActionDescend:
		pos := g.playerPosition()
		if g.gmap.At(pos.X, pos.Y).Kind != gamemap.TileStairsDown {
			g.log.AddWarning("There are no stairs down here.")
			return
		}
		g.loadLevel(g.floor+1, g.snapshotPlayer())

	case ActionLogUp:
		g.log.ScrollUp()
	case ActionLogDown:
		g.log.ScrollDown()

	default:
		dx, dy := actionToDelta(action)
		if dx != 0 || dy != 0 {
			g.world.Add(g.playerID, component.MoveIntent{DX: dx, DY: dy, ConsumesTurn: true})
		}
	}
}

// tryPickup moves a ground item under the player into the pack. Reports
// whether anything was picked up.
func (g *Game) tryPickup() bool {
	pos := g.playerPosition()
	for _, id := range g.world.Query(item.COnGround, component.CPosition) {
		ipos := g.world.MustGet(id, component.CPosition).(component.Position)
		if ipos.X != pos.X || ipos.Y != pos.Y {
			continue
		}
		g.world.Remove(id, component.CPosition)
		g.world.Remove(id, item.COnGround)
		g.world.Add(id, item.InInventory{Owner: g.playerID})
		g.log.AddSuccess(fmt.Sprintf("You pick up the %s.", g.entityName(id)))
		return true
	}
	g.log.AddWarning("Nothing to pick up here.")
	return false
}

func (g *Game) checkPlayerDead() {
	c := g.world.Get(g.playerID, component.CHealth)
	if c == nil || c.(component.Health).Current <= 0 {
		g.state = StateDead
		g.runLog.Died = true
		g.log.AddCombat("You die...")
	}
}

func (g *Game) playerPosition() component.Position {
	c := g.world.Get(g.playerID, component.CPosition)
	if c == nil {
		return component.Position{}
	}
	return c.(component.Position)
}

func (g *Game) entityName(id ecs.EntityID) string {
	c := g.world.Get(id, component.CDrawable)
	if c == nil {
		return "item"
	}
	return c.(component.Drawable).Name
}

// putText writes a string to the screen at (x, y), one column per rune.
func (g *Game) putText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// showEndScreen renders the run summary and returns true if the player wants
// to try again.
func (g *Game) showEndScreen() bool {
	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gold := tcell.StyleDefault.Foreground(tcell.ColorYellow)
	dim := tcell.StyleDefault.Foreground(tcell.ColorGray)
	green := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	red := tcell.StyleDefault.Foreground(tcell.ColorRed)

	for {
		g.screen.Clear()
		y := 2
		g.putText(2, y, "THE CAVERNS CLAIM YOU", gold)
		y += 2
		g.putText(2, y, fmt.Sprintf("Depth reached:  %d", g.runLog.FloorsReached), white)
		y++
		g.putText(2, y, fmt.Sprintf("Turns survived: %d", g.runLog.TurnsPlayed), white)
		y++
		total := 0
		for _, n := range g.runLog.ItemsUsed {
			total += n
		}
		g.putText(2, y, fmt.Sprintf("Items used:     %d", total), white)
		y += 2
		g.putText(2, y, "[R] Try Again", green)
		g.putText(18, y, "[Q] Quit", red)
		y += 2
		g.putText(2, y, "Your run was recorded.", dim)
		g.screen.Show()

		switch ev := g.screen.PollEvent().(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Rune() {
			case 'r', 'R':
				return true
			case 'q', 'Q':
				return false
			}
			if ev.Key() == tcell.KeyEscape {
				return false
			}
		}
	}
}
