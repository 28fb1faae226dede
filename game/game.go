package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/gogpu/shapeplay"
)

// Game is the scene controller. It owns the camera, the shader bindings,
// the cursor and the collection of spawned renderables, and advances them
// once per frame from Update. Draw-side access goes through View.
//
// Game is not safe for concurrent use; Update and Draw must be serialized.
type Game struct {
	cfg       Config
	input     Input
	clock     Clock
	rng       *rand.Rand
	listeners []Listener

	store   *shapeplay.VertexBufferStore
	shaders *shapeplay.ShaderRegistry
	camera  *shapeplay.Camera

	cursor   *shapeplay.Renderable
	fixtures []*shapeplay.Renderable
	objects  []*shapeplay.Renderable

	batchStart  time.Time
	deleting    bool
	deleteStart time.Time
}

// New validates cfg, uploads the shape catalog to dev and builds the scene.
// Device failures are returned; the game is unusable on error.
func New(dev shapeplay.Device, in Input, clock Clock, cfg Config, opts ...Option) (*Game, error) {
	if dev == nil {
		return nil, shapeplay.ErrNilDevice
	}
	if in == nil {
		return nil, ErrNilInput
	}
	if clock == nil {
		return nil, ErrNilClock
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.replace {
		cfg.Fixtures = o.fixtures
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := shapeplay.NewVertexBufferStore(dev)
	if err := store.Initialize(); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		cfg:        cfg,
		input:      in,
		clock:      clock,
		rng:        o.rng,
		listeners:  o.listeners,
		store:      store,
		shaders:    shapeplay.NewShaderRegistry(dev, store),
		batchStart: clock.Now(),
	}

	g.camera = shapeplay.NewCamera(cfg.Camera.Center.Point(), cfg.Camera.Width, cfg.Camera.Viewport.Rect())
	g.camera.SetBackgroundColor(cfg.Camera.Background.RGBA())

	g.cursor = shapeplay.NewRenderable(g.shaders.For(shapeplay.Square), shapeplay.Square, 0)
	g.cursor.SetColor(cfg.Cursor.Color.RGBA())
	g.cursor.Transform().SetPosition(cfg.Cursor.Start.X, cfg.Cursor.Start.Y)
	g.cursor.Transform().SetSize(cfg.Cursor.Size, cfg.Cursor.Size)

	for _, f := range cfg.Fixtures {
		r := shapeplay.NewRenderable(g.shaders.For(f.Shape), f.Shape, 0)
		r.SetColor(f.Color.RGBA())
		r.Transform().SetPosition(f.Position.X, f.Position.Y)
		r.Transform().SetSize(f.Size, f.Size)
		r.Transform().SetRotationDegrees(f.Rotation)
		g.fixtures = append(g.fixtures, r)
	}

	shapeplay.Logger().Debug("game created",
		"fixtures", len(g.fixtures),
		"spawn_min", cfg.Spawn.MinCount,
		"spawn_max", cfg.Spawn.MaxCount)
	return g, nil
}

// Update advances one frame: cursor movement, spawning, deletion arming
// and aging, in that order.
func (g *Game) Update() {
	if p, ok := g.input.(Poller); ok {
		p.Poll()
	}

	g.moveCursor()

	if g.input.Clicked(KeySpawn) {
		g.spawn()
	}
	if g.input.Clicked(KeyDelete) && !g.deleting {
		g.deleting = true
		g.deleteStart = g.clock.Now()
		shapeplay.Logger().Info("deletion episode started", "objects", len(g.objects))
		g.emit(Event{Kind: EventDeletionArmed, Len: len(g.objects)})
	}
	if g.deleting {
		g.age()
	}
}

// moveCursor applies held directions, refusing any step that would leave
// the cursor bounds.
func (g *Game) moveCursor() {
	step := g.cfg.Cursor.Step
	lo, hi := g.cfg.Cursor.Min.Point(), g.cfg.Cursor.Max.Point()
	xf := g.cursor.Transform()

	try := func(dx, dy float64) {
		if xf.Position().Add(shapeplay.Pt(dx, dy)).In(lo, hi) {
			xf.IncPositionBy(dx, dy)
		}
	}
	if g.input.Pressed(KeyUp) {
		try(0, step)
	}
	if g.input.Pressed(KeyDown) {
		try(0, -step)
	}
	if g.input.Pressed(KeyLeft) {
		try(-step, 0)
	}
	if g.input.Pressed(KeyRight) {
		try(step, 0)
	}
}

// spawn appends one batch around the cursor. Timestamps are measured from
// the batch start, which resets when the collection is empty.
func (g *Game) spawn() {
	if len(g.objects) == 0 {
		g.batchStart = g.clock.Now()
	}

	policy := g.cfg.Spawn
	n := policy.Count(g.rng)
	center := g.cursor.Transform().Position()
	for range n {
		it := policy.sample(g.rng, center)
		created := max(g.clock.Now().Sub(g.batchStart), 0)

		r := shapeplay.NewRenderable(g.shaders.For(it.shape), it.shape, created)
		r.SetColor(it.color)
		r.Transform().SetPosition(it.pos.X, it.pos.Y)
		r.Transform().SetSize(it.size, it.size)
		r.Transform().SetRotationDegrees(it.rotation)
		g.objects = append(g.objects, r)
	}

	shapeplay.Logger().Debug("spawned batch", "count", n, "objects", len(g.objects))
	g.emit(Event{Kind: EventSpawned, Count: n, Len: len(g.objects)})
}

// age removes every expired renderable. The scan runs from the back so a
// removal never shifts an unvisited element into the visited range.
func (g *Game) age() {
	elapsed := g.clock.Now().Sub(g.deleteStart)
	removed := 0
	for i := len(g.objects) - 1; i >= 0; i-- {
		if g.objects[i].HasExpired(elapsed) {
			g.objects = slices.Delete(g.objects, i, i+1)
			removed++
		}
	}
	if removed > 0 {
		g.emit(Event{Kind: EventRemoved, Count: removed, Len: len(g.objects)})
	}

	if len(g.objects) == 0 {
		g.deleting = false
		g.deleteStart = time.Time{}
		shapeplay.Logger().Info("deletion episode ended", "elapsed", elapsed)
		g.emit(Event{Kind: EventEpisodeEnded})
	}
}

func (g *Game) emit(e Event) {
	for _, l := range g.listeners {
		l(e)
	}
}

// View returns a read-only snapshot for the draw phase.
func (g *Game) View() View {
	v := View{
		camera:   *g.camera,
		clear:    g.cfg.ClearColor.RGBA(),
		objects:  make([]shapeplay.Drawable, len(g.objects)),
		fixtures: make([]shapeplay.Drawable, len(g.fixtures)),
		cursor:   drawOnly{g.cursor},
		deleting: g.deleting,
	}
	for i, r := range g.objects {
		v.objects[i] = drawOnly{r}
	}
	for i, r := range g.fixtures {
		v.fixtures[i] = drawOnly{r}
	}
	return v
}

// Draw renders the current scene through dev.
func (g *Game) Draw(dev shapeplay.Device) {
	g.View().Render(dev)
}

// Len returns the number of spawned renderables.
func (g *Game) Len() int { return len(g.objects) }

// Deleting reports whether a deletion episode is in progress.
func (g *Game) Deleting() bool { return g.deleting }

// Cursor returns the cursor renderable.
func (g *Game) Cursor() *shapeplay.Renderable { return g.cursor }

// Camera returns the camera.
func (g *Game) Camera() *shapeplay.Camera { return g.camera }

// Objects returns a copy of the collection in spawn order.
func (g *Game) Objects() []*shapeplay.Renderable {
	return slices.Clone(g.objects)
}

// Close releases the vertex buffers. The game must not be used afterwards.
func (g *Game) Close() {
	g.store.Release()
}
