// Command shapeplay-render plays a scripted session headlessly and writes
// frames as PNG files.
//
// Usage:
//
//	shapeplay-render -script "S .*10 R*20 X .*80" -every 10 -out frames
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"

	"github.com/gogpu/shapeplay"
	"github.com/gogpu/shapeplay/backend"
	"github.com/gogpu/shapeplay/backend/software"
	_ "github.com/gogpu/shapeplay/backend/wgpu"
	"github.com/gogpu/shapeplay/game"
	_ "github.com/gogpu/wgpu/hal/allbackends"
)

const defaultScript = "S .*20 R*15 S .*20 U*10 S .*30 X .*120"

type options struct {
	backend string
	config  string
	spawn   string
	script  string
	frames  int
	every   int
	dt      time.Duration
	seed    uint64
	out     string
	hud     bool
	verbose bool
}

func main() {
	var o options
	flag.StringVar(&o.backend, "backend", "", "render backend (software, wgpu); empty picks the best available")
	flag.StringVar(&o.config, "config", "", "YAML game configuration")
	flag.StringVar(&o.spawn, "spawn", "", "spawn preset (classic, mixed)")
	flag.StringVar(&o.script, "script", defaultScript, "input script")
	flag.IntVar(&o.frames, "frames", 0, "frames to render; 0 runs the script once")
	flag.IntVar(&o.every, "every", 10, "write every n-th frame; 0 writes only the last")
	flag.DurationVar(&o.dt, "dt", time.Second/60, "simulated frame time")
	flag.Uint64Var(&o.seed, "seed", 1, "spawn random seed")
	flag.StringVar(&o.out, "out", "frames", "output directory")
	flag.BoolVar(&o.hud, "hud", true, "draw the status line")
	flag.BoolVar(&o.verbose, "v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	shapeplay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	n, err := run(o)
	if err != nil {
		log.Fatalf("shapeplay-render: %v", err)
	}
	log.Printf("Rendered %d frames to %s\n", n, o.out)
}

func run(o options) (int, error) {
	cfg := game.DefaultConfig()
	if o.config != "" {
		var err error
		if cfg, err = game.LoadConfig(o.config); err != nil {
			return 0, err
		}
	}
	if o.spawn != "" {
		p, err := game.SpawnPreset(o.spawn)
		if err != nil {
			return 0, err
		}
		cfg.Spawn = p
	}
	script, err := game.ParseScript(o.script)
	if err != nil {
		return 0, err
	}
	frames := o.frames
	if frames <= 0 {
		frames = len(script)
	}
	if err := os.MkdirAll(o.out, 0o755); err != nil {
		return 0, err
	}

	var b backend.RenderBackend
	if o.backend == "" {
		b, err = backend.InitDefault()
	} else {
		b, err = backend.Open(o.backend)
	}
	if err != nil {
		return 0, err
	}
	defer b.Close()

	vp := cfg.Camera.Viewport
	surface, err := b.NewSurface(vp.Width, vp.Height)
	if err != nil {
		return 0, err
	}
	defer surface.Close()

	kb := game.NewKeyboard()
	clock := game.NewManualClock(time.Unix(0, 0))
	g, err := game.New(surface, kb, clock, cfg,
		game.WithSeed(o.seed),
		game.WithListener(func(e game.Event) {
			shapeplay.Logger().Debug("event", "kind", e.Kind, "count", e.Count, "len", e.Len)
		}))
	if err != nil {
		return 0, err
	}
	defer g.Close()

	var hud *software.HUD
	if o.hud {
		if hud, err = software.NewHUD(14, language.English); err != nil {
			return 0, err
		}
		defer hud.Close()
	}

	frame := shapeplay.NewPixmap(vp.Width, vp.Height)
	for i := range frames {
		var step game.Step
		if i < len(script) {
			step = script[i]
		}
		step.Apply(kb)
		g.Update()

		if err := surface.BeginFrame(); err != nil {
			return i, err
		}
		g.Draw(surface)
		if err := surface.EndFrame(frame); err != nil {
			return i, err
		}
		clock.Advance(o.dt)

		last := i == frames-1
		if !last && (o.every <= 0 || i%o.every != 0) {
			continue
		}
		if hud != nil {
			hud.Draw(frame, fmt.Sprintf("frame %d", i), hud.Status(g.Len(), g.Deleting()))
		}
		path := filepath.Join(o.out, fmt.Sprintf("frame_%04d.png", i))
		if err := frame.SavePNG(path); err != nil {
			return i, fmt.Errorf("failed to save: %w", err)
		}
		shapeplay.Logger().Debug("frame written", "path", path, "objects", g.Len())
	}
	return frames, nil
}
