// Command shapeplay opens a window and plays the game.
//
// Arrow keys move the cursor, Space spawns a batch of shapes and D starts
// a deletion episode that removes the oldest shapes first.
//
// Architecture:
//
//	game.Game → shapeplay.Surface (software or wgpu) → canvas.Canvas → gogpu window
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"golang.org/x/text/language"

	"github.com/gogpu/gogpu"

	"github.com/gogpu/shapeplay"
	"github.com/gogpu/shapeplay/backend"
	"github.com/gogpu/shapeplay/backend/software"
	_ "github.com/gogpu/shapeplay/backend/wgpu"
	"github.com/gogpu/shapeplay/game"
	"github.com/gogpu/shapeplay/integration/canvas"
	"github.com/gogpu/shapeplay/internal/sfx"
	_ "github.com/gogpu/wgpu/hal/allbackends"
)

func main() {
	var (
		backendName = flag.String("backend", "", "render backend (software, wgpu); empty picks the best available")
		configPath  = flag.String("config", "", "YAML game configuration")
		spawn       = flag.String("spawn", "", "spawn preset (classic, mixed)")
		volume      = flag.Float64("volume", 0.5, "sound volume in [0, 1]; 0 disables audio")
		hud         = flag.Bool("hud", true, "draw the status line")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	shapeplay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := game.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = game.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *spawn != "" {
		p, err := game.SpawnPreset(*spawn)
		if err != nil {
			log.Fatal(err)
		}
		cfg.Spawn = p
	}

	var (
		b   backend.RenderBackend
		err error
	)
	if *backendName == "" {
		b, err = backend.InitDefault()
	} else {
		b, err = backend.Open(*backendName)
	}
	if err != nil {
		log.Fatal(err)
	}
	defer b.Close()

	vp := cfg.Camera.Viewport
	surface, err := b.NewSurface(vp.Width, vp.Height)
	if err != nil {
		log.Fatalf("Failed to create surface: %v", err)
	}
	defer surface.Close()

	var opts []game.Option
	if *volume > 0 {
		player := sfx.New(*volume)
		if err := player.Start(); err != nil {
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer player.Close()
			opts = append(opts, game.WithListener(player.Handle))
		}
	}

	kb := game.NewKeyboard()
	g, err := game.New(surface, kb, game.SystemClock{}, cfg, opts...)
	if err != nil {
		log.Fatal(err)
	}
	defer g.Close()

	var status *software.HUD
	if *hud {
		if status, err = software.NewHUD(14, language.English); err != nil {
			log.Fatalf("Failed to load HUD font: %v", err)
		}
		defer status.Close()
	}

	cv, err := canvas.New(vp.Width, vp.Height)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle("shapeplay").
		WithSize(vp.Width, vp.Height).
		WithContinuousRender(true))

	canvas.Bind(app.EventSource(), kb, canvas.DefaultKeyMap())

	var frame int
	app.OnDraw(func(dc *gogpu.Context) {
		if frame == 0 {
			log.Printf("Window backend: %s, render backend: %s", dc.Backend(), b.Name())
		}
		frame++

		g.Update()
		if err := cv.Draw(func(pm *shapeplay.Pixmap) error {
			if err := surface.BeginFrame(); err != nil {
				return err
			}
			g.Draw(surface)
			if err := surface.EndFrame(pm); err != nil {
				return err
			}
			if status != nil {
				status.Draw(pm, status.Status(g.Len(), g.Deleting()))
			}
			return nil
		}); err != nil {
			log.Printf("Frame %d: draw error: %v", frame, err)
			return
		}
		if err := cv.RenderTo(dc.AsTextureDrawer()); err != nil {
			log.Printf("Frame %d: render error: %v", frame, err)
		}
	})

	app.OnClose(func() {
		kb.ReleaseAll()
		if err := cv.Close(); err != nil {
			log.Printf("Canvas close: %v", err)
		}
	})

	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
