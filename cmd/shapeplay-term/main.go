// Command shapeplay-term plays the game in a terminal using half-block
// characters.
//
// Arrow keys move the cursor, Space spawns a batch, D starts a deletion
// episode. Esc, q or Ctrl-C quits.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/shapeplay"
	"github.com/gogpu/shapeplay/backend"
	_ "github.com/gogpu/shapeplay/backend/wgpu"
	"github.com/gogpu/shapeplay/game"
	"github.com/gogpu/shapeplay/integration/term"
	"github.com/gogpu/shapeplay/internal/sfx"
	_ "github.com/gogpu/wgpu/hal/allbackends"
)

func main() {
	var (
		backendName = flag.String("backend", backend.BackendSoftware, "render backend (software, wgpu)")
		configPath  = flag.String("config", "", "YAML game configuration")
		spawn       = flag.String("spawn", "", "spawn preset (classic, mixed)")
		fps         = flag.Int("fps", 30, "frames per second")
		hold        = flag.Duration("hold", term.DefaultHold, "key hold emulation timeout")
		volume      = flag.Float64("volume", 0.5, "sound volume in [0, 1]; 0 disables audio")
		logPath     = flag.String("log", "", "write logs to this file")
		verbose     = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		level := slog.LevelInfo
		if *verbose {
			level = slog.LevelDebug
		}
		shapeplay.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	}

	if err := run(*backendName, *configPath, *spawn, *fps, *hold, *volume); err != nil {
		fmt.Fprintf(os.Stderr, "shapeplay-term: %v\n", err)
		os.Exit(1)
	}
}

func run(backendName, configPath, spawn string, fps int, hold time.Duration, volume float64) error {
	cfg := game.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = game.LoadConfig(configPath); err != nil {
			return err
		}
	}
	if spawn != "" {
		p, err := game.SpawnPreset(spawn)
		if err != nil {
			return err
		}
		cfg.Spawn = p
	}
	if fps <= 0 {
		fps = 30
	}

	b, err := backend.Open(backendName)
	if err != nil {
		return err
	}
	defer b.Close()

	vp := cfg.Camera.Viewport
	surface, err := b.NewSurface(vp.Width, vp.Height)
	if err != nil {
		return err
	}
	defer surface.Close()

	opts := []game.Option{}
	if volume > 0 {
		player := sfx.New(volume)
		if err := player.Start(); err != nil {
			shapeplay.Logger().Warn("audio unavailable", "error", err)
		} else {
			defer player.Close()
			opts = append(opts, game.WithListener(player.Handle))
		}
	}

	kb := game.NewKeyboard()
	g, err := game.New(surface, kb, game.SystemClock{}, cfg, opts...)
	if err != nil {
		return err
	}
	defer g.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()
	screen.EnableFocus()

	presenter := term.NewPresenter(screen)
	keys := term.NewKeyTracker(kb, term.DefaultKeyMap(), hold)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	frame := shapeplay.NewPixmap(vp.Width, vp.Height)
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if quit(ev) {
					return nil
				}
				keys.HandleKey(ev, ev.When())
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventFocus:
				if !ev.Focused {
					keys.ReleaseAll()
				}
			}

		case now := <-ticker.C:
			keys.Expire(now)
			g.Update()
			if err := surface.BeginFrame(); err != nil {
				return err
			}
			g.Draw(surface)
			if err := surface.EndFrame(frame); err != nil {
				return err
			}
			status := fmt.Sprintf(" objects: %d  %s  [arrows] move  [space] spawn  [d] delete  [q] quit",
				g.Len(), episode(g.Deleting()))
			presenter.Present(frame, status)
		}
	}
}

func quit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

func episode(deleting bool) string {
	if deleting {
		return "deleting"
	}
	return "idle"
}
