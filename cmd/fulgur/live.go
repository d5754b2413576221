package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fulgur/config"
	"github.com/lixenwraith/fulgur/core"
	"github.com/lixenwraith/fulgur/lightning"
	"github.com/lixenwraith/fulgur/render"
	"github.com/lixenwraith/fulgur/scene"
	"github.com/lixenwraith/fulgur/schedule"
	"github.com/lixenwraith/fulgur/status"
)

// runLive animates on the terminal until q, Esc or Ctrl-C
func runLive(cfg config.Config, seed int64, debug bool) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.RegisterScreen(screen)
	defer func() {
		core.RegisterScreen(nil)
		screen.Fini()
	}()
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.HideCursor()

	bg := cfg.Background()
	overlayFg := render.Lerp(bg, render.RGBWhite, 0.75)

	cols, rows := screen.Size()
	canvas := render.NewCellCanvas(cols, rows, bg, cfg.Render.StrokeScale)
	slog.Debug("screen ready", "cols", cols, "rows", rows, "background", bg.Hex())

	clock := schedule.NewTimeProvider()
	queue := schedule.NewQueue(clock)
	loop := schedule.NewLoop(queue, cfg.FrameInterval())

	forest := lightning.NewForest(queue, seed)
	forest.SetRespanDelay(cfg.RespanDelay())

	reg := status.NewRegistry()
	sc := scene.New(forest, cfg.Layout(), cfg.Style(), clock, reg)
	defer sc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	core.Go(func() { pollEvents(ctx, cancel, screen, loop, canvas) })

	err = loop.Run(ctx, func() {
		sc.Frame(canvas)
		if debug {
			canvas.Buffer().SetText(0, 0, reg.Line(), overlayFg, bg)
		}
		canvas.Flush(screen)
	})
	slog.Info("loop stopped", "metrics", reg.Line())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// pollEvents forwards resizes to the loop goroutine and cancels on a quit key
// Returns once the screen is finalised and PollEvent yields nil
func pollEvents(ctx context.Context, cancel context.CancelFunc, screen tcell.Screen, loop *schedule.Loop, canvas *render.CellCanvas) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			cols, rows := ev.Size()
			loop.Post(ctx, func() {
				canvas.Resize(cols, rows)
				screen.Sync()
			})
		case *tcell.EventKey:
			if isQuit(ev) {
				slog.Debug("quit key", "key", ev.Name())
				cancel()
				return
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
