package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/fulgur/config"
	"github.com/lixenwraith/fulgur/lightning"
	"github.com/lixenwraith/fulgur/render/raster"
	"github.com/lixenwraith/fulgur/scene"
	"github.com/lixenwraith/fulgur/schedule"
	"github.com/lixenwraith/fulgur/status"
)

// runSnapshot simulates frames on a mock clock and writes the last one to path
// Re-span timers fire between frames exactly as in the live loop
func runSnapshot(cfg config.Config, seed int64, path string, frames, width, height int) error {
	surf, err := raster.New(width, height, cfg.Background())
	if err != nil {
		return err
	}
	defer surf.Close()

	clock := schedule.NewMockTimeProvider(time.Unix(0, 0))
	queue := schedule.NewQueue(clock)
	forest := lightning.NewForest(queue, seed)
	forest.SetRespanDelay(cfg.RespanDelay())

	reg := status.NewRegistry()
	sc := scene.New(forest, cfg.Layout(), cfg.Style(), clock, reg)
	defer sc.Close()

	interval := cfg.FrameInterval()
	for i := 0; i < max(frames, 1); i++ {
		queue.RunDue()
		sc.Frame(surf)
		clock.Advance(interval)
	}
	if err := surf.Err(); err != nil {
		slog.Debug("snapshot paint error", "err", err)
	}

	if err := surf.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	slog.Info("snapshot written", "path", path, "metrics", reg.Line())
	return nil
}
