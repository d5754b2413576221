// Command fulgur animates a ring of procedural lightning in the terminal
// or renders it headless to a PNG
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lixenwraith/fulgur/config"
	"github.com/lixenwraith/fulgur/parameter"
)

var (
	configFlag   = flag.String("config", "", "Path to TOML config file")
	debugFlag    = flag.Bool("debug", false, "Log to logs/fulgur.log and show the status line")
	seedFlag     = flag.Int64("seed", 0, "Random seed, overrides the config (0 keeps it)")
	snapshotFlag = flag.String("snapshot", "", "Render headless and write a PNG to this path")
	framesFlag   = flag.Int("frames", parameter.SnapshotFrames, "Frames simulated before the snapshot")
	sizeFlag     = flag.String("size", fmt.Sprintf("%dx%d", parameter.SnapshotWidth, parameter.SnapshotHeight), "Snapshot size WxH")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		slog.Error("exit", "err", err)
		fmt.Fprintf(os.Stderr, "fulgur: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(*configFlag)
	if err != nil {
		return err
	}
	seed := resolveSeed(cfg.Scene.Seed, *seedFlag, time.Now())
	slog.Info("starting", "seed", seed, "roots", cfg.Scene.Roots, "snapshot", *snapshotFlag != "")

	if *snapshotFlag != "" {
		w, h, err := parseSize(*sizeFlag)
		if err != nil {
			return err
		}
		return runSnapshot(cfg, seed, *snapshotFlag, *framesFlag, w, h)
	}
	return runLive(cfg, seed, *debugFlag)
}

// loadConfig returns defaults for an empty path
func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// resolveSeed prefers the flag, then the config, then the clock
func resolveSeed(configured, override int64, now time.Time) int64 {
	switch {
	case override != 0:
		return override
	case configured != 0:
		return configured
	default:
		return now.UnixNano()
	}
}

var errBadSize = errors.New("size must be WxH with positive integers")

func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", errBadSize, s)
	}
	w, errW := strconv.Atoi(ws)
	h, errH := strconv.Atoi(hs)
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", errBadSize, s)
	}
	return w, h, nil
}
