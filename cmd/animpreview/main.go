package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"sgb-animator/internal/animation"
	"sgb-animator/internal/batch"
	"sgb-animator/internal/config"
	"sgb-animator/internal/preview"
	"sgb-animator/internal/scenefile"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json or .toml)")
	scenePath := flag.String("scene", "", "Path to scene description (.yaml or .json)")
	outputDir := flag.String("output", "", "Output directory (default: <scene>-frames)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 30)")
	fps := flag.Float64("fps", 0, "Frames per second (default: 30)")
	timeScale := flag.Float64("timescale", 0, "Timeline units per second (default: 10)")
	size := flag.Int("size", 0, "Frame edge in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	backdrop := flag.String("backdrop", "", "Backdrop image (PNG, JPEG or TGA)")
	watch := flag.Bool("watch", false, "Re-render whenever the scene file changes")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags, then SGB_* environment, override config file
	flags := config.Flags{
		ScenePath: *scenePath,
		Backdrop:  *backdrop,
		OutputDir: *outputDir,
		Frames:    *frames,
		FPS:       *fps,
		TimeScale: *timeScale,
		Size:      *size,
		Workers:   *workers,
	}
	if err := flags.Env(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cfg.Resolve(flags)

	if cfg.ScenePath == "" {
		fmt.Fprintln(os.Stderr, "Error: no scene. Use -scene flag or config file.")
		os.Exit(1)
	}

	failed, err := render(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if !*watch {
			os.Exit(1)
		}
	}

	if !*watch {
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := watchScene(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// render runs one full preview pass and returns the number of failed frames.
func render(cfg config.Config) (int, error) {
	asset, err := scenefile.Load(cfg.ScenePath)
	if err != nil {
		return 0, err
	}

	table := asset.Table()
	index := animation.Build(asset.Graph, asset.Scene.Sections)
	fmt.Printf("Scene: %s\n", cfg.ScenePath)
	fmt.Printf("Instances: %d, animated: %d\n", table.Len(), index.Len())

	opts := preview.Options{Size: cfg.RenderSize, Supersample: cfg.Supersample}
	if cfg.Backdrop != "" {
		img, err := preview.LoadBackdrop(cfg.Backdrop)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		} else {
			opts.Backdrop = img
		}
	}

	fmt.Printf("Frames: %d at %.1f fps (%.1f units/sec), Workers: %d\n", cfg.Frames, cfg.FPS, cfg.TimeScale, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results := batch.Run(batch.Config{
		OutputDir: cfg.OutputDir,
		Renderer:  preview.NewRenderer(index, table, opts),
		Frames:    cfg.Frames,
		FrameTime: cfg.FrameTime,
		Workers:   cfg.Workers,
	})

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())

	var errs []batch.Result
	for _, r := range results {
		if !r.Success {
			errs = append(errs, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(errs), len(results))

	if len(errs) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(errs))
		for _, e := range errs[:min(len(errs), 20)] {
			fmt.Printf("  frame %d: %s\n", e.Frame, e.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	} else if err := batch.WriteManifest(manifestPath, results, index, table); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	return len(errs), nil
}

// watchScene re-renders after every change to the scene file until ctx is
// cancelled. The directory is watched so editors that replace the file on
// save are still seen.
func watchScene(ctx context.Context, cfg config.Config) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(cfg.ScenePath)); err != nil {
		return fmt.Errorf("watch %s: %w", cfg.ScenePath, err)
	}
	fmt.Printf("Watching %s (Ctrl-C to stop)\n", cfg.ScenePath)

	target := filepath.Clean(cfg.ScenePath)
	// Saves arrive as bursts of events; render once they settle.
	settle := time.NewTimer(time.Hour)
	settle.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			settle.Reset(200 * time.Millisecond)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("watch error", "err", err)
		case <-settle.C:
			if _, err := render(cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		}
	}
}
