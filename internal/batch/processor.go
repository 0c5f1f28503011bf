package batch

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"sgb-animator/internal/preview"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir string
	Renderer  *preview.Renderer
	Frames    int
	FrameTime func(frame int) float32 // frame number to timeline time
	Workers   int
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Time    float32
	Image   string // relative to OutputDir
	Success bool
	Error   string
}

// Run renders all frames using a worker pool.
func Run(cfg Config) []Result {
	total := cfg.Frames
	results := make([]Result, total)
	var processed atomic.Int64

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if p := processed.Load(); p > 0 {
					rate := float64(p) / time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
				}
			}
		}
	}()

	frames := make(chan int, workers*2)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range frames {
				results[i] = renderFrame(cfg, i)
				processed.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frames <- i
	}
	close(frames)

	wg.Wait()
	close(done)

	return results
}

// FramePath returns the image path of a frame relative to the output dir.
func FramePath(frame int) string {
	return filepath.Join("frames", fmt.Sprintf("%04d.webp", frame))
}

func renderFrame(cfg Config, frame int) Result {
	res := Result{Frame: frame, Time: cfg.FrameTime(frame), Image: FramePath(frame)}

	img := cfg.Renderer.Render(res.Time)

	outPath := filepath.Join(cfg.OutputDir, res.Image)
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		res.Error = err.Error()
		return res
	}

	f, err := os.Create(outPath)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if err := writeFrame(f, img); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

// writeFrame encodes img into w and closes it. A close error is returned.
func writeFrame(w io.WriteCloser, img image.Image) error {
	if err := nativewebp.Encode(w, img, nil); err != nil {
		w.Close()
		return fmt.Errorf("WebP encode: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close frame: %w", err)
	}
	return nil
}
