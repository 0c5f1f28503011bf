package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env fills flags that are still zero from SGB_* environment variables.
// The given dotenv files (default ".env") are loaded first when they exist;
// variables already set in the process environment are not overridden.
func (f *Flags) Env(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, p := range files {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}

	str := func(dst *string, key string) {
		if *dst == "" {
			*dst = os.Getenv(key)
		}
	}
	str(&f.ScenePath, "SGB_SCENE")
	str(&f.Backdrop, "SGB_BACKDROP")
	str(&f.OutputDir, "SGB_OUTPUT")

	ints := []struct {
		dst *int
		key string
	}{
		{&f.Frames, "SGB_FRAMES"},
		{&f.Size, "SGB_SIZE"},
		{&f.Workers, "SGB_WORKERS"},
	}
	for _, e := range ints {
		v := os.Getenv(e.key)
		if *e.dst != 0 || v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: %s: %w", e.key, err)
		}
		*e.dst = n
	}

	floats := []struct {
		dst *float64
		key string
	}{
		{&f.FPS, "SGB_FPS"},
		{&f.TimeScale, "SGB_TIMESCALE"},
	}
	for _, e := range floats {
		v := os.Getenv(e.key)
		if *e.dst != 0 || v == "" {
			continue
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: %s: %w", e.key, err)
		}
		*e.dst = x
	}
	return nil
}
