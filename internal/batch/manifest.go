package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"sgb-animator/internal/animation"
	"sgb-animator/internal/scene"
)

// InstanceEntry is the animated model matrix of one instance in one frame.
type InstanceEntry struct {
	ID       uint32      `json:"id"`
	Name     string      `json:"name,omitempty"`
	Animated bool        `json:"animated"`
	Matrix   [16]float32 `json:"matrix"` // column-major
}

// ManifestEntry represents one rendered frame in the output manifest.
type ManifestEntry struct {
	Frame     int             `json:"frame"`
	Time      float32         `json:"time"`
	Image     string          `json:"image"`
	Instances []InstanceEntry `json:"instances"`
}

// WriteManifest writes the per-frame instance matrices of every successful
// frame to path.
func WriteManifest(path string, results []Result, ix *animation.Index, tbl *scene.Table) error {
	ids := tbl.IDs()
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if !r.Success {
			continue
		}
		e := ManifestEntry{
			Frame:     r.Frame,
			Time:      r.Time,
			Image:     filepath.ToSlash(r.Image),
			Instances: make([]InstanceEntry, 0, len(ids)),
		}
		for _, id := range ids {
			inst, _ := tbl.Lookup(id)
			ie := InstanceEntry{ID: id, Name: inst.Name}
			_, ie.Animated = ix.Lookup(id)
			if !ix.Animate(tbl, id, r.Time, ie.Matrix[:]) {
				continue
			}
			e.Instances = append(e.Instances, ie)
		}
		entries = append(entries, e)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: encode manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: write manifest: %w", err)
	}
	return nil
}
