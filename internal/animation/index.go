// Package animation resolves the timeline animations that apply to each scene
// instance and evaluates them into model matrices.
//
// An Index is built once per asset with Build and is read-only afterwards;
// Animate may be called from any number of goroutines.
package animation

import (
	"maps"
	"slices"

	"sgb-animator/internal/timeline"
)

// Binding is one resolved animation of an instance. Curves is nil when the
// animation's curve set id did not resolve.
type Binding struct {
	Animation timeline.ModelAnimation
	Curves    *timeline.CurveSet
}

// Index maps instance ids to their resolved animations. Instances without
// animations are absent. A nil *Index behaves as an empty index.
type Index struct {
	entries map[uint32][]Binding
}

// Lookup returns the bindings of an instance in resolution order.
// The returned slice is shared with the index and must not be modified.
func (ix *Index) Lookup(id uint32) ([]Binding, bool) {
	if ix == nil {
		return nil, false
	}
	b, ok := ix.entries[id]
	return b, ok
}

// Len returns the number of animated instances.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.entries)
}

// InstanceIDs returns the animated instance ids in ascending order.
func (ix *Index) InstanceIDs() []uint32 {
	if ix == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(ix.entries))
}
