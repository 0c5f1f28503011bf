package animation

import (
	"log/slog"

	"sgb-animator/internal/scene"
	"sgb-animator/internal/timeline"
)

// Build walks every timeline of every section for every instance declared in
// the matching scene section and returns the resulting index.
//
// Per (instance, timeline) the walk is association → anchor (by key) →
// transform refs → animation ids. Animation ids resolve through
// Timeline.Resolve; model animations are recorded with their curve set,
// transform refs and anchors found there are expanded in place. Unresolved
// ids contribute nothing. A timeline that yields at least one binding
// replaces whatever an earlier timeline stored for the same instance.
func Build(graph timeline.Graph, sections []scene.Section) *Index {
	ix := &Index{entries: make(map[uint32][]Binding)}

	instances := 0
	for si := range min(len(graph.Sections), len(sections)) {
		timelines := graph.Sections[si].Timelines
		for _, inst := range sections[si].Instances {
			instances++
			for ti := range timelines {
				bindings := resolveTimeline(&timelines[ti], inst.ID)
				if len(bindings) > 0 {
					ix.entries[inst.ID] = bindings
				}
			}
		}
	}

	slog.Debug("animation: index built",
		"sections", len(graph.Sections),
		"instances", instances,
		"animated", len(ix.entries))
	return ix
}

type nodeKey struct {
	kind timeline.Kind
	id   uint16
}

// walker expands one timeline for one instance. path holds the anchors and
// transform refs currently being expanded, so reference cycles terminate
// while repeated acyclic references are still recorded every time.
type walker struct {
	tl   *timeline.Timeline
	path []nodeKey
	out  []Binding
}

func resolveTimeline(tl *timeline.Timeline, instanceID uint32) []Binding {
	w := walker{tl: tl}
	for _, as := range tl.Associations {
		if as.InstanceID != instanceID {
			continue
		}
		if a, ok := tl.Anchor(as.AnchorKey); ok {
			w.anchor(a)
		}
	}
	return w.out
}

func (w *walker) enter(k nodeKey) bool {
	for _, p := range w.path {
		if p == k {
			return false
		}
	}
	w.path = append(w.path, k)
	return true
}

func (w *walker) leave() {
	w.path = w.path[:len(w.path)-1]
}

func (w *walker) anchor(a *timeline.Anchor) {
	if !w.enter(nodeKey{timeline.KindAnchor, a.ID}) {
		return
	}
	defer w.leave()
	for _, id := range a.TransformRefIDs {
		if r, ok := w.tl.TransformRef(id); ok {
			w.transformRef(r)
		}
	}
}

func (w *walker) transformRef(r *timeline.TransformRef) {
	if !w.enter(nodeKey{timeline.KindTransformRef, r.ID}) {
		return
	}
	defer w.leave()
	for _, id := range r.AnimationIDs {
		n, ok := w.tl.Resolve(id)
		if !ok {
			continue
		}
		switch n := n.(type) {
		case *timeline.ModelAnimation:
			w.record(n)
		case *timeline.TransformRef:
			w.transformRef(n)
		case *timeline.Anchor:
			w.anchor(n)
		}
	}
}

func (w *walker) record(m *timeline.ModelAnimation) {
	cs, _ := w.tl.CurveSet(m.CurveSetID)
	w.out = append(w.out, Binding{
		Animation: *m,
		Curves:    cs.Clone(),
	})
}
