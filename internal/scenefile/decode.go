// Package scenefile decodes YAML (or JSON) shared-group descriptions into the
// typed timeline graph and instance sections the animator consumes.
//
// Decoding is strict: structural problems are returned as errors so the
// animation index is only ever built from well-formed input.
package scenefile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"

	"sgb-animator/internal/scene"
	"sgb-animator/internal/timeline"
)

var (
	ErrEmpty             = errors.New("empty document")
	ErrMissingID         = errors.New("instance without id")
	ErrDuplicateInstance = errors.New("duplicate instance id in section")
	ErrNodeVariant       = errors.New("node must set exactly one variant")
	ErrAttribute         = errors.New("unknown curve attribute")
)

// Asset is a decoded shared group. Graph.Sections and Scene.Sections have
// the same length and line up by position.
type Asset struct {
	Graph timeline.Graph
	Scene scene.Scene
}

// Table returns the flattened instance table of the asset.
func (a *Asset) Table() *scene.Table {
	return scene.NewTable(a.Scene.Sections)
}

// Load reads and decodes the scene file at path.
func Load(path string) (*Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scenefile: open %s: %w", path, err)
	}
	defer f.Close()

	a, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("scenefile: decode %s: %w", path, err)
	}
	return a, nil
}

// Decode reads one document from r.
func Decode(r io.Reader) (*Asset, error) {
	a, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("scenefile: decode: %w", err)
	}
	return a, nil
}

func decode(r io.Reader) (*Asset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc fileDoc
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, err
	}

	a := &Asset{
		Graph: timeline.Graph{Sections: make([]timeline.Section, len(doc.Sections))},
		Scene: scene.Scene{Sections: make([]scene.Section, len(doc.Sections))},
	}
	for si, sd := range doc.Sections {
		sec, err := convertInstances(sd.Instances)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", si, err)
		}
		a.Scene.Sections[si] = sec

		tls := make([]timeline.Timeline, len(sd.Timelines))
		for ti, td := range sd.Timelines {
			tl, err := convertTimeline(td)
			if err != nil {
				return nil, fmt.Errorf("section %d timeline %d: %w", si, ti, err)
			}
			warnUndeclared(si, ti, tl, sec)
			tls[ti] = tl
		}
		a.Graph.Sections[si] = timeline.Section{Timelines: tls}
	}
	return a, nil
}

func convertInstances(docs []instanceDoc) (scene.Section, error) {
	sec := scene.Section{Instances: make([]scene.Instance, 0, len(docs))}
	seen := make(map[uint32]struct{}, len(docs))
	for i, d := range docs {
		if d.ID == nil {
			return scene.Section{}, fmt.Errorf("instance %d: %w", i, ErrMissingID)
		}
		id := *d.ID
		if _, dup := seen[id]; dup {
			return scene.Section{}, fmt.Errorf("instance %d: %w: %d", i, ErrDuplicateInstance, id)
		}
		seen[id] = struct{}{}

		tr := scene.IdentityTransform()
		if d.Scale != nil {
			tr.Scale = mgl32.Vec3(*d.Scale)
		}
		tr.Rotation = mgl32.Vec3(d.Rotation)
		tr.Translation = mgl32.Vec3(d.Translation)

		sec.Instances = append(sec.Instances, scene.Instance{
			ID:        id,
			Name:      d.Name,
			AssetPath: d.Asset,
			Transform: tr,
		})
	}
	return sec, nil
}

func convertTimeline(d timelineDoc) (timeline.Timeline, error) {
	tl := timeline.Timeline{
		Nodes:        make([]timeline.Node, 0, len(d.Nodes)),
		Associations: make([]timeline.Association, len(d.Associations)),
	}
	for i, as := range d.Associations {
		tl.Associations[i] = timeline.Association{InstanceID: as.Instance, AnchorKey: as.AnchorKey}
	}
	for i, nd := range d.Nodes {
		n, err := convertNode(nd)
		if err != nil {
			return timeline.Timeline{}, fmt.Errorf("node %d: %w", i, err)
		}
		tl.Nodes = append(tl.Nodes, n)
	}
	return tl, nil
}

func convertNode(d nodeDoc) (timeline.Node, error) {
	var out []timeline.Node
	if d.Anchor != nil {
		out = append(out, &timeline.Anchor{
			ID:              d.Anchor.ID,
			Key:             d.Anchor.Key,
			TransformRefIDs: d.Anchor.TransformRefs,
		})
	}
	if d.TransformRef != nil {
		out = append(out, &timeline.TransformRef{
			ID:           d.TransformRef.ID,
			AnimationIDs: d.TransformRef.Animations,
		})
	}
	if d.ModelAnimation != nil {
		out = append(out, &timeline.ModelAnimation{
			ID:         d.ModelAnimation.ID,
			Duration:   d.ModelAnimation.Duration,
			CurveSetID: d.ModelAnimation.CurveSet,
		})
	}
	if d.CurveSet != nil {
		cs, err := convertCurveSet(d.CurveSet)
		if err != nil {
			return nil, err
		}
		out = append(out, cs)
	}
	if d.Other != nil {
		out = append(out, &timeline.Other{Tag: d.Other.Tag})
	}
	if len(out) != 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrNodeVariant, len(out))
	}
	return out[0], nil
}

func convertCurveSet(d *curveSetDoc) (*timeline.CurveSet, error) {
	cs := &timeline.CurveSet{ID: d.ID, Curves: make([]timeline.Curve, len(d.Curves))}
	for i, cd := range d.Curves {
		attr, ok := timeline.ParseAttribute(cd.Attribute)
		if !ok {
			return nil, fmt.Errorf("curve set %d curve %d: %w %q", d.ID, i, ErrAttribute, cd.Attribute)
		}
		rows := make([]timeline.Row, len(cd.Rows))
		for j, r := range cd.Rows {
			rows[j] = timeline.Row{Time: r[0], Value: r[1]}
		}
		cs.Curves[i] = timeline.Curve{Attribute: attr, Rows: rows}
	}
	return cs, nil
}

// warnUndeclared reports associations naming instances the section does not
// declare. They are legal but never animate anything.
func warnUndeclared(si, ti int, tl timeline.Timeline, sec scene.Section) {
	for _, as := range tl.Associations {
		declared := false
		for _, inst := range sec.Instances {
			if inst.ID == as.InstanceID {
				declared = true
				break
			}
		}
		if !declared {
			slog.Warn("scenefile: association names undeclared instance",
				"section", si, "timeline", ti, "instance", as.InstanceID)
		}
	}
}
