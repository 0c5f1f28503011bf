package animation

import (
	"github.com/go-gl/mathgl/mgl32"

	"sgb-animator/internal/scene"
	"sgb-animator/internal/timeline"
)

func rows(kv ...float32) []timeline.Row {
	out := make([]timeline.Row, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, timeline.Row{Time: kv[i], Value: kv[i+1]})
	}
	return out
}

// chain returns a timeline animating instance through
// anchor(key 1) -> transform ref 2 -> model animation 3 -> curve set 4.
func chain(instance uint32, duration uint32, curves ...timeline.Curve) timeline.Timeline {
	return timeline.Timeline{
		Associations: []timeline.Association{{InstanceID: instance, AnchorKey: 1}},
		Nodes: []timeline.Node{
			&timeline.Anchor{ID: 1, Key: 1, TransformRefIDs: []uint16{2}},
			&timeline.TransformRef{ID: 2, AnimationIDs: []uint16{3}},
			&timeline.ModelAnimation{ID: 3, Duration: duration, CurveSetID: 4},
			&timeline.CurveSet{ID: 4, Curves: curves},
		},
	}
}

func rotYCurve() timeline.Curve {
	return timeline.Curve{Attribute: timeline.RotationY, Rows: rows(0, 0, 10, 90)}
}

func instance(id uint32, translation mgl32.Vec3) scene.Instance {
	tr := scene.IdentityTransform()
	tr.Translation = translation
	return scene.Instance{ID: id, Transform: tr}
}

func oneSection(instances []scene.Instance, timelines ...timeline.Timeline) (timeline.Graph, []scene.Section) {
	return timeline.Graph{Sections: []timeline.Section{{Timelines: timelines}}},
		[]scene.Section{{Instances: instances}}
}
