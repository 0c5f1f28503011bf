package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collidingTimeline() *Timeline {
	return &Timeline{
		Nodes: []Node{
			&Other{Tag: "C009"},
			&ModelAnimation{ID: 5, Duration: 10, CurveSetID: 1},
			&Anchor{ID: 5, Key: 7, TransformRefIDs: []uint16{6}},
			&TransformRef{ID: 6, AnimationIDs: []uint16{5}},
			&CurveSet{ID: 5},
			&TransformRef{ID: 6, AnimationIDs: []uint16{99}},
			&ModelAnimation{ID: 8},
		},
	}
}

func TestTypedLookupsUseOwnNamespace(t *testing.T) {
	tl := collidingTimeline()

	a, ok := tl.Anchor(7)
	require.True(t, ok)
	assert.Equal(t, uint16(5), a.ID)

	_, ok = tl.Anchor(5)
	assert.False(t, ok, "anchors are matched by key, not id")

	a, ok = tl.AnchorByID(5)
	require.True(t, ok)
	assert.Equal(t, uint16(7), a.Key)

	cs, ok := tl.CurveSet(5)
	require.True(t, ok)
	assert.Equal(t, uint16(5), cs.ID)

	m, ok := tl.ModelAnimation(5)
	require.True(t, ok)
	assert.Equal(t, uint32(10), m.Duration)

	_, ok = tl.CurveSet(6)
	assert.False(t, ok)
}

func TestLookupFirstInStoredOrder(t *testing.T) {
	r, ok := collidingTimeline().TransformRef(6)
	require.True(t, ok)
	assert.Equal(t, []uint16{5}, r.AnimationIDs)
}

func TestResolveOrder(t *testing.T) {
	tl := collidingTimeline()

	// Anchor 5 shadows ModelAnimation 5.
	n, ok := tl.Resolve(5)
	require.True(t, ok)
	assert.Equal(t, KindAnchor, n.Kind())

	n, ok = tl.Resolve(6)
	require.True(t, ok)
	assert.Equal(t, KindTransformRef, n.Kind())

	n, ok = tl.Resolve(8)
	require.True(t, ok)
	assert.Equal(t, KindModelAnimation, n.Kind())

	// Curve sets and other nodes are never animation descriptions.
	_, ok = (&Timeline{Nodes: []Node{&CurveSet{ID: 3}, &Other{}}}).Resolve(3)
	assert.False(t, ok)

	_, ok = tl.Resolve(42)
	assert.False(t, ok)
}

func TestAttributeNames(t *testing.T) {
	for a := AttributeUnknown; a <= RotationZ; a++ {
		got, ok := ParseAttribute(a.String())
		assert.True(t, ok)
		assert.Equal(t, a, got)
	}
	_, ok := ParseAttribute("scale_x")
	assert.False(t, ok)
	assert.Equal(t, "rotation_y", RotationY.String())
	assert.Equal(t, "model_animation", KindModelAnimation.String())
}

func TestCurveSetClone(t *testing.T) {
	var nilSet *CurveSet
	assert.Nil(t, nilSet.Clone())

	cs := &CurveSet{ID: 1, Curves: []Curve{{Attribute: RotationX, Rows: []Row{{0, 1}, {2, 3}}}}}
	cp := cs.Clone()
	require.Equal(t, cs, cp)

	cs.Curves[0].Rows[0].Value = 100
	assert.Equal(t, float32(1), cp.Curves[0].Rows[0].Value)
}
