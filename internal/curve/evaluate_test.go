package curve

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"sgb-animator/internal/mathutil"
	"sgb-animator/internal/timeline"
)

func rotY(rows ...timeline.Row) timeline.Curve {
	return timeline.Curve{Attribute: timeline.RotationY, Rows: rows}
}

func TestDegenerateCurvesAreIdentity(t *testing.T) {
	curves := []timeline.Curve{
		rotY(),
		rotY(timeline.Row{Time: 0, Value: 30}), // would be a 30° rotation if sampled
	}
	for _, c := range curves {
		for _, at := range []float32{-3, 0, 0.5, 5, 1000} {
			assert.Equal(t, mgl32.Ident4(), Evaluate(c, at, NoLoop))
			assert.Equal(t, mgl32.Ident4(), Evaluate(c, at, 10))
		}
		_, ok := Sample(c, 0, NoLoop)
		assert.False(t, ok)
	}
}

func TestScenarioMidpoint(t *testing.T) {
	c := rotY(timeline.Row{Time: 0, Value: 0}, timeline.Row{Time: 10, Value: 90})

	v, ok := Sample(c, 5, NoLoop)
	assert.True(t, ok)
	assert.Equal(t, float32(45), v)
	assert.Equal(t, mathutil.RotY(45), Evaluate(c, 5, NoLoop))

	// Looped: 15 mod 10 = 5.
	assert.Equal(t, mathutil.RotY(45), Evaluate(c, 15, 10))
}

func TestExactKeyframes(t *testing.T) {
	c := rotY(
		timeline.Row{Time: 0, Value: 10},
		timeline.Row{Time: 4, Value: 20},
		timeline.Row{Time: 8, Value: -30},
	)
	for _, r := range c.Rows {
		v, ok := Sample(c, r.Time, NoLoop)
		assert.True(t, ok)
		assert.Equal(t, r.Value, v, "at %v", r.Time)
	}
}

func TestForwardScanBracket(t *testing.T) {
	c := rotY(
		timeline.Row{Time: 0, Value: 10},
		timeline.Row{Time: 4, Value: 20},
		timeline.Row{Time: 8, Value: -30},
	)
	// start is the first row with Time <= 6 (row 0), not the nearest one.
	v, _ := Sample(c, 6, NoLoop)
	assert.Equal(t, float32(-20), v)

	// Before the first key both ends land on row 0.
	v, _ = Sample(c, -1, NoLoop)
	assert.Equal(t, float32(10), v)

	// Past the last key the end falls back to the last row and the
	// interpolation extrapolates from row 0.
	lin := rotY(timeline.Row{Time: 0, Value: 0}, timeline.Row{Time: 10, Value: 90})
	v, _ = Sample(lin, 12, NoLoop)
	assert.InDelta(t, 108, v, 1e-3)
}

func TestZeroLengthBracket(t *testing.T) {
	c := rotY(timeline.Row{Time: 5, Value: 30}, timeline.Row{Time: 5, Value: 60})
	for _, at := range []float32{5, 7} {
		v, ok := Sample(c, at, NoLoop)
		assert.True(t, ok)
		assert.Equal(t, float32(30), v)
	}
	assert.Equal(t, mathutil.RotY(30), Evaluate(c, 7, NoLoop))
}

func TestLoopEquivalence(t *testing.T) {
	c := rotY(
		timeline.Row{Time: 0, Value: 0},
		timeline.Row{Time: 3, Value: 50},
		timeline.Row{Time: 10, Value: 90},
	)
	const period = 10
	for _, at := range []float32{0, 0.5, 2.25, 5, 7.75, 9.5} {
		want := Evaluate(c, at, period)
		for k := 1; k <= 4; k++ {
			assert.Equal(t, want, Evaluate(c, at+float32(k)*period, period), "at %v k %d", at, k)
		}
	}
}

func TestNegativeTimeKeepsSign(t *testing.T) {
	c := rotY(timeline.Row{Time: 0, Value: 0}, timeline.Row{Time: 10, Value: 90})

	// -5 mod 10 is -5, which brackets against the first row.
	v, _ := Sample(c, -5, 10)
	assert.Equal(t, float32(0), v)
	assert.Equal(t, Evaluate(c, -5, 10), Evaluate(c, -15, 10))
	assert.Equal(t, Evaluate(c, -5, 10), Evaluate(c, -25, 10))
	assert.NotEqual(t, Evaluate(c, 5, 10), Evaluate(c, -5, 10))
}

func TestNonPositivePeriodDisablesLoop(t *testing.T) {
	c := rotY(timeline.Row{Time: 0, Value: 0}, timeline.Row{Time: 100, Value: 90})
	want := Evaluate(c, 50, NoLoop)
	assert.Equal(t, want, Evaluate(c, 50, -1))
	assert.Equal(t, want, Evaluate(c, 50, float32(math.NaN())))
	assert.NotEqual(t, want, Evaluate(c, 50, 20))
}

func TestAttributes(t *testing.T) {
	rows := []timeline.Row{{Time: 0, Value: 0}, {Time: 10, Value: 90}}
	tests := []struct {
		attr timeline.Attribute
		want mgl32.Mat4
	}{
		{timeline.RotationX, mathutil.RotX(90)},
		{timeline.RotationY, mathutil.RotY(90)},
		{timeline.RotationZ, mathutil.RotZ(90)},
		// Position curves do not translate yet.
		{timeline.PositionX, mgl32.Ident4()},
		{timeline.PositionY, mgl32.Ident4()},
		{timeline.PositionZ, mgl32.Ident4()},
		{timeline.AttributeUnknown, mgl32.Ident4()},
	}
	for _, tt := range tests {
		c := timeline.Curve{Attribute: tt.attr, Rows: rows}
		assert.Equal(t, tt.want, Evaluate(c, 10, NoLoop), tt.attr.String())
	}
}
