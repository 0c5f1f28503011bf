// Package curve evaluates keyframe curves into elementary transforms.
package curve

import (
	"github.com/go-gl/mathgl/mgl32"

	"sgb-animator/internal/mathutil"
	"sgb-animator/internal/timeline"
)

// NoLoop disables looping when passed as a period.
const NoLoop float32 = 0

// Sample returns the curve value at time at. With period > 0 the time is
// wrapped first; the remainder keeps the sign of at, so a negative at stays
// negative and brackets against the first row. ok is false when the curve
// has fewer than two rows.
//
// Brackets come from a forward scan in stored order: start is the first row
// with Time <= t (else the first row), end is the first row with Time >= t
// (else the last row). Rows are not assumed sorted.
func Sample(c timeline.Curve, at, period float32) (value float32, ok bool) {
	rows := c.Rows
	if len(rows) < 2 {
		return 0, false
	}
	t := mathutil.Wrap(at, period)

	start, end := -1, -1
	for i := range rows {
		if rows[i].Time <= t {
			start = i
			break
		}
	}
	for i := range rows {
		if rows[i].Time >= t {
			end = i
			break
		}
	}
	if start < 0 {
		start = 0
	}
	if end < 0 {
		end = len(rows) - 1
	}

	s, e := rows[start], rows[end]
	if s.Time == e.Time {
		return s.Value, true
	}
	a := (t - s.Time) / (e.Time - s.Time)
	return mathutil.Lerp(s.Value, e.Value, a), true
}

// Evaluate returns the elementary transform of c at time at.
// Rotation curves rotate by their value in degrees around their axis.
// Position and unknown attributes currently evaluate to identity.
func Evaluate(c timeline.Curve, at, period float32) mgl32.Mat4 {
	value, ok := Sample(c, at, period)
	if !ok {
		return mgl32.Ident4()
	}
	switch c.Attribute {
	case timeline.RotationX:
		return mathutil.RotX(value)
	case timeline.RotationY:
		return mathutil.RotY(value)
	case timeline.RotationZ:
		return mathutil.RotZ(value)
	default:
		return mgl32.Ident4()
	}
}
