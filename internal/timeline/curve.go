package timeline

import "slices"

// Attribute is the elementary transform a curve drives.
type Attribute uint8

const (
	AttributeUnknown Attribute = iota
	PositionX
	PositionY
	PositionZ
	RotationX
	RotationY
	RotationZ
)

var attributeNames = [...]string{
	AttributeUnknown: "unknown",
	PositionX:        "position_x",
	PositionY:        "position_y",
	PositionZ:        "position_z",
	RotationX:        "rotation_x",
	RotationY:        "rotation_y",
	RotationZ:        "rotation_z",
}

func (a Attribute) String() string {
	if int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return "unknown"
}

// ParseAttribute maps a name produced by Attribute.String back to its value.
func ParseAttribute(name string) (Attribute, bool) {
	for i, n := range attributeNames {
		if n == name {
			return Attribute(i), true
		}
	}
	return AttributeUnknown, false
}

// Row is one keyframe.
type Row struct {
	Time  float32
	Value float32
}

// Curve is an attribute plus its keyframes in stored order. Rows are not
// required to be sorted.
type Curve struct {
	Attribute Attribute
	Rows      []Row
}

// Clone returns a copy of the curve that shares no memory with c.
func (c Curve) Clone() Curve {
	return Curve{Attribute: c.Attribute, Rows: slices.Clone(c.Rows)}
}
