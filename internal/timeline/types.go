// Package timeline holds the typed timeline graph of a shared group: the
// animation-description nodes of every timeline plus the table associating
// scene instances with anchor nodes.
package timeline

// Kind identifies the variant of a Node.
type Kind uint8

const (
	KindOther Kind = iota
	KindAnchor
	KindTransformRef
	KindModelAnimation
	KindCurveSet
)

var kindNames = [...]string{
	KindOther:          "other",
	KindAnchor:         "anchor",
	KindTransformRef:   "transform_ref",
	KindModelAnimation: "model_animation",
	KindCurveSet:       "curve_set",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Node is one timeline node. The set of implementations is closed:
// *Anchor, *TransformRef, *ModelAnimation, *CurveSet and *Other.
// Ids live in per-kind namespaces, so an Anchor and a TransformRef may share
// the same numeric id.
type Node interface {
	Kind() Kind
	node()
}

// Anchor ties instances to transform references. Associations select an
// anchor by Key, not by ID.
type Anchor struct {
	ID              uint16
	Key             uint16
	TransformRefIDs []uint16
}

// TransformRef lists the animation descriptions it drives. An id may name a
// TransformRef, an Anchor or a ModelAnimation.
type TransformRef struct {
	ID           uint16
	AnimationIDs []uint16
}

// ModelAnimation is a looping animation over one curve set.
type ModelAnimation struct {
	ID         uint16
	Duration   uint32 // loop period in timeline units
	CurveSetID uint16
}

// CurveSet is an ordered collection of attribute curves.
type CurveSet struct {
	ID     uint16
	Curves []Curve
}

// Other is a node kind this package does not interpret.
type Other struct {
	Tag string
}

func (*Anchor) Kind() Kind         { return KindAnchor }
func (*TransformRef) Kind() Kind   { return KindTransformRef }
func (*ModelAnimation) Kind() Kind { return KindModelAnimation }
func (*CurveSet) Kind() Kind       { return KindCurveSet }
func (*Other) Kind() Kind          { return KindOther }

func (*Anchor) node()         {}
func (*TransformRef) node()   {}
func (*ModelAnimation) node() {}
func (*CurveSet) node()       {}
func (*Other) node()          {}

// Association names an instance animated through the anchor with AnchorKey.
type Association struct {
	InstanceID uint32
	AnchorKey  uint16
}

// Timeline is one timeline of a section.
type Timeline struct {
	Nodes        []Node
	Associations []Association
}

// Section holds the timelines of one shared-group section, in stored order.
type Section struct {
	Timelines []Timeline
}

// Graph is the timeline data of a whole asset.
type Graph struct {
	Sections []Section
}

// Clone returns a deep copy of the curve set.
func (c *CurveSet) Clone() *CurveSet {
	if c == nil {
		return nil
	}
	out := &CurveSet{ID: c.ID, Curves: make([]Curve, len(c.Curves))}
	for i, cv := range c.Curves {
		out.Curves[i] = cv.Clone()
	}
	return out
}
