package scenefile

// Document schema. Field names are the on-disk keys; every node entry sets
// exactly one variant key.

type fileDoc struct {
	Sections []sectionDoc `yaml:"sections"`
}

type sectionDoc struct {
	Instances []instanceDoc `yaml:"instances"`
	Timelines []timelineDoc `yaml:"timelines"`
}

type instanceDoc struct {
	ID          *uint32     `yaml:"id"`
	Name        string      `yaml:"name"`
	Asset       string      `yaml:"asset"`
	Scale       *[3]float32 `yaml:"scale"` // nil = unit scale
	Rotation    [3]float32  `yaml:"rotation"`
	Translation [3]float32  `yaml:"translation"`
}

type timelineDoc struct {
	Associations []associationDoc `yaml:"associations"`
	Nodes        []nodeDoc        `yaml:"nodes"`
}

type associationDoc struct {
	Instance  uint32 `yaml:"instance"`
	AnchorKey uint16 `yaml:"anchor_key"`
}

type nodeDoc struct {
	Anchor         *anchorDoc         `yaml:"anchor"`
	TransformRef   *transformRefDoc   `yaml:"transform_ref"`
	ModelAnimation *modelAnimationDoc `yaml:"model_animation"`
	CurveSet       *curveSetDoc       `yaml:"curve_set"`
	Other          *otherDoc          `yaml:"other"`
}

type anchorDoc struct {
	ID            uint16   `yaml:"id"`
	Key           uint16   `yaml:"key"`
	TransformRefs []uint16 `yaml:"transform_refs"`
}

type transformRefDoc struct {
	ID         uint16   `yaml:"id"`
	Animations []uint16 `yaml:"animations"`
}

type modelAnimationDoc struct {
	ID       uint16 `yaml:"id"`
	Duration uint32 `yaml:"duration"`
	CurveSet uint16 `yaml:"curve_set"`
}

type curveSetDoc struct {
	ID     uint16     `yaml:"id"`
	Curves []curveDoc `yaml:"curves"`
}

type curveDoc struct {
	Attribute string       `yaml:"attribute"`
	Rows      [][2]float32 `yaml:"rows"`
}

type otherDoc struct {
	Tag string `yaml:"tag"`
}
