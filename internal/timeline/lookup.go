package timeline

// Lookups scan Nodes in stored order and return the first match. They are
// meant for load-time graph walking, not per-frame use.

// Anchor returns the first anchor whose Key equals key.
func (t *Timeline) Anchor(key uint16) (*Anchor, bool) {
	for _, n := range t.Nodes {
		if a, ok := n.(*Anchor); ok && a.Key == key {
			return a, true
		}
	}
	return nil, false
}

// AnchorByID returns the first anchor in the anchor id namespace.
func (t *Timeline) AnchorByID(id uint16) (*Anchor, bool) {
	for _, n := range t.Nodes {
		if a, ok := n.(*Anchor); ok && a.ID == id {
			return a, true
		}
	}
	return nil, false
}

// TransformRef returns the first transform reference with the given id.
func (t *Timeline) TransformRef(id uint16) (*TransformRef, bool) {
	for _, n := range t.Nodes {
		if r, ok := n.(*TransformRef); ok && r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// ModelAnimation returns the first model animation with the given id.
func (t *Timeline) ModelAnimation(id uint16) (*ModelAnimation, bool) {
	for _, n := range t.Nodes {
		if m, ok := n.(*ModelAnimation); ok && m.ID == id {
			return m, true
		}
	}
	return nil, false
}

// CurveSet returns the first curve set with the given id.
func (t *Timeline) CurveSet(id uint16) (*CurveSet, bool) {
	for _, n := range t.Nodes {
		if c, ok := n.(*CurveSet); ok && c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Resolve looks up an animation-description id. The TransformRef namespace
// is tried first, then Anchor, then ModelAnimation.
func (t *Timeline) Resolve(id uint16) (Node, bool) {
	if r, ok := t.TransformRef(id); ok {
		return r, true
	}
	if a, ok := t.AnchorByID(id); ok {
		return a, true
	}
	if m, ok := t.ModelAnimation(id); ok {
		return m, true
	}
	return nil, false
}
