package scene

import "slices"

// Table maps instance ids to instances across all sections.
// It is read-only after NewTable and safe for concurrent use.
type Table struct {
	byID  map[uint32]Instance
	order []uint32
}

// NewTable flattens sections into a lookup table. When an id repeats, the
// first occurrence in section/instance order wins.
func NewTable(sections []Section) *Table {
	t := &Table{byID: make(map[uint32]Instance)}
	for _, sec := range sections {
		for _, inst := range sec.Instances {
			if _, exists := t.byID[inst.ID]; exists {
				continue
			}
			t.byID[inst.ID] = inst
			t.order = append(t.order, inst.ID)
		}
	}
	return t
}

// Lookup returns the instance with the given id.
func (t *Table) Lookup(id uint32) (Instance, bool) {
	inst, ok := t.byID[id]
	return inst, ok
}

// Len returns the number of distinct instances.
func (t *Table) Len() int {
	return len(t.order)
}

// IDs returns instance ids in first-seen order.
func (t *Table) IDs() []uint32 {
	return slices.Clone(t.order)
}
