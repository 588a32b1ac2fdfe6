package core

// NewAtomMap returns an empty immutable atom map.
func NewAtomMap() AtomMap {
	return AtomMap{entries: map[AtomID]Value{}}
}

// Set returns a new AtomMap with key bound to value, preserving the
// original's insertion order and appending key if it is new. The
// receiver is left untouched (copy-on-write; see DESIGN.md).
func (m AtomMap) Set(key AtomID, value Value) AtomMap {
	entries := make(map[AtomID]Value, len(m.entries)+1)
	for k, v := range m.entries {
		entries[k] = v
	}
	_, existed := entries[key]
	entries[key] = value
	order := m.order
	if !existed {
		order = make([]AtomID, len(m.order)+1)
		copy(order, m.order)
		order[len(m.order)] = key
	}
	return AtomMap{entries: entries, order: order}
}

// Delete returns a new AtomMap with key removed.
func (m AtomMap) Delete(key AtomID) AtomMap {
	if _, ok := m.entries[key]; !ok {
		return m
	}
	entries := make(map[AtomID]Value, len(m.entries))
	order := make([]AtomID, 0, len(m.order))
	for k, v := range m.entries {
		if k != key {
			entries[k] = v
		}
	}
	for _, k := range m.order {
		if k != key {
			order = append(order, k)
		}
	}
	return AtomMap{entries: entries, order: order}
}

// Get looks up key.
func (m AtomMap) Get(key AtomID) (Value, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Keys returns the map's keys in insertion order.
func (m AtomMap) Keys() []AtomID {
	return m.order
}

// Len reports the number of entries.
func (m AtomMap) Len() int { return len(m.order) }
