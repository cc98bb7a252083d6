package series

// Navigator holds the selected position within an ordered key list.
// Steps are clamped at both ends; there is no wraparound.
type Navigator struct {
	keys []string
	idx  int
}

// NewNavigator starts at initial when present, otherwise at the first key.
func NewNavigator(keys []string, initial string) *Navigator {
	n := &Navigator{keys: keys}
	n.Select(initial)
	return n
}

// Keys returns the key list.
func (n *Navigator) Keys() []string { return n.keys }

// Len is the number of keys.
func (n *Navigator) Len() int { return len(n.keys) }

// Index is the current position, or -1 when there are no keys.
func (n *Navigator) Index() int {
	if len(n.keys) == 0 {
		return -1
	}
	return n.idx
}

// Current is the selected key, or "" when there are no keys.
func (n *Navigator) Current() string {
	if len(n.keys) == 0 {
		return ""
	}
	return n.keys[n.idx]
}

// Select moves to key and reports whether it exists.
func (n *Navigator) Select(key string) bool {
	for i, k := range n.keys {
		if k == key {
			n.idx = i
			return true
		}
	}
	return false
}

// Step shifts the index by delta and reports whether it moved. A shift that
// would leave the list is a no-op.
func (n *Navigator) Step(delta int) bool {
	to := n.idx + delta
	if delta == 0 || to < 0 || to >= len(n.keys) {
		return false
	}
	n.idx = to
	return true
}

// Prev steps back one key.
func (n *Navigator) Prev() bool { return n.Step(-1) }

// Next steps forward one key.
func (n *Navigator) Next() bool { return n.Step(1) }
