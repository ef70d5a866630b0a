package cook

// History is the set of currently held directions, kept in the order they
// were pressed. The last entry is the most recent press still held.
// It holds at most the four cardinal directions and never allocates.
type History struct {
	keys [len(Cardinals)]Facing
	n    int
}

// Press appends d if it is not already held. Repeated presses of a held key
// do not change its position. Returns true if d was appended.
func (h *History) Press(d Facing) bool {
	if !d.Cardinal() || h.Contains(d) {
		return false
	}
	h.keys[h.n] = d
	h.n++
	return true
}

// Release removes d if present, keeping the order of the rest.
// Returns true if d was removed.
func (h *History) Release(d Facing) bool {
	for i := 0; i < h.n; i++ {
		if h.keys[i] != d {
			continue
		}
		copy(h.keys[i:h.n-1], h.keys[i+1:h.n])
		h.n--
		h.keys[h.n] = FacingNone
		return true
	}
	return false
}

// Contains reports whether d is currently held.
func (h *History) Contains(d Facing) bool {
	for i := 0; i < h.n; i++ {
		if h.keys[i] == d {
			return true
		}
	}
	return false
}

// Len returns the number of held directions.
func (h *History) Len() int {
	return h.n
}

// Last returns the most recently pressed direction that is still held.
func (h *History) Last() (Facing, bool) {
	if h.n == 0 {
		return FacingNone, false
	}
	return h.keys[h.n-1], true
}

// Slice returns the held directions, oldest first.
func (h *History) Slice() []Facing {
	out := make([]Facing, h.n)
	copy(out, h.keys[:h.n])
	return out
}

// Reset releases every direction.
func (h *History) Reset() {
	*h = History{}
}

// Apply presses every held direction in ctrl and releases every other one,
// in key sampling order (right, left, up, down).
func (h *History) Apply(ctrl Controls) {
	for _, d := range Cardinals {
		if ctrl.Holds(d) {
			h.Press(d)
		} else {
			h.Release(d)
		}
	}
}
