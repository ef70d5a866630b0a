package cook

// Resolve computes a cook's facing from its held-key history.
//
// The most recent held key wins unless its opposite is also held. In that
// case a single perpendicular key breaks the tie; with both or neither
// perpendicular keys held the result is ambiguous and current is kept.
// An empty history also keeps current, so a cook keeps its last heading
// after all keys are released.
func Resolve(h *History, current Facing) Facing {
	next, ok := h.Last()
	if !ok {
		return current
	}

	opp := next.Opposite()
	if !h.Contains(opp) {
		return next
	}

	rot, rotOpp := next.Rotate90C(), opp.Rotate90C()
	hasRot, hasRotOpp := h.Contains(rot), h.Contains(rotOpp)
	switch {
	case hasRot && !hasRotOpp:
		return rot
	case hasRotOpp && !hasRot:
		return rotOpp
	default:
		return current
	}
}
