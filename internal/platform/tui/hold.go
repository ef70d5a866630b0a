package tui

import (
	"slices"
	"time"

	"github.com/vovakirdan/tui-kitchen/internal/core"
)

// Default hold windows. Terminals report key presses and auto-repeats but
// never releases, so a key counts as held until no event has arrived for a
// window: the long one bridges the OS delay before auto-repeat starts, the
// short one covers the gap between repeats.
//
// A second press of the same key inside the repeat window cannot be told
// apart from an auto-repeat, so a double tap faster than DefaultHoldRepeat
// counts once.
const (
	DefaultHoldInitial = 550 * time.Millisecond
	DefaultHoldRepeat  = 120 * time.Millisecond
)

type keyState struct {
	last      time.Time
	repeating bool
}

// HoldTracker emulates key-up events from a stream of key presses.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration
	keys    map[core.Action]*keyState
}

// NewHoldTracker creates a tracker with the given windows. Zero values use
// the defaults.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	if initial <= 0 {
		initial = DefaultHoldInitial
	}
	if repeat <= 0 {
		repeat = DefaultHoldRepeat
	}
	return &HoldTracker{
		initial: initial,
		repeat:  min(repeat, initial),
		keys:    make(map[core.Action]*keyState),
	}
}

// Press records a key event at now. It returns true for a fresh press and
// false for an auto-repeat of a key that is still held.
func (h *HoldTracker) Press(a core.Action, now time.Time) bool {
	st, ok := h.keys[a]
	if !ok || !h.alive(st, now) {
		h.keys[a] = &keyState{last: now}
		return true
	}
	fresh := now.Sub(st.last) > h.repeat
	st.repeating = true
	st.last = now
	return fresh
}

// Release forgets a key.
func (h *HoldTracker) Release(a core.Action) {
	delete(h.keys, a)
}

// Reset forgets every key.
func (h *HoldTracker) Reset() {
	clear(h.keys)
}

// Held returns the keys still held at now, in action order. Expired keys are
// dropped.
func (h *HoldTracker) Held(now time.Time) []core.Action {
	var held []core.Action
	for a, st := range h.keys {
		if !h.alive(st, now) {
			delete(h.keys, a)
			continue
		}
		held = append(held, a)
	}
	slices.Sort(held)
	return held
}

func (h *HoldTracker) alive(st *keyState, now time.Time) bool {
	window := h.initial
	if st.repeating {
		window = h.repeat
	}
	return now.Sub(st.last) <= window
}
