package food

// Stack is an ordered pile of food items. Index 0 is the top item.
type Stack struct {
	items []ID
	limit int
}

// NewStack creates an empty stack holding at most limit items.
// A limit of zero or less means unbounded.
func NewStack(limit int) *Stack {
	return &Stack{limit: limit}
}

// Size returns the number of items on the stack.
func (s *Stack) Size() int {
	return len(s.items)
}

// Full reports whether another item would exceed the limit.
func (s *Stack) Full() bool {
	return s.limit > 0 && len(s.items) >= s.limit
}

// Push places an item on top. Returns false if the stack is full.
func (s *Stack) Push(id ID) bool {
	if s.Full() {
		return false
	}
	s.items = append([]ID{id}, s.items...)
	return true
}

// Peek returns the top item without removing it.
func (s *Stack) Peek() (ID, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	return s.items[0], true
}

// Pop removes and returns the top item.
func (s *Stack) Pop() (ID, bool) {
	if len(s.items) == 0 {
		return 0, false
	}
	top := s.items[0]
	s.items = s.items[1:]
	return top, true
}

// Replace swaps the top item for another. Returns false on an empty stack.
func (s *Stack) Replace(id ID) bool {
	if len(s.items) == 0 {
		return false
	}
	s.items[0] = id
	return true
}

// Items returns a copy of the stack contents, top first.
func (s *Stack) Items() []ID {
	out := make([]ID, len(s.items))
	copy(out, s.items)
	return out
}
