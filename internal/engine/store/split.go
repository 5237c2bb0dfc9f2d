package store

// Split keeps each stack in its own slice. The head of each stack is the
// last element of its slice.
type Split struct {
	left  []byte
	right []byte
}

// NewSplit creates an empty Split with capacity divided between the sides.
func NewSplit(capacity int) *Split {
	if capacity < 0 {
		capacity = 0
	}
	half := capacity / 2
	return &Split{
		left:  make([]byte, 0, capacity-half),
		right: make([]byte, 0, half),
	}
}

func (s *Split) stack(op string, side Side) *[]byte {
	switch side {
	case Left:
		return &s.left
	case Right:
		return &s.right
	}
	Violate(op, nil, "unknown side %d", side)
	return nil
}

// Push adds ch at the head of side.
func (s *Split) Push(side Side, ch byte) {
	st := s.stack("push", side)
	*st = append(*st, ch)
}

// Pop removes and returns the head of side.
func (s *Split) Pop(side Side) (byte, error) {
	st := s.stack("pop", side)
	n := len(*st)
	if n == 0 {
		return 0, ErrEmptyStore
	}
	ch := (*st)[n-1]
	*st = (*st)[:n-1]
	return ch, nil
}

// Peek returns the head of side.
func (s *Split) Peek(side Side) (byte, error) {
	return s.PeekAt(side, 0)
}

// PeekAt returns the character at depth on side.
func (s *Split) PeekAt(side Side, depth int) (byte, error) {
	st := *s.stack("peek", side)
	if depth < 0 || depth >= len(st) {
		return 0, ErrEmptyStore
	}
	return st[len(st)-1-depth], nil
}

// Size returns the number of characters on side.
func (s *Split) Size(side Side) int {
	switch side {
	case Left:
		return len(s.left)
	case Right:
		return len(s.right)
	default:
		return 0
	}
}

// IsEmpty reports whether side holds no characters.
func (s *Split) IsEmpty(side Side) bool {
	return s.Size(side) == 0
}

// Clear drops every character on side.
func (s *Split) Clear(side Side) {
	st := s.stack("clear", side)
	*st = (*st)[:0]
}

// Run returns up to n characters from the head of side.
func (s *Split) Run(side Side, n int, reversed, destructive bool) string {
	st := s.stack("run", side)
	k := clampRun(n, len(*st))
	if k == 0 {
		return ""
	}

	lo := len(*st) - k
	out := make([]byte, k)
	copy(out, (*st)[lo:])

	// Left slices are in text order, Right slices in reverse text order.
	// Either way the slice end is the head.
	if !reversed {
		reverseBytes(out)
	}

	if destructive {
		*st = (*st)[:lo]
	}
	return string(out)
}

// Cap returns the combined capacity of both slices.
func (s *Split) Cap() int {
	return cap(s.left) + cap(s.right)
}

// Clone returns a deep copy.
func (s *Split) Clone() Store {
	left := make([]byte, len(s.left), cap(s.left))
	copy(left, s.left)
	right := make([]byte, len(s.right), cap(s.right))
	copy(right, s.right)
	return &Split{left: left, right: right}
}
