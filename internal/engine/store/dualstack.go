package store

// DualStack stores both stacks in one array. Left occupies [0, left) in text
// order; Right occupies [cap-right, cap) with its head at cap-right.
type DualStack struct {
	buf   []byte
	left  int
	right int
}

// NewDualStack creates an empty DualStack. A capacity of zero defers
// allocation to the first push.
func NewDualStack(capacity int) *DualStack {
	if capacity < 0 {
		capacity = 0
	}
	return &DualStack{buf: make([]byte, capacity)}
}

// Push adds ch at the head of side, growing the array when both stacks
// have met.
func (d *DualStack) Push(side Side, ch byte) {
	if d.left+d.right == len(d.buf) {
		d.grow()
	}
	switch side {
	case Left:
		d.left++
	case Right:
		d.right++
	default:
		Violate("push", nil, "unknown side %d", side)
	}
	d.buf[d.index("push", side, 0)] = ch
}

// Pop removes and returns the head of side.
func (d *DualStack) Pop(side Side) (byte, error) {
	if d.Size(side) == 0 {
		return 0, ErrEmptyStore
	}
	ch := d.buf[d.index("pop", side, 0)]
	if side == Left {
		d.left--
	} else {
		d.right--
	}
	return ch, nil
}

// Peek returns the head of side.
func (d *DualStack) Peek(side Side) (byte, error) {
	return d.PeekAt(side, 0)
}

// PeekAt returns the character at depth on side.
func (d *DualStack) PeekAt(side Side, depth int) (byte, error) {
	if depth < 0 || depth >= d.Size(side) {
		return 0, ErrEmptyStore
	}
	return d.buf[d.index("peek", side, depth)], nil
}

// Size returns the number of characters on side.
func (d *DualStack) Size(side Side) int {
	switch side {
	case Left:
		return d.left
	case Right:
		return d.right
	default:
		return 0
	}
}

// IsEmpty reports whether side holds no characters.
func (d *DualStack) IsEmpty(side Side) bool {
	return d.Size(side) == 0
}

// Clear drops every character on side. Capacity is kept.
func (d *DualStack) Clear(side Side) {
	switch side {
	case Left:
		d.left = 0
	case Right:
		d.right = 0
	}
}

// Run returns up to n characters from the head of side.
func (d *DualStack) Run(side Side, n int, reversed, destructive bool) string {
	if !side.valid() {
		Violate("run", nil, "unknown side %d", side)
	}
	k := clampRun(n, d.Size(side))
	if k == 0 {
		return ""
	}

	// The run occupies one contiguous stretch of the array.
	var lo int
	if side == Left {
		lo = d.index("run", side, k-1)
	} else {
		lo = d.index("run", side, 0)
	}
	out := make([]byte, k)
	copy(out, d.buf[lo:lo+k])

	// Left is stored tail-to-head, Right head-to-tail.
	if (side == Left) != reversed {
		reverseBytes(out)
	}

	if destructive {
		if side == Left {
			d.left -= k
		} else {
			d.right -= k
		}
	}
	return string(out)
}

// Cap returns the length of the backing array.
func (d *DualStack) Cap() int {
	return len(d.buf)
}

// Clone returns a deep copy.
func (d *DualStack) Clone() Store {
	buf := make([]byte, len(d.buf))
	copy(buf, d.buf)
	return &DualStack{buf: buf, left: d.left, right: d.right}
}

// index maps a depth on side to a physical array index.
func (d *DualStack) index(op string, side Side, depth int) int {
	var i int
	switch side {
	case Left:
		i = d.left - 1 - depth
	case Right:
		i = len(d.buf) - d.right + depth
	default:
		Violate(op, nil, "unknown side %d", side)
	}
	if i < 0 || i >= len(d.buf) {
		Violate(op, nil, "index %d outside [0, %d) at %s depth %d", i, len(d.buf), side, depth)
	}
	return i
}

// grow doubles the array, keeping Left at the low end and Right at the
// high end.
func (d *DualStack) grow() {
	oldCap := len(d.buf)
	newCap := oldCap * 2
	if newCap < MinCapacity {
		newCap = MinCapacity
	}
	if newCap <= d.left+d.right {
		Violate("grow", nil, "capacity %d cannot hold %d characters", newCap, d.left+d.right+1)
	}

	buf := make([]byte, newCap)
	copy(buf, d.buf[:d.left])
	copy(buf[newCap-d.right:], d.buf[oldCap-d.right:])
	d.buf = buf
}
