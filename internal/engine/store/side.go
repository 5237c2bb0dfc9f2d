package store

// Side selects one of the two stacks of a Store.
type Side uint8

const (
	Left  Side = iota // Text before the cursor
	Right             // Text after the cursor
)

// String returns the name of the side.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}

// valid reports whether s names a real side.
func (s Side) valid() bool {
	return s == Left || s == Right
}
