package model

// Box is an axis-aligned pixel rectangle in image coordinates.
// Y grows downward, so Top <= Bottom for a well-formed box.
type Box struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
}

// NewBox creates a box from its edges, normalizing swapped coordinates.
func NewBox(left, top, right, bottom int) Box {
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	return Box{Left: left, Top: top, Right: right, Bottom: bottom}
}

// Width returns the horizontal extent of the box
func (b Box) Width() int {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box
func (b Box) Height() int {
	return b.Bottom - b.Top
}

// IsEmpty returns true if the box has zero area
func (b Box) IsEmpty() bool {
	return b.Width() <= 0 || b.Height() <= 0
}

// Union returns the smallest box containing both boxes.
// An empty box acts as the identity.
func (b Box) Union(other Box) Box {
	if b.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return b
	}
	return Box{
		Left:   minInt(b.Left, other.Left),
		Top:    minInt(b.Top, other.Top),
		Right:  maxInt(b.Right, other.Right),
		Bottom: maxInt(b.Bottom, other.Bottom),
	}
}

// Intersects checks if two boxes overlap
func (b Box) Intersects(other Box) bool {
	return !(b.Right < other.Left ||
		b.Left > other.Right ||
		b.Bottom < other.Top ||
		b.Top > other.Bottom)
}

// Translate shifts the box by dx, dy
func (b Box) Translate(dx, dy int) Box {
	return Box{Left: b.Left + dx, Top: b.Top + dy, Right: b.Right + dx, Bottom: b.Bottom + dy}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
