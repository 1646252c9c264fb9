package model

// Rect is an axis-aligned rectangle in canvas pixel coordinates.
type Rect struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	W float32 `json:"w"`
	H float32 `json:"h"`
}

// NewRect creates a rectangle from origin and size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float32 {
	return r.X + r.W
}

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float32 {
	return r.Y + r.H
}

// CenterX returns the x coordinate of the rectangle center.
func (r Rect) CenterX() float32 {
	return r.X + r.W/2
}

// CenterY returns the y coordinate of the rectangle center.
func (r Rect) CenterY() float32 {
	return r.Y + r.H/2
}

// Contains reports whether the point (px, py) lies inside the rectangle.
// Edges count as inside.
func (r Rect) Contains(px, py float32) bool {
	return px >= r.X && px <= r.Right() && py >= r.Y && py <= r.Bottom()
}

// ContainsRect reports whether other lies fully inside the rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// IsDegenerate reports whether the rectangle has no usable area.
func (r Rect) IsDegenerate() bool {
	return r.W <= 0 || r.H <= 0
}

// Aspect returns width/height, or 0 for a degenerate rectangle.
func (r Rect) Aspect() float32 {
	if r.H == 0 {
		return 0
	}
	return r.W / r.H
}

// Array returns the rectangle as [x, y, w, h] for serialization.
func (r Rect) Array() [4]float32 {
	return [4]float32{r.X, r.Y, r.W, r.H}
}

// RectFromArray builds a rectangle from a serialized [x, y, w, h] array.
func RectFromArray(a [4]float32) Rect {
	return Rect{X: a[0], Y: a[1], W: a[2], H: a[3]}
}
