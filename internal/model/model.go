package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrInvalidSize is returned when a rectangle has a non-positive dimension.
var ErrInvalidSize = errors.New("rectangle width and height must be positive")

// Placement records where a rectangle sits in the packing region.
// The zero value is Unplaced, so (0, 0) is a legitimate placed coordinate.
type Placement struct {
	Placed bool `json:"placed"`
	X      int  `json:"x"`
	Y      int  `json:"y"`
}

// Unplaced returns the placement of a rectangle that has no position yet.
func Unplaced() Placement {
	return Placement{}
}

// PlacedAt returns a placement at the given top-left corner.
func PlacedAt(x, y int) Placement {
	return Placement{Placed: true, X: x, Y: y}
}

func (p Placement) String() string {
	if !p.Placed {
		return "unplaced"
	}
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Rectangle is an item to pack. Width and Height are the dimensions at the
// current orientation; Rotated flips every time the two are swapped.
type Rectangle struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Rotated   bool      `json:"rotated"`
	Placement Placement `json:"placement"`
}

func NewRectangle(label string, w, h int) Rectangle {
	return Rectangle{
		ID:     uuid.New().String()[:8],
		Label:  label,
		Width:  w,
		Height: h,
	}
}

// Validate reports ErrInvalidSize for non-positive dimensions.
func (r Rectangle) Validate() error {
	if r.Width <= 0 || r.Height <= 0 {
		return fmt.Errorf("%s (%dx%d): %w", r.Label, r.Width, r.Height, ErrInvalidSize)
	}
	return nil
}

// Rotate swaps width and height in place.
func (r *Rectangle) Rotate() {
	r.Width, r.Height = r.Height, r.Width
	r.Rotated = !r.Rotated
}

// Turned returns a copy of r rotated by 90 degrees.
func (r Rectangle) Turned() Rectangle {
	r.Rotate()
	return r
}

func (r Rectangle) Area() int {
	return r.Width * r.Height
}

// X returns the placed left edge, or 0 for an unplaced rectangle.
func (r Rectangle) X() int { return r.Placement.X }

// Y returns the placed top edge, or 0 for an unplaced rectangle.
func (r Rectangle) Y() int { return r.Placement.Y }

// Right returns the exclusive right edge of a placed rectangle.
func (r Rectangle) Right() int { return r.Placement.X + r.Width }

// Bottom returns the exclusive bottom edge of a placed rectangle.
func (r Rectangle) Bottom() int { return r.Placement.Y + r.Height }

// Overlaps reports whether two placed rectangles share any interior area.
func (r Rectangle) Overlaps(o Rectangle) bool {
	return r.X() < o.Right() && o.X() < r.Right() &&
		r.Y() < o.Bottom() && o.Y() < r.Bottom()
}

// Region is a free axis-aligned area with inclusive-exclusive corners.
type Region struct {
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
}

// Square returns the region (0, 0, size, size).
func Square(size int) Region {
	return Region{X1: size, Y1: size}
}

func (rg Region) Width() int  { return rg.X1 - rg.X0 }
func (rg Region) Height() int { return rg.Y1 - rg.Y0 }

// Contains reports whether a placed rectangle lies entirely inside the region.
func (rg Region) Contains(r Rectangle) bool {
	return r.Placement.Placed &&
		r.X() >= rg.X0 && r.Y() >= rg.Y0 &&
		r.Right() <= rg.X1 && r.Bottom() <= rg.Y1
}

// BoundingBox returns the tight box enclosing the placed extents, measured
// from the origin.
func BoundingBox(rects []Rectangle) (maxX, maxY int) {
	for _, r := range rects {
		maxX = max(maxX, r.Right())
		maxY = max(maxY, r.Bottom())
	}
	return maxX, maxY
}

// CloneRectangles returns an independent copy of rects.
func CloneRectangles(rects []Rectangle) []Rectangle {
	if rects == nil {
		return nil
	}
	out := make([]Rectangle, len(rects))
	copy(out, rects)
	return out
}

// TotalArea sums the areas of rects.
func TotalArea(rects []Rectangle) int {
	total := 0
	for _, r := range rects {
		total += r.Area()
	}
	return total
}
