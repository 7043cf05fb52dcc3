package model

import "math"

// LowerBound holds the area-based minimum for packing a rectangle set.
type LowerBound struct {
	TotalArea   int `json:"total_area"`   // Sum of rectangle areas
	PaddedArea  int `json:"padded_area"`  // Sum of areas including the margin band
	LargestSide int `json:"largest_side"` // Longest padded side of any rectangle
	MinSide     int `json:"min_side"`     // Smallest square side that could hold the padded set
}

// CalculateLowerBound computes the smallest square side that could possibly
// hold rects with the given margin. No packing can beat it, so it is a
// useful reference for the optimizer's result and a starting space size.
func CalculateLowerBound(rects []Rectangle, margin int) LowerBound {
	var lb LowerBound
	for _, r := range rects {
		pw := r.Width + 2*margin
		ph := r.Height + 2*margin
		lb.TotalArea += r.Area()
		lb.PaddedArea += pw * ph
		// In a square region both orientations need the long side to fit
		lb.LargestSide = max(lb.LargestSide, pw, ph)
	}

	side := int(math.Ceil(math.Sqrt(float64(lb.PaddedArea))))
	lb.MinSide = max(side, lb.LargestSide)
	return lb
}
