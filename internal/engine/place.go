package engine

import "github.com/piwi3910/SquarePack/internal/model"

// Fits reports whether rect fits inside region with margin reserved on
// every side of it.
func Fits(region model.Region, rect model.Rectangle, margin int) bool {
	return region.Width() >= rect.Width+2*margin &&
		region.Height() >= rect.Height+2*margin
}

// Place tries to put every rectangle of rects, in order, into region using
// recursive guillotine splitting. Each rectangle is tried unrotated first,
// then rotated. On success it returns the placed arrangement in the same
// order as rects; on failure it returns nil, false. rects is never modified.
func Place(region model.Region, rects []model.Rectangle, margin int) ([]model.Rectangle, bool) {
	placed := make([]model.Rectangle, len(rects))
	if !placeInto(region, rects, placed, margin) {
		return nil, false
	}
	return placed, true
}

// placeInto fills out[i] for rects[i]. A slot is only meaningful once the
// whole call returns true; failed branches leave stale slots that a later
// successful branch overwrites.
func placeInto(region model.Region, rects, out []model.Rectangle, margin int) bool {
	if len(rects) == 0 {
		return true
	}

	for _, cand := range orientations(rects[0]) {
		if !Fits(region, cand, margin) {
			continue
		}
		cand.Placement = model.PlacedAt(region.X0+margin, region.Y0+margin)
		out[0] = cand

		for _, sub := range splitRegion(region, cand, margin) {
			if placeInto(sub, rects[1:], out[1:], margin) {
				return true
			}
		}
	}
	return false
}

// orientations returns the unrotated and rotated candidates for r.
func orientations(r model.Rectangle) [2]model.Rectangle {
	return [2]model.Rectangle{r, r.Turned()}
}

// splitRegion cuts the free space left after placing p at the region's
// corner. The first region keeps the full width and starts past p's height
// plus margin (the "top" split); the second keeps the full height and starts
// past p's width plus margin (the "right" split).
func splitRegion(region model.Region, p model.Rectangle, margin int) [2]model.Region {
	return [2]model.Region{
		{X0: region.X0, Y0: region.Y0 + p.Height + 2*margin, X1: region.X1, Y1: region.Y1},
		{X0: region.X0 + p.Width + 2*margin, Y0: region.Y0, X1: region.X1, Y1: region.Y1},
	}
}
