package importer

import (
	"fmt"
	"math"
	"sort"

	"github.com/piwi3910/SquarePack/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"
)

// point is a drawing coordinate.
type point struct {
	x, y float64
}

// outline is a closed polygon in drawing coordinates.
type outline []point

// bounds returns the outline's axis-aligned extent.
func (o outline) bounds() (w, h float64) {
	if len(o) == 0 {
		return 0, 0
	}
	minX, minY := o[0].x, o[0].y
	maxX, maxY := minX, minY
	for _, p := range o[1:] {
		minX = math.Min(minX, p.x)
		minY = math.Min(minY, p.y)
		maxX = math.Max(maxX, p.x)
		maxY = math.Max(maxY, p.y)
	}
	return maxX - minX, maxY - minY
}

// segment is a line between two points, used for chaining disconnected
// LINE entities into closed outlines.
type segment struct {
	start point
	end   point
}

// ImportDXF imports rectangles from a DXF file. Each closed shape
// (LWPOLYLINE, CIRCLE, or chain of connected LINEs) becomes one rectangle
// sized to its bounding box, rounded up to whole units.
func ImportDXF(path string) ImportResult {
	result := ImportResult{}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	var outlines []outline
	var segments []segment

	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.LwPolyline:
			if len(e.Vertices) < 3 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 3 vertices")
				continue
			}
			outlines = append(outlines, lwPolylineToOutline(e))

		case *entity.Circle:
			r := e.Radius
			cx, cy := e.Center[0], e.Center[1]
			outlines = append(outlines, outline{{cx - r, cy - r}, {cx + r, cy + r}})

		case *entity.Line:
			segments = append(segments, segment{
				start: point{e.Start[0], e.Start[1]},
				end:   point{e.End[0], e.End[1]},
			})
		}
	}

	outlines = append(outlines, chainSegments(segments, 0.01)...)

	if len(outlines) == 0 {
		result.Errors = append(result.Errors, "No closed shapes found in DXF file")
		return result
	}

	for i, o := range outlines {
		w, h := o.bounds()
		if w < 0.01 || h < 0.01 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate shape (%.2f x %.2f)", w, h))
			continue
		}
		label := fmt.Sprintf("DXF %d", i+1)
		if w > math.MaxInt32 || h > math.MaxInt32 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped %s: size %.0f x %.0f is too large", label, w, h))
			continue
		}
		result.Rectangles = append(result.Rectangles,
			model.NewRectangle(label, int(math.Ceil(w-1e-9)), int(math.Ceil(h-1e-9))))
	}

	return result
}

// lwPolylineToOutline converts an LWPOLYLINE to its vertex outline. Bulged
// edges are widened by their sagitta so the bounding box still covers the arc.
func lwPolylineToOutline(lw *entity.LwPolyline) outline {
	o := make(outline, 0, len(lw.Vertices))
	for i, v := range lw.Vertices {
		cur := point{v[0], v[1]}
		o = append(o, cur)

		if i >= len(lw.Bulges) || math.Abs(lw.Bulges[i]) < 1e-9 {
			continue
		}
		next := lw.Vertices[(i+1)%len(lw.Vertices)]
		o = append(o, bulgeApex(cur, point{next[0], next[1]}, lw.Bulges[i]))
	}
	return o
}

// bulgeApex returns the arc midpoint for a bulged edge. The bulge is the
// tangent of a quarter of the included angle; positive bulges turn
// counter-clockwise.
func bulgeApex(p1, p2 point, bulge float64) point {
	dx, dy := p2.x-p1.x, p2.y-p1.y
	chord := math.Hypot(dx, dy)
	if chord < 1e-9 {
		return p1
	}
	sagitta := bulge * chord / 2
	// Right-hand normal of the chord.
	nx, ny := dy/chord, -dx/chord
	return point{(p1.x+p2.x)/2 + nx*sagitta, (p1.y+p2.y)/2 + ny*sagitta}
}

// chainSegments connects individual segments into closed outlines.
// tolerance is the maximum distance between endpoints to consider them connected.
func chainSegments(segs []segment, tolerance float64) []outline {
	if len(segs) == 0 {
		return nil
	}

	used := make([]bool, len(segs))
	var outlines []outline

	for {
		startIdx := -1
		for i, u := range used {
			if !u {
				startIdx = i
				break
			}
		}
		if startIdx == -1 {
			break
		}

		chain := outline{segs[startIdx].start, segs[startIdx].end}
		used[startIdx] = true

		changed := true
		for changed {
			changed = false
			tail := chain[len(chain)-1]

			for i, seg := range segs {
				if used[i] {
					continue
				}
				if pointsClose(tail, seg.start, tolerance) {
					chain = append(chain, seg.end)
					used[i] = true
					changed = true
					break
				}
				if pointsClose(tail, seg.end, tolerance) {
					chain = append(chain, seg.start)
					used[i] = true
					changed = true
					break
				}
			}
		}

		// Open chains are not shapes.
		if len(chain) < 4 || !pointsClose(chain[0], chain[len(chain)-1], tolerance) {
			continue
		}
		outlines = append(outlines, chain[:len(chain)-1])
	}

	// Largest first for a stable order.
	sort.SliceStable(outlines, func(i, j int) bool {
		return outlineArea(outlines[i]) > outlineArea(outlines[j])
	})

	return outlines
}

// pointsClose checks whether two points are within the given tolerance.
func pointsClose(a, b point, tolerance float64) bool {
	return math.Hypot(a.x-b.x, a.y-b.y) <= tolerance
}

// outlineArea computes the absolute area of a polygon using the shoelace formula.
func outlineArea(o outline) float64 {
	n := len(o)
	if n < 3 {
		return 0
	}
	var area float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += o[i].x*o[j].y - o[j].x*o[i].y
	}
	return math.Abs(area) / 2
}
