package importer

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yofu/dxf"
)

func TestImportDXF_ShapesBecomeBoundingBoxes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.dxf")

	d := dxf.NewDrawing()
	if _, err := d.LwPolyline(true, []float64{0, 0}, []float64{6, 0}, []float64{6, 3}, []float64{0, 3}); err != nil {
		t.Fatalf("polyline: %v", err)
	}
	if _, err := d.Circle(50, 50, 0, 2.5); err != nil {
		t.Fatalf("circle: %v", err)
	}
	// A 4x7 rectangle drawn as loose lines.
	corners := [][2]float64{{20, 0}, {24, 0}, {24, 7}, {20, 7}}
	for i, c := range corners {
		n := corners[(i+1)%len(corners)]
		if _, err := d.Line(c[0], c[1], 0, n[0], n[1], 0); err != nil {
			t.Fatalf("line: %v", err)
		}
	}
	if err := d.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	result := ImportDXF(path)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Rectangles) != 3 {
		t.Fatalf("expected 3 rectangles, got %d", len(result.Rectangles))
	}

	sizes := map[[2]int]bool{}
	for _, r := range result.Rectangles {
		sizes[[2]int{r.Width, r.Height}] = true
	}
	for _, want := range [][2]int{{6, 3}, {5, 5}, {4, 7}} {
		if !sizes[want] {
			t.Errorf("missing %dx%d rectangle in %v", want[0], want[1], sizes)
		}
	}
}

func TestImportDXF_HugeShapeSkipped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huge.dxf")

	d := dxf.NewDrawing()
	if _, err := d.Circle(0, 0, 0, 3e9); err != nil {
		t.Fatalf("circle: %v", err)
	}
	if _, err := d.Circle(10, 10, 0, 1); err != nil {
		t.Fatalf("circle: %v", err)
	}
	if err := d.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}

	result := ImportDXF(path)

	if len(result.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "too large") {
		t.Errorf("expected one size warning, got %v", result.Warnings)
	}
	if len(result.Rectangles) != 1 {
		t.Fatalf("expected 1 rectangle, got %d", len(result.Rectangles))
	}
	if r := result.Rectangles[0]; r.Width != 2 || r.Height != 2 {
		t.Errorf("expected 2x2, got %dx%d", r.Width, r.Height)
	}
}

func TestImportDXF_FileNotFound(t *testing.T) {
	result := ImportDXF("/nonexistent/file.dxf")
	if len(result.Errors) == 0 {
		t.Error("expected error for nonexistent file")
	}
}

func TestChainSegments_OpenChainIgnored(t *testing.T) {
	segs := []segment{
		{point{0, 0}, point{1, 0}},
		{point{1, 0}, point{1, 1}},
	}
	if got := chainSegments(segs, 0.01); len(got) != 0 {
		t.Errorf("expected no outlines, got %v", got)
	}
}

func TestBulgeApex_Semicircle(t *testing.T) {
	apex := bulgeApex(point{0, 0}, point{2, 0}, 1)
	if math.Abs(apex.x-1) > 1e-9 || math.Abs(apex.y+1) > 1e-9 {
		t.Errorf("expected apex (1, -1), got %+v", apex)
	}
}

func TestOutlineBounds(t *testing.T) {
	w, h := outline{{1, 2}, {4, 2}, {4, 9}, {1, 9}}.bounds()
	if w != 3 || h != 7 {
		t.Errorf("expected 3x7, got %vx%v", w, h)
	}
}
