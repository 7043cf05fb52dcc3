package export

import (
	"fmt"

	"github.com/piwi3910/SquarePack/internal/model"
	"github.com/yofu/dxf"
)

// DXF layer names.
const (
	LayerFrame      = "FRAME"
	LayerRectangles = "RECTANGLES"
	LayerLabels     = "LABELS"
)

// ExportDXF writes the arrangement as a DXF drawing: the bounding box on
// the frame layer, one closed polyline per rectangle, and a size label at
// each rectangle's centre. Drawing Y grows upward, so the layout is flipped
// to keep the top-left origin of the arrangement at the top of the drawing.
func ExportDXF(path string, result model.Result) error {
	if err := checkResult(result); err != nil {
		return err
	}

	d := dxf.NewDrawing()
	for _, name := range []string{LayerFrame, LayerRectangles, LayerLabels} {
		if _, err := d.AddLayer(name, dxf.DefaultColor, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("add layer %s: %w", name, err)
		}
	}

	h := float64(result.Height)
	flip := func(y int) float64 { return h - float64(y) }

	if err := d.ChangeLayer(LayerFrame); err != nil {
		return fmt.Errorf("select layer %s: %w", LayerFrame, err)
	}
	if _, err := d.LwPolyline(true, boxVertices(0, 0, float64(result.Width), h)...); err != nil {
		return fmt.Errorf("draw frame: %w", err)
	}

	for _, r := range result.Rectangles {
		x0 := float64(r.X())
		y1 := flip(r.Y())
		y0 := flip(r.Bottom())

		if err := d.ChangeLayer(LayerRectangles); err != nil {
			return fmt.Errorf("select layer %s: %w", LayerRectangles, err)
		}
		if _, err := d.LwPolyline(true, boxVertices(x0, y0, float64(r.Right()), y1)...); err != nil {
			return fmt.Errorf("draw %s: %w", r.Label, err)
		}

		if err := d.ChangeLayer(LayerLabels); err != nil {
			return fmt.Errorf("select layer %s: %w", LayerLabels, err)
		}
		textHeight := max(float64(min(r.Width, r.Height))/5, 0.2)
		cx := x0 + float64(r.Width)/2
		cy := y0 + float64(r.Height)/2
		if _, err := d.Text(fmt.Sprintf("%dx%d", r.Width, r.Height), cx, cy, 0, textHeight); err != nil {
			return fmt.Errorf("label %s: %w", r.Label, err)
		}
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("write dxf %s: %w", path, err)
	}
	return nil
}

// boxVertices lists the corners of an axis-aligned box counter-clockwise.
func boxVertices(x0, y0, x1, y1 float64) [][]float64 {
	return [][]float64{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}
