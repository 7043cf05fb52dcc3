// Package export renders packing results to PDF, label sheets, DXF drawings
// and Excel workbooks.
package export

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/SquarePack/internal/model"
)

// ErrNoPlacement is returned when a result has no arrangement to render.
var ErrNoPlacement = errors.New("result has no successful placement")

// rectColor represents an RGB color for a placed rectangle.
type rectColor struct {
	R, G, B int
}

var rectColors = []rectColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// checkResult rejects results that carry no arrangement.
func checkResult(result model.Result) error {
	if !result.Success || (len(result.Rectangles) == 0 && result.Area() > 0) {
		return ErrNoPlacement
	}
	return nil
}

// ExportPDF writes the arrangement framed at the best bounding box, followed
// by a summary page.
func ExportPDF(path string, result model.Result, settings model.Settings) error {
	if err := checkResult(result); err != nil {
		return err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)

	pdf.AddPage()
	renderLayoutPage(pdf, result)

	pdf.AddPage()
	renderSummaryPage(pdf, result, settings)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write pdf %s: %w", path, err)
	}
	return nil
}

// renderLayoutPage draws every placed rectangle inside a frame of the
// result's width and height.
func renderLayoutPage(pdf *fpdf.Fpdf, result model.Result) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Minimal area: %dx%d (space %dx%d)", result.Width, result.Height, result.SpaceSize, result.SpaceSize)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Rectangles: %d | Used area: %d | Box area: %d | Efficiency: %.1f%%",
		len(result.Rectangles), result.UsedArea(), result.Area(), result.Efficiency())
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight

	// Frame sides are at least 1 so an empty result still draws.
	frameW := math.Max(float64(result.Width), 1)
	frameH := math.Max(float64(result.Height), 1)
	scale := math.Min(drawWidth/frameW, drawHeight/frameH)

	canvasW := frameW * scale
	canvasH := frameH * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for i, r := range result.Rectangles {
		col := rectColors[i%len(rectColors)]
		rw := float64(r.Width) * scale
		rh := float64(r.Height) * scale
		rx := offsetX + float64(r.X())*scale
		ry := offsetY + float64(r.Y())*scale

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(rx, ry, rw, rh, "FD")

		if rw > 12 && rh > 8 {
			pdf.SetFont("Helvetica", "", labelFontSize(rw, rh))
			pdf.SetTextColor(0, 0, 0)

			dims := fmt.Sprintf("%dx%d", r.Width, r.Height)
			rot := fmt.Sprintf("Rotated: %t", r.Rotated)
			dimsW := pdf.GetStringWidth(dims)
			rotW := pdf.GetStringWidth(rot)

			if dimsW < rw-2 {
				pdf.SetXY(rx+(rw-dimsW)/2, ry+rh/2-4)
				pdf.CellFormat(dimsW, 4, dims, "", 0, "C", false, 0, "")
			}
			if rh > 14 && rotW < rw-2 {
				pdf.SetXY(rx+(rw-rotW)/2, ry+rh/2)
				pdf.CellFormat(rotW, 4, rot, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, result.Width, result.Height, offsetX, offsetY, canvasW, canvasH)
	drawLegend(pdf, result.Rectangles, offsetY+canvasH+5)
}

// drawDimensionAnnotations adds width and height labels outside the frame.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, w, h int, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%d", w)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%d", h)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawLegend renders a compact legend of placed rectangles below the frame.
func drawLegend(pdf *fpdf.Fpdf, rects []model.Rectangle, startY float64) {
	if len(rects) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Placed:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 32
	maxX := pageWidth - marginRight

	for i, r := range rects {
		col := rectColors[i%len(rectColors)]
		label := fmt.Sprintf("%s (%dx%d) @ %s", r.Label, r.Width, r.Height, r.Placement)
		if r.Rotated {
			label += " R"
		}
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}
		// Stop before running off the page.
		if startY > pageHeight-marginBottom-4 {
			break
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")
		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// renderSummaryPage draws run statistics and the settings used.
func renderSummaryPage(pdf *fpdf.Fpdf, result model.Result, settings model.Settings) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetXY(marginLeft, marginTop)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, "Packing Summary", "", 0, "L", false, 0, "")

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Line(marginLeft, marginTop+12, pageWidth-marginRight, marginTop+12)

	y := marginTop + 18
	bound := model.CalculateLowerBound(result.Rectangles, settings.Margin)

	y = drawSection(pdf, y, "Result", []summaryItem{
		{"Minimal Area", fmt.Sprintf("%dx%d", result.Width, result.Height)},
		{"Box Area", fmt.Sprintf("%d", result.Area())},
		{"Used Area", fmt.Sprintf("%d", result.UsedArea())},
		{"Efficiency", fmt.Sprintf("%.1f%%", result.Efficiency())},
		{"Lower Bound Side", fmt.Sprintf("%d", bound.MinSide)},
		{"Successful Trials", fmt.Sprintf("%d / %d", result.SuccessfulTrials, result.Trials)},
		{"Best Trial", fmt.Sprintf("%d", result.BestTrial)},
	})

	y += 5
	drawSection(pdf, y, "Settings", []summaryItem{
		{"Space Size", fmt.Sprintf("%d", settings.SpaceSize)},
		{"Margin", fmt.Sprintf("%d", settings.Margin)},
		{"Algorithm", string(result.Algorithm)},
		{"Policy", string(result.Policy)},
		{"Seed", fmt.Sprintf("%d", settings.Seed)},
	})

	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(120, 120, 120)
	pdf.SetXY(marginLeft, pageHeight-marginBottom)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 4, "Generated by SquarePack", "", 0, "C", false, 0, "")
}

type summaryItem struct {
	label string
	value string
}

// drawSection writes a heading and label/value rows, returning the next y.
func drawSection(pdf *fpdf.Fpdf, y float64, heading string, items []summaryItem) float64 {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, y)
	pdf.CellFormat(100, 7, heading, "", 0, "L", false, 0, "")
	y += 9

	pdf.SetFont("Helvetica", "", 10)
	for _, item := range items {
		pdf.SetXY(marginLeft+5, y)
		pdf.CellFormat(60, 6, item.label+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(40, 6, item.value, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		y += 7
	}
	return y
}

// labelFontSize returns a font size that suits the rectangle dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
