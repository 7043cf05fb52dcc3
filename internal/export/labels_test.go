package export

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/piwi3910/SquarePack/internal/model"
)

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	if err := ExportLabels(path, buildTestResult()); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 500)
}

func TestExportLabels_MultiplePages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")

	result := buildTestResult()
	for i := 0; i < 40; i++ {
		result.Rectangles = append(result.Rectangles, model.Rectangle{
			ID: "x", Label: "A very long rectangle label that must be truncated", Width: 1, Height: 1,
			Placement: model.PlacedAt(i, 30),
		})
	}

	if err := ExportLabels(path, result); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	assertNonEmptyFile(t, path, 500)
}

func TestExportLabels_FailedResult(t *testing.T) {
	err := ExportLabels(filepath.Join(t.TempDir(), "x.pdf"), model.Result{})
	if !errors.Is(err, ErrNoPlacement) {
		t.Fatalf("expected ErrNoPlacement, got %v", err)
	}
}

func TestExportLabels_NothingPlaced(t *testing.T) {
	result := model.Result{Success: true}
	err := ExportLabels(filepath.Join(t.TempDir(), "x.pdf"), result)
	if !errors.Is(err, ErrNoPlacement) {
		t.Fatalf("expected ErrNoPlacement, got %v", err)
	}
}

func TestCollectLabelInfos(t *testing.T) {
	result := buildTestResult()
	result.Rectangles = append(result.Rectangles, model.Rectangle{ID: "u", Label: "Loose", Width: 2, Height: 2})

	labels := CollectLabelInfos(result)

	if len(labels) != 3 {
		t.Fatalf("expected 3 labels for placed rectangles, got %d", len(labels))
	}
	if labels[1].Label != "R2" || !labels[1].Rotated || labels[1].X != 1 || labels[1].Y != 7 {
		t.Errorf("unexpected label %+v", labels[1])
	}

	data, err := json.Marshal(labels[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"id", "label", "width", "height", "rotated", "x", "y"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("QR payload is missing %q", key)
		}
	}
}
