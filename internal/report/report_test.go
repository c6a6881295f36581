package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/julianstephens/healthlit/internal/filter"
	"github.com/julianstephens/healthlit/internal/models"
)

func sampleResult() filter.Result {
	return filter.Result{
		DailyLogs: []models.DailyLog{
			{ID: 1, Date: "2024-01-01"},
			{ID: 2, Date: "2024-01-03"},
		},
		Measurements: []models.Measurement{
			{ID: 1, DailyLogID: 1, Date: "2024-01-01", Time: "08:00:00", Glucose: 90, UricAcid: 5.0},
			{ID: 2, DailyLogID: 1, Date: "2024-01-01", Time: "20:00:00", Glucose: 140, UricAcid: 6.5},
			{ID: 3, DailyLogID: 2, Date: "2024-01-03", Time: "08:00:00", Glucose: 100, UricAcid: 5.5},
		},
	}
}

func TestRenderLineChart(t *testing.T) {
	points := filter.GlucoseSeries(sampleResult())
	out := RenderLineChart("Glucose", points, 30, 6)

	for _, want := range []string{"Glucose", "140.0", "90.0", "2024-01-01", "2024-01-03"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart missing %q:\n%s", want, out)
		}
	}
	if got := strings.Count(out, string(markPoint)); got != len(points) {
		t.Errorf("expected %d plotted points, got %d:\n%s", len(points), got, out)
	}
}

func TestRenderLineChart_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		points []filter.Point
		want   string
	}{
		{name: "empty", points: nil, want: "no measurements in range"},
		{name: "single point", points: []filter.Point{{Date: "2024-01-01", Value: 7}}, want: "2024-01-01"},
		{name: "flat line", points: []filter.Point{{Date: "2024-01-01", Value: 5}, {Date: "2024-01-02", Value: 5}}, want: "5.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderLineChart("Uric acid", tt.points, 0, 0)
			if !strings.Contains(out, tt.want) {
				t.Errorf("expected %q in:\n%s", tt.want, out)
			}
			if got := strings.Count(out, string(markPoint)); got != len(tt.points) {
				t.Errorf("expected %d plotted points, got %d", len(tt.points), got)
			}
		})
	}
}

func TestRenderCharts(t *testing.T) {
	out := RenderCharts(sampleResult(), 40, 5)
	if !strings.Contains(out, "Glucose over time") || !strings.Contains(out, "Uric acid over time") {
		t.Errorf("expected both chart titles:\n%s", out)
	}
}

func TestWritePDF(t *testing.T) {
	tests := []struct {
		name   string
		result filter.Result
	}{
		{name: "with data", result: sampleResult()},
		{name: "empty", result: filter.Result{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "report.pdf")
			if err := WritePDF(path, tt.result); err != nil {
				t.Fatalf("WritePDF() failed: %v", err)
			}
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read report: %v", err)
			}
			if !bytes.HasPrefix(data, []byte("%PDF-")) {
				t.Errorf("output does not look like a PDF")
			}
		})
	}
}

func TestWritePDF_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "report.pdf")
	if err := WritePDF(path, sampleResult()); err == nil {
		t.Error("expected error writing to a missing directory")
	}
}

func TestDateSpan(t *testing.T) {
	if got := dateSpan(sampleResult()); got != "2024-01-01 to 2024-01-03" {
		t.Errorf("dateSpan() = %q", got)
	}
	if got := dateSpan(filter.Result{}); got != "" {
		t.Errorf("dateSpan() of empty = %q", got)
	}
}
