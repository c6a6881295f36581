package report

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/julianstephens/healthlit/internal/constants"
	"github.com/julianstephens/healthlit/internal/filter"
	"github.com/julianstephens/healthlit/internal/logger"
)

const (
	pdfChartHeight = 60.0
	pdfRowHeight   = 6.0
)

// WritePDF writes a report for result to path: a summary, the measurement
// table and both charts.
func WritePDF(path string, result filter.Result) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Health report", true)
	pdf.SetCreator(constants.AppName+" "+constants.Version, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Health Report")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Daily logs: %d   Meals: %d   Measurements: %d",
		len(result.DailyLogs), len(result.Meals), len(result.Measurements)))
	pdf.Ln(6)
	if span := dateSpan(result); span != "" {
		pdf.Cell(0, 6, "Period: "+span)
		pdf.Ln(6)
	}
	pdf.Ln(4)

	writeMeasurementTable(pdf, result)

	drawChart(pdf, "Glucose over time", filter.GlucoseSeries(result))
	drawChart(pdf, "Uric acid over time", filter.UricAcidSeries(result))

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF report: %w", err)
	}
	logger.Info("Wrote PDF report", "path", path, "measurements", len(result.Measurements))
	return nil
}

func dateSpan(result filter.Result) string {
	if len(result.DailyLogs) == 0 {
		return ""
	}
	first, last := result.DailyLogs[0].Date, result.DailyLogs[0].Date
	for _, l := range result.DailyLogs[1:] {
		first = min(first, l.Date)
		last = max(last, l.Date)
	}
	if first == last {
		return first
	}
	return first + " to " + last
}

func writeMeasurementTable(pdf *fpdf.Fpdf, result filter.Result) {
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Measurements")
	pdf.Ln(8)

	if len(result.Measurements) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(0, pdfRowHeight, "No measurements in range.")
		pdf.Ln(pdfRowHeight + 4)
		return
	}

	widths := []float64{30, 25, 30, 30}
	headers := []string{"Date", "Time", "Glucose", "Uric acid"}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 240)
	for i, h := range headers {
		pdf.CellFormat(widths[i], pdfRowHeight, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, m := range result.Measurements {
		pdf.CellFormat(widths[0], pdfRowHeight, m.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], pdfRowHeight, m.Time, "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], pdfRowHeight, fmt.Sprintf("%.1f", m.Glucose), "1", 0, "R", false, 0, "")
		pdf.CellFormat(widths[3], pdfRowHeight, fmt.Sprintf("%.2f", m.UricAcid), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(6)
}

// drawChart draws points as a polyline inside a framed box, starting a new
// page when the box would not fit.
func drawChart(pdf *fpdf.Fpdf, title string, points []filter.Point) {
	pageW, pageH := pdf.GetPageSize()
	left, _, right, bottom := pdf.GetMargins()
	if pdf.GetY()+pdfChartHeight+20 > pageH-bottom {
		pdf.AddPage()
	}

	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, title)
	pdf.Ln(9)

	x, y := left+15, pdf.GetY()
	w := pageW - right - x
	h := pdfChartHeight

	pdf.SetDrawColor(120, 120, 120)
	pdf.SetLineWidth(0.2)
	pdf.Rect(x, y, w, h, "D")

	if len(points) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.Text(x+4, y+h/2, "No data")
		pdf.SetY(y + h + 8)
		return
	}

	lo, hi := bounds(points)
	span := hi - lo
	if span == 0 {
		span = 1
		lo -= 0.5
		hi += 0.5
	}
	px := func(i int) float64 {
		if len(points) == 1 {
			return x + w/2
		}
		return x + 3 + float64(i)*(w-6)/float64(len(points)-1)
	}
	py := func(v float64) float64 {
		return y + h - 3 - (v-lo)/span*(h-6)
	}

	pdf.SetFont("Arial", "", 8)
	pdf.Text(left, y+4, fmt.Sprintf("%.1f", hi))
	pdf.Text(left, y+h, fmt.Sprintf("%.1f", lo))
	pdf.Text(x, y+h+4, points[0].Date)
	lastLabel := points[len(points)-1].Date
	pdf.Text(x+w-pdf.GetStringWidth(lastLabel), y+h+4, lastLabel)

	pdf.SetDrawColor(4, 181, 117)
	pdf.SetFillColor(4, 181, 117)
	pdf.SetLineWidth(0.5)
	for i := 1; i < len(points); i++ {
		pdf.Line(px(i-1), py(points[i-1].Value), px(i), py(points[i].Value))
	}
	for i, p := range points {
		pdf.Circle(px(i), py(p.Value), 0.8, "F")
	}

	pdf.SetY(y + h + 10)
}
