package filter

import "github.com/julianstephens/healthlit/internal/models"

// Point is one chart sample.
type Point struct {
	Date  string
	Time  string
	Value float64
}

// Label returns "date time" for display, or just the date when no time is set.
func (p Point) Label() string {
	if p.Time == "" {
		return p.Date
	}
	return p.Date + " " + p.Time
}

// GlucoseSeries returns glucose vs. date from the filtered measurements in record order.
func GlucoseSeries(r Result) []Point {
	return series(r.Measurements, func(m models.Measurement) float64 { return m.Glucose })
}

// UricAcidSeries returns uric acid vs. date from the filtered measurements in record order.
func UricAcidSeries(r Result) []Point {
	return series(r.Measurements, func(m models.Measurement) float64 { return m.UricAcid })
}

func series(measurements []models.Measurement, value func(models.Measurement) float64) []Point {
	points := make([]Point, 0, len(measurements))
	for _, m := range measurements {
		points = append(points, Point{Date: m.Date, Time: m.Time, Value: value(m)})
	}
	return points
}
