package forecast

import (
	"errors"
	"math"
	"strconv"
	"time"

	"github.com/lox/dashingweather/internal/models"
	"github.com/lox/dashingweather/internal/units"
)

// ErrEmptyAggregation is returned when no forecast point falls on tomorrow.
var ErrEmptyAggregation = errors.New("forecast: no points for tomorrow")

// SummaryRows is the number of rows in every Summary.
const SummaryRows = 5

// SummaryLabels are the row labels of a Summary in display order.
var SummaryLabels = [SummaryRows]string{
	"Average Temperature",
	"Average Feels Like",
	"Max Temp",
	"Min Temp",
	"Humidity",
}

// Summary aggregates tomorrow's forecast points.
type Summary struct {
	Date   time.Time               `json:"date"`
	Points int                     `json:"points"`
	Rows   [SummaryRows]models.Row `json:"rows"`
}

// SummarizeTomorrow aggregates the points dated the calendar day after
// today. The date of today is taken in today's location; point dates are
// compared as given (dt_txt, UTC). A full day is normally 8 points but any
// count is aggregated.
func SummarizeTomorrow(points []models.ForecastPoint, today time.Time, labels units.Labels) (Summary, error) {
	ty, tm, td := today.AddDate(0, 0, 1).Date()

	var n int
	var sumTemp, sumFeels, sumHumidity float64
	maxTemp, minTemp := math.Inf(-1), math.Inf(1)
	for _, p := range points {
		if y, m, d := p.Time.Date(); y != ty || m != tm || d != td {
			continue
		}
		n++
		sumTemp += p.Temperature
		sumFeels += p.FeelsLike
		sumHumidity += p.Humidity
		maxTemp = math.Max(maxTemp, p.TempMax)
		minTemp = math.Min(minTemp, p.TempMin)
	}
	if n == 0 {
		return Summary{}, ErrEmptyAggregation
	}

	count := float64(n)
	values := [SummaryRows]string{
		round(sumTemp/count) + " " + labels.Temperature,
		round(sumFeels/count) + " " + labels.Temperature,
		round(maxTemp) + " " + labels.Temperature,
		round(minTemp) + " " + labels.Temperature,
		round(sumHumidity/count) + "%",
	}

	s := Summary{
		Date:   time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC),
		Points: n,
	}
	for i := range s.Rows {
		s.Rows[i] = models.Row{Label: SummaryLabels[i], Value: values[i]}
	}
	return s, nil
}

func round(v float64) string {
	return strconv.Itoa(int(math.RoundToEven(v)))
}
