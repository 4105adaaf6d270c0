// Package current formats the current-conditions payload into the fixed
// table shown on the dashboard.
package current

import (
	"math"
	"strconv"
	"time"

	"github.com/lox/dashingweather/internal/models"
	"github.com/lox/dashingweather/internal/owm"
	"github.com/lox/dashingweather/internal/units"
)

// RowCount is the number of rows in every Report.
const RowCount = 11

// Labels are the row labels in display order.
var Labels = [RowCount]string{
	"Current conditions",
	"Temperature",
	"Feels like",
	"Min",
	"Max",
	"Sunrise",
	"Sunset",
	"Humidity",
	"Pressure",
	"Wind speed",
	"Cloudy",
}

// Report is the current-conditions table. The array length pins the row
// count and order.
type Report [RowCount]models.Row

// Format builds the report. Any absent field fails the whole report with an
// owm.MissingFieldError; no partial rows are produced.
func Format(cur *owm.CurrentResponse, labels units.Labels) (Report, error) {
	if cur == nil {
		return Report{}, &owm.MissingFieldError{Field: "current"}
	}

	var f fields
	var condition string
	if len(cur.Weather) == 0 {
		f.missing("weather")
	} else {
		condition = cur.Weather[0].Main
	}

	m := cur.Main
	if m == nil {
		m = &owm.Main{}
	}
	temp := f.float(m.Temp, "main.temp")
	feels := f.float(m.FeelsLike, "main.feels_like")
	tempMin := f.float(m.TempMin, "main.temp_min")
	tempMax := f.float(m.TempMax, "main.temp_max")
	humidity := f.float(m.Humidity, "main.humidity")
	pressure := f.float(m.Pressure, "main.pressure")

	sys := cur.Sys
	if sys == nil {
		sys = &owm.Sys{}
	}
	sunrise := f.integer(sys.Sunrise, "sys.sunrise")
	sunset := f.integer(sys.Sunset, "sys.sunset")
	offset := f.integer(cur.Timezone, "timezone")

	var wind, clouds float64
	if cur.Wind == nil {
		f.missing("wind")
	} else {
		wind = f.float(cur.Wind.Speed, "wind.speed")
	}
	if cur.Clouds == nil {
		f.missing("clouds")
	} else {
		clouds = f.float(cur.Clouds.All, "clouds.all")
	}

	if f.err != nil {
		return Report{}, f.err
	}

	values := [RowCount]string{
		condition,
		withSuffix(temp, labels.Temperature),
		withSuffix(feels, labels.Temperature),
		withSuffix(tempMin, labels.Temperature),
		withSuffix(tempMax, labels.Temperature),
		LocalClock(sunrise, offset),
		LocalClock(sunset, offset),
		round(humidity) + "%",
		round(pressure) + " hPa",
		withSuffix(wind, labels.Speed),
		round(clouds) + "%",
	}

	var r Report
	for i := range r {
		r[i] = models.Row{Label: Labels[i], Value: values[i]}
	}
	return r, nil
}

// LocalClock renders a UTC epoch as "HH:MM" in a location offset
// offsetSeconds from UTC.
func LocalClock(epoch, offsetSeconds int64) string {
	return time.Unix(epoch, 0).UTC().Add(time.Duration(offsetSeconds) * time.Second).Format("15:04")
}

// round rounds half to even.
func round(v float64) string {
	return strconv.Itoa(int(math.RoundToEven(v)))
}

func withSuffix(v float64, suffix string) string {
	return round(v) + " " + suffix
}

// fields records the first missing field.
type fields struct {
	err error
}

func (f *fields) missing(name string) {
	if f.err == nil {
		f.err = &owm.MissingFieldError{Field: name}
	}
}

func (f *fields) float(v *float64, name string) float64 {
	if v == nil {
		f.missing(name)
		return 0
	}
	return *v
}

func (f *fields) integer(v *int64, name string) int64 {
	if v == nil {
		f.missing(name)
		return 0
	}
	return *v
}
