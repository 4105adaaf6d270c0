package owm

// Pointer fields distinguish "absent" from zero so callers can report
// missing data instead of rendering zeros.

type GeocodeResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

type Condition struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Main struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	TempMin   *float64 `json:"temp_min"`
	TempMax   *float64 `json:"temp_max"`
	Pressure  *float64 `json:"pressure"`
	Humidity  *float64 `json:"humidity"`
}

type Wind struct {
	Speed *float64 `json:"speed"`
	Deg   *float64 `json:"deg"`
}

type Clouds struct {
	All *float64 `json:"all"`
}

type Sys struct {
	Country string `json:"country"`
	Sunrise *int64 `json:"sunrise"`
	Sunset  *int64 `json:"sunset"`
}

// CurrentResponse is the /data/2.5/weather payload.
type CurrentResponse struct {
	Name     string      `json:"name"`
	Dt       int64       `json:"dt"`
	Weather  []Condition `json:"weather"`
	Main     *Main       `json:"main"`
	Wind     *Wind       `json:"wind"`
	Clouds   *Clouds     `json:"clouds"`
	Sys      *Sys        `json:"sys"`
	Timezone *int64      `json:"timezone"` // UTC offset in seconds
}

// Precipitation holds accumulated rain or snow in millimetres.
type Precipitation struct {
	OneHour   *float64 `json:"1h"`
	ThreeHour *float64 `json:"3h"`
}

// ForecastEntry is one 3-hour step of the forecast list.
type ForecastEntry struct {
	Dt      int64          `json:"dt"`
	DtTxt   string         `json:"dt_txt"` // "2006-01-02 15:04:05", UTC
	Main    *Main          `json:"main"`
	Weather []Condition    `json:"weather"`
	Rain    *Precipitation `json:"rain"`
	Pop     float64        `json:"pop"`
}

type ForecastCity struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone int64  `json:"timezone"`
	Sunrise  int64  `json:"sunrise"`
	Sunset   int64  `json:"sunset"`
}

// ForecastResponse is the /data/2.5/forecast payload.
type ForecastResponse struct {
	Cnt  int             `json:"cnt"`
	List []ForecastEntry `json:"list"`
	City ForecastCity    `json:"city"`
}
