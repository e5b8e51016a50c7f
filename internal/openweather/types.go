package openweather

type Conditions struct {
	Id          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Main struct {
	Temp      float64 `json:"temp"`
	FeelsLike float64 `json:"feels_like"`
	Pressure  float64 `json:"pressure"`
	Humidity  float64 `json:"humidity"`
}

type Wind struct {
	Speed float64  `json:"speed"` // m/s
	Deg   float64  `json:"deg"`
	Gust  *float64 `json:"gust,omitempty"` // m/s
}

type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type CurrentResponse struct {
	Coord      Coord        `json:"coord"`
	Weather    []Conditions `json:"weather"`
	Main       Main         `json:"main"`
	Visibility *float64     `json:"visibility,omitempty"` // meters
	Wind       Wind         `json:"wind"`
	Clouds     struct {
		All float64 `json:"all"`
	} `json:"clouds"`
	Dt  int64 `json:"dt"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
	// Timezone is the UTC offset in seconds.
	Timezone int    `json:"timezone"`
	Name     string `json:"name"`
}

type Rain struct {
	ThreeHour float64 `json:"3h"`
}

type ForecastItem struct {
	Dt      int64        `json:"dt"`
	Main    Main         `json:"main"`
	Weather []Conditions `json:"weather"`
	Wind    Wind         `json:"wind"`
	Pop     float64      `json:"pop"` // 0-1
	Rain    *Rain        `json:"rain,omitempty"`
	DtTxt   string       `json:"dt_txt"`
}

type ForecastResponse struct {
	List []ForecastItem `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}

type GeoCodeResult struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state,omitempty"`
}

type FindResponse struct {
	List []FindItem `json:"list"`
}

type FindItem struct {
	Name       string `json:"name"`
	Coord      Coord  `json:"coord"`
	State      string `json:"state,omitempty"`
	Population int    `json:"population,omitempty"`
	Sys        struct {
		Country string `json:"country"`
	} `json:"sys"`
}
