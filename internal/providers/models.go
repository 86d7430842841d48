package providers

// WeatherPayload is the weatherapi.com response body. Blocks and temperatures
// are pointers so a missing field can be told apart from a zero value.
type WeatherPayload struct {
	Location *Location   `json:"location"`
	Current  *Current    `json:"current"`
	Forecast *Forecast   `json:"forecast,omitempty"`
	Error    *APIErrBody `json:"error,omitempty"`
}

type Location struct {
	Name    string `json:"name"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

type Current struct {
	TempC     *float64   `json:"temp_c"`
	Condition *Condition `json:"condition"`
}

type Condition struct {
	Text string `json:"text"`
}

type Forecast struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

type ForecastDay struct {
	Date string `json:"date"`
	Day  *Day   `json:"day"`
}

type Day struct {
	MinTempC *float64 `json:"mintemp_c"`
	AvgTempC *float64 `json:"avgtemp_c"`
	MaxTempC *float64 `json:"maxtemp_c"`
}

type APIErrBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
