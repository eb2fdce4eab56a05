package carquery

import (
	"net/url"
	"strconv"
	"strings"
)

// BodyStyle is a vehicle body category used as a filter and response tag.
type BodyStyle string

// Body styles accepted by the API.
const (
	BodyConvertible BodyStyle = "Convertible"
	BodyCoupe       BodyStyle = "Coupe"
	BodyCrossover   BodyStyle = "Crossover"
	BodyHatchback   BodyStyle = "Hatchback"
	BodyMinivan     BodyStyle = "Minivan"
	BodyPickup      BodyStyle = "Pickup"
	BodyRoadster    BodyStyle = "Roadster"
	BodySedan       BodyStyle = "Sedan"
	BodySUV         BodyStyle = "SUV"
	BodyVan         BodyStyle = "Van"
	BodyWagon       BodyStyle = "Wagon"
)

// BodyStyles lists every known body style in display order.
var BodyStyles = []BodyStyle{
	BodyConvertible, BodyCoupe, BodyCrossover, BodyHatchback, BodyMinivan,
	BodyPickup, BodyRoadster, BodySedan, BodySUV, BodyVan, BodyWagon,
}

// ParseBodyStyle matches s case-insensitively against [BodyStyles].
func ParseBodyStyle(s string) (BodyStyle, bool) {
	for _, b := range BodyStyles {
		if strings.EqualFold(string(b), strings.TrimSpace(s)) {
			return b, true
		}
	}
	return "", false
}

// GetModelsParams filters the models of one make in one year.
type GetModelsParams struct {
	Year      int       // required
	Make      string    // required, make id or display name
	SoldInUSA bool      // restrict to models sold in the USA
	Body      BodyStyle // optional body style
}

// Values serializes the parameters. year and make are always present.
func (p GetModelsParams) Values() url.Values {
	q := url.Values{}
	q.Set("year", strconv.Itoa(p.Year))
	q.Set("make", p.Make)
	addFlag(q, "sold_in_us", p.SoldInUSA)
	addString(q, "body", string(p.Body))
	return q
}

// GetTrimsParams filters a trim search. Every field is optional.
//
// A field is sent only when it is set: zero numbers, empty strings and
// false flags are omitted. A filter value of 0 therefore cannot be
// expressed and behaves as if the filter were absent.
type GetTrimsParams struct {
	Year           int
	Make           string
	Model          string
	BodyStyle      BodyStyle
	Doors          int
	Drive          string
	EnginePosition string
	EngineType     string
	FuelType       string
	FullResults    bool
	Keyword        string

	MinCylinders  int
	MinLKMHwy     float64
	MinHorsepower int
	MinTopSpeed   int
	MinTorque     int
	MinWeight     int
	MinYear       int

	MaxCylinders  int
	MaxLKMHwy     float64
	MaxHorsepower int
	MaxTopSpeed   int
	MaxTorque     int
	MaxWeight     int
	MaxYear       int

	Seats     int
	SoldInUSA bool
}

// Values serializes the set filters under the API's query keys.
func (p GetTrimsParams) Values() url.Values {
	q := url.Values{}
	addInt(q, "year", p.Year)
	addString(q, "make", p.Make)
	addString(q, "model", p.Model)
	addString(q, "body", string(p.BodyStyle))
	addInt(q, "doors", p.Doors)
	addString(q, "drive", p.Drive)
	addString(q, "engine_position", p.EnginePosition)
	addString(q, "engine_type", p.EngineType)
	addString(q, "fuel_type", p.FuelType)
	addFlag(q, "full_results", p.FullResults)
	addString(q, "keyword", p.Keyword)

	addInt(q, "min_cylinders", p.MinCylinders)
	addFloat(q, "min_lkm_hwy", p.MinLKMHwy)
	addInt(q, "min_power", p.MinHorsepower)
	addInt(q, "min_top_speed", p.MinTopSpeed)
	addInt(q, "min_torque", p.MinTorque)
	addInt(q, "min_weight", p.MinWeight)
	addInt(q, "min_year", p.MinYear)

	addInt(q, "max_cylinders", p.MaxCylinders)
	addFloat(q, "max_lkm_hwy", p.MaxLKMHwy)
	addInt(q, "max_power", p.MaxHorsepower)
	addInt(q, "max_top_speed", p.MaxTopSpeed)
	addInt(q, "max_torque", p.MaxTorque)
	addInt(q, "max_weight", p.MaxWeight)
	addInt(q, "max_year", p.MaxYear)

	addInt(q, "seats", p.Seats)
	addFlag(q, "sold_in_us", p.SoldInUSA)
	return q
}

func makesValues(year int, soldInUSA bool) url.Values {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	addFlag(q, "sold_in_us", soldInUSA)
	return q
}

func addString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}

func addInt(q url.Values, key string, v int) {
	if v != 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

func addFloat(q url.Values, key string, v float64) {
	if v != 0 {
		q.Set(key, strconv.FormatFloat(v, 'f', -1, 64))
	}
}

func addFlag(q url.Values, key string, v bool) {
	if v {
		q.Set(key, "1")
	}
}
