package carquery

// YearRange is the span of model years known to the API.
type YearRange struct {
	MinYear int `json:"minYear"`
	MaxYear int `json:"maxYear"`
}

// Make is a vehicle manufacturer.
type Make struct {
	ID       string `json:"id"`       // Lowercase identifier used in queries (e.g. "acura")
	Display  string `json:"display"`  // Display name (e.g. "Acura")
	IsCommon bool   `json:"isCommon"` // Whether the make is flagged as common
	Country  string `json:"country"`  // Country of origin (e.g. "USA")
}

// Model is a vehicle model under a make.
type Model struct {
	MakeID string `json:"makeId"`
	Name   string `json:"name"`
}

// Trim is a specific model/year/trim configuration with metric specs.
//
// Numeric fields are 0 when the API sends null or omits them.
// EngineCompression and CO2 are nil when the API sends null.
type Trim struct {
	ID     int    `json:"id"`
	MakeID string `json:"makeId"`
	Name   string `json:"name"`
	Trim   string `json:"trim"`
	Year   int    `json:"year"`
	Body   string `json:"body"`

	EnginePosition     string  `json:"enginePosition"`
	EngineCC           int     `json:"engineCC"`
	EngineCylinders    int     `json:"engineCylinders"`
	EngineType         string  `json:"engineType"`
	EngineValvesPerCyl int     `json:"engineValvesPerCyl"`
	EnginePowerPS      int     `json:"enginePowerPS"`
	EnginePowerRPM     int     `json:"enginePowerRPM"`
	EngineTorqueNm     int     `json:"engineTorqueNm"`
	EngineTorqueRPM    int     `json:"engineTorqueRPM"`
	EngineBoreMM       float64 `json:"engineBoreMM"`
	EngineStrokeMM     float64 `json:"engineStrokeMM"`
	EngineCompression  *string `json:"engineCompression"`
	EngineFuel         string  `json:"engineFuel"`

	TopSpeedKPH      int     `json:"topSpeedKPH"`
	ZeroTo100KPH     float64 `json:"zeroTo100KPH"`
	Drive            string  `json:"drive"`
	TransmissionType string  `json:"transmissionType"`
	Seats            int     `json:"seats"`
	Doors            int     `json:"doors"`

	WeightKG    int `json:"weightKG"`
	LengthMM    int `json:"lengthMM"`
	WidthMM     int `json:"widthMM"`
	HeightMM    int `json:"heightMM"`
	WheelbaseMM int `json:"wheelbaseMM"`

	LKMHwy   float64 `json:"lkmHwy"`
	LKMMixed float64 `json:"lkmMixed"`
	LKMCity  float64 `json:"lkmCity"`
	FuelCapL float64 `json:"fuelCapL"`

	SoldInUSA   bool    `json:"soldInUSA"`
	CO2         *string `json:"co2"`
	MakeDisplay string  `json:"makeDisplay"`
	MakeCountry string  `json:"makeCountry"`
}

// Color is a paint or upholstery color offered for a model.
type Color struct {
	Name string `json:"name"`
	RGB  string `json:"rgb"`
}

// ModelDetail is the full specification of a single model, carrying both
// metric and imperial figures. The two unit systems come from distinct
// source fields and are not converted from one another.
type ModelDetail struct {
	ID     int    `json:"id"`
	MakeID string `json:"makeId"`
	Name   string `json:"name"`
	Trim   string `json:"trim"`
	Year   int    `json:"year"`
	Body   string `json:"body"`

	EnginePosition     string  `json:"enginePosition"`
	EngineCC           int     `json:"engineCC"`
	EngineCylinders    int     `json:"engineCylinders"`
	EngineType         string  `json:"engineType"`
	EngineValvesPerCyl int     `json:"engineValvesPerCyl"`
	EnginePowerPS      int     `json:"enginePowerPS"`
	EnginePowerRPM     int     `json:"enginePowerRPM"`
	EngineTorqueNm     int     `json:"engineTorqueNm"`
	EngineTorqueRPM    int     `json:"engineTorqueRPM"`
	EngineBoreMM       float64 `json:"engineBoreMM"`
	EngineStrokeMM     float64 `json:"engineStrokeMM"`
	EngineCompression  *string `json:"engineCompression"`
	EngineFuel         string  `json:"engineFuel"`

	TopSpeedKPH      int     `json:"topSpeedKPH"`
	ZeroTo100KPH     float64 `json:"zeroTo100KPH"`
	Drive            string  `json:"drive"`
	TransmissionType string  `json:"transmissionType"`
	Seats            int     `json:"seats"`
	Doors            int     `json:"doors"`

	WeightKilograms      int     `json:"weightKilograms"`
	LengthMillimeters    int     `json:"lengthMillimeters"`
	WidthMillimeters     int     `json:"widthMillimeters"`
	HeightMillimeters    int     `json:"heightMillimeters"`
	WheelbaseMillimeters int     `json:"wheelbaseMillimeters"`
	LKMHwy               float64 `json:"lkmHwy"`
	LKMMixed             float64 `json:"lkmMixed"`
	LKMCity              float64 `json:"lkmCity"`
	FuelCapLiters        float64 `json:"fuelCapLiters"`

	// Imperial and alternate-unit figures.
	EngineLiters      float64 `json:"engineLiters"`
	EngineCubicInches int     `json:"engineCubicInches"`
	EngineValves      int     `json:"engineValves"`
	EnginePowerHP     int     `json:"enginePowerHP"`
	EnginePowerKW     int     `json:"enginePowerKW"`
	EngineTorqueLbFt  int     `json:"engineTorqueLbFt"`
	EngineTorqueKgm   float64 `json:"engineTorqueKgm"`
	TopSpeedMPH       int     `json:"topSpeedMPH"`
	WeightPounds      int     `json:"weightPounds"`
	LengthInches      float64 `json:"lengthInches"`
	WidthInches       float64 `json:"widthInches"`
	HeightInches      float64 `json:"heightInches"`
	WheelbaseInches   float64 `json:"wheelbaseInches"`
	MPGHwy            float64 `json:"mpgHwy"`
	MPGCity           float64 `json:"mpgCity"`
	MPGMixed          float64 `json:"mpgMixed"`
	FuelCapGallons    float64 `json:"fuelCapGallons"`

	SoldInUSA   bool    `json:"soldInUSA"`
	CO2         *string `json:"co2"`
	MakeDisplay string  `json:"makeDisplay"`
	MakeCountry string  `json:"makeCountry"`

	ExteriorColors []Color `json:"exteriorColors"`
	InteriorColors []Color `json:"interiorColors"`
}
