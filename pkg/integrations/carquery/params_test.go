package carquery

import "testing"

func TestGetTrimsParams_Values(t *testing.T) {
	tests := []struct {
		name   string
		params GetTrimsParams
		want   map[string]string
	}{
		{
			name:   "empty",
			params: GetTrimsParams{},
			want:   map[string]string{},
		},
		{
			name: "renamed keys",
			params: GetTrimsParams{
				BodyStyle:     BodySedan,
				MinHorsepower: 150,
				MaxHorsepower: 300,
				MinLKMHwy:     4.5,
			},
			want: map[string]string{
				"body":        "Sedan",
				"min_power":   "150",
				"max_power":   "300",
				"min_lkm_hwy": "4.5",
			},
		},
		{
			name: "flags",
			params: GetTrimsParams{
				FullResults: true,
				SoldInUSA:   true,
			},
			want: map[string]string{"full_results": "1", "sold_in_us": "1"},
		},
		{
			name: "zero values omitted",
			params: GetTrimsParams{
				Year:         2011,
				MinCylinders: 0,
				Keyword:      "",
				Doors:        0,
			},
			want: map[string]string{"year": "2011"},
		},
		{
			name: "everything",
			params: GetTrimsParams{
				Year: 2011, Make: "ford", Model: "Mustang", BodyStyle: BodyCoupe,
				Doors: 2, Drive: "RWD", EnginePosition: "Front", EngineType: "V",
				FuelType: "Gasoline", FullResults: true, Keyword: "GT",
				MinCylinders: 6, MinLKMHwy: 7, MinHorsepower: 200, MinTopSpeed: 180,
				MinTorque: 300, MinWeight: 1200, MinYear: 2005,
				MaxCylinders: 8, MaxLKMHwy: 12.5, MaxHorsepower: 450, MaxTopSpeed: 280,
				MaxTorque: 600, MaxWeight: 2000, MaxYear: 2012,
				Seats: 4, SoldInUSA: true,
			},
			want: map[string]string{
				"year": "2011", "make": "ford", "model": "Mustang", "body": "Coupe",
				"doors": "2", "drive": "RWD", "engine_position": "Front", "engine_type": "V",
				"fuel_type": "Gasoline", "full_results": "1", "keyword": "GT",
				"min_cylinders": "6", "min_lkm_hwy": "7", "min_power": "200", "min_top_speed": "180",
				"min_torque": "300", "min_weight": "1200", "min_year": "2005",
				"max_cylinders": "8", "max_lkm_hwy": "12.5", "max_power": "450", "max_top_speed": "280",
				"max_torque": "600", "max_weight": "2000", "max_year": "2012",
				"seats": "4", "sold_in_us": "1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.params.Values()
			if len(got) != len(tt.want) {
				t.Errorf("Values() has %d keys, want %d: %v", len(got), len(tt.want), got)
			}
			for k, v := range tt.want {
				if got.Get(k) != v {
					t.Errorf("%s = %q, want %q", k, got.Get(k), v)
				}
			}
		})
	}
}

func TestGetModelsParams_Values(t *testing.T) {
	q := GetModelsParams{Year: 2000, Make: "ford"}.Values()
	if q.Get("year") != "2000" || q.Get("make") != "ford" {
		t.Errorf("Values() = %v", q)
	}
	if _, ok := q["sold_in_us"]; ok {
		t.Error("sold_in_us should be absent when false")
	}
	if _, ok := q["body"]; ok {
		t.Error("body should be absent when empty")
	}
}

func TestValues_Independent(t *testing.T) {
	p := GetTrimsParams{Make: "ford"}
	a := p.Values()
	a.Set("cmd", "getTrims")
	b := p.Values()
	if b.Has("cmd") {
		t.Error("Values() should return a fresh map per call")
	}
}

func TestParseBodyStyle(t *testing.T) {
	tests := []struct {
		in   string
		want BodyStyle
		ok   bool
	}{
		{"SUV", BodySUV, true},
		{"suv", BodySUV, true},
		{" sedan ", BodySedan, true},
		{"Hatchback", BodyHatchback, true},
		{"spaceship", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseBodyStyle(tt.in)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ParseBodyStyle(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}
