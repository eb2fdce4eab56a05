package carquery

// Each function below is the mapping table for one entity: one line per
// destination field, naming its single source field and coercion.

func yearRangeFromRecord(r record) YearRange {
	return YearRange{
		MinYear: r.int("min_year"),
		MaxYear: r.int("max_year"),
	}
}

func makeFromRecord(r record) Make {
	return Make{
		ID:       r.str("make_id"),
		Display:  r.str("make_display"),
		IsCommon: r.flag("make_is_common"),
		Country:  r.str("make_country"),
	}
}

func modelFromRecord(r record) Model {
	return Model{
		MakeID: r.str("model_make_id"),
		Name:   r.str("model_name"),
	}
}

func trimFromRecord(r record) Trim {
	return Trim{
		ID:     r.int("model_id"),
		MakeID: r.str("model_make_id"),
		Name:   r.str("model_name"),
		Trim:   r.str("model_trim"),
		Year:   r.int("model_year"),
		Body:   r.str("model_body"),

		EnginePosition:     r.str("model_engine_position"),
		EngineCC:           r.int("model_engine_cc"),
		EngineCylinders:    r.int("model_engine_cyl"),
		EngineType:         r.str("model_engine_type"),
		EngineValvesPerCyl: r.int("model_engine_valves_per_cyl"),
		EnginePowerPS:      r.int("model_engine_power_ps"),
		EnginePowerRPM:     r.int("model_engine_power_rpm"),
		EngineTorqueNm:     r.int("model_engine_torque_nm"),
		EngineTorqueRPM:    r.int("model_engine_torque_rpm"),
		EngineBoreMM:       r.float("model_engine_bore_mm"),
		EngineStrokeMM:     r.float("model_engine_stroke_mm"),
		EngineCompression:  r.nullable("model_engine_compression"),
		EngineFuel:         r.str("model_engine_fuel"),

		TopSpeedKPH:      r.int("model_top_speed_kph"),
		ZeroTo100KPH:     r.float("model_0_to_100_kph"),
		Drive:            r.str("model_drive"),
		TransmissionType: r.str("model_transmission_type"),
		Seats:            r.int("model_seats"),
		Doors:            r.int("model_doors"),

		WeightKG:    r.int("model_weight_kg"),
		LengthMM:    r.int("model_length_mm"),
		WidthMM:     r.int("model_width_mm"),
		HeightMM:    r.int("model_height_mm"),
		WheelbaseMM: r.int("model_wheelbase_mm"),

		LKMHwy:   r.float("model_lkm_hwy"),
		LKMMixed: r.float("model_lkm_mixed"),
		LKMCity:  r.float("model_lkm_city"),
		FuelCapL: r.float("model_fuel_cap_l"),

		SoldInUSA:   r.flag("model_sold_in_us"),
		CO2:         r.nullable("model_co2"),
		MakeDisplay: r.str("make_display"),
		MakeCountry: r.str("make_country"),
	}
}

func modelDetailFromRecord(r record) ModelDetail {
	return ModelDetail{
		ID:     r.int("model_id"),
		MakeID: r.str("model_make_id"),
		Name:   r.str("model_name"),
		Trim:   r.str("model_trim"),
		Year:   r.int("model_year"),
		Body:   r.str("model_body"),

		EnginePosition:     r.str("model_engine_position"),
		EngineCC:           r.int("model_engine_cc"),
		EngineCylinders:    r.int("model_engine_cyl"),
		EngineType:         r.str("model_engine_type"),
		EngineValvesPerCyl: r.int("model_engine_valves_per_cyl"),
		EnginePowerPS:      r.int("model_engine_power_ps"),
		EnginePowerRPM:     r.int("model_engine_power_rpm"),
		EngineTorqueNm:     r.int("model_engine_torque_nm"),
		EngineTorqueRPM:    r.int("model_engine_torque_rpm"),
		EngineBoreMM:       r.float("model_engine_bore_mm"),
		EngineStrokeMM:     r.float("model_engine_stroke_mm"),
		EngineCompression:  r.nullable("model_engine_compression"),
		EngineFuel:         r.str("model_engine_fuel"),

		TopSpeedKPH:      r.int("model_top_speed_kph"),
		ZeroTo100KPH:     r.float("model_0_to_100_kph"),
		Drive:            r.str("model_drive"),
		TransmissionType: r.str("model_transmission_type"),
		Seats:            r.int("model_seats"),
		Doors:            r.int("model_doors"),

		WeightKilograms:      r.int("model_weight_kg"),
		LengthMillimeters:    r.int("model_length_mm"),
		WidthMillimeters:     r.int("model_width_mm"),
		HeightMillimeters:    r.int("model_height_mm"),
		WheelbaseMillimeters: r.int("model_wheelbase_mm"),
		LKMHwy:               r.float("model_lkm_hwy"),
		LKMMixed:             r.float("model_lkm_mixed"),
		LKMCity:              r.float("model_lkm_city"),
		FuelCapLiters:        r.float("model_fuel_cap_l"),

		EngineLiters:      r.float("model_engine_l"),
		EngineCubicInches: r.int("model_engine_ci"),
		EngineValves:      r.int("model_engine_valves"),
		EnginePowerHP:     r.int("model_engine_power_hp"),
		EnginePowerKW:     r.int("model_engine_power_kw"),
		EngineTorqueLbFt:  r.int("model_engine_torque_lbft"),
		EngineTorqueKgm:   r.float("model_engine_torque_kgm"),
		TopSpeedMPH:       r.int("model_top_speed_mph"),
		WeightPounds:      r.int("model_weight_lbs"),
		LengthInches:      r.float("model_length_in"),
		WidthInches:       r.float("model_width_in"),
		HeightInches:      r.float("model_height_in"),
		WheelbaseInches:   r.float("model_wheelbase_in"),
		MPGHwy:            r.float("model_mpg_hwy"),
		MPGCity:           r.float("model_mpg_city"),
		MPGMixed:          r.float("model_mpg_mixed"),
		FuelCapGallons:    r.float("model_fuel_cap_g"),

		SoldInUSA:   r.flag("model_sold_in_us"),
		CO2:         r.nullable("model_co2"),
		MakeDisplay: r.str("make_display"),
		MakeCountry: r.str("make_country"),

		ExteriorColors: r.colors("ExtColors"),
		InteriorColors: r.colors("IntColors"),
	}
}
