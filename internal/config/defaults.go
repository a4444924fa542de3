// Package config provides configuration handling for unitgen.
package config

// DefaultSymbols returns display symbols for common base units. A symbol
// declared on the quantity in the schema takes precedence.
func DefaultSymbols() map[string]string {
	return map[string]string{
		// Mechanics
		"meters":                    "m",
		"square_meters":             "m²",
		"cubic_meters":              "m³",
		"seconds":                   "s",
		"hertz":                     "Hz",
		"meters_per_second":         "m/s",
		"meters_per_second_squared": "m/s²",
		"kilograms":                 "kg",
		"newtons":                   "N",
		"joules":                    "J",
		"watts":                     "W",
		"pascals":                   "Pa",

		// Rotation
		"radians":            "rad",
		"radians_per_second": "rad/s",

		// Thermal
		"celsius": "°C",
		"kelvin":  "K",

		// Electrical
		"amperes":  "A",
		"volts":    "V",
		"ohms":     "Ω",
		"coulombs": "C",
	}
}

// DefaultOptions returns default generation options.
func DefaultOptions() Options {
	return Options{}
}
