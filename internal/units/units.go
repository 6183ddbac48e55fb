// Package units holds the conversion factors applied at the CLI
// boundary. The calculation engines work in SI base units only; inputs
// are multiplied into SI before they reach the engines and stresses are
// divided out of SI for display.
package units

import "fmt"

// Factors to SI base units
const (
	Meter      = 1.0
	Centimeter = 0.01
	Millimeter = 0.001
	Inch       = 0.0254

	Newton     = 1.0
	Kilonewton = 1000.0
	PoundForce = 4.4482216152605

	NewtonMeter     = 1.0
	KilonewtonMeter = 1000.0
	PoundFoot       = PoundForce * 0.3048

	Pascal     = 1.0
	Kilopascal = 1000.0
	Megapascal = 1e6
	Psi        = PoundForce / (Inch * Inch)
)

// LengthFactor returns the multiplier that converts the named length
// unit to meters.
func LengthFactor(unit string) (float64, error) {
	switch unit {
	case "m":
		return Meter, nil
	case "cm":
		return Centimeter, nil
	case "mm":
		return Millimeter, nil
	case "in":
		return Inch, nil
	}
	return 0, fmt.Errorf("unknown length unit %q (use m, cm, mm or in)", unit)
}

// ForceFactor returns the multiplier that converts the named force
// unit to newtons.
func ForceFactor(unit string) (float64, error) {
	switch unit {
	case "N":
		return Newton, nil
	case "kN":
		return Kilonewton, nil
	case "lbf":
		return PoundForce, nil
	}
	return 0, fmt.Errorf("unknown force unit %q (use N, kN or lbf)", unit)
}

// MomentFactor returns the multiplier that converts the named moment
// unit to newton-meters.
func MomentFactor(unit string) (float64, error) {
	switch unit {
	case "N-m":
		return NewtonMeter, nil
	case "kN-m":
		return KilonewtonMeter, nil
	case "lbf-ft":
		return PoundFoot, nil
	}
	return 0, fmt.Errorf("unknown moment unit %q (use N-m, kN-m or lbf-ft)", unit)
}

// StressFactor returns the divisor that converts a stress in pascals
// to the named display unit.
func StressFactor(unit string) (float64, error) {
	switch unit {
	case "Pa":
		return Pascal, nil
	case "kPa":
		return Kilopascal, nil
	case "MPa":
		return Megapascal, nil
	case "psi":
		return Psi, nil
	}
	return 0, fmt.Errorf("unknown stress unit %q (use Pa, kPa, MPa or psi)", unit)
}
