// Package stress evaluates the stress state at a point of a beam
// cross-section under combined axial, bending, torsional, and
// transverse-shear loading. All functions are pure and stateless:
// the same inputs always produce bit-identical outputs and calls are
// safe from any number of goroutines.
package stress

import (
	"math"

	"github.com/alexiusacademia/gostress/internal/section"
)

// LoadSet holds the applied loads, all in SI base units. Sign
// convention: a positive bending moment produces positive stress at
// positive ordinate.
type LoadSet struct {
	AxialForce    float64 `json:"axial_force"`    // N
	BendingMoment float64 `json:"bending_moment"` // N·m
	Torque        float64 `json:"torque"`         // N·m
	ShearForce    float64 `json:"shear_force"`    // N
}

// Result holds the four independently computed stress components (Pa).
// They superpose only; no combined failure criterion is applied.
type Result struct {
	Axial           float64 // σ = N/A
	Bending         float64 // σ = M·y/I
	TorsionalShear  float64 // τ = T·|y|/J
	TransverseShear float64 // τ = V·Q/(I·t)
}

// Compute evaluates the four stress formulas. It is a formula
// evaluator, not a validator: division by zero (degenerate section with
// zero area or zero shear thickness) propagates as ±Inf or NaN rather
// than being intercepted. Callers should check IsFinite before display.
func Compute(props section.Properties, q float64, loads LoadSet, y float64) Result {
	return Result{
		Axial:           loads.AxialForce / props.Area,
		Bending:         loads.BendingMoment * y / props.Inertia,
		TorsionalShear:  loads.Torque * math.Abs(y) / props.PolarInertia,
		TransverseShear: loads.ShearForce * q / (props.Inertia * props.ShearThickness),
	}
}

// At runs the full pipeline for one section and ordinate: section
// properties, first moment at y, then the four stresses.
func At(v section.Variant, dims section.Dimensions, loads LoadSet, y float64) Result {
	props := section.ComputeProperties(v, dims)
	q := section.FirstMoment(v, dims, y)
	return Compute(props, q, loads, y)
}

// IsFinite reports whether every component of the result is a finite
// number.
func (r Result) IsFinite() bool {
	for _, s := range [...]float64{r.Axial, r.Bending, r.TorsionalShear, r.TransverseShear} {
		if math.IsNaN(s) || math.IsInf(s, 0) {
			return false
		}
	}
	return true
}
