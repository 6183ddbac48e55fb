package section

import "fmt"

// Variant identifies the cross-section shape. Exactly one variant is
// active per evaluation and each uses its own subset of Dimensions.
type Variant int

const (
	Rectangle Variant = iota
	SolidCircle
	HollowCircle
	IBeam
)

// String returns the lowercase name used in CLI flags and case files.
func (v Variant) String() string {
	switch v {
	case Rectangle:
		return "rectangle"
	case SolidCircle:
		return "circle"
	case HollowCircle:
		return "pipe"
	case IBeam:
		return "ibeam"
	}
	return "unknown"
}

// ParseVariant maps a shape name to its Variant. Accepted names are
// those produced by Variant.String plus a few common aliases.
func ParseVariant(name string) (Variant, error) {
	switch name {
	case "rectangle", "rect":
		return Rectangle, nil
	case "circle", "solid-circle":
		return SolidCircle, nil
	case "pipe", "hollow-circle", "tube":
		return HollowCircle, nil
	case "ibeam", "i-beam":
		return IBeam, nil
	}
	return 0, &ValidationError{msg: fmt.Sprintf("unknown section shape %q", name)}
}

// Dimensions holds the dimensional parameters for all variants in one
// flat struct (all in meters). Only the fields of the active variant
// are read:
//
//	Rectangle:    B (width), H (height)
//	SolidCircle:  D (diameter)
//	HollowCircle: Ro (outer radius), Ri (inner radius)
//	IBeam:        H (overall depth), Bf (flange width),
//	              Tf (flange thickness), Tw (web thickness)
type Dimensions struct {
	B  float64 `json:"b,omitempty"`
	H  float64 `json:"h,omitempty"`
	D  float64 `json:"d,omitempty"`
	Ro float64 `json:"ro,omitempty"`
	Ri float64 `json:"ri,omitempty"`
	Bf float64 `json:"bf,omitempty"`
	Tf float64 `json:"tf,omitempty"`
	Tw float64 `json:"tw,omitempty"`
}

// Properties holds the derived geometric properties of a section.
// All fields are recomputed fresh on every call; there is no cached
// state to invalidate.
type Properties struct {
	Area           float64 // m²
	Inertia        float64 // m⁴, about the neutral (bending) axis
	PolarInertia   float64 // m⁴
	OuterRadius    float64 // m, half the overall extent along the bending axis
	ShearThickness float64 // m, effective thickness at the neutral axis
}

// Validate checks the dimensions of the active variant. A hollow
// section with Ri >= Ro is deliberately allowed through: the engine
// treats it as a defined degenerate case, not a fault.
func Validate(v Variant, dims Dimensions) error {
	switch v {
	case Rectangle:
		if dims.B <= 0 {
			return &ValidationError{msg: "rectangle width b must be positive"}
		}
		if dims.H <= 0 {
			return &ValidationError{msg: "rectangle height h must be positive"}
		}
	case SolidCircle:
		if dims.D <= 0 {
			return &ValidationError{msg: "circle diameter d must be positive"}
		}
	case HollowCircle:
		if dims.Ro <= 0 {
			return &ValidationError{msg: "outer radius ro must be positive"}
		}
		if dims.Ri < 0 {
			return &ValidationError{msg: "inner radius ri must not be negative"}
		}
	case IBeam:
		if dims.H <= 0 || dims.Bf <= 0 || dims.Tf <= 0 || dims.Tw <= 0 {
			return &ValidationError{msg: "I-beam dimensions h, bf, tf, tw must all be positive"}
		}
		if 2*dims.Tf >= dims.H {
			return &ValidationError{msg: "I-beam flanges overlap: 2*tf must be less than h"}
		}
	default:
		return &ValidationError{msg: fmt.Sprintf("unknown section variant %d", v)}
	}
	return nil
}

// ValidationError represents a section definition error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
