package section

import "math"

// ComputeProperties calculates the geometric properties of the section.
// It is a total function: any numeric input yields a defined result.
// A hollow section with Ri >= Ro returns the degenerate zero properties
// (OuterRadius is still reported as Ro) rather than an error.
//
// Two of the reported values are engineering approximations, not exact
// textbook constants, and are kept that way on purpose:
//   - PolarInertia for the rectangle is b·h³/3, and for the I-beam it
//     simply reuses the bending inertia; neither is a true torsion
//     constant for the shape.
//   - ShearThickness for the solid circle is the full diameter.
func ComputeProperties(v Variant, dims Dimensions) Properties {
	switch v {
	case Rectangle:
		b, h := dims.B, dims.H
		return Properties{
			Area:           b * h,
			Inertia:        b * h * h * h / 12,
			PolarInertia:   b * h * h * h / 3, // approximation, not the exact torsion constant
			OuterRadius:    h / 2,
			ShearThickness: b,
		}

	case SolidCircle:
		r := dims.D / 2
		r4 := r * r * r * r
		return Properties{
			Area:           math.Pi * r * r,
			Inertia:        math.Pi * r4 / 4,
			PolarInertia:   math.Pi * r4 / 2,
			OuterRadius:    r,
			ShearThickness: dims.D, // diameter as a thickness proxy
		}

	case HollowCircle:
		ro, ri := dims.Ro, dims.Ri
		if ri >= ro {
			// Degenerate bore: defined zero-property fallback, never an error.
			return Properties{OuterRadius: ro}
		}
		ro4 := ro * ro * ro * ro
		ri4 := ri * ri * ri * ri
		return Properties{
			Area:           math.Pi * (ro*ro - ri*ri),
			Inertia:        math.Pi / 4 * (ro4 - ri4),
			PolarInertia:   math.Pi / 2 * (ro4 - ri4),
			OuterRadius:    ro,
			ShearThickness: ro - ri,
		}

	case IBeam:
		h, bf, tf, tw := dims.H, dims.Bf, dims.Tf, dims.Tw
		web := h - 2*tf
		// Full rectangle minus the two web-side cutouts.
		inertia := (bf*h*h*h - (bf-tw)*web*web*web) / 12
		return Properties{
			Area:           2*bf*tf + tw*web,
			Inertia:        inertia,
			PolarInertia:   inertia, // no true torsion constant for open thin-walled sections
			OuterRadius:    h / 2,
			ShearThickness: tw,
		}
	}

	return Properties{}
}
