package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstMomentRectangle(t *testing.T) {
	dims := Dimensions{B: 0.05, H: 0.1}

	// Maximum at the neutral axis: (b/2)·a²
	assert.InEpsilon(t, 6.25e-5, FirstMoment(Rectangle, dims, 0), 1e-12)
	assert.InEpsilon(t, 5.25e-5, FirstMoment(Rectangle, dims, 0.02), 1e-12)
	// Zero exactly at the outer fiber (boundary is inside the section)
	assert.Zero(t, FirstMoment(Rectangle, dims, 0.05))
	assert.Zero(t, FirstMoment(Rectangle, dims, 0.06))
}

func TestFirstMomentSolidCircle(t *testing.T) {
	dims := Dimensions{D: 0.08}

	// (2/3)·r³ at the neutral axis
	assert.InEpsilon(t, 4.2666666666666667e-5, FirstMoment(SolidCircle, dims, 0), 1e-9)
	assert.InEpsilon(t, 2.7712812921102037e-5, FirstMoment(SolidCircle, dims, 0.02), 1e-9)
	assert.Zero(t, FirstMoment(SolidCircle, dims, 0.04))
	assert.Zero(t, FirstMoment(SolidCircle, dims, 0.05))
}

func TestFirstMomentHollowCircle(t *testing.T) {
	dims := Dimensions{Ro: 0.04, Ri: 0.032}

	// Inside the bore: solid disk minus the hole
	assert.InEpsilon(t, 2.0821333333333333e-5, FirstMoment(HollowCircle, dims, 0), 1e-9)

	// At |y| = Ri the bore contribution vanishes and both branches agree
	atBore := FirstMoment(HollowCircle, dims, 0.032)
	assert.InEpsilon(t, 9.216e-6, atBore, 1e-9)
	justAbove := FirstMoment(HollowCircle, dims, 0.032+1e-9)
	assert.InDelta(t, atBore, justAbove, 1e-10)

	// Above the bore only the outer arc contributes
	assert.InEpsilon(t, 3.533614e-6, FirstMoment(HollowCircle, dims, 0.036), 1e-6)

	assert.Zero(t, FirstMoment(HollowCircle, dims, 0.04))
	assert.Zero(t, FirstMoment(HollowCircle, dims, 0.05))
}

func TestFirstMomentIBeam(t *testing.T) {
	dims := Dimensions{H: 0.2, Bf: 0.1, Tf: 0.02, Tw: 0.01}

	// Web branch: flange term (no lever arm, kept approximation) plus
	// partial web area times its centroidal arm.
	assert.InEpsilon(t, 0.002032, FirstMoment(IBeam, dims, 0), 1e-12)
	assert.InEpsilon(t, 0.0020195, FirstMoment(IBeam, dims, 0.05), 1e-12)

	// Flange branch: bf·fla·(fla/2)
	assert.InEpsilon(t, 5e-6, FirstMoment(IBeam, dims, 0.09), 1e-12)

	assert.Zero(t, FirstMoment(IBeam, dims, 0.1))
	assert.Zero(t, FirstMoment(IBeam, dims, 0.11))
}

func TestFirstMomentEven(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		dims    Dimensions
	}{
		{"rectangle", Rectangle, Dimensions{B: 0.05, H: 0.1}},
		{"circle", SolidCircle, Dimensions{D: 0.08}},
		{"pipe", HollowCircle, Dimensions{Ro: 0.04, Ri: 0.032}},
		{"ibeam", IBeam, Dimensions{H: 0.2, Bf: 0.1, Tf: 0.02, Tw: 0.01}},
	}

	ordinates := []float64{0, 0.005, 0.017, 0.033, 0.039, 0.08, 0.095}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, y := range ordinates {
				assert.Equal(t, FirstMoment(tt.variant, tt.dims, y), FirstMoment(tt.variant, tt.dims, -y), "y=%v", y)
			}
		})
	}
}

func TestFirstMomentMaximumAtNeutralAxis(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		dims    Dimensions
	}{
		{"rectangle", Rectangle, Dimensions{B: 0.05, H: 0.1}},
		{"circle", SolidCircle, Dimensions{D: 0.08}},
		{"pipe", HollowCircle, Dimensions{Ro: 0.04, Ri: 0.032}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := ComputeProperties(tt.variant, tt.dims).OuterRadius
			qMax := FirstMoment(tt.variant, tt.dims, 0)
			assert.Zero(t, FirstMoment(tt.variant, tt.dims, r))
			for _, frac := range []float64{0.1, 0.4, 0.7, 0.95} {
				assert.Less(t, FirstMoment(tt.variant, tt.dims, frac*r), qMax)
			}
		})
	}
}
