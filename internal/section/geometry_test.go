package section

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePropertiesRectangle(t *testing.T) {
	props := ComputeProperties(Rectangle, Dimensions{B: 0.05, H: 0.1})

	assert.InEpsilon(t, 0.005, props.Area, 1e-12)
	assert.InEpsilon(t, 4.1666666666666667e-6, props.Inertia, 1e-9)
	// b·h³/3, the kept approximation, not the exact torsion constant
	assert.InEpsilon(t, 1.6666666666666667e-5, props.PolarInertia, 1e-9)
	assert.InEpsilon(t, 0.05, props.OuterRadius, 1e-12)
	assert.InEpsilon(t, 0.05, props.ShearThickness, 1e-12)
}

func TestComputePropertiesSolidCircle(t *testing.T) {
	props := ComputeProperties(SolidCircle, Dimensions{D: 0.08})

	assert.InEpsilon(t, 5.026548245743669e-3, props.Area, 1e-9)
	assert.InEpsilon(t, 2.0106192982974678e-6, props.Inertia, 1e-9)
	assert.InEpsilon(t, 4.0212385965949356e-6, props.PolarInertia, 1e-9)
	assert.InEpsilon(t, 0.04, props.OuterRadius, 1e-12)
	// diameter as thickness proxy
	assert.InEpsilon(t, 0.08, props.ShearThickness, 1e-12)
}

func TestComputePropertiesHollowCircle(t *testing.T) {
	props := ComputeProperties(HollowCircle, Dimensions{Ro: 0.04, Ri: 0.032})

	assert.InEpsilon(t, math.Pi*(0.04*0.04-0.032*0.032), props.Area, 1e-12)
	assert.InEpsilon(t, 1.1870696337e-6, props.Inertia, 1e-9)
	assert.InEpsilon(t, 2.3741392674e-6, props.PolarInertia, 1e-9)
	assert.InEpsilon(t, 0.04, props.OuterRadius, 1e-12)
	assert.InEpsilon(t, 0.008, props.ShearThickness, 1e-9)
}

func TestComputePropertiesHollowCircleDegenerate(t *testing.T) {
	// Ri >= Ro is a defined degenerate case yielding exact zeros, never
	// a panic or an error.
	props := ComputeProperties(HollowCircle, Dimensions{Ro: 0.04, Ri: 0.08})

	assert.Zero(t, props.Area)
	assert.Zero(t, props.Inertia)
	assert.Zero(t, props.PolarInertia)
	assert.Zero(t, props.ShearThickness)
	assert.Equal(t, 0.04, props.OuterRadius)
}

func TestComputePropertiesIBeam(t *testing.T) {
	props := ComputeProperties(IBeam, Dimensions{H: 0.2, Bf: 0.1, Tf: 0.02, Tw: 0.01})

	// 2·bf·tf + tw·(h − 2·tf) = 0.004 + 0.0016
	assert.InEpsilon(t, 0.0056, props.Area, 1e-12)
	// [bf·h³ − (bf−tw)·(h−2tf)³] / 12
	assert.InEpsilon(t, 3.5946666666666667e-5, props.Inertia, 1e-9)
	// J reuses I for the open thin-walled shape
	assert.Equal(t, props.Inertia, props.PolarInertia)
	assert.InEpsilon(t, 0.1, props.OuterRadius, 1e-12)
	assert.InEpsilon(t, 0.01, props.ShearThickness, 1e-12)
}

func TestComputePropertiesNonNegative(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		dims    Dimensions
	}{
		{"rectangle", Rectangle, Dimensions{B: 0.03, H: 0.2}},
		{"circle", SolidCircle, Dimensions{D: 0.05}},
		{"pipe", HollowCircle, Dimensions{Ro: 0.05, Ri: 0.04}},
		{"ibeam", IBeam, Dimensions{H: 0.3, Bf: 0.15, Tf: 0.015, Tw: 0.008}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := ComputeProperties(tt.variant, tt.dims)
			assert.Greater(t, props.Area, 0.0)
			assert.Greater(t, props.Inertia, 0.0)
			assert.Greater(t, props.PolarInertia, 0.0)
			assert.Greater(t, props.OuterRadius, 0.0)
			assert.Greater(t, props.ShearThickness, 0.0)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		dims    Dimensions
		wantErr bool
	}{
		{"valid rectangle", Rectangle, Dimensions{B: 0.05, H: 0.1}, false},
		{"zero width", Rectangle, Dimensions{B: 0, H: 0.1}, true},
		{"negative height", Rectangle, Dimensions{B: 0.05, H: -0.1}, true},
		{"valid circle", SolidCircle, Dimensions{D: 0.08}, false},
		{"zero diameter", SolidCircle, Dimensions{}, true},
		{"valid pipe", HollowCircle, Dimensions{Ro: 0.04, Ri: 0.03}, false},
		// degenerate bore passes validation: it is a defined case
		{"degenerate pipe", HollowCircle, Dimensions{Ro: 0.04, Ri: 0.08}, false},
		{"negative bore", HollowCircle, Dimensions{Ro: 0.04, Ri: -0.01}, true},
		{"valid ibeam", IBeam, Dimensions{H: 0.2, Bf: 0.1, Tf: 0.02, Tw: 0.01}, false},
		{"flanges overlap", IBeam, Dimensions{H: 0.03, Bf: 0.1, Tf: 0.02, Tw: 0.01}, true},
		{"missing web", IBeam, Dimensions{H: 0.2, Bf: 0.1, Tf: 0.02}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.variant, tt.dims)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseVariant(t *testing.T) {
	for name, want := range map[string]Variant{
		"rectangle": Rectangle,
		"rect":      Rectangle,
		"circle":    SolidCircle,
		"pipe":      HollowCircle,
		"tube":      HollowCircle,
		"ibeam":     IBeam,
		"i-beam":    IBeam,
	} {
		v, err := ParseVariant(name)
		assert.NoError(t, err, name)
		assert.Equal(t, want, v, name)
	}

	_, err := ParseVariant("hexagon")
	assert.Error(t, err)
}
