package stress

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexiusacademia/gostress/internal/section"
)

// Case bundles a section definition, a load set, and the ordinates to
// evaluate, as read from a JSON case file. All values are SI (meters,
// newtons, newton-meters).
type Case struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Section shape: "rectangle", "circle", "pipe" or "ibeam"
	Shape      string             `json:"shape"`
	Dimensions section.Dimensions `json:"dimensions"`

	Loads LoadSet `json:"loads"`

	// Ordinates to evaluate, measured from the neutral axis (m)
	Ordinates []float64 `json:"ordinates"`
}

// Variant resolves the case's shape name.
func (c *Case) Variant() (section.Variant, error) {
	return section.ParseVariant(c.Shape)
}

// Validate checks that the case is well formed. Degenerate hollow
// sections (ri >= ro) pass validation: they are a defined case that
// yields zero properties and non-finite stresses downstream.
func (c *Case) Validate() error {
	v, err := c.Variant()
	if err != nil {
		return err
	}
	if err := section.Validate(v, c.Dimensions); err != nil {
		return err
	}
	if len(c.Ordinates) == 0 {
		return fmt.Errorf("case %q must define at least one ordinate", c.Name)
	}
	return nil
}

// Evaluate runs the full pipeline at every ordinate of the case.
func (c *Case) Evaluate() ([]Result, error) {
	v, err := c.Variant()
	if err != nil {
		return nil, err
	}
	results := make([]Result, len(c.Ordinates))
	for i, y := range c.Ordinates {
		results[i] = At(v, c.Dimensions, c.Loads, y)
	}
	return results, nil
}

// LoadCaseFromFile loads a case definition from a JSON file
func LoadCaseFromFile(filepath string) (*Case, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, err
	}

	var cs Case
	if err := json.Unmarshal(data, &cs); err != nil {
		return nil, err
	}

	if err := cs.Validate(); err != nil {
		return nil, err
	}

	return &cs, nil
}
