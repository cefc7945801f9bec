package domain

import (
	"fmt"
	"strings"
)

// Material is an inventory line. Materials carry no stable identifier; they
// are referenced by name and list position.
type Material struct {
	Name     string      `json:"name"`
	Status   StockStatus `json:"status"`
	Quantity int         `json:"quantity"`
}

// Validate checks the required fields.
func (m *Material) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: material name is required", ErrValidation)
	}
	if m.Quantity < 0 {
		return fmt.Errorf("%w: material quantity cannot be negative", ErrValidation)
	}
	return nil
}

// SeedMaterials is the default inventory installed on first run when the
// materials key is absent from the store.
func SeedMaterials() []Material {
	return []Material{
		{Name: "Cement", Status: StockIn, Quantity: 200},
		{Name: "Steel", Status: StockOut, Quantity: 0},
		{Name: "Bricks", Status: StockIn, Quantity: 500},
		{Name: "Sand", Status: StockIn, Quantity: 300},
	}
}
