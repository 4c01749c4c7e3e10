package models

import (
	"time"

	"github.com/google/uuid"
)

// Material types accepted by the registry.
const (
	MaterialTypeFabric = "fabric"
	MaterialTypeJeans  = "jeans"
	MaterialTypeCotton = "cotton"
)

// MinBuyPrice is the lowest purchase price a material may carry.
const MinBuyPrice = 100.0

// ValidMaterialType reports whether t is one of the allowed material types.
func ValidMaterialType(t string) bool {
	switch t {
	case MaterialTypeFabric, MaterialTypeJeans, MaterialTypeCotton:
		return true
	}
	return false
}

type Material struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Code       string    `json:"material_code" db:"material_code"`
	Name       string    `json:"material_name" db:"material_name"`
	Type       string    `json:"material_type" db:"material_type"`
	BuyPrice   float64   `json:"material_buy_price" db:"material_buy_price"`
	SupplierID uuid.UUID `json:"supplier_id" db:"supplier_id"`
	// SupplierName is joined from the suppliers table on read, never stored.
	SupplierName string    `json:"supplier_name" db:"-"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}

// MaterialFilter holds the supported list filters. Only exact-match
// filtering on material_type is offered.
type MaterialFilter struct {
	Type string `query:"material_type"`
}
