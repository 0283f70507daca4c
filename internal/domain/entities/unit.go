package entities

import (
	"time"

	"controle_pragas/internal/domain/money"

	"github.com/shopspring/decimal"
)

type FiscalInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Ramal string `json:"ramal"`
}

// Unit is a facility under the pest-control contract.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (name-index): name
//
// Units are referenced by name from profiles and evaluations; there is no enforced
// foreign key.
type Unit struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	SquareMeters string     `json:"square_meters"`
	Address      string     `json:"address"`
	Titular      FiscalInfo `json:"titular"`
	Substituto   FiscalInfo `json:"substituto"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FloorArea parses the decimal-comma floor area; malformed values read as zero.
func (u Unit) FloorArea() decimal.Decimal {
	return money.ParseDecimal(u.SquareMeters)
}
