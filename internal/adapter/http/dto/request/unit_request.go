package request

import "controle_pragas/internal/domain/entities"

type FiscalInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Ramal string `json:"ramal"`
}

func (r FiscalInfoRequest) toEntity() entities.FiscalInfo {
	return entities.FiscalInfo{Name: r.Name, Email: r.Email, Ramal: r.Ramal}
}

type UnitRequest struct {
	Name         string            `json:"name" binding:"required"`
	SquareMeters string            `json:"square_meters" binding:"required"`
	Address      string            `json:"address"`
	Titular      FiscalInfoRequest `json:"titular"`
	Substituto   FiscalInfoRequest `json:"substituto"`
}

func (r UnitRequest) ToEntity() entities.Unit {
	return entities.Unit{
		Name:         r.Name,
		SquareMeters: r.SquareMeters,
		Address:      r.Address,
		Titular:      r.Titular.toEntity(),
		Substituto:   r.Substituto.toEntity(),
	}
}
