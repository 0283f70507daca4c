package request

import "controle_pragas/internal/domain/entities"

type ProfileRequest struct {
	Name  string `json:"name" binding:"required"`
	Unit  string `json:"unit" binding:"required"`
	Role  string `json:"role" binding:"required"`
	Email string `json:"email"`
}

func (r ProfileRequest) ToEntity() entities.UserProfile {
	return entities.UserProfile{
		Name:  r.Name,
		Unit:  r.Unit,
		Role:  entities.Role(r.Role),
		Email: r.Email,
	}
}
