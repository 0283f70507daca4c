package response

import (
	"controle_pragas/internal/domain/entities"
	"controle_pragas/internal/usecase"
)

type AlertPageResponse struct {
	Items      []entities.SystemAlert `json:"items"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	Total      int                    `json:"total"`
	TotalPages int                    `json:"total_pages"`
}

func FromAlertPage(p usecase.AlertPage) AlertPageResponse {
	items := p.Items
	if items == nil {
		items = []entities.SystemAlert{}
	}
	return AlertPageResponse{
		Items:      items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		Total:      p.Total,
		TotalPages: p.TotalPages,
	}
}
