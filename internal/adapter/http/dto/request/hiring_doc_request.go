package request

import "controle_pragas/internal/domain/entities"

// HiringDocRequest registers a file already uploaded to blob storage.
type HiringDocRequest struct {
	Name string `json:"name" binding:"required"`
	URL  string `json:"url" binding:"required"`
	Type string `json:"type" binding:"required"`
	Size int64  `json:"size"`
}

func (r HiringDocRequest) ToEntity() entities.HiringDoc {
	return entities.HiringDoc{
		Name: r.Name,
		URL:  r.URL,
		Type: entities.HiringDocType(r.Type),
		Size: r.Size,
	}
}
