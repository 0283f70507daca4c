package entities

import "time"

type HiringDocType string

const (
	HiringDocNF  HiringDocType = "nf"
	HiringDocDoc HiringDocType = "doc"
)

func (t HiringDocType) Valid() bool {
	return t == HiringDocNF || t == HiringDocDoc
}

// HiringDoc is an entry of the contract document archive (invoices and contract
// documents). The file itself lives in external blob storage; only its URL is kept.
//
// Storage model (DynamoDB):
//   - PK: id
type HiringDoc struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	URL       string        `json:"url"`
	Type      HiringDocType `json:"type"`
	Size      int64         `json:"size,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
