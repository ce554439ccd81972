package types

import "github.com/google/uuid"

// RegionSummary is the projection returned by the external region service.
// It is never persisted locally.
type RegionSummary struct {
	ID  uuid.UUID `json:"id"`
	DDD string    `json:"ddd"`
}

// RegionResponse is the envelope the region service wraps every payload in.
type RegionResponse struct {
	Success bool           `json:"success"`
	Error   string         `json:"error"`
	Data    *RegionSummary `json:"data"`
}
