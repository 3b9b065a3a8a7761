package handlers

import (
	"time"

	"github.com/ghuser/itemapi/services/item/domain/models"
)

// createdAtLayout renders timestamps in UTC with millisecond precision,
// e.g. 2024-01-15T10:30:00.000Z.
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// ItemResponse is the JSON shape of an Item.
type ItemResponse struct {
	ID          string `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string `json:"name"        example:"Widget"`
	Description string `json:"description" example:"A small widget"`
	CreatedAt   string `json:"createdAt"   example:"2024-01-15T10:30:00.000Z"`
} // @name Item

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"Item not found"`
} // @name ErrorResponse

func toItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name.String(),
		Description: item.Description.String(),
		CreatedAt:   formatCreatedAt(item.CreatedAt),
	}
}

func formatCreatedAt(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}
