// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"

	"github.com/ghuser/itemapi/services/item/domain/models"
)

// ValidateItemForCreation checks a fully-constructed Item before it is stored.
// Name and description only need to be present; their content is not
// inspected.
func ValidateItemForCreation(item *models.Item) error {
	if item == nil {
		return fmt.Errorf("item cannot be nil")
	}

	if item.ID == "" {
		return fmt.Errorf("id must be set")
	}

	if item.Name == "" {
		return fmt.Errorf("name must be set")
	}

	if item.Description == "" {
		return fmt.Errorf("description must be set")
	}

	if item.CreatedAt.IsZero() {
		return fmt.Errorf("created_at must be set")
	}

	return nil
}
