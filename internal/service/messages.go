package service

import (
	"fmt"

	"github.com/Chodoro/psusphere/internal/models"
)

// createdMessage is shown once after a successful create.
func createdMessage(entity models.Entity) string {
	return fmt.Sprintf("%s created successfully!", entity.Label())
}

// updatedMessage names the record by its updated display value.
func updatedMessage(entity models.Entity, name string) string {
	return fmt.Sprintf(`%s "%s" updated successfully!`, entity.Label(), name)
}

func deletedMessage(entity models.Entity) string {
	return fmt.Sprintf("%s deleted successfully!", entity.Label())
}
