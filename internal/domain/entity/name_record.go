// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NameRecord maps a unique name to the profile that holds it.
type NameRecord struct {
	Kind      RegistryKind
	Name      string
	ProfileID uuid.UUID
	CreatedAt time.Time
}
