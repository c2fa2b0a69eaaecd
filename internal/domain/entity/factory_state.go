// Package entity contains the core business objects of the project.
package entity

import "time"

// FactoryState is the singleton configuration and fee vault of one registry.
type FactoryState struct {
	Kind               RegistryKind `json:"kind"`
	Admin              string       `json:"admin"`                // Address allowed to change the fee, withdraw and pause.
	RegistrationFee    uint64       `json:"registration_fee"`     // Fee charged for each new registration.
	TotalFeesCollected uint64       `json:"total_fees_collected"` // Current vault balance.
	EntityCount        uint64       `json:"entity_count"`         // Number of profiles ever registered.
	Paused             bool         `json:"paused"`               // Registration gate, vendor registry only.
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// IsAdmin reports whether address controls this factory.
func (f *FactoryState) IsAdmin(address string) bool {
	return f.Admin == address
}
