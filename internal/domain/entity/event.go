// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxRequestIDLength matches the width of the events.request_id column.
const MaxRequestIDLength = 64

// EventType names a committed registry mutation.
type EventType string

const (
	EventFactoryInitialized          EventType = "factory.initialized"
	EventFactoryFeeUpdated           EventType = "factory.fee_updated"
	EventFactoryFeesWithdrawn        EventType = "factory.fees_withdrawn"
	EventFactoryRegistrationPaused   EventType = "factory.registration_paused"
	EventUserRegistered              EventType = "user.registered"
	EventUserBioUpdated              EventType = "user.bio_updated"
	EventUserUsernameChanged         EventType = "user.username_changed"
	EventVendorRegistered            EventType = "vendor.registered"
	EventVendorDescriptionUpdated    EventType = "vendor.description_updated"
	EventVendorProductAdded          EventType = "vendor.product_added"
	EventVendorProductRemoved        EventType = "vendor.product_removed"
	EventProfileOwnershipTransferred EventType = "profile.ownership_transferred"
)

// String returns the string representation of the EventType.
func (t EventType) String() string {
	return string(t)
}

// Event records a mutation after it has been committed.
type Event struct {
	ID             uuid.UUID    `json:"id"`
	Type           EventType    `json:"type"`
	Kind           RegistryKind `json:"kind"`
	Actor          string       `json:"actor"`
	ProfileName    string       `json:"profile_name,omitempty"`
	ProfileAddress string       `json:"profile_address,omitempty"`
	Amount         uint64       `json:"amount,omitempty"`
	OldValue       string       `json:"old_value,omitempty"`
	NewValue       string       `json:"new_value,omitempty"`
	RequestID      string       `json:"request_id,omitempty"`
	OccurredAt     time.Time    `json:"occurred_at"`
}
