package types

import "github.com/google/uuid"

// ContactCreatedEvent is the snapshot published when a contact is created.
// Durable persistence of the contact is owned by the consumer of this event.
type ContactCreatedEvent struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email"`
	RegionID uuid.UUID `json:"region_id"`
}
