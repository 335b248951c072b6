package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Participant is one member of a registered pair.
type Participant struct {
	Name    string `json:"name" validate:"required,max=128"`
	Contact string `json:"contact,omitempty" validate:"max=64"`
	Grade   string `json:"grade" validate:"required,max=64"`
	Program string `json:"program" validate:"required,max=128"`
}

// Normalize trims every field.
func (p Participant) Normalize() Participant {
	return Participant{
		Name:    strings.TrimSpace(p.Name),
		Contact: strings.TrimSpace(p.Contact),
		Grade:   strings.TrimSpace(p.Grade),
		Program: strings.TrimSpace(p.Program),
	}
}

// Registration binds a participant pair to exactly one slot.
// It is created once per successful claim and never updated.
type Registration struct {
	ID           uuid.UUID   `json:"id"`
	ParticipantA Participant `json:"participant_a"`
	ParticipantB Participant `json:"participant_b"`
	Period       Period      `json:"period"`
	CommitteeID  uuid.UUID   `json:"committee_id"`
	SlotID       uuid.UUID   `json:"slot_id"`
	CreatedAt    time.Time   `json:"created_at"`
}

// RegistrationView is a registration with committee and slot names resolved.
type RegistrationView struct {
	Registration
	CommitteeName string `json:"committee_name"`
	SlotName      string `json:"slot_name"`
}

// ClaimRequest asks for one slot on behalf of a participant pair.
type ClaimRequest struct {
	Period       string      `json:"period" validate:"required"`
	CommitteeID  string      `json:"committee_id" validate:"required,uuid"`
	SlotID       string      `json:"slot_id" validate:"required,uuid"`
	ParticipantA Participant `json:"participant_a"`
	ParticipantB Participant `json:"participant_b"`
}

// Normalize trims every field of the request.
func (r ClaimRequest) Normalize() ClaimRequest {
	return ClaimRequest{
		Period:       strings.TrimSpace(r.Period),
		CommitteeID:  strings.TrimSpace(r.CommitteeID),
		SlotID:       strings.TrimSpace(r.SlotID),
		ParticipantA: r.ParticipantA.Normalize(),
		ParticipantB: r.ParticipantB.Normalize(),
	}
}

// Receipt confirms a successful claim. Names are read inside the claiming
// transaction, so they describe exactly what was committed.
type Receipt struct {
	RegistrationID   uuid.UUID `json:"registration_id"`
	Period           Period    `json:"period"`
	CommitteeName    string    `json:"committee_name"`
	SlotName         string    `json:"slot_name"`
	ParticipantAName string    `json:"participant_a_name"`
	ParticipantBName string    `json:"participant_b_name"`
	CreatedAt        time.Time `json:"created_at"`
}

// DeleteResult reports what a registration delete changed.
type DeleteResult struct {
	RegistrationID uuid.UUID `json:"registration_id"`
	SlotID         uuid.UUID `json:"slot_id"`
	SlotReleased   bool      `json:"slot_released"`
}
