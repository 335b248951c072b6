package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventCategory classifies audit events by their primary purpose so sinks can
// route and retain them differently.
type EventCategory string

const (
	// CategoryCompliance covers changes to who holds a seat. These are the
	// records organisers rely on when a seat assignment is disputed.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers administrator authentication.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers catalog maintenance.
	CategoryOperations EventCategory = "operations"
)

// AuditEvent names an action recorded in the audit trail.
type AuditEvent string

const (
	EventRegistrationClaimed AuditEvent = "registration_claimed"
	EventRegistrationDeleted AuditEvent = "registration_deleted"

	EventCommitteeCreated AuditEvent = "committee_created"
	EventCommitteeDeleted AuditEvent = "committee_deleted"
	EventSlotCreated      AuditEvent = "slot_created"
	EventSlotDeleted      AuditEvent = "slot_deleted"

	EventAdminLogin       AuditEvent = "admin_login"
	EventAdminLoginFailed AuditEvent = "admin_login_failed"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventRegistrationClaimed: CategoryCompliance,
	EventRegistrationDeleted: CategoryCompliance,

	EventAdminLogin:       CategorySecurity,
	EventAdminLoginFailed: CategorySecurity,

	EventCommitteeCreated: CategoryOperations,
	EventCommitteeDeleted: CategoryOperations,
	EventSlotCreated:      CategoryOperations,
	EventSlotDeleted:      CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID     `json:"id"`
	Category  EventCategory `json:"category"`
	Action    string        `json:"action"`
	Timestamp time.Time     `json:"timestamp"`
	// Subject is the id of the entity acted upon (registration, committee, slot)
	// or the login name for authentication events.
	Subject   string `json:"subject"`
	Actor     string `json:"actor"`
	Committee string `json:"committee,omitempty"`
	Slot      string `json:"slot,omitempty"`
	Period    string `json:"period,omitempty"`
	Reason    string `json:"reason,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	ClientIP  string `json:"client_ip,omitempty"`
	Device    string `json:"device,omitempty"`
}

// Store persists audit events. The SQL implementation writes into the outbox
// inside the caller's transaction.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// OutboxEntry is an event waiting in the outbox to be relayed.
type OutboxEntry struct {
	ID          uuid.UUID
	EventType   string
	AggregateID string
	Payload     []byte
	CreatedAt   time.Time
}

// Message is what a Publisher ships to its sink.
type Message struct {
	Key     string
	Topic   EventCategory
	Payload []byte
}
