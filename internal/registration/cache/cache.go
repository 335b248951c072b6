// Package cache holds short-lived copies of the public availability listings.
// Entries may be stale for up to the TTL; the claim transaction stays
// authoritative. Every successful write calls Invalidate.
package cache

import (
	"github.com/google/uuid"

	"onutec/internal/registration/models"
)

func committeesKey(p models.Period) string { return "committees:" + string(p) }

func slotsKey(committeeID uuid.UUID) string { return "slots:" + committeeID.String() }
