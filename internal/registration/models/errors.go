package models

import "fmt"

// DependentsError explains why a committee or slot delete was blocked.
type DependentsError struct {
	Entity        string
	Slots         int
	Registrations int
}

func (e *DependentsError) Error() string {
	if e.Entity == "slot" {
		return fmt.Sprintf("slot is referenced by %d registration(s)", e.Registrations)
	}
	return fmt.Sprintf("%s has %d slot(s) and %d registration(s)", e.Entity, e.Slots, e.Registrations)
}

// Details exposes the counts to transports.
func (e *DependentsError) Details() map[string]int {
	if e.Entity == "slot" {
		return map[string]int{"registrations": e.Registrations}
	}
	return map[string]int{"slots": e.Slots, "registrations": e.Registrations}
}

// HasDependents reports whether anything blocks the delete.
func (e *DependentsError) HasDependents() bool {
	return e.Slots > 0 || e.Registrations > 0
}
