package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores return these (optionally wrapped)
// so services can translate them into domain errors.
//
// These represent factual states about rows, not validation failures:
//   - ErrNotFound: row does not exist
//   - ErrConflict: a conditional write matched nothing, or a uniqueness constraint fired
//   - ErrHasDependents: a delete was refused because dependent rows still reference it
//   - ErrUnavailable: lock wait exceeded, database busy, or serialization failure
//
// For validation errors (bad input, missing fields), use pkg/platform/validation.
var (
	ErrNotFound      = errors.New("not found")
	ErrConflict      = errors.New("conflict")
	ErrHasDependents = errors.New("has dependents")
	ErrUnavailable   = errors.New("unavailable")
)
