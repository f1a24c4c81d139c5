package tft

import (
	"fmt"
	"tftstats/pkg/regions"
)

// MissingFieldError is returned when a required key is absent or doesn't hold the expected type.
// Construction of the enclosing entity is aborted.
type MissingFieldError struct {
	Entity string
	Field  string
	Reason string
}

func (e *MissingFieldError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid field %q on %s: %s", e.Field, e.Entity, e.Reason)
	}
	return fmt.Sprintf("missing required field %q on %s", e.Field, e.Entity)
}

// DerivationError is returned when a soft derived field couldn't be computed from its source.
type DerivationError struct {
	Field string
	Input string
}

func (e *DerivationError) Error() string {
	return fmt.Sprintf("couldn't derive %s from %q", e.Field, e.Input)
}

// PlacementCollisionError is returned when two participants share the same placement.
type PlacementCollisionError struct {
	Placement int
	First     string
	Second    string
}

func (e *PlacementCollisionError) Error() string {
	return fmt.Sprintf("placement %d is shared by %s and %s", e.Placement, e.First, e.Second)
}

// UnknownRegionError is the routing table error, aliased so callers only need this package.
type UnknownRegionError = regions.UnknownRegionError
