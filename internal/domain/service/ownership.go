package service

import (
	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// Decision is the tagged result of an ownership check. Using a dedicated
// type instead of a bare bool keeps callers from mistaking "denied" for an
// infrastructure error.
type Decision int

const (
	// Forbidden denies the mutation: the caller does not own the resource.
	Forbidden Decision = iota

	// Allowed permits the mutation: the caller owns the resource.
	Allowed
)

// AuthorizeMutation decides whether the caller may mutate a resource with
// the given owner. Exact equality only: there is no ownership hierarchy and
// no admin override. Callers must establish that the resource exists before
// consulting the guard.
func AuthorizeMutation(ownerID uuid.UUID, caller entity.Identity) Decision {
	if ownerID == caller.ID {
		return Allowed
	}

	return Forbidden
}
