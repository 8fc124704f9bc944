package auth

import (
	"github.com/google/uuid"
)

// Actor is the authenticated caller as the services see it: an external
// identity plus whatever the identity provider granted it. Account storage
// itself lives outside this backend.
type Actor struct {
	ID          uuid.UUID
	State       UserState
	permissions map[Permission]struct{}
}

func NewActor(id uuid.UUID, state UserState, perms []Permission) Actor {
	set := make(map[Permission]struct{}, len(perms))
	for _, p := range perms {
		set[p] = struct{}{}
	}
	return Actor{ID: id, State: state, permissions: set}
}

func (a Actor) Has(p Permission) bool {
	_, ok := a.permissions[p]
	return ok
}

// ActorFromClaims maps validated JWT claims to an Actor.
func ActorFromClaims(claims *JwtClaims) (Actor, error) {
	if claims == nil {
		return Actor{}, ErrNotAuthenticated()
	}
	id, err := uuid.Parse(claims.UUID)
	if err != nil {
		return Actor{}, ErrNotAuthenticated().SetDebug(err)
	}
	perms := make([]Permission, 0, len(claims.Scopes))
	for _, s := range claims.Scopes {
		perms = append(perms, Permission(s))
	}
	return NewActor(id, UserState(claims.State), perms), nil
}
