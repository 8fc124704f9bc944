package auth

// Guard is the authorization gate every mutating or sensitive read operation
// passes through before touching storage. Requirements are declared as data
// (operation name -> permission) in each service rather than scattered
// through operation bodies.
type Guard interface {
	// Require fails with an access-denied error unless the actor holds the
	// permission and is in the required account state.
	Require(actor Actor, perm Permission, state UserState) error
}

type claimsGuard struct{}

// NewGuard returns the claims-backed Guard used in production: the
// permission set and account state are whatever the identity provider signed
// into the token.
func NewGuard() Guard {
	return claimsGuard{}
}

func (claimsGuard) Require(actor Actor, perm Permission, state UserState) error {
	if !actor.Has(perm) {
		return ErrPermissionDenied()
	}
	if actor.State != state {
		return ErrWrongAccountState()
	}
	return nil
}
