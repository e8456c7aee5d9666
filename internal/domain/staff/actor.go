package staff

// Actor is the caller identity handed to the ledger core by the session layer.
// Credentials are never checked here; Staff is the already-established capability.
type Actor struct {
	Identity string
	Staff    bool
}

func Guest() Actor {
	return Actor{}
}

func Member(identity string) Actor {
	return Actor{Identity: identity, Staff: identity != ""}
}

func (a Actor) IsStaff() bool {
	return a.Staff && a.Identity != ""
}
