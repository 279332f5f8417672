package models

// Credential is the persisted authentication bundle. It is saved and cleared
// as a whole: either every field is present or none is.
//
// Password is kept only so the client can silently log in again when the
// server rejects an expired session.
type Credential struct {
	Token    string
	UserID   string
	Username string
	Password string
}

// IsComplete reports whether every field of the bundle is set.
func (c Credential) IsComplete() bool {
	return c.Token != "" && c.UserID != "" && c.Username != "" && c.Password != ""
}

// IsLoggedIn reports whether the bundle carries a session: a token and a user
// id. The token is not validated.
func (c Credential) IsLoggedIn() bool {
	return c.Token != "" && c.UserID != ""
}

// CanRelogin reports whether the bundle carries enough to log in again.
func (c Credential) CanRelogin() bool {
	return c.Username != "" && c.Password != ""
}
