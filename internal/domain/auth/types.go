// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.
package auth

// User is the credential record the auth subsystem works with.
// It is owned by the relational credential store and consumed read-only;
// the same shape is serialized as the session payload at login time, so a
// session may go stale relative to later edits of the user row.
type User struct {
	ID       int    `db:"id"       json:"id"`
	Username string `db:"username" json:"username"`

	// PasswordDigest is the stored SHA-1 hex digest of the password.
	// The empty string is a sentinel meaning "no password required"
	// (bootstrap accounts). It rides along in the session payload but is
	// never re-checked after login.
	PasswordDigest string `db:"password" json:"password"`
}

// RequiresPassword reports whether a password check applies to this user.
func (u User) RequiresPassword() bool { return u.PasswordDigest != "" }
