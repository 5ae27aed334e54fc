package entity

// User is a read-only snapshot of a user document in the external user
// directory. Only the fields this system consumes are modeled.
type User struct {
	ID        string   // Document id in the directory.
	Role      Role     // Classification used for broadcast resolution.
	FCMTokens []string // Registered delivery addresses; may be empty, duplicates are harmless.
}

// HasTokens reports whether the user has at least one registered delivery address.
func (u *User) HasTokens() bool {
	return u != nil && len(u.FCMTokens) > 0
}
