package users

// User is a stored account record. The JSON tags define the on-disk layout
// of the store file, so they must stay stable.
//
// PasswordHash never leaves the backend; transports serialize only the
// public fields via Public().
type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
}

// PublicUser is the outward-facing shape of a user record.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Public strips the credential fields for API responses.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Name: u.Name, Email: u.Email}
}
