package models

// User is a registered account. The hash stays server-side.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // don't expose hash
	Admin        bool   `json:"admin"`
}
