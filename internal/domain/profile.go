package domain

type ProfileID string

// Profile identifies one feed account the client can operate as.
type Profile struct {
	ID      ProfileID
	Handle  string
	Name    string
	Contact string
	Auth    Auth
}
