package domain

// User is the authenticated user as seen by the client.
type User struct {
	UID         string
	DisplayName string
}
