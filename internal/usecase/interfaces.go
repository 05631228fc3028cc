package usecase

// TokenService issues and verifies bearer tokens that identify a user.
type TokenService interface {
	Issue(userID string) (string, error)
	// Verify returns the user ID carried by a valid, unexpired token.
	Verify(token string) (string, error)
}
