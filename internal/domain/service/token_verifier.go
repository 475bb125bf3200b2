package service

// TokenVerifier validates bearer tokens issued by the identity provider.
type TokenVerifier interface {
	// Verify returns the subject of a valid access token.
	Verify(tokenString string) (string, error)
}
