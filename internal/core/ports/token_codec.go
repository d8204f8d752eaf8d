package ports

// TokenCodec issues and verifies signed, time-bound bearer tokens.
type TokenCodec interface {
	// Issue creates a token for the given subject, stamped with the current
	// time and the configured lifetime.
	Issue(subject string) (string, error)
	// Verify returns the subject of a valid token. Failures are
	// domain.ErrTokenExpired for a well-formed, correctly signed but stale
	// token, and domain.ErrTokenInvalid for everything else.
	Verify(token string) (string, error)
}
