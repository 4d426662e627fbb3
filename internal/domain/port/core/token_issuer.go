package core

// TokenIssuer issues and verifies the self-contained session tokens used by
// the authentication gate. The token is a stateless signed claim of the user
// id; no session state is kept server-side.
type TokenIssuer interface {
	// Issue signs a session token for the given user id
	Issue(userID uint64) (string, error)
	// Verify checks a session token and resolves it to the user id it claims
	Verify(token string) (uint64, error)
}
