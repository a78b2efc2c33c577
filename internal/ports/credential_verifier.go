package ports

// CredentialVerifier decides whether a supplied credential grants admin
// privileges. The core only ever consumes the boolean.
type CredentialVerifier interface {
	Verify(password string) bool
}
