package domain

// CompositeKey is the master key material used to unlock a database.
// A nil key asks the host to open without supplied credentials.
type CompositeKey struct {
	// Password is the master password.
	Password string

	// KeyFile is the path to a key file.
	KeyFile string
}

// IsEmpty returns true if no key material is set.
func (k *CompositeKey) IsEmpty() bool {
	return k == nil || (k.Password == "" && k.KeyFile == "")
}
