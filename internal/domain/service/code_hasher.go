package service

// CodeHasher hashes one-time login codes for at-rest storage.
type CodeHasher interface {
	// Hash generates a salted hash from a plaintext code.
	Hash(code string) (string, error)

	// Check compares a plaintext code with a stored hash.
	Check(code, hash string) bool
}
