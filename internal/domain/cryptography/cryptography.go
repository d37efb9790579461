// Package cryptography declares the hashing and token primitives the
// application layer depends on. Implementations live in pkg/helpers.
package cryptography

// Hasher produces a one-way hash of a plaintext value.
type Hasher interface {
	Hash(value string) (string, error)
}

// HashComparer reports whether value matches a hash produced by a Hasher.
// A mismatch is (false, nil); errors are reserved for comparer failures.
type HashComparer interface {
	Compare(value, hash string) (bool, error)
}

// Encrypter turns a value (a user id) into an opaque access token.
type Encrypter interface {
	Encrypt(value string) (string, error)
}

// Decrypter recovers the value an Encrypter sealed into a token.
type Decrypter interface {
	Decrypt(token string) (string, error)
}
