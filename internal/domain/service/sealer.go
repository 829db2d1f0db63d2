package service

import "context"

// Sealer encrypts values that must not sit in the redirect state store in clear text.
type Sealer interface {
	Seal(ctx context.Context, plaintext []byte) ([]byte, error)
	Open(ctx context.Context, ciphertext []byte) ([]byte, error)
}
