package textcrypt

import "io"

// Signer produces a signature over everything read from r.
type Signer interface {
	Sign(r io.Reader) ([]byte, error)
}

// Verifier checks sig against everything read from r. A mismatch is
// (false, nil); errors are reserved for input that could not be checked.
type Verifier interface {
	Verify(r io.Reader, sig []byte) (bool, error)
}

// Encryptor seals everything read from r into an envelope.
type Encryptor interface {
	Encrypt(r io.Reader) ([]byte, error)
}

// Decryptor opens an envelope read from r.
type Decryptor interface {
	Decrypt(r io.Reader) ([]byte, error)
}

// SymmetricKey is key material that both encrypts and decrypts.
type SymmetricKey interface {
	Encryptor
	Decryptor
	Bytes() []byte
}

// KeyLoader builds a key-bearing value from a key source, usually a path.
type KeyLoader[T any] func(source string) (T, error)

// KeyGenerator returns fresh key material: one block for symmetric schemes,
// secret then public for asymmetric ones.
type KeyGenerator func() ([][]byte, error)

var (
	_ Signer    = (*Blake3)(nil)
	_ Verifier  = (*Blake3)(nil)
	_ Signer    = (*Ed25519Signer)(nil)
	_ Verifier  = (*Ed25519Verifier)(nil)
	_ Encryptor = (*XChaCha20Poly1305Key)(nil)
	_ Decryptor = (*XChaCha20Poly1305Key)(nil)

	_ SymmetricKey = (*XChaCha20Poly1305Key)(nil)

	_ KeyLoader[*Blake3]               = LoadBlake3
	_ KeyLoader[*Ed25519Signer]        = LoadEd25519Signer
	_ KeyLoader[*Ed25519Verifier]      = LoadEd25519Verifier
	_ KeyLoader[*XChaCha20Poly1305Key] = LoadXChaCha20Poly1305Key

	_ KeyGenerator = GenerateBlake3Key
	_ KeyGenerator = GenerateEd25519Keypair
	_ KeyGenerator = GenerateXChaCha20Poly1305Key
)
