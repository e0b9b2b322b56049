package textcrypt

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"
	"github.com/PolarWolf314/rcli/internal/utils"

	"filippo.io/edwards25519"
)

const (
	Ed25519SeedSize      = ed25519.SeedSize
	Ed25519PublicKeySize = ed25519.PublicKeySize
	Ed25519SignatureSize = ed25519.SignatureSize
)

// Ed25519Signer signs with an Ed25519 secret key.
type Ed25519Signer struct {
	key ed25519.PrivateKey
}

// Ed25519Verifier verifies with an Ed25519 public key.
type Ed25519Verifier struct {
	key ed25519.PublicKey
}

// NewEd25519Signer takes the 32-byte seed form of the secret key.
func NewEd25519Signer(seed []byte) (*Ed25519Signer, error) {
	if len(seed) != Ed25519SeedSize {
		return nil, fmt.Errorf("%w: ed25519 secret key needs %d bytes, got %d", kerrors.ErrInvalidKeyLength, Ed25519SeedSize, len(seed))
	}
	return &Ed25519Signer{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// NewEd25519Verifier takes a 32-byte compressed public key and rejects
// encodings that are not points on the curve.
func NewEd25519Verifier(pub []byte) (*Ed25519Verifier, error) {
	if len(pub) != Ed25519PublicKeySize {
		return nil, fmt.Errorf("%w: ed25519 public key needs %d bytes, got %d", kerrors.ErrInvalidKeyLength, Ed25519PublicKeySize, len(pub))
	}
	if _, err := new(edwards25519.Point).SetBytes(pub); err != nil {
		return nil, fmt.Errorf("%w: ed25519 public key: %v", kerrors.ErrInvalidKey, err)
	}
	key := make(ed25519.PublicKey, Ed25519PublicKeySize)
	copy(key, pub)
	return &Ed25519Verifier{key: key}, nil
}

func LoadEd25519Signer(path string) (*Ed25519Signer, error) {
	seed, err := readKeyFile(path)
	if err != nil {
		return nil, err
	}
	return NewEd25519Signer(seed)
}

func LoadEd25519Verifier(path string) (*Ed25519Verifier, error) {
	pub, err := readKeyFile(path)
	if err != nil {
		return nil, err
	}
	return NewEd25519Verifier(pub)
}

// PublicKey returns the verifier matching this signer.
func (s *Ed25519Signer) PublicKey() *Ed25519Verifier {
	return &Ed25519Verifier{key: s.key.Public().(ed25519.PublicKey)}
}

// Bytes returns a copy of the 32-byte public key.
func (v *Ed25519Verifier) Bytes() []byte {
	return append([]byte(nil), v.key...)
}

func (s *Ed25519Signer) Sign(r io.Reader) ([]byte, error) {
	msg, err := utils.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ed25519.Sign(s.key, msg), nil
}

// Verify fails with ErrInvalidSignatureLength before touching the message
// when sig is not 64 bytes. Any other mismatch is false.
func (v *Ed25519Verifier) Verify(r io.Reader, sig []byte) (bool, error) {
	if len(sig) != Ed25519SignatureSize {
		return false, fmt.Errorf("%w: ed25519 signature needs %d bytes, got %d", kerrors.ErrInvalidSignatureLength, Ed25519SignatureSize, len(sig))
	}
	msg, err := utils.ReadAll(r)
	if err != nil {
		return false, err
	}
	return ed25519.Verify(v.key, msg, sig), nil
}

// GenerateEd25519Keypair returns the secret seed then the public key.
func GenerateEd25519Keypair() ([][]byte, error) {
	seed := make([]byte, Ed25519SeedSize)
	if _, err := io.ReadFull(rand.Reader, seed); err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrKeyGenerationFailed, err)
	}
	signer, err := NewEd25519Signer(seed)
	if err != nil {
		return nil, err
	}
	return [][]byte{seed, signer.PublicKey().Bytes()}, nil
}
