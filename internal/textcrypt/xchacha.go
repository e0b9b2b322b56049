package textcrypt

import (
	"crypto/rand"
	"fmt"
	"io"
	"os"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"
	"github.com/PolarWolf314/rcli/internal/utils"

	"golang.org/x/crypto/chacha20poly1305"
)

const (
	XChaCha20Poly1305KeySize   = chacha20poly1305.KeySize
	XChaCha20Poly1305NonceSize = chacha20poly1305.NonceSizeX
	XChaCha20Poly1305TagSize   = chacha20poly1305.Overhead

	// MinEnvelopeSize is the envelope length of an empty plaintext.
	MinEnvelopeSize = XChaCha20Poly1305NonceSize + XChaCha20Poly1305TagSize
)

// XChaCha20Poly1305Key encrypts and decrypts envelopes.
type XChaCha20Poly1305Key struct {
	key [XChaCha20Poly1305KeySize]byte
}

func NewXChaCha20Poly1305Key(key []byte) (*XChaCha20Poly1305Key, error) {
	if len(key) != XChaCha20Poly1305KeySize {
		return nil, fmt.Errorf("%w: xchacha20poly1305 key needs %d bytes, got %d", kerrors.ErrInvalidKeyLength, XChaCha20Poly1305KeySize, len(key))
	}
	k := &XChaCha20Poly1305Key{}
	copy(k.key[:], key)
	return k, nil
}

// LoadXChaCha20Poly1305Key reads base64 key text from the file at source.
// When no regular file exists there, source itself is taken as the base64
// key text. A literal that happens to name an existing file is read as a
// path.
func LoadXChaCha20Poly1305Key(source string) (*XChaCha20Poly1305Key, error) {
	text := source
	if utils.IsRegularFile(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", kerrors.ErrKeyNotFound, err)
		}
		text = string(data)
	}
	key, err := DecodeText(text)
	if err != nil {
		return nil, fmt.Errorf("decoding xchacha20poly1305 key: %w", err)
	}
	return NewXChaCha20Poly1305Key(key)
}

// Bytes returns a copy of the raw key.
func (k *XChaCha20Poly1305Key) Bytes() []byte {
	out := make([]byte, XChaCha20Poly1305KeySize)
	copy(out, k.key[:])
	return out
}

// Encrypt reads r completely and returns nonce || ciphertext || tag.
func (k *XChaCha20Poly1305Key) Encrypt(r io.Reader) ([]byte, error) {
	plaintext, err := utils.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return k.Seal(plaintext)
}

// Decrypt reads a raw envelope from r and opens it.
func (k *XChaCha20Poly1305Key) Decrypt(r io.Reader) ([]byte, error) {
	envelope, err := utils.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return k.Open(envelope)
}

// Seal encrypts plaintext under a fresh random nonce.
func (k *XChaCha20Poly1305Key) Seal(plaintext []byte) ([]byte, error) {
	aead, err := chacha20poly1305.NewX(k.key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrEncryptFailed, err)
	}

	nonce := make([]byte, XChaCha20Poly1305NonceSize, XChaCha20Poly1305NonceSize+len(plaintext)+XChaCha20Poly1305TagSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("%w: reading nonce: %w", kerrors.ErrEncryptFailed, err)
	}

	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open splits the first 24 bytes off as the nonce and decrypts the rest.
func (k *XChaCha20Poly1305Key) Open(envelope []byte) ([]byte, error) {
	if len(envelope) < MinEnvelopeSize {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", kerrors.ErrInvalidEnvelope, MinEnvelopeSize, len(envelope))
	}

	aead, err := chacha20poly1305.NewX(k.key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrInvalidKey, err)
	}

	nonce, ciphertext := envelope[:XChaCha20Poly1305NonceSize], envelope[XChaCha20Poly1305NonceSize:]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrAuthenticationFailed, err)
	}
	return plaintext, nil
}

// GenerateXChaCha20Poly1305Key returns a fresh 256-bit key.
func GenerateXChaCha20Poly1305Key() ([][]byte, error) {
	key := make([]byte, XChaCha20Poly1305KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrKeyGenerationFailed, err)
	}
	return [][]byte{key}, nil
}
