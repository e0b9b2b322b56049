package textcrypt

import (
	"crypto/subtle"
	"fmt"
	"io"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"
	"github.com/PolarWolf314/rcli/internal/genpass"

	"lukechampine.com/blake3"
)

const (
	Blake3KeySize       = 32
	Blake3SignatureSize = 32
)

// Blake3 signs with BLAKE3 in keyed mode.
type Blake3 struct {
	key [Blake3KeySize]byte
}

// NewBlake3 uses the first 32 bytes of key.
func NewBlake3(key []byte) (*Blake3, error) {
	if len(key) < Blake3KeySize {
		return nil, fmt.Errorf("%w: blake3 key needs %d bytes, got %d", kerrors.ErrInvalidKeyLength, Blake3KeySize, len(key))
	}
	b := &Blake3{}
	copy(b.key[:], key[:Blake3KeySize])
	return b, nil
}

// LoadBlake3 reads a raw key file.
func LoadBlake3(path string) (*Blake3, error) {
	key, err := readKeyFile(path)
	if err != nil {
		return nil, err
	}
	return NewBlake3(key)
}

// Sign returns the 32-byte keyed hash of r. The reader is fed straight into
// the hasher; the digest is identical to hashing the buffered input.
func (b *Blake3) Sign(r io.Reader) ([]byte, error) {
	h := blake3.New(Blake3SignatureSize, b.key[:])
	if _, err := io.Copy(h, r); err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrReadInput, err)
	}
	return h.Sum(nil), nil
}

func (b *Blake3) Verify(r io.Reader, sig []byte) (bool, error) {
	digest, err := b.Sign(r)
	if err != nil {
		return false, err
	}
	return subtle.ConstantTimeCompare(digest, sig) == 1, nil
}

// GenerateBlake3Key returns a 32-character printable key from the password
// generator with every character class enabled.
func GenerateBlake3Key() ([][]byte, error) {
	key, err := genpass.Generate(genpass.Options{
		Length: Blake3KeySize,
		Upper:  true,
		Lower:  true,
		Number: true,
		Symbol: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrKeyGenerationFailed, err)
	}
	return [][]byte{[]byte(key)}, nil
}
