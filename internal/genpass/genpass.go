package genpass

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"
)

const (
	Upper  = "ABCDEFGHJKLMNOPQRSTUVWXYZ"
	Lower  = "abcdefghijkmnopqrstuvwxyz"
	Number = "123456789"
	Symbol = "~!@#$%^&*_"

	MaxLength = 255
)

var (
	ErrNoCharacterClass = fmt.Errorf("%w: at least one character class must be enabled", kerrors.ErrUsage)
	ErrInvalidLength    = fmt.Errorf("%w: invalid password length", kerrors.ErrUsage)
)

// Options selects the length and character classes of a password.
type Options struct {
	Length int
	Upper  bool
	Lower  bool
	Number bool
	Symbol bool
}

// DefaultOptions enables every class at length 16.
func DefaultOptions() Options {
	return Options{Length: 16, Upper: true, Lower: true, Number: true, Symbol: true}
}

// Generate returns a password built from crypto/rand.
func Generate(opts Options) (string, error) {
	return generate(rand.Reader, opts)
}

func generate(random io.Reader, opts Options) (string, error) {
	var classes []string
	if opts.Upper {
		classes = append(classes, Upper)
	}
	if opts.Lower {
		classes = append(classes, Lower)
	}
	if opts.Number {
		classes = append(classes, Number)
	}
	if opts.Symbol {
		classes = append(classes, Symbol)
	}
	if len(classes) == 0 {
		return "", ErrNoCharacterClass
	}
	if opts.Length < len(classes) || opts.Length > MaxLength {
		return "", fmt.Errorf("%w: must be between %d and %d, got %d", ErrInvalidLength, len(classes), MaxLength, opts.Length)
	}

	password := make([]byte, 0, opts.Length)
	var pool []byte
	for _, class := range classes {
		pool = append(pool, class...)
		c, err := pick(random, class)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}
	for len(password) < opts.Length {
		c, err := pick(random, string(pool))
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	// Fisher-Yates, so the guaranteed characters are not always up front.
	for i := len(password) - 1; i > 0; i-- {
		j, err := randIndex(random, i+1)
		if err != nil {
			return "", err
		}
		password[i], password[j] = password[j], password[i]
	}

	return string(password), nil
}

func pick(random io.Reader, set string) (byte, error) {
	i, err := randIndex(random, len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

func randIndex(random io.Reader, n int) (int, error) {
	i, err := rand.Int(random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(i.Int64()), nil
}
