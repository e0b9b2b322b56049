package textcrypt

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"
)

// readKeyFile reads raw key bytes from path.
func readKeyFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", kerrors.ErrKeyNotFound, err)
	}
	return data, nil
}

// EncodeText renders bytes as URL-safe base64 without padding.
func EncodeText(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// DecodeText parses URL-safe unpadded base64, ignoring surrounding whitespace.
func DecodeText(s string) ([]byte, error) {
	b, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidEncoding, err)
	}
	return b, nil
}
