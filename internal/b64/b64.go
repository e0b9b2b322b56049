// Package b64 encodes and decodes byte streams as base64 text.
package b64

import (
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"
	"github.com/PolarWolf314/rcli/internal/utils"
)

// Format selects the base64 alphabet and padding.
type Format int

const (
	// Standard is RFC 4648 base64 with padding.
	Standard Format = iota
	// URLSafe is the URL and filename safe alphabet without padding.
	URLSafe
)

func (f Format) encoding() *base64.Encoding {
	if f == URLSafe {
		return base64.RawURLEncoding
	}
	return base64.StdEncoding
}

// Encode reads r completely and returns its base64 text.
func Encode(r io.Reader, f Format) (string, error) {
	data, err := utils.ReadAll(r)
	if err != nil {
		return "", err
	}
	return f.encoding().EncodeToString(data), nil
}

// Decode reads base64 text from r, trimming surrounding whitespace.
func Decode(r io.Reader, f Format) ([]byte, error) {
	data, err := utils.ReadAll(r)
	if err != nil {
		return nil, err
	}
	decoded, err := f.encoding().DecodeString(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", kerrors.ErrInvalidEncoding, err)
	}
	return decoded, nil
}

func (f Format) String() string {
	if f == URLSafe {
		return "urlsafe"
	}
	return "standard"
}

func (f *Format) Set(s string) error {
	switch strings.ToLower(s) {
	case "standard":
		*f = Standard
	case "urlsafe":
		*f = URLSafe
	default:
		return fmt.Errorf("%w: %q is not a base64 format (expected standard or urlsafe)", kerrors.ErrInvalidFormat, s)
	}
	return nil
}

func (f *Format) Type() string { return "format" }
