package textcrypt

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"
)

// SignFormat selects a signing scheme.
type SignFormat int

const (
	SignBlake3 SignFormat = iota
	SignEd25519
)

// EncryptFormat selects an authenticated-encryption scheme.
type EncryptFormat int

const (
	EncryptXChaCha20Poly1305 EncryptFormat = iota
)

// KeyFile describes one block of generated key material on disk.
type KeyFile struct {
	Name string
	// Text marks files holding base64 text rather than raw bytes.
	Text bool
	// Public marks key material that may be world-readable.
	Public bool
}

type signScheme struct {
	name         string
	loadSigner   KeyLoader[Signer]
	loadVerifier KeyLoader[Verifier]
	generate     KeyGenerator
	keyFiles     []KeyFile
}

type encryptScheme struct {
	name      string
	load      KeyLoader[SymmetricKey]
	fromBytes func(key []byte) (SymmetricKey, error)
	generate  KeyGenerator
	keyFiles  []KeyFile
}

var signSchemes = map[SignFormat]signScheme{
	SignBlake3: {
		name:         "blake3",
		loadSigner:   func(src string) (Signer, error) { return LoadBlake3(src) },
		loadVerifier: func(src string) (Verifier, error) { return LoadBlake3(src) },
		generate:     GenerateBlake3Key,
		keyFiles:     []KeyFile{{Name: "blake3.txt"}},
	},
	SignEd25519: {
		name:         "ed25519",
		loadSigner:   func(src string) (Signer, error) { return LoadEd25519Signer(src) },
		loadVerifier: func(src string) (Verifier, error) { return LoadEd25519Verifier(src) },
		generate:     GenerateEd25519Keypair,
		keyFiles:     []KeyFile{{Name: "ed25519.sk"}, {Name: "ed25519.pk", Public: true}},
	},
}

var encryptSchemes = map[EncryptFormat]encryptScheme{
	EncryptXChaCha20Poly1305: {
		name:      "xchacha20poly1305",
		load:      func(src string) (SymmetricKey, error) { return LoadXChaCha20Poly1305Key(src) },
		fromBytes: func(key []byte) (SymmetricKey, error) { return NewXChaCha20Poly1305Key(key) },
		generate:  GenerateXChaCha20Poly1305Key,
		keyFiles:  []KeyFile{{Name: "xchacha20poly1305_k.txt", Text: true}},
	},
}

func (f SignFormat) scheme() (signScheme, error) {
	s, ok := signSchemes[f]
	if !ok {
		return signScheme{}, fmt.Errorf("%w: unknown sign format %d", kerrors.ErrInvalidFormat, int(f))
	}
	return s, nil
}

func (f EncryptFormat) scheme() (encryptScheme, error) {
	s, ok := encryptSchemes[f]
	if !ok {
		return encryptScheme{}, fmt.Errorf("%w: unknown encrypt format %d", kerrors.ErrInvalidFormat, int(f))
	}
	return s, nil
}

// ParseSignFormat accepts scheme names case-insensitively.
func ParseSignFormat(s string) (SignFormat, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, scheme := range signSchemes {
		if scheme.name == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not a sign format (expected blake3 or ed25519)", kerrors.ErrInvalidFormat, s)
}

// ParseEncryptFormat accepts scheme names case-insensitively.
func ParseEncryptFormat(s string) (EncryptFormat, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for f, scheme := range encryptSchemes {
		if scheme.name == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q is not an encrypt format (expected xchacha20poly1305)", kerrors.ErrInvalidFormat, s)
}

func (f SignFormat) String() string {
	if s, ok := signSchemes[f]; ok {
		return s.name
	}
	return fmt.Sprintf("SignFormat(%d)", int(f))
}

func (f EncryptFormat) String() string {
	if s, ok := encryptSchemes[f]; ok {
		return s.name
	}
	return fmt.Sprintf("EncryptFormat(%d)", int(f))
}

// KeyFiles lists the files written for generated keys, in generator order.
func (f SignFormat) KeyFiles() []KeyFile {
	return signSchemes[f].keyFiles
}

func (f EncryptFormat) KeyFiles() []KeyFile {
	return encryptSchemes[f].keyFiles
}

// Set, Type and String make SignFormat a pflag.Value.
func (f *SignFormat) Set(s string) error {
	parsed, err := ParseSignFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f *SignFormat) Type() string { return "format" }

func (f *EncryptFormat) Set(s string) error {
	parsed, err := ParseEncryptFormat(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f *EncryptFormat) Type() string { return "format" }

func (f SignFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *SignFormat) UnmarshalText(text []byte) error { return f.Set(string(text)) }

func (f EncryptFormat) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *EncryptFormat) UnmarshalText(text []byte) error { return f.Set(string(text)) }

// SignFormatNames lists the accepted sign format names.
func SignFormatNames() []string {
	return []string{SignBlake3.String(), SignEd25519.String()}
}

// EncryptFormatNames lists the accepted encrypt format names.
func EncryptFormatNames() []string {
	return []string{EncryptXChaCha20Poly1305.String()}
}
