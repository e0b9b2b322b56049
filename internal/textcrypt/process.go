package textcrypt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/PolarWolf314/rcli/internal/utils"
)

// GenerateKeySentinel asks ProcessEncrypt for a fresh key instead of loading one.
const GenerateKeySentinel = "-"

// ProcessSign signs input with the key at keySource and returns the
// signature as base64 text.
func ProcessSign(input io.Reader, keySource string, format SignFormat) (string, error) {
	scheme, err := format.scheme()
	if err != nil {
		return "", err
	}
	signer, err := scheme.loadSigner(keySource)
	if err != nil {
		return "", err
	}
	sig, err := signer.Sign(input)
	if err != nil {
		return "", err
	}
	return EncodeText(sig), nil
}

// ProcessVerify checks the base64 signature sig over input.
func ProcessVerify(input io.Reader, keySource string, format SignFormat, sig string) (bool, error) {
	scheme, err := format.scheme()
	if err != nil {
		return false, err
	}
	rawSig, err := DecodeText(sig)
	if err != nil {
		return false, fmt.Errorf("decoding signature: %w", err)
	}
	verifier, err := scheme.loadVerifier(keySource)
	if err != nil {
		return false, err
	}
	return verifier.Verify(input, rawSig)
}

// ProcessGenerate returns fresh raw key blocks for a signing scheme.
func ProcessGenerate(format SignFormat) ([][]byte, error) {
	scheme, err := format.scheme()
	if err != nil {
		return nil, err
	}
	return scheme.generate()
}

// ProcessGenerateEncryptionKey returns fresh raw key blocks for an
// encryption scheme.
func ProcessGenerateEncryptionKey(format EncryptFormat) ([][]byte, error) {
	scheme, err := format.scheme()
	if err != nil {
		return nil, err
	}
	return scheme.generate()
}

// EncryptResult holds the raw key used and the raw envelope produced.
type EncryptResult struct {
	Key      []byte
	Envelope []byte
	// GeneratedKey is set when the key was created for this call and must be
	// persisted by the caller to ever decrypt the envelope.
	GeneratedKey bool
}

// ProcessEncrypt encrypts input. A keySource of "-" or "" generates a fresh
// key for this call.
func ProcessEncrypt(input io.Reader, keySource string, format EncryptFormat) (*EncryptResult, error) {
	scheme, err := format.scheme()
	if err != nil {
		return nil, err
	}

	var key SymmetricKey
	generated := keySource == GenerateKeySentinel || keySource == ""
	if generated {
		blocks, err := scheme.generate()
		if err != nil {
			return nil, err
		}
		key, err = scheme.fromBytes(blocks[0])
		if err != nil {
			return nil, err
		}
	} else {
		key, err = scheme.load(keySource)
		if err != nil {
			return nil, err
		}
	}

	envelope, err := key.Encrypt(input)
	if err != nil {
		return nil, err
	}
	return &EncryptResult{Key: key.Bytes(), Envelope: envelope, GeneratedKey: generated}, nil
}

// ProcessDecrypt reads a base64 envelope from input and decrypts it with the
// key at keySource.
func ProcessDecrypt(input io.Reader, keySource string, format EncryptFormat) ([]byte, error) {
	scheme, err := format.scheme()
	if err != nil {
		return nil, err
	}
	key, err := scheme.load(keySource)
	if err != nil {
		return nil, err
	}
	text, err := utils.ReadAll(input)
	if err != nil {
		return nil, err
	}
	envelope, err := DecodeText(string(text))
	if err != nil {
		return nil, fmt.Errorf("decoding envelope: %w", err)
	}
	return key.Decrypt(bytes.NewReader(envelope))
}
