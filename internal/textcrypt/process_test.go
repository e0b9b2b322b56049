package textcrypt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"
)

func TestProcessSignVerify_AllFormats(t *testing.T) {
	for _, format := range []SignFormat{SignBlake3, SignEd25519} {
		t.Run(format.String(), func(t *testing.T) {
			dir := t.TempDir()
			blocks, err := ProcessGenerate(format)
			if err != nil {
				t.Fatalf("ProcessGenerate failed: %v", err)
			}
			files := format.KeyFiles()
			if len(blocks) != len(files) {
				t.Fatalf("Expected %d key blocks, got %d", len(files), len(blocks))
			}
			paths := make([]string, len(blocks))
			for i, b := range blocks {
				paths[i] = writeKeyFile(t, dir, files[i].Name, b)
			}
			signKey, verifyKey := paths[0], paths[len(paths)-1]

			sig, err := ProcessSign(strings.NewReader("hello!"), signKey, format)
			if err != nil {
				t.Fatalf("ProcessSign failed: %v", err)
			}
			if strings.ContainsAny(sig, "+/=") {
				t.Errorf("Expected URL-safe unpadded base64, got %q", sig)
			}

			ok, err := ProcessVerify(strings.NewReader("hello!"), verifyKey, format, sig)
			if err != nil || !ok {
				t.Errorf("Expected verification to succeed, got ok=%t err=%v", ok, err)
			}

			ok, err = ProcessVerify(strings.NewReader("hello"), verifyKey, format, sig)
			if err != nil || ok {
				t.Errorf("Expected false for altered message, got ok=%t err=%v", ok, err)
			}
		})
	}
}

func TestProcessVerify_FormatErrors(t *testing.T) {
	dir := t.TempDir()
	blocks, _ := ProcessGenerate(SignEd25519)
	pk := writeKeyFile(t, dir, "ed25519.pk", blocks[1])

	_, err := ProcessVerify(strings.NewReader("x"), pk, SignEd25519, EncodeText(make([]byte, 63)))
	if !errors.Is(err, kerrors.ErrInvalidSignatureLength) {
		t.Errorf("Expected ErrInvalidSignatureLength, got: %v", err)
	}

	_, err = ProcessVerify(strings.NewReader("x"), pk, SignEd25519, "***")
	if !errors.Is(err, kerrors.ErrInvalidEncoding) {
		t.Errorf("Expected ErrInvalidEncoding, got: %v", err)
	}
}

func TestProcessEncryptDecrypt_Scenario(t *testing.T) {
	res, err := ProcessEncrypt(strings.NewReader("hello!"), GenerateKeySentinel, EncryptXChaCha20Poly1305)
	if err != nil {
		t.Fatalf("ProcessEncrypt failed: %v", err)
	}
	if !res.GeneratedKey || len(res.Key) != XChaCha20Poly1305KeySize {
		t.Fatalf("Expected a generated 32-byte key, got generated=%t len=%d", res.GeneratedKey, len(res.Key))
	}

	keyText := EncodeText(res.Key)
	envelopeText := EncodeText(res.Envelope)

	plaintext, err := ProcessDecrypt(strings.NewReader(envelopeText+"\n"), keyText, EncryptXChaCha20Poly1305)
	if err != nil {
		t.Fatalf("ProcessDecrypt failed: %v", err)
	}
	if string(plaintext) != "hello!" {
		t.Errorf("Expected %q, got %q", "hello!", plaintext)
	}

	otherKey, _ := ProcessGenerateEncryptionKey(EncryptXChaCha20Poly1305)
	_, err = ProcessDecrypt(strings.NewReader(envelopeText), EncodeText(otherKey[0]), EncryptXChaCha20Poly1305)
	if !errors.Is(err, kerrors.ErrAuthenticationFailed) {
		t.Errorf("Expected ErrAuthenticationFailed with a different key, got: %v", err)
	}
}

func TestProcessEncrypt_WithKeyFile(t *testing.T) {
	raw, _ := ProcessGenerateEncryptionKey(EncryptXChaCha20Poly1305)
	path := writeKeyFile(t, t.TempDir(), "k.txt", []byte(EncodeText(raw[0])))

	res, err := ProcessEncrypt(strings.NewReader("data"), path, EncryptXChaCha20Poly1305)
	if err != nil {
		t.Fatalf("ProcessEncrypt failed: %v", err)
	}
	if res.GeneratedKey {
		t.Error("Expected the supplied key to be used")
	}
	if !bytes.Equal(res.Key, raw[0]) {
		t.Error("Expected result key to equal the loaded key")
	}

	plaintext, err := ProcessDecrypt(strings.NewReader(EncodeText(res.Envelope)), path, EncryptXChaCha20Poly1305)
	if err != nil || string(plaintext) != "data" {
		t.Errorf("Round trip through key file failed: %q, %v", plaintext, err)
	}
}

func TestProcessDecrypt_MalformedEnvelope(t *testing.T) {
	raw, _ := ProcessGenerateEncryptionKey(EncryptXChaCha20Poly1305)
	key := EncodeText(raw[0])

	if _, err := ProcessDecrypt(strings.NewReader("%%%"), key, EncryptXChaCha20Poly1305); !errors.Is(err, kerrors.ErrInvalidEncoding) {
		t.Errorf("Expected ErrInvalidEncoding, got: %v", err)
	}
	if _, err := ProcessDecrypt(strings.NewReader(EncodeText(make([]byte, 30))), key, EncryptXChaCha20Poly1305); !errors.Is(err, kerrors.ErrInvalidEnvelope) {
		t.Errorf("Expected ErrInvalidEnvelope, got: %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("disk on fire") }

func TestProcess_ReadFailuresPropagate(t *testing.T) {
	dir := t.TempDir()
	blake, _ := ProcessGenerate(SignBlake3)
	blakePath := writeKeyFile(t, dir, "blake3.txt", blake[0])

	if _, err := ProcessSign(failingReader{}, blakePath, SignBlake3); !errors.Is(err, kerrors.ErrReadInput) {
		t.Errorf("Expected ErrReadInput from sign, got: %v", err)
	}
	if _, err := ProcessEncrypt(failingReader{}, "-", EncryptXChaCha20Poly1305); !errors.Is(err, kerrors.ErrReadInput) {
		t.Errorf("Expected ErrReadInput from encrypt, got: %v", err)
	}
}

func TestProcess_UnknownFormat(t *testing.T) {
	if _, err := ProcessSign(strings.NewReader(""), "k", SignFormat(9)); !errors.Is(err, kerrors.ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got: %v", err)
	}
	if _, err := ProcessEncrypt(strings.NewReader(""), "-", EncryptFormat(9)); !errors.Is(err, kerrors.ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got: %v", err)
	}
}
