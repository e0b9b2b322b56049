package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"
)

func TestTextSignVerify_Blake3(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "message.txt", "hello!")

	if _, err := runCommand(t, "text", "generate", "--format", "blake3", "-o", dir); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	key := filepath.Join(dir, "blake3.txt")

	out, err := runCommand(t, "text", "sign", "-k", key, "-i", input)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	sig := strings.TrimSpace(out)
	if len(sig) != 43 {
		t.Errorf("Expected a 43 character base64 signature, got %q", sig)
	}

	out, err = runCommand(t, "text", "verify", "-k", key, "-i", input, "--sig", sig)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if strings.TrimSpace(out) != "true" {
		t.Errorf("Expected true, got %q", out)
	}

	other := writeTestFile(t, dir, "other.txt", "hello")
	out, err = runCommand(t, "text", "verify", "-k", key, "-i", other, "--sig", sig)
	if err != nil {
		t.Fatalf("Expected mismatch to print false without error, got: %v", err)
	}
	if strings.TrimSpace(out) != "false" {
		t.Errorf("Expected false, got %q", out)
	}
}

func TestTextSignVerify_Ed25519(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "message.txt", "hello!")

	out, err := runCommand(t, "text", "generate", "--format", "ED25519", "-o", dir)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if !strings.Contains(out, "ed25519.sk") || !strings.Contains(out, "ed25519.pk") {
		t.Errorf("Expected both key files to be listed, got:\n%s", out)
	}

	out, err = runCommand(t, "text", "sign", "--format", "ed25519", "-k", filepath.Join(dir, "ed25519.sk"), "-i", input)
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	sig := strings.TrimSpace(out)

	out, err = runCommand(t, "text", "verify", "--format", "ed25519", "-k", filepath.Join(dir, "ed25519.pk"), "-i", input, "--sig", sig)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if strings.TrimSpace(out) != "true" {
		t.Errorf("Expected true, got %q", out)
	}
}

func TestTextVerify_ShortEd25519Signature(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "message.txt", "hello!")
	if _, err := runCommand(t, "text", "generate", "--format", "ed25519", "-o", dir); err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	// 63 bytes of base64 text.
	short := strings.Repeat("A", 84)
	_, err := runCommand(t, "text", "verify", "--format", "ed25519", "-k", filepath.Join(dir, "ed25519.pk"), "-i", input, "--sig", short)
	if !errors.Is(err, kerrors.ErrInvalidSignatureLength) {
		t.Errorf("Expected ErrInvalidSignatureLength, got: %v", err)
	}
	if code := kerrors.ExitCode(err); code != 4 {
		t.Errorf("Expected exit code 4, got %d", code)
	}
}

func TestTextSign_UnknownFormatIsUsageError(t *testing.T) {
	_, err := runCommand(t, "text", "sign", "--format", "rsa", "-k", "key")
	if kerrors.KindOf(err) != kerrors.KindUsage {
		t.Errorf("Expected usage error, got %v (%v)", kerrors.KindOf(err), err)
	}
	if code := kerrors.ExitCode(err); code != 2 {
		t.Errorf("Expected exit code 2, got %d", code)
	}
}

func TestTextSign_MissingKeyFile(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "message.txt", "hello!")

	_, err := runCommand(t, "text", "sign", "-k", filepath.Join(dir, "missing.txt"), "-i", input)
	if !errors.Is(err, kerrors.ErrKeyNotFound) {
		t.Errorf("Expected ErrKeyNotFound, got: %v", err)
	}
	if code := kerrors.ExitCode(err); code != 3 {
		t.Errorf("Expected exit code 3, got %d", code)
	}
}

func TestTextSign_FormatFromConfig(t *testing.T) {
	setupTestConfig(t, "[text]\nsign_format = \"ed25519\"\n")
	dir := t.TempDir()

	if _, err := runCommand(t, "text", "generate", "-o", dir); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "ed25519.sk")); err != nil {
		t.Errorf("Expected the configured format to be used: %v", err)
	}

	// An explicit flag still wins.
	if _, err := runCommand(t, "text", "generate", "--format", "blake3", "-o", dir); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "blake3.txt")); err != nil {
		t.Errorf("Expected the flag to override the config: %v", err)
	}
}

func TestTextEncryptDecrypt(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "plain.txt", "hello!")

	out, err := runCommand(t, "text", "encrypt", "-i", input)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "key:") || !strings.HasPrefix(lines[1], "text:") {
		t.Fatalf("Unexpected encrypt output:\n%s", out)
	}
	key := strings.TrimPrefix(lines[0], "key:")
	envelope := writeTestFile(t, dir, "envelope.txt", strings.TrimPrefix(lines[1], "text:"))

	out, err = runCommand(t, "text", "decrypt", "-k", key, "-i", envelope)
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if out != "hello!" {
		t.Errorf("Expected hello!, got %q", out)
	}
}

func TestTextEncryptDecrypt_OutputDir(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "plain.txt", "hello!")

	if _, err := runCommand(t, "text", "encrypt", "-i", input, "-o", dir); err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}

	keyFile := filepath.Join(dir, "xchacha20poly1305_k.txt")
	textFile := filepath.Join(dir, "xchacha20poly1305_t.txt")
	out, err := runCommand(t, "text", "decrypt", "-k", keyFile, "-i", textFile)
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}
	if out != "hello!" {
		t.Errorf("Expected hello!, got %q", out)
	}

	// A different key must be rejected with the authentication exit status.
	if _, err := runCommand(t, "text", "generate", "--format", "xchacha20poly1305", "-o", dir); err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	out, err = runCommand(t, "text", "decrypt", "-k", keyFile, "-i", textFile)
	if !errors.Is(err, kerrors.ErrAuthenticationFailed) {
		t.Errorf("Expected ErrAuthenticationFailed, got: %v", err)
	}
	if code := kerrors.ExitCode(err); code != 5 {
		t.Errorf("Expected exit code 5, got %d", code)
	}
	if out != "" {
		t.Errorf("Expected no plaintext on failure, got %q", out)
	}
}

func TestTextGenerate_MissingOutputDir(t *testing.T) {
	_, err := runCommand(t, "text", "generate", "-o", filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, kerrors.ErrWriteOutput) {
		t.Errorf("Expected ErrWriteOutput, got: %v", err)
	}
}
