package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/rcli/internal/configs"
	kerrors "github.com/PolarWolf314/rcli/internal/errors"
	"github.com/PolarWolf314/rcli/internal/genpass"
)

func TestRoot_Banner(t *testing.T) {
	out, err := runCommand(t)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !strings.Contains(out, "rcli --help") {
		t.Errorf("Expected help hint, got:\n%s", out)
	}
}

func TestRoot_UnknownCommand(t *testing.T) {
	_, err := runCommand(t, "nope")
	if kerrors.KindOf(err) != kerrors.KindUsage {
		t.Errorf("Expected usage error, got: %v", err)
	}
}

func TestBase64_EncodeDecode(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "input.bin", "hello?>\xff")

	tests := []struct {
		format string
		want   string
	}{
		{"standard", "aGVsbG8/Pv8="},
		{"urlsafe", "aGVsbG8_Pv8"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out, err := runCommand(t, "base64", "encode", "-i", input, "--format", tt.format)
			if err != nil {
				t.Fatalf("encode failed: %v", err)
			}
			if strings.TrimSpace(out) != tt.want {
				t.Errorf("Expected %s, got %q", tt.want, out)
			}

			encoded := writeTestFile(t, dir, tt.format+".txt", out)
			out, err = runCommand(t, "base64", "decode", "-i", encoded, "--format", tt.format)
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if out != "hello?>\xff" {
				t.Errorf("Expected original bytes, got %q", out)
			}
		})
	}
}

func TestBase64_DecodeInvalid(t *testing.T) {
	input := writeTestFile(t, t.TempDir(), "bad.txt", "not base64!")
	_, err := runCommand(t, "base64", "decode", "-i", input)
	if !errors.Is(err, kerrors.ErrInvalidEncoding) {
		t.Errorf("Expected ErrInvalidEncoding, got: %v", err)
	}
}

func TestGenpass(t *testing.T) {
	out, err := runCommand(t, "genpass", "--length", "24", "--no-symbol")
	if err != nil {
		t.Fatalf("genpass failed: %v", err)
	}
	password := strings.TrimSpace(out)
	if len(password) != 24 {
		t.Errorf("Expected 24 characters, got %d (%q)", len(password), password)
	}
	if strings.ContainsAny(password, genpass.Symbol) {
		t.Errorf("Expected no symbols, got %q", password)
	}
}

func TestGenpass_FromConfig(t *testing.T) {
	setupTestConfig(t, "[genpass]\nlength = 8\nuppercase = false\nlowercase = false\nsymbol = false\n")

	out, err := runCommand(t, "genpass")
	if err != nil {
		t.Fatalf("genpass failed: %v", err)
	}
	password := strings.TrimSpace(out)
	if len(password) != 8 || strings.Trim(password, genpass.Number) != "" {
		t.Errorf("Expected 8 digits, got %q", password)
	}
}

func TestGenpass_NoClasses(t *testing.T) {
	_, err := runCommand(t, "genpass", "--no-uppercase", "--no-lowercase", "--no-number", "--no-symbol")
	if kerrors.KindOf(err) != kerrors.KindUsage {
		t.Errorf("Expected usage error, got: %v", err)
	}
}

func TestCSV(t *testing.T) {
	dir := t.TempDir()
	input := writeTestFile(t, dir, "players.csv", "Name,Position,Nationality\nJalen Hurts,QB,USA\n")
	output := filepath.Join(dir, "players.json")

	if _, err := runCommand(t, "csv", "-i", input, "-o", output); err != nil {
		t.Fatalf("csv failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	var rows []map[string]string
	if err := json.Unmarshal(data, &rows); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, data)
	}
	if len(rows) != 1 || rows[0]["Position"] != "QB" {
		t.Errorf("Unexpected rows: %v", rows)
	}
}

func TestCSV_MissingInput(t *testing.T) {
	_, err := runCommand(t, "csv", "-i", filepath.Join(t.TempDir(), "missing.csv"))
	if !errors.Is(err, kerrors.ErrReadInput) {
		t.Errorf("Expected ErrReadInput, got: %v", err)
	}
}

func TestJWT_SignAndVerify(t *testing.T) {
	out, err := runCommand(t, "jwt", "sign", "--sub", "acme", "--aud", "device1", "--exp", "1d0h0m", "--secret", "s3cret")
	if err != nil {
		t.Fatalf("jwt sign failed: %v", err)
	}
	token := strings.TrimSpace(out)
	if strings.Count(token, ".") != 2 {
		t.Fatalf("Expected a compact JWT, got %q", token)
	}

	out, err = runCommand(t, "jwt", "verify", "-t", token, "--aud", "device1", "--secret", "s3cret")
	if err != nil {
		t.Fatalf("jwt verify failed: %v", err)
	}
	if !strings.Contains(out, "acme") {
		t.Errorf("Expected subject in output, got:\n%s", out)
	}

	_, err = runCommand(t, "jwt", "verify", "-t", token, "--aud", "device2", "--secret", "s3cret")
	if kerrors.ExitCode(err) != 5 {
		t.Errorf("Expected authentication failure for wrong audience, got: %v", err)
	}
}

func TestJWT_SecretFromEnvironment(t *testing.T) {
	t.Setenv(EnvJWTSecret, "from-env")

	out, err := runCommand(t, "jwt", "sign", "--sub", "acme", "--aud", "device1")
	if err != nil {
		t.Fatalf("jwt sign failed: %v", err)
	}
	token := strings.TrimSpace(out)

	if _, err := runCommand(t, "jwt", "verify", "-t", token, "--aud", "device1", "--secret", "other"); err == nil {
		t.Error("Expected verification with a different secret to fail")
	}
	if _, err := runCommand(t, "jwt", "verify", "-t", token, "--aud", "device1"); err != nil {
		t.Errorf("Expected verification with the env secret to pass, got: %v", err)
	}
}

func TestJWT_MissingSecret(t *testing.T) {
	t.Setenv(EnvJWTSecret, "")
	_, err := runCommand(t, "jwt", "sign", "--sub", "acme", "--aud", "device1")
	if !errors.Is(err, kerrors.ErrMissingSecret) {
		t.Errorf("Expected ErrMissingSecret, got: %v", err)
	}
}

func TestJWT_InvalidExpiry(t *testing.T) {
	_, err := runCommand(t, "jwt", "sign", "--sub", "acme", "--aud", "device1", "--exp", "2 weeks", "--secret", "s")
	if !errors.Is(err, kerrors.ErrInvalidExpiry) {
		t.Errorf("Expected ErrInvalidExpiry, got: %v", err)
	}
}

func TestConfigInitAndShow(t *testing.T) {
	path := setupTestConfig(t, "")

	out, err := runCommand(t, "config", "init")
	if err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Expected config file at %s: %v", path, err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("Expected path in output, got:\n%s", out)
	}

	out, err = runCommand(t, "config", "init")
	if err != nil {
		t.Fatalf("second config init failed: %v", err)
	}
	if !strings.Contains(out, "--force") {
		t.Errorf("Expected hint about --force, got:\n%s", out)
	}

	out, err = runCommand(t, "config", "show", "--json")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	var shown map[string]map[string]any
	if err := json.Unmarshal([]byte(out), &shown); err != nil {
		t.Fatalf("Output is not JSON: %v\n%s", err, out)
	}
	if shown["text"]["sign_format"] != "blake3" {
		t.Errorf("Expected default sign format, got %v", shown["text"]["sign_format"])
	}
}

func TestConfigShow_MasksSecret(t *testing.T) {
	setupTestConfig(t, "[jwt]\nsecret = \"hunter2\"\n")

	out, err := runCommand(t, "config", "show")
	if err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if strings.Contains(out, "hunter2") {
		t.Errorf("Expected the secret to be masked, got:\n%s", out)
	}
	if !strings.Contains(out, "sign_format") {
		t.Errorf("Expected TOML output, got:\n%s", out)
	}
}

func TestInvalidConfigFile(t *testing.T) {
	setupTestConfig(t, "[text]\nsign_format = \"rsa\"\n")

	_, err := runCommand(t, "genpass")
	if !errors.Is(err, kerrors.ErrInvalidFormat) {
		t.Errorf("Expected ErrInvalidFormat, got: %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "config init --force") {
		t.Errorf("Expected a hint to reset the config, got: %v", err)
	}
}

func TestConfigInit_ForceRepairsBrokenFile(t *testing.T) {
	path := setupTestConfig(t, "[future]\nkey = 1\n")

	if _, err := runCommand(t, "text", "generate", "-o", t.TempDir()); !errors.Is(err, kerrors.ErrInvalidFormat) {
		t.Fatalf("Expected broken config to be reported, got: %v", err)
	}

	out, err := runCommand(t, "config", "init", "--force")
	if err != nil {
		t.Fatalf("config init --force failed on a broken file: %v", err)
	}
	if !strings.Contains(out, path) {
		t.Errorf("Expected path in output, got:\n%s", out)
	}
	if _, err := configs.Load(path); err != nil {
		t.Fatalf("Expected rewritten config to load, got: %v", err)
	}

	if _, err := runCommand(t, "text", "generate", "-o", t.TempDir()); err != nil {
		t.Errorf("Expected commands to work after the reset, got: %v", err)
	}
}

func TestConfigInit_BrokenFileWithoutForce(t *testing.T) {
	path := setupTestConfig(t, "[future]\nkey = 1\n")

	out, err := runCommand(t, "config", "init")
	if err != nil {
		t.Fatalf("config init failed on a broken file: %v", err)
	}
	if !strings.Contains(out, "--force") {
		t.Errorf("Expected hint about --force, got:\n%s", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if string(data) != "[future]\nkey = 1\n" {
		t.Errorf("Expected config to be left alone without --force, got:\n%s", data)
	}
}

func TestValidators(t *testing.T) {
	dir := t.TempDir()
	file := writeTestFile(t, dir, "f.txt", "x")

	if err := verifyFile("input", "-"); err != nil {
		t.Errorf("Expected stdin to be accepted, got: %v", err)
	}
	if err := verifyFile("input", file); err != nil {
		t.Errorf("Expected existing file to be accepted, got: %v", err)
	}
	if err := verifyFile("input", filepath.Join(dir, "nope")); !errors.Is(err, kerrors.ErrReadInput) {
		t.Errorf("Expected ErrReadInput, got: %v", err)
	}
	if err := verifyFile("input", ""); !errors.Is(err, kerrors.ErrUsage) {
		t.Errorf("Expected ErrUsage, got: %v", err)
	}
	if err := verifyPath("output", dir); err != nil {
		t.Errorf("Expected directory to be accepted, got: %v", err)
	}
	if err := verifyPath("output", file); !errors.Is(err, kerrors.ErrWriteOutput) {
		t.Errorf("Expected ErrWriteOutput for a file, got: %v", err)
	}
}
