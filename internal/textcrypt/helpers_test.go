package textcrypt

import (
	"os"
	"path/filepath"
	"testing"
)

// writeKeyFile writes key material into dir and returns its path.
func writeKeyFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to write key file %s: %v", name, err)
	}
	return path
}

func generateKeys(t *testing.T, gen KeyGenerator) [][]byte {
	t.Helper()
	blocks, err := gen()
	if err != nil {
		t.Fatalf("Failed to generate key: %v", err)
	}
	return blocks
}
