package workflows

import (
	"context"
	"path/filepath"

	"github.com/PolarWolf314/rcli/internal/textcrypt"
	"github.com/PolarWolf314/rcli/internal/utils"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	Input string

	// Key is a key file path or base64 key text. "-" or empty generates a
	// fresh key for this call.
	Key string

	Format textcrypt.EncryptFormat

	// OutputDir, when set, receives the key and envelope as files instead
	// of returning them only as text.
	OutputDir string
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	// Key is the base64 key used.
	Key string

	// Text is the base64 envelope.
	Text string

	// GeneratedKey is set when Key was created for this call.
	GeneratedKey bool

	// Files lists the files written when OutputDir was set.
	Files []string
}

// Encrypt seals the input under a loaded or freshly generated key.
//
// With OutputDir set, the key is written to <format>_k.txt and the envelope
// to <format>_t.txt inside it. Either both files are written or neither is.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.OutputDir != "" {
		if err := checkOutputDir(opts.OutputDir); err != nil {
			return nil, err
		}
	}

	reader, err := utils.GetReader(opts.Input)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	encrypted, err := textcrypt.ProcessEncrypt(reader, opts.Key, opts.Format)
	if err != nil {
		return nil, err
	}

	result := &EncryptResult{
		Key:          textcrypt.EncodeText(encrypted.Key),
		Text:         textcrypt.EncodeText(encrypted.Envelope),
		GeneratedKey: encrypted.GeneratedKey,
	}

	if opts.OutputDir == "" {
		return result, nil
	}

	keyPath := filepath.Join(opts.OutputDir, KeyFileName(opts.Format))
	textPath := filepath.Join(opts.OutputDir, TextFileName(opts.Format))
	err = utils.WriteFiles([]utils.OutputFile{
		{Path: keyPath, Data: []byte(result.Key), Perm: 0600},
		{Path: textPath, Data: []byte(result.Text), Perm: 0644},
	})
	if err != nil {
		return nil, err
	}
	result.Files = []string{keyPath, textPath}
	return result, nil
}

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// Input holds the base64 envelope; a file path or "-" for stdin.
	Input string

	// Key is a key file path or base64 key text.
	Key string

	Format textcrypt.EncryptFormat
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	Plaintext []byte
}

// Decrypt opens a base64 envelope.
//
// Returns ErrInvalidEncoding for text that is not base64, ErrInvalidEnvelope
// when the envelope is too short, and ErrAuthenticationFailed for a wrong key
// or tampered envelope.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := utils.GetReader(opts.Input)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	plaintext, err := textcrypt.ProcessDecrypt(reader, opts.Key, opts.Format)
	if err != nil {
		return nil, err
	}
	return &DecryptResult{Plaintext: plaintext}, nil
}

// KeyFileName is the file an encryption key is stored in.
func KeyFileName(format textcrypt.EncryptFormat) string {
	return format.KeyFiles()[0].Name
}

// TextFileName is the file an envelope is stored in.
func TextFileName(format textcrypt.EncryptFormat) string {
	return format.String() + "_t.txt"
}
