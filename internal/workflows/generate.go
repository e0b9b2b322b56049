package workflows

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"
	"github.com/PolarWolf314/rcli/internal/textcrypt"
	"github.com/PolarWolf314/rcli/internal/utils"
)

// GenerateOptions configures key generation for a signing scheme.
type GenerateOptions struct {
	Format textcrypt.SignFormat

	// OutputDir must be an existing directory. Existing key files are overwritten.
	OutputDir string
}

// GenerateEncryptionKeyOptions configures key generation for an encryption scheme.
type GenerateEncryptionKeyOptions struct {
	Format    textcrypt.EncryptFormat
	OutputDir string
}

// GenerateResult contains the outcome of a key generation.
type GenerateResult struct {
	// Files lists the key files written, in generator order.
	Files []string
}

// Generate writes fresh signing keys into OutputDir: blake3.txt for blake3,
// ed25519.sk and ed25519.pk for ed25519.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkOutputDir(opts.OutputDir); err != nil {
		return nil, err
	}

	blocks, err := textcrypt.ProcessGenerate(opts.Format)
	if err != nil {
		return nil, err
	}
	return writeKeyFiles(opts.OutputDir, opts.Format.KeyFiles(), blocks)
}

// GenerateEncryptionKey writes a fresh base64 key file into OutputDir.
func GenerateEncryptionKey(ctx context.Context, opts GenerateEncryptionKeyOptions) (*GenerateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkOutputDir(opts.OutputDir); err != nil {
		return nil, err
	}

	blocks, err := textcrypt.ProcessGenerateEncryptionKey(opts.Format)
	if err != nil {
		return nil, err
	}
	return writeKeyFiles(opts.OutputDir, opts.Format.KeyFiles(), blocks)
}

func checkOutputDir(dir string) error {
	if !utils.IsDir(dir) {
		return fmt.Errorf("%w: output directory %s does not exist", kerrors.ErrWriteOutput, dir)
	}
	return nil
}

func writeKeyFiles(dir string, files []textcrypt.KeyFile, blocks [][]byte) (*GenerateResult, error) {
	if len(files) != len(blocks) {
		return nil, fmt.Errorf("%w: expected %d key blocks, got %d", kerrors.ErrKeyGenerationFailed, len(files), len(blocks))
	}

	result := &GenerateResult{}
	outputs := make([]utils.OutputFile, 0, len(files))
	for i, kf := range files {
		data := blocks[i]
		if kf.Text {
			data = []byte(textcrypt.EncodeText(data))
		}

		perm := os.FileMode(0600)
		if kf.Public {
			perm = 0644
		}

		path := filepath.Join(dir, kf.Name)
		outputs = append(outputs, utils.OutputFile{Path: path, Data: data, Perm: perm})
		result.Files = append(result.Files, path)
	}

	// A keypair is only useful whole.
	if err := utils.WriteFiles(outputs); err != nil {
		return nil, err
	}
	return result, nil
}
