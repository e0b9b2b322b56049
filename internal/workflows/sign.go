package workflows

import (
	"context"

	"github.com/PolarWolf314/rcli/internal/textcrypt"
	"github.com/PolarWolf314/rcli/internal/utils"
)

// SignOptions configures the sign workflow.
type SignOptions struct {
	// Input is a file path, or "-" for stdin.
	Input string

	// Key is the path of the signing key file.
	Key string

	Format textcrypt.SignFormat
}

// SignResult contains the outcome of a sign operation.
type SignResult struct {
	// Signature is the URL-safe unpadded base64 signature.
	Signature string
}

// Sign signs the input with the key file.
//
// Returns ErrReadInput if the input cannot be opened, ErrKeyNotFound if the
// key file is missing, and a format error if the key is malformed.
func Sign(ctx context.Context, opts SignOptions) (*SignResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := utils.GetReader(opts.Input)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	sig, err := textcrypt.ProcessSign(reader, opts.Key, opts.Format)
	if err != nil {
		return nil, err
	}
	return &SignResult{Signature: sig}, nil
}

// VerifyOptions configures the verify workflow.
type VerifyOptions struct {
	Input string

	// Key is the path of the verification key file.
	Key string

	Format textcrypt.SignFormat

	// Signature is the base64 signature to check.
	Signature string
}

// VerifyResult contains the outcome of a verify operation.
type VerifyResult struct {
	Valid bool
}

// Verify checks a signature over the input. A signature that does not match
// is reported through Valid, not as an error.
func Verify(ctx context.Context, opts VerifyOptions) (*VerifyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := utils.GetReader(opts.Input)
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	valid, err := textcrypt.ProcessVerify(reader, opts.Key, opts.Format, opts.Signature)
	if err != nil {
		return nil, err
	}
	return &VerifyResult{Valid: valid}, nil
}
