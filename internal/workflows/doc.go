// Package workflows provides the orchestration behind rcli commands.
//
// Each workflow resolves input sources, calls into the engine packages
// (textcrypt, csvconv) and writes any files the command produces. The cmd
// package stays a thin layer that parses flags, calls a workflow and formats
// its result.
//
// # Available Workflows
//
//   - Sign, Verify: keyed-hash and Ed25519 signatures over a file or stdin
//   - Generate, GenerateEncryptionKey: write fresh key files into a directory
//   - Encrypt, Decrypt: XChaCha20-Poly1305 envelopes as base64 text
//   - ConvertCSV: CSV to JSON or YAML on disk
//
// # Error Handling
//
// Workflows return errors wrapping the sentinels in internal/errors, so the
// CLI can pick an exit status with errors.ExitCode:
//
//	result, err := workflows.Decrypt(ctx, opts)
//	if errors.Is(err, kerrors.ErrAuthenticationFailed) {
//	    // wrong key or tampered envelope
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first parameter
// and return early if it is already done. The primitives themselves are not
// interruptible.
package workflows
