// Package errors provides typed error values for the rcli toolkit.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by kind:
//
//   - I/O errors: a source could not be read or a destination written
//     (ErrReadInput, ErrWriteOutput, ErrKeyNotFound)
//   - Format errors: key, signature, encoding or envelope is malformed
//     (ErrInvalidKeyLength, ErrInvalidSignatureLength, ErrInvalidEnvelope, ...)
//   - Authentication errors: an AEAD tag did not verify (ErrAuthenticationFailed)
//   - Usage errors: the command line could not be parsed (ErrUsage)
//
// A signature that does not match its message is not an error at all: the
// verifiers return false.
//
// # Usage
//
// Wrap errors with additional context:
//
//	return nil, fmt.Errorf("%w: expected %d bytes, got %d", errors.ErrInvalidKeyLength, 32, len(key))
//
// Map an error to a process exit status in the CLI layer:
//
//	os.Exit(errors.ExitCode(err))
package errors
