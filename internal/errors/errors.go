package errors

import "errors"

// I/O errors indicate a source or destination could not be used.
var (
	// ErrReadInput indicates the input stream could not be opened or read.
	ErrReadInput = errors.New("failed to read input")

	// ErrWriteOutput indicates an output file could not be written.
	ErrWriteOutput = errors.New("failed to write output")

	// ErrKeyNotFound indicates a key file could not be located or read.
	ErrKeyNotFound = errors.New("key file not found")
)

// Format errors indicate malformed input detected before any cryptographic work.
var (
	// ErrInvalidKeyLength indicates key material has the wrong number of bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidKey indicates key material has the right length but is unusable.
	ErrInvalidKey = errors.New("invalid key")

	// ErrInvalidSignatureLength indicates a signature has the wrong number of bytes.
	ErrInvalidSignatureLength = errors.New("invalid signature length")

	// ErrInvalidEncoding indicates base64 text could not be decoded.
	ErrInvalidEncoding = errors.New("invalid base64 encoding")

	// ErrInvalidEnvelope indicates a ciphertext envelope is too short to hold a nonce and tag.
	ErrInvalidEnvelope = errors.New("invalid ciphertext envelope")

	// ErrInvalidFormat indicates an unknown scheme or output format name.
	ErrInvalidFormat = errors.New("invalid format")
)

// Cryptographic errors indicate an operation ran and was rejected.
var (
	// ErrAuthenticationFailed indicates the authentication tag did not verify on decrypt.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrEncryptFailed indicates the cipher could not be constructed or sealing failed.
	ErrEncryptFailed = errors.New("failed to encrypt input")

	// ErrKeyGenerationFailed indicates the random source could not produce key material.
	ErrKeyGenerationFailed = errors.New("failed to generate key")
)

// Usage errors indicate the caller supplied unusable arguments.
var (
	// ErrUsage indicates the command line could not be parsed.
	ErrUsage = errors.New("invalid usage")

	// ErrMissingSecret indicates a required secret was not configured.
	ErrMissingSecret = errors.New("secret not provided")

	// ErrInvalidExpiry indicates an expiry duration could not be parsed.
	ErrInvalidExpiry = errors.New("invalid expiry format")
)
