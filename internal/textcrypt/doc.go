// Package textcrypt signs, verifies, encrypts and decrypts byte streams.
//
// Three schemes sit behind a small set of capability interfaces:
//
//   - BLAKE3 in keyed mode: Signer, Verifier. 32-byte key, 32-byte signature.
//   - Ed25519: Signer (secret seed) and Verifier (public key). 64-byte signature.
//   - XChaCha20-Poly1305: Encryptor, Decryptor. 32-byte key.
//
// A scheme implements only the capabilities that make sense for it, so a
// keyed-hash signer can never be handed to an encryption call.
//
// # Scheme Tags
//
// Callers pick a scheme with a closed tag: SignFormat for signing and
// EncryptFormat for encryption. Each tag resolves once per call to a
// descriptor holding the loaders and generator of that scheme. Tags
// implement pflag.Value and encoding.TextUnmarshaler so they can come
// straight from flags or the config file.
//
// # Envelope
//
// Encryption output is a single envelope:
//
//	nonce (24 bytes) || ciphertext || tag (16 bytes)
//
// A fresh random nonce is drawn for every call. Text renderings of keys,
// signatures and envelopes use URL-safe base64 without padding.
//
// # Key Sources
//
// BLAKE3 and Ed25519 keys are read from files holding raw bytes. The
// XChaCha20-Poly1305 key source is either a path to a file holding base64
// text or, when no regular file exists at that path, the base64 text itself.
//
// # Errors
//
// Malformed keys, signatures, encodings and envelopes fail with the format
// errors of internal/errors before any cryptographic work. A signature that
// does not match is reported as false, never as an error. A failed AEAD tag
// check is ErrAuthenticationFailed and yields no plaintext.
package textcrypt
