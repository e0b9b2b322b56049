// Package genpass generates random passwords from character classes.
//
// The glyphs I, l and 0 are left out of the character sets so that
// generated passwords can be read back and typed. Every enabled class
// contributes at least one character and all randomness comes from
// crypto/rand.
package genpass
