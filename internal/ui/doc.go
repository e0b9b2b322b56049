// Package ui provides semantic text formatting for rcli's human-facing output.
//
// Machine-readable results (signatures, keys, ciphertext) are printed
// undecorated. Everything around them (status lines, hints, file lists) goes
// through the formatters here so it can be colored on a terminal and stay
// readable when NO_COLOR is set or output is not a TTY.
//
//	ui.Success.Sprint("✓")
//	ui.Path.Sprint("keys/ed25519.sk")
//	ui.Code.Sprint("rcli text verify")
//
// When colors are disabled, Code gets `backticks`, Highlight gets 'quotes'
// and Muted gets (parentheses). The rest are left bare.
package ui
