// Package logger provides leveled logging for rcli commands.
//
// Every message goes to stderr. Stdout is reserved for command results
// (signatures, keys, plaintext) so that output can be piped safely.
//
// # Verbosity Levels
//
//   - --verbose: Shows info, warning and error messages
//   - --debug: Also shows debug messages
//
// WarnfAlways is shown at every level. The final error of a failed command
// is printed by the CLI itself, so Errorf stays quiet by default.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Signing %s with %s", input, format)
//
// The root command creates a logger in its PersistentPreRunE; long-running
// components such as the HTTP server receive it as a parameter.
package logger
