// Package utils provides shared helpers for rcli.
//
// # I/O Utilities
//
//   - GetReader: opens "-" as stdin and anything else as a file
//   - ReadAll: reads a whole source, wrapping failures as ErrReadInput
//   - ReadSource: GetReader followed by ReadAll
//   - WriteFile: writes a file, wrapping failures as ErrWriteOutput
//
// # Filesystem Utilities
//
//   - IsRegularFile, IsDir, Exists: probes that never return errors
//
// # Terminal Utilities
//
//   - IsStdoutTerminal, IsStdinTerminal: report whether a stream is a TTY
package utils
