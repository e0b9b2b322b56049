package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/PolarWolf314/rcli/internal/ui"
	"github.com/PolarWolf314/rcli/internal/utils"
	"github.com/briandowns/spinner"
)

// startSpinner creates and starts a spinner on stderr when not in verbose or
// debug mode. The returned cleanup stops it and prints FinalMSG to out.
//
// FinalMSG values do not need trailing newlines; cleanup adds one.
func startSpinner(message string, out io.Writer) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	quiet := !verbose && !debug
	if quiet {
		s.Start()
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if quiet {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Fprint(out, finalMsg)
		}
	}

	return s, cleanup
}

// writeResult prints text to out, adding a trailing newline unless the
// output is raw bytes going to a pipe or file.
func writeResult(out io.Writer, data []byte, raw bool) error {
	if _, err := out.Write(data); err != nil {
		return err
	}
	if raw && !(out == os.Stdout && utils.IsStdoutTerminal()) {
		return nil
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		_, err := io.WriteString(out, "\n")
		return err
	}
	return nil
}

// noteStdin tells an interactive user that rcli is waiting on stdin.
func noteStdin(input string) {
	if input == utils.StdinSentinel && utils.IsStdinTerminal() {
		Logger.WarnfAlways("Reading input from stdin, finish with Ctrl-D")
	}
}
