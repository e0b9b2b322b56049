package cmd

import (
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/rcli/internal/errors"
	"github.com/PolarWolf314/rcli/internal/utils"

	"github.com/spf13/cobra"
)

// verifyFile accepts "-" for stdin or a path that exists.
func verifyFile(flag, path string) error {
	if path == utils.StdinSentinel {
		return nil
	}
	if path == "" {
		return fmt.Errorf("%w: --%s is required", kerrors.ErrUsage, flag)
	}
	if !utils.Exists(path) {
		return fmt.Errorf("%w: --%s: file %s does not exist", kerrors.ErrReadInput, flag, path)
	}
	return nil
}

// verifyPath accepts an existing directory.
func verifyPath(flag, path string) error {
	if !utils.IsDir(path) {
		return fmt.Errorf("%w: --%s: %s is not a directory", kerrors.ErrWriteOutput, flag, path)
	}
	return nil
}

// requireFlag fails when a string flag was left empty.
func requireFlag(flag, value string) error {
	if value == "" {
		return fmt.Errorf("%w: --%s is required", kerrors.ErrUsage, flag)
	}
	return nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return fmt.Errorf("%w: %v", kerrors.ErrUsage, err)
	}
	return nil
}

func isCobraUsageError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "required flag") ||
		strings.HasPrefix(msg, "invalid argument")
}
