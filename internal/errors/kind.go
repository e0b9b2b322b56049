package errors

import "errors"

// Kind classifies an error for reporting and exit status.
type Kind int

const (
	KindNone Kind = iota
	KindOther
	KindUsage
	KindIO
	KindFormat
	KindAuthentication
)

var (
	ioErrors = []error{ErrReadInput, ErrWriteOutput, ErrKeyNotFound}

	formatErrors = []error{
		ErrInvalidKeyLength,
		ErrInvalidKey,
		ErrInvalidSignatureLength,
		ErrInvalidEncoding,
		ErrInvalidEnvelope,
		ErrInvalidFormat,
	}

	usageErrors = []error{ErrUsage, ErrMissingSecret, ErrInvalidExpiry}
)

// KindOf reports which kind err belongs to. Authentication wins over the
// other kinds, then format, I/O and usage in that order.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}
	if errors.Is(err, ErrAuthenticationFailed) {
		return KindAuthentication
	}
	if isAny(err, formatErrors) {
		return KindFormat
	}
	if isAny(err, ioErrors) {
		return KindIO
	}
	if isAny(err, usageErrors) {
		return KindUsage
	}
	return KindOther
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	switch KindOf(err) {
	case KindNone:
		return 0
	case KindUsage:
		return 2
	case KindIO:
		return 3
	case KindFormat:
		return 4
	case KindAuthentication:
		return 5
	default:
		return 1
	}
}

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindUsage:
		return "usage"
	case KindIO:
		return "io"
	case KindFormat:
		return "format"
	case KindAuthentication:
		return "authentication"
	default:
		return "other"
	}
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
