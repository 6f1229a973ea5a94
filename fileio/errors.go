package fileio

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	platformerrors "github.com/jmgilman/go/errors"
)

// Sentinel errors for package fileio.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Codec errors
	ErrUnsupportedDType = errors.New("unsupported dtype")
	ErrContentMismatch  = errors.New("content does not match dtype")
	ErrMalformed        = errors.New("malformed content")
	ErrInvalidIdent     = errors.New("invalid identifier")

	// File and directory errors
	ErrExpectedFile      = errors.New("expected file, got directory")
	ErrExpectedDirectory = errors.New("expected directory but got file")
)

// Code returns the platform error code attached to err.
// It returns CodeUnknown for nil or unclassified errors.
func Code(err error) platformerrors.ErrorCode {
	return platformerrors.GetCode(err)
}

// IsNotFound reports whether err was caused by a missing file.
func IsNotFound(err error) bool {
	return Code(err) == platformerrors.CodeNotFound
}

// wrapError classifies err and prefixes it with the operation and path.
// The original error chain is preserved for errors.Is/errors.As.
func wrapError(err error, op, path string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s %s: %w", op, path, classifyError(err))
}

// classifyError maps file and codec failures to platform error codes.
func classifyError(err error) error {
	var platformErr platformerrors.PlatformError
	switch {
	case errors.As(err, &platformErr):
		return err
	case errors.Is(err, fs.ErrNotExist):
		return platformerrors.Wrap(err, platformerrors.CodeNotFound, "file not found")
	case errors.Is(err, ErrMalformed):
		return platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "file is corrupted")
	case errors.Is(err, ErrUnsupportedDType),
		errors.Is(err, ErrContentMismatch),
		errors.Is(err, ErrInvalidIdent),
		errors.Is(err, ErrExpectedFile),
		errors.Is(err, ErrExpectedDirectory):
		return platformerrors.Wrap(err, platformerrors.CodeInvalidInput, "invalid input")
	case errors.Is(err, fs.ErrPermission):
		return platformerrors.Wrap(err, platformerrors.CodeForbidden, "permission denied")
	case errors.Is(err, context.DeadlineExceeded):
		return platformerrors.Wrap(err, platformerrors.CodeTimeout, "deadline exceeded")
	case errors.Is(err, context.Canceled):
		return platformerrors.Wrap(err, platformerrors.CodeInternal, "operation canceled")
	default:
		return platformerrors.Wrap(err, platformerrors.CodeInternal, "i/o error")
	}
}

// diagnostic returns the human-readable log message for a classified error.
func diagnostic(err error) string {
	var platformErr platformerrors.PlatformError
	if errors.As(err, &platformErr) {
		return platformErr.Message()
	}
	return "error"
}
