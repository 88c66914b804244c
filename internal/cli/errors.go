package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tablero/internal/models"
)

// Error codes reported in JSON output
const (
	CodeValidation     = "VALIDATION_ERROR"
	CodeNotFound       = "CARD_NOT_FOUND"
	CodeWipLimit       = "WIP_LIMIT_EXCEEDED"
	CodeInitialization = "INITIALIZATION_ERROR"
	CodeInternal       = "INTERNAL_ERROR"
	CodeUsage          = "INVALID_INPUT"
)

// CodedError carries the process exit code for a failed command
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code for err: 0 for nil, the carried code for a
// CodedError, ExitError otherwise
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}
	return ExitError
}

// Classify maps a service error to its JSON code, exit code and a suggestion
func Classify(err error) (code string, exit int, suggestion string) {
	var wipErr *models.WipLimitExceededError
	switch {
	case errors.As(err, &wipErr):
		return CodeWipLimit, ExitWipLimit,
			fmt.Sprintf("Move a card out of %q first, or raise its wip_limit in the config", wipErr.ListID)
	case errors.Is(err, models.ErrNotFound):
		return CodeNotFound, ExitNotFound, "Use 'tablero board show' to see card IDs"
	case errors.Is(err, models.ErrValidation):
		return CodeValidation, ExitValidation, ""
	default:
		return CodeInternal, ExitError, ""
	}
}

// HandleServiceError reports err through the formatter and returns it with
// the matching exit code attached
func HandleServiceError(formatter *OutputFormatter, err error) error {
	code, exit, suggestion := Classify(err)
	if exit == ExitError {
		slog.Error("command failed", "error", err)
	}
	if fmtErr := formatter.ErrorWithSuggestion(code, err.Error(), suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CodedError{Code: exit, Err: err}
}

// UsageError reports a usage problem and returns it with ExitUsage attached
func UsageError(formatter *OutputFormatter, message, suggestion string) error {
	if fmtErr := formatter.ErrorWithSuggestion(CodeUsage, message, suggestion); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CodedError{Code: ExitUsage, Err: errors.New(message)}
}

// InitError reports a failure to open the board
func InitError(formatter *OutputFormatter, err error) error {
	slog.Error("failed to initialize CLI", "error", err)
	if fmtErr := formatter.Error(CodeInitialization, err.Error()); fmtErr != nil {
		slog.Error("failed to format error message", "error", fmtErr)
	}
	return &CodedError{Code: ExitError, Err: err}
}
