package markdowncmd

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	usageCode        = "MD2HTML_USAGE"
	missingInputCode = "MD2HTML_MISSING_INPUT"
)

var (
	// ErrUsage reports that the converter was invoked without both paths.
	ErrUsage = errors.New("markdown2html: input and output paths are required")
	// ErrMissingInput reports that the input path does not name an existing file.
	ErrMissingInput = errors.New("markdown2html: input file not found")
)

// UsageError wraps ErrUsage in the validation category.
func UsageError() error {
	return goerrors.Wrap(ErrUsage, goerrors.CategoryValidation, "Usage: markdown2html README.md README.html").
		WithTextCode(usageCode)
}

// MissingInputError wraps ErrMissingInput in the not-found category. Its
// message reads "Missing <path>".
func MissingInputError(path string) error {
	return goerrors.Wrap(ErrMissingInput, goerrors.CategoryNotFound, "Missing "+path).
		WithTextCode(missingInputCode)
}
