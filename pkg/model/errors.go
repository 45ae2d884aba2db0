package model

import (
	stderrors "errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	ErrCodeMalformedStep       = "MALFORMED_STEP_DEFINITION"
	ErrCodeInvalidTransaction  = "INVALID_TRANSACTION"
	ErrCodeUnsupportedResponse = "UNSUPPORTED_RESPONSE"
)

var (
	// ErrMalformedStep reports a step definition bug such as several submit
	// buttons without explicit submit options.
	ErrMalformedStep = goerrors.New("malformed step definition", goerrors.CategoryHandler).
				WithTextCode(ErrCodeMalformedStep)
	ErrInvalidTransaction = goerrors.New("invalid transaction", goerrors.CategoryBadInput).
				WithTextCode(ErrCodeInvalidTransaction)
	ErrUnsupportedResponse = goerrors.New("unsupported response", goerrors.CategoryExternal).
				WithTextCode(ErrCodeUnsupportedResponse)
)

// NewError clones base with message and metadata attached.
func NewError(base *goerrors.Error, message string, metadata map[string]any) *goerrors.Error {
	err := base.Clone()
	if message != "" {
		err.Message = message
	}
	if len(metadata) > 0 {
		err = err.WithMetadata(metadata)
	}
	return err
}

// ErrorCode returns the text code of err or "" when err carries none.
func ErrorCode(err error) string {
	var ge *goerrors.Error
	if stderrors.As(err, &ge) {
		return ge.TextCode
	}
	return ""
}

// IsMalformedStep reports whether err signals a malformed step definition.
func IsMalformedStep(err error) bool {
	return ErrorCode(err) == ErrCodeMalformedStep
}
