package prompt

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

// ErrCodeInvalidSubmission marks data that still fails validation after
// the allowed number of attempts.
const ErrCodeInvalidSubmission = "INVALID_SUBMISSION"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrInvalidSubmission is returned by Fill when answers keep failing
	// the compiled rules.
	ErrInvalidSubmission = goerrors.New("prompt: submission data is invalid", goerrors.CategoryValidation).
				WithTextCode(ErrCodeInvalidSubmission)
)
