package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")
	ErrResumeEmpty         = errors.New("resume text empty or too short")
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// ErrPersistenceDisabled marks read paths that need the match store
	// while the service runs without a database.
	ErrPersistenceDisabled = errors.New("persistence disabled")
)
