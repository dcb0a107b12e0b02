package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
)

// Media analysis errors
var (
	ErrUnsupportedMediaType  = errors.New("unsupported media type")
	ErrUploadFailed          = errors.New("media upload failed")
	ErrStorageNotConfigured  = errors.New("media storage is not configured")
	ErrAnalysisNotFound      = errors.New("analysis not found")
	ErrAnalysisStoreDisabled = errors.New("analysis history is not enabled")
)

// External provider errors
var (
	ErrGeneratorUnavailable = errors.New("text generator is not configured")
	ErrEmptyCompletion      = errors.New("text generator returned an empty completion")
	ErrPollTimeout          = errors.New("provider job did not finish in time")
	ErrJobFailed            = errors.New("provider job failed")
	ErrFormatNotSupported   = errors.New("media format not supported by provider")
)
