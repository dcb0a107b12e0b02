package errors

import "strconv"

// ErrorCode is the machine-readable error code returned in error bodies
type ErrorCode int32

const (
	ErrorCode_UNSPECIFIED ErrorCode = 0

	// HTTP
	ErrorCode_HTTP_OK ErrorCode = 200

	// General
	ErrorCode_INTERNAL            ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT    ErrorCode = 1001
	ErrorCode_NOT_FOUND           ErrorCode = 1002
	ErrorCode_INVALID_PAYLOAD     ErrorCode = 1003
	ErrorCode_VALIDATION_FAILED   ErrorCode = 1004
	ErrorCode_SERVICE_UNAVAILABLE ErrorCode = 1005

	// Coaching sessions
	ErrorCode_SESSION_NOT_FOUND ErrorCode = 2000

	// Media analysis
	ErrorCode_MEDIA_UNSUPPORTED_TYPE ErrorCode = 3000
	ErrorCode_MEDIA_UPLOAD_FAILED    ErrorCode = 3001
	ErrorCode_ANALYSIS_NOT_FOUND     ErrorCode = 3002
	ErrorCode_ANALYSIS_FAILED        ErrorCode = 3003

	// Integrations
	ErrorCode_INTEGRATION_STORAGE_FAILED      ErrorCode = 4000
	ErrorCode_INTEGRATION_STORAGE_DISABLED    ErrorCode = 4001
	ErrorCode_INTEGRATION_DATABASE_DISABLED   ErrorCode = 4002
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED ErrorCode = 4003
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_UNSPECIFIED:                     "UNSPECIFIED",
	ErrorCode_HTTP_OK:                         "HTTP_OK",
	ErrorCode_INTERNAL:                        "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:                "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                       "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:                 "INVALID_PAYLOAD",
	ErrorCode_VALIDATION_FAILED:               "VALIDATION_FAILED",
	ErrorCode_SERVICE_UNAVAILABLE:             "SERVICE_UNAVAILABLE",
	ErrorCode_SESSION_NOT_FOUND:               "SESSION_NOT_FOUND",
	ErrorCode_MEDIA_UNSUPPORTED_TYPE:          "MEDIA_UNSUPPORTED_TYPE",
	ErrorCode_MEDIA_UPLOAD_FAILED:             "MEDIA_UPLOAD_FAILED",
	ErrorCode_ANALYSIS_NOT_FOUND:              "ANALYSIS_NOT_FOUND",
	ErrorCode_ANALYSIS_FAILED:                 "ANALYSIS_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED:      "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_STORAGE_DISABLED:    "INTEGRATION_STORAGE_DISABLED",
	ErrorCode_INTEGRATION_DATABASE_DISABLED:   "INTEGRATION_DATABASE_DISABLED",
	ErrorCode_INTEGRATION_EXTERNAL_API_FAILED: "INTEGRATION_EXTERNAL_API_FAILED",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "ErrorCode(" + strconv.Itoa(int(c)) + ")"
}

// MarshalText renders the code by name in JSON bodies
func (c ErrorCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
