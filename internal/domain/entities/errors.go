package entities

import "errors"

// Domain errors
var (
	// Rule configuration errors
	ErrNoRules             = errors.New("rule set is empty")
	ErrMultipleDefaults    = errors.New("more than one default rule")
	ErrUnknownMetric       = errors.New("unknown metric")
	ErrUnsupportedOperator = errors.New("unsupported operator")
	ErrInvalidRule         = errors.New("invalid rule")

	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Analysis errors
	ErrAnalysisNotFound = errors.New("analysis not found")
)
