package entities

import (
	"fmt"
	"math"
	"strings"
)

// Metric selects a field of CoachingScore
type Metric int

const (
	MetricConfidence Metric = iota + 1
	MetricAnxiety
)

// ParseMetric resolves a metric name from a rule file
func ParseMetric(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "confidence":
		return MetricConfidence, nil
	case "anxiety":
		return MetricAnxiety, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// Valid reports whether m names a score field
func (m Metric) Valid() bool {
	return m == MetricConfidence || m == MetricAnxiety
}

func (m Metric) String() string {
	switch m {
	case MetricConfidence:
		return "confidence"
	case MetricAnxiety:
		return "anxiety"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// Operator is a threshold comparison
type Operator int

const (
	OpGreaterOrEqual Operator = iota + 1
	OpGreater
	OpLessOrEqual
	OpLess
	OpEqual
	OpNotEqual
)

// EqualityTolerance is the absolute tolerance used by OpEqual and OpNotEqual
const EqualityTolerance = 1e-6

var operatorAliases = map[string]Operator{
	">=": OpGreaterOrEqual, "≥": OpGreaterOrEqual, "gte": OpGreaterOrEqual,
	">": OpGreater, "gt": OpGreater,
	"<=": OpLessOrEqual, "≤": OpLessOrEqual, "lte": OpLessOrEqual,
	"<": OpLess, "lt": OpLess,
	"==": OpEqual, "=": OpEqual, "eq": OpEqual,
	"!=": OpNotEqual, "≠": OpNotEqual, "ne": OpNotEqual,
}

// ParseOperator resolves symbolic and word operator forms
func ParseOperator(s string) (Operator, error) {
	if op, ok := operatorAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return op, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedOperator, s)
}

// Valid reports whether o is a known comparison
func (o Operator) Valid() bool {
	return o >= OpGreaterOrEqual && o <= OpNotEqual
}

func (o Operator) String() string {
	switch o {
	case OpGreaterOrEqual:
		return ">="
	case OpGreater:
		return ">"
	case OpLessOrEqual:
		return "<="
	case OpLess:
		return "<"
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// Compare applies the operator to (actual, expected)
func (o Operator) Compare(actual, expected float64) bool {
	switch o {
	case OpGreaterOrEqual:
		return actual >= expected
	case OpGreater:
		return actual > expected
	case OpLessOrEqual:
		return actual <= expected
	case OpLess:
		return actual < expected
	case OpEqual:
		return math.Abs(actual-expected) <= EqualityTolerance
	case OpNotEqual:
		return math.Abs(actual-expected) > EqualityTolerance
	default:
		return false
	}
}

// Threshold is one resolved comparison against a score field
type Threshold struct {
	Metric   Metric
	Operator Operator
	Value    float64
}

// Matches reports whether the score satisfies the threshold
func (t Threshold) Matches(score CoachingScore) bool {
	return t.Operator.Compare(score.Value(t.Metric), t.Value)
}

func (t Threshold) String() string {
	return fmt.Sprintf("%s %s %g", t.Metric, t.Operator, t.Value)
}

// CannedResponse is the text attached to a rule
type CannedResponse struct {
	ID       string `json:"id" yaml:"id"`
	Subtitle string `json:"subtitle" yaml:"subtitle"`
	Tip      string `json:"tip" yaml:"tip"`
	TTSText  string `json:"tts_text" yaml:"tts_text"`
}

// StateRule maps a conjunction of thresholds to a coaching state
type StateRule struct {
	ID         string
	Name       string
	Thresholds []Threshold
	Default    bool
	Response   CannedResponse
}

// Matches reports whether every threshold holds. A rule without thresholds always matches.
func (r StateRule) Matches(score CoachingScore) bool {
	for _, t := range r.Thresholds {
		if !t.Matches(score) {
			return false
		}
	}
	return true
}
