package entities

import (
	"errors"
	"testing"
)

func TestParseOperatorAliases(t *testing.T) {
	cases := map[string]Operator{
		">=": OpGreaterOrEqual, "gte": OpGreaterOrEqual, "≥": OpGreaterOrEqual,
		">": OpGreater, "GT": OpGreater,
		"<=": OpLessOrEqual, "lte": OpLessOrEqual, "≤": OpLessOrEqual,
		"<": OpLess, " lt ": OpLess,
		"==": OpEqual, "eq": OpEqual,
		"!=": OpNotEqual, "ne": OpNotEqual, "≠": OpNotEqual,
	}
	for in, want := range cases {
		got, err := ParseOperator(in)
		if err != nil || got != want {
			t.Errorf("ParseOperator(%q)=%v,%v want %v", in, got, err, want)
		}
	}
	if _, err := ParseOperator("=>"); !errors.Is(err, ErrUnsupportedOperator) {
		t.Fatalf("err=%v, want ErrUnsupportedOperator", err)
	}
}

func TestOperatorCompare(t *testing.T) {
	tests := []struct {
		op       Operator
		actual   float64
		expected float64
		want     bool
	}{
		{OpGreaterOrEqual, 0.6, 0.6, true},
		{OpGreater, 0.6, 0.6, false},
		{OpLessOrEqual, 0.6, 0.6, true},
		{OpLess, 0.59, 0.6, true},
		{OpEqual, 0.6000001, 0.6, true},
		{OpEqual, 0.601, 0.6, false},
		{OpNotEqual, 0.6000001, 0.6, false},
		{OpNotEqual, 0.7, 0.6, true},
		{Operator(0), 1, 0, false},
	}
	for _, tt := range tests {
		if got := tt.op.Compare(tt.actual, tt.expected); got != tt.want {
			t.Errorf("%v.Compare(%v,%v)=%v, want %v", tt.op, tt.actual, tt.expected, got, tt.want)
		}
	}
}

func TestParseMetric(t *testing.T) {
	if m, err := ParseMetric("Confidence"); err != nil || m != MetricConfidence {
		t.Fatalf("ParseMetric(Confidence)=%v,%v", m, err)
	}
	if m, err := ParseMetric("anxiety"); err != nil || m != MetricAnxiety {
		t.Fatalf("ParseMetric(anxiety)=%v,%v", m, err)
	}
	if _, err := ParseMetric("energy"); !errors.Is(err, ErrUnknownMetric) {
		t.Fatalf("err=%v, want ErrUnknownMetric", err)
	}
}

func TestNewCoachingScoreClamps(t *testing.T) {
	s := NewCoachingScore(1.4, -0.2)
	if s.Confidence != 1 || s.Anxiety != 0 {
		t.Fatalf("score=%+v, want {1 0}", s)
	}
	if got := s.WithAnxiety(3).Anxiety; got != 1 {
		t.Fatalf("WithAnxiety clamp=%v", got)
	}
}
