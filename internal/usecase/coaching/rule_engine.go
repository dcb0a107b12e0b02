package coaching

import (
	"fmt"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// RuleEngine classifies a score into a coaching state.
// Rules are scanned in order and the first match wins; the default rule is used when nothing matches.
type RuleEngine struct {
	rules           []entities.StateRule
	fallback        entities.StateRule
	explicitDefault bool
}

// NewRuleEngine validates the rule set. With no rule marked default, the last rule is the default.
func NewRuleEngine(rules []entities.StateRule) (*RuleEngine, error) {
	if len(rules) == 0 {
		return nil, entities.ErrNoRules
	}

	defaultIdx := -1
	for i, rule := range rules {
		if rule.ID == "" {
			return nil, fmt.Errorf("%w: rule %d has no id", entities.ErrInvalidRule, i)
		}
		for _, t := range rule.Thresholds {
			if !t.Metric.Valid() {
				return nil, fmt.Errorf("rule %q: %w: %s", rule.ID, entities.ErrUnknownMetric, t.Metric)
			}
			if !t.Operator.Valid() {
				return nil, fmt.Errorf("rule %q: %w: %s", rule.ID, entities.ErrUnsupportedOperator, t.Operator)
			}
		}
		if rule.Default {
			if defaultIdx >= 0 {
				return nil, fmt.Errorf("%w: %q and %q", entities.ErrMultipleDefaults, rules[defaultIdx].ID, rule.ID)
			}
			defaultIdx = i
		}
	}

	engine := &RuleEngine{
		rules:           append([]entities.StateRule(nil), rules...),
		explicitDefault: defaultIdx >= 0,
	}
	if defaultIdx < 0 {
		defaultIdx = len(rules) - 1
	}
	engine.fallback = engine.rules[defaultIdx]
	return engine, nil
}

// Select returns the first rule whose thresholds all hold, or the default rule
func (e *RuleEngine) Select(score entities.CoachingScore) entities.StateRule {
	for _, rule := range e.rules {
		if rule.Matches(score) {
			return rule
		}
	}
	return e.fallback
}

// Evaluate builds a fresh response from the selected rule's canned text
func (e *RuleEngine) Evaluate(sessionID string, score entities.CoachingScore, latencyMS *float64) entities.CoachingResponse {
	rule := e.Select(score)
	resp := entities.CoachingResponse{
		SessionID:            sessionID,
		State:                rule.Name,
		Scores:               score,
		Subtitle:             rule.Response.Subtitle,
		Tip:                  rule.Response.Tip,
		TTSText:              rule.Response.TTSText,
		TranscriptHighlights: []string{},
	}
	if latencyMS != nil {
		latency := *latencyMS
		resp.LatencyMS = &latency
	}
	return resp
}

// Rules returns a copy of the configured rules in order
func (e *RuleEngine) Rules() []entities.StateRule {
	return append([]entities.StateRule(nil), e.rules...)
}

// Default returns the rule used when nothing matches
func (e *RuleEngine) Default() entities.StateRule {
	return e.fallback
}

// HasExplicitDefault reports whether a rule was marked default in configuration
func (e *RuleEngine) HasExplicitDefault() bool {
	return e.explicitDefault
}
