package coaching

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
)

// RuleFormat is the encoding of a rule file
type RuleFormat string

const (
	RuleFormatJSON RuleFormat = "json"
	RuleFormatYAML RuleFormat = "yaml"
)

type ruleFile struct {
	States []ruleDocument `json:"states" yaml:"states"`
}

type ruleDocument struct {
	ID         string                  `json:"id" yaml:"id"`
	Name       string                  `json:"name" yaml:"name"`
	Default    bool                    `json:"default" yaml:"default"`
	Thresholds []thresholdDocument     `json:"thresholds" yaml:"thresholds"`
	Response   entities.CannedResponse `json:"response" yaml:"response"`
}

type thresholdDocument struct {
	Metric   string  `json:"metric" yaml:"metric"`
	Operator string  `json:"operator" yaml:"operator"`
	Value    float64 `json:"value" yaml:"value"`
}

// FormatFromPath picks the rule format from the file extension
func FormatFromPath(path string) RuleFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return RuleFormatYAML
	default:
		return RuleFormatJSON
	}
}

// LoadRules reads and resolves a rule file
func LoadRules(path string) ([]entities.StateRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}
	rules, err := ParseRules(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("load rules %s: %w", path, err)
	}
	return rules, nil
}

// LoadRuleEngine loads a rule file and builds the engine from it
func LoadRuleEngine(path string) (*RuleEngine, error) {
	rules, err := LoadRules(path)
	if err != nil {
		return nil, err
	}
	engine, err := NewRuleEngine(rules)
	if err != nil {
		return nil, fmt.Errorf("load rules %s: %w", path, err)
	}
	return engine, nil
}

// ParseRules decodes rule documents and resolves metric and operator names
func ParseRules(data []byte, format RuleFormat) ([]entities.StateRule, error) {
	var doc ruleFile
	var err error
	switch format {
	case RuleFormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		err = json.Unmarshal(data, &doc)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}
	if len(doc.States) == 0 {
		return nil, entities.ErrNoRules
	}

	rules := make([]entities.StateRule, 0, len(doc.States))
	for i, d := range doc.States {
		if d.ID == "" {
			return nil, fmt.Errorf("%w: state %d has no id", entities.ErrInvalidRule, i)
		}
		rule := entities.StateRule{
			ID:       d.ID,
			Name:     d.Name,
			Default:  d.Default,
			Response: d.Response,
		}
		if rule.Name == "" {
			rule.Name = d.ID
		}
		for _, td := range d.Thresholds {
			metric, err := entities.ParseMetric(td.Metric)
			if err != nil {
				return nil, fmt.Errorf("state %q: %w", d.ID, err)
			}
			op, err := entities.ParseOperator(td.Operator)
			if err != nil {
				return nil, fmt.Errorf("state %q: %w", d.ID, err)
			}
			rule.Thresholds = append(rule.Thresholds, entities.Threshold{
				Metric:   metric,
				Operator: op,
				Value:    td.Value,
			})
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
