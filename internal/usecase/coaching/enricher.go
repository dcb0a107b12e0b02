package coaching

import (
	"context"
	"fmt"
	"strings"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	ucerrors "github.com/johnquangdev/interview-coach/internal/usecase/errors"
)

// recentLineCount is how many trailing transcript lines go into the prompt
const recentLineCount = 3

// TextGenerator produces one coaching line for a prompt
type TextGenerator interface {
	GenerateCoachingLine(ctx context.Context, prompt string) (string, error)
}

// EnrichmentResult reports what enrichment changed and why it degraded
type EnrichmentResult struct {
	Response      entities.CoachingResponse
	Skipped       bool
	GeneratorErr  error
	TipReplaced   bool
	AnxietyRaised bool
	MumbleScore   float64
}

// Enricher augments a rule-engine verdict with generated text and the local mumble heuristic.
// It never fails; degradations are reported in EnrichmentResult.
type Enricher struct {
	enabled   bool
	generator TextGenerator
	fillers   *FillerExtractor
}

// NewEnricher builds an enricher. generator may be nil when no provider is configured.
func NewEnricher(enabled bool, generator TextGenerator, fillers *FillerExtractor) *Enricher {
	return &Enricher{
		enabled:   enabled,
		generator: generator,
		fillers:   fillers,
	}
}

// Enabled reports whether external enrichment is switched on
func (e *Enricher) Enabled() bool {
	return e.enabled
}

// Enrich returns resp unchanged when disabled. Otherwise it makes a single generator
// attempt and raises anxiety to the transcript mumble score when that is higher.
func (e *Enricher) Enrich(ctx context.Context, resp entities.CoachingResponse, lines []string) EnrichmentResult {
	result := EnrichmentResult{Response: resp.Clone()}
	if !e.enabled {
		result.Skipped = true
		return result
	}

	tip, err := e.generate(ctx, BuildEnrichmentPrompt(resp.Scores, lines))
	if err != nil {
		result.GeneratorErr = err
	} else {
		result.Response.Tip = tip
		result.Response.TTSText = tip
		result.TipReplaced = true
	}

	if len(lines) > 0 {
		stats := e.fillers.AnalyzeTranscript(strings.Join(lines, " "))
		result.MumbleScore = stats.MumbleScore
		if stats.MumbleScore > result.Response.Scores.Anxiety {
			result.Response.Scores = result.Response.Scores.WithAnxiety(stats.MumbleScore)
			result.AnxietyRaised = true
		}
	}
	return result
}

func (e *Enricher) generate(ctx context.Context, prompt string) (string, error) {
	if e.generator == nil {
		return "", ucerrors.ErrGeneratorUnavailable
	}
	text, err := e.generator.GenerateCoachingLine(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate coaching line: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ucerrors.ErrEmptyCompletion
	}
	return text, nil
}

// BuildEnrichmentPrompt embeds the scores and the last three transcript lines
func BuildEnrichmentPrompt(score entities.CoachingScore, lines []string) string {
	recent := lines
	if len(recent) > recentLineCount {
		recent = recent[len(recent)-recentLineCount:]
	}
	return fmt.Sprintf("Confidence=%.2f, Anxiety=%.2f. Recent transcript: %s",
		score.Confidence, score.Anxiety, strings.Join(recent, " "))
}
