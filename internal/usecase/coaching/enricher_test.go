package coaching

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	ucerrors "github.com/johnquangdev/interview-coach/internal/usecase/errors"
)

type fakeGenerator struct {
	text    string
	err     error
	calls   int
	prompts []string
}

func (g *fakeGenerator) GenerateCoachingLine(_ context.Context, prompt string) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, prompt)
	return g.text, g.err
}

func baseResponse(anxiety float64) entities.CoachingResponse {
	return entities.CoachingResponse{
		SessionID:            "s1",
		State:                "Default",
		Scores:               entities.CoachingScore{Confidence: 0.7, Anxiety: anxiety},
		Subtitle:             "Keep going",
		Tip:                  "Stay steady",
		TTSText:              "Keep",
		TranscriptHighlights: []string{"um i think"},
	}
}

func TestEnrichDisabledReturnsInputUnchanged(t *testing.T) {
	gen := &fakeGenerator{text: "new tip"}
	e := NewEnricher(false, gen, NewFillerExtractor(DefaultFillerWords))

	in := baseResponse(0.1)
	got := e.Enrich(context.Background(), in, []string{"um um um um"})
	if !got.Skipped {
		t.Fatal("Skipped=false, want true")
	}
	if !reflect.DeepEqual(got.Response, in) {
		t.Fatalf("response changed: %+v", got.Response)
	}
	if gen.calls != 0 {
		t.Fatalf("generator called %d times while disabled", gen.calls)
	}
}

func TestEnrichReplacesTipOnSuccess(t *testing.T) {
	gen := &fakeGenerator{text: "  Pause, then lead with the result.  "}
	e := NewEnricher(true, gen, NewFillerExtractor(DefaultFillerWords))

	got := e.Enrich(context.Background(), baseResponse(0.2), []string{"We shipped it"})
	if got.GeneratorErr != nil {
		t.Fatalf("GeneratorErr=%v", got.GeneratorErr)
	}
	if !got.TipReplaced {
		t.Fatal("TipReplaced=false")
	}
	if got.Response.Tip != "Pause, then lead with the result." || got.Response.TTSText != got.Response.Tip {
		t.Fatalf("tip=%q tts=%q", got.Response.Tip, got.Response.TTSText)
	}
	if got.Response.Subtitle != "Keep going" {
		t.Fatalf("subtitle changed to %q", got.Response.Subtitle)
	}
	if gen.calls != 1 {
		t.Fatalf("generator calls=%d, want a single attempt", gen.calls)
	}
}

func TestEnrichDegradesSilently(t *testing.T) {
	tests := []struct {
		name    string
		gen     TextGenerator
		wantErr error
	}{
		{"unreachable", &fakeGenerator{err: errors.New("dial tcp: connection refused")}, nil},
		{"empty completion", &fakeGenerator{text: "   "}, ucerrors.ErrEmptyCompletion},
		{"not configured", nil, ucerrors.ErrGeneratorUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnricher(true, tt.gen, NewFillerExtractor(DefaultFillerWords))
			got := e.Enrich(context.Background(), baseResponse(0.2), []string{"We shipped it"})
			if got.GeneratorErr == nil {
				t.Fatal("GeneratorErr=nil, want failure reason")
			}
			if tt.wantErr != nil && !errors.Is(got.GeneratorErr, tt.wantErr) {
				t.Fatalf("GeneratorErr=%v, want %v", got.GeneratorErr, tt.wantErr)
			}
			if got.TipReplaced || got.Response.Tip != "Stay steady" || got.Response.TTSText != "Keep" {
				t.Fatalf("tip=%q tts=%q, want original text", got.Response.Tip, got.Response.TTSText)
			}
		})
	}
}

func TestEnrichAnxietyNeverDecreases(t *testing.T) {
	transcripts := [][]string{
		nil,
		{"We shipped it on time"},
		{"um so um", "uh... like... um"},
		{"um um um um um um um um... ... ... ... ..."},
	}
	for _, lines := range transcripts {
		for _, anxiety := range []float64{0, 0.1, 0.25, 0.5, 0.75, 1} {
			e := NewEnricher(true, &fakeGenerator{err: errors.New("down")}, NewFillerExtractor(DefaultFillerWords))
			got := e.Enrich(context.Background(), baseResponse(anxiety), lines)
			if got.Response.Scores.Anxiety < anxiety {
				t.Fatalf("anxiety dropped from %.2f to %.2f for %q", anxiety, got.Response.Scores.Anxiety, lines)
			}
			if got.Response.Scores.Confidence != 0.7 {
				t.Fatalf("confidence changed to %.2f", got.Response.Scores.Confidence)
			}
		}
	}
}

func TestEnrichRaisesAnxietyToMumbleScore(t *testing.T) {
	e := NewEnricher(true, nil, NewFillerExtractor(DefaultFillerWords))
	// 2 fillers in 4 tokens and 4 pause markers: 0.5*0.5 + 0.05*4
	got := e.Enrich(context.Background(), baseResponse(0.1), []string{"um... well... uh... ok..."})
	if !got.AnxietyRaised {
		t.Fatal("AnxietyRaised=false")
	}
	if !approxEqual(got.Response.Scores.Anxiety, 0.45) {
		t.Fatalf("anxiety=%.4f, want 0.45", got.Response.Scores.Anxiety)
	}
}

func TestEnrichDoesNotMutateInput(t *testing.T) {
	e := NewEnricher(true, &fakeGenerator{text: "new"}, NewFillerExtractor(DefaultFillerWords))
	in := baseResponse(0)
	got := e.Enrich(context.Background(), in, []string{"um um"})
	got.Response.TranscriptHighlights[0] = "changed"
	if in.Tip != "Stay steady" || in.Scores.Anxiety != 0 || in.TranscriptHighlights[0] != "um i think" {
		t.Fatalf("input mutated: %+v", in)
	}
}

func TestBuildEnrichmentPrompt(t *testing.T) {
	score := entities.CoachingScore{Confidence: 0.7, Anxiety: 0.25}
	got := BuildEnrichmentPrompt(score, []string{"one", "two", "three", "four"})
	want := "Confidence=0.70, Anxiety=0.25. Recent transcript: two three four"
	if got != want {
		t.Fatalf("prompt=%q, want %q", got, want)
	}
	if got := BuildEnrichmentPrompt(score, nil); got != "Confidence=0.70, Anxiety=0.25. Recent transcript: " {
		t.Fatalf("prompt=%q", got)
	}
}
