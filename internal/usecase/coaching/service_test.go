package coaching

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/johnquangdev/interview-coach/internal/domain/entities"
	ucerrors "github.com/johnquangdev/interview-coach/internal/usecase/errors"
)

type fakeSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*entities.Session
	writes   int
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entities.Session)}
}

func (r *fakeSessionRepo) Create(_ context.Context, s *entities.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *s
	r.sessions[s.ID] = &cp
	return nil
}

func (r *fakeSessionRepo) FindByID(_ context.Context, id string) (*entities.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, entities.ErrSessionNotFound
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSessionRepo) SetLastResponse(_ context.Context, id string, resp entities.CoachingResponse) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return entities.ErrSessionNotFound
	}
	s.SetLastResponse(resp)
	r.writes++
	return nil
}

func newTestService(t *testing.T, enricher *Enricher) (Service, *fakeSessionRepo) {
	t.Helper()
	repo := newFakeSessionRepo()
	engine := mustEngine(t, anxiousRule(), confidentRule(), defaultRule())
	fillers := NewFillerExtractor(DefaultFillerWords)
	if enricher == nil {
		enricher = NewEnricher(false, nil, fillers)
	}
	svc := NewService(repo, engine, fillers, enricher, AlertThresholds{LowConfidence: 0.45, HighAnxiety: 0.6}, nil)
	return svc, repo
}

func TestCreateSessionRecordsBaseline(t *testing.T) {
	svc, repo := newTestService(t, nil)

	resp, err := svc.CreateSession(context.Background(), "candidate")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if len(resp.SessionID) != 32 {
		t.Fatalf("session id %q, want 32 hex chars", resp.SessionID)
	}
	if resp.Scores != BaselineScore || resp.State != "Default" {
		t.Fatalf("baseline response %+v", resp)
	}

	stored, err := repo.FindByID(context.Background(), resp.SessionID)
	if err != nil {
		t.Fatalf("session not stored: %v", err)
	}
	if stored.LastResponse == nil || stored.LastResponse.State != "Default" {
		t.Fatalf("last response not recorded: %+v", stored.LastResponse)
	}
}

func TestIngestUnknownSession(t *testing.T) {
	svc, _ := newTestService(t, nil)
	_, err := svc.Ingest(context.Background(), "missing", snapshotFactory(nil))
	if !errors.Is(err, ucerrors.ErrSessionNotFound) {
		t.Fatalf("err=%v, want ErrSessionNotFound", err)
	}
	_, err = svc.LastResponse(context.Background(), "missing")
	if !errors.Is(err, ucerrors.ErrSessionNotFound) {
		t.Fatalf("err=%v, want ErrSessionNotFound", err)
	}
}

func TestIngestEndToEnd(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()
	created, err := svc.CreateSession(ctx, "")
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	snap := snapshotFactory(func(s *entities.SignalSnapshot) {
		s.LatencyMS = floatPtr(180)
	})
	resp, err := svc.Ingest(ctx, created.SessionID, snap)
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if resp.State != "Confident" {
		t.Fatalf("state=%s, want Confident", resp.State)
	}
	if !approxEqual(resp.Scores.Confidence, 0.73) || !approxEqual(resp.Scores.Anxiety, 0.135) {
		t.Fatalf("scores=%+v", resp.Scores)
	}
	if !reflect.DeepEqual(resp.TranscriptHighlights, []string{"i actually delivered the feature"}) {
		t.Fatalf("highlights=%q", resp.TranscriptHighlights)
	}
	if resp.LatencyMS == nil || *resp.LatencyMS != 180 {
		t.Fatalf("latency=%v", resp.LatencyMS)
	}

	last, err := svc.LastResponse(ctx, created.SessionID)
	if err != nil {
		t.Fatalf("LastResponse: %v", err)
	}
	if !reflect.DeepEqual(last, resp) {
		t.Fatalf("last=%+v, want %+v", last, resp)
	}
}

func TestIngestEnrichesWithGenerator(t *testing.T) {
	gen := &fakeGenerator{text: "Lead with the outcome."}
	fillers := NewFillerExtractor(DefaultFillerWords)
	svc, _ := newTestService(t, NewEnricher(true, gen, fillers))
	ctx := context.Background()
	created, _ := svc.CreateSession(ctx, "")

	resp, err := svc.Ingest(ctx, created.SessionID, snapshotFactory(nil))
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if resp.Tip != "Lead with the outcome." || resp.TTSText != resp.Tip {
		t.Fatalf("tip=%q tts=%q", resp.Tip, resp.TTSText)
	}
	if len(gen.prompts) != 1 {
		t.Fatalf("prompts=%q, want one", gen.prompts)
	}
	p := gen.prompts[0]
	if !strings.HasPrefix(p, "Confidence=0.73, Anxiety=") || !strings.HasSuffix(p, ". Recent transcript: I actually delivered the feature") {
		t.Fatalf("prompt=%q", p)
	}
}

func TestIngestSurvivesGeneratorFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("timeout")}
	svc, _ := newTestService(t, NewEnricher(true, gen, NewFillerExtractor(DefaultFillerWords)))
	ctx := context.Background()
	created, _ := svc.CreateSession(ctx, "")

	resp, err := svc.Ingest(ctx, created.SessionID, snapshotFactory(nil))
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if resp.Tip != "Keep it up" {
		t.Fatalf("tip=%q, want canned tip", resp.Tip)
	}
}

func TestIngestEnabledWithoutGeneratorStillRaisesAnxiety(t *testing.T) {
	mumbled := func(s *entities.SignalSnapshot) {
		s.Transcript = []entities.TranscriptSegment{
			{Text: "um... well... uh... ok...", StartTime: 0, EndTime: 4, Confidence: 0.9},
		}
	}
	ctx := context.Background()

	plain, _ := newTestService(t, nil)
	p, _ := plain.CreateSession(ctx, "")
	canned, err := plain.Ingest(ctx, p.SessionID, snapshotFactory(mumbled))
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}

	svc, _ := newTestService(t, NewEnricher(true, nil, NewFillerExtractor(DefaultFillerWords)))
	created, _ := svc.CreateSession(ctx, "")
	resp, err := svc.Ingest(ctx, created.SessionID, snapshotFactory(mumbled))
	if err != nil {
		t.Fatalf("Ingest: %v", err)
	}
	if resp.Tip != canned.Tip || resp.TTSText != canned.TTSText {
		t.Fatalf("tip=%q tts=%q, want canned %q/%q", resp.Tip, resp.TTSText, canned.Tip, canned.TTSText)
	}
	// 2 fillers in 4 tokens and 4 pause markers: 0.5*0.5 + 0.05*4
	if canned.Scores.Anxiety >= 0.45 {
		t.Fatalf("canned anxiety=%.4f, want below mumble score", canned.Scores.Anxiety)
	}
	if !approxEqual(resp.Scores.Anxiety, 0.45) {
		t.Fatalf("anxiety=%.4f, want 0.45", resp.Scores.Anxiety)
	}
}

func TestIngestConcurrentSameSession(t *testing.T) {
	svc, repo := newTestService(t, nil)
	ctx := context.Background()
	created, _ := svc.CreateSession(ctx, "")

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Ingest(ctx, created.SessionID, snapshotFactory(nil)); err != nil {
				t.Errorf("Ingest: %v", err)
			}
		}()
	}
	wg.Wait()
	if repo.writes != 20 {
		t.Fatalf("writes=%d, want 20", repo.writes)
	}
}

func TestAlertThresholds(t *testing.T) {
	a := AlertThresholds{LowConfidence: 0.45, HighAnxiety: 0.6}
	tests := []struct {
		score entities.CoachingScore
		want  []string
	}{
		{entities.CoachingScore{Confidence: 0.7, Anxiety: 0.2}, nil},
		{entities.CoachingScore{Confidence: 0.3, Anxiety: 0.2}, []string{AlertLowConfidence}},
		{entities.CoachingScore{Confidence: 0.7, Anxiety: 0.6}, []string{AlertHighAnxiety}},
		{entities.CoachingScore{Confidence: 0.1, Anxiety: 0.9}, []string{AlertLowConfidence, AlertHighAnxiety}},
	}
	for _, tt := range tests {
		if got := a.Alerts(tt.score); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Alerts(%+v)=%v, want %v", tt.score, got, tt.want)
		}
	}
}
