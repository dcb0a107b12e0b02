package assemblyai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/johnquangdev/interview-coach/internal/usecase/analysis"
)

func newTestServer(t *testing.T, transcripts map[string]string) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":"invalid api key"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2/transcript":
			var payload map[string]any
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Errorf("invalid payload: %v", err)
			}
			if payload["audio_url"] != "https://storage.test/get/interviews/a.mp4" {
				t.Errorf("audio_url=%v", payload["audio_url"])
			}
			if payload["speaker_labels"] != true {
				t.Errorf("speaker_labels=%v", payload["speaker_labels"])
			}
			w.Write([]byte(`{"id":"tx-1","status":"queued"}`))
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v2/transcript/"):
			body, ok := transcripts[strings.TrimPrefix(r.URL.Path, "/v2/transcript/")]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"error":"not found"}`))
				return
			}
			w.Write([]byte(body))
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestStartTranscription(t *testing.T) {
	ts := newTestServer(t, nil)
	tr := NewTranscriber("test-key", nil, WithBaseURL(ts.URL))

	id, err := tr.StartTranscription(context.Background(), "https://storage.test/get/interviews/a.mp4")
	if err != nil {
		t.Fatalf("StartTranscription: %v", err)
	}
	if id != "tx-1" {
		t.Fatalf("id=%q", id)
	}
}

func TestStartTranscriptionRejectedKey(t *testing.T) {
	ts := newTestServer(t, nil)
	tr := NewTranscriber("wrong", nil, WithBaseURL(ts.URL))
	if _, err := tr.StartTranscription(context.Background(), "https://storage.test/a.mp4"); err == nil {
		t.Fatal("expected error for rejected key")
	}
}

func TestGetTranscriptionStatuses(t *testing.T) {
	ts := newTestServer(t, map[string]string{
		"running": `{"id":"running","status":"processing"}`,
		"failed":  `{"id":"failed","status":"error","error":"audio too short"}`,
		"done": `{"id":"done","status":"completed","text":" Um I led the migration. ",
			"utterances":[{"speaker":"A","text":"Um I led the migration.","start":250,"end":2750,"confidence":0.91}]}`,
	})
	tr := NewTranscriber("test-key", nil, WithBaseURL(ts.URL))
	ctx := context.Background()

	res, err := tr.GetTranscription(ctx, "running")
	if err != nil || res.Status != analysis.JobInProgress {
		t.Fatalf("running: res=%+v err=%v", res, err)
	}

	res, err = tr.GetTranscription(ctx, "failed")
	if err != nil || res.Status != analysis.JobFailed || res.Message != "audio too short" {
		t.Fatalf("failed: res=%+v err=%v", res, err)
	}

	res, err = tr.GetTranscription(ctx, "done")
	if err != nil {
		t.Fatalf("done: %v", err)
	}
	if res.Status != analysis.JobSucceeded || res.Text != "Um I led the migration." {
		t.Fatalf("done: res=%+v", res)
	}
	if len(res.Segments) != 1 {
		t.Fatalf("segments=%+v", res.Segments)
	}
	seg := res.Segments[0]
	if seg.StartTime != 0.25 || seg.EndTime != 2.75 || seg.Confidence != 0.91 {
		t.Fatalf("segment=%+v", seg)
	}

	if _, err := tr.GetTranscription(ctx, "missing"); err == nil {
		t.Fatal("expected error for unknown transcript")
	}
}
