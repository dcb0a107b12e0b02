package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/johnquangdev/interview-coach/pkg/config"
)

func newTestClient(t *testing.T) *MinIOClient {
	t.Helper()
	c, err := NewMinIOClient(config.StorageConfig{
		Region:          "us-east-1",
		AccessKeyID:     "AKIATEST",
		SecretAccessKey: "secret",
		BucketName:      "interviews",
		Endpoint:        "localhost:9000",
		UseSSL:          false,
	})
	if err != nil {
		t.Fatalf("NewMinIOClient: %v", err)
	}
	return c
}

func TestPresignedURLs(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	put, err := c.PresignedPutURL(ctx, "uploads/video/abc.webm", time.Hour)
	if err != nil {
		t.Fatalf("PresignedPutURL: %v", err)
	}
	u, err := url.Parse(put)
	if err != nil {
		t.Fatalf("parse %q: %v", put, err)
	}
	if u.Host != "localhost:9000" || u.Path != "/interviews/uploads/video/abc.webm" {
		t.Fatalf("put url=%s", put)
	}
	if got := u.Query().Get("X-Amz-Expires"); got != "3600" {
		t.Fatalf("X-Amz-Expires=%q", got)
	}
	if !strings.Contains(u.Query().Get("X-Amz-Credential"), "AKIATEST") {
		t.Fatalf("credential missing from %s", put)
	}

	get, err := c.PresignedGetURL(ctx, "interviews/a.mp4", 5*time.Minute)
	if err != nil {
		t.Fatalf("PresignedGetURL: %v", err)
	}
	if !strings.Contains(get, "/interviews/interviews/a.mp4?") || !strings.Contains(get, "X-Amz-Expires=300") {
		t.Fatalf("get url=%s", get)
	}
}

func TestBucket(t *testing.T) {
	if got := newTestClient(t).Bucket(); got != "interviews" {
		t.Fatalf("Bucket()=%q", got)
	}
}
