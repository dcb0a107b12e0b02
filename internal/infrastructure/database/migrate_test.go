package database

import (
	"strings"
	"testing"
)

func TestMigrationSourceEmbedsSchema(t *testing.T) {
	migrations, err := MigrationSource().FindMigrations()
	if err != nil {
		t.Fatalf("FindMigrations: %v", err)
	}
	if len(migrations) == 0 {
		t.Fatal("no migrations embedded")
	}

	first := migrations[0]
	if first.Id != "0001_create_interview_analyses.sql" {
		t.Fatalf("first migration=%q", first.Id)
	}
	up := strings.Join(first.Up, "\n")
	if !strings.Contains(up, "CREATE TABLE IF NOT EXISTS interview_analyses") {
		t.Fatalf("up migration=%q", up)
	}
	for _, col := range []string{"facial_analysis JSONB", "transcript_analysis JSONB", "coaching_advice JSONB", "processing_time_ms"} {
		if !strings.Contains(up, col) {
			t.Errorf("up migration missing %s", col)
		}
	}
	if down := strings.Join(first.Down, "\n"); !strings.Contains(down, "DROP TABLE IF EXISTS interview_analyses") {
		t.Fatalf("down migration=%q", down)
	}
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"up", "down"} {
		if d, err := ParseDirection(s); err != nil || string(d) != s {
			t.Errorf("ParseDirection(%q)=%q,%v", s, d, err)
		}
	}
	if _, err := ParseDirection("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
}
