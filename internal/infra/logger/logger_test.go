package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp, Debug: true, Command: "generate"})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger, got: %v", err)
	}

	want := filepath.Join(tmp, ".wingen", "logs", "wingen.log")
	if Path() != want {
		t.Fatalf("expected path %s, got=%s", want, Path())
	}

	L().Debug("design.sampled", "design", 3)
	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}

	b, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines, got=%d:\n%s", len(lines), b)
	}

	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &rec); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if rec["msg"] != "design.sampled" || rec["cmd"] != "generate" {
		t.Fatalf("unexpected record: %v", rec)
	}
	if ts, _ := rec["time"].(string); !strings.HasSuffix(ts, "Z") {
		t.Fatalf("expected UTC timestamp, got=%v", rec["time"])
	}
}

func TestCleanup_RestoresDiscard(t *testing.T) {
	cleanup, err := Setup(Config{Root: t.TempDir()})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	_ = cleanup()

	if IsReady() == nil {
		t.Fatalf("expected logger not ready after cleanup")
	}
	if Path() != "" {
		t.Fatalf("expected empty path, got=%s", Path())
	}
	L().Info("dropped")
}
