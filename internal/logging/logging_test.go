package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
)

func TestSimpleTextFormatter(t *testing.T) {
	entry := &log.Entry{
		Time:    time.Date(2026, 10, 15, 15, 3, 55, 0, time.UTC),
		Level:   log.WarnLevel,
		Message: "restore failed",
		Data:    log.Fields{"lines": 3, "component": "tui"},
	}

	out, err := new(SimpleTextFormatter).Format(entry)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	want := "2026-10-15T15:03:55+0000 WARNING restore failed component=tui lines=3\n"
	if string(out) != want {
		t.Errorf("Format = %q, want %q", out, want)
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mosstui.log")
	logger, closer, err := New("debug", path)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.WithField("k", "v").Debug("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "DEBUG hello k=v") {
		t.Errorf("log file = %q", data)
	}
}

func TestNew_DiscardWithoutFile(t *testing.T) {
	logger, closer, err := New("info", "")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closer.Close()
	if logger.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v", logger.GetLevel())
	}
}

func TestNew_BadLevel(t *testing.T) {
	if _, _, err := New("loud", ""); err == nil {
		t.Error("expected error for unknown level")
	}
}
