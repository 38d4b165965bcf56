package logutil

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLoggerTraceLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelTrace)

	TraceLog(logger, "dispatch", "key", 65)

	out := buf.String()
	if !strings.Contains(out, "level=TRACE") {
		t.Errorf("Ausgabe %q sollte level=TRACE enthalten", out)
	}
	if !strings.Contains(out, "source=logutil_test.go:") {
		t.Errorf("Ausgabe %q sollte die Quelle des Aufrufers enthalten", out)
	}
	if !strings.Contains(out, "key=65") {
		t.Errorf("Ausgabe %q sollte key=65 enthalten", out)
	}
}

func TestTraceBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, slog.LevelInfo)

	TraceLog(logger, "dispatch")
	logger.Debug("debug")

	if buf.Len() != 0 {
		t.Errorf("erwartet keine Ausgabe, bekommen %q", buf.String())
	}
}

func TestTraceDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(NewLogger(&buf, LevelTrace))
	defer slog.SetDefault(prev)

	Trace("hello", "n", 1)

	if !strings.Contains(buf.String(), "msg=hello") {
		t.Errorf("Ausgabe %q sollte msg=hello enthalten", buf.String())
	}
}

func TestNewFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "easycli.log")
	w := NewFileWriter(path)

	logger := NewLogger(w, slog.LevelInfo)
	logger.Info("session started", "session", "abc")
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "session=abc") {
		t.Errorf("Datei %q sollte session=abc enthalten", data)
	}
}
