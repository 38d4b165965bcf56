// Package logutil - slog-Aufbau fuer easycli
//
// Der Editor besitzt das Terminal im Raw-Mode. Logs gehen deshalb standardmaessig
// in eine rotierende Datei statt nach stderr.
package logutil

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LevelTrace liegt unter Debug und protokolliert jeden Tastendruck
const LevelTrace slog.Level = -8

// NewLogger erstellt einen Text-Logger mit kurzem Quelldateinamen und TRACE-Level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: true,
		ReplaceAttr: func(_ []string, attr slog.Attr) slog.Attr {
			switch attr.Key {
			case slog.LevelKey:
				if attr.Value.Any().(slog.Level) == LevelTrace {
					attr.Value = slog.StringValue("TRACE")
				}
			case slog.SourceKey:
				source := attr.Value.Any().(*slog.Source)
				source.File = filepath.Base(source.File)
			}
			return attr
		},
	}))
}

// NewFileWriter liefert einen rotierenden Log-Writer. Das Verzeichnis wird bei
// Bedarf angelegt.
func NewFileWriter(path string) io.WriteCloser {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}
}

// Trace schreibt auf LevelTrace in den Standard-Logger.
func Trace(msg string, args ...any) {
	log(slog.Default(), LevelTrace, msg, args...)
}

// TraceLog schreibt auf LevelTrace in l.
func TraceLog(l *slog.Logger, msg string, args ...any) {
	log(l, LevelTrace, msg, args...)
}

// log ueberspringt die eigenen Frames, damit die Quelle der Aufrufer ist.
func log(l *slog.Logger, level slog.Level, msg string, args ...any) {
	ctx := context.Background()
	if !l.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.Handler().Handle(ctx, r)
}
