// Package readline - Hauptmodul für interaktive Zeileneingabe
//
// Dieses Paket implementiert einen einzeiligen Editor, der direkt im Terminal
// arbeitet: Raw-Mode, Cursor-Bewegung über umgebrochene Zeilen, Verlauf und
// vollständiges Neuzeichnen nach jedem Tastendruck.
//
// Hauptkomponenten:
// - Config: Prompt, maximale Eingabelänge, Verlaufsgröße
// - Instance: hält Terminal, Verlauf und die laufende Session
// - Readline: liest genau eine Zeile
// - Run: Schleife, die jede abgeschickte Zeile an einen Callback gibt
// - Ask: einzelne Frage, optional maskiert

package readline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/7blacky7/easycli/logutil"
)

// DefaultMaxInputLen ist die maximale Eingabelänge ohne Terminator
const DefaultMaxInputLen = 1024

// Status ist das Ergebnis einer Schleifen-Runde bzw. des Callbacks
type Status int

const (
	// StatusContinue: weiter editieren, die Ausgabe des Callbacks wird mit einem Zeilenumbruch abgeschlossen
	StatusContinue Status = iota
	// StatusExit beendet Run
	StatusExit
	// StatusSendCommand: eine Zeile wurde abgeschickt
	StatusSendCommand
	// StatusNop: weiter editieren ohne zusätzlichen Zeilenumbruch
	StatusNop
)

func (s Status) String() string {
	switch s {
	case StatusContinue:
		return "continue"
	case StatusExit:
		return "exit"
	case StatusSendCommand:
		return "send-command"
	case StatusNop:
		return "nop"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// CommandFunc wird für jede abgeschickte Zeile aufgerufen.
// Ein Fehler wird gesammelt und ausgegeben, beendet die Schleife aber nicht.
type CommandFunc func(ctx context.Context, line string) (Status, error)

// Config wird beim Erstellen der Instanz festgelegt
type Config struct {
	Prompt      string
	MaxInputLen int
	HistorySize int
	MaskChar    byte

	// Terminal ist optional, Standard ist ein TTY auf os.Stdin/os.Stdout
	Terminal Terminal
	Logger   *slog.Logger
}

// Instance ist die Hauptstruktur für readline-Operationen
type Instance struct {
	Config   Config
	Terminal Terminal
	History  *History
	Errors   *ErrorStack

	rawmode bool
	session *Session
	logger  *slog.Logger
}

// New erstellt eine neue Readline-Instanz
func New(cfg Config) (*Instance, error) {
	if cfg.MaxInputLen < 1 {
		cfg.MaxInputLen = DefaultMaxInputLen
	}
	if cfg.HistorySize < 1 {
		cfg.HistorySize = DefaultHistorySize
	}
	if cfg.MaskChar == 0 {
		cfg.MaskChar = '*'
	}

	t := cfg.Terminal
	if t == nil {
		if !IsTerminal(os.Stdin) {
			return nil, fmt.Errorf("%w: stdin is not a terminal", ErrResourceUnavailable)
		}
		if !IsTerminal(os.Stdout) {
			return nil, fmt.Errorf("%w: stdout is not a terminal", ErrResourceUnavailable)
		}
		t = NewTTY(os.Stdin, os.Stdout)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Instance{
		Config:   cfg,
		Terminal: t,
		History:  NewHistory(cfg.HistorySize),
		Errors:   NewErrorStack(DefaultErrorStackSize),
		logger:   logger,
	}, nil
}

// HistoryEnable aktiviert den Verlauf
func (i *Instance) HistoryEnable() {
	i.History.Enabled = true
}

// HistoryDisable deaktiviert den Verlauf
func (i *Instance) HistoryDisable() {
	i.History.Enabled = false
}

// Readline liest eine Zeile. Ctrl+D auf leerer Zeile liefert io.EOF,
// Ctrl+C liefert ErrInterrupt.
func (i *Instance) Readline() (string, error) {
	return i.ReadlineContext(context.Background())
}

// ReadlineContext wie Readline; ctx wird nach jedem Tastendruck geprüft.
func (i *Instance) ReadlineContext(ctx context.Context) (string, error) {
	return i.read(ctx, i.current())
}

// Run liest Zeilen, bis der Callback StatusExit liefert, Ctrl+C/Ctrl+D kommt
// oder ctx endet. Der Raw-Mode bleibt für die ganze Schleife an und wird auf
// jedem Weg hinaus wiederhergestellt.
func (i *Instance) Run(ctx context.Context, fn CommandFunc) error {
	prev := i.logger
	i.logger = prev.With("session", uuid.NewString())
	defer func() { i.logger = prev }()

	release, err := i.acquire()
	if err != nil {
		return err
	}
	defer release()

	i.logger.Debug("run loop started", "prompt", i.Config.Prompt, "max_len", i.Config.MaxInputLen, "history", i.History.Capacity)

	for {
		line, err := i.ReadlineContext(ctx)
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, ErrInterrupt):
			i.logger.Debug("run loop finished", "reason", err)
			return nil
		case err != nil:
			return err
		}

		if fn == nil {
			continue
		}

		status, err := fn(ctx, line)
		if err != nil {
			i.Errors.Push(err)
		}
		i.logger.Debug("command handled", "status", status, "error", err)

		switch status {
		case StatusExit:
			return nil
		case StatusContinue:
			if _, err := i.Terminal.Write([]byte("\r\n")); err != nil {
				i.Errors.Push(resourceError("writing to terminal", err))
			}
		}

		s := i.current()
		s.discard()
		i.drain(s, false)

		if err := ctx.Err(); err != nil {
			return err
		}
	}
}

// Ask stellt eine einzelne Frage ohne Verlauf. Mit masked wird statt der
// Eingabe das Maskenzeichen angezeigt.
func (i *Instance) Ask(question string, maxLen int, masked bool) (string, error) {
	if maxLen < 1 {
		maxLen = i.Config.MaxInputLen
	}

	history := NewHistory(1)
	history.Enabled = false

	s := i.newSession(question, maxLen, history)
	s.Masked = masked
	return i.read(context.Background(), s)
}

// Print schreibt s mit abschliessendem Zeilenumbruch, auch im Raw-Mode.
func (i *Instance) Print(s string) error {
	_, err := io.WriteString(NewlineWriter(i.Terminal), s+"\n")
	return err
}

// ClearScreen löscht den Bildschirm; der nächste Prompt erscheint oben.
func (i *Instance) ClearScreen() error {
	i.current().paint = paintState{}
	_, err := i.Terminal.Write([]byte(ClearScreen + CursorReset))
	return err
}

func (i *Instance) current() *Session {
	if i.session == nil {
		i.session = i.newSession(i.Config.Prompt, i.Config.MaxInputLen, i.History)
	}
	return i.session
}

func (i *Instance) newSession(prompt string, maxLen int, history *History) *Session {
	s := NewSession(prompt, maxLen, history, i.Terminal, i.Errors)
	s.MaskChar = i.Config.MaskChar
	return s
}

// acquire schaltet den Raw-Mode ein, falls er noch aus ist. release stellt
// ihn nur wieder her, wenn dieser Aufruf ihn eingeschaltet hat.
// Ohne lesbare Breite laesst sich nicht zeichnen, dann bleibt der Modus aus.
func (i *Instance) acquire() (release func(), err error) {
	if i.rawmode {
		return func() {}, nil
	}

	if err := i.Terminal.Acquire(); err != nil {
		return nil, err
	}
	if _, err := i.Terminal.Width(); err != nil {
		if rerr := i.Terminal.Release(); rerr != nil {
			i.logger.Warn("failed to restore terminal mode", "error", rerr)
		}
		return nil, resourceError("couldn't retrieve the current terminal size", err)
	}
	i.rawmode = true

	return func() {
		if err := i.Terminal.Release(); err != nil {
			i.logger.Warn("failed to restore terminal mode", "error", err)
		}
		i.rawmode = false
	}, nil
}

// read ist die Dispatch/Render-Schleife für eine Zeile.
func (i *Instance) read(ctx context.Context, s *Session) (string, error) {
	if s.Line == nil || s.History == nil {
		return "", fmt.Errorf("%w: session without line or history", ErrInvalidState)
	}
	s.logger = i.logger

	release, err := i.acquire()
	if err != nil {
		return "", err
	}
	defer release()

	s.begin()
	i.drain(s, true)

	for {
		b, err := i.Terminal.Read()
		if err != nil {
			s.finish()
			if errors.Is(err, ErrInterrupt) {
				return "", ErrInterrupt
			}
			i.logger.Debug("terminal read failed", "error", err)
			return "", io.EOF
		}

		act := s.dispatch(b)
		logutil.TraceLog(i.logger, "dispatch", "key", b, "action", act, "len", s.Line.Len(), "x", s.Cursor.X, "y", s.Cursor.Y)

		switch act {
		case actionCommit:
			line := s.commit()
			i.drain(s, false)
			return line, nil
		case actionEOF:
			s.finish()
			return "", io.EOF
		case actionInterrupt:
			s.discard()
			s.finish()
			return "", ErrInterrupt
		case actionFatal:
			errs := s.errs.Drain()
			s.reportErrors(errs)
			if s.Line != nil {
				s.discard()
			}
			return "", errors.Join(errs...)
		case actionClearScreen:
			s.clearScreen()
		case actionRedraw:
			s.redraw()
		}

		i.drain(s, true)

		if err := ctx.Err(); err != nil {
			s.discard()
			s.finish()
			return "", err
		}
	}
}

// drain gibt gesammelte Fehler aus. Ausser bei vollem Puffer wird die Eingabe
// verworfen. Mit repaint wird der Prompt danach neu gezeichnet.
func (i *Instance) drain(s *Session, repaint bool) {
	errs := s.errs.Drain()
	if len(errs) == 0 {
		return
	}

	for _, err := range errs {
		i.logger.Warn("input error", "error", err)
	}

	s.reportErrors(errs)
	if !Recoverable(errs) {
		s.discard()
	}
	if repaint {
		s.begin()
	}
}
