// Session-Modul: Zustand einer interaktiven Eingabe
//
// Eine Session besitzt genau eine Zeile zur Zeit. Blaettern im Verlauf
// ersetzt die Zeile vollstaendig statt sie umzukopieren.
// Siehe auch: buffer_cursor.go, buffer_edit.go, input.go, render.go

package readline

import (
	"fmt"
	"log/slog"

	"github.com/mattn/go-runewidth"
)

type Session struct {
	Prompt    string
	PromptLen int
	Line      *Line
	History   *History
	Cursor    Cursor

	// Masked zeichnet MaskChar statt des Inhalts (Passwort-Abfragen)
	Masked   bool
	MaskChar byte

	term   Terminal
	errs   *ErrorStack
	logger *slog.Logger

	keys  keyState
	paint paintState
}

// NewSession legt eine Session mit leerer Zeile fuer maxLen Zeichen an.
func NewSession(prompt string, maxLen int, history *History, term Terminal, errs *ErrorStack) *Session {
	if errs == nil {
		errs = NewErrorStack(DefaultErrorStackSize)
	}

	return &Session{
		Prompt:    prompt,
		PromptLen: runewidth.StringWidth(prompt),
		Line:      NewLine(maxLen + 1),
		History:   history,
		MaskChar:  '*',
		term:      term,
		errs:      errs,
		logger:    slog.Default(),
	}
}

// width fragt die Terminalbreite bei jedem Aufruf neu ab.
func (s *Session) width() int {
	cols, err := s.term.Width()
	if err != nil {
		s.errs.Push(resourceError("couldn't retrieve the current terminal size", err))
		return defaultWidth
	}
	if cols < 1 {
		s.logger.Debug("terminal reported no width, using default", "default", defaultWidth)
		return defaultWidth
	}
	return cols
}

// index dekodiert den Cursor. Nach einer Groessenaenderung kann der Cursor
// ausserhalb der Zeile liegen; dann wird er auf die Zeile begrenzt.
func (s *Session) index(cols int) (int, bool) {
	idx, err := checkedIndex(s.Cursor, s.PromptLen, cols)
	if err != nil {
		s.errs.Push(err)
		return 0, false
	}

	if idx < 0 || idx > s.Line.Len() {
		clamped := min(max(idx, 0), s.Line.Len())
		s.logger.Debug("cursor outside of line, clamping", "index", idx, "clamped", clamped, "cols", cols)
		idx = clamped
		s.place(idx, cols)
	}
	return idx, true
}

// place setzt den Cursor auf den Zeichenindex index.
func (s *Session) place(index, cols int) {
	s.Cursor = CursorForIndex(index, s.PromptLen, s.Line.Len(), cols)
}

// replaceLine uebernimmt l als neue Zeile der Session, Cursor ans Textende.
func (s *Session) replaceLine(l *Line, cols int) {
	s.Line = l
	s.place(l.Len(), cols)
}

// discard verwirft die laufende Eingabe.
func (s *Session) discard() {
	s.Line.Clear()
	s.Cursor.Reset()
	s.keys = stateIdle
}

// content liefert den zu zeichnenden Text.
func (s *Session) content() string {
	if !s.Masked {
		return s.Line.String()
	}
	mask := make([]byte, s.Line.Len())
	for i := range mask {
		mask[i] = s.MaskChar
	}
	return string(mask)
}

func (s *Session) String() string {
	return fmt.Sprintf("Session{prompt=%q len=%d cursor=(%d,%d)}", s.Prompt, s.Line.Len(), s.Cursor.X, s.Cursor.Y)
}
