package readline

import (
	"errors"
	"testing"
)

// TestDispatchEditing testet Einfuegen, Backspace und Pfeiltasten
func TestDispatchEditing(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		index int
	}{
		{"einfache Eingabe", "hello", "hello", 5},
		{"Backspace", "hello\x7f\x7fp", "help", 4},
		{"Ctrl+H", "ab\x08", "a", 1},
		{"Backspace am Anfang", "\x7f\x7fab", "ab", 2},
		{"Pfeil links und einfuegen", "ab\x1b[Dx", "axb", 2},
		{"SS3 Pfeil links", "ab\x1bODx", "axb", 2},
		{"Pfeil rechts am Ende", "ab\x1b[C", "ab", 2},
		{"Home und End", "bc\x1b[Ha\x1b[Fd", "abcd", 4},
		{"Ctrl+A und Ctrl+E", "bc\x01a\x05d", "abcd", 4},
		{"Ctrl+B und Ctrl+F", "ac\x02\x02\x06b", "abc", 2},
		{"Entf", "abc\x1b[H\x1b[3~", "bc", 0},
		{"Entf am Ende", "abc\x1b[3~", "abc", 3},
		{"Ctrl+D loescht unter dem Cursor", "abc\x02\x04", "ab", 2},
		{"Ctrl+K", "abcd\x02\x02\x0b", "ab", 2},
		{"Ctrl+U", "abcd\x02\x15", "d", 0},
		{"abgebrochene Sequenz", "ab\x1bcd", "abd", 3},
		{"unbekannte Sequenz", "ab\x1b[Zc", "abc", 3},
		{"Entf ohne Tilde", "ab\x1b[3xc", "abc", 3},
		{"Steuerzeichen ignoriert", "a\x00\x07\x09b", "ab", 2},
		{"hohe Bytes ignoriert", "a\x80\xffb", "ab", 2},
		{"Ctrl+W und Ctrl+T", "ab\x17\x14", "ab", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession("> ", 64, 8, 80)
			feed(s, tt.input)

			if got := s.Line.String(); got != tt.want {
				t.Errorf("Line = %q, erwartet %q", got, tt.want)
			}
			if got := s.Cursor.Index(s.PromptLen, 80); got != tt.index {
				t.Errorf("Index = %d, erwartet %d", got, tt.index)
			}
			if s.keys != stateIdle {
				t.Errorf("keys = %d, erwartet stateIdle", s.keys)
			}
			if s.errs.Len() != 0 {
				t.Errorf("unerwartete Fehler: %v", s.errs.Drain())
			}
		})
	}
}

// TestDispatchActions testet die Aktionen, die an die Schleife gehen
func TestDispatchActions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  action
	}{
		{"Enter", "ls\r", actionCommit},
		{"Line Feed", "ls\n", actionCommit},
		{"Ctrl+C", "ls\x03", actionInterrupt},
		{"Ctrl+D auf leerer Zeile", "\x04", actionEOF},
		{"Ctrl+D mit Text", "ls\x04", actionRedraw},
		{"Ctrl+L", "\x0c", actionClearScreen},
		{"Zeichen", "l", actionRedraw},
		{"ESC", "\x1b", actionNone},
		{"ESC [", "\x1b[", actionNone},
		{"Pfeil", "\x1b[A", actionRedraw},
		{"Entf wartet auf Tilde", "a\x1b[3", actionNone},
		{"Entf", "a\x1b[3~", actionRedraw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newTestSession("> ", 64, 8, 80)
			if got := feed(s, tt.input); got != tt.want {
				t.Errorf("dispatch = %v, erwartet %v", got, tt.want)
			}
		})
	}
}

// TestDispatchBufferFull testet das Verhalten bei voller Zeile
func TestDispatchBufferFull(t *testing.T) {
	s, _ := newTestSession("> ", 3, 8, 80)
	feed(s, "abcd")

	if got := s.Line.String(); got != "abc" {
		t.Errorf("Line = %q, erwartet %q", got, "abc")
	}
	errs := s.errs.Drain()
	if len(errs) != 1 || !errors.Is(errs[0], ErrBufferFull) {
		t.Errorf("errs = %v, erwartet [ErrBufferFull]", errs)
	}
}

// TestDispatchHistory testet Pfeil hoch/runter mit begrenztem Verlauf
func TestDispatchHistory(t *testing.T) {
	s, _ := newTestSession("> ", 64, 2, 80)
	for _, cmd := range []string{"a", "b", "c"} {
		feed(s, cmd)
		s.commit()
	}

	if got := s.History.Entries(); len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Fatalf("Entries() = %v, erwartet [b c]", got)
	}

	feed(s, "\x1b[A")
	if got := s.Line.String(); got != "c" {
		t.Errorf("Line = %q, erwartet %q", got, "c")
	}
	if s.Cursor != (Cursor{X: 3, Y: 0}) {
		t.Errorf("Cursor = %+v, erwartet {3 0}", s.Cursor)
	}

	feed(s, "\x10")
	if got := s.Line.String(); got != "b" {
		t.Errorf("Line = %q, erwartet %q", got, "b")
	}

	feed(s, "\x1b[B")
	if got := s.Line.String(); got != "c" {
		t.Errorf("Line = %q, erwartet %q", got, "c")
	}

	feed(s, "\x0e")
	if s.Line.Len() != 0 || s.Cursor != (Cursor{X: 2, Y: 0}) {
		t.Errorf("Line = %q, Cursor = %+v, erwartet leere Zeile bei {2 0}", s.Line.String(), s.Cursor)
	}
}

// TestDispatchHistoryDisabled testet, dass ohne Verlauf nicht geblaettert wird
func TestDispatchHistoryDisabled(t *testing.T) {
	s, _ := newTestSession("> ", 64, 8, 80)
	feed(s, "ls")
	s.commit()
	s.History.Enabled = false

	feed(s, "pwd\x1b[A")
	if got := s.Line.String(); got != "pwd" {
		t.Errorf("Line = %q, erwartet %q", got, "pwd")
	}
}

// TestDispatchWrapped testet Bewegungen ueber umgebrochene Zeilen
func TestDispatchWrapped(t *testing.T) {
	s, _ := newTestSession("> ", 64, 8, 10)

	feed(s, "abcdefgh")
	if s.Cursor != (Cursor{X: 10, Y: 0}) {
		t.Fatalf("Cursor = %+v, erwartet geparkt bei {10 0}", s.Cursor)
	}

	feed(s, "\x1b[D")
	if s.Cursor != (Cursor{X: 9, Y: 0}) {
		t.Errorf("Cursor = %+v, erwartet {9 0}", s.Cursor)
	}

	feed(s, "\x1b[C")
	if s.Cursor != (Cursor{X: 10, Y: 0}) {
		t.Errorf("Cursor = %+v, erwartet geparkt bei {10 0}", s.Cursor)
	}

	feed(s, "ij")
	if s.Cursor != (Cursor{X: 2, Y: 1}) {
		t.Errorf("Cursor = %+v, erwartet {2 1}", s.Cursor)
	}

	// mitten im Text steht der Cursor an der Grenze am Anfang der Folgezeile
	feed(s, "\x1b[D\x1b[D")
	if s.Cursor != (Cursor{X: 0, Y: 1}) {
		t.Errorf("Cursor = %+v, erwartet {0 1}", s.Cursor)
	}

	feed(s, "X")
	if got := s.Line.String(); got != "abcdefghXij" {
		t.Errorf("Line = %q, erwartet %q", got, "abcdefghXij")
	}
	if s.Cursor != (Cursor{X: 1, Y: 1}) {
		t.Errorf("Cursor = %+v, erwartet {1 1}", s.Cursor)
	}

	feed(s, "\x7f\x7f")
	if got := s.Line.String(); got != "abcdefgij" {
		t.Errorf("Line = %q, erwartet %q", got, "abcdefgij")
	}
	if s.Cursor != (Cursor{X: 9, Y: 0}) {
		t.Errorf("Cursor = %+v, erwartet {9 0}", s.Cursor)
	}
}

// TestDispatchResizeClamp testet einen Cursor, der nach einer Groessenaenderung hinter der Zeile liegt
func TestDispatchResizeClamp(t *testing.T) {
	s, term := newTestSession("> ", 64, 8, 10)
	feed(s, "abcdefghijklmnopqrst")
	if s.Cursor != (Cursor{X: 2, Y: 2}) {
		t.Fatalf("Cursor = %+v, erwartet {2 2}", s.Cursor)
	}

	term.cols = 100
	feed(s, "\x1b[D")
	if s.Cursor != (Cursor{X: 21, Y: 0}) {
		t.Errorf("Cursor = %+v, erwartet {21 0}", s.Cursor)
	}
	if s.errs.Len() != 0 {
		t.Errorf("unerwartete Fehler: %v", s.errs.Drain())
	}
}

// TestDispatchWidthError testet die Rueckfallbreite bei einem Fehler
func TestDispatchWidthError(t *testing.T) {
	s, term := newTestSession("> ", 64, 8, 10)
	term.widthErr = errors.New("inappropriate ioctl for device")

	feed(s, "a")
	if s.Cursor != (Cursor{X: 3, Y: 0}) {
		t.Errorf("Cursor = %+v, erwartet {3 0}", s.Cursor)
	}

	errs := s.errs.Drain()
	if len(errs) != 1 || !errors.Is(errs[0], ErrResourceUnavailable) {
		t.Errorf("errs = %v, erwartet [ErrResourceUnavailable]", errs)
	}
}

// TestDispatchInvalidState testet eine Session ohne Zeile
func TestDispatchInvalidState(t *testing.T) {
	s, _ := newTestSession("> ", 64, 8, 80)
	s.Line = nil

	if got := s.dispatch('a'); got != actionFatal {
		t.Errorf("dispatch = %v, erwartet %v", got, actionFatal)
	}
	errs := s.errs.Drain()
	if len(errs) != 1 || !errors.Is(errs[0], ErrInvalidState) {
		t.Errorf("errs = %v, erwartet [ErrInvalidState]", errs)
	}
}
