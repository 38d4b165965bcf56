// Package readline - Input-Verarbeitungsmodul
//
// Der Dispatcher verarbeitet genau ein Byte pro Aufruf. Escape-Sequenzen
// laufen durch einen kleinen Zustandsautomaten:
//
//	idle -> escape -> escapeEx -> {Pfeil | Entf -> deleteTail}
//
// Abgebrochene oder unbekannte Sequenzen werden geschluckt und ignoriert.

package readline

import (
	"fmt"
)

type keyState int

const (
	stateIdle keyState = iota
	stateEscape
	stateEscapeEx
	stateDeleteTail
)

// action sagt der Schleife, was nach einem Byte zu tun ist
type action int

const (
	actionNone action = iota
	actionRedraw
	actionClearScreen
	actionCommit
	actionEOF
	actionInterrupt
	actionFatal
)

func (a action) String() string {
	switch a {
	case actionNone:
		return "none"
	case actionRedraw:
		return "redraw"
	case actionClearScreen:
		return "clear-screen"
	case actionCommit:
		return "commit"
	case actionEOF:
		return "eof"
	case actionInterrupt:
		return "interrupt"
	case actionFatal:
		return "fatal"
	}
	return fmt.Sprintf("action(%d)", int(a))
}

// dispatch verarbeitet ein Eingabe-Byte.
func (s *Session) dispatch(b byte) action {
	if s.Line == nil || s.History == nil {
		s.errs.Push(fmt.Errorf("%w: session without line or history", ErrInvalidState))
		return actionFatal
	}

	switch s.keys {
	case stateEscape:
		return s.processEscape(b)
	case stateEscapeEx:
		return s.processEscapeEx(b)
	case stateDeleteTail:
		s.keys = stateIdle
		if b != CharTilde {
			return actionNone
		}
		s.Delete(s.width())
		return actionRedraw
	}

	return s.processCharacter(b)
}

// processEscape erwartet nach ESC den Einleiter '[' (oder 'O').
func (s *Session) processEscape(b byte) action {
	s.keys = stateIdle
	switch b {
	case CharEscapeEx, CharSS3:
		s.keys = stateEscapeEx
	}
	return actionNone
}

// processEscapeEx verarbeitet das Byte nach ESC [
func (s *Session) processEscapeEx(b byte) action {
	s.keys = stateIdle

	switch b {
	case KeyUp:
		s.historyPrev(s.width())
	case KeyDown:
		s.historyNext(s.width())
	case KeyRight:
		s.MoveRight(s.width())
	case KeyLeft:
		s.MoveLeft(s.width())
	case MetaStart:
		s.MoveToStart(s.width())
	case MetaEnd:
		s.MoveToEnd(s.width())
	case KeyDel:
		// Entf kommt als ESC [ 3 ~, das '~' wird noch gelesen
		s.keys = stateDeleteTail
		return actionNone
	default:
		return actionNone
	}
	return actionRedraw
}

// processCharacter verarbeitet normale Zeichen und Steuerzeichen
func (s *Session) processCharacter(b byte) action {
	switch b {
	case CharEnter, CharCtrlJ:
		return actionCommit
	case CharEsc:
		s.keys = stateEscape
		return actionNone
	case CharInterrupt:
		return actionInterrupt
	case CharBackspace, CharCtrlH:
		s.Remove(s.width())
	case CharDelete:
		if s.Line.Len() == 0 {
			return actionEOF
		}
		s.Delete(s.width())
	case CharLineStart:
		s.MoveToStart(s.width())
	case CharLineEnd:
		s.MoveToEnd(s.width())
	case CharBackward:
		s.MoveLeft(s.width())
	case CharForward:
		s.MoveRight(s.width())
	case CharPrev:
		s.historyPrev(s.width())
	case CharNext:
		s.historyNext(s.width())
	case CharKill:
		s.DeleteRemaining(s.width())
	case CharCtrlU:
		s.DeleteBefore(s.width())
	case CharCtrlL:
		return actionClearScreen
	case CharCtrlW, CharTranspose:
		// TODO: Wort loeschen (Ctrl+W) und Zeichen tauschen (Ctrl+T)
		return actionNone
	default:
		if b < CharSpace || b >= CharBackspace {
			return actionNone
		}
		s.Add(b, s.width())
	}
	return actionRedraw
}
