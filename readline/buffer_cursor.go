// Buffer-Cursor-Modul: Cursor-Bewegungen in der Session
// Jede Bewegung geht ueber den dekodierten Index, damit der Cursor immer auf
// einen Index in [0, Len] zeigt. Zeilenwechsel ergeben sich aus CursorForIndex.

package readline

func (s *Session) MoveLeft(cols int) {
	if s.Line.Len() == 0 {
		return
	}
	if idx, ok := s.index(cols); ok && idx > 0 {
		s.place(idx-1, cols)
	}
}

func (s *Session) MoveRight(cols int) {
	if idx, ok := s.index(cols); ok && idx < s.Line.Len() {
		s.place(idx+1, cols)
	}
}

func (s *Session) MoveToStart(cols int) {
	s.place(0, cols)
}

func (s *Session) MoveToEnd(cols int) {
	s.place(s.Line.Len(), cols)
}

// historyPrev ersetzt die Zeile durch den vorherigen Verlaufseintrag.
func (s *Session) historyPrev(cols int) {
	if !s.History.Enabled {
		return
	}
	s.replaceLine(s.History.Prev(s.Line), cols)
}

// historyNext ersetzt die Zeile durch den naechsten Verlaufseintrag.
func (s *Session) historyNext(cols int) {
	if !s.History.Enabled {
		return
	}
	s.replaceLine(s.History.Next(s.Line), cols)
}
