// Buffer-Edit-Modul: Bearbeitungsfunktionen der Session
// Einfuegen und Loeschen berechnen zuerst den dekodierten Index und arbeiten
// dann auf der Zeile. Danach wird der Cursor aus dem Index neu gesetzt.

package readline

// Add fuegt ch an der Cursorposition ein und rueckt eine Spalte weiter.
func (s *Session) Add(ch byte, cols int) {
	idx, ok := s.index(cols)
	if !ok {
		return
	}

	if err := s.Line.Insert(idx, ch); err != nil {
		s.errs.Push(err)
		return
	}
	s.place(idx+1, cols)
}

// Remove loescht das Zeichen vor dem Cursor (Backspace): eine Position
// zurueck, dann vorwaerts loeschen.
func (s *Session) Remove(cols int) {
	if s.Line.Len() == 0 {
		return
	}

	idx, ok := s.index(cols)
	if !ok || idx == 0 {
		return
	}
	s.place(idx-1, cols)
	s.Delete(cols)
}

// Delete loescht das Zeichen unter dem Cursor.
func (s *Session) Delete(cols int) {
	idx, ok := s.index(cols)
	if !ok || idx >= s.Line.Len() {
		return
	}

	s.Line.Remove(idx)
	s.place(idx, cols)
}

// DeleteBefore loescht alles vor dem Cursor.
func (s *Session) DeleteBefore(cols int) {
	idx, ok := s.index(cols)
	if !ok {
		return
	}

	for range idx {
		s.Line.Remove(0)
	}
	s.place(0, cols)
}

// DeleteRemaining loescht alles ab dem Cursor.
func (s *Session) DeleteRemaining(cols int) {
	idx, ok := s.index(cols)
	if !ok {
		return
	}

	for s.Line.Len() > idx {
		s.Line.Remove(idx)
	}
	s.place(idx, cols)
}

// commit schliesst die Zeile ab: Verlauf, Zeilenumbruch, leere Zeile fuer die
// naechste Eingabe. Geliefert wird der abgeschickte Text.
func (s *Session) commit() string {
	text := s.Line.String()
	if s.History.Add(s.Line) {
		s.logger.Debug("history entry added", "size", s.History.Size())
	}

	s.finish()
	s.discard()
	return text
}
