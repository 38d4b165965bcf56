// Render-Modul: Neuzeichnen des Eingabebereichs
//
// Jeder Tastendruck zeichnet komplett neu, nie als Diff:
// 1. clean: zur letzten gezeichneten Zeile, jede Zeile von unten nach oben loeschen
// 2. write: Prompt + Inhalt in einem Zug, dann relativ zum Cursor springen
//
// paintState merkt sich, was zuletzt auf dem Bildschirm steht. Damit braucht
// clean keine Korrektur fuer geparkte Cursor oder die gedrueckte Taste.

package readline

import (
	"strings"
)

type paintState struct {
	// rows ist die Anzahl gezeichneter Zeilen, 0 = nichts gezeichnet
	rows int
	// row ist die Zeile des echten Terminal-Cursors
	row int
}

func (s *Session) flush(b *strings.Builder) {
	if b.Len() == 0 {
		return
	}
	if _, err := s.term.Write([]byte(b.String())); err != nil {
		s.errs.Push(resourceError("writing to terminal", err))
	}
}

// clean loescht alle zuletzt gezeichneten Zeilen und endet in Spalte 0.
func (s *Session) clean(b *strings.Builder) {
	if s.paint.rows == 0 {
		return
	}

	if down := s.paint.rows - 1 - s.paint.row; down > 0 {
		b.WriteString(CursorDownN(down))
	}

	for i := range s.paint.rows {
		b.WriteString(ClearLine)
		if i < s.paint.rows-1 {
			b.WriteString(CursorUp)
		}
	}
	b.WriteString(CursorBOL)
	s.paint = paintState{}
}

// write zeichnet Prompt und Inhalt und setzt den Terminal-Cursor auf s.Cursor.
func (s *Session) write(b *strings.Builder, cols int) {
	rows := UsedRows(s.PromptLen, s.Line.Len(), cols)

	b.WriteString(s.Prompt)
	b.WriteString(s.content())
	s.paint = paintState{rows: rows, row: s.Cursor.Y}

	// geparkt: das Terminal steht nach dem Schreiben schon am Ende der letzten Zeile
	if s.Cursor.Parked(cols) {
		return
	}

	if rows > 1 {
		b.WriteString(CursorUpN(rows-1) + CursorBOL)
		if s.Cursor.Y > 0 {
			b.WriteString(CursorDownN(s.Cursor.Y))
		}
	} else {
		b.WriteString(CursorBOL)
	}
	if s.Cursor.X > 0 {
		b.WriteString(CursorRightN(s.Cursor.X))
	}
}

// redraw ist clean + write fuer einen Tastendruck.
func (s *Session) redraw() {
	var b strings.Builder
	s.clean(&b)
	s.write(&b, s.width())
	s.flush(&b)
}

// begin zeichnet den Anfang einer Eingabe. Eine leere Zeile bekommt nur den Prompt.
func (s *Session) begin() {
	cols := s.width()
	if s.Line.Len() > 0 {
		s.redraw()
		return
	}

	var b strings.Builder
	s.clean(&b)
	b.WriteString(CursorBOL + s.Prompt)
	s.place(0, cols)
	s.paint = paintState{rows: UsedRows(s.PromptLen, 0, cols), row: s.Cursor.Y}
	s.flush(&b)
}

// finish springt in die letzte gezeichnete Zeile und beendet sie mit einem
// harten Zeilenumbruch. Danach gilt der Bereich als nicht gezeichnet.
func (s *Session) finish() {
	var b strings.Builder
	if down := s.paint.rows - 1 - s.paint.row; down > 0 {
		b.WriteString(CursorDownN(down))
	}
	b.WriteString("\r\n")
	s.paint = paintState{}
	s.flush(&b)
}

// clearScreen loescht den Bildschirm und zeichnet oben neu.
func (s *Session) clearScreen() {
	var b strings.Builder
	b.WriteString(ClearScreen + CursorReset)
	s.paint = paintState{}
	s.write(&b, s.width())
	s.flush(&b)
}

// reportErrors gibt gesammelte Fehler unterhalb der Eingabe aus.
func (s *Session) reportErrors(errs []error) {
	if len(errs) == 0 {
		return
	}
	s.finish()

	var b strings.Builder
	for _, err := range errs {
		b.WriteString(ColorRed + "[ERROR] " + err.Error() + ColorDefault + "\r\n")
	}
	s.flush(&b)
}
