// Geometry-Modul: Zeilenumbruch-Arithmetik
//
// Reine Funktionen zwischen absolutem Zeichenindex, Prompt-Laenge,
// Terminalbreite und (Spalte, Zeile). Nur Zeile 0 ist um den Prompt kuerzer.

package readline

import (
	"fmt"
	"math"
)

// defaultWidth wird benutzt, wenn das Terminal keine Breite liefert
const defaultWidth = 80

// UsedRows liefert die Anzahl sichtbarer Zeilen fuer Prompt plus Text, mindestens 1.
func UsedRows(promptLen, lineLen, cols int) int {
	if cols < 1 {
		cols = 1
	}
	rows := (promptLen + lineLen + cols - 1) / cols
	return max(rows, 1)
}

// AbsoluteIndex rechnet eine Bildschirmposition in einen Zeichenindex um.
func AbsoluteIndex(x, y, promptLen, cols int) int {
	if y == 0 {
		return x - promptLen
	}
	return (cols - promptLen) + max(0, y-1)*cols + x
}

// CursorForIndex ist die Umkehrung von AbsoluteIndex.
//
// Faellt das Textende genau auf eine Zeilengrenze, ist die naechste Zeile noch
// nicht gezeichnet. Der Cursor bleibt dann auf der letzten Zeile, geparkt bei
// X == cols.
func CursorForIndex(index, promptLen, lineLen, cols int) Cursor {
	if cols < 1 {
		cols = 1
	}
	pos := promptLen + index
	c := Cursor{X: pos % cols, Y: pos / cols}
	if c.X == 0 && c.Y > 0 && index == lineLen {
		c = Cursor{X: cols, Y: c.Y - 1}
	}
	return c
}

// checkedIndex ist AbsoluteIndex mit Ueberlauf-Pruefung.
func checkedIndex(c Cursor, promptLen, cols int) (int, error) {
	if c.X < 0 || c.Y < 0 || cols < 1 {
		return 0, fmt.Errorf("%w: cursor (%d,%d) with %d columns", ErrInvalidState, c.X, c.Y, cols)
	}
	if c.Y > (math.MaxInt-c.X)/cols {
		return 0, fmt.Errorf("%w: cursor row %d with %d columns", ErrOverflow, c.Y, cols)
	}
	return AbsoluteIndex(c.X, c.Y, promptLen, cols), nil
}
