// Line-Modul: Zeilenpuffer mit fester Kapazitaet
//
// Reine Datenhaltung ohne Wissen ueber das Terminal. Ein Zeichen ist ein Byte
// und belegt eine Bildschirmzelle. Ein Platz der Kapazitaet bleibt fuer den
// Terminator reserviert, daher gilt immer 0 <= Len() < Cap().

package readline

import "bytes"

type Line struct {
	buf []byte
	n   int
}

// NewLine legt eine leere Zeile mit capacity Plaetzen an (maximale Laenge capacity-1).
func NewLine(capacity int) *Line {
	if capacity < 1 {
		capacity = 1
	}
	return &Line{buf: make([]byte, capacity)}
}

func (l *Line) Len() int {
	return l.n
}

func (l *Line) Cap() int {
	return len(l.buf)
}

// Full meldet, ob kein weiteres Zeichen mehr passt.
func (l *Line) Full() bool {
	return l.n >= len(l.buf)-1
}

// Insert fuegt ch an index ein und verschiebt den Rest nach rechts.
// Eine volle Zeile liefert ErrBufferFull, ein Index hinter dem Ende wird ignoriert.
func (l *Line) Insert(index int, ch byte) error {
	if l.Full() {
		return ErrBufferFull
	}
	if index < 0 || index > l.n {
		return nil
	}

	copy(l.buf[index+1:l.n+1], l.buf[index:l.n])
	l.buf[index] = ch
	l.n++
	l.buf[l.n] = 0
	return nil
}

// Remove entfernt das Zeichen an index. Ausserhalb der Zeile passiert nichts.
func (l *Line) Remove(index int) {
	if index < 0 || index >= l.n {
		return
	}

	copy(l.buf[index:l.n], l.buf[index+1:l.n])
	l.n--
	l.buf[l.n] = 0
}

// CopyFrom uebernimmt Laenge und Inhalt von src.
// Die Kapazitaet muss reichen, sonst ist das ein Programmierfehler.
func (l *Line) CopyFrom(src *Line) {
	if src.n >= len(l.buf) {
		panic("readline: CopyFrom into a line with insufficient capacity")
	}
	copy(l.buf, src.buf[:src.n])
	l.n = src.n
	clear(l.buf[l.n:])
}

// Clone liefert eine unabhaengige Kopie mit gleicher Kapazitaet.
func (l *Line) Clone() *Line {
	c := NewLine(l.Cap())
	c.CopyFrom(l)
	return c
}

// IsBlank meldet, ob die Zeile leer ist oder nur aus Leerraum besteht.
func (l *Line) IsBlank() bool {
	for _, b := range l.buf[:l.n] {
		switch b {
		case ' ', '\t', '\n', '\v', '\f', '\r':
		default:
			return false
		}
	}
	return true
}

func (l *Line) Equal(o *Line) bool {
	if l == nil || o == nil {
		return false
	}
	if l.n != o.n {
		return false
	}
	return bytes.Equal(l.buf[:l.n], o.buf[:o.n])
}

// Clear setzt die Laenge auf 0 und nullt den Speicher.
func (l *Line) Clear() {
	l.n = 0
	clear(l.buf)
}

func (l *Line) String() string {
	return string(l.buf[:l.n])
}
