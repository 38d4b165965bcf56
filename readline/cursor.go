package readline

// Cursor ist eine Bildschirmposition relativ zur ersten Prompt-Zeile.
// X ist die Spalte, Y die Zeile, beide ab 0. X == Breite ist der geparkte
// Zustand hinter der letzten Spalte einer vollen Zeile.
type Cursor struct {
	X int
	Y int
}

// Index dekodiert den Cursor zu einem Zeichenindex.
func (c Cursor) Index(promptLen, cols int) int {
	return AbsoluteIndex(c.X, c.Y, promptLen, cols)
}

// Parked meldet, ob der Cursor hinter der letzten Spalte steht.
func (c Cursor) Parked(cols int) bool {
	return c.X >= cols
}

// Reset setzt den Cursor auf den Ursprung.
func (c *Cursor) Reset() {
	c.X, c.Y = 0, 0
}
