package readline

import (
	"bytes"
	"io"
)

// NewlineWriter wandelt \n in \r\n um. Im Raw-Mode ist die Ausgabe-
// Nachbearbeitung aus, ohne \r bliebe der Cursor in seiner Spalte.
func NewlineWriter(w io.Writer) io.Writer {
	return &newlineWriter{w: w}
}

type newlineWriter struct {
	w io.Writer
}

func (n *newlineWriter) Write(p []byte) (int, error) {
	if _, err := n.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
