// Package readline - Terminal-Modul
//
// Dieses Modul enthält die Schnittstelle zum Terminal und die Implementierung
// für echte TTYs.
//
// Hauptkomponenten:
// - Terminal: was der Editor vom Terminal braucht
// - TTY: Raw-Mode über golang.org/x/term, Warten auf Eingabe über poll
// - Acquire/Release: Raw-Mode einschalten und garantiert wiederherstellen

package readline

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"
)

// Terminal ist die Verbindung des Editors zur Aussenwelt.
type Terminal interface {
	// Acquire schaltet in den Raw-Mode. Mehrfache Aufrufe sind erlaubt.
	Acquire() error
	// Release stellt den ursprünglichen Modus wieder her.
	Release() error
	// Read blockiert bis ein Byte verfügbar ist.
	Read() (byte, error)
	Write(p []byte) (int, error)
	// Width wird vor jeder Geometrie-Berechnung neu abgefragt.
	Width() (int, error)
}

// TTY verwaltet die Terminal-Ein-/Ausgabe im Raw-Mode
type TTY struct {
	in      *os.File
	out     *os.File
	reader  *bufio.Reader
	rawmode bool
	state   *term.State
	waiter  *waiter
}

var _ Terminal = (*TTY)(nil)

// NewTTY erstellt ein Terminal auf in/out, typischerweise os.Stdin/os.Stdout.
func NewTTY(in, out *os.File) *TTY {
	return &TTY{
		in:     in,
		out:    out,
		reader: bufio.NewReader(in),
	}
}

func (t *TTY) Acquire() error {
	if t.rawmode {
		return nil
	}

	if !term.IsTerminal(int(t.out.Fd())) {
		return fmt.Errorf("%w: output is not a terminal", ErrResourceUnavailable)
	}

	fd := int(t.in.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return resourceError("unable to set terminal attributes", err)
	}

	w, err := newWaiter(t.in.Fd())
	if err != nil {
		//nolint:errcheck
		term.Restore(fd, state)
		return resourceError("unable to wait for terminal input", err)
	}

	t.state = state
	t.waiter = w
	t.rawmode = true
	return nil
}

func (t *TTY) Release() error {
	if !t.rawmode {
		return nil
	}
	t.rawmode = false

	if t.waiter != nil {
		//nolint:errcheck
		t.waiter.close()
		t.waiter = nil
	}

	if err := term.Restore(int(t.in.Fd()), t.state); err != nil {
		return resourceError("unable to restore terminal attributes", err)
	}
	return nil
}

// Read liest ein einzelnes Byte vom Terminal
func (t *TTY) Read() (byte, error) {
	if t.reader.Buffered() == 0 && t.waiter != nil {
		if err := t.waiter.wait(); err != nil {
			return 0, err
		}
	}
	return t.reader.ReadByte()
}

func (t *TTY) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

func (t *TTY) Width() (int, error) {
	cols, _, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, err
	}
	return cols, nil
}

// IsTerminal meldet, ob f ein Terminal ist.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
