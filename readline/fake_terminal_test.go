package readline

import (
	"bytes"
	"errors"
	"io"
)

var (
	errFakeWidth = errors.New("inappropriate ioctl for device")
	errFakeWrite = errors.New("broken pipe")
)

// fakeTerminal liefert vorgegebene Bytes und sammelt die Ausgabe.
type fakeTerminal struct {
	input    []byte
	cols     int
	widthErr error
	out      bytes.Buffer

	// failWidthOn laesst die Breitenabfrage nach diesem Byte einmal fehlschlagen
	failWidthOn   byte
	widthFailures int
	writeFailures int

	acquired int
	released int
}

var _ Terminal = (*fakeTerminal)(nil)

func newFakeTerminal(input string, cols int) *fakeTerminal {
	return &fakeTerminal{input: []byte(input), cols: cols}
}

func (f *fakeTerminal) Acquire() error {
	f.acquired++
	return nil
}

func (f *fakeTerminal) Release() error {
	f.released++
	return nil
}

func (f *fakeTerminal) Read() (byte, error) {
	if len(f.input) == 0 {
		return 0, io.EOF
	}
	b := f.input[0]
	f.input = f.input[1:]
	if f.failWidthOn != 0 && b == f.failWidthOn {
		f.widthFailures++
	}
	return b, nil
}

func (f *fakeTerminal) Write(p []byte) (int, error) {
	if f.writeFailures > 0 {
		f.writeFailures--
		return 0, errFakeWrite
	}
	return f.out.Write(p)
}

func (f *fakeTerminal) Width() (int, error) {
	if f.widthErr != nil {
		return 0, f.widthErr
	}
	if f.widthFailures > 0 {
		f.widthFailures--
		return 0, errFakeWidth
	}
	return f.cols, nil
}

// newTestSession baut eine Session auf einem fakeTerminal.
func newTestSession(prompt string, maxLen, historySize, cols int) (*Session, *fakeTerminal) {
	term := newFakeTerminal("", cols)
	s := NewSession(prompt, maxLen, NewHistory(historySize), term, NewErrorStack(DefaultErrorStackSize))
	return s, term
}

// feed gibt jedes Byte an den Dispatcher und liefert die letzte Aktion.
func feed(s *Session, input string) action {
	act := actionNone
	for i := 0; i < len(input); i++ {
		act = s.dispatch(input[i])
	}
	return act
}
