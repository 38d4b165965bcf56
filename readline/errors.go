// Errors-Modul: Fehlerarten und begrenzter Fehler-Sammler
//
// Fehler werden waehrend eines Dispatch-Zyklus gesammelt statt sofort
// abzubrechen. Am Ende jeder Schleifen-Iteration werden sie ausgegeben.

package readline

import (
	"errors"
	"fmt"
)

var (
	// ErrInterrupt wird bei Ctrl+C oder einem Signal waehrend des Wartens geliefert
	ErrInterrupt = errors.New("Interrupt")

	// ErrResourceUnavailable: Terminal-Attribute oder -Groesse nicht verfuegbar
	ErrResourceUnavailable = errors.New("resource unavailable")

	// ErrInvalidState: eine benoetigte Komponente fehlt beim Dispatch
	ErrInvalidState = errors.New("invalid state")

	// ErrBufferFull: Einfuegen in eine volle Zeile
	ErrBufferFull = errors.New("input overflowed buffer")

	// ErrOverflow: Index-Berechnung wuerde ueberlaufen
	ErrOverflow = errors.New("index computation overflowed")
)

// DefaultErrorStackSize ist die Kapazitaet des Fehler-Sammlers
const DefaultErrorStackSize = 64

// ErrorStack sammelt bis zu cap Fehler. Weitere Fehler werden verworfen.
type ErrorStack struct {
	errs []error
	cap  int
}

func NewErrorStack(size int) *ErrorStack {
	if size < 1 {
		size = DefaultErrorStackSize
	}
	return &ErrorStack{errs: make([]error, 0, size), cap: size}
}

// Push legt err ab. Gibt false zurueck wenn der Stack voll ist.
func (s *ErrorStack) Push(err error) bool {
	if err == nil || len(s.errs) >= s.cap {
		return false
	}
	s.errs = append(s.errs, err)
	return true
}

func (s *ErrorStack) Len() int {
	return len(s.errs)
}

// Drain leert den Stack und liefert die Fehler, neuester zuerst.
func (s *ErrorStack) Drain() []error {
	if len(s.errs) == 0 {
		return nil
	}
	out := make([]error, 0, len(s.errs))
	for i := len(s.errs) - 1; i >= 0; i-- {
		out = append(out, s.errs[i])
	}
	clear(s.errs)
	s.errs = s.errs[:0]
	return out
}

// Recoverable meldet, ob die Zeile trotz errs weiter bearbeitet werden darf.
// Nur ein voller Puffer laesst die Eingabe bestehen.
func Recoverable(errs []error) bool {
	for _, err := range errs {
		if !errors.Is(err, ErrBufferFull) {
			return false
		}
	}
	return true
}

func resourceError(what string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrResourceUnavailable, what, err)
}
