// History-Modul: begrenzter Verlauf abgeschickter Zeilen
//
// Pos ist der Blaetter-Index im Bereich [0, Size()]. Pos == Size() bedeutet:
// es wird nicht geblaettert, die Live-Zeile wird bearbeitet.
// Ist der Verlauf voll, faellt der aelteste Eintrag heraus und alle anderen
// ruecken eins nach vorne.

package readline

import (
	"github.com/emirpasic/gods/v2/lists/arraylist"
)

// DefaultHistorySize ist die Standard-Kapazitaet des Verlaufs
const DefaultHistorySize = 1024

type History struct {
	Buf      *arraylist.List[*Line]
	Capacity int
	Pos      int
	Enabled  bool
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = DefaultHistorySize
	}

	return &History{
		Buf:      arraylist.New[*Line](),
		Capacity: capacity,
		Enabled:  true,
	}
}

func (h *History) Size() int {
	return h.Buf.Size()
}

// Add speichert eine unabhaengige Kopie von l.
// Leere Zeilen und Wiederholungen des letzten Eintrags werden verworfen.
func (h *History) Add(l *Line) bool {
	if !h.Enabled || l == nil || l.IsBlank() {
		return false
	}

	size := h.Size()
	if last, ok := h.Buf.Get(size - 1); ok && last.Equal(l) {
		return false
	}

	snapshot := l.Clone()
	if size < h.Capacity {
		h.Buf.Add(snapshot)
		h.Pos = h.Buf.Size() - 1
		return true
	}

	h.Buf.Remove(0)
	h.Buf.Add(snapshot)
	h.Pos = h.Capacity - 1
	return true
}

// Prev blaettert zurueck und liefert die Zeile, die die Session ab jetzt besitzt.
//
// Aus dem Live-Zustand wird die Live-Zeile nur geleert; erst der naechste
// Aufruf laedt einen Eintrag. Von Index 0 springt Pos auf den Live-Zustand.
func (h *History) Prev(live *Line) *Line {
	size := h.Size()
	line := live

	if h.Pos == size {
		live.Clear()
	} else if entry, ok := h.Buf.Get(h.Pos); ok {
		line = entry.Clone()
	}

	if h.Pos == 0 {
		h.Pos = size
	} else {
		h.Pos--
	}

	return line
}

// Next blaettert vorwaerts. Ein Eintrag, der schon geladen ist, wird uebersprungen.
// Hinter dem Ende bleibt eine leere Live-Zeile.
func (h *History) Next(live *Line) *Line {
	size := h.Size()
	if size == 0 {
		live.Clear()
		return live
	}

	if h.Pos == size {
		h.Pos = 0
	}
	if h.Pos == size-1 {
		live.Clear()
		return live
	}

	h.Pos++
	if entry, ok := h.Buf.Get(h.Pos); ok && entry.Equal(live) {
		h.Pos++
	}

	if entry, ok := h.Buf.Get(h.Pos); ok {
		return entry.Clone()
	}

	h.Pos = size - 1
	live.Clear()
	return live
}

// Entries liefert den Verlauf als Strings, aeltester zuerst.
func (h *History) Entries() []string {
	entries := make([]string, 0, h.Size())
	for _, l := range h.Buf.Values() {
		entries = append(entries, l.String())
	}
	return entries
}
