package readline

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// waiter wartet auf das Konsolen-Handle. Ctrl+C kommt im Raw-Mode als Byte an.
type waiter struct {
	h windows.Handle
}

func newWaiter(fd uintptr) (*waiter, error) {
	return &waiter{h: windows.Handle(fd)}, nil
}

func (w *waiter) wait() error {
	event, err := windows.WaitForSingleObject(w.h, windows.INFINITE)
	if err != nil {
		return resourceError("waiting for console input", err)
	}
	if event != windows.WAIT_OBJECT_0 {
		return resourceError("waiting for console input", fmt.Errorf("unexpected wait result %#x", event))
	}
	return nil
}

func (w *waiter) close() error {
	return nil
}
