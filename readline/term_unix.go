//go:build !windows

package readline

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// waiter blockiert per poll(2) bis Eingabe da ist. Beendigungssignale wecken
// ueber eine Self-Pipe auf und werden zu ErrInterrupt. Ein EINTR durch andere
// Signale (z.B. SIGWINCH) wird wiederholt.
type waiter struct {
	fd      int
	wakeR   *os.File
	wakeW   *os.File
	signals chan os.Signal
	done    chan struct{}
}

func newWaiter(fd uintptr) (*waiter, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, err
	}

	wt := &waiter{
		fd:      int(fd),
		wakeR:   r,
		wakeW:   w,
		signals: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
	signal.Notify(wt.signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	go wt.forward()
	return wt, nil
}

func (w *waiter) forward() {
	for {
		select {
		case <-w.signals:
			//nolint:errcheck
			w.wakeW.Write([]byte{0})
		case <-w.done:
			return
		}
	}
}

func (w *waiter) wait() error {
	fds := []unix.PollFd{
		{Fd: int32(w.fd), Events: unix.POLLIN},
		{Fd: int32(w.wakeR.Fd()), Events: unix.POLLIN},
	}

	for {
		_, err := unix.Poll(fds, -1)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return resourceError("error in poll", err)
		}

		if fds[1].Revents&unix.POLLIN != 0 {
			return ErrInterrupt
		}
		if fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0 {
			return nil
		}
	}
}

func (w *waiter) close() error {
	signal.Stop(w.signals)
	close(w.done)
	return errors.Join(w.wakeR.Close(), w.wakeW.Close())
}
