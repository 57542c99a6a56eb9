//go:build linux || darwin

// Package termsize reports the terminal's size in cells, in the shape the
// protocol's resize request wants it.
package termsize

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"

	"github.com/lydakis/kakui/protocol"
)

// Get returns the window size of the terminal open on fd.
func Get(fd uintptr) (rows, columns uint32, err error) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, fmt.Errorf("querying window size: %w", err)
	}
	return uint32(ws.Row), uint32(ws.Col), nil
}

// Watch emits a resize request for the current size immediately and again
// on every SIGWINCH until ctx is canceled. Only the most recent size is
// kept when the consumer lags. Sizes that cannot be read (fd is not a
// terminal) are skipped.
func Watch(ctx context.Context, fd uintptr) <-chan protocol.Resize {
	ch := make(chan protocol.Resize, 1)
	go func() {
		defer close(ch)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, unix.SIGWINCH)
		defer signal.Stop(sig)

		emit := func() {
			rows, columns, err := Get(fd)
			if err != nil {
				return
			}
			r := protocol.Resize{Rows: rows, Columns: columns}
			select {
			case ch <- r:
			default:
				// replace the stale pending size
				select {
				case <-ch:
				default:
				}
				ch <- r
			}
		}

		emit()
		for {
			select {
			case <-ctx.Done():
				return
			case <-sig:
				emit()
			}
		}
	}()
	return ch
}
