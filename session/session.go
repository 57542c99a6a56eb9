// Package session runs an editor subprocess in JSON UI mode and frames the
// newline-delimited protocol messages flowing over its stdio pipes. Message
// contents are the protocol package's concern; this package only spawns,
// frames, and shuts down.
package session

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/lydakis/kakui/protocol"
)

// maxFrameSize bounds a single wire line. Full-screen draws of large
// buffers easily exceed bufio.Scanner's default 64K token limit.
const maxFrameSize = 16 << 20

// uiArgs puts the editor into JSON UI mode. Overridable for tests that
// substitute a plain shell for the editor.
var uiArgs = []string{"-ui", "json"}

// Options configures a session. The zero value spawns "kak" with no extra
// arguments.
type Options struct {
	Command string            // editor binary; defaults to "kak"
	Args    []string          // extra arguments, appended after the UI flags
	Env     map[string]string // added to the inherited environment
	Session string            // editor session name (-s), empty for none
	Stderr  io.Writer         // editor stderr; defaults to the caller's stderr
}

// Session is a running editor subprocess speaking the JSON UI protocol.
// Send may be called from any goroutine; Requests and Errors are each meant
// for a single consumer.
type Session struct {
	cmd        *exec.Cmd
	stdin      io.WriteCloser
	requests   chan protocol.IncomingRequest
	errs       chan error
	readerDone chan struct{}

	closing   chan struct{}
	closeOnce sync.Once

	writeMu sync.Mutex

	waitOnce sync.Once
	waitErr  error
}

// Start spawns the editor and begins decoding its output. Canceling ctx
// kills the subprocess; Close is still required to release the pipes.
func Start(ctx context.Context, opts Options) (*Session, error) {
	command := opts.Command
	if command == "" {
		command = "kak"
	}
	args := append([]string{}, uiArgs...)
	if opts.Session != "" {
		args = append(args, "-s", opts.Session)
	}
	args = append(args, opts.Args...)

	cmd := exec.CommandContext(ctx, command, args...)
	if len(opts.Env) > 0 {
		env := os.Environ()
		for k, v := range opts.Env {
			env = append(env, k+"="+v)
		}
		cmd.Env = env
	}
	cmd.Stderr = opts.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("opening editor stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("opening editor stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", command, err)
	}

	s := &Session{
		cmd:        cmd,
		stdin:      stdin,
		requests:   make(chan protocol.IncomingRequest),
		errs:       make(chan error, 16),
		readerDone: make(chan struct{}),
		closing:    make(chan struct{}),
	}
	go s.readLoop(stdout)
	return s, nil
}

// Requests delivers decoded editor requests in arrival order. The channel
// closes when the editor's stdout closes.
func (s *Session) Requests() <-chan protocol.IncomingRequest { return s.requests }

// Errors delivers per-message decode failures. A bad frame fails only
// itself: the session skips it and keeps reading. Errors are dropped when
// nobody is draining the channel.
func (s *Session) Errors() <-chan error { return s.errs }

func (s *Session) readLoop(stdout io.Reader) {
	defer close(s.readerDone)
	defer close(s.requests)

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), maxFrameSize)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		req, err := protocol.DecodeIncoming(line)
		if err != nil {
			s.reportErr(err)
			continue
		}
		select {
		case s.requests <- req:
		case <-s.closing:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		s.reportErr(fmt.Errorf("reading editor output: %w", err))
	}
}

func (s *Session) reportErr(err error) {
	select {
	case s.errs <- err:
	default:
	}
}

// Send encodes one request and writes it as a single frame. Safe for
// concurrent use; frames are never interleaved.
func (s *Session) Send(req protocol.OutgoingRequest) error {
	data, err := protocol.EncodeOutgoing(req)
	if err != nil {
		return err
	}
	data = append(data, '\n')

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	if _, err := s.stdin.Write(data); err != nil {
		return fmt.Errorf("writing to editor: %w", err)
	}
	return nil
}

// Close closes the editor's stdin, which asks it to exit, then waits for
// the process.
func (s *Session) Close() error {
	s.closeOnce.Do(func() { close(s.closing) })

	s.writeMu.Lock()
	err := s.stdin.Close()
	s.writeMu.Unlock()
	if werr := s.Wait(); werr != nil {
		return werr
	}
	if err != nil && !isAlreadyClosed(err) {
		return fmt.Errorf("closing editor stdin: %w", err)
	}
	return nil
}

// Wait blocks until the editor exits and returns its exit error. Requests
// already decoded remain readable from the channel.
func (s *Session) Wait() error {
	s.waitOnce.Do(func() {
		<-s.readerDone
		s.waitErr = s.cmd.Wait()
	})
	return s.waitErr
}

func isAlreadyClosed(err error) bool {
	return errors.Is(err, os.ErrClosed) || errors.Is(err, io.ErrClosedPipe)
}
