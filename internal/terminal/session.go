package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"fairdice/internal/domain"
)

// ErrClosed is returned by ReadLine after Close.
var ErrClosed = errors.New("terminal session closed")

type line struct {
	text string
	err  error
}

// Session is an interactive line-oriented terminal.
type Session struct {
	in    io.Reader
	out   io.Writer
	lines chan line
	done  chan struct{}
	once  sync.Once
}

// Open starts a session reading from in and writing to out.
func Open(in io.Reader, out io.Writer) *Session {
	s := &Session{
		in:    in,
		out:   out,
		lines: make(chan line),
		done:  make(chan struct{}),
	}
	go s.scan(in)
	return s
}

func (s *Session) scan(in io.Reader) {
	defer close(s.lines)
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		select {
		case s.lines <- line{text: sc.Text()}:
		case <-s.done:
			return
		}
	}
	err := sc.Err()
	if err == nil {
		err = io.EOF
	}
	select {
	case s.lines <- line{err: err}:
	case <-s.done:
	}
}

// Printf writes formatted output to the session.
func (s *Session) Printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

// ReadLine shows prompt and waits for the next line of input, with
// surrounding whitespace removed. It returns io.EOF when input ends,
// ctx.Err() on cancellation and ErrClosed after Close.
func (s *Session) ReadLine(ctx context.Context, prompt string) (string, error) {
	select {
	case <-s.done:
		return "", ErrClosed
	default:
	}
	if prompt != "" {
		fmt.Fprint(s.out, prompt)
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-s.done:
		return "", ErrClosed
	case l, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		if l.err != nil {
			return "", l.err
		}
		return strings.TrimSpace(l.text), nil
	}
}

// Close ends the session and closes in when it is an io.Closer, which
// unblocks the reader goroutine. Otherwise the goroutine exits on the next
// line or at end of input. Close is safe to call more than once.
func (s *Session) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		if c, ok := s.in.(io.Closer); ok {
			err = c.Close()
		}
	})
	return err
}

// Compile-time assertion that Session implements domain.Terminal.
var _ domain.Terminal = (*Session)(nil)
