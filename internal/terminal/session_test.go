package terminal_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"fairdice/internal/terminal"
)

func TestReadLine_Lines(t *testing.T) {
	var out bytes.Buffer
	s := terminal.Open(strings.NewReader(" 1 \n?\nX\n"), &out)
	defer s.Close()

	ctx := context.Background()
	for _, want := range []string{"1", "?", "X"} {
		got, err := s.ReadLine(ctx, "> ")
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
	_, err := s.ReadLine(ctx, "> ")
	require.ErrorIs(t, err, io.EOF)
	_, err = s.ReadLine(ctx, "> ")
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, strings.Repeat("> ", 5), out.String())
}

func TestReadLine_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	s := terminal.Open(pr, io.Discard)
	defer s.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := s.ReadLine(ctx, "")
	require.True(t, errors.Is(err, context.Canceled), "%v", err)
}

func TestClose_Idempotent(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	s := terminal.Open(pr, io.Discard)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	_, err := s.ReadLine(context.Background(), "")
	require.ErrorIs(t, err, terminal.ErrClosed)
}

func TestClose_ClosesInput(t *testing.T) {
	pr, pw := io.Pipe()
	s := terminal.Open(pr, io.Discard)
	require.NoError(t, s.Close())

	_, err := pw.Write([]byte("late\n"))
	require.ErrorIs(t, err, io.ErrClosedPipe)
}

func TestPrintf(t *testing.T) {
	var out bytes.Buffer
	s := terminal.Open(strings.NewReader(""), &out)
	defer s.Close()

	s.Printf("HMAC=%s\n", "ab12")
	require.Equal(t, "HMAC=ab12\n", out.String())
}
