package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/mines"
)

var errInputClosed = errors.New("input closed")

const help = `commands: o x y (open)  f x y (flag)  n (new game)  p (pause)  g (redraw)  q (quit)`

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

// scanLines feeds r line by line into the returned channel and closes it at
// EOF. The reader goroutine is not joined: a blocked terminal read cannot be
// interrupted.
func scanLines(r io.Reader) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()
	return lines
}

func clockText(s game.Status) string {
	return fmt.Sprintf("%03d", int(s.Elapsed.Seconds()))
}

func render(out io.Writer, s game.Status) {
	fmt.Fprintf(out, "\n%s  mines %d  %s\n", clockText(s), s.MinesLeft, s.Outcome)
	fmt.Fprint(out, s.Grid.String(s.Width))
	switch {
	case s.Outcome == mines.Victory:
		fmt.Fprintln(out, "Victory! n for a new game, q to quit")
	case s.Outcome == mines.Defeat:
		fmt.Fprintln(out, "Defeat. n for a new game, q to quit")
	case s.Paused:
		fmt.Fprintln(out, "The game is paused, p to resume")
	}
}

func play(ctx context.Context, g *game.Game, lines <-chan string, out io.Writer) error {
	fmt.Fprintln(out, help)
	render(out, g.Status())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				return errInputClosed
			}
			err := g.ExecuteAll(line)
			if errors.Is(err, game.ErrQuit) {
				return err
			}
			if err != nil {
				fmt.Fprintf(out, "error: %s\n", err)
			}
			render(out, g.Status())
		}
	}
}

// tick keeps the elapsed time in the terminal title.
func tick(ctx context.Context, g *game.Game, every time.Duration, out io.Writer) error {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			fmt.Fprintf(out, "\033]0;minesweeper %s\007", clockText(g.Status()))
		}
	}
}
