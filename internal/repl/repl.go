// Package repl drives a table from a line-oriented terminal session. Each
// line holds one or more input names separated by spaces; the board is
// redrawn after every line.
package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterkuimelis/tcgsim/internal/game"
	"github.com/peterkuimelis/tcgsim/internal/log"
	"github.com/peterkuimelis/tcgsim/internal/table"
	"github.com/peterkuimelis/tcgsim/internal/view"
)

const help = `Inputs: left right 1-6 hand discard stadium lost-zone prizes deck top bottom
        select cancel flip inc dec switch move swap append prepend observe shuffle roll
Commands: :events  :help  quit`

// Run reads lines from in until EOF, "quit" or ctx is done.
func Run(ctx context.Context, t *table.Table, in io.Reader, out io.Writer) error {
	r := &session{t: t, out: out}
	r.render()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "quit", "exit", ":q":
			return nil
		case ":help", "help", "?":
			fmt.Fprintln(out, help)
			continue
		case ":events":
			fmt.Fprint(out, log.FormatAll(t.Events(0)))
			continue
		}

		r.pressAll(strings.Fields(line))
		r.render()
	}
}

type session struct {
	t   *table.Table
	out io.Writer
}

// pressAll applies each name in order and stops at the first rejected one.
func (r *session) pressAll(names []string) {
	for _, name := range names {
		res, err := r.t.PressNamed(name)
		for _, ev := range res.Events {
			fmt.Fprintln(r.out, log.FormatEvent(ev))
		}
		if err != nil {
			if errors.Is(err, game.ErrUnknownInput) {
				fmt.Fprintf(r.out, "Unknown input %q (type :help)\n", name)
			} else {
				fmt.Fprintf(r.out, "%s: %v\n", name, err)
			}
			return
		}
	}
}

func (r *session) render() {
	view.Render(r.out, r.t.View())
}
