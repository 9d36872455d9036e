// Copyright (C) 2019-2026, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"

	"github.com/drawlots/drawlots/report"
	"github.com/drawlots/drawlots/roster"
	"github.com/drawlots/drawlots/utils/sampler"
)

const (
	prompt = "> "

	shellHelp = `commands:
  group [total] [count]   draw groups numbered 1..total
  load <file>             load a roster (.rcp envelopes are decoded)
  reload                  read the current roster file again
  person [count]          draw names from the loaded roster
  stats [group|person]    show the selection history
  reset [group|person]    forget the selection history, both if omitted
  history                 show the latest draws
  clear                   clear the history
  help                    show this message
  quit                    leave the shell
`
)

var errUnknownCommand = errors.New("unknown command")

// Shell is a line based interface to a session.
type Shell struct {
	session *Session
	in      io.Reader
	out     io.Writer
}

func NewShell(session *Session, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		session: session,
		in:      in,
		out:     out,
	}
}

// Run executes commands until "quit", the end of the input or the
// cancellation of [ctx]. Failed commands are reported and the loop continues.
func (sh *Shell) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(sh.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(sh.out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(sh.out)
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		command, args := strings.ToLower(fields[0]), fields[1:]
		if command == "quit" || command == "exit" {
			return nil
		}
		if err := sh.execute(command, args); err != nil {
			fmt.Fprintf(sh.out, "error: %s\n", err)
		}
	}
}

func (sh *Shell) execute(command string, args []string) error {
	switch command {
	case "group":
		return sh.group(args)
	case "load":
		if len(args) != 1 {
			return fmt.Errorf("%w: load expects a file", ErrInvalidArgument)
		}
		r, err := sh.session.LoadRoster(args[0])
		if err != nil {
			return err
		}
		sh.printRoster(r)
	case "reload":
		r, err := sh.session.ReloadRoster()
		if err != nil {
			return err
		}
		sh.printRoster(r)
	case "person":
		return sh.person(args)
	case "stats":
		return sh.stats(args)
	case "reset":
		return sh.reset(args)
	case "history":
		entries := sh.session.History()
		if len(entries) == 0 {
			fmt.Fprintln(sh.out, "no draws yet")
		}
		for _, entry := range entries {
			fmt.Fprintln(sh.out, entry)
		}
	case "clear":
		sh.session.ClearHistory()
		fmt.Fprintln(sh.out, "history cleared")
	case "help":
		fmt.Fprint(sh.out, shellHelp)
	default:
		return fmt.Errorf("%w %q, type help for a list", errUnknownCommand, command)
	}
	return nil
}

func (sh *Shell) group(args []string) error {
	config := sh.session.Config()
	ints, err := ParseInts(args, config.GroupTotalDefault, config.GroupChoiceDefault)
	if err != nil {
		return err
	}
	result, err := sh.session.DrawGroups(ints[0], ints[1])
	if err != nil {
		return err
	}
	PrintResult(sh.out, result)
	return nil
}

func (sh *Shell) person(args []string) error {
	ints, err := ParseInts(args, sh.session.Config().PersonChoiceDefault)
	if err != nil {
		return err
	}
	result, err := sh.session.DrawPersons(ints[0])
	if err != nil {
		return err
	}
	PrintResult(sh.out, result)
	return nil
}

func (sh *Shell) stats(args []string) error {
	kinds, err := parseKinds(args)
	if err != nil {
		return err
	}
	for _, kind := range kinds {
		stats, err := sh.session.Stats(kind)
		if err != nil {
			return err
		}
		PrintStats(sh.out, kind, stats)
	}
	return nil
}

func (sh *Shell) reset(args []string) error {
	kinds, err := parseKinds(args)
	if err != nil {
		return err
	}
	for _, kind := range kinds {
		if err := sh.session.Reset(kind); err != nil {
			return err
		}
		fmt.Fprintf(sh.out, "%s history reset\n", kind)
	}
	return nil
}

func (sh *Shell) printRoster(r *roster.Roster) {
	fmt.Fprintf(sh.out, "loaded %d names from %s\n", len(r.Names), r.Path)
	if r.HasDuplicates() {
		fmt.Fprintf(sh.out, "warning: %d duplicate names were merged\n", r.Duplicates)
	}
}

// PrintResult writes the items of [result], one per line, to [w].
func PrintResult(w io.Writer, result *report.Result) {
	fmt.Fprintf(w, "抽取%d%s:\n", len(result.Items), result.Kind.Noun())
	for _, item := range result.Items {
		fmt.Fprintf(w, "  %s\n", item)
	}
}

// PrintStats writes a human readable summary of [stats] to [w].
func PrintStats(w io.Writer, kind report.Kind, stats sampler.Stats[string]) {
	fmt.Fprintf(w, "%s draws: %d\n", kind, stats.TotalDraws)
	if stats.MostSelected == nil {
		fmt.Fprintln(w, "  nothing selected yet")
		return
	}
	fmt.Fprintf(w, "  most selected: %s (%d)\n", stats.MostSelected.Item, stats.MostSelected.Count)
	fmt.Fprintf(w, "  least selected: %s (%d)\n", stats.LeastSelected.Item, stats.LeastSelected.Count)
	for _, item := range stats.Order {
		fmt.Fprintf(w, "  %s: %d\n", item, stats.Counts[item])
	}
}

// ParseInts parses [args] as integers. Missing trailing values are taken from
// [defaults].
func ParseInts(args []string, defaults ...int) ([]int, error) {
	if len(args) > len(defaults) {
		return nil, fmt.Errorf("%w: expected at most %d arguments", ErrInvalidArgument, len(defaults))
	}
	ints := slices.Clone(defaults)
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidArgument, arg)
		}
		ints[i] = n
	}
	return ints, nil
}

func parseKinds(args []string) ([]report.Kind, error) {
	switch len(args) {
	case 0:
		return report.Kinds, nil
	case 1:
		if strings.EqualFold(args[0], "all") {
			return report.Kinds, nil
		}
		kind, err := report.ParseKind(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
		}
		return []report.Kind{kind}, nil
	default:
		return nil, fmt.Errorf("%w: expected at most 1 argument", ErrInvalidArgument)
	}
}
