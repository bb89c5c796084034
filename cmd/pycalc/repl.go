package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	pythonic "github.com/Creamy-pie-96/pythonic"
	"github.com/Creamy-pie-96/pythonic/calc"
)

const replHelp = `statements:
  1 + 2            expressions with + - * / % ** and comparisons
  var a = 1, b = 2 declare variables
  a += 3           assignment and compound assignment
  5ull, 2.5f, 1ld  typed literals (i u l ul ll ull f d ld)
commands:
  :policy [throw|promote|wrap]   show or set the overflow policy
  :exact [on|off]                show or set exact (non smallest-fit) promotion
  :vars                          list variables
  :funcs                         list functions
  :clear                         drop all variables
  :help                          this text
  exit, quit, :quit              leave`

func (s *session) repl() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(s.complete)

	histPath := s.cfg.historyPath()
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	fmt.Fprintf(s.out, "pycalc (policy %s). Type :help for help.\n", s.env.Policy)
	for {
		line, err := ln.Prompt(">>> ")
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.out)
			return nil
		case err != nil:
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if line == "exit" || line == "quit" || line == ":quit" {
			return nil
		}
		if strings.HasPrefix(line, ":") {
			s.command(line)
			continue
		}
		s.run(line)
	}
}

// command handles a ":" line.
func (s *session) command(line string) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":help":
		fmt.Fprintln(s.out, replHelp)
	case ":policy":
		if len(fields) > 1 {
			p, err := pythonic.ParsePolicy(fields[1])
			if err != nil {
				s.printError(err)
				return
			}
			s.env.Policy = p
		}
		fmt.Fprintf(s.out, "policy %s\n", s.env.Policy)
	case ":exact":
		if len(fields) > 1 {
			switch fields[1] {
			case "on":
				s.env.SmallestFit = false
			case "off":
				s.env.SmallestFit = true
			default:
				s.printError(fmt.Errorf("expected on or off, got %q", fields[1]))
				return
			}
		}
		fmt.Fprintf(s.out, "exact %v\n", !s.env.SmallestFit)
	case ":vars":
		for _, name := range s.env.Names() {
			v, _ := s.env.Get(name)
			fmt.Fprintf(s.out, "%s = %s\n", name, s.format(v))
		}
	case ":funcs":
		fmt.Fprintln(s.out, strings.Join(calc.FunctionNames(), " "))
	case ":clear":
		s.env.Clear()
	default:
		s.printError(fmt.Errorf("unknown command %s, type :help", fields[0]))
	}
}

// complete offers variable and function names for the word under the
// cursor.
func (s *session) complete(line string) []string {
	start := strings.LastIndexFunc(line, func(r rune) bool {
		return !(r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}) + 1
	prefix := line[start:]
	if prefix == "" {
		return nil
	}
	var out []string
	for _, name := range append(s.env.Names(), calc.FunctionNames()...) {
		if strings.HasPrefix(name, prefix) {
			out = append(out, line[:start]+name)
		}
	}
	return out
}
