package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	pythonic "github.com/Creamy-pie-96/pythonic"
	"github.com/Creamy-pie-96/pythonic/calc"
)

// session is one calculator run: the environment plus output settings.
type session struct {
	env     *calc.Env
	cfg     *config
	group   bool
	color   bool
	printer *message.Printer
	out     io.Writer
	errOut  io.Writer
}

func newSession(g *Globals) (*session, error) {
	cfg, err := resolveConfig(g.Config)
	if err != nil {
		return nil, err
	}
	env := calc.NewEnv()
	policy := cfg.Policy
	if g.Policy != "" {
		policy = g.Policy
	}
	if policy != "" {
		if env.Policy, err = pythonic.ParsePolicy(policy); err != nil {
			return nil, err
		}
	}
	env.SmallestFit = !(g.Exact || cfg.Exact)

	s := &session{
		env:     env,
		cfg:     cfg,
		group:   g.Group || cfg.Group,
		color:   !g.NoColor && useColor(os.Stdout),
		printer: message.NewPrinter(language.English),
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
	for _, stmt := range cfg.Prelude {
		if _, err := env.Eval(stmt); err != nil {
			return nil, fmt.Errorf("prelude %q: %w", stmt, err)
		}
	}
	return s, nil
}

func resolveConfig(path string) (*config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		if path, err = findConfig(wd); err != nil {
			return nil, err
		}
		if path == "" {
			return parseConfig(nil, configName)
		}
	}
	return loadConfig(path)
}

func useColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (s *session) paint(code, text string) string {
	if !s.color {
		return text
	}
	return "\x1b[" + code + "m" + text + "\x1b[0m"
}

// format renders a result as "value  (kind)".
func (s *session) format(v pythonic.Var) string {
	text := v.Repr()
	if s.group {
		switch {
		case v.Tag() == pythonic.TagBool:
		case v.Tag().IsSigned():
			n, _ := v.AsInt64()
			text = s.printer.Sprintf("%d", n)
		case v.Tag().IsUnsigned():
			// unsigned payloads are zero-extended
			text = s.printer.Sprintf("%d", v.ULongUnchecked())
		}
	}
	switch {
	case v.Tag().IsNumeric():
		text = s.paint("36", text)
	case v.Tag() == pythonic.TagString:
		text = s.paint("32", text)
	}
	return text + "  " + s.paint("90", "("+v.TypeName()+")")
}

// run evaluates one statement and prints its value or error. It reports
// whether the statement succeeded.
func (s *session) run(stmt string) bool {
	v, err := s.env.Eval(stmt)
	if err != nil {
		s.printError(err)
		return false
	}
	fmt.Fprintln(s.out, s.format(v))
	return true
}

func (s *session) printError(err error) {
	var syntaxErr calc.SyntaxError
	if errors.As(err, &syntaxErr) {
		fmt.Fprintln(s.errOut, syntaxErr.HighlightLocation())
	}
	fmt.Fprintln(s.errOut, s.paint("31", err.Error()))
}
