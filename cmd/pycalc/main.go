package main

import (
	"errors"
	"log"

	"github.com/alecthomas/kong"
)

// Globals are the flags shared by every command.
type Globals struct {
	Policy  string `help:"Overflow policy: throw, promote or wrap." short:"p"`
	Exact   bool   `help:"Keep promoted results at or above the operands' ranks."`
	Config  string `help:"Config file. Defaults to the nearest .pycalc.yaml." type:"path"`
	Group   bool   `help:"Print integers with digit separators."`
	NoColor bool   `help:"Disable coloured output."`
}

type cli struct {
	Globals

	Eval evalCmd `cmd:"" help:"Evaluate statements in order and print each value."`
	Repl replCmd `cmd:"" default:"1" help:"Start an interactive session."`
}

type evalCmd struct {
	Statements []string `arg:"" name:"statement" help:"Statements to evaluate, e.g. 'var a = 2' 'a ** 64'."`
}

var errFailed = errors.New("one or more statements failed")

func (c *evalCmd) Run(g *Globals) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	ok := true
	for _, stmt := range c.Statements {
		ok = s.run(stmt) && ok
	}
	if !ok {
		return errFailed
	}
	return nil
}

type replCmd struct{}

func (c *replCmd) Run(g *Globals) error {
	s, err := newSession(g)
	if err != nil {
		return err
	}
	return s.repl()
}

func main() {
	log.SetFlags(0)

	var args cli
	ctx := kong.Parse(&args,
		kong.Name("pycalc"),
		kong.Description("Calculator over pythonic value cells with selectable overflow policies."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(&args.Globals); err != nil {
		log.Fatalf("pycalc: %v", err)
	}
}
