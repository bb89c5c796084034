package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	pythonic "github.com/Creamy-pie-96/pythonic"
	"github.com/Creamy-pie-96/pythonic/calc"
)

func testSession(t *testing.T) (*session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	cfg, err := parseConfig(nil, "test")
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	return &session{
		env:     calc.NewEnv(),
		cfg:     cfg,
		printer: message.NewPrinter(language.English),
		out:     &out,
		errOut:  &errOut,
	}, &out, &errOut
}

func TestParseConfig(t *testing.T) {
	cfg, err := parseConfig([]byte("policy: promote\nexact: true\nprelude:\n  - var g = 9.81\n"), "x.yaml")
	if err != nil {
		t.Fatalf("parseConfig: %v", err)
	}
	if cfg.Policy != "promote" || !cfg.Exact || len(cfg.Prelude) != 1 || cfg.History != ".pycalc_history" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if _, err := parseConfig([]byte("policy: saturate\n"), "x.yaml"); err == nil {
		t.Fatalf("bad policy accepted")
	}
	if _, err := parseConfig([]byte("policy: [\n"), "x.yaml"); err == nil {
		t.Fatalf("bad yaml accepted")
	}
}

func TestFindConfig(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(root, configName)
	if err := os.WriteFile(want, []byte("group: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := findConfig(nested)
	if err != nil || got != want {
		t.Fatalf("findConfig = %q, %v; want %q", got, err, want)
	}
	cfg, err := loadConfig(got)
	if err != nil || !cfg.Group {
		t.Fatalf("loadConfig = %+v, %v", cfg, err)
	}
}

func TestFormat(t *testing.T) {
	s, _, _ := testSession(t)
	if got := s.format(pythonic.NewLong(1234567)); got != "1234567  (long)" {
		t.Fatalf("format = %q", got)
	}
	s.group = true
	cases := map[string]pythonic.Var{
		"1,234,567  (long)":                   pythonic.NewLong(1234567),
		"-9,876  (int)":                       pythonic.NewInt(-9876),
		"4,294,967,295  (uint)":               pythonic.NewUInt(4294967295),
		"18,446,744,073,709,551,615  (ulong)": pythonic.NewULong(18446744073709551615),
		"True  (bool)":                        pythonic.NewBool(true),
		"'x'  (str)":                          pythonic.NewString("x"),
	}
	for want, v := range cases {
		if got := s.format(v); got != want {
			t.Fatalf("format = %q, want %q", got, want)
		}
	}
	s.color = true
	if got := s.format(pythonic.NewInt(1)); !strings.HasPrefix(got, "\x1b[36m1\x1b[0m") {
		t.Fatalf("coloured format = %q", got)
	}
}

func TestRunAndCommands(t *testing.T) {
	s, out, errOut := testSession(t)
	if !s.run("var a = 2") || !s.run("a ** 10") {
		t.Fatalf("run failed: %s", errOut)
	}
	if !strings.Contains(out.String(), "1024  (int)") {
		t.Fatalf("output = %q", out)
	}
	if s.run("1 +") {
		t.Fatalf("bad statement succeeded")
	}
	if !strings.Contains(errOut.String(), "1 +\n   ^") {
		t.Fatalf("error output = %q", errOut)
	}

	s.command(":policy promote")
	if s.env.Policy != pythonic.Promote {
		t.Fatalf("policy = %s", s.env.Policy)
	}
	s.command(":exact on")
	if s.env.SmallestFit {
		t.Fatalf("exact mode not set")
	}
	out.Reset()
	s.command(":vars")
	if out.String() != "a = 2  (int)\n" {
		t.Fatalf(":vars = %q", out)
	}
	s.command(":clear")
	if len(s.env.Names()) != 0 {
		t.Fatalf(":clear left %v", s.env.Names())
	}
	errOut.Reset()
	s.command(":bogus")
	if !strings.Contains(errOut.String(), "unknown command") {
		t.Fatalf("unknown command output = %q", errOut)
	}
}

func TestComplete(t *testing.T) {
	s, _, _ := testSession(t)
	s.env.Set("alpha", pythonic.NewInt(1))
	got := s.complete("1 + al")
	if len(got) != 1 || got[0] != "1 + alpha" {
		t.Fatalf("complete = %v", got)
	}
	if got := s.complete("sq"); len(got) != 1 || got[0] != "sqrt" {
		t.Fatalf("complete = %v", got)
	}
	if s.complete("1 + ") != nil {
		t.Fatalf("empty prefix completed")
	}
}
