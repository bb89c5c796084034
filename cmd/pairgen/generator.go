package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/mod/modfile"
	"golang.org/x/tools/go/packages"

	pythonic "github.com/Creamy-pie-96/pythonic"
)

//go:embed templates/pairs_gen.gotemplate
var pairsTemplate string

// goNames are the identifiers the tags go by in Go source.
var goNames = map[pythonic.Tag]string{
	pythonic.TagBool:       "Bool",
	pythonic.TagInt:        "Int",
	pythonic.TagUInt:       "UInt",
	pythonic.TagLong:       "Long",
	pythonic.TagULong:      "ULong",
	pythonic.TagLongLong:   "LongLong",
	pythonic.TagULongLong:  "ULongLong",
	pythonic.TagFloat:      "Float",
	pythonic.TagDouble:     "Double",
	pythonic.TagLongDouble: "LongDouble",
}

type pairGroup struct {
	Name  string
	Lines []string
}

type templateData struct {
	Package string
	Groups  []pairGroup
}

// findModuleRoot walks up from start to the nearest go.mod and returns its
// directory and module path.
func findModuleRoot(start string) (string, string, error) {
	dir := start
	for {
		data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
		if err == nil {
			modulePath := modfile.ModulePath(data)
			if modulePath == "" {
				return "", "", fmt.Errorf("module path not found in %s", filepath.Join(dir, "go.mod"))
			}
			return dir, modulePath, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", fmt.Errorf("go.mod not found starting from %s", start)
		}
		dir = parent
	}
}

// inModule reports whether the import path pkgPath belongs to modulePath.
func inModule(pkgPath, modulePath string) bool {
	return pkgPath == modulePath || strings.HasPrefix(pkgPath, modulePath+"/")
}

// loadPackage returns the name and import path of the package in dir and
// checks that it declares the dispatch table the output refers to.
func loadPackage(dir string) (string, string, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return "", "", err
	}
	if len(pkgs) != 1 {
		return "", "", fmt.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}
	pkg := pkgs[0]
	if pkg.Types == nil || pkg.Types.Scope().Lookup("dispatchTable") == nil {
		if len(pkg.Errors) > 0 {
			return "", "", fmt.Errorf("package load error in %s: %v", dir, pkg.Errors[0])
		}
		return "", "", fmt.Errorf("package %s in %s has no dispatchTable", pkg.Name, dir)
	}
	return pkg.Name, pkg.PkgPath, nil
}

func accessor(t pythonic.Tag) string {
	if t == pythonic.TagBool {
		return "Var.boolBit"
	}
	return "Var." + goNames[t] + "Unchecked"
}

func extender(t pythonic.Tag) string {
	switch {
	case t == pythonic.TagFloat:
		return "extFromFloat"
	case t == pythonic.TagDouble:
		return "extFromDouble"
	case t == pythonic.TagLongDouble:
		return "extFromExtended"
	case t.IsSigned():
		return "extFromSigned"
	}
	return "extFromUnsigned"
}

// registration renders the call that installs the kernels for left op
// right, hosted in the promoted kind.
func registration(left, right pythonic.Tag) (string, error) {
	promoted, err := pythonic.PromoteTags(left, right)
	if err != nil {
		return "", err
	}
	host := pythonic.ArithmeticHost(promoted)
	pair := fmt.Sprintf("t, Tag%s, Tag%s", goNames[left], goNames[right])
	switch {
	case host == pythonic.TagLongDouble:
		return fmt.Sprintf("registerExtendedHost(%s, %s, %s)", pair, extender(left), extender(right)), nil
	case host.IsFloat():
		return fmt.Sprintf("registerFloatHost(%s, %s, %s, %s, %s, New%s)",
			pair, accessor(left), accessor(right), extender(left), extender(right), goNames[host]), nil
	}
	return fmt.Sprintf("registerIntHost(%s, %s, %s, New%s)", pair, accessor(left), accessor(right), goNames[host]), nil
}

func buildGroups() ([]pairGroup, error) {
	tags := pythonic.NumericTags()
	groups := make([]pairGroup, 0, len(tags))
	for _, left := range tags {
		g := pairGroup{Name: left.String(), Lines: make([]string, 0, len(tags))}
		for _, right := range tags {
			line, err := registration(left, right)
			if err != nil {
				return nil, err
			}
			g.Lines = append(g.Lines, line)
		}
		groups = append(groups, g)
	}
	return groups, nil
}

func generate(pkgName string) ([]byte, error) {
	groups, err := buildGroups()
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New("pairs_gen").Parse(pairsTemplate)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, templateData{Package: pkgName, Groups: groups}); err != nil {
		return nil, err
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated code: %w", err)
	}
	return formatted, nil
}

func isStale(filePath string, data []byte) (bool, error) {
	existing, err := os.ReadFile(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return !bytes.Equal(existing, data), nil
}

func writeFileIfChanged(filePath string, data []byte) (bool, error) {
	stale, err := isStale(filePath, data)
	if err != nil || !stale {
		return false, err
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
