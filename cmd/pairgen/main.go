package main

import (
	"log"
	"path/filepath"

	"github.com/alecthomas/kong"
)

type cli struct {
	Dir    string `help:"Directory of the pythonic package." default:"."`
	Output string `help:"Output file, relative to the package directory." short:"o" default:"pairs_gen.go"`
	Check  bool   `help:"Fail instead of writing when the output is stale."`
}

func main() {
	log.SetFlags(0)

	var args cli
	kong.Parse(&args,
		kong.Name("pairgen"),
		kong.Description("Generate the numeric pair registrations of the pythonic dispatch table."),
		kong.UsageOnError(),
	)

	absDir, err := filepath.Abs(args.Dir)
	if err != nil {
		log.Fatal(err)
	}
	_, modulePath, err := findModuleRoot(absDir)
	if err != nil {
		log.Fatal(err)
	}
	name, pkgPath, err := loadPackage(absDir)
	if err != nil {
		log.Fatal(err)
	}
	if !inModule(pkgPath, modulePath) {
		log.Fatalf("pairgen: package %s is outside module %s", pkgPath, modulePath)
	}
	src, err := generate(name)
	if err != nil {
		log.Fatal(err)
	}

	outPath := args.Output
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(absDir, outPath)
	}
	if args.Check {
		stale, err := isStale(outPath, src)
		if err != nil {
			log.Fatal(err)
		}
		if stale {
			log.Fatalf("pairgen: %s is out of date for %s; run go generate %s", outPath, modulePath, pkgPath)
		}
		return
	}
	changed, err := writeFileIfChanged(outPath, src)
	if err != nil {
		log.Fatal(err)
	}
	if changed {
		log.Printf("pairgen: wrote %s for %s", outPath, pkgPath)
	} else {
		log.Printf("pairgen: %s: no changes", pkgPath)
	}
}
