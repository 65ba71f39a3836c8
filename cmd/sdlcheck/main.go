/*
Sdlcheck parses one or more schema/query files (or stdin) and reports the
diagnostics sdlparse produces for each.

Usage:

	sdlcheck [flags] [FILE ...]
	sdlcheck [flags] --repl

If no FILE is given and --repl is not set, source is read from stdin as a
single document. Parsing never fails outright — sdlcheck reports whatever
diagnostics the parse produced and exits nonzero if at least one file
contained a diagnostic or could not be read.

The flags are:

	-c, --config FILE
		TOML config file supplying defaults for --recursion-limit and
		--format. Defaults to "./sdlcheck.toml" if present.

	-r, --recursion-limit N
		Override the parser's grammar-nesting depth guard (default 500).

	-f, --format text|tree
		"text" prints each diagnostic as a wrapped message block, with a
		blank line between blocks, or "no errors" for a clean parse.
		"tree" additionally dumps
		the green tree using the branch-art indentation from
		internal/render. Matched case-insensitively.

	--repl
		Interactive mode: each line read is parsed as a standalone
		document and its diagnostics/tree are printed immediately.

	-v, --version
		Print version info and exit.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dekarrin/sdlparse"
	"github.com/dekarrin/sdlparse/internal/render"
)

const (
	// ExitSuccess indicates every file parsed with no diagnostics.
	ExitSuccess = iota
	// ExitErrorUsage indicates a problem with flags or arguments.
	ExitErrorUsage
	// ExitErrorParse indicates at least one file produced a diagnostic.
	ExitErrorParse
)

const version = "1.0.0"

var (
	flagVersion        = pflag.BoolP("version", "v", false, "Print version info and exit.")
	flagConfig         = pflag.StringP("config", "c", "sdlcheck.toml", "TOML config file.")
	flagRecursionLimit = pflag.IntP("recursion-limit", "r", 0, "Override the parser's recursion depth guard.")
	flagFormat         = pflag.StringP("format", "f", "", "Output format: text or tree.")
	flagRepl           = pflag.Bool("repl", false, "Interactive mode: parse each input line standalone.")
)

func main() {
	os.Exit(run())
}

func run() int {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("sdlcheck %s\n", version)
		return ExitSuccess
	}

	cfg, err := loadConfig(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: could not read config: %s\n", err.Error())
		return ExitErrorUsage
	}

	recursionLimit := cfg.RecursionLimit
	if pflag.Lookup("recursion-limit").Changed {
		recursionLimit = *flagRecursionLimit
	}

	format := cfg.Format
	if pflag.Lookup("format").Changed {
		format = *flagFormat
	}
	if format == "" {
		format = "text"
	}
	// fold case the way the teacher folds player-facing text at the edge
	// with golang.org/x/text/cases, so "Tree"/"TREE"/"tree" are equivalent.
	format = cases.Lower(language.English).String(format)
	if format != "text" && format != "tree" {
		fmt.Fprintf(os.Stderr, "ERROR: --format must be \"text\" or \"tree\", got %q\nDo -h for help.\n", format)
		return ExitErrorUsage
	}

	if *flagRepl {
		return runRepl(format, recursionLimit)
	}

	args := pflag.Args()
	if len(args) == 0 {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: could not read stdin: %s\n", err.Error())
			return ExitErrorUsage
		}
		return checkOne("<stdin>", string(source), format, recursionLimit)
	}

	result := ExitSuccess
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			result = ExitErrorUsage
			continue
		}
		if code := checkOne(path, string(data), format, recursionLimit); code > result {
			result = code
		}
	}
	return result
}

func parseOpts(recursionLimit int) []sdlparse.Option {
	if recursionLimit <= 0 {
		return nil
	}
	return []sdlparse.Option{sdlparse.WithRecursionLimit(recursionLimit)}
}

func checkOne(name, source, format string, recursionLimit int) int {
	tree := sdlparse.New(source, parseOpts(recursionLimit)...).Parse()
	errs := tree.Errors()

	fmt.Printf("%s:\n", name)
	if format == "tree" {
		fmt.Println(render.Tree(tree))
	}
	fmt.Println(render.Diagnostics(errs))

	if len(errs) > 0 {
		return ExitErrorParse
	}
	return ExitSuccess
}

func runRepl(format string, recursionLimit int) int {
	rl, err := readline.NewEx(&readline.Config{Prompt: "sdl> "})
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: could not start REPL: %s\n", err.Error())
		return ExitErrorUsage
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or readline.ErrInterrupt
			break
		}
		if line == "" {
			continue
		}
		checkOne("<repl>", line, format, recursionLimit)
	}
	return ExitSuccess
}
