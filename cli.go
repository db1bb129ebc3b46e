package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"dispatchgen/log"
)

type mode byte

const (
	genMode     mode = iota // Generate the dispatch function
	checkMode               // Validate the opcode table
	versionMode             // Show dispatchgen version
)

type (
	CLI struct {
		Gen     Gen     `cmd:"" help:"Generate the dispatch function from the opcode table. (default command)" default:"true"`
		Check   Check   `cmd:"" help:"Parse and validate the opcode table without generating code."`
		Version Version `cmd:"" help:"Show dispatchgen version."`

		Log logModMask `help:"${log_help}" placeholder:"mod0,mod1,..."`

		mode mode
	}

	Gen struct {
		Table string `arg:"" optional:"" name:"/path/to/table" help:"${table_help}" type:"existingfile"`

		Out *outfile `name:"out" short:"o" help:"Write generated code to FILE instead of stdout." placeholder:"FILE|stdout|stderr"`
	}

	Check struct {
		Table string `arg:"" optional:"" name:"/path/to/table" help:"${table_help}" type:"existingfile"`

		Dump bool `name:"dump" help:"Dump the parsed records. (debug)"`
		JSON bool `name:"json" help:"Print the parsed records as JSON."`
	}

	Version struct{}
)

var vars = kong.Vars{
	"table_help": "Opcode table to read. Defaults to the configured path.",
	"log_help":   "Enable debug logging for specified modules.",
}

func parseArgs(args []string) CLI {
	var cfg CLI
	parser, err := kong.New(&cfg,
		kong.Name("dispatchgen"),
		kong.Description("6502 dispatch code generator."),
		kong.UsageOnError(),
		kong.Help(printHelp),
		vars)
	if err != nil {
		panic(err)
	}

	ctx, err := parser.Parse(args)
	checkf(err, "failed to parse command line")
	checkf(ctx.Error, "failed to parse command line")

	switch {
	case ctx.Command() == "version":
		cfg.mode = versionMode
	case strings.HasPrefix(ctx.Command(), "check"):
		cfg.mode = checkMode
	default:
		cfg.mode = genMode
	}
	return cfg
}

func printHelp(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}

	loggingHelp := `
Log modules:
  The --log flag accepts a comma-separated list of modules.

  Valid log modules are:
%s

  As a special case, the following values are accepted:
    - no                     Disable all logging.
    - all                    Enable all logs.
`
	var strs []string
	for _, m := range log.ModuleNames() {
		strs = append(strs, "    - "+m)
	}

	fmt.Fprintf(os.Stderr, loggingHelp, strings.Join(strs, "\n"))
	return nil
}

type logModMask log.ModuleMask

// Decode decodes a comma-separated list of module names into a module mask.
//
// Implements kong.MapperValue interface.
func (lm logModMask) Decode(ctx *kong.DecodeContext) error {
	nolog := false
	allLogs := false

	tok := ctx.Scan.Pop()
	for _, v := range strings.Split(tok.Value.(string), ",") {
		switch v {
		case "all":
			allLogs = true
		case "no":
			nolog = true
		default:
			mod, ok := log.ModuleByName(v)
			if !ok {
				return fmt.Errorf("unknown log module %s", v)
			}
			lm |= logModMask(mod.Mask())
		}
	}

	if nolog {
		if allLogs {
			return fmt.Errorf("cannot use 'all' and 'no' together")
		}
		if lm != 0 {
			return fmt.Errorf("cannot combine 'no' with other log modules")
		}
		log.Disable()
		return nil
	}

	if allLogs {
		lm = logModMask(log.ModuleMaskAll)
	}

	log.EnableDebugModules(log.ModuleMask(lm))
	return nil
}

type outfile struct {
	w     io.Writer
	name  string
	close func() error
}

// Decode decodes FILE|stdout|stderr into an io.WriteCloser
// that writes to that file.
//
// Implements kong.MapperValue interface.
func (f *outfile) Decode(ctx *kong.DecodeContext) error {
	tok := ctx.Scan.Pop()
	f.name = tok.Value.(string)
	f.close = func() error { return nil }

	switch f.name {
	case "stdout":
		f.w = os.Stdout
	case "stderr":
		f.w = os.Stderr
	default:
		fd, err := os.Create(f.name)
		if err != nil {
			return err
		}
		f.w = fd
		f.close = fd.Close
	}
	return nil
}

func (f *outfile) String() string              { return f.name }
func (f *outfile) Write(p []byte) (int, error) { return f.w.Write(p) }
func (f *outfile) Close() error                { return f.close() }

func checkf(err error, format string, args ...any) {
	if err == nil {
		return
	}
	fatalf(format+".\n"+err.Error(), args...)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "fatal error:")
	fmt.Fprintf(os.Stderr, "\n\t%s\n", fmt.Sprintf(format, args...))
	os.Exit(1)
}
