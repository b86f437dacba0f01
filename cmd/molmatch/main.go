// Command molmatch matches molecular graphs against residue templates.
//
// Usage: molmatch [options] <command> [files]
//
// See helpMessage for the command list.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/molmatch/config"
)

const helpMessage = `
molmatch finds atom correspondences between molecular graphs

Usage: molmatch [options] <command> [files]

      -config  =string   TOML configuration file.
      -attrs   =string   Comma-separated node attributes compared by mcs commands.
      -verbose (flag)    Log debug events.
  -h, -help    (flag)    Show help message

Graph files are read by extension: .yaml/.yml, .msgpack/.mpk or .pdb.

Commands:

	iso              <reference> <residue>   ranked residue embeddings
	mcs              <a> <b>                 degree-aware maximum common subgraph
	mcs-categorical  <a> <b>                 exact maximum common subgraph
	residues         <molecule>              residue graph summary
	fragments        <molecule>              bonded fragments and ring counts
	convert          <in> <out>              rewrite a graph as .yaml or .msgpack
	demo                                     ethane / methyl walkthrough
`

// env carries what every command needs.
type env struct {
	ctx    context.Context
	cfg    config.Config
	logger *log.Logger
	stdout io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one command line and returns the exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("molmatch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stdout, helpMessage) }

	var (
		configPath = fs.String("config", "", "")
		attrs      = fs.String("attrs", "", "")
		verbose    = fs.Bool("verbose", false, "")
		showHelp   bool
	)
	fs.BoolVar(&showHelp, "help", false, "")
	fs.BoolVar(&showHelp, "h", false, "Show help message")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}
	if fs.NArg() >= 1 && strings.ToLower(fs.Arg(0)) == "help" {
		showHelp = true
	}
	if showHelp || fs.NArg() == 0 {
		fs.Usage()
		return 0
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			fmt.Fprintln(stderr, "molmatch:", err)
			return 1
		}
	}
	if *attrs != "" {
		cfg.Match.Attributes = splitList(*attrs)
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "molmatch:", err)
		return 1
	}

	out := cfg.LogOutput(stderr)
	if c, ok := out.(io.Closer); ok {
		defer c.Close()
	}
	logger := cfg.NewLogger(out).With("run", uuid.NewString())
	e := &env{ctx: ctx, cfg: cfg, logger: logger, stdout: stdout}

	name, rest := strings.ToLower(fs.Arg(0)), fs.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		logger.Error("unknown command", "command", name)
		return 1
	}
	if len(rest) != cmd.nargs {
		logger.Error("wrong number of arguments", "command", name, "want", cmd.nargs, "got", len(rest))
		return 1
	}
	if err := cmd.fn(e, rest); err != nil {
		logger.Error("command failed", "command", name, "err", err)
		return 1
	}

	return 0
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
