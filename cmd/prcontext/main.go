package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/branchctx/prcontext/config"
	"github.com/branchctx/prcontext/config/config_parser"
	"github.com/branchctx/prcontext/git"
	"github.com/branchctx/prcontext/git/realgit"
	"github.com/branchctx/prcontext/github/githubclient"
	"github.com/branchctx/prcontext/prcontext"
	"github.com/branchctx/prcontext/report"
	flags "github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	version = "dev"
	commit  = "dversion"
	date    = "unknown"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Caller().Logger().Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// command line opts
type opts struct {
	Output  string `short:"o" long:"output" description:"Write the report to this path instead of the generated one."`
	Base    string `short:"b" long:"base" description:"Base branch to diff against (default: main)."`
	Debug   bool   `short:"d" long:"debug" description:"Show runtime debug info."`
	Version bool   `short:"v" long:"version" description:"Show version info."`

	Args struct {
		Branches []string `positional-arg-name:"branch" required:"1" description:"Branches to include in the report."`
	} `positional-args:"yes"`
}

func main() {
	var opts opts
	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.Parse()
	if err != nil {
		if flags.WroteHelp(err) {
			fmt.Println(err)
			os.Exit(0)
		}
		fmt.Println(err)
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("prcontext version : %s : %s : %s\n", version, date, commit[:8])
		os.Exit(0)
	}

	if opts.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	ctx := context.Background()

	token, err := githubclient.TokenFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintf(os.Stderr, "Make one at: https://%s/settings/tokens\n", "github.com")
		fmt.Fprintf(os.Stderr, "And set an env variable called %s with its value\n", githubclient.TokenEnv)
		os.Exit(2)
	}

	gitcmd, err := realgit.NewGitCmd(config.EmptyConfig())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}

	cfg, err := config_parser.ParseConfig(gitcmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}
	if opts.Base != "" {
		cfg.Repo.BaseBranch = opts.Base
	}

	// reopen rooted at the repo toplevel with the loaded config
	gitcmd, err = realgit.NewGitCmd(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}

	client, err := githubclient.NewGitHubClient(ctx, cfg, token)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}

	gen := prcontext.NewGenerator(cfg, gitcmd, client, os.Stdout, opts.Debug)
	if err := gen.GenerateReport(ctx, opts.Args.Branches, opts.Output); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}

	if opts.Debug {
		gen.DebugPrintSummary()
	}
}

func exitCode(err error) int {
	var cfgErr *config.ConfigurationError
	var syncErr *git.SyncError
	var writeErr *report.WriteError
	switch {
	case errors.As(err, &cfgErr):
		return 3
	case errors.As(err, &syncErr):
		return 4
	case errors.As(err, &writeErr):
		return 5
	}
	return 1
}
