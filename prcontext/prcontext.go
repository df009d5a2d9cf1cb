package prcontext

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/branchctx/prcontext/config"
	"github.com/branchctx/prcontext/git"
	"github.com/branchctx/prcontext/github"
	"github.com/branchctx/prcontext/pretty"
	"github.com/branchctx/prcontext/report"
	"github.com/ejoffe/profiletimer"
	"github.com/rs/zerolog/log"
)

// NewGenerator constructs and returns a new report generator instance.
func NewGenerator(cfg *config.Config, gitcmd git.GitInterface, prs github.PullRequestSource, writer io.Writer, debug bool) *generator {
	gen := &generator{
		config:       cfg,
		gitcmd:       gitcmd,
		prs:          prs,
		writer:       writer,
		now:          time.Now,
		profiletimer: profiletimer.StartNoopTimer(),
	}
	if debug {
		gen.debug = true
		gen.profiletimer = profiletimer.StartProfileTimer()
	}
	return gen
}

type generator struct {
	config       *config.Config
	gitcmd       git.GitInterface
	prs          github.PullRequestSource
	writer       io.Writer
	debug        bool
	now          func() time.Time
	profiletimer profiletimer.Timer
}

// GenerateReport synchronizes the tracking refs for the base branch and
// every requested branch, then assembles one report section per branch and
// writes the report. Ref sync failure aborts the run; a failed pull request
// lookup or diff only degrades its own section.
func (g *generator) GenerateReport(ctx context.Context, branches []string, outputPath string) error {
	g.profiletimer.Step("GenerateReport::Start")

	remote := g.config.Repo.GitHubRemote
	base := g.config.Repo.BaseBranch
	owner := g.config.Repo.GitHubRepoOwner
	name := g.config.Repo.GitHubRepoName

	err := git.SyncRefs(g.gitcmd, remote, base, branches)
	if err != nil {
		return err
	}
	g.profiletimer.Step("GenerateReport::SyncRefs")

	rep := &report.Report{
		GeneratedAt: g.now().UTC(),
		Owner:       owner,
		Name:        name,
		BaseBranch:  base,
		Branches:    branches,
	}

	for _, branch := range branches {
		pr, err := g.prs.FindOpenPullRequest(ctx, owner, name, branch)
		if err != nil {
			// downgraded to the no-PR sentinel, the run continues
			log.Warn().Err(err).Str("branch", branch).Msg("pull request lookup failed")
			pr = nil
		}

		diff := git.CollectDiff(g.gitcmd, remote, base, branch)

		rep.Sections = append(rep.Sections, report.Section{
			Branch: branch,
			PR:     pr,
			Diff:   diff,
		})
		g.profiletimer.Step("GenerateReport::" + branch)
	}

	if g.debug {
		err := pretty.PrefixPrettyWriter(g.writer, "report", rep)
		if err != nil {
			log.Debug().Err(err).Msg("report dump failed")
		}
	}

	path := report.ResolvePath(outputPath, g.config.User.OutputDir, rep.GeneratedAt)
	resolved, size, err := report.Write(path, report.Format(rep))
	if err != nil {
		return err
	}
	g.profiletimer.Step("GenerateReport::Write")

	fmt.Fprintf(g.writer, "report written to %s (%d bytes)\n", resolved, size)
	return nil
}

// DebugPrintSummary prints debug info if debug mode is enabled.
func (g *generator) DebugPrintSummary() {
	if g.debug {
		err := g.profiletimer.ShowResults()
		if err != nil {
			log.Error().Err(err).Msg("profile summary failed")
		}
	}
}
