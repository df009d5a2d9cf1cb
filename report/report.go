package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/branchctx/prcontext/git"
	"github.com/branchctx/prcontext/github"
)

const (
	// NoDescription substitutes an empty pull request body.
	NoDescription = "No description provided"

	// NoOpenPR marks a section whose branch has no matching open pull
	// request. Also emitted when the lookup itself failed.
	NoOpenPR = "No open PR found for this branch."
)

var (
	heavyRule = strings.Repeat("=", 80)
	lightRule = strings.Repeat("-", 80)
)

// Section is the per-branch slice of the report, in request order.
type Section struct {
	Branch string
	PR     *github.PullRequestSummary
	Diff   git.DiffResult
}

// Report is the full document model. It is append-only while the
// orchestrator runs and immutable once formatted.
type Report struct {
	GeneratedAt time.Time
	Owner       string
	Name        string
	BaseBranch  string
	Branches    []string
	Sections    []Section
}

// Format renders the report deterministically: fixed field order, sections
// in request order, rule-line separated. Formatting the same model twice
// yields byte-identical output.
func Format(r *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n", heavyRule)
	fmt.Fprintf(&b, "PR CONTEXT REPORT\n")
	fmt.Fprintf(&b, "Generated: %s\n", r.GeneratedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Repository: %s/%s\n", r.Owner, r.Name)
	fmt.Fprintf(&b, "Base branch: %s\n", r.BaseBranch)
	fmt.Fprintf(&b, "Branches: %s\n", strings.Join(r.Branches, ", "))
	fmt.Fprintf(&b, "%s\n", heavyRule)

	for _, section := range r.Sections {
		writeSection(&b, section)
	}

	return b.String()
}

func writeSection(b *strings.Builder, s Section) {
	fmt.Fprintf(b, "\nBRANCH: %s\n", s.Branch)
	fmt.Fprintf(b, "%s\n", lightRule)

	if s.PR != nil {
		fmt.Fprintf(b, "PR #%d: %s\n", s.PR.Number, s.PR.Title)
		fmt.Fprintf(b, "Author: %s\n", s.PR.Author)
		fmt.Fprintf(b, "State: %s\n", s.PR.State)
		fmt.Fprintf(b, "URL: %s\n", s.PR.URL)
		body := s.PR.Body
		if body == "" {
			body = NoDescription
		}
		fmt.Fprintf(b, "Description:\n%s\n", body)
	} else {
		fmt.Fprintf(b, "%s\n", NoOpenPR)
	}

	fmt.Fprintf(b, "\nCHANGED FILES (%d):\n", len(s.Diff.ChangedFiles))
	for _, file := range s.Diff.ChangedFiles {
		fmt.Fprintf(b, "  - %s\n", file)
	}

	fmt.Fprintf(b, "\nDIFF:\n%s\n", s.Diff.UnifiedDiff)
	fmt.Fprintf(b, "%s\n", heavyRule)
}
