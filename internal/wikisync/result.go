package wikisync

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/agentstation/apiwiki/pkg/errors"
)

// Result summarises one run.
type Result struct {
	// Path is the wiki page that was (or would have been) rewritten
	Path string

	// Emitted lists "name:version" of every rendered service, in page order
	Emitted []string

	// Skipped explains every service left out of the page
	Skipped []*errors.SkipError

	// Body is the generated region, without the markers
	Body string

	// Document is the full spliced page; only set on dry runs
	Document string

	DryRun bool
}

// PrintSummary writes the success message and the follow-up version control
// commands for the wiki checkout.
func (r *Result) PrintSummary(w io.Writer) {
	repo := filepath.Dir(r.Path)
	file := filepath.Base(r.Path)

	fmt.Fprintln(w, "\nSuccess! Updated the wiki repository.")
	fmt.Fprintln(w, "\nView Diff:")
	fmt.Fprintf(w, "cd %s && hg diff && cd -\n", repo)
	fmt.Fprintln(w, "\nCommit and Push Changes:")
	fmt.Fprintf(w, "cd %s && hg pull -u && hg commit -m \"update %s\" && hg push && cd -\n", repo, file)
	fmt.Fprintln(w, "\nRevert Changes:")
	fmt.Fprintf(w, "cd %s && hg revert --no-backup %s && cd -\n\n", repo, file)
}
