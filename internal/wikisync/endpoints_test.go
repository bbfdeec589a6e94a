package wikisync

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEndpoints(t *testing.T) {
	e := Endpoints{Samples: "http://samples.example.com/hg/"}.withDefaults()

	assert.Equal(t, DefaultEndpoints().Discovery, e.Discovery)
	assert.Equal(t, "http://samples.example.com/hg/books-sample/instructions.html", e.SampleURL("books-sample"))
	assert.Equal(t, "https://developers.google.com/apis-explorer/#p/books/v1/", e.ExplorerURL("books", "v1"))
	assert.Equal(t, "https://code.google.com/apis/console/?api=books", e.ConsoleURL("books"))
}

func TestPrintSummary(t *testing.T) {
	var sb strings.Builder
	r := &Result{Path: "/tmp/wiki/APIs.wiki"}
	r.PrintSummary(&sb)

	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "\nSuccess! Updated the wiki repository.\n"))
	assert.Contains(t, out, "cd /tmp/wiki && hg diff && cd -\n")
	assert.Contains(t, out, `cd /tmp/wiki && hg pull -u && hg commit -m "update APIs.wiki" && hg push && cd -`)
	assert.Contains(t, out, "cd /tmp/wiki && hg revert --no-backup APIs.wiki && cd -\n")
}
