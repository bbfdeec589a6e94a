// Package samples finds the example projects checked out next to the wiki
// and decides which of them belong to a given service version.
package samples

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/agentstation/apiwiki/pkg/constants"
	"github.com/agentstation/apiwiki/pkg/errors"
)

// Discover lists the sample projects under root: directories whose name
// matches constants.SamplePattern and that contain constants.SampleMarkerDir.
// The result is sorted.
func Discover(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.WrapIO("list", root, err)
	}

	var found []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(constants.SamplePattern, entry.Name()); !ok {
			continue
		}
		if _, err := os.Stat(filepath.Join(root, entry.Name(), constants.SampleMarkerDir)); err != nil {
			continue
		}
		found = append(found, entry.Name())
	}

	slices.Sort(found)
	return found, nil
}

// Match returns the samples that belong to name/version, keeping the order
// of samples. A sample belongs to the service when it starts with "<name>-",
// unless it starts with "<name>-<other>-" for another published version,
// in which case it belongs to that version instead.
func Match(name, version string, versions, samples []string) []string {
	prefix := name + "-"

	var others []string
	for _, v := range versions {
		if v != version {
			others = append(others, prefix+v+"-")
		}
	}

	var matched []string
	for _, sample := range samples {
		if !strings.HasPrefix(sample, prefix) {
			continue
		}
		if slices.ContainsFunc(others, func(p string) bool { return strings.HasPrefix(sample, p) }) {
			continue
		}
		matched = append(matched, sample)
	}
	return matched
}
