// Package codegen talks to the client library generation server: it checks
// that a library can be downloaded for a service and reads the revision and
// library version encoded in the offered file name.
package codegen

import (
	"fmt"
	"mime"
	"regexp"
	"strings"

	"github.com/agentstation/apiwiki/pkg/constants"
	"github.com/agentstation/apiwiki/pkg/errors"
)

// Artifact describes the generated library offered for one service version.
type Artifact struct {
	FileName       string
	Revision       string
	LibraryVersion string
}

// ReleaseVersion is the Maven version of the artifact: <version>-rev<rev>-<libraryVersion>.
func (a *Artifact) ReleaseVersion(version string) string {
	return fmt.Sprintf("%s-rev%s-%s", version, a.Revision, a.LibraryVersion)
}

// artifactPattern matches
// google-api-services-<name>-<version>-rev<digits>-<lang>-<major.minor.patch>-beta.zip
func artifactPattern(name, version, lang string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`^%s%s-%s-rev([0-9]+)-%s-([0-9]+\.[0-9]+\.[0-9]+-beta)\.zip$`,
		regexp.QuoteMeta(constants.ArtifactPrefix),
		regexp.QuoteMeta(name),
		regexp.QuoteMeta(version),
		regexp.QuoteMeta(lang)))
}

// ParseArtifact extracts the revision and library version from fileName.
func ParseArtifact(name, version, lang, fileName string) (*Artifact, error) {
	m := artifactPattern(name, version, lang).FindStringSubmatch(fileName)
	if m == nil {
		return nil, errors.NewParseError("artifact", fileName,
			fmt.Sprintf("file name does not match %s%s-%s-rev<N>-%s-<X.Y.Z>-beta.zip", constants.ArtifactPrefix, name, version, lang), nil)
	}
	return &Artifact{
		FileName:       fileName,
		Revision:       m[1],
		LibraryVersion: m[2],
	}, nil
}

// FileNameFromDisposition returns the filename parameter of a
// Content-Disposition header. Headers that do not parse as a media type fall
// back to the text after the first '='.
func FileNameFromDisposition(header string) (string, error) {
	if header == "" {
		return "", errors.NewParseError("content-disposition", "", "header is missing", nil)
	}

	if _, params, err := mime.ParseMediaType(header); err == nil {
		if name := params["filename"]; name != "" {
			return name, nil
		}
	}

	if _, after, ok := strings.Cut(header, "="); ok {
		if name := strings.Trim(strings.TrimSpace(after), `"`); name != "" {
			return name, nil
		}
	}

	return "", errors.NewParseError("content-disposition", "", fmt.Sprintf("no filename in %q", header), nil)
}
