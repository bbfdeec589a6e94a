package wiki

import (
	"os"
	"strings"

	"github.com/agentstation/apiwiki/pkg/constants"
	"github.com/agentstation/apiwiki/pkg/errors"
)

// Splice replaces the text between the BEGIN and END markers of doc with
// body. Everything up to and including the BEGIN marker, and everything from
// the END marker on, is kept byte for byte. The END marker is only looked for
// after the BEGIN marker.
func Splice(doc, body string) (string, error) {
	begin := strings.Index(doc, constants.BeginMarker)
	if begin < 0 {
		return "", errors.NewMarkerError(constants.BeginMarker, "")
	}
	headerEnd := begin + len(constants.BeginMarker)

	end := strings.Index(doc[headerEnd:], constants.EndMarker)
	if end < 0 {
		return "", errors.NewMarkerError(constants.EndMarker, "")
	}
	trailer := doc[headerEnd+end:]

	var sb strings.Builder
	sb.Grow(headerEnd + 1 + len(body) + len(trailer))
	sb.WriteString(doc[:headerEnd])
	sb.WriteByte('\n')
	sb.WriteString(body)
	sb.WriteString(trailer)
	return sb.String(), nil
}

// SpliceFile splices body into the page at path and overwrites it in place.
// The file is not touched when either marker is missing.
func SpliceFile(path, body string) error {
	updated, err := SpliceFileContent(path, body)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(updated), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// SpliceFileContent returns the spliced page at path without writing it.
func SpliceFileContent(path, body string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapIO("read", path, err)
	}

	updated, err := Splice(string(data), body)
	if err != nil {
		var markerErr *errors.MarkerError
		if errors.As(err, &markerErr) {
			markerErr.Path = path
		}
		return "", err
	}
	return updated, nil
}
