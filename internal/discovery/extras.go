package discovery

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/apiwiki/pkg/errors"
)

// extrasFile is the YAML layout of services added on top of the directory:
//
//	services:
//	  - name: newapi
//	    version: v1
//	    title: New API
//	    discoveryLink: ./apis/newapi/v1/rest
type extrasFile struct {
	Services []Descriptor `yaml:"services"`
}

// LoadExtras reads additional descriptors from a YAML file.
func LoadExtras(path string) ([]Descriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return ParseExtras(data, path)
}

// ParseExtras parses additional descriptors from YAML. Every entry needs a
// name and a version.
func ParseExtras(data []byte, path string) ([]Descriptor, error) {
	var file extrasFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.WrapParse("yaml", path, err)
	}

	for i, d := range file.Services {
		if d.Name == "" || d.Version == "" {
			return nil, errors.NewValidationError("services", i, "name and version are required")
		}
	}

	return file.Services, nil
}
