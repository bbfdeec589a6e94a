package wikisync

import (
	"fmt"
	"strings"

	"github.com/agentstation/apiwiki/pkg/constants"
)

// Endpoints are the remote locations a run reads from or links to.
type Endpoints struct {
	Discovery string `json:"discovery" yaml:"discovery"`
	Codegen   string `json:"codegen" yaml:"codegen"`
	Samples   string `json:"samples" yaml:"samples"`
	Explorer  string `json:"explorer" yaml:"explorer"`
	Console   string `json:"console" yaml:"console"`
}

// DefaultEndpoints returns the public production endpoints.
func DefaultEndpoints() Endpoints {
	return Endpoints{
		Discovery: constants.DiscoveryURL,
		Codegen:   constants.CodegenURL,
		Samples:   constants.SamplesURL,
		Explorer:  constants.ExplorerURL,
		Console:   constants.ConsoleURL,
	}
}

// withDefaults fills every empty endpoint from DefaultEndpoints.
func (e Endpoints) withDefaults() Endpoints {
	d := DefaultEndpoints()
	if e.Discovery == "" {
		e.Discovery = d.Discovery
	}
	if e.Codegen == "" {
		e.Codegen = d.Codegen
	}
	if e.Samples == "" {
		e.Samples = d.Samples
	}
	if e.Explorer == "" {
		e.Explorer = d.Explorer
	}
	if e.Console == "" {
		e.Console = d.Console
	}
	return e
}

// SampleURL links the instructions page of a sample project.
func (e Endpoints) SampleURL(sample string) string {
	return fmt.Sprintf("%s/%s/instructions.html", strings.TrimSuffix(e.Samples, "/"), sample)
}

// ExplorerURL opens the APIs Explorer on name/version.
func (e Endpoints) ExplorerURL(name, version string) string {
	return fmt.Sprintf("%s/#p/%s/%s/", strings.TrimSuffix(e.Explorer, "/"), name, version)
}

// ConsoleURL opens the APIs Console on name.
func (e Endpoints) ConsoleURL(name string) string {
	return e.Console + "?api=" + name
}
