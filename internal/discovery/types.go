// Package discovery reads the published API directory and the per-service
// detail documents it links to.
package discovery

// Directory is the list of services published by the directory endpoint.
type Directory struct {
	Kind  string       `json:"kind,omitempty"`
	Items []Descriptor `json:"items"`
}

// Descriptor is the directory-level summary of one service version.
// Identity is (Name, Version).
type Descriptor struct {
	Name          string `json:"name" yaml:"name"`
	Version       string `json:"version" yaml:"version"`
	Title         string `json:"title,omitempty" yaml:"title,omitempty"`
	Preferred     *bool  `json:"preferred,omitempty" yaml:"preferred,omitempty"`
	DiscoveryLink string `json:"discoveryLink,omitempty" yaml:"discoveryLink,omitempty"`
}

// Key returns the "name:version" identity of the descriptor.
func (d Descriptor) Key() string {
	return d.Name + ":" + d.Version
}

// IsPreferred reports whether the directory marks this version as preferred.
// A missing flag counts as preferred.
func (d Descriptor) IsPreferred() bool {
	return d.Preferred == nil || *d.Preferred
}

// SortKey is the title, or the name when the title is empty.
func (d Descriptor) SortKey() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}

// Icons holds the icon URLs of a detail document.
type Icons struct {
	X16 string `json:"x16,omitempty"`
	X32 string `json:"x32,omitempty"`
}

// Detail is the richer per-service document fetched from the descriptor's link.
type Detail struct {
	Name              string `json:"name"`
	Version           string `json:"version"`
	Title             string `json:"title,omitempty"`
	Description       string `json:"description,omitempty"`
	DocumentationLink string `json:"documentationLink,omitempty"`
	Icons             *Icons `json:"icons,omitempty"`
	Preferred         *bool  `json:"preferred,omitempty"`
}

// IsPreferred reports whether the detail marks this version as preferred.
// A missing flag counts as preferred.
func (d *Detail) IsPreferred() bool {
	return d.Preferred == nil || *d.Preferred
}

// DisplayTitle is the title, or the name when the title is empty.
func (d *Detail) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Name
}

// Icon returns the 32px icon URL, or "" when the document has none.
func (d *Detail) Icon() string {
	if d.Icons == nil {
		return ""
	}
	return d.Icons.X32
}
