package wiki

import (
	"github.com/agentstation/apiwiki/pkg/constants"
)

// Sample is one example project listed under a service.
type Sample struct {
	Name string
	URL  string
}

// Section is everything rendered for one service version.
type Section struct {
	Name              string
	Version           string
	Title             string
	Description       string
	Icon              string
	DownloadURL       string
	JavaDocURL        string
	DocumentationLink string
	ExplorerURL       string
	ConsoleURL        string
	Samples           []Sample

	GroupID        string
	ArtifactID     string
	ReleaseVersion string
}

// Render writes the section to b.
func (s *Section) Render(b *Builder) {
	b.LF().HorizontalRule()
	b.H1(s.Icon + " " + Escape(s.Title))
	b.Line(Bold("Description:") + " " + Escape(s.Description))

	b.LF()
	b.Linef("%s %s %s", constants.DownloadIconURL,
		Link(s.DownloadURL, "Download the latest version of the library"),
		Italic("`[`"+Link(constants.LicenseURL, "Apache License 2.0")+"`]`"))

	b.LF()
	b.Line(Link(s.JavaDocURL, "JavaDoc Reference"))

	if len(s.Samples) > 0 {
		b.LF().Label("Samples")
		for _, sample := range s.Samples {
			b.Bullet(Link(sample.URL, sample.Name))
		}
	}

	s.renderMaven(b)

	b.LF().Label("Reference")
	b.Bullet(Link("DeveloperGuide", "Java client library Developer's Guide"))
	if s.DocumentationLink != "" {
		b.Bullet(Link(s.DocumentationLink, "Documentation for "+s.Title))
	}
	b.Bullet(Link(s.ExplorerURL, "APIs Explorer for "+s.Title))
	b.Bullet(Link(s.ConsoleURL, "APIs Console for "+s.Title))
}

func (s *Section) renderMaven(b *Builder) {
	b.LF().Label("Maven Users").LF()
	b.Linef("Add the following %s and %s sections to your pom.xml file:", Code("<repository>"), Code("<dependency>"))
	b.CodeBlock(
		"<project>",
		"  <repositories>",
		"    ...",
		"    <repository>",
		"      <id>"+constants.MavenRepositoryID+"</id>",
		"      <url>"+constants.MavenRepositoryURL+"</url>",
		"    </repository>",
		"    ...",
		"  </repositories>",
		"  <dependencies>",
		"    ...",
		"    <dependency>",
		"      <groupId>"+s.GroupID+"</groupId>",
		"      <artifactId>"+s.ArtifactID+"</artifactId>",
		"      <version>"+s.ReleaseVersion+"</version>",
		"    </dependency>",
		"    ...",
		"  </dependencies>",
		"</project>",
	)
	b.Line(Italic("NOTE: the latest revision number (rev#) on the server may be slightly higher than what's specified here."))
}

// RenderBody renders every section in order and closes the region with a
// blank line.
func RenderBody(sections []Section) string {
	b := NewBuilder()
	for i := range sections {
		sections[i].Render(b)
	}
	b.LF()
	return b.String()
}
