// Package constants provides shared constants used throughout the apiwiki codebase.
// This includes timeouts, retry settings, file permissions, endpoint defaults and
// the literal markers that delimit the generated region of the wiki page.
package constants

import "time"

// DefaultHTTPTimeout is the standard timeout for HTTP requests to the directory and codegen servers
const DefaultHTTPTimeout = 30 * time.Second

// Retry constants for the generation endpoint existence check
const (
	// CodegenRetryTries is the total number of HEAD attempts against the codegen server
	CodegenRetryTries = 3

	// CodegenRetryDelay is the initial delay between HEAD attempts
	CodegenRetryDelay = 1 * time.Second

	// CodegenRetryBackoff keeps the delay flat between attempts
	CodegenRetryBackoff = 1.0

	// DefaultRetryTries is the default number of attempts for retry.Policy
	DefaultRetryTries = 4

	// DefaultRetryDelay is the default initial delay for retry.Policy
	DefaultRetryDelay = 3 * time.Second

	// DefaultRetryBackoff is the default delay multiplier for retry.Policy
	DefaultRetryBackoff = 2.0
)

// FilePermissions is the permission used when the wiki page is rewritten (rw-r--r--)
const FilePermissions = 0644

// Limit constants define various limits and capacities
const (
	// DefaultConcurrency processes services one at a time
	DefaultConcurrency = 1

	// MaxConcurrency caps the number of services processed concurrently
	MaxConcurrency = 16
)

// Wiki page constants
const (
	// WikiFile is the name of the page regenerated inside the wiki checkout
	WikiFile = "APIs.wiki"

	// BeginMarker opens the generated region of the wiki page
	BeginMarker = "<wiki:comment>@BEGIN_GENERATED@</wiki:comment>"

	// EndMarker closes the generated region of the wiki page
	EndMarker = "<wiki:comment>@END_GENERATED@</wiki:comment>"
)

// Sample checkout constants
const (
	// SamplePattern is the glob a sample directory name must match
	SamplePattern = "*-sample"

	// SampleMarkerDir must be present inside a sample directory
	SampleMarkerDir = "src"
)

// Endpoint defaults
const (
	// DiscoveryURL is the root of the Discovery service
	DiscoveryURL = "https://www.googleapis.com/discovery/v1"

	// CodegenURL is the root of the client library generation server
	CodegenURL = "https://google-api-client-libraries.appspot.com"

	// SamplesURL is the root under which sample instructions are hosted
	SamplesURL = "http://samples.google-api-java-client.googlecode.com/hg"

	// ExplorerURL is the root of the interactive APIs Explorer
	ExplorerURL = "https://developers.google.com/apis-explorer"

	// ConsoleURL is the APIs Console landing page
	ConsoleURL = "https://code.google.com/apis/console/"

	// MavenRepositoryURL hosts the generated service artifacts
	MavenRepositoryURL = "http://google-api-client-libraries.appspot.com/mavenrepo"

	// LicenseURL is the license the generated libraries ship under
	LicenseURL = "http://www.apache.org/licenses/LICENSE-2.0"

	// DownloadIconURL is the arrow shown next to the download link
	DownloadIconURL = "https://developers.google.com/shared/images/arrow-24.png"
)

// Artifact constants
const (
	// Language is the client library flavour requested from the codegen server
	Language = "java"

	// GroupID is the Maven group of every generated service artifact
	GroupID = "com.google.apis"

	// ArtifactPrefix prefixes the service name to form the Maven artifact id
	ArtifactPrefix = "google-api-services-"

	// MavenRepositoryID names the repository entry in the pom fragment
	MavenRepositoryID = "google-api-services"
)

// UserAgent identifies outbound requests
const UserAgent = "apiwiki/1.0"
