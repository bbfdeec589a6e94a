package codegen

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/agentstation/apiwiki/internal/transport"
	"github.com/agentstation/apiwiki/pkg/constants"
	"github.com/agentstation/apiwiki/pkg/errors"
	"github.com/agentstation/apiwiki/pkg/logging"
	"github.com/agentstation/apiwiki/pkg/retry"
)

const serverName = "codegen"

// Checker verifies that the generation server offers a library for a
// service version.
type Checker struct {
	transport *transport.Client
	baseURL   string
	language  string
	policy    retry.Policy
}

// Option configures a Checker.
type Option func(*Checker)

// WithLanguage selects the client library flavour (default "java").
func WithLanguage(lang string) Option {
	return func(c *Checker) {
		if lang != "" {
			c.language = lang
		}
	}
}

// WithRetryPolicy replaces the retry policy. Its Retryable hook is always
// restricted to HTTP status errors.
func WithRetryPolicy(p retry.Policy) Option {
	return func(c *Checker) {
		c.policy = p
	}
}

// NewChecker creates a checker against the generation server at baseURL.
func NewChecker(t *transport.Client, baseURL string, opts ...Option) *Checker {
	if t == nil {
		t = transport.New()
	}
	if baseURL == "" {
		baseURL = constants.CodegenURL
	}
	c := &Checker{
		transport: t,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		language:  constants.Language,
		policy: retry.Policy{
			Tries:   constants.CodegenRetryTries,
			Delay:   constants.CodegenRetryDelay,
			Backoff: constants.CodegenRetryBackoff,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.policy.Retryable = errors.IsHTTPError
	return c
}

// Language is the library flavour requested from the server.
func (c *Checker) Language() string {
	return c.language
}

// DownloadURL is where the generated library for name/version is offered.
func (c *Checker) DownloadURL(name, version string) string {
	return fmt.Sprintf("%s/download/library/%s/%s/%s", c.baseURL, name, version, c.language)
}

// DocumentationURL is the generated reference documentation for name/version.
func (c *Checker) DocumentationURL(name, version string) string {
	return fmt.Sprintf("%s/documentation/%s/%s/%s/latest/index.html", c.baseURL, name, version, c.language)
}

// Check issues a HEAD request for the library download, retrying HTTP status
// errors, and parses the offered file name. Network errors are not retried.
func (c *Checker) Check(ctx context.Context, name, version string) (*Artifact, error) {
	url := c.DownloadURL(name, version)
	logger := logging.FromContext(ctx)

	resp, err := retry.Do(ctx, c.policy, func(ctx context.Context) (*http.Response, error) {
		logger.Info().Str("url", url).Msg("Attempting to connect to the codegen server")
		return c.transport.Head(ctx, serverName, url)
	})
	if err != nil {
		return nil, err
	}

	fileName, err := FileNameFromDisposition(resp.Header.Get("Content-Disposition"))
	if err != nil {
		return nil, err
	}

	return ParseArtifact(name, version, c.language, fileName)
}
