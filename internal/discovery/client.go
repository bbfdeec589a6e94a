package discovery

import (
	"context"
	"strings"

	"github.com/agentstation/apiwiki/internal/transport"
	"github.com/agentstation/apiwiki/pkg/constants"
	"github.com/agentstation/apiwiki/pkg/errors"
	"github.com/agentstation/apiwiki/pkg/logging"
)

const serverName = "discovery"

// Client loads the directory and detail documents from a Discovery server.
type Client struct {
	transport *transport.Client
	baseURL   string
}

// NewClient creates a client rooted at baseURL
// (for example https://www.googleapis.com/discovery/v1).
func NewClient(t *transport.Client, baseURL string) *Client {
	if t == nil {
		t = transport.New()
	}
	if baseURL == "" {
		baseURL = constants.DiscoveryURL
	}
	return &Client{
		transport: t,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
	}
}

// DirectoryURL is the location of the directory document.
func (c *Client) DirectoryURL() string {
	return c.baseURL + "/apis"
}

// DetailURL resolves the descriptor's discovery link. Relative links
// ("./apis/books/v1/rest") are resolved against the base URL.
func (c *Client) DetailURL(d Descriptor) string {
	link := d.DiscoveryLink
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return c.baseURL + "/" + strings.TrimPrefix(strings.TrimPrefix(link, "./"), "/")
}

// LoadDirectory fetches and parses the directory. Failures are returned to
// the caller unchanged; the directory is not retried.
func (c *Client) LoadDirectory(ctx context.Context) (*Directory, error) {
	var dir Directory
	if err := c.transport.GetJSON(ctx, serverName, c.DirectoryURL(), &dir); err != nil {
		return nil, errors.WrapResource("load", "directory", c.DirectoryURL(), err)
	}

	logging.FromContext(ctx).Debug().
		Int("services", len(dir.Items)).
		Str("url", c.DirectoryURL()).
		Msg("Loaded API directory")

	return &dir, nil
}

// FetchDetail fetches the detail document for d. Every failure, whatever its
// kind, is logged and reported as nil so the caller can skip the service.
func (c *Client) FetchDetail(ctx context.Context, d Descriptor) *Detail {
	url := c.DetailURL(d)

	var detail Detail
	if err := c.transport.GetJSON(ctx, serverName, url, &detail); err != nil {
		logging.FromContext(ctx).Debug().
			Err(err).
			Str("url", url).
			Msg("Failed to fetch detail document")
		return nil
	}

	return &detail
}
