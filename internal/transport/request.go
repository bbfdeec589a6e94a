package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/agentstation/apiwiki/pkg/errors"
	"github.com/agentstation/apiwiki/pkg/logging"
)

// DecodeResponse decodes a JSON response into the target structure.
func DecodeResponse(ctx context.Context, resp *http.Response, server string, target any) error {
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logging.FromContext(ctx).Warn().Err(err).Str("server", server).Msg("Failed to close response body")
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WrapIO("read", "response body", err)
	}

	if resp.StatusCode != http.StatusOK {
		apiErr := errors.NewAPIError(server, resp.StatusCode, http.StatusText(resp.StatusCode))
		if resp.Request != nil && resp.Request.URL != nil {
			apiErr.Endpoint = resp.Request.URL.String()
		}
		return apiErr
	}

	if err := json.Unmarshal(body, target); err != nil {
		return errors.WrapParse("json", "response", err)
	}

	return nil
}
