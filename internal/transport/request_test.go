package transport

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/apiwiki/pkg/errors"
	"github.com/agentstation/apiwiki/pkg/logging"
)

type failingCloser struct {
	io.Reader
}

func (failingCloser) Close() error { return errors.New("close failed") }

func TestDecodeResponse(t *testing.T) {
	t.Run("close failure goes to the context logger", func(t *testing.T) {
		testLogger := logging.NewTestLogger(t)
		ctx := logging.WithLogger(context.Background(), testLogger.Logger)
		resp := &http.Response{
			StatusCode: http.StatusOK,
			Body:       failingCloser{strings.NewReader(`{"kind":"k"}`)},
		}

		var got payload
		require.NoError(t, DecodeResponse(ctx, resp, "discovery", &got))

		assert.Equal(t, "k", got.Kind)
		testLogger.AssertContains(t, "Failed to close response body")
		testLogger.AssertContains(t, `"server":"discovery"`)
		testLogger.AssertContains(t, `"error":"close failed"`)
	})

	t.Run("status error carries the endpoint", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "http://directory.example.com/apis", nil)
		require.NoError(t, err)
		resp := &http.Response{
			StatusCode: http.StatusNotFound,
			Body:       io.NopCloser(strings.NewReader("")),
			Request:    req,
		}

		err = DecodeResponse(context.Background(), resp, "discovery", &payload{})

		var apiErr *errors.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "http://directory.example.com/apis", apiErr.Endpoint)
		assert.True(t, errors.IsNotFound(err))
	})
}
