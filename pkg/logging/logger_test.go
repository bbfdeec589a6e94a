package logging_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agentstation/apiwiki/pkg/logging"
)

func TestDefaultLogger(t *testing.T) {
	original := *logging.Default()
	defer logging.SetDefault(original)

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	logging.SetDefault(logger)

	logging.Debug().Msg("debug message")
	logging.Info().Msg("info message")
	logging.Warn().Msg("warning message")
	logging.Error().Msg("error message")

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Errorf("Expected info message in output, got: %s", output)
	}
	if !strings.Contains(output, "warning message") {
		t.Errorf("Expected warning message in output, got: %s", output)
	}
}

func TestContextLogger(t *testing.T) {
	testLogger := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), testLogger.Logger)
	ctx = logging.WithService(ctx, "books", "v1")
	ctx = logging.WithOperation(ctx, "codegen_check")

	logging.FromContext(ctx).Info().Msg("test message")

	testLogger.AssertContains(t, `"service":"books"`)
	testLogger.AssertContains(t, `"version":"v1"`)
	testLogger.AssertContains(t, `"operation":"codegen_check"`)
	testLogger.AssertContains(t, "test message")
}

func TestCaptureLoggingForTest(t *testing.T) {
	captured := logging.CaptureLoggingForTest(t)

	logging.Warn().Msg("first retry")
	logging.Warn().Msg("second retry")
	logging.Info().Msg("done")

	if got := captured.CountContaining("retry"); got != 2 {
		t.Errorf("Expected 2 retry lines, got %d\nOutput:\n%s", got, captured.Output())
	}
	if got := len(captured.Lines()); got != 3 {
		t.Errorf("Expected 3 lines, got %d", got)
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewNopLogger()
	logger.Info().Msg("discarded")

	logging.DisableLoggingForTest(t)
	logging.Info().Msg("also discarded")
}
