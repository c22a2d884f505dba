package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleDeferredError(t *testing.T) {
	t.Run("handles deferred errors in return statements", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		testFunc := func() (err error) {
			defer HandleDeferredError(&err, func() error {
				return assert.AnError
			}, logger, "close_export_file")

			return nil
		}

		err := testFunc()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "close_export_file")
		assert.ErrorIs(t, err, assert.AnError)

		output := buf.String()
		assert.Contains(t, output, `"level":"ERROR"`)
		assert.Contains(t, output, `"msg":"deferred operation failed"`)
	})

	t.Run("preserves original error when deferred operation also fails", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewStructuredLogger(&buf, slog.LevelInfo)

		originalError := &originalFailure{}
		testFunc := func() (err error) {
			defer HandleDeferredError(&err, func() error {
				return assert.AnError
			}, logger, "close_export_file")

			return originalError
		}

		err := testFunc()
		assert.Same(t, originalError, err)
		assert.Contains(t, buf.String(), `"msg":"deferred operation failed"`)
	})
}

func TestReplaceLogFatal(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelError)

	result := ReplaceLogFatal(logger, "unable to load config", assert.AnError)

	require.Error(t, result)
	assert.Contains(t, result.Error(), "unable to load config")
	assert.Contains(t, buf.String(), `"msg":"unable to load config"`)
}

type originalFailure struct{}

func (e *originalFailure) Error() string {
	return "original failure"
}
