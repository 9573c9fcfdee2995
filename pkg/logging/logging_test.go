// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of expgen

package logging

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetupLogging(t *testing.T) {
	defer SetupLogging("info", false)

	SetupLogging("info", false)
	assert.True(t, DefaultSlogLogger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, DefaultSlogLogger.Enabled(context.Background(), slog.LevelDebug))

	SetupLogging("info", true)
	assert.True(t, DefaultSlogLogger.Enabled(context.Background(), slog.LevelDebug))

	SetupLogging("error", false)
	assert.False(t, DefaultSlogLogger.Enabled(context.Background(), slog.LevelInfo))

	// Unparsable levels fall back to info instead of failing.
	SetupLogging("chatty", false)
	assert.True(t, DefaultSlogLogger.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, DefaultSlogLogger.Enabled(context.Background(), slog.LevelDebug))
}
