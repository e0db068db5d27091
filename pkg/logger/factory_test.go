package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assemblyhq/eventkit/pkg/access"
	"github.com/assemblyhq/eventkit/pkg/logger"
	"github.com/assemblyhq/eventkit/pkg/roles"
)

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithOutput(&buf))

	log.Info("hello", logger.EventID("e1"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "hello", record["msg"])
	assert.Equal(t, "e1", record["event_id"])

	buf.Reset()
	log.Debug("hidden")
	assert.Empty(t, buf.Bytes(), "debug is below the default info level")
}

func TestNew_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(logger.WithTextFormatter(), logger.WithOutput(&buf))

	log.Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}

func TestWithFormat_PanicsOnUnknown(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		logger.New(logger.WithFormat("xml"))
	})
}

func TestNew_ContextExtractor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithContextExtractors(access.LoggerExtractor()),
	)

	userID := uuid.New()
	ctx := access.WithIdentity(context.Background(), access.Identity{
		UserID: userID, GlobalRole: access.GlobalMember,
	})
	ctx = access.WithPermission(ctx, &access.Permission{Role: roles.Manager})

	log.InfoContext(ctx, "resolved")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	group, ok := record["access"].(map[string]any)
	require.True(t, ok, "access group attr missing")
	assert.Equal(t, userID.String(), group["user_id"])
	assert.Equal(t, "manager", group["role"])
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	assert.Equal(t, slog.Attr{}, logger.Error(nil))
	assert.Equal(t, "user_id", logger.UserID("u").Key)
	assert.Equal(t, "event_id", logger.EventID("e").Key)
	assert.Equal(t, "role", logger.Role("owner").Key)
}
