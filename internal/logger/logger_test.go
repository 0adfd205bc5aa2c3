package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	Setup("debug", &buf)

	ctx := context.WithValue(context.Background(), UsernameKey, "lead1")
	ctx = context.WithValue(ctx, UserRoleKey, "team_lead")
	ctx = context.WithValue(ctx, RequestIDKey, "req-1")

	WithContext(ctx).WithField("team_id", 3).Info("leader assigned")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "lead1", entry["user"])
	assert.Equal(t, "team_lead", entry["role"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, float64(3), entry["team_id"])
	assert.Equal(t, "leader assigned", entry["msg"])
}

func TestWithContextUnknownUser(t *testing.T) {
	var buf bytes.Buffer
	Setup("info", &buf)

	WithContext(context.Background()).Debug("hidden")
	assert.Empty(t, buf.String())

	WithContext(context.Background()).Warn("visible")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "unknown", entry["user"])
	assert.Equal(t, "warning", entry["level"])
}
