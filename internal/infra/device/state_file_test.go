package device

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"afrimart/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStateFile(t *testing.T) (*StateFile, string) {
	t.Helper()

	dir := t.TempDir()
	state, err := NewStateFile(&config.Config{Device: &config.DeviceConfig{StateDir: dir}})
	require.NoError(t, err)

	return state, dir
}

func TestStateFile_SurvivesRestart(t *testing.T) {
	state, dir := newTestStateFile(t)
	ctx := context.Background()

	seen, err := state.GetBool(ctx, "location_gate_seen")
	require.NoError(t, err)
	assert.False(t, seen)

	require.NoError(t, state.SetBool(ctx, "location_gate_seen", true))
	require.NoError(t, state.SetString(ctx, PermissionKey, "granted"))

	reopened, err := NewStateFile(&config.Config{Device: &config.DeviceConfig{StateDir: dir}})
	require.NoError(t, err)

	seen, err = reopened.GetBool(ctx, "location_gate_seen")
	require.NoError(t, err)
	assert.True(t, seen)

	permission, err := reopened.GetString(ctx, PermissionKey)
	require.NoError(t, err)
	assert.Equal(t, "granted", permission)
}

func TestStateFile_Delete(t *testing.T) {
	state, _ := newTestStateFile(t)
	ctx := context.Background()

	require.NoError(t, state.SetBool(ctx, "location_gate_seen", true))
	require.NoError(t, state.Delete(ctx, "location_gate_seen"))
	require.NoError(t, state.Delete(ctx, "never_set"))

	seen, err := state.GetBool(ctx, "location_gate_seen")
	require.NoError(t, err)
	assert.False(t, seen)
}

func TestStateFile_Corrupt(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, stateFileName), []byte("{not json"), 0o600))

	state, err := NewStateFile(&config.Config{Device: &config.DeviceConfig{StateDir: dir}})
	require.NoError(t, err)

	_, err = state.GetBool(context.Background(), "location_gate_seen")
	require.Error(t, err)
}
