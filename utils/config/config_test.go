package config

import (
	"os"
	"path"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestInitEmpty(t *testing.T) {
	mgr, err := Init()
	assert.NoError(t, err)

	_, err = mgr.GetConfig("optimizer.workers")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "dexopt.yaml")
	err := os.WriteFile(file, []byte(`
optimizer:
  workers: 4
policy:
  keepNames: LMainActivity;,LApplication;
`), 0o600)
	assert.NoError(t, err)

	mgr, err := Init(WithFilesSource(&FileInfo{Files: []string{file}}))
	assert.NoError(t, err)
	defer mgr.Close()

	v, err := mgr.GetConfig("optimizer.workers")
	assert.NoError(t, err)
	assert.Equal(t, "4", v)

	// Lookup is insensitive to case and separator style.
	v, err = mgr.GetConfig("policy.keepnames")
	assert.NoError(t, err)
	assert.Equal(t, "LMainActivity;,LApplication;", v)

	_, err = mgr.GetConfig("optimizer.unknown")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestFileSourceMissingFileSkipped(t *testing.T) {
	mgr, err := Init(WithFilesSource(&FileInfo{Files: []string{"/nonexistent/dexopt.yaml"}}))
	assert.NoError(t, err)
	defer mgr.Close()

	_, err = mgr.GetConfig("optimizer.workers")
	assert.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestEnvSourceOverridesFile(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "dexopt.yaml")
	err := os.WriteFile(file, []byte("optimizer:\n  workers: 4\n"), 0o600)
	assert.NoError(t, err)

	t.Setenv("OPTIMIZER_WORKERS", "16")

	mgr, err := Init(
		WithFilesSource(&FileInfo{Files: []string{file}}),
		WithEnvSource(formatKey),
	)
	assert.NoError(t, err)
	defer mgr.Close()

	// Env carries NormalPriority, file only LowPriority.
	v, err := mgr.GetConfig("optimizer.workers")
	assert.NoError(t, err)
	assert.Equal(t, "16", v)
}

func TestPopulateEvents(t *testing.T) {
	current := map[string]string{"a": "1", "b": "2"}
	updated := map[string]string{"a": "1", "b": "3", "c": "4"}

	events, err := PopulateEvents("test", current, updated)
	assert.NoError(t, err)
	assert.Len(t, events, 2)

	byKey := make(map[string]*Event)
	for _, e := range events {
		byKey[e.Key] = e
	}
	assert.Equal(t, UpdateType, byKey["b"].EventType)
	assert.Equal(t, CreateType, byKey["c"].EventType)
}
