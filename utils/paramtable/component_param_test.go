package paramtable

import (
	"os"
	"path"
	"testing"
	"time"

	"github.com/dexopt/utils/config"
	"github.com/stretchr/testify/assert"
)

func TestComponentParamDefaults(t *testing.T) {
	mgr, err := config.Init()
	assert.NoError(t, err)

	params := &ComponentParam{}
	params.Init(mgr)

	assert.Empty(t, params.PolicyCfg.KeepNames.GetAsStrings())
	assert.Equal(t, 0, params.RunnerCfg.Workers.GetAsInt())
	assert.Equal(t, 1024, params.RunnerCfg.QueueCapacity.GetAsInt())
	assert.Equal(t, 60*time.Second, params.RunnerCfg.CheckInterval.GetAsDuration(time.Second))
	assert.Empty(t, params.RunnerCfg.PassArgs.GetAsJSONMap())
}

func TestComponentParamFromFile(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "dexopt.yaml")
	err := os.WriteFile(file, []byte(`
policy:
  keepNames: LMainActivity;, LApplication;
runner:
  workers: 8
  passArgs: '{"inliner.maxDepth": "3"}'
`), 0o600)
	assert.NoError(t, err)

	mgr, err := config.Init(config.WithFilesSource(&config.FileInfo{Files: []string{file}}))
	assert.NoError(t, err)
	defer mgr.Close()

	params := &ComponentParam{}
	params.Init(mgr)

	assert.Equal(t, []string{"LMainActivity;", "LApplication;"}, params.PolicyCfg.KeepNames.GetAsStrings())
	assert.Equal(t, 8, params.RunnerCfg.Workers.GetAsInt())
	assert.Equal(t, map[string]string{"inliner.maxDepth": "3"}, params.RunnerCfg.PassArgs.GetAsJSONMap())
}

func TestParamItemFallbackKeys(t *testing.T) {
	dir := t.TempDir()
	file := path.Join(dir, "dexopt.yaml")
	err := os.WriteFile(file, []byte("policy:\n  keepNames: LKeep;\n"), 0o600)
	assert.NoError(t, err)

	mgr, err := config.Init(config.WithFilesSource(&config.FileInfo{Files: []string{file}}))
	assert.NoError(t, err)
	defer mgr.Close()

	params := &ComponentParam{}
	params.Init(mgr)

	// renameDenyNames is unset and falls back to keepNames.
	assert.Equal(t, []string{"LKeep;"}, params.PolicyCfg.RenameDenyNames.GetAsStrings())
}

func TestParamItemTempValue(t *testing.T) {
	mgr, err := config.Init()
	assert.NoError(t, err)

	params := &ComponentParam{}
	params.Init(mgr)

	params.RunnerCfg.Workers.SetTempValue("3")
	assert.Equal(t, 3, params.RunnerCfg.Workers.GetAsInt())
}
