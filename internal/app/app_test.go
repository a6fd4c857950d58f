package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitscribe/internal/common"
)

func createTestConfig(t *testing.T) *common.Config {
	t.Helper()
	cfg := common.NewDefaultConfig()
	cfg.Storage.Badger.Path = t.TempDir()
	return cfg
}

func TestNew_WiresAllComponents(t *testing.T) {
	application, err := New(createTestConfig(t), arbor.NewLogger())
	require.NoError(t, err)
	defer application.Close()

	assert.NotNil(t, application.StorageManager)
	assert.NotNil(t, application.Source)
	assert.NotNil(t, application.GeneratorService)
	assert.NotNil(t, application.RetentionScheduler)
	assert.NotNil(t, application.APIHandler)
	assert.NotNil(t, application.GenerateHandler)
	assert.NotNil(t, application.AnalysisHandler)
	assert.NotNil(t, application.StatusHandler)
}

func TestNew_RetentionDisabled(t *testing.T) {
	cfg := createTestConfig(t)
	cfg.Retention.Enabled = false

	application, err := New(cfg, arbor.NewLogger())
	require.NoError(t, err)
	defer application.Close()

	assert.Nil(t, application.RetentionScheduler)
}

func TestClose_ReleasesResources(t *testing.T) {
	application, err := New(createTestConfig(t), arbor.NewLogger())
	require.NoError(t, err)

	assert.NoError(t, application.Close())
}
