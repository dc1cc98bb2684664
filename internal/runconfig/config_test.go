package runconfig_test

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticek/incognito/internal/runconfig"
)

func TestLoad_AppliesDefaults(t *testing.T) {
	v := viper.New()
	v.Set("dataset", "adult")
	v.Set("qid", []string{"age", "zip"})

	cfg, err := runconfig.Load(v)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.K)
	assert.Equal(t, "./Data", cfg.DataDir)
	assert.Equal(t, "./Data/hierarchies", cfg.HierarchyDir)
	assert.Equal(t, "?", cfg.NaNSentinel)
	assert.False(t, cfg.DropNaN)
}

func TestLoad_RejectsMissingDataset(t *testing.T) {
	v := viper.New()
	v.Set("qid", []string{"age"})

	_, err := runconfig.Load(v)
	assert.Error(t, err)
}

func TestLoad_RejectsEmptyQuasiIdentifiers(t *testing.T) {
	v := viper.New()
	v.Set("dataset", "adult")

	_, err := runconfig.Load(v)
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidK(t *testing.T) {
	v := viper.New()
	v.Set("dataset", "adult")
	v.Set("qid", []string{"age"})
	v.Set("k", 0)

	_, err := runconfig.Load(v)
	assert.Error(t, err)
}
