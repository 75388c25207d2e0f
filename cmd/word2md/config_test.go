// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/word2md/pkg/types"
)

func TestConfigFrom_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	assert.Equal(t, types.Config{
		Conversion: types.ConversionConfig{OutputDir: "generate_data"},
		History: types.HistoryConfig{
			Enabled: true,
			Dir:     "generate_data",
			Limit:   20,
		},
	}, configFrom(v))
}

func TestConfigFrom_File(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(strings.NewReader(`
output_dir: out
outline: true
history:
  enabled: false
  dir: ledger
  limit: 5
`)))

	assert.Equal(t, types.Config{
		Conversion: types.ConversionConfig{OutputDir: "out", Outline: true},
		History: types.HistoryConfig{
			Enabled: false,
			Dir:     "ledger",
			Limit:   5,
		},
	}, configFrom(v))
}

func TestConfigFrom_HistoryDirFollowsOutputDir(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set(keyOutputDir, "elsewhere")

	cfg := configFrom(v)
	assert.Equal(t, "elsewhere", cfg.History.Dir)
}

func TestConfigFrom_Env(t *testing.T) {
	t.Setenv("WORD2MD_OUTPUT_DIR", "from-env")
	t.Setenv("WORD2MD_HISTORY_ENABLED", "false")

	v := viper.New()
	v.SetEnvPrefix("WORD2MD")
	v.AutomaticEnv()
	setDefaults(v)

	cfg := configFrom(v)
	assert.Equal(t, "from-env", cfg.Conversion.OutputDir)
	assert.False(t, cfg.History.Enabled)
}
