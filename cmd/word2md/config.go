// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/pdiddy/word2md/internal/convert"
	"github.com/pdiddy/word2md/pkg/types"
)

const (
	keyOutputDir      = "output_dir"
	keyOutline        = "outline"
	keyHistoryEnabled = "history.enabled"
	keyHistoryDir     = "history.dir"
	keyHistoryLimit   = "history.limit"
)

func setDefaults(v *viper.Viper) {
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetDefault(keyOutputDir, convert.DefaultOutputDir)
	v.SetDefault(keyOutline, false)
	v.SetDefault(keyHistoryEnabled, true)
	v.SetDefault(keyHistoryDir, "")
	v.SetDefault(keyHistoryLimit, 20)
}

// configFrom gathers typed settings from v. The history directory
// defaults to the output directory.
func configFrom(v *viper.Viper) types.Config {
	cfg := types.Config{
		Conversion: types.ConversionConfig{
			OutputDir: v.GetString(keyOutputDir),
			Outline:   v.GetBool(keyOutline),
		},
		History: types.HistoryConfig{
			Enabled: v.GetBool(keyHistoryEnabled),
			Dir:     v.GetString(keyHistoryDir),
			Limit:   v.GetInt(keyHistoryLimit),
		},
	}
	if cfg.Conversion.OutputDir == "" {
		cfg.Conversion.OutputDir = convert.DefaultOutputDir
	}
	if cfg.History.Dir == "" {
		cfg.History.Dir = cfg.Conversion.OutputDir
	}
	return cfg
}
