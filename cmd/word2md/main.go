// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the word2md CLI, which converts Word
// documents to Markdown with an inferred heading hierarchy.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the word2md CLI.
var rootCmd = &cobra.Command{
	Use:   "word2md",
	Short: "Convert Word documents to Markdown",
	Long: `word2md converts .docx documents into Markdown. Headings are inferred
from numbered outline text ("1 Scope", "1.2 Details") rather than Word
styles, embedded images are extracted next to the Markdown, and tables are
rendered as pipe tables.

Each document X.docx produces generate_data/X/output.md and
generate_data/X/Images/.`,
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./word2md.yaml or ~/.config/word2md/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("word2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "word2md"))
		}
	}

	viper.SetEnvPrefix("WORD2MD")
	viper.AutomaticEnv()
	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
