// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the docpress CLI.
// Implements: prd001-markdown-conversion, prd002-pdf-rendering (CLI surface).
// See docs/ARCHITECTURE § Pipeline Interface, § Project Structure.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docpress/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the docpress CLI.
var rootCmd = &cobra.Command{
	Use:   "docpress",
	Short: "Batch document conversion: office files to Markdown, Markdown to PDF",
	Long: `docpress converts documents in bulk. The markdown subcommand turns
word-processor documents into GitHub-flavored Markdown through pandoc; the
pdf subcommand renders Markdown trees to print-quality PDFs through a
headless browser.

Both subcommands process whole directories, keep going when individual
files fail, and finish with a per-run summary.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./docpress.yaml or ~/.config/docpress/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("docpress")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "docpress"))
		}
	}

	viper.SetEnvPrefix("DOCPRESS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	defaults := types.DefaultConfig()
	viper.SetDefault("markdown.dir", defaults.Markdown.InputDir)
	viper.SetDefault("markdown.extensions", defaults.Markdown.Extensions)
	viper.SetDefault("pdf.input_root", defaults.PDF.InputRoot)
	viper.SetDefault("pdf.output_dir", defaults.PDF.OutputDir)
	viper.SetDefault("pdf.theme", defaults.PDF.Theme)
	viper.SetDefault("pdf.themes_dir", defaults.PDF.ThemesDir)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setting returns the flag value when it was set on the command line, and
// the viper value (environment, config file, or built-in default) otherwise.
func setting(cmd *cobra.Command, flag, key string) string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetString(flag)
		return v
	}
	return viper.GetString(key)
}

// settingSlice is setting for repeatable string flags.
func settingSlice(cmd *cobra.Command, flag, key string) []string {
	if cmd.Flags().Changed(flag) {
		v, _ := cmd.Flags().GetStringSlice(flag)
		return v
	}
	return viper.GetStringSlice(key)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
