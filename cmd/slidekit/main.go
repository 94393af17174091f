// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the slidekit CLI.
// Subcommands: titles, images, prompts, version.
package main

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/slidekit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// log carries diagnostics for every subcommand. Report text goes to
// stdout directly.
var log = logrus.New()

// rootCmd is the base command for the slidekit CLI.
var rootCmd = &cobra.Command{
	Use:   "slidekit",
	Short: "Maintenance tools for a LaTeX/knitr lecture slide collection",
	Long: `slidekit scans the slide-source files of a course (Beamer decks written as
.Rnw files) and produces a CSV index of slide titles, an image usage
report for the managed figures directory, and text prompts for generating
slide illustrations.

Run it from the repository root or point --slides-dir at the slides.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("verbose") {
			log.SetLevel(logrus.DebugLevel)
		}
		if used := viper.ConfigFileUsed(); used != "" {
			log.WithField("file", used).Debug("using config file")
		}
		return nil
	},
}

func init() {
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./slidekit.yaml or ~/.config/slidekit/slidekit.yaml)")
	rootCmd.PersistentFlags().String("slides-dir", types.DefaultSlidesDir, "directory holding the slide-source files")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print per-file details")

	viper.BindPFlag("slides_dir", rootCmd.PersistentFlags().Lookup("slides-dir"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetDefault("extension", types.DefaultExtension)
	viper.SetDefault("figs_prefix", types.DefaultFigsPrefix)
	viper.SetDefault("lecture_scan_lines", types.DefaultLectureScanLines)
	viper.SetDefault("data_dir", types.DefaultDataDir)
	viper.SetDefault("top_n", types.DefaultTopN)
	viper.SetDefault("subject", types.DefaultSubject)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("slidekit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "slidekit"))
		}
	}

	viper.SetEnvPrefix("SLIDEKIT")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || cfgFile != "" {
			log.WithError(err).Warn("could not read config file")
		}
	}
}

// scanConfig builds the settings shared by every subcommand from viper.
func scanConfig() types.ScanConfig {
	return types.ScanConfig{
		SlidesDir:        viper.GetString("slides_dir"),
		Extension:        viper.GetString("extension"),
		FigsPrefix:       viper.GetString("figs_prefix"),
		LectureScanLines: viper.GetInt("lecture_scan_lines"),
	}.WithDefaults()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
