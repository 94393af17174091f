// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/slidekit/internal/usage"
	"github.com/pdiddy/slidekit/pkg/types"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Report how managed images are used across slide files",
	Long: `Images finds every image command pointing into the managed figures
directory (\command{FIGS-slides-admin/<image>}) and reports the most used
images, duplicates, command counts, a per-file breakdown and optimization
suggestions, including files in the figures directory no slide refers to.`,
	RunE: runImages,
}

func runImages(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("format")
	format, err := usage.ParseFormat(name)
	if err != nil {
		return err
	}
	cfg := types.ImagesConfig{
		ScanConfig: scanConfig(),
		FigsDir:    viper.GetString("figs_dir"),
		TopN:       viper.GetInt("top_n"),
	}

	if format == usage.FormatText {
		fmt.Fprintf(os.Stdout, "Analyzing %s image usage...\n", cfg.FigsPrefix)
	}

	table, err := usage.Build(cfg, log)
	if err != nil {
		return err
	}

	report, err := usage.Analyze(table, cfg)
	if err != nil {
		return err
	}
	if err := usage.Write(os.Stdout, report, format); err != nil {
		return err
	}

	if db, _ := cmd.Flags().GetString("db"); db != "" {
		return writeCatalog(cmd.Context(), db, table.Documents(), os.Stderr)
	}
	return nil
}

func init() {
	imagesCmd.Flags().String("format", string(usage.FormatText), "report format: text, yaml or json")
	imagesCmd.Flags().String("figs-dir", "", "image directory checked for unused files (default: <slides-dir>/<figs_prefix>)")
	imagesCmd.Flags().Int("top", types.DefaultTopN, "number of most used images to list")
	imagesCmd.Flags().String("db", "", "also write the scanned references to this SQLite catalog file")

	viper.BindPFlag("figs_dir", imagesCmd.Flags().Lookup("figs-dir"))
	viper.BindPFlag("top_n", imagesCmd.Flags().Lookup("top"))

	rootCmd.AddCommand(imagesCmd)
}
