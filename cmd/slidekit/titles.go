// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/slidekit/internal/titles"
	"github.com/pdiddy/slidekit/pkg/types"
)

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Export slide titles to a CSV file",
	Long: `Titles reads every slide-source file in the slides directory, extracts
the \title and \subtitle, resolves the lecture number and writes one CSV row
per file to <data-dir>/<output>.

The lecture number comes from a lecture_number = "NN" line near the top of
the file, then from an L<digits> pattern in the filename, else "00".`,
	RunE: runTitles,
}

func runTitles(cmd *cobra.Command, args []string) error {
	cfg := types.TitlesConfig{
		ScanConfig: scanConfig(),
		DataDir:    viper.GetString("data_dir"),
		Output:     viper.GetString("output"),
	}

	result, err := titles.Run(cfg, log, os.Stdout)
	if err != nil {
		return err
	}

	if db, _ := cmd.Flags().GetString("db"); db != "" && len(result.Documents) > 0 {
		return writeCatalog(cmd.Context(), db, result.Documents, os.Stdout)
	}
	return nil
}

func init() {
	titlesCmd.Flags().StringP("output", "o", types.DefaultTitlesOutput, "CSV filename inside the data directory")
	titlesCmd.Flags().String("data-dir", types.DefaultDataDir, "directory the CSV is written into")
	titlesCmd.Flags().String("db", "", "also write documents to this SQLite catalog file")

	viper.BindPFlag("output", titlesCmd.Flags().Lookup("output"))
	viper.BindPFlag("data_dir", titlesCmd.Flags().Lookup("data-dir"))

	rootCmd.AddCommand(titlesCmd)
}
