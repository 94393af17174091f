// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/slidekit/internal/prompts"
	"github.com/pdiddy/slidekit/pkg/types"
)

var promptsCmd = &cobra.Command{
	Use:   "prompts",
	Short: "Print image-generation prompts for lecture slides",
	Long: `Prompts reads every lecture file (L*.Rnw), counts the title, outline,
section and subsection images it needs, and prints one prompt per slide
type plus batch prompts covering all lectures. Topic keywords and artistic
styles come from a built-in table that --styles can replace.

Nothing is sent anywhere; paste the prompts into the image tool you use.`,
	RunE: runPrompts,
}

func runPrompts(cmd *cobra.Command, args []string) error {
	stylesFile, _ := cmd.Flags().GetString("styles")
	plain, _ := cmd.Flags().GetBool("plain")

	cfg := types.PromptsConfig{
		ScanConfig: scanConfig(),
		Subject:    viper.GetString("subject"),
		StylesFile: stylesFile,
		Plain:      plain,
	}
	return prompts.Run(cfg, log, os.Stdout)
}

func init() {
	promptsCmd.Flags().String("styles", "", "YAML file replacing the built-in topic/style table")
	promptsCmd.Flags().Bool("plain", false, "omit emoji from headings")
	promptsCmd.Flags().String("subject", types.DefaultSubject, "course subject named in every prompt")

	viper.BindPFlag("subject", promptsCmd.Flags().Lookup("subject"))

	rootCmd.AddCommand(promptsCmd)
}
