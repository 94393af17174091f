// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package titles

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/slidekit/internal/slides"
	"github.com/pdiddy/slidekit/pkg/types"
)

func testConfig(t *testing.T) (types.TitlesConfig, string) {
	t.Helper()
	root := t.TempDir()
	slidesDir := filepath.Join(root, "SLIDES")
	require.NoError(t, os.MkdirAll(slidesDir, 0o755))
	return types.TitlesConfig{
		ScanConfig: types.ScanConfig{SlidesDir: slidesDir},
		DataDir:    filepath.Join(root, "_data"),
	}, slidesDir
}

func writeDeck(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRun(t *testing.T) {
	cfg, dir := testConfig(t)
	writeDeck(t, dir, "L02-sir.Rnw", "lecture_number = \"2\"\n\\title{The \\emph{SIR} model}\n\\subtitle{Basics}\n")
	writeDeck(t, dir, "L10-networks.Rnw", "\\title{Contact networks}\n")
	writeDeck(t, dir, "course_overview.Rnw", "no title\n")
	writeDeck(t, dir, "README.md", "\\title{ignored}")

	log, _ := test.NewNullLogger()
	var out strings.Builder
	result, err := Run(cfg, log, &out)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cfg.DataDir, types.DefaultTitlesOutput), result.OutputPath)
	require.Len(t, result.Records, 3, "one row per document found")

	rows := readCSV(t, result.OutputPath)
	require.Len(t, rows, 4)
	assert.Equal(t, types.SlideRecordHeader, rows[0])
	assert.Equal(t, []string{"02", "L02-sir.pdf", "The SIR model", "Basics", "The SIR model: Basics", "L02-sir.Rnw", "L02-sir"}, rows[1])
	assert.Equal(t, []string{"10", "L10-networks.pdf", "Contact networks", "", "Contact networks", "L10-networks.Rnw", "L10-networks"}, rows[2])
	assert.Equal(t, []string{"00", "course_overview.pdf", "", "", "Course Overview", "course_overview.Rnw", "course_overview"}, rows[3])

	text := out.String()
	assert.Contains(t, text, "Found 3 Rnw files")
	assert.Contains(t, text, "Processing: L02-sir.Rnw")
	assert.Contains(t, text, "  Subtitle: Basics")
	assert.Contains(t, text, "Total slides processed: 3")
}

func TestRunUsesCRLF(t *testing.T) {
	cfg, dir := testConfig(t)
	cfg.Output = "custom.csv"
	writeDeck(t, dir, "L01.Rnw", "\\title{Intro}")

	log, _ := test.NewNullLogger()
	result, err := Run(cfg, log, &strings.Builder{})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(cfg.DataDir, "custom.csv"))
	require.NoError(t, err)
	assert.Equal(t, result.OutputPath, filepath.Join(cfg.DataDir, "custom.csv"))
	assert.Equal(t,
		"lecture_number,pdf_filename,title,subtitle,full_title,rnw_filename,basename\r\n"+
			"01,L01.pdf,Intro,,Intro,L01.Rnw,L01\r\n",
		string(data))
}

func TestRunEmptyDirectory(t *testing.T) {
	cfg, _ := testConfig(t)
	log, _ := test.NewNullLogger()
	var out strings.Builder

	result, err := Run(cfg, log, &out)
	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Contains(t, out.String(), "No Rnw files found")

	_, statErr := os.Stat(filepath.Join(cfg.DataDir, types.DefaultTitlesOutput))
	assert.True(t, os.IsNotExist(statErr), "no CSV for an empty directory")
}

func TestRunMissingDirectory(t *testing.T) {
	cfg := types.TitlesConfig{
		ScanConfig: types.ScanConfig{SlidesDir: filepath.Join(t.TempDir(), "nope")},
	}
	log, _ := test.NewNullLogger()

	_, err := Run(cfg, log, &strings.Builder{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, slides.ErrDirNotFound))
}

func TestRunKeepsUnreadableFiles(t *testing.T) {
	cfg, dir := testConfig(t)
	writeDeck(t, dir, "L04-ok.Rnw", "\\title{Fine}")
	bad := filepath.Join(dir, "L05-locked.Rnw")
	require.NoError(t, os.WriteFile(bad, []byte("\\title{Hidden}"), 0o000))
	t.Cleanup(func() { os.Chmod(bad, 0o644) })
	if _, err := os.ReadFile(bad); err == nil {
		t.Skip("running with permissions that ignore file modes")
	}

	log, hook := test.NewNullLogger()
	result, err := Run(cfg, log, &strings.Builder{})
	require.NoError(t, err)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "05", result.Records[1].LectureNumber)
	assert.Equal(t, "", result.Records[1].Title)
	assert.Equal(t, "L05 Locked", result.Records[1].FullTitle)
	require.Len(t, hook.Entries, 1)
}

func TestFullTitle(t *testing.T) {
	tests := []struct {
		name string
		doc  types.Document
		want string
	}{
		{"title and subtitle", types.Document{Title: "A", Subtitle: "B", Stem: "x"}, "A: B"},
		{"title only", types.Document{Title: "A", Stem: "x"}, "A"},
		{"subtitle alone falls back to stem", types.Document{Subtitle: "B", Stem: "age-structured_models"}, "Age Structured Models"},
		{"stem is lower-cased after the first letter", types.Document{Stem: "SPATIAL-spread"}, "Spatial Spread"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FullTitle(tt.doc))
		})
	}
}
