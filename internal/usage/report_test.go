// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package usage

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func sampleReport(t *testing.T) Report {
	t.Helper()
	cfg := setupSlides(t, sampleDecks(), "virus.png", "old.png")
	report, err := Analyze(buildTable(t, cfg), cfg)
	require.NoError(t, err)
	return report
}

func TestWriteText(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Write(&buf, sampleReport(t), FormatText))
	out := buf.String()

	for _, want := range []string{
		"FIGS-SLIDES-ADMIN IMAGE USAGE ANALYSIS",
		"- Total image references: 5",
		"- Unique images used: 3",
		"- Average references per image: 1.7",
		"  3 uses: virus.png\n     L01-intro.Rnw: \\titlepagewithfigure\n",
		"DUPLICATED IMAGES (1 images used multiple times):",
		"3 USES (1 images):\n  virus.png\n    - L01-intro.Rnw: \\newSectionSlide\n    - L01-intro.Rnw: \\titlepagewithfigure\n    - L02-sir.Rnw: \\titlepagewithfigure\n",
		"titlepagewithfigure :   2 uses",
		"L02-sir.Rnw (2 references):",
		"  \\newSubSectionSlide  : cell.png                       [UNIQUE]",
		"[SHARED (3 uses)]",
		"   - Title pages: 1 different images",
		"   - virus.png: section, title",
		"   d) Remove unused images from FIGS-slides-admin directory",
		"5. UNUSED IMAGES (1 files):\n   These images can be removed:\n   - old.png\n",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "L03-empty.Rnw")
	assert.NotContains(t, out, "MOST CRITICAL")
}

func TestWriteTextTruncatesUses(t *testing.T) {
	r := Report{
		Prefix: "FIGS",
		MostUsed: []ImageUsage{{
			Image: "hot.png",
			Occurrences: []Occurrence{
				{"a", "x"}, {"b", "x"}, {"c", "x"}, {"d", "x"}, {"e", "x"}, {"f", "x"}, {"g", "x"},
			},
		}},
		Suggestions: Suggestions{FigsDir: "/nowhere/FIGS"},
	}
	var buf strings.Builder
	WriteAnalysis(&buf, r)
	WriteSuggestions(&buf, r)
	out := buf.String()

	assert.Contains(t, out, "     e: \\x\n     ... and 2 more\n")
	assert.NotContains(t, out, "     f: \\x")
	assert.Contains(t, out, "5. FIGS directory not found at /nowhere/FIGS")
}

func TestWriteStructured(t *testing.T) {
	report := sampleReport(t)

	var js strings.Builder
	require.NoError(t, Write(&js, report, FormatJSON))
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(js.String()), &decoded))
	assert.Equal(t, "FIGS-slides-admin", decoded["prefix"])

	var ys strings.Builder
	require.NoError(t, Write(&ys, report, FormatYAML))
	var back Report
	require.NoError(t, yaml.Unmarshal([]byte(ys.String()), &back))
	assert.Equal(t, report.Summary.TotalReferences, back.Summary.TotalReferences)
	assert.Equal(t, report.Suggestions.Unused, back.Suggestions.Unused)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatText, false},
		{"text", FormatText, false},
		{"yaml", FormatYAML, false},
		{"json", FormatJSON, false},
		{"xml", "", true},
		{"JSON", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			assert.Contains(t, err.Error(), "unsupported format")
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write(&strings.Builder{}, Report{}, Format("xml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}
