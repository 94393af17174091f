// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/slidekit/pkg/types"
)

const sampleDeck = `<<set-lecture-number, echo=FALSE>>=
lecture_number = "4"
@
\documentclass{beamer}
\title{Vector-borne \emph{diseases}}
\subtitle{Mosquitoes \& ticks}
\begin{document}
\titlepagewithfigure{FIGS-slides-admin/mosquito.png}
\outlinepage{FIGS-slides-admin/map.jpg}
\newSectionSlide{FIGS-slides-admin/mosquito.png}
\includegraphics{FIGS/other.png}
\end{document}
`

func TestFind(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "L02-sir.Rnw", "")
	writeFile(t, dir, "L01-intro.Rnw", "")
	writeFile(t, dir, "notes.txt", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "L99.Rnw"), 0o755))

	got, err := Find(dir, "*.Rnw")
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "L01-intro.Rnw"),
		filepath.Join(dir, "L02-sir.Rnw"),
	}, got)
}

func TestFindMissingDir(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "SLIDES"), "*.Rnw")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDirNotFound))
}

func TestFindBadPattern(t *testing.T) {
	_, err := Find(t.TempDir(), "[")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid pattern")
}

func TestReadText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.Rnw")
	require.NoError(t, os.WriteFile(path, []byte("caf\xe9 \\title{X}"), 0o644))

	_, err := ReadText(path)
	require.Error(t, err)

	got, err := ReadTextLenient(path)
	require.NoError(t, err)
	assert.Equal(t, `caf \title{X}`, got)
}

func TestStem(t *testing.T) {
	assert.Equal(t, "L01-intro", Stem("/x/SLIDES/L01-intro.Rnw"))
	assert.Equal(t, "deck.v2", Stem("deck.v2.Rnw"))
}

func TestParse(t *testing.T) {
	doc := Parse("SLIDES/L09-vectors.Rnw", sampleDeck, types.ScanConfig{})

	assert.Equal(t, "L09-vectors.Rnw", doc.Name)
	assert.Equal(t, "L09-vectors", doc.Stem)
	assert.Equal(t, "Vector-borne diseases", doc.Title)
	assert.Equal(t, "Mosquitoes & ticks", doc.Subtitle)
	assert.Equal(t, "04", doc.LectureNumber, "annotation wins over filename")
	assert.Equal(t, []types.ImageRef{
		{Command: "titlepagewithfigure", Image: "mosquito.png"},
		{Command: "outlinepage", Image: "map.jpg"},
		{Command: "newSectionSlide", Image: "mosquito.png"},
	}, doc.Images)
}

func TestLoadFileLogsReadErrors(t *testing.T) {
	log, hook := test.NewNullLogger()
	path := filepath.Join(t.TempDir(), "L03-missing.Rnw")

	doc, err := LoadFile(path, types.ScanConfig{}, ReadText, log)
	require.Error(t, err)
	assert.Equal(t, "L03-missing", doc.Stem)
	assert.Equal(t, "03", doc.LectureNumber)
	assert.Empty(t, doc.Images)

	require.Len(t, hook.Entries, 1)
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, path, hook.LastEntry().Data["file"])
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}
