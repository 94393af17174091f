// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTitle(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantTitle    string
		wantSubtitle string
	}{
		{
			name:      "plain title",
			content:   `\title{Compartmental models}`,
			wantTitle: "Compartmental models",
		},
		{
			name:      "non-breaking spaces collapse",
			content:   "\\title{SIR\u00a0\u00a0 models}",
			wantTitle: "SIR models",
		},
		{
			name:         "title and subtitle with spacing",
			content:      "\\title  {  The SIR   model }\n\\subtitle{Part\n  two}",
			wantTitle:    "The SIR model",
			wantSubtitle: "Part two",
		},
		{
			name:      "one level of nested braces",
			content:   `\title{Fitting \textbf{SEIR} to \code{data}}`,
			wantTitle: "Fitting SEIR to `data`",
		},
		{
			name:      "hyperlink keeps link text",
			content:   `\title{See \href{https://example.org}{the notes}}`,
			wantTitle: "See the notes",
		},
		{
			name:      "escaped symbols",
			content:   `\title{R\&D: 50\% of \$ spent}`,
			wantTitle: "R&D: 50% of $ spent",
		},
		{
			name:    "no title",
			content: `\begin{document}\end{document}`,
		},
		{
			name:    "empty title counts as absent",
			content: `\title{}`,
		},
		{
			name:         "subtitle is not taken for title",
			content:      `\subtitle{Only a subtitle}`,
			wantSubtitle: "Only a subtitle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, subtitle := ExtractTitle(tt.content)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantSubtitle, subtitle)
		})
	}
}

func TestCleanLaTeX(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{`\emph{Endemic} equilibria`, "Endemic equilibria"},
		{`\url{example.org}`, "example.org"},
		{`\textbf{\emph{nested}}`, "nested"},
		{`Intro \newline to   models`, "Intro to models"},
		{`\footnotesize{small} text`, "small text"},
		{"tabs\tand\nnewlines", "tabs and newlines"},
		{"SIR\u00a0\u00a0 models", "SIR models"},
		{"vertical\vtab and\u2009thin space", "vertical tab and thin space"},
		{"a \\LaTeX\u00a0rules", "a rules"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CleanLaTeX(tt.in), "CleanLaTeX(%q)", tt.in)
	}
}

func TestPromptTitle(t *testing.T) {
	assert.Equal(t, "Stochastic models", PromptTitle(`\title{Stochastic models}`))
	assert.Equal(t, "Spatial  spread", PromptTitle(`\title{Spatial \LaTeX spread}`))
	// The argument stops at the first closing brace.
	assert.Equal(t, "Spatial {x", PromptTitle(`\title{Spatial \emph{x} spread}`))
	assert.Equal(t, "Networks", PromptTitle(`\title{\large Networks}`))
	assert.Equal(t, "", PromptTitle(`no title here`))
}
