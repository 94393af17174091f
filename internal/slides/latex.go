// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

import (
	"regexp"
	"strings"
)

// space matches Unicode whitespace, including the non-breaking space and
// vertical tab that \s leaves out.
const space = `[\s\v\p{Z}\x{85}]`

// Title and subtitle arguments may contain one level of nested braces,
// e.g. \title{Models of \emph{SIR} type}.
var (
	titlePattern    = regexp.MustCompile(`\\title` + space + `*\{([^{}]*(?:\{[^{}]*\}[^{}]*)*)\}`)
	subtitlePattern = regexp.MustCompile(`\\subtitle` + space + `*\{([^{}]*(?:\{[^{}]*\}[^{}]*)*)\}`)
)

// Replacements applied by CleanLaTeX, in order.
var cleanSteps = []struct {
	re   *regexp.Regexp
	repl string
}{
	{regexp.MustCompile(`\\code\{([^}]+)\}`), "`${1}`"},
	{regexp.MustCompile(`\\textbf\{([^}]+)\}`), "${1}"},
	{regexp.MustCompile(`\\emph\{([^}]+)\}`), "${1}"},
	{regexp.MustCompile(`\\url\{([^}]+)\}`), "${1}"},
	{regexp.MustCompile(`\\href\{[^}]+\}\{([^}]+)\}`), "${1}"},
	{regexp.MustCompile(`\\[a-zA-Z]+\{([^}]+)\}`), "${1}"},
	{regexp.MustCompile(`\\[a-zA-Z]+` + space + `*`), ""},
}

var (
	latexEscapes = strings.NewReplacer(`\&`, "&", `\%`, "%", `\$`, "$")
	whitespace   = regexp.MustCompile(space + `+`)

	commandWithArg = regexp.MustCompile(`\\[a-zA-Z]+\{[^}]*\}`)
	bareCommand    = regexp.MustCompile(`\\[a-zA-Z]+`)
)

// ExtractTitle returns the cleaned \title{} and \subtitle{} arguments of a
// document. A missing or empty annotation yields "".
func ExtractTitle(content string) (title, subtitle string) {
	if m := titlePattern.FindStringSubmatch(content); m != nil {
		title = CleanLaTeX(strings.TrimSpace(m[1]))
	}
	if m := subtitlePattern.FindStringSubmatch(content); m != nil {
		subtitle = CleanLaTeX(strings.TrimSpace(m[1]))
	}
	return title, subtitle
}

// CleanLaTeX converts a LaTeX fragment to plain text. \code{x} becomes
// `x`; formatting and link commands are unwrapped to their text; other
// commands are dropped; \& \% \$ are unescaped and whitespace is collapsed.
func CleanLaTeX(text string) string {
	if text == "" {
		return text
	}
	for _, step := range cleanSteps {
		text = step.re.ReplaceAllString(text, step.repl)
	}
	text = latexEscapes.Replace(text)
	text = whitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// StripCommands removes LaTeX commands together with their arguments.
// Prompt titles use it so that only the plain words remain.
func StripCommands(text string) string {
	text = commandWithArg.ReplaceAllString(text, "")
	text = bareCommand.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// PromptTitle returns the \title{} text of a document cleaned with
// StripCommands, or "" when the document has no simple title.
func PromptTitle(content string) string {
	m := promptTitlePattern.FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return StripCommands(m[1])
}

var promptTitlePattern = regexp.MustCompile(`\\title\{([^}]+)\}`)
