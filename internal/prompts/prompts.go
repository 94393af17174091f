// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package prompts turns lecture titles and slide-image needs into
// free-text prompts for an image generator. Prompts are only printed; no
// service is called.
package prompts

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/slidekit/internal/slides"
	"github.com/pdiddy/slidekit/pkg/types"
)

// unknownTopic stands in for lectures without a \title{}.
const unknownTopic = "Unknown Topic"

// maxStyles caps the artistic styles suggested in one prompt.
const maxStyles = 3

// Lecture holds the title and image needs of one lecture file.
type Lecture struct {
	// ID is the filename stem, e.g. "L03-seir".
	ID     string
	Title  string
	Images types.CategoryCounts
}

// Collect reads every lecture file matching cfg.FilePattern and returns
// the lectures sorted by ID, so L1 comes before L1-b. Files that cannot be
// read are logged and left out.
func Collect(cfg types.PromptsConfig, log logrus.FieldLogger) ([]Lecture, error) {
	scan := cfg.ScanConfig.WithDefaults()
	pattern := cfg.FilePattern
	if pattern == "" {
		pattern = "L*" + scan.Extension
	}

	paths, err := slides.Find(scan.SlidesDir, pattern)
	if err != nil {
		return nil, err
	}

	matcher := slides.NewImageMatcher(scan.FigsPrefix)
	var lectures []Lecture
	for _, path := range paths {
		content, err := slides.ReadText(path)
		if err != nil {
			log.WithError(err).WithField("file", path).Error("error processing lecture")
			continue
		}
		title := slides.PromptTitle(content)
		if title == "" {
			title = unknownTopic
		}
		lectures = append(lectures, Lecture{
			ID:     slides.Stem(path),
			Title:  title,
			Images: matcher.CategoryCounts(content),
		})
	}
	sort.SliceStable(lectures, func(i, j int) bool { return lectures[i].ID < lectures[j].ID })
	return lectures, nil
}

// categoryPrompt holds the wording used for one image category. Only
// title pages ask for room for a text overlay.
type categoryPrompt struct {
	slide        string
	heading      string
	emoji        string
	batchSlide   string
	batchHeading string
	batchTraits  []string
	symbols      bool
	layout       bool
}

var categoryPrompts = map[types.ImageCategory]categoryPrompt{
	types.CategoryTitle: {
		slide: "title page", heading: "TITLE PAGE PROMPT", emoji: "🎨",
		batchSlide: "title page", batchHeading: "ALL TITLE PAGES",
		batchTraits: []string{
			"Feature cartoon-style viruses, bacteria, and parasites",
			"Professional but engaging style",
			"Space for title text overlay",
			"Artistic styles: van Gogh, Monet, Picasso, Matisse variations",
		},
		symbols: true, layout: true,
	},
	types.CategoryOutline: {
		slide: "outline page", heading: "OUTLINE PAGE PROMPT", emoji: "📋",
		batchSlide: "outline page", batchHeading: "ALL OUTLINE PAGES",
		batchTraits: []string{
			"Feature organized/structured microorganisms",
			"Clean, minimal style for text readability",
			"Artistic styles: Mondrian, Kandinsky, Klee variations",
		},
	},
	types.CategorySection: {
		slide: "section", heading: "SECTION SLIDE PROMPT", emoji: "📑",
		batchSlide: "section slide", batchHeading: "ALL SECTION SLIDES",
		batchTraits: []string{
			"Dynamic microorganisms showing activity/interaction",
			"Bold, eye-catching style",
			"Artistic styles: Pollock, Warhol, Basquiat, Bacon variations",
		},
		symbols: true,
	},
	types.CategorySubsection: {
		slide: "subsection", heading: "SUBSECTION SLIDE PROMPT", emoji: "📄",
		batchSlide: "subsection slide", batchHeading: "ALL SUBSECTION SLIDES",
		batchTraits: []string{
			"Detailed microorganism close-ups or specific scenarios",
			"Subtle, complementary style",
			"Artistic styles: Dalí, Magritte, O'Keeffe, Rousseau variations",
		},
	},
}

var funcs = template.FuncMap{"join": strings.Join}

var lecturePromptTmpl = template.Must(template.New("lecture").Funcs(funcs).Parse(
	`Create {{.Count}} landscape-oriented image{{if gt .Count 1}}s{{end}} for {{.Slide}} slide{{if gt .Count 1}}s{{end}} about "{{.Title}}" in {{.Subject}}.

Requirements:
- Landscape orientation (wider than tall)
- Include viruses, bacteria, and/or parasites as main visual elements
- Make them visually engaging and slightly humorous/whimsical
- Suitable for academic presentations
- Topic context: {{join .Keywords ", "}}

Artistic style suggestions: {{join .Styles ", "}}

Visual elements to include:
- Cartoon-style or stylized microorganisms
{{- if .Symbols}}
- Mathematical symbols, equations, or graphs
{{- end}}
{{- if .Layout}}
- Clean, organized layout for text overlay
{{- end}}
- Vibrant but professional colors

Please create {{if gt .Count 1}}these images{{else}}this image{{end}} with variety in composition and style.`))

var batchPromptTmpl = template.Must(template.New("batch").Parse(
	`Create {{.Slide}} images for {{.Subject}} lectures. All images should be:
- Landscape orientation
{{- range .Traits}}
- {{.}}
{{- end}}

Topics and quantities needed:
{{- range .Topics}}
  • {{.}}
{{- end}}`))

// Generator renders prompts for lectures.
type Generator struct {
	Styles  *StyleTable
	Subject string
	// Plain drops emoji markers from headings.
	Plain bool
}

// NewGenerator returns a Generator using table, or the built-in table
// when table is nil.
func NewGenerator(table *StyleTable, subject string, plain bool) *Generator {
	if table == nil {
		table = DefaultStyleTable()
	}
	if subject == "" {
		subject = types.DefaultSubject
	}
	return &Generator{Styles: table, Subject: subject, Plain: plain}
}

// Prompt renders the prompt asking for count images of category c for
// lecture l.
func (g *Generator) Prompt(l Lecture, c types.ImageCategory, count int) (string, error) {
	cp, ok := categoryPrompts[c]
	if !ok {
		return "", fmt.Errorf("unknown image category %q", c)
	}
	keywords, styles := g.Styles.Lookup(l.Title)
	if len(styles) > maxStyles {
		styles = styles[:maxStyles]
	}

	var buf bytes.Buffer
	err := lecturePromptTmpl.Execute(&buf, struct {
		Count            int
		Slide            string
		Title            string
		Subject          string
		Keywords, Styles []string
		Symbols, Layout  bool
	}{count, cp.slide, l.Title, g.Subject, keywords, styles, cp.symbols, cp.layout})
	if err != nil {
		return "", fmt.Errorf("rendering %s prompt: %w", c, err)
	}
	return buf.String(), nil
}

// BatchPrompt renders one prompt covering category c for every lecture
// that needs such images. ok is false when no lecture does.
func (g *Generator) BatchPrompt(lectures []Lecture, c types.ImageCategory) (prompt string, ok bool, err error) {
	cp, known := categoryPrompts[c]
	if !known {
		return "", false, fmt.Errorf("unknown image category %q", c)
	}

	var topics []string
	for _, l := range lectures {
		if n := l.Images[c]; n > 0 {
			topics = append(topics, fmt.Sprintf("%s (%d images)", l.Title, n))
		}
	}
	if len(topics) == 0 {
		return "", false, nil
	}

	var buf bytes.Buffer
	err = batchPromptTmpl.Execute(&buf, struct {
		Slide, Subject string
		Traits, Topics []string
	}{cp.batchSlide, g.Subject, cp.batchTraits, topics})
	if err != nil {
		return "", false, fmt.Errorf("rendering %s batch prompt: %w", c, err)
	}
	return buf.String(), true, nil
}

func (g *Generator) heading(c types.ImageCategory, text string) string {
	if g.Plain {
		return text
	}
	return categoryPrompts[c].emoji + " " + text
}

// WriteLectures prints the summary followed by the prompts of every lecture.
func (g *Generator) WriteLectures(w io.Writer, lectures []Lecture) error {
	total := 0
	for _, l := range lectures {
		total += l.Images.Total()
	}
	var avg float64
	if len(lectures) > 0 {
		avg = float64(total) / float64(len(lectures))
	}

	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "Generating image prompts for %s slide images...\n", g.Subject)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "\nSUMMARY:\n")
	fmt.Fprintf(w, "- %d lectures found\n", len(lectures))
	fmt.Fprintf(w, "- %d total images needed\n", total)
	fmt.Fprintf(w, "- Average %.1f images per lecture\n", avg)
	fmt.Fprintf(w, "\nDETAILED PROMPTS BY LECTURE:\n")
	fmt.Fprintln(w, rule)

	for _, l := range lectures {
		fmt.Fprintf(w, "\n%s: %s\n", strings.ToUpper(l.ID), l.Title)
		fmt.Fprintln(w, strings.Repeat("-", 60))
		fmt.Fprintf(w, "Images needed: %d total\n", l.Images.Total())
		for _, c := range types.Categories {
			fmt.Fprintf(w, "  - %s: %d\n", c.Label(), l.Images[c])
		}
		fmt.Fprintln(w)

		for _, c := range types.Categories {
			n := l.Images[c]
			if n == 0 {
				continue
			}
			prompt, err := g.Prompt(l, c, n)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%s:\n%s\n\n", g.heading(c, categoryPrompts[c].heading), prompt)
		}
		fmt.Fprintln(w, strings.Repeat("=", 60))
	}
	return nil
}

// WriteBatch prints one combined prompt per image category.
func (g *Generator) WriteBatch(w io.Writer, lectures []Lecture) error {
	rule := strings.Repeat("=", 80)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "BATCH PROMPTS FOR EFFICIENT GENERATION")
	fmt.Fprintln(w, rule)

	for _, c := range types.Categories {
		prompt, ok, err := g.BatchPrompt(lectures, c)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		heading := g.heading(c, "BATCH PROMPT FOR "+categoryPrompts[c].batchHeading)
		fmt.Fprintf(w, "\n%s:\n%s\n", heading, prompt)
	}
	return nil
}

// Run collects the lectures in cfg.SlidesDir and prints the per-lecture
// and batch prompts to w.
func Run(cfg types.PromptsConfig, log logrus.FieldLogger, w io.Writer) error {
	var table *StyleTable
	if cfg.StylesFile != "" {
		t, err := LoadStyleTable(cfg.StylesFile)
		if err != nil {
			return err
		}
		table = t
		log.WithField("file", filepath.Clean(cfg.StylesFile)).Debug("loaded style table")
	}

	lectures, err := Collect(cfg, log)
	if err != nil {
		return err
	}

	g := NewGenerator(table, cfg.Subject, cfg.Plain)
	if err := g.WriteLectures(w, lectures); err != nil {
		return err
	}
	return g.WriteBatch(w, lectures)
}
