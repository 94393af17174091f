// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the slidekit commands.
// The titles, images and prompts stages each build on Document and ImageRef;
// SlideRecord is the row shape of the CSV export.
package types

// ImageRef is one image embedded by a presentation command, e.g.
// \newSectionSlide{FIGS-slides-admin/virus.png} yields
// {Command: "newSectionSlide", Image: "virus.png"}.
type ImageRef struct {
	// Command is the LaTeX command name without the leading backslash.
	Command string `json:"command" yaml:"command"`

	// Image is the path fragment after the figures prefix.
	Image string `json:"image" yaml:"image"`
}

// Document holds what was extracted from one slide-source file.
type Document struct {
	// Path is the file path as discovered on disk.
	Path string `json:"path" yaml:"path"`

	// Name is the base filename (e.g. "L03-seir.Rnw").
	Name string `json:"name" yaml:"name"`

	// Stem is Name without its extension.
	Stem string `json:"stem" yaml:"stem"`

	// Title is the cleaned \title{} text. Empty when absent.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	// Subtitle is the cleaned \subtitle{} text. Empty when absent.
	Subtitle string `json:"subtitle,omitempty" yaml:"subtitle,omitempty"`

	// LectureNumber is a zero-padded number of at least two digits.
	LectureNumber string `json:"lecture_number" yaml:"lecture_number"`

	// Images lists image references in document order.
	Images []ImageRef `json:"images,omitempty" yaml:"images,omitempty"`
}

// SlideRecord is one row of the slides CSV export.
type SlideRecord struct {
	LectureNumber string `json:"lecture_number" yaml:"lecture_number"`
	PDFFilename   string `json:"pdf_filename" yaml:"pdf_filename"`
	Title         string `json:"title" yaml:"title"`
	Subtitle      string `json:"subtitle" yaml:"subtitle"`
	FullTitle     string `json:"full_title" yaml:"full_title"`
	RnwFilename   string `json:"rnw_filename" yaml:"rnw_filename"`
	Basename      string `json:"basename" yaml:"basename"`
}

// SlideRecordHeader is the fixed CSV header, in column order.
var SlideRecordHeader = []string{
	"lecture_number", "pdf_filename", "title", "subtitle",
	"full_title", "rnw_filename", "basename",
}

// Row returns the record's fields in SlideRecordHeader order.
func (r SlideRecord) Row() []string {
	return []string{
		r.LectureNumber, r.PDFFilename, r.Title, r.Subtitle,
		r.FullTitle, r.RnwFilename, r.Basename,
	}
}

// ImageCategory is the kind of slide an image decorates.
type ImageCategory string

const (
	CategoryTitle      ImageCategory = "title"
	CategoryOutline    ImageCategory = "outline"
	CategorySection    ImageCategory = "section"
	CategorySubsection ImageCategory = "subsection"
)

// Categories lists every ImageCategory in report order.
var Categories = []ImageCategory{
	CategoryTitle, CategoryOutline, CategorySection, CategorySubsection,
}

type categoryInfo struct {
	command string
	label   string
}

var categoryTable = map[ImageCategory]categoryInfo{
	CategoryTitle:      {"titlepagewithfigure", "Title pages"},
	CategoryOutline:    {"outlinepage", "Outline pages"},
	CategorySection:    {"newSectionSlide", "Section slides"},
	CategorySubsection: {"newSubSectionSlide", "Subsection slides"},
}

// Command returns the LaTeX command name that places the category's image.
func (c ImageCategory) Command() string {
	return categoryTable[c].command
}

// Label returns the plural display name, e.g. "Title pages".
func (c ImageCategory) Label() string {
	return categoryTable[c].label
}

// CategoryForCommand returns the category placed by command, if any.
func CategoryForCommand(command string) (ImageCategory, bool) {
	for _, c := range Categories {
		if categoryTable[c].command == command {
			return c, true
		}
	}
	return "", false
}

// CategoryCounts holds the number of image slots per category.
type CategoryCounts map[ImageCategory]int

// Total sums the counts over all categories.
func (c CategoryCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}
