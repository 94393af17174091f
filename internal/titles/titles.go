// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package titles exports one CSV row per slide-source file with its
// lecture number, PDF filename and cleaned title.
package titles

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/slidekit/internal/slides"
	"github.com/pdiddy/slidekit/pkg/types"
)

// Result holds what a titles run produced.
type Result struct {
	Documents  []types.Document
	Records    []types.SlideRecord
	OutputPath string
}

// Run scans cfg.SlidesDir for slide sources, prints progress to w and
// writes the CSV to cfg.DataDir/cfg.Output. A missing slides directory is
// an error; an empty one prints a notice and writes nothing.
func Run(cfg types.TitlesConfig, log logrus.FieldLogger, w io.Writer) (Result, error) {
	cfg.ScanConfig = cfg.ScanConfig.WithDefaults()
	if cfg.DataDir == "" {
		cfg.DataDir = types.DefaultDataDir
	}
	if cfg.Output == "" {
		cfg.Output = types.DefaultTitlesOutput
	}
	kind := strings.TrimPrefix(cfg.Extension, ".")

	fmt.Fprintf(w, "Scanning for %s files in: %s\n", kind, cfg.SlidesDir)

	paths, err := slides.Find(cfg.SlidesDir, "*"+cfg.Extension)
	if err != nil {
		return Result{}, err
	}
	if len(paths) == 0 {
		fmt.Fprintf(w, "No %s files found in %s\n", kind, cfg.SlidesDir)
		return Result{}, nil
	}

	fmt.Fprintf(w, "Found %d %s files\n", len(paths), kind)

	var result Result
	for _, path := range paths {
		fmt.Fprintf(w, "Processing: %s\n", filepath.Base(path))

		// Read failures are logged by LoadFile; the row is still written
		// from the filename alone.
		doc, _ := slides.LoadFile(path, cfg.ScanConfig, slides.ReadTextLenient, log)
		rec := Record(doc)

		log.WithFields(logrus.Fields{
			"file":           doc.Name,
			"lecture_number": rec.LectureNumber,
			"images":         len(doc.Images),
		}).Debug("parsed document")

		if doc.Title != "" {
			fmt.Fprintf(w, "  Title: %s\n", doc.Title)
		} else {
			fmt.Fprintf(w, "  Title: (none)\n")
		}
		if doc.Subtitle != "" {
			fmt.Fprintf(w, "  Subtitle: %s\n", doc.Subtitle)
		}

		result.Documents = append(result.Documents, doc)
		result.Records = append(result.Records, rec)
	}

	result.OutputPath = filepath.Join(cfg.DataDir, cfg.Output)
	if err := WriteCSV(result.OutputPath, result.Records); err != nil {
		return result, err
	}

	fmt.Fprintf(w, "\nCreated CSV file: %s\n", result.OutputPath)
	fmt.Fprintf(w, "Total slides processed: %d\n", len(result.Records))
	return result, nil
}

// Record converts a parsed document into its CSV row.
func Record(doc types.Document) types.SlideRecord {
	return types.SlideRecord{
		LectureNumber: doc.LectureNumber,
		PDFFilename:   doc.Stem + ".pdf",
		Title:         doc.Title,
		Subtitle:      doc.Subtitle,
		FullTitle:     FullTitle(doc),
		RnwFilename:   doc.Name,
		Basename:      doc.Stem,
	}
}

// FullTitle joins title and subtitle as "title: subtitle". Without a title
// it falls back to the filename stem in title case, with '-' and '_' read
// as spaces.
func FullTitle(doc types.Document) string {
	switch {
	case doc.Title != "" && doc.Subtitle != "":
		return doc.Title + ": " + doc.Subtitle
	case doc.Title != "":
		return doc.Title
	}
	words := strings.NewReplacer("-", " ", "_", " ").Replace(doc.Stem)
	return cases.Title(language.Und).String(words)
}

// WriteCSV writes records with the fixed header to path, creating the
// parent directory when needed.
func WriteCSV(path string, records []types.SlideRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Encode(f, records); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// Encode writes the header and one line per record to w. Lines end in
// CRLF, as spreadsheet tools expect.
func Encode(w io.Writer, records []types.SlideRecord) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(types.SlideRecordHeader); err != nil {
		return err
	}
	for _, r := range records {
		if err := cw.Write(r.Row()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
