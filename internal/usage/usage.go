// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package usage aggregates image references across slide sources and
// reports which images are unique, shared, heavily duplicated or unused.
package usage

import (
	"github.com/sirupsen/logrus"

	"github.com/pdiddy/slidekit/internal/slides"
	"github.com/pdiddy/slidekit/pkg/types"
)

// Occurrence records one use of an image.
type Occurrence struct {
	Document string `json:"document" yaml:"document"`
	Command  string `json:"command" yaml:"command"`
}

// ImageUsage lists every occurrence of one image, in scan order.
type ImageUsage struct {
	Image       string       `json:"image" yaml:"image"`
	Occurrences []Occurrence `json:"occurrences" yaml:"occurrences"`
}

// Count returns the number of occurrences.
func (u ImageUsage) Count() int { return len(u.Occurrences) }

// Table maps image paths to their occurrences across documents.
// Images keep the order in which they were first seen.
type Table struct {
	images map[string]*ImageUsage
	order  []string
	docs   []types.Document
}

// NewTable returns an empty Table.
func NewTable() *Table {
	return &Table{images: make(map[string]*ImageUsage)}
}

// Add records every image reference of doc. Documents without references
// are kept so per-document reports can list them.
func (t *Table) Add(doc types.Document) {
	t.docs = append(t.docs, doc)
	for _, ref := range doc.Images {
		u, ok := t.images[ref.Image]
		if !ok {
			u = &ImageUsage{Image: ref.Image}
			t.images[ref.Image] = u
			t.order = append(t.order, ref.Image)
		}
		u.Occurrences = append(u.Occurrences, Occurrence{Document: doc.Name, Command: ref.Command})
	}
}

// Usage returns the occurrences of image.
func (t *Table) Usage(image string) (ImageUsage, bool) {
	u, ok := t.images[image]
	if !ok {
		return ImageUsage{}, false
	}
	return *u, true
}

// Images returns all images in first-seen order.
func (t *Table) Images() []ImageUsage {
	out := make([]ImageUsage, len(t.order))
	for i, image := range t.order {
		out[i] = *t.images[image]
	}
	return out
}

// Documents returns the documents in the order they were added.
func (t *Table) Documents() []types.Document {
	return t.docs
}

// TotalReferences counts every occurrence of every image.
func (t *Table) TotalReferences() int {
	n := 0
	for _, u := range t.images {
		n += u.Count()
	}
	return n
}

// UniqueImages counts distinct image paths.
func (t *Table) UniqueImages() int {
	return len(t.order)
}

// Build scans every slide source in cfg.SlidesDir into a Table. Files
// that cannot be read are logged and contribute no references.
func Build(cfg types.ImagesConfig, log logrus.FieldLogger) (*Table, error) {
	scan := cfg.ScanConfig.WithDefaults()

	paths, err := slides.Find(scan.SlidesDir, "*"+scan.Extension)
	if err != nil {
		return nil, err
	}

	t := NewTable()
	for _, path := range paths {
		doc, _ := slides.LoadFile(path, scan, slides.ReadText, log)
		log.WithFields(logrus.Fields{
			"file":       doc.Name,
			"references": len(doc.Images),
		}).Debug("scanned document")
		t.Add(doc)
	}
	return t, nil
}
